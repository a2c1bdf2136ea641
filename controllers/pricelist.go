package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aamagency-dev/sms-frontend/models"
	"github.com/aamagency-dev/sms-frontend/utils"
)

// PriceListController backs the per-business price-list screen.
type PriceListController struct {
	Base
}

func (p PriceListController) View(c *gin.Context) {
	s, _ := utils.GetSession(c)
	businessID := c.Param("id")

	business, err := p.Client.GetBusiness(c.Request.Context(), s.Token, businessID)
	if err != nil {
		p.fail(c, err, "businesses.html", gin.H{"Businesses": []models.BusinessConfig{}})
		return
	}

	items, err := p.Client.GetPriceList(c.Request.Context(), s.Token, businessID)
	if err != nil {
		items = []models.PriceListItem{}
	}

	p.render(c, http.StatusOK, "pricelist.html", gin.H{
		"Business": business,
		"Items":    items,
	})
}

// Import forwards a price-list CSV for an existing business.
func (p PriceListController) Import(c *gin.Context) {
	s, _ := utils.GetSession(c)
	businessID := c.Param("id")

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.Redirect(http.StatusSeeOther, "/businesses/"+businessID+"/pricelist")
		return
	}
	defer file.Close()

	result, err := p.Client.ImportPriceList(c.Request.Context(), s.Token, businessID, header.Filename, file)
	if err != nil {
		p.fail(c, err, "pricelist.html", gin.H{"Items": []models.PriceListItem{}})
		return
	}

	p.render(c, http.StatusOK, "import_result.html", gin.H{
		"Title":    "Price list import",
		"Result":   result,
		"BackLink": "/businesses/" + businessID + "/pricelist",
	})
}

func (p PriceListController) Export(c *gin.Context) {
	s, _ := utils.GetSession(c)
	businessID := c.Param("id")

	data, filename, err := p.Client.ExportPriceList(c.Request.Context(), s.Token, businessID)
	if err != nil {
		p.fail(c, err, "pricelist.html", gin.H{"Items": []models.PriceListItem{}})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}
