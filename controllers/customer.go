package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aamagency-dev/sms-frontend/models"
	"github.com/aamagency-dev/sms-frontend/utils"
)

type CustomerController struct {
	Base
}

// customerRow is a customer plus the rendered "last visit" label.
type customerRow struct {
	models.Customer
	LastVisitLabel string
}

func (cc CustomerController) List(c *gin.Context) {
	s, _ := utils.GetSession(c)

	customers, err := cc.Client.ListCustomers(c.Request.Context(), s.Token)
	if err != nil {
		cc.fail(c, err, "customers.html", gin.H{"Customers": []customerRow{}})
		return
	}

	now := time.Now()
	rows := make([]customerRow, 0, len(customers))
	for _, cust := range customers {
		row := customerRow{Customer: cust, LastVisitLabel: "Never"}
		if cust.LastVisit != nil {
			row.LastVisitLabel = utils.DaysAgo(*cust.LastVisit, now)
		}
		rows = append(rows, row)
	}

	cc.render(c, http.StatusOK, "customers.html", gin.H{
		"Customers": rows,
		"Message":   c.Query("msg"),
	})
}

func (cc CustomerController) NewForm(c *gin.Context) {
	cc.render(c, http.StatusOK, "customer_form.html", gin.H{"Customer": models.Customer{IsActive: true}})
}

func (cc CustomerController) Create(c *gin.Context) {
	s, _ := utils.GetSession(c)

	customer := parseCustomerForm(c)
	if errs := customer.Validate(); len(errs) > 0 {
		cc.render(c, http.StatusBadRequest, "customer_form.html", gin.H{"Customer": customer, "Errors": errs})
		return
	}

	if _, err := cc.Client.CreateCustomer(c.Request.Context(), s.Token, customer); err != nil {
		if cc.expireSession(c, err) {
			return
		}
		cc.render(c, http.StatusOK, "customer_form.html", gin.H{"Customer": customer, "Banner": errorMessage(err)})
		return
	}
	c.Redirect(http.StatusSeeOther, "/customers?msg=Customer+created")
}

func (cc CustomerController) EditForm(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	customer, err := cc.Client.GetCustomer(c.Request.Context(), s.Token, id)
	if err != nil {
		cc.fail(c, err, "customers.html", gin.H{"Customers": []customerRow{}})
		return
	}
	cc.render(c, http.StatusOK, "customer_form.html", gin.H{"Customer": customer, "EditID": id})
}

func (cc CustomerController) Update(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	customer := parseCustomerForm(c)
	if errs := customer.Validate(); len(errs) > 0 {
		cc.render(c, http.StatusBadRequest, "customer_form.html", gin.H{"Customer": customer, "EditID": id, "Errors": errs})
		return
	}

	if _, err := cc.Client.UpdateCustomer(c.Request.Context(), s.Token, id, customer); err != nil {
		if cc.expireSession(c, err) {
			return
		}
		cc.render(c, http.StatusOK, "customer_form.html", gin.H{"Customer": customer, "EditID": id, "Banner": errorMessage(err)})
		return
	}
	c.Redirect(http.StatusSeeOther, "/customers?msg=Customer+updated")
}

func (cc CustomerController) DeleteConfirm(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	customer, err := cc.Client.GetCustomer(c.Request.Context(), s.Token, id)
	if err != nil {
		cc.fail(c, err, "customers.html", gin.H{"Customers": []customerRow{}})
		return
	}
	cc.render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"What":       "customer",
		"Name":       customer.Name,
		"ActionPath": "/customers/" + id + "/delete",
		"BackLink":   "/customers",
	})
}

func (cc CustomerController) Delete(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	if c.PostForm("confirm") != "yes" {
		c.Redirect(http.StatusSeeOther, "/customers")
		return
	}

	if err := cc.Client.DeleteCustomer(c.Request.Context(), s.Token, id); err != nil {
		cc.fail(c, err, "customers.html", gin.H{"Customers": []customerRow{}})
		return
	}
	c.Redirect(http.StatusSeeOther, "/customers?msg=Customer+deleted")
}

// Import forwards the uploaded CSV and shows the server's result verbatim.
// No CSV is parsed or validated locally.
func (cc CustomerController) Import(c *gin.Context) {
	s, _ := utils.GetSession(c)

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		cc.render(c, http.StatusBadRequest, "customers.html", gin.H{
			"Customers": []customerRow{},
			"Error":     "Choose a CSV file to import",
		})
		return
	}
	defer file.Close()

	result, err := cc.Client.ImportCustomers(c.Request.Context(), s.Token, header.Filename, file)
	if err != nil {
		cc.fail(c, err, "customers.html", gin.H{"Customers": []customerRow{}})
		return
	}

	cc.render(c, http.StatusOK, "import_result.html", gin.H{
		"Title":    "Customer import",
		"Result":   result,
		"BackLink": "/customers",
	})
}

// Export proxies the generated CSV blob as a file download.
func (cc CustomerController) Export(c *gin.Context) {
	s, _ := utils.GetSession(c)

	data, filename, err := cc.Client.ExportCustomers(c.Request.Context(), s.Token)
	if err != nil {
		cc.fail(c, err, "customers.html", gin.H{"Customers": []customerRow{}})
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "text/csv", data)
}

func parseCustomerForm(c *gin.Context) models.Customer {
	return models.Customer{
		Name:     strings.TrimSpace(c.PostForm("name")),
		Phone:    strings.TrimSpace(c.PostForm("phone")),
		Email:    strings.TrimSpace(c.PostForm("email")),
		Notes:    c.PostForm("notes"),
		IsActive: c.PostForm("is_active") != "",
	}
}
