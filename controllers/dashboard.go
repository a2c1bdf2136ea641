package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aamagency-dev/sms-frontend/models"
	"github.com/aamagency-dev/sms-frontend/utils"
)

type DashboardController struct {
	Base
}

// Overview renders the main dashboard. The aggregate fetch failing is a real
// error; the secondary lists fall back to empty rather than breaking the page.
func (d DashboardController) Overview(c *gin.Context) {
	s, _ := utils.GetSession(c)
	ctx := c.Request.Context()

	overview, err := d.Client.DashboardOverview(ctx, s.Token)
	if err != nil {
		d.fail(c, err, "dashboard.html", gin.H{})
		return
	}

	recent, err := d.Client.RecentCustomers(ctx, s.Token)
	if err != nil {
		recent = []models.RecentCustomer{}
	}
	scheduled, err := d.Client.ScheduledSms(ctx, s.Token)
	if err != nil {
		scheduled = []models.ScheduledSms{}
	}

	d.render(c, http.StatusOK, "dashboard.html", gin.H{
		"Overview":  overview,
		"Recent":    recent,
		"Scheduled": scheduled,
		"Message":   c.Query("msg"),
	})
}

func (d DashboardController) AdminOverview(c *gin.Context) {
	s, _ := utils.GetSession(c)
	ctx := c.Request.Context()

	overview, err := d.Client.AdminOverview(ctx, s.Token)
	if err != nil {
		d.fail(c, err, "admin_dashboard.html", gin.H{})
		return
	}

	stats, err := d.Client.AdminStats(ctx, s.Token)
	if err != nil {
		stats = models.AdminStats{}
	}

	d.render(c, http.StatusOK, "admin_dashboard.html", gin.H{
		"Overview": overview,
		"Stats":    stats,
	})
}

func (d DashboardController) CancelSmsConfirm(c *gin.Context) {
	id := c.Param("id")
	d.render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"What":       "scheduled SMS",
		"Name":       id,
		"ActionPath": "/dashboard/sms/" + id + "/cancel",
		"BackLink":   "/",
	})
}

// CancelSms cancels one scheduled retention SMS after confirmation.
func (d DashboardController) CancelSms(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	if c.PostForm("confirm") != "yes" {
		c.Redirect(http.StatusSeeOther, "/")
		return
	}

	if err := d.Client.CancelScheduledSms(c.Request.Context(), s.Token, id); err != nil {
		d.fail(c, err, "dashboard.html", gin.H{})
		return
	}
	c.Redirect(http.StatusSeeOther, "/?msg=SMS+cancelled")
}
