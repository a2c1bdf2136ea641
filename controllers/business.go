package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/aamagency-dev/sms-frontend/models"
	"github.com/aamagency-dev/sms-frontend/utils"
)

type BusinessController struct {
	Base
}

func (b BusinessController) List(c *gin.Context) {
	s, _ := utils.GetSession(c)

	businesses, err := b.Client.ListBusinesses(c.Request.Context(), s.Token)
	if err != nil {
		b.fail(c, err, "businesses.html", gin.H{"Businesses": []models.BusinessConfig{}})
		return
	}
	b.render(c, http.StatusOK, "businesses.html", gin.H{
		"Businesses": businesses,
		"Message":    c.Query("msg"),
	})
}

func (b BusinessController) NewForm(c *gin.Context) {
	b.renderForm(c, http.StatusOK, models.DefaultBusinessConfig(), nil, "")
}

// Create validates the aggregate and issues exactly one POST /businesses/.
// When a price-list CSV is attached, a single follow-up import request runs
// after — and only after — creation succeeded; its failure is a warning, not
// a rollback.
func (b BusinessController) Create(c *gin.Context) {
	s, _ := utils.GetSession(c)

	cfg, errs := parseBusinessForm(c)
	if len(errs) > 0 {
		b.renderForm(c, http.StatusBadRequest, cfg, errs, "")
		return
	}

	created, err := b.Client.CreateBusiness(c.Request.Context(), s.Token, cfg)
	if err != nil {
		if b.expireSession(c, err) {
			return
		}
		b.renderForm(c, http.StatusOK, cfg, nil, errorMessage(err))
		return
	}

	file, header, err := c.Request.FormFile("pricelist")
	if err != nil {
		// No file attached; creation is complete.
		c.Redirect(http.StatusSeeOther, "/businesses?msg=Business+created")
		return
	}
	defer file.Close()

	result, err := b.Client.ImportPriceList(c.Request.Context(), s.Token, created.ID, header.Filename, file)
	if err != nil {
		if b.expireSession(c, err) {
			return
		}
		zap.L().Warn("price list import failed after business creation",
			zap.String("business_id", created.ID), zap.Error(err))
		b.render(c, http.StatusOK, "import_result.html", gin.H{
			"Title":    "Business created",
			"Warning":  "Business was created, but the price list import failed: " + errorMessage(err),
			"BackLink": "/businesses",
		})
		return
	}

	b.render(c, http.StatusOK, "import_result.html", gin.H{
		"Title":    "Business created",
		"Result":   result,
		"BackLink": "/businesses",
	})
}

func (b BusinessController) EditForm(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	cfg, err := b.Client.GetBusiness(c.Request.Context(), s.Token, id)
	if err != nil {
		b.fail(c, err, "businesses.html", gin.H{"Businesses": []models.BusinessConfig{}})
		return
	}

	// Locations are read-only context on the edit screen; a fetch failure
	// just leaves the section empty.
	locations, err := b.Client.ListLocations(c.Request.Context(), s.Token, id)
	if err != nil {
		locations = nil
	}

	b.renderFormData(c, http.StatusOK, gin.H{
		"Config":     cfg,
		"EditID":     id,
		"Locations":  locations,
		"WebhookURL": cfg.WebhookURL(b.Client.BaseURL()),
	})
}

func (b BusinessController) Update(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	cfg, errs := parseBusinessForm(c)
	if len(errs) > 0 {
		b.renderFormData(c, http.StatusBadRequest, gin.H{"Config": cfg, "EditID": id, "Errors": errs})
		return
	}

	if _, err := b.Client.UpdateBusiness(c.Request.Context(), s.Token, id, cfg); err != nil {
		if b.expireSession(c, err) {
			return
		}
		b.renderFormData(c, http.StatusOK, gin.H{"Config": cfg, "EditID": id, "Banner": errorMessage(err)})
		return
	}
	c.Redirect(http.StatusSeeOther, "/businesses?msg=Business+updated")
}

// DeleteConfirm renders the confirmation page. No DELETE is issued here.
func (b BusinessController) DeleteConfirm(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	cfg, err := b.Client.GetBusiness(c.Request.Context(), s.Token, id)
	if err != nil {
		b.fail(c, err, "businesses.html", gin.H{"Businesses": []models.BusinessConfig{}})
		return
	}
	b.render(c, http.StatusOK, "confirm_delete.html", gin.H{
		"What":       "business",
		"Name":       cfg.Name,
		"ActionPath": "/businesses/" + id + "/delete",
		"BackLink":   "/businesses",
	})
}

// Delete fires the destructive call only after explicit confirmation.
func (b BusinessController) Delete(c *gin.Context) {
	s, _ := utils.GetSession(c)
	id := c.Param("id")

	if c.PostForm("confirm") != "yes" {
		c.Redirect(http.StatusSeeOther, "/businesses")
		return
	}

	if err := b.Client.DeleteBusiness(c.Request.Context(), s.Token, id); err != nil {
		b.fail(c, err, "businesses.html", gin.H{"Businesses": []models.BusinessConfig{}})
		return
	}
	c.Redirect(http.StatusSeeOther, "/businesses?msg=Business+deleted")
}

func (b BusinessController) renderForm(c *gin.Context, status int, cfg models.BusinessConfig, errs map[string]string, banner string) {
	b.renderFormData(c, status, gin.H{"Config": cfg, "Errors": errs, "Banner": banner})
}

func (b BusinessController) renderFormData(c *gin.Context, status int, data gin.H) {
	s, _ := utils.GetSession(c)

	// Best-effort prefill data for the interval editor; empty on failure.
	categories, err := b.Client.ListServiceCategories(c.Request.Context(), s.Token)
	if err != nil {
		categories = nil
	}
	knownIntervals, err := b.Client.ListKnownServiceIntervals(c.Request.Context(), s.Token)
	if err != nil {
		knownIntervals = nil
	}

	data["Tones"] = models.Tones
	data["Categories"] = categories
	data["KnownIntervals"] = knownIntervals
	b.render(c, status, "business_form.html", data)
}

// parseBusinessForm rebuilds the BusinessConfig aggregate from the submitted
// form. The service-interval and staff sections arrive as parallel arrays
// merged here — the sub-sections never make their own network calls, and a
// duplicate service name overwrites the earlier entry (last write wins).
func parseBusinessForm(c *gin.Context) (models.BusinessConfig, map[string]string) {
	errs := map[string]string{}

	cfg := models.BusinessConfig{
		Name:                    strings.TrimSpace(c.PostForm("name")),
		Slug:                    strings.TrimSpace(c.PostForm("slug")),
		ContactPhone:            strings.TrimSpace(c.PostForm("contact_phone")),
		ContactEmail:            strings.TrimSpace(c.PostForm("contact_email")),
		TwilioPhoneNumber:       strings.TrimSpace(c.PostForm("twilio_phone_number")),
		BokadirektWebhookSecret: strings.TrimSpace(c.PostForm("bokadirekt_webhook_secret")),
		BokadirektLocationID:    strings.TrimSpace(c.PostForm("bokadirekt_location_id")),
	}

	cfg.InactiveCustomerDays = parseIntField(c.PostForm("inactive_customer_days"), "inactive_customer_days", errs)
	cfg.SMSSettings.PostAppointment.DelayHours = parseIntField(c.PostForm("delay_hours"), "delay_hours", errs)
	cfg.SMSSettings.PostAppointment.BusinessHoursOnly = c.PostForm("business_hours_only") != ""
	cfg.SMSSettings.PostAppointment.SendStartTime = strings.TrimSpace(c.PostForm("send_start_time"))
	cfg.SMSSettings.PostAppointment.SendEndTime = strings.TrimSpace(c.PostForm("send_end_time"))
	cfg.SMSSettings.Retention.DefaultIntervalMonths = parseFloatField(c.PostForm("default_interval_months"), "default_interval_months", errs)

	names := c.PostFormArray("service_name")
	intervals := c.PostFormArray("service_interval")
	templates := c.PostFormArray("service_template")
	for i, name := range names {
		name = strings.TrimSpace(name)
		if name == "" {
			continue // blank rows are dropped
		}
		si := models.ServiceInterval{}
		if i < len(intervals) {
			si.IntervalMonths = parseFloatField(intervals[i], "service_intervals", errs)
		}
		if i < len(templates) {
			si.Template = templates[i]
		}
		cfg.SetServiceInterval(name, si)
	}

	staffNames := c.PostFormArray("staff_name")
	staffTones := c.PostFormArray("staff_tone")
	staffActive := c.PostFormArray("staff_active")
	for i, name := range staffNames {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		member := models.StaffMember{Name: name}
		if i < len(staffTones) {
			member.ToneOfVoice = staffTones[i]
		}
		if i < len(staffActive) {
			member.IsActive = staffActive[i] == "true"
		}
		cfg.StaffMembers = append(cfg.StaffMembers, member)
	}

	for field, msg := range cfg.Validate() {
		if _, taken := errs[field]; !taken {
			errs[field] = msg
		}
	}
	return cfg, errs
}

func parseIntField(raw, field string, errs map[string]string) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		errs[field] = "Must be a whole number"
		return 0
	}
	return v
}

func parseFloatField(raw, field string, errs map[string]string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		errs[field] = "Must be a number"
		return 0
	}
	return v
}
