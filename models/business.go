package models

import (
	"fmt"
	"math"

	"github.com/aamagency-dev/sms-frontend/utils"
)

// Tones of voice assignable per staff member. The set is fixed; the platform
// rejects anything else, so the form does too.
var Tones = []string{"professional", "friendly", "casual", "warm", "playful", "luxurious"}

func ValidTone(tone string) bool {
	for _, t := range Tones {
		if t == tone {
			return true
		}
	}
	return false
}

// ServiceInterval is one entry of the service-name → interval mapping. The
// interval is in months, 0.5 to 12 in half-month steps.
type ServiceInterval struct {
	IntervalMonths float64 `json:"interval_months"`
	Template       string  `json:"template"`
}

type StaffMember struct {
	Name        string `json:"name"`
	ToneOfVoice string `json:"tone_of_voice"`
	IsActive    bool   `json:"is_active"`
}

type PostAppointmentSettings struct {
	DelayHours        int    `json:"delay_hours"`
	BusinessHoursOnly bool   `json:"business_hours_only"`
	SendStartTime     string `json:"send_start_time,omitempty"`
	SendEndTime       string `json:"send_end_time,omitempty"`
}

type RetentionSettings struct {
	DefaultIntervalMonths float64 `json:"default_interval_months"`
}

type SMSSettings struct {
	PostAppointment PostAppointmentSettings `json:"post_appointment"`
	Retention       RetentionSettings       `json:"retention"`
}

// BusinessConfig aggregates everything the business screens edit. The app
// never owns this entity's canonical state; it is refreshed from the platform
// API on every navigation into a management screen.
type BusinessConfig struct {
	ID                      string                     `json:"id,omitempty"`
	Name                    string                     `json:"name"`
	Slug                    string                     `json:"slug"`
	ContactPhone            string                     `json:"contact_phone,omitempty"`
	ContactEmail            string                     `json:"contact_email,omitempty"`
	TwilioPhoneNumber       string                     `json:"twilio_phone_number,omitempty"`
	InactiveCustomerDays    int                        `json:"inactive_customer_days"`
	SMSSettings             SMSSettings                `json:"sms_settings"`
	ServiceIntervals        map[string]ServiceInterval `json:"service_intervals,omitempty"`
	StaffMembers            []StaffMember              `json:"staff_members,omitempty"`
	BokadirektWebhookSecret string                     `json:"bokadirekt_webhook_secret,omitempty"`
	BokadirektLocationID    string                     `json:"bokadirekt_location_id,omitempty"`
	CreatedAt               string                     `json:"created_at,omitempty"`
	UpdatedAt               string                     `json:"updated_at,omitempty"`
}

// DefaultBusinessConfig seeds the create form.
func DefaultBusinessConfig() BusinessConfig {
	return BusinessConfig{
		InactiveCustomerDays: 90,
		SMSSettings: SMSSettings{
			PostAppointment: PostAppointmentSettings{DelayHours: 24},
			Retention:       RetentionSettings{DefaultIntervalMonths: 6},
		},
	}
}

// Editable strips the server-owned fields so a load→submit round trip with no
// edits produces a payload equal to what was fetched.
func (b BusinessConfig) Editable() BusinessConfig {
	b.ID = ""
	b.CreatedAt = ""
	b.UpdatedAt = ""
	return b
}

// Validate runs every pre-submission check and returns field → message.
// Submission is blocked while the map is non-empty; the platform remains
// authoritative for anything not checked here.
func (b BusinessConfig) Validate() map[string]string {
	errs := map[string]string{}

	if b.Name == "" {
		errs["name"] = "Name is required"
	}
	if b.Slug == "" {
		errs["slug"] = "Slug is required"
	} else if !utils.ValidateSlug(b.Slug) {
		errs["slug"] = "Slug may only contain lowercase letters, digits and hyphens"
	}

	if b.ContactEmail != "" && !utils.ValidateEmail(b.ContactEmail) {
		errs["contact_email"] = "Enter a valid email address"
	}
	if b.ContactPhone != "" && !utils.ValidatePhone(b.ContactPhone) {
		errs["contact_phone"] = "Enter a valid phone number"
	}
	if b.TwilioPhoneNumber != "" && !utils.ValidatePhone(b.TwilioPhoneNumber) {
		errs["twilio_phone_number"] = "Enter a valid phone number"
	}

	if b.InactiveCustomerDays < 30 || b.InactiveCustomerDays > 365 {
		errs["inactive_customer_days"] = "Must be between 30 and 365 days"
	}

	pa := b.SMSSettings.PostAppointment
	if pa.DelayHours < 1 || pa.DelayHours > 72 {
		errs["delay_hours"] = "Delay must be between 1 and 72 hours"
	}
	if pa.BusinessHoursOnly {
		if !utils.ValidateTimeOfDay(pa.SendStartTime) {
			errs["send_start_time"] = "Start time is required (HH:MM)"
		}
		if !utils.ValidateTimeOfDay(pa.SendEndTime) {
			errs["send_end_time"] = "End time is required (HH:MM)"
		}
	}
	if b.SMSSettings.Retention.DefaultIntervalMonths <= 0 {
		errs["default_interval_months"] = "Retention interval must be a positive number of months"
	}

	for name, si := range b.ServiceIntervals {
		if !ValidInterval(si.IntervalMonths) {
			errs["service_intervals"] = fmt.Sprintf("%s: interval must be 0.5 to 12 months in half-month steps", name)
			break
		}
	}

	for i, s := range b.StaffMembers {
		if s.Name == "" {
			errs["staff_members"] = fmt.Sprintf("Staff member %d needs a name", i+1)
			break
		}
		if !ValidTone(s.ToneOfVoice) {
			errs["staff_members"] = fmt.Sprintf("%s: unknown tone of voice %q", s.Name, s.ToneOfVoice)
			break
		}
	}

	return errs
}

// ValidInterval reports whether a retention interval is 0.5-12 months on the
// half-month grid.
func ValidInterval(months float64) bool {
	if months < 0.5 || months > 12 {
		return false
	}
	doubled := months * 2
	return math.Abs(doubled-math.Round(doubled)) < 1e-9
}

// SetServiceInterval applies mapping semantics: a duplicate service name
// overwrites the existing entry, last write wins.
func (b *BusinessConfig) SetServiceInterval(name string, si ServiceInterval) {
	if b.ServiceIntervals == nil {
		b.ServiceIntervals = map[string]ServiceInterval{}
	}
	b.ServiceIntervals[name] = si
}

// RemoveServiceInterval deletes the mapping key.
func (b *BusinessConfig) RemoveServiceInterval(name string) {
	delete(b.ServiceIntervals, name)
}

// WebhookURL is the Boka Direkt booking-event endpoint shown on the edit
// screen for operators to paste into the integration settings.
func (b BusinessConfig) WebhookURL(apiBase string) string {
	return apiBase + "/webhooks/bokadirekt"
}

// Location is a physical site of a business, read-only on the edit screen.
type Location struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
}
