package models

import (
	"time"

	"github.com/aamagency-dev/sms-frontend/utils"
)

type Customer struct {
	ID         string     `json:"id,omitempty"`
	BusinessID string     `json:"business_id,omitempty"`
	Name       string     `json:"name"`
	Phone      string     `json:"phone"`
	Email      string     `json:"email,omitempty"`
	Notes      string     `json:"notes,omitempty"`
	LastVisit  *time.Time `json:"last_visit,omitempty"`
	IsActive   bool       `json:"is_active"`
	CreatedAt  string     `json:"created_at,omitempty"`
}

// Validate mirrors the customer form's pre-submission checks.
func (c Customer) Validate() map[string]string {
	errs := map[string]string{}
	if c.Name == "" {
		errs["name"] = "Name is required"
	}
	if c.Phone == "" {
		errs["phone"] = "Phone is required"
	} else if !utils.ValidatePhone(c.Phone) {
		errs["phone"] = "Enter a valid phone number"
	}
	if c.Email != "" && !utils.ValidateEmail(c.Email) {
		errs["email"] = "Enter a valid email address"
	}
	return errs
}

// ImportResult is the structured outcome of a server-side CSV import. The
// server is the sole source of parsing truth; these counts render verbatim.
type ImportResult struct {
	TotalRows      int      `json:"total_rows"`
	ImportedCount  int      `json:"imported_count"`
	DuplicateCount int      `json:"duplicate_count"`
	Errors         []string `json:"errors"`
}

type CustomerFeedback struct {
	ID         string `json:"id"`
	CustomerID string `json:"customer_id"`
	Rating     int    `json:"rating"`
	Comment    string `json:"comment,omitempty"`
	CreatedAt  string `json:"created_at,omitempty"`
}
