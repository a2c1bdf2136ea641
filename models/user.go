package models

import "github.com/aamagency-dev/sms-frontend/utils"

type User struct {
	ID         string `json:"id,omitempty"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"` // 'owner' or 'admin'
	BusinessID string `json:"business_id,omitempty"`
	IsActive   bool   `json:"is_active"`
	LastLogin  string `json:"last_login,omitempty"`
}

// UserInput carries the admin user form, including the optional password
// (set on create, blank to keep on update).
type UserInput struct {
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       string `json:"role"`
	BusinessID string `json:"business_id,omitempty"`
	IsActive   bool   `json:"is_active"`
	Password   string `json:"password,omitempty"`
}

func (u UserInput) Validate(requirePassword bool) map[string]string {
	errs := map[string]string{}
	if u.Name == "" {
		errs["name"] = "Name is required"
	}
	if u.Email == "" {
		errs["email"] = "Email is required"
	} else if !utils.ValidateEmail(u.Email) {
		errs["email"] = "Enter a valid email address"
	}
	if requirePassword && len(u.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	}
	if u.Password != "" && len(u.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	}
	return errs
}
