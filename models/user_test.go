package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUserInputValidate(t *testing.T) {
	input := UserInput{Email: "anna@example.com", Name: "Anna", Role: "owner", Password: "supersecret"}
	assert.Empty(t, input.Validate(true))

	// Create requires a password, update does not.
	input.Password = ""
	assert.Contains(t, input.Validate(true), "password")
	assert.Empty(t, input.Validate(false))

	// A supplied password must still meet the minimum on update.
	input.Password = "short"
	assert.Contains(t, input.Validate(false), "password")

	input = UserInput{Password: "supersecret"}
	errs := input.Validate(true)
	assert.Contains(t, errs, "name")
	assert.Contains(t, errs, "email")

	input.Email = "not-an-email"
	assert.Contains(t, input.Validate(true), "email")
}
