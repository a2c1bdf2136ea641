package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCustomerValidate(t *testing.T) {
	c := Customer{Name: "Anna", Phone: "+46701234567"}
	assert.Empty(t, c.Validate())

	assert.Contains(t, Customer{Phone: "+46701234567"}.Validate(), "name")
	assert.Contains(t, Customer{Name: "Anna"}.Validate(), "phone")
	assert.Contains(t, Customer{Name: "Anna", Phone: "not-a-phone"}.Validate(), "phone")
	assert.Contains(t, Customer{Name: "Anna", Phone: "+46701234567", Email: "nope"}.Validate(), "email")
}
