package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidatePhone(t *testing.T) {
	valid := []string{"+46701234567", "46701234567", "+1 (555) 123-4567", "+46 70-123 45 67"}
	for _, phone := range valid {
		assert.True(t, ValidatePhone(phone), phone)
	}

	invalid := []string{"", "abc", "+0123", "0", "+461234567890123456"}
	for _, phone := range invalid {
		assert.False(t, ValidatePhone(phone), phone)
	}
}

func TestValidateSlug(t *testing.T) {
	assert.True(t, ValidateSlug("glow-studio"))
	assert.True(t, ValidateSlug("salon23"))
	assert.False(t, ValidateSlug(""))
	assert.False(t, ValidateSlug("Glow"))
	assert.False(t, ValidateSlug("glow studio"))
	assert.False(t, ValidateSlug("glow_studio"))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("anna@example.com"))
	assert.True(t, ValidateEmail("a.b+c@sub.example.se"))
	assert.False(t, ValidateEmail(""))
	assert.False(t, ValidateEmail("anna@example"))
	assert.False(t, ValidateEmail("anna example@example.com"))
	assert.False(t, ValidateEmail("@example.com"))
}

func TestValidateTimeOfDay(t *testing.T) {
	assert.True(t, ValidateTimeOfDay("09:00"))
	assert.True(t, ValidateTimeOfDay("23:59"))
	assert.True(t, ValidateTimeOfDay("00:00"))
	assert.False(t, ValidateTimeOfDay(""))
	assert.False(t, ValidateTimeOfDay("24:00"))
	assert.False(t, ValidateTimeOfDay("9:00"))
	assert.False(t, ValidateTimeOfDay("09:60"))
	assert.False(t, ValidateTimeOfDay("morning"))
}
