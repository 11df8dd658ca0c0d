package validator

import (
	"errors"
	"testing"

	"github.com/peoplecore/hrms-backend-go/internal/pkg/apperr"
	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	t.Parallel()

	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("a"))
	assert.False(t, IsEmpty(" a "))
}

func TestIsValidEmail(t *testing.T) {
	t.Parallel()

	valid := []string{
		"john.smith@company.com",
		"mary+hr@sub.example.org",
		"a_b-c@example.co",
	}
	for _, email := range valid {
		assert.True(t, IsValidEmail(email), email)
	}

	invalid := []string{
		"",
		"plainaddress",
		"@example.com",
		"user@",
		"user@domain",
	}
	for _, email := range invalid {
		assert.False(t, IsValidEmail(email), email)
	}
}

func TestIsValidDate(t *testing.T) {
	t.Parallel()

	date, ok := IsValidDate("2024-02-29")
	assert.True(t, ok)
	assert.Equal(t, 29, date.Day())

	_, ok = IsValidDate("2024-13-01")
	assert.False(t, ok)

	_, ok = IsValidDate("01/02/2024")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	t.Parallel()

	tm, ok := IsValidTimeOfDay("09:30")
	assert.True(t, ok)
	assert.Equal(t, 9, tm.Hour())
	assert.Equal(t, 30, tm.Minute())

	tm, ok = IsValidTimeOfDay("22:00:15")
	assert.True(t, ok)
	assert.Equal(t, 15, tm.Second())

	_, ok = IsValidTimeOfDay("25:00")
	assert.False(t, ok)
}

func TestIsValidPhoneNumber(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidPhoneNumber("+14155550123"))
	assert.True(t, IsValidPhoneNumber("0812 3456 789"))
	assert.True(t, IsValidPhoneNumber("0812-3456-789"))
	assert.False(t, IsValidPhoneNumber("12345"))
	assert.False(t, IsValidPhoneNumber("call-me"))
}

func TestIsValidCurrencyCode(t *testing.T) {
	t.Parallel()

	assert.True(t, IsValidCurrencyCode("USD"))
	assert.True(t, IsValidCurrencyCode("EUR"))
	assert.False(t, IsValidCurrencyCode("usd"))
	assert.False(t, IsValidCurrencyCode("US"))
	assert.False(t, IsValidCurrencyCode("DOLLAR"))
}

func TestIsValidRating(t *testing.T) {
	t.Parallel()

	for rating := 1; rating <= 5; rating++ {
		assert.True(t, IsValidRating(rating))
	}
	assert.False(t, IsValidRating(0))
	assert.False(t, IsValidRating(6))
	assert.False(t, IsValidRating(-1))
}

func TestValidationErrorsClassification(t *testing.T) {
	t.Parallel()

	errs := ValidationErrors{
		{Field: "start_date", Message: "start date cannot be after end date"},
	}

	assert.True(t, errors.Is(errs, apperr.ErrValidation))
	assert.Equal(t, "start_date: start date cannot be after end date", errs.Error())
	assert.Equal(t, map[string]string{"start_date": "start date cannot be after end date"}, errs.ToMap())
}
