// Package validator registers custom field validators used by request binding.
package validator

import (
	"regexp"
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// vinRegex matches a 17-character VIN. I, O, and Q are excluded per ISO 3779.
var vinRegex = regexp.MustCompile(`^[A-HJ-NPR-Z0-9]{17}$`)

// plateRegex matches license plates: letters, digits, spaces, and hyphens.
var plateRegex = regexp.MustCompile(`^[A-Za-z0-9 -]+$`)

// usernameRegex matches usernames: letters, digits, and underscores.
var usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)

var (
	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	digitRegex     = regexp.MustCompile(`[0-9]`)
)

// validateVIN validates a vehicle identification number.
func validateVIN(fl validator.FieldLevel) bool {
	return vinRegex.MatchString(fl.Field().String())
}

// validatePlate validates a license plate.
func validatePlate(fl validator.FieldLevel) bool {
	return plateRegex.MatchString(fl.Field().String())
}

// validateUsername validates a username charset.
func validateUsername(fl validator.FieldLevel) bool {
	return usernameRegex.MatchString(fl.Field().String())
}

// validatePassword enforces password complexity: at least one uppercase
// letter and one digit. Length bounds come from min/max tags.
func validatePassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return uppercaseRegex.MatchString(s) && digitRegex.MatchString(s)
}

// validateNotPast validates a date string that must be today or later.
// Accepts 2006-01-02 or RFC 3339.
func validateNotPast(fl validator.FieldLevel) bool {
	d, err := ParseDate(fl.Field().String())
	if err != nil {
		return false
	}
	today := time.Now().Truncate(24 * time.Hour)
	return !d.Before(today)
}

// ParseDate parses a date in 2006-01-02 or RFC 3339 format, truncated to
// midnight UTC for day-granularity comparison.
func ParseDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	d, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return d.Truncate(24 * time.Hour), nil
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("vin", validateVIN)
		_ = v.RegisterValidation("plate", validatePlate)
		_ = v.RegisterValidation("username", validateUsername)
		_ = v.RegisterValidation("password", validatePassword)
		_ = v.RegisterValidation("notpast", validateNotPast)
	}
}
