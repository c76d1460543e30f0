package validator

import (
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVINRegex(t *testing.T) {
	tests := []struct {
		name  string
		vin   string
		valid bool
	}{
		{"valid 17-char VIN", "4T1BF1FK5CU123456", true},
		{"valid all digits and letters", "1HGBH41JXMN109186", true},
		{"too short (16)", "4T1BF1FK5CU12345", false},
		{"too long (18)", "4T1BF1FK5CU1234567", false},
		{"contains I", "4T1BF1FK5CU12345I", false},
		{"contains O", "4T1BF1FK5CU12345O", false},
		{"contains Q", "4T1BF1FK5CU12345Q", false},
		{"lowercase rejected", "4t1bf1fk5cu123456", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, vinRegex.MatchString(tt.vin))
		})
	}
}

func TestPlateRegex(t *testing.T) {
	tests := []struct {
		name  string
		plate string
		valid bool
	}{
		{"letters and digits", "ABC123", true},
		{"with hyphen", "ABC-123", true},
		{"with space", "AB 1234", true},
		{"lowercase allowed", "abc-123", true},
		{"special chars rejected", "AB#123", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.valid, plateRegex.MatchString(tt.plate))
		})
	}
}

func TestPasswordComplexity(t *testing.T) {
	tests := []struct {
		name     string
		password string
		valid    bool
	}{
		{"uppercase and digit", "Secret123", true},
		{"missing uppercase", "secret123", false},
		{"missing digit", "SecretPass", false},
		{"missing both", "secretpass", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uppercaseRegex.MatchString(tt.password) && digitRegex.MatchString(tt.password)
			assert.Equal(t, tt.valid, got)
		})
	}
}

func TestNotPast(t *testing.T) {
	v := validator.New()
	require.NoError(t, v.RegisterValidation("notpast", validateNotPast))

	now := time.Now().UTC()
	tests := []struct {
		name  string
		date  string
		valid bool
	}{
		{"yesterday rejected", now.AddDate(0, 0, -1).Format("2006-01-02"), false},
		{"today accepted", now.Format("2006-01-02"), true},
		{"tomorrow accepted", now.AddDate(0, 0, 1).Format("2006-01-02"), true},
		{"rfc3339 tomorrow accepted", now.AddDate(0, 0, 1).Format(time.RFC3339), true},
		{"rfc3339 yesterday rejected", now.AddDate(0, 0, -1).Format(time.RFC3339), false},
		{"unparseable rejected", "30/06/2025", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Var(tt.date, "notpast")
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	t.Run("date only", func(t *testing.T) {
		d, err := ParseDate("2025-06-30")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("rfc3339", func(t *testing.T) {
		d, err := ParseDate("2025-06-30T15:04:05Z")
		assert.NoError(t, err)
		assert.Equal(t, time.Date(2025, 6, 30, 0, 0, 0, 0, time.UTC), d)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := ParseDate("30/06/2025")
		assert.Error(t, err)
	})
}
