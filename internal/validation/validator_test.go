package validation

import (
	"testing"
	"time"
	_ "time/tzdata"

	"learnboard/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateLimit(t *testing.T) {
	v := NewValidator(nil)

	tests := []struct {
		raw      string
		expected int
		code     domain.ErrorCode
	}{
		{raw: "", expected: 0},
		{raw: "5", expected: 5},
		{raw: "50", expected: 50},
		{raw: "0", code: domain.CodeOutOfRange},
		{raw: "51", code: domain.CodeOutOfRange},
		{raw: "ten", code: domain.CodeInvalidFormat},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n, errs := v.ValidateLimit(tt.raw)
			if tt.code == "" {
				assert.Empty(t, errs)
				assert.Equal(t, tt.expected, n)
				return
			}
			require.Len(t, errs, 1)
			assert.Equal(t, "limit", errs[0].Field)
			assert.Equal(t, tt.code, errs[0].Code)
		})
	}
}

func TestValidateYear(t *testing.T) {
	v := NewValidator(nil)

	year, errs := v.ValidateYear("2024")
	assert.Empty(t, errs)
	assert.Equal(t, 2024, year)

	year, errs = v.ValidateYear("")
	assert.Empty(t, errs)
	assert.Zero(t, year)

	_, errs = v.ValidateYear("24th")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)

	_, errs = v.ValidateYear("1200")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeOutOfRange, errs[0].Code)
}

func TestValidateDateRange(t *testing.T) {
	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)
	v := NewValidator(tokyo)

	from, to, errs := v.ValidateDateRange("2024-05-01", "")
	assert.Empty(t, errs)
	require.NotNil(t, from)
	assert.Nil(t, to)
	assert.Equal(t, time.Date(2024, 5, 1, 0, 0, 0, 0, tokyo), *from)

	// A date whose midnight is skipped by DST starts at the transition.
	chile, err := time.LoadLocation("America/Santiago")
	require.NoError(t, err)
	from, _, errs = NewValidator(chile).ValidateDateRange("2024-09-08", "")
	assert.Empty(t, errs)
	require.NotNil(t, from)
	assert.Equal(t, "2024-09-08 01:00", from.Format("2006-01-02 15:04"))

	_, _, errs = v.ValidateDateRange("05/01/2024", "2024-13-01")
	require.Len(t, errs, 2)
	assert.Equal(t, "from", errs[0].Field)
	assert.Equal(t, "to", errs[1].Field)
}

func TestValidateQuizID(t *testing.T) {
	v := NewValidator(nil)

	assert.Empty(t, v.ValidateQuizID("01HZX3Q4J5K6M7N8P9QRSTVWXY"))
	assert.Empty(t, v.ValidateQuizID("6f1c2a58-7d0e-4d35-9b0a-0f6a3f1d2c11"))

	errs := v.ValidateQuizID("")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeMissingField, errs[0].Code)

	errs = v.ValidateQuizID("quiz'; DROP TABLE answers;--")
	require.Len(t, errs, 1)
	assert.Equal(t, domain.CodeInvalidFormat, errs[0].Code)
}
