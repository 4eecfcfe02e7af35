package validation

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"learnboard/internal/analytics"
	"learnboard/internal/domain"
)

const (
	maxQuizIDLength = 64
	minYear         = 1970
	maxYear         = 9999
)

var validQuizID = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// Validator provides request validation functionality
type Validator struct {
	loc *time.Location
}

// NewValidator creates a new validator instance. Dates are read in loc.
func NewValidator(loc *time.Location) *Validator {
	if loc == nil {
		loc = time.UTC
	}
	return &Validator{loc: loc}
}

// ValidateLimit parses the activity limit. An empty value yields 0 so the service
// default applies.
func (v *Validator) ValidateLimit(raw string) (int, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("limit", raw)}
	}
	if n < 1 || n > analytics.MaxActivityLimit {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("limit", n, 1, analytics.MaxActivityLimit)}
	}
	return n, nil
}

// ValidateYear parses the heatmap year. An empty value yields 0.
func (v *Validator) ValidateYear(raw string) (int, domain.ValidationErrors) {
	if strings.TrimSpace(raw) == "" {
		return 0, nil
	}
	year, err := strconv.Atoi(raw)
	if err != nil {
		return 0, domain.ValidationErrors{domain.NewInvalidFormatError("year", raw)}
	}
	if year < minYear || year > maxYear {
		return 0, domain.ValidationErrors{domain.NewOutOfRangeError("year", year, minYear, maxYear)}
	}
	return year, nil
}

// ValidateDateRange parses the optional from and to dates (YYYY-MM-DD).
func (v *Validator) ValidateDateRange(from, to string) (*time.Time, *time.Time, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	parse := func(field, raw string) *time.Time {
		if strings.TrimSpace(raw) == "" {
			return nil
		}
		date, err := time.Parse(analytics.DateLayout, raw)
		if err != nil {
			errors = append(errors, domain.NewInvalidFormatError(field, raw))
			return nil
		}
		t := analytics.StartOfDate(date.Year(), date.Month(), date.Day(), v.loc)
		return &t
	}

	fromDate := parse("from", from)
	toDate := parse("to", to)
	if len(errors) > 0 {
		return nil, nil, errors
	}
	return fromDate, toDate, nil
}

// ValidateQuizID validates the quiz id path parameter
func (v *Validator) ValidateQuizID(quizID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(quizID) == "" {
		errors = append(errors, domain.NewMissingFieldError("quizId"))
		return errors
	}
	if len(quizID) > maxQuizIDLength || !validQuizID.MatchString(quizID) {
		errors = append(errors, domain.NewInvalidFormatError("quizId", quizID))
	}
	return errors
}
