package service

import (
	"errors"
	"time"

	apperrors "github.com/KarlovS28/uchettest/internal/errors"

	"github.com/go-playground/validator/v10"
)

// dateLayouts are the accepted date encodings, in order of preference. ISO for
// API clients, dotted for values coming out of spreadsheets.
var dateLayouts = []string{"2006-01-02", "02.01.2006", time.RFC3339}

// parseDate parses a date in any accepted layout.
func parseDate(value string) (time.Time, error) {
	var lastErr error
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// formatDate renders a date the way spreadsheets expect it.
func formatDate(t time.Time) string {
	return t.Format("02.01.2006")
}

// validationError converts a validator failure into the 400-mapped error type.
func validationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperrors.NewValidationError(verrs[0].Field(), "failed on rule '"+verrs[0].Tag()+"'")
	}
	return apperrors.NewValidationError("", err.Error())
}
