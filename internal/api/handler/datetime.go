package handler

import (
	"fmt"
	"strings"
	"time"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

// Accepted datetime layouts, most specific first. The frontend has sent all
// of these shapes at one point or another; a bare date is taken as midnight.
var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

// parseDatetime parses a lenient ISO-8601 datetime. A space separator is
// normalized to 'T' before matching. Failures carry the validation sentinel.
func parseDatetime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: empty datetime", domain.ErrValidation)
	}
	value = strings.Replace(value, " ", "T", 1)

	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: invalid datetime %q (use ISO 8601)", domain.ErrValidation, value)
}
