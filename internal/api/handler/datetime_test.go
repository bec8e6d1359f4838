package handler

import (
	"errors"
	"testing"
	"time"

	"github.com/dayplan-app/planner-api/internal/core/domain"
)

func TestParseDatetime(t *testing.T) {
	cases := []struct {
		in   string
		want time.Time
	}{
		{"2026-03-01T09:30:00Z", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"2026-03-01T09:30:00", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"2026-03-01T09:30", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"2026-03-01 09:30:00", time.Date(2026, 3, 1, 9, 30, 0, 0, time.UTC)},
		{"2026-03-01", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
		{"  2026-03-01  ", time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tc := range cases {
		got, err := parseDatetime(tc.in)
		if err != nil {
			t.Fatalf("parseDatetime(%q): %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("parseDatetime(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseDatetime_Invalid(t *testing.T) {
	for _, in := range []string{"", "   ", "tomorrow", "2026-13-40", "01/03/2026"} {
		if _, err := parseDatetime(in); !errors.Is(err, domain.ErrValidation) {
			t.Fatalf("parseDatetime(%q): expected ErrValidation, got %v", in, err)
		}
	}
}
