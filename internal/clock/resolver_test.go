package clock

import (
	"errors"
	"testing"
	"time"

	derr "github.com/roamly/roamly/internal/domain/errors"
	"github.com/roamly/roamly/internal/domain/models"
)

func TestResolveTimeZone_ExplicitFieldWinsVerbatim(t *testing.T) {
	// The explicit field is not validated at resolution time; a bogus zone
	// only fails later, at format time.
	zone := ResolveTimeZone(models.Destination{Name: "Nowhere", TimeZone: "Mars/Colony"})
	if zone != "Mars/Colony" {
		t.Fatalf("expected Mars/Colony, got %q", zone)
	}
}

func TestResolveTimeZone_FallbackTableByName(t *testing.T) {
	cases := []struct {
		name string
		want string
	}{
		{"Paris", "Europe/Paris"},
		{"paris", "Europe/Paris"},
		{"  Tokyo  ", "Asia/Tokyo"},
		{"New York", "America/New_York"},
		{"LOS ANGELES", "America/Los_Angeles"},
		{"London", "Europe/London"},
		{"Dubai", "Asia/Dubai"},
		{"Sydney", "Australia/Sydney"},
		{"Karachi", "Asia/Karachi"},
	}

	for _, tc := range cases {
		zone := ResolveTimeZone(models.Destination{Name: tc.name})
		if zone != tc.want {
			t.Fatalf("name %q: expected %q, got %q", tc.name, tc.want, zone)
		}
	}
}

func TestResolveTimeZone_UnknownNameResolvesToNone(t *testing.T) {
	if zone := ResolveTimeZone(models.Destination{Name: "Sydney Opera House"}); zone != "" {
		t.Fatalf("expected no zone, got %q", zone)
	}
	if zone := ResolveTimeZone(models.Destination{}); zone != "" {
		t.Fatalf("expected no zone for empty record, got %q", zone)
	}
}

func TestCurrentTimeAt_TwelveHourFormat(t *testing.T) {
	instant := time.Date(2026, time.January, 2, 15, 7, 45, 0, time.UTC)

	got, err := currentTimeAt("UTC", instant)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "3:07:45 PM" {
		t.Fatalf("expected 3:07:45 PM, got %q", got)
	}
}

func TestCurrentTimeAt_ConvertsToZone(t *testing.T) {
	// 15:07:45 UTC in January is 10:07:45 in New York (EST, UTC-5).
	instant := time.Date(2026, time.January, 2, 15, 7, 45, 0, time.UTC)

	got, err := currentTimeAt("America/New_York", instant)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "10:07:45 AM" {
		t.Fatalf("expected 10:07:45 AM, got %q", got)
	}
}

func TestCurrentTimeAt_UnknownZoneFails(t *testing.T) {
	_, err := currentTimeAt("Mars/Colony", time.Now())
	if !errors.Is(err, derr.ErrUnknownTimeZone) {
		t.Fatalf("expected ErrUnknownTimeZone, got %v", err)
	}
}
