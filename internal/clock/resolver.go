package clock

import (
	"fmt"
	"strings"
	"time"

	// Embedded zone database so LoadLocation works without a system tzdb.
	_ "time/tzdata"

	derr "github.com/roamly/roamly/internal/domain/errors"
	"github.com/roamly/roamly/internal/domain/models"
)

// Zones for well-known place names, used when a destination record omits
// its own TimeZone field.
var fallbackZones = map[string]string{
	"new york":    "America/New_York",
	"los angeles": "America/Los_Angeles",
	"london":      "Europe/London",
	"paris":       "Europe/Paris",
	"tokyo":       "Asia/Tokyo",
	"dubai":       "Asia/Dubai",
	"sydney":      "Australia/Sydney",
	"karachi":     "Asia/Karachi",
}

// ResolveTimeZone picks the zone for a destination: an explicit TimeZone
// field wins verbatim (it is not validated here, only at format time),
// otherwise the fallback table is consulted by name. An empty return means
// no clock is shown for this item.
func ResolveTimeZone(item models.Destination) string {
	if zone := strings.TrimSpace(item.TimeZone); zone != "" {
		return zone
	}

	if zone, ok := fallbackZones[strings.ToLower(strings.TrimSpace(item.Name))]; ok {
		return zone
	}

	return ""
}

// CurrentTime formats the current instant in the given zone as a 12-hour
// clock, e.g. "3:07:45 PM". A zone the runtime database does not know
// yields ErrUnknownTimeZone.
func CurrentTime(timeZone string) (string, error) {
	return currentTimeAt(timeZone, time.Now())
}

func currentTimeAt(timeZone string, now time.Time) (string, error) {
	loc, err := time.LoadLocation(timeZone)
	if err != nil {
		return "", fmt.Errorf("%w: %q", derr.ErrUnknownTimeZone, timeZone)
	}

	return now.In(loc).Format("3:04:05 PM"), nil
}
