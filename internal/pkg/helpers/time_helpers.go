package helpers

import (
	"time"

	"github.com/rs/zerolog/log"
)

// Date layouts accepted by CoerceDate, tried in order.
var dateLayouts = []string{"2006-01-02", "02/01/2006", "01-02-2006"}

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// ParseDate parses a date in ISO form (2006-01-02).
func ParseDate(value string) (time.Time, error) {
	return time.Parse("2006-01-02", value)
}

// CoerceDate parses a date trying several common layouts. Returns nil when the
// value is empty or matches no layout, so malformed spreadsheet cells degrade
// to an absent value instead of rejecting the row.
func CoerceDate(value string) *time.Time {
	if value == "" {
		return nil
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return &t
		}
	}
	return nil
}

// Age computes whole years between dob and now, decrementing when the
// birthday has not yet occurred this year.
func Age(dob, now time.Time) int {
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	return years
}
