package features

import (
	"strings"
	"time"
)

type HoursStatus string

const (
	StatusOpen    HoursStatus = "open"
	StatusClosed  HoursStatus = "closed"
	StatusUnknown HoursStatus = "unknown"
)

// ParsedHours is a best-effort classification of a free-text working
// hours string. There is no structured schedule in the source data, so
// this is a heuristic, not a guarantee.
type ParsedHours struct {
	IsOpen24Hours bool
	IsClosed      bool
	Status        HoursStatus
}

// ParseWorkingHours classifies the hours string against the given clock.
// "24 hours" style strings are always open, explicit "closed" (minus
// negations like "never closed") is closed, and anything else is assumed
// open between 06:00 and 22:59 local time.
func ParseWorkingHours(workingHours string, now time.Time) ParsedHours {
	if strings.TrimSpace(workingHours) == "" {
		return ParsedHours{IsClosed: true, Status: StatusUnknown}
	}

	h := strings.ToLower(strings.TrimSpace(workingHours))

	if strings.Contains(h, "24 hours") || strings.Contains(h, "24/7") ||
		strings.Contains(h, "always open") {
		return ParsedHours{IsOpen24Hours: true, Status: StatusOpen}
	}

	if strings.Contains(h, "closed") &&
		!strings.Contains(h, "never closed") &&
		!strings.Contains(h, "not closed") {
		return ParsedHours{IsClosed: true, Status: StatusClosed}
	}

	if hour := now.Hour(); hour >= 6 && hour <= 22 {
		return ParsedHours{Status: StatusOpen}
	}
	return ParsedHours{Status: StatusClosed}
}

// FormatWorkingHours renders the hours string for display.
func FormatWorkingHours(workingHours string, now time.Time) string {
	if strings.TrimSpace(workingHours) == "" {
		return "Hours not available"
	}
	parsed := ParseWorkingHours(workingHours, now)
	if parsed.IsOpen24Hours {
		return "Open 24 Hours"
	}
	if parsed.IsClosed {
		return "Closed"
	}
	return workingHours
}
