package features

import (
	"testing"
	"time"
)

var (
	daytime   = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)
	lateNight = time.Date(2025, 6, 15, 23, 30, 0, 0, time.UTC)
)

func TestParseWorkingHours24h(t *testing.T) {
	for _, hours := range []string{"Open 24 Hours", "24/7", "always open", "24 hours daily"} {
		parsed := ParseWorkingHours(hours, lateNight)
		if !parsed.IsOpen24Hours || parsed.Status != StatusOpen {
			t.Errorf("%q should classify as open 24 hours, got %+v", hours, parsed)
		}
	}
}

func TestParseWorkingHoursClosed(t *testing.T) {
	parsed := ParseWorkingHours("Closed for renovation", daytime)
	if !parsed.IsClosed || parsed.Status != StatusClosed {
		t.Errorf("Expected closed, got %+v", parsed)
	}

	// Negated "closed" falls through to the daytime heuristic.
	parsed = ParseWorkingHours("never closed", daytime)
	if parsed.IsClosed {
		t.Errorf("'never closed' should not classify as closed, got %+v", parsed)
	}
}

func TestParseWorkingHoursDaytimeHeuristic(t *testing.T) {
	if got := ParseWorkingHours("6am - 10pm", daytime); got.Status != StatusOpen {
		t.Errorf("Expected open at 10:00, got %q", got.Status)
	}
	if got := ParseWorkingHours("6am - 10pm", lateNight); got.Status != StatusClosed {
		t.Errorf("Expected closed at 23:30, got %q", got.Status)
	}
}

func TestParseWorkingHoursEmpty(t *testing.T) {
	parsed := ParseWorkingHours("", daytime)
	if !parsed.IsClosed || parsed.Status != StatusUnknown {
		t.Errorf("Empty hours should be closed/unknown, got %+v", parsed)
	}
}

func TestFormatWorkingHours(t *testing.T) {
	tests := []struct {
		hours string
		want  string
	}{
		{"", "Hours not available"},
		{"open 24 hours", "Open 24 Hours"},
		{"Closed permanently", "Closed"},
		{"9am - 9pm", "9am - 9pm"},
	}

	for _, tt := range tests {
		if got := FormatWorkingHours(tt.hours, daytime); got != tt.want {
			t.Errorf("FormatWorkingHours(%q) = %q, want %q", tt.hours, got, tt.want)
		}
	}
}
