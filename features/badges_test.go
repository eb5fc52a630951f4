package features

import (
	"testing"

	"github.com/namma-loo/api-go/models"
)

func badgeLabels(badges []Badge) []string {
	labels := make([]string, len(badges))
	for i, b := range badges {
		labels[i] = b.Label
	}
	return labels
}

func assertBadgeOrder(t *testing.T, got []Badge, want []string) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("Expected %d badges %v, got %d: %v", len(want), want, len(got), badgeLabels(got))
	}
	for i, label := range want {
		if got[i].Label != label {
			t.Errorf("Badge %d: expected %q, got %q (full order: %v)", i, label, got[i].Label, badgeLabels(got))
		}
	}
}

func TestBadgeOrderFullyEquipped(t *testing.T) {
	toilet := &models.Toilet{
		IsPaid:          "Yes",
		Wheelchair:      "Yes",
		Gender:          "Female",
		NapkinVendor:    "Yes",
		WesternOrIndian: "Both",
	}

	assertBadgeOrder(t, Badges(toilet),
		[]string{"Paid", "Accessible", "Women Only", "Napkin Vendor", "Western", "Indian"})
}

func TestBadgeOrderEverything(t *testing.T) {
	toilet := &models.Toilet{
		IsPaid:          "Yes",
		Wheelchair:      "Yes",
		Gender:          "Separate",
		Baby:            "Yes",
		Shower:          "Yes",
		NapkinVendor:    "Yes",
		WesternOrIndian: "Both",
	}

	assertBadgeOrder(t, Badges(toilet),
		[]string{"Paid", "Accessible", "Separate", "Baby Care", "Shower", "Napkin Vendor", "Western", "Indian"})
}

func TestBadgeDefaults(t *testing.T) {
	// Unknown everywhere still yields payment, gender and type badges.
	toilet := &models.Toilet{
		IsPaid:          "Unknown",
		Wheelchair:      "Unknown",
		Gender:          "Unknown",
		WesternOrIndian: "Unknown",
	}

	assertBadgeOrder(t, Badges(toilet), []string{"Free", "Unisex", "Western"})
}

func TestBadgeColorsAreFixedPerID(t *testing.T) {
	toilet := &models.Toilet{IsPaid: "No", Gender: "Male", WesternOrIndian: "Indian"}

	badges := Badges(toilet)
	want := map[string][2]string{
		"free":        {"#FFFFFF", "#34C759"},
		"gender-male": {"#FFFFFF", "#2196F3"},
		"indian":      {"#FFFFFF", "#795548"},
	}
	for _, b := range badges {
		colors, ok := want[b.ID]
		if !ok {
			t.Errorf("Unexpected badge id %q", b.ID)
			continue
		}
		if b.Color != colors[0] || b.BackgroundColor != colors[1] {
			t.Errorf("Badge %q colors = (%s, %s), want (%s, %s)",
				b.ID, b.Color, b.BackgroundColor, colors[0], colors[1])
		}
	}
}
