package ranking

import (
	"fmt"
	"testing"
	"time"

	"github.com/namma-loo/api-go/models"
)

var userPos = &Position{Latitude: 12.9716, Longitude: 77.5946}

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func itemIDs(items []Item) []uint {
	ids := make([]uint, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

func TestRankMinRatingEndToEnd(t *testing.T) {
	candidates := []models.Toilet{
		// A: high rating but unresolvable coordinates
		{ID: 1, Name: "A", Rating: 4.5, Latitude: 0, Longitude: 0},
		// B: ~2km away but below the rating threshold
		{ID: 2, Name: "B", Rating: 3.0, Latitude: 12.9896, Longitude: 77.5946},
	}

	result := Rank(candidates, Request{
		Filters:  FilterConfig{MinRating: floatPtr(4.0)},
		Position: userPos,
	})

	if len(result.Items) != 1 || result.Items[0].ID != 1 {
		t.Fatalf("Expected only toilet A, got %v", itemIDs(result.Items))
	}
	if result.Items[0].Distance != nil {
		t.Errorf("Expected nil distance for toilet at (0,0), got %f", *result.Items[0].Distance)
	}
	if result.Items[0].DistanceText != "Unknown" {
		t.Errorf("Expected distance text 'Unknown', got %q", result.Items[0].DistanceText)
	}
}

func TestPaginationTotals(t *testing.T) {
	var candidates []models.Toilet
	for i := 1; i <= 50; i++ {
		candidates = append(candidates, models.Toilet{
			ID:     uint(i),
			Name:   fmt.Sprintf("Toilet %d", i),
			Rating: float64(i%5) + 0.1,
		})
	}

	result := Rank(candidates, Request{Page: 3, Limit: 10})

	if len(result.Items) != 10 {
		t.Errorf("Expected 10 items on page 3, got %d", len(result.Items))
	}
	if result.Pagination.Total != 50 {
		t.Errorf("Expected total 50, got %d", result.Pagination.Total)
	}
	if result.Pagination.Pages != 5 {
		t.Errorf("Expected 5 pages, got %d", result.Pagination.Pages)
	}

	// Last page past the end is empty, not an error.
	result = Rank(candidates, Request{Page: 6, Limit: 10})
	if len(result.Items) != 0 {
		t.Errorf("Expected empty page 6, got %d items", len(result.Items))
	}
	if result.Pagination.Pages != 5 {
		t.Errorf("Expected 5 pages, got %d", result.Pagination.Pages)
	}
}

func TestEmptyCandidates(t *testing.T) {
	result := Rank(nil, Request{})
	if len(result.Items) != 0 || result.Pagination.Total != 0 || result.Pagination.Pages != 0 {
		t.Errorf("Expected empty result, got %+v", result.Pagination)
	}
}

func TestNoActiveFiltersKeepsAll(t *testing.T) {
	candidates := []models.Toilet{
		{ID: 1, Rating: 2.0, IsPaid: "Yes"},
		{ID: 2, Rating: 4.0, Wheelchair: "No"},
		{ID: 3},
	}

	result := Rank(candidates, Request{})
	if result.Pagination.Total != 3 {
		t.Errorf("Inactive filters must not constrain; got total %d", result.Pagination.Total)
	}
}

func TestFilterMonotonicity(t *testing.T) {
	candidates := []models.Toilet{
		{ID: 1, Rating: 4.5, IsPaid: "No", Wheelchair: "Yes", Gender: "Female", ReviewCount: 30},
		{ID: 2, Rating: 4.0, IsPaid: "Yes", Wheelchair: "Yes", Gender: "Unisex", ReviewCount: 5},
		{ID: 3, Rating: 3.2, IsPaid: "No", Wheelchair: "No", Gender: "Male", ReviewCount: 12},
		{ID: 4, Rating: 4.9, IsPaid: "No", Wheelchair: "Yes", Gender: "Separate", ReviewCount: 50},
	}

	f1 := FilterConfig{MinRating: floatPtr(3.5)}
	f2 := FilterConfig{MinRating: floatPtr(3.5), Wheelchair: true, FreeOnly: true}

	loose := Rank(candidates, Request{Filters: f1})
	tight := Rank(candidates, Request{Filters: f2})

	looseIDs := make(map[uint]bool)
	for _, it := range loose.Items {
		looseIDs[it.ID] = true
	}
	for _, it := range tight.Items {
		if !looseIDs[it.ID] {
			t.Errorf("Toilet %d passed the stricter filter but not the looser one", it.ID)
		}
	}
	if tight.Pagination.Total > loose.Pagination.Total {
		t.Errorf("Stricter filter returned more items (%d > %d)", tight.Pagination.Total, loose.Pagination.Total)
	}
}

// The text search deliberately bypasses every structured predicate: a
// record matched by name is returned even when it fails active filters.
// Clients depend on this; changing it to AND semantics must flip this
// test on purpose.
func TestSearchBypassesStructuredFilters(t *testing.T) {
	candidates := []models.Toilet{
		{ID: 1, Name: "Central Station Toilet", Rating: 2.0, IsPaid: "Yes"},
		{ID: 2, Name: "Park Restroom", Rating: 4.8, IsPaid: "No"},
	}

	result := Rank(candidates, Request{
		Search:  "central",
		Filters: FilterConfig{MinRating: floatPtr(4.0), FreeOnly: true},
	})

	if len(result.Items) != 1 || result.Items[0].ID != 1 {
		t.Fatalf("Search should match by name only, got %v", itemIDs(result.Items))
	}
}

func TestSearchMatchesAddressAndCity(t *testing.T) {
	candidates := []models.Toilet{
		{ID: 1, Name: "One", Address: "12 MG Road"},
		{ID: 2, Name: "Two", City: "Mysore"},
		{ID: 3, Name: "Three", City: "Chennai"},
	}

	result := Rank(candidates, Request{Search: "mysore"})
	if len(result.Items) != 1 || result.Items[0].ID != 2 {
		t.Errorf("Expected city match for toilet 2, got %v", itemIDs(result.Items))
	}

	result = Rank(candidates, Request{Search: "mg road"})
	if len(result.Items) != 1 || result.Items[0].ID != 1 {
		t.Errorf("Expected address match for toilet 1, got %v", itemIDs(result.Items))
	}
}

func TestStructuredPredicates(t *testing.T) {
	candidates := []models.Toilet{
		{ID: 1, IsPaid: "Yes", Baby: "Yes", Shower: "No", Gender: "Ladies", WesternOrIndian: "Indian", ReviewCount: 3, WorkingHours: "closed"},
		{ID: 2, IsPaid: "No", Baby: "Yes", Shower: "Yes", Gender: "Gents", WesternOrIndian: "Both", ReviewCount: 20, WorkingHours: "24/7"},
		{ID: 3, IsPaid: "Unknown", Baby: "No", Shower: "Yes", Gender: "Common", WesternOrIndian: "Western", ReviewCount: 8, WorkingHours: "24 hours"},
	}

	tests := []struct {
		name    string
		filters FilterConfig
		want    []uint
	}{
		{"freeOnly", FilterConfig{FreeOnly: true}, []uint{2, 3}},
		{"baby", FilterConfig{Baby: true}, []uint{1, 2}},
		{"shower", FilterConfig{Shower: true}, []uint{2, 3}},
		{"genderFemale", FilterConfig{Gender: "female"}, []uint{1}},
		{"genderAll", FilterConfig{Gender: "all"}, []uint{1, 2, 3}},
		{"typeBoth", FilterConfig{ToiletType: "both"}, []uint{2}},
		{"openNow", FilterConfig{OpenNow: true}, []uint{2, 3}},
		{"minReviews", FilterConfig{MinReviews: intPtr(10)}, []uint{2}},
	}

	for _, tt := range tests {
		result := Rank(candidates, Request{Filters: tt.filters, Now: time.Date(2025, 6, 15, 3, 0, 0, 0, time.UTC)})
		got := itemIDs(result.Items)
		if len(got) != len(tt.want) {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
			continue
		}
		inResult := make(map[uint]bool)
		for _, id := range got {
			inResult[id] = true
		}
		for _, id := range tt.want {
			if !inResult[id] {
				t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
			}
		}
	}
}

func TestMaxDistanceDropsUnknownDistance(t *testing.T) {
	candidates := []models.Toilet{
		{ID: 1, Latitude: 12.9796, Longitude: 77.5946}, // under 1km away
		{ID: 2, Latitude: 13.9716, Longitude: 77.5946}, // ~111km away
		{ID: 3, Latitude: 0, Longitude: 0},             // unknown
	}

	result := Rank(candidates, Request{
		Filters:  FilterConfig{MaxDistance: floatPtr(5)},
		Position: userPos,
	})

	if len(result.Items) != 1 || result.Items[0].ID != 1 {
		t.Errorf("Expected only the close toilet, got %v", itemIDs(result.Items))
	}
}

func TestSortByDistanceNullsLast(t *testing.T) {
	candidates := []models.Toilet{
		{ID: 1, Latitude: 0, Longitude: 0},             // unknown distance
		{ID: 2, Latitude: 13.0716, Longitude: 77.5946}, // farther
		{ID: 3, Latitude: 12.9796, Longitude: 77.5946}, // nearest
	}

	result := Rank(candidates, Request{SortBy: SortByDistance, Position: userPos})

	got := itemIDs(result.Items)
	want := []uint{3, 2, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
}

func TestDefaultSortRatingWithDistanceTieBreak(t *testing.T) {
	candidates := []models.Toilet{
		{ID: 1, Rating: 4.0, Latitude: 13.0716, Longitude: 77.5946}, // farther
		{ID: 2, Rating: 4.5, Latitude: 0, Longitude: 0},
		{ID: 3, Rating: 4.0, Latitude: 12.9796, Longitude: 77.5946}, // nearer
	}

	result := Rank(candidates, Request{Position: userPos})

	got := itemIDs(result.Items)
	want := []uint{2, 3, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected order %v, got %v", want, got)
		}
	}
}

func TestInvalidUserPositionDegradesToUnknown(t *testing.T) {
	candidates := []models.Toilet{
		{ID: 1, Latitude: 12.9796, Longitude: 77.5946},
		{ID: 2, Latitude: 13.0716, Longitude: 77.5946},
	}

	result := Rank(candidates, Request{
		SortBy:   SortByDistance,
		Position: &Position{Latitude: 200, Longitude: 77},
	})

	if len(result.Items) != 2 {
		t.Fatalf("Malformed position must not drop items, got %d", len(result.Items))
	}
	for _, it := range result.Items {
		if it.Distance != nil {
			t.Errorf("Expected nil distance for toilet %d, got %f", it.ID, *it.Distance)
		}
		if it.DistanceText != "Unknown" {
			t.Errorf("Expected 'Unknown' distance text for toilet %d, got %q", it.ID, it.DistanceText)
		}
	}
}

func TestItemsCarryBadges(t *testing.T) {
	candidates := []models.Toilet{{ID: 1, IsPaid: "Yes", Gender: "Female", WesternOrIndian: "Western"}}

	result := Rank(candidates, Request{})
	if len(result.Items) != 1 {
		t.Fatalf("Expected one item, got %d", len(result.Items))
	}
	badges := result.Items[0].Badges
	if len(badges) != 3 || badges[0].Label != "Paid" {
		t.Errorf("Expected badges starting with Paid, got %v", badges)
	}
}

func TestActiveCount(t *testing.T) {
	if got := (FilterConfig{}).ActiveCount(); got != 0 {
		t.Errorf("Empty config should have 0 active filters, got %d", got)
	}

	full := FilterConfig{
		MaxDistance:  floatPtr(5),
		MinRating:    floatPtr(4),
		FreeOnly:     true,
		Wheelchair:   true,
		Baby:         true,
		Shower:       true,
		NapkinVendor: true,
		Gender:       "female",
		ToiletType:   "indian",
		OpenNow:      true,
		MinReviews:   intPtr(10),
	}
	if got := full.ActiveCount(); got != 11 {
		t.Errorf("Expected 11 active filters, got %d", got)
	}

	// "all" selectors do not count as active.
	allDefaults := FilterConfig{Gender: "all", ToiletType: "all"}
	if got := allDefaults.ActiveCount(); got != 0 {
		t.Errorf("'all' selectors should not count, got %d", got)
	}
}
