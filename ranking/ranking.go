package ranking

import (
	"math"
	"sort"
	"strings"
	"time"

	"github.com/namma-loo/api-go/features"
	"github.com/namma-loo/api-go/geo"
	"github.com/namma-loo/api-go/models"
)

const (
	SortByRating   = "rating"
	SortByDistance = "distance"

	DefaultLimit = 50
)

// Position is the user's location for distance computation. A nil or
// invalid position makes every distance unknown.
type Position struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// FilterConfig is the set of optional predicates. Zero values (nil,
// false, "all", empty) mean the predicate does not constrain.
type FilterConfig struct {
	MaxDistance  *float64 `json:"maxDistance"`
	MinRating    *float64 `json:"minRating"`
	FreeOnly     bool     `json:"freeOnly"`
	Wheelchair   bool     `json:"wheelchair"`
	Baby         bool     `json:"baby"`
	Shower       bool     `json:"shower"`
	NapkinVendor bool     `json:"napkinVendor"`
	Gender       string   `json:"gender"`
	ToiletType   string   `json:"toiletType"`
	OpenNow      bool     `json:"openNow"`
	MinReviews   *int     `json:"minReviews"`
}

// ActiveCount returns how many predicates are constraining. Used for the
// filter-count UI affordance only, never for ranking.
func (f FilterConfig) ActiveCount() int {
	count := 0
	if f.MaxDistance != nil {
		count++
	}
	if f.MinRating != nil {
		count++
	}
	if f.FreeOnly {
		count++
	}
	if f.Wheelchair {
		count++
	}
	if f.Baby {
		count++
	}
	if f.Shower {
		count++
	}
	if f.NapkinVendor {
		count++
	}
	if f.Gender != "" && f.Gender != "all" {
		count++
	}
	if f.ToiletType != "" && f.ToiletType != "all" {
		count++
	}
	if f.OpenNow {
		count++
	}
	if f.MinReviews != nil {
		count++
	}
	return count
}

type Request struct {
	Search   string
	Filters  FilterConfig
	Position *Position
	SortBy   string
	Page     int
	Limit    int
	Now      time.Time
}

// Item is one ranked result: the toilet plus its resolved distance and
// derived badges. Distance is nil when either end has no usable
// coordinates.
type Item struct {
	models.Toilet
	Distance     *float64         `json:"distance"`
	DistanceText string           `json:"distanceText"`
	Badges       []features.Badge `json:"badges"`
}

type PageInfo struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type Result struct {
	Items      []Item   `json:"toilets"`
	Pagination PageInfo `json:"pagination"`
}

// Rank filters, annotates, sorts and paginates the candidate set.
//
// A non-empty search restricts candidates by substring match on name,
// address and city and bypasses the structured predicates entirely; the
// two are mutually exclusive. Clients rely on that coupling; see
// TestSearchBypassesStructuredFilters before changing it.
func Rank(candidates []models.Toilet, req Request) Result {
	if req.Page < 1 {
		req.Page = 1
	}
	if req.Limit < 1 {
		req.Limit = DefaultLimit
	}
	now := req.Now
	if now.IsZero() {
		now = time.Now()
	}

	var survivors []models.Toilet
	if req.Search != "" {
		needle := strings.ToLower(req.Search)
		for _, t := range candidates {
			if strings.Contains(strings.ToLower(t.Name), needle) ||
				strings.Contains(strings.ToLower(t.Address), needle) ||
				strings.Contains(strings.ToLower(t.City), needle) {
				survivors = append(survivors, t)
			}
		}
	} else {
		for _, t := range candidates {
			if matchesFilters(t, req.Filters, now) {
				survivors = append(survivors, t)
			}
		}
	}

	items := make([]Item, 0, len(survivors))
	for _, t := range survivors {
		dist := resolveDistance(t, req.Position)
		if req.Filters.MaxDistance != nil {
			if dist == nil || *dist > *req.Filters.MaxDistance {
				continue
			}
		}
		items = append(items, Item{
			Toilet:       t,
			Distance:     dist,
			DistanceText: geo.FormatDistance(dist),
			Badges:       features.Badges(&t),
		})
	}

	sortItems(items, req.SortBy)

	total := len(items)
	pages := int(math.Ceil(float64(total) / float64(req.Limit)))

	offset := (req.Page - 1) * req.Limit
	if offset > total {
		offset = total
	}
	end := offset + req.Limit
	if end > total {
		end = total
	}
	items = items[offset:end]

	return Result{
		Items: items,
		Pagination: PageInfo{
			Page:  req.Page,
			Limit: req.Limit,
			Total: total,
			Pages: pages,
		},
	}
}

func matchesFilters(t models.Toilet, f FilterConfig, now time.Time) bool {
	if f.MinRating != nil && t.Rating < *f.MinRating {
		return false
	}
	if f.FreeOnly && t.IsPaid == models.AmenityYes {
		return false
	}
	if f.Wheelchair && t.Wheelchair != models.AmenityYes {
		return false
	}
	if f.Baby && t.Baby != models.AmenityYes {
		return false
	}
	if f.Shower && t.Shower != models.AmenityYes {
		return false
	}
	if f.NapkinVendor && t.NapkinVendor != models.AmenityYes {
		return false
	}
	if f.Gender != "" && f.Gender != "all" {
		if features.ClassifyGender(t.Gender) != features.Gender(f.Gender) {
			return false
		}
	}
	if f.ToiletType != "" && f.ToiletType != "all" {
		if features.ClassifyToiletType(t.WesternOrIndian) != features.ToiletType(f.ToiletType) {
			return false
		}
	}
	if f.OpenNow {
		if features.ParseWorkingHours(t.WorkingHours, now).Status != features.StatusOpen {
			return false
		}
	}
	if f.MinReviews != nil && t.ReviewCount < *f.MinReviews {
		return false
	}
	return true
}

func resolveDistance(t models.Toilet, pos *Position) *float64 {
	if pos == nil {
		return nil
	}
	if !geo.IsValidCoordinate(pos.Latitude, pos.Longitude) {
		return nil
	}
	if !geo.IsValidCoordinate(t.Latitude, t.Longitude) {
		return nil
	}
	d := geo.Distance(pos.Latitude, pos.Longitude, t.Latitude, t.Longitude)
	return &d
}

// sortItems orders items by the requested field. Rating sorts descending
// with distance ascending as tie-break; distance sorts ascending.
// Unknown distances always land last. Stable so equal items keep their
// input order.
func sortItems(items []Item, sortBy string) {
	switch sortBy {
	case SortByDistance, "near":
		sort.SliceStable(items, func(i, j int) bool {
			return distanceLess(items[i].Distance, items[j].Distance)
		})
	default:
		sort.SliceStable(items, func(i, j int) bool {
			if items[i].Rating != items[j].Rating {
				return items[i].Rating > items[j].Rating
			}
			return distanceLess(items[i].Distance, items[j].Distance)
		})
	}
}

func distanceLess(a, b *float64) bool {
	if a == nil {
		return false
	}
	if b == nil {
		return true
	}
	return *a < *b
}
