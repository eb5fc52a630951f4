package controllers

import (
	"math"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/namma-loo/api-go/config"
	"github.com/namma-loo/api-go/features"
	"github.com/namma-loo/api-go/geo"
	"github.com/namma-loo/api-go/models"
	"github.com/namma-loo/api-go/ranking"
	"github.com/namma-loo/api-go/recents"
)

type ToiletController struct {
	DB       *gorm.DB
	Recents  *recents.Cache
	Defaults config.DefaultPosition
}

func NewToiletController(db *gorm.DB, recentCache *recents.Cache) *ToiletController {
	return &ToiletController{
		DB:       db,
		Recents:  recentCache,
		Defaults: config.GetDefaultPosition(),
	}
}

type ToiletsQuery struct {
	Search       string   `form:"search"`
	City         string   `form:"city"`
	Latitude     *float64 `form:"lat"`
	Longitude    *float64 `form:"lng"`
	MaxDistance  *float64 `form:"maxDistance"`
	MinRating    *float64 `form:"minRating"`
	FreeOnly     bool     `form:"freeOnly"`
	Wheelchair   bool     `form:"wheelchair"`
	Baby         bool     `form:"baby"`
	Shower       bool     `form:"shower"`
	NapkinVendor bool     `form:"napkinVendor"`
	Gender       string   `form:"gender"`
	ToiletType   string   `form:"toiletType"`
	OpenNow      bool     `form:"openNow"`
	MinReviews   *int     `form:"minReviews"`
	SortBy       string   `form:"sortBy"`
	Page         int      `form:"page,default=1" binding:"omitempty,min=1"`
	Limit        int      `form:"limit,default=50" binding:"omitempty,min=1,max=100"`
}

// GetToilets godoc
// @Summary List toilets with search, filters, ranking and pagination
// @Tags toilets
// @Produce json
// @Param search query string false "Substring match on name, address or city (bypasses structured filters)"
// @Param lat query number false "User latitude"
// @Param lng query number false "User longitude"
// @Param maxDistance query number false "Maximum distance in km"
// @Param minRating query number false "Minimum aggregate rating"
// @Param sortBy query string false "Sort field: rating (default) or distance"
// @Success 200 {object} ranking.Result
// @Router /toilets [get]
func (tc *ToiletController) GetToilets(c *gin.Context) {
	var query ToiletsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	db := tc.DB.Model(&models.Toilet{})
	if query.City != "" {
		db = db.Where("city ILIKE ?", "%"+query.City+"%")
	}

	var candidates []models.Toilet
	if err := db.Find(&candidates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch toilets"})
		return
	}

	result := ranking.Rank(candidates, ranking.Request{
		Search:   query.Search,
		Filters:  query.filterConfig(),
		Position: tc.position(query.Latitude, query.Longitude),
		SortBy:   query.SortBy,
		Page:     query.Page,
		Limit:    query.Limit,
	})

	c.JSON(http.StatusOK, result)
}

// GetToiletByID returns one toilet annotated with distance and badges,
// and records the view in the recency cache.
func (tc *ToiletController) GetToiletByID(c *gin.Context) {
	id := c.Param("id")

	var toilet models.Toilet
	if err := tc.DB.First(&toilet, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Toilet not found"})
		return
	}

	var lat, lng *float64
	if v, err := strconv.ParseFloat(c.Query("lat"), 64); err == nil {
		lat = &v
	}
	if v, err := strconv.ParseFloat(c.Query("lng"), 64); err == nil {
		lng = &v
	}

	var dist *float64
	if pos := tc.position(lat, lng); pos != nil && geo.IsValidCoordinate(toilet.Latitude, toilet.Longitude) {
		d := geo.Distance(pos.Latitude, pos.Longitude, toilet.Latitude, toilet.Longitude)
		dist = &d
	}

	tc.Recents.RecordView(c.Request.Context(), toilet)

	c.JSON(http.StatusOK, ranking.Item{
		Toilet:       toilet,
		Distance:     dist,
		DistanceText: geo.FormatDistance(dist),
		Badges:       features.Badges(&toilet),
	})
}

// GetNearbyToilets godoc
// @Summary List toilets within a radius of a point, nearest first
// @Tags toilets
// @Produce json
// @Param lat path number true "Latitude"
// @Param lng path number true "Longitude"
// @Param radius query number false "Radius in km (default 10)"
// @Router /toilets/near/{lat}/{lng} [get]
func (tc *ToiletController) GetNearbyToilets(c *gin.Context) {
	lat, latErr := strconv.ParseFloat(c.Param("lat"), 64)
	lng, lngErr := strconv.ParseFloat(c.Param("lng"), 64)
	if latErr != nil || lngErr != nil || !geo.IsValidCoordinate(lat, lng) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coordinates"})
		return
	}

	radius := 10.0
	if v, err := strconv.ParseFloat(c.Query("radius"), 64); err == nil && v > 0 {
		radius = v
	}

	// Bounding-box prefilter in SQL, exact haversine afterwards.
	latDelta := radius / 111.0
	lngDelta := radius / (111.0 * cosDeg(lat))

	var toilets []models.Toilet
	err := tc.DB.
		Where("latitude BETWEEN ? AND ?", lat-latDelta, lat+latDelta).
		Where("longitude BETWEEN ? AND ?", lng-lngDelta, lng+lngDelta).
		Find(&toilets).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nearby toilets"})
		return
	}

	var items []ranking.Item
	for _, t := range toilets {
		if !geo.IsValidCoordinate(t.Latitude, t.Longitude) {
			continue
		}
		d := geo.Distance(lat, lng, t.Latitude, t.Longitude)
		if d > radius {
			continue
		}
		dist := d
		items = append(items, ranking.Item{
			Toilet:       t,
			Distance:     &dist,
			DistanceText: geo.FormatDistance(&dist),
			Badges:       features.Badges(&t),
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		return *items[i].Distance < *items[j].Distance
	})

	c.JSON(http.StatusOK, gin.H{"toilets": items, "count": len(items)})
}

// GetTopRated returns toilets rated 4.0 or higher, best first.
func (tc *ToiletController) GetTopRated(c *gin.Context) {
	limit := 10
	if v, err := strconv.Atoi(c.Param("limit")); err == nil && v > 0 {
		limit = v
	}

	var toilets []models.Toilet
	err := tc.DB.
		Where("rating >= ?", 4.0).
		Order("rating DESC, review_count DESC").
		Limit(limit).
		Find(&toilets).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch top rated toilets"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"toilets": toilets})
}

func (q *ToiletsQuery) filterConfig() ranking.FilterConfig {
	return ranking.FilterConfig{
		MaxDistance:  q.MaxDistance,
		MinRating:    q.MinRating,
		FreeOnly:     q.FreeOnly,
		Wheelchair:   q.Wheelchair,
		Baby:         q.Baby,
		Shower:       q.Shower,
		NapkinVendor: q.NapkinVendor,
		Gender:       q.Gender,
		ToiletType:   q.ToiletType,
		OpenNow:      q.OpenNow,
		MinReviews:   q.MinReviews,
	}
}

func cosDeg(deg float64) float64 {
	c := math.Cos(deg * math.Pi / 180)
	if c < 0.01 {
		// near the poles the box degenerates; clamp instead of dividing by ~0
		return 0.01
	}
	return c
}

// position resolves the user position for a request, falling back to the
// configured default when none is supplied. An explicitly supplied but
// invalid position is passed through so distances degrade to unknown.
func (tc *ToiletController) position(lat, lng *float64) *ranking.Position {
	if lat == nil || lng == nil {
		return &ranking.Position{Latitude: tc.Defaults.Latitude, Longitude: tc.Defaults.Longitude}
	}
	return &ranking.Position{Latitude: *lat, Longitude: *lng}
}
