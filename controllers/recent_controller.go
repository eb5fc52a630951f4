package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/namma-loo/api-go/models"
	"github.com/namma-loo/api-go/recents"
)

type RecentController struct {
	DB      *gorm.DB
	Recents *recents.Cache
}

func NewRecentController(db *gorm.DB, recentCache *recents.Cache) *RecentController {
	return &RecentController{DB: db, Recents: recentCache}
}

// RecordView marks a toilet as viewed. Missing toilets 404 before the
// cache is touched.
func (rc *RecentController) RecordView(c *gin.Context) {
	id := c.Param("id")

	var toilet models.Toilet
	if err := rc.DB.First(&toilet, id).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Toilet not found"})
		return
	}

	rc.Recents.RecordView(c.Request.Context(), toilet)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// GetRecent returns viewed toilets, most recent first.
func (rc *RecentController) GetRecent(c *gin.Context) {
	entries := rc.Recents.Recent(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"recents": entries, "count": len(entries)})
}

// GetMostViewed returns the top toilets by view count.
func (rc *RecentController) GetMostViewed(c *gin.Context) {
	entries := rc.Recents.MostViewed(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"recents": entries, "count": len(entries)})
}

func (rc *RecentController) GetStats(c *gin.Context) {
	c.JSON(http.StatusOK, rc.Recents.GetStats(c.Request.Context()))
}

func (rc *RecentController) RemoveRecent(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid toilet id"})
		return
	}

	rc.Recents.Remove(c.Request.Context(), uint(id))
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (rc *RecentController) ClearRecents(c *gin.Context) {
	rc.Recents.Clear(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"success": true})
}
