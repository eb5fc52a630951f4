package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/namma-loo/api-go/models"
	"github.com/namma-loo/api-go/utils"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

type CreateReviewInput struct {
	ToiletID   uint     `json:"toiletId" binding:"required"`
	Rating     int      `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string   `json:"reviewText" binding:"max=1000"`
	Images     []string `json:"images"`
}

type UpdateReviewInput struct {
	Rating     int      `json:"rating" binding:"required,min=1,max=5"`
	ReviewText string   `json:"reviewText" binding:"max=1000"`
	Images     []string `json:"images"`
}

// GetToiletReviews returns reviews for one toilet, newest first.
func (rc *ReviewController) GetToiletReviews(c *gin.Context) {
	toiletID := c.Param("toiletId")

	var reviews []models.Review
	err := rc.DB.
		Preload("User").
		Where("toilet_id = ?", toiletID).
		Order("created_at DESC").
		Find(&reviews).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reviews"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reviews": reviews, "count": len(reviews)})
}

func (rc *ReviewController) CreateReview(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input CreateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var toilet models.Toilet
	if err := rc.DB.First(&toilet, input.ToiletID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Toilet not found"})
		return
	}

	review := models.Review{
		ToiletID:   input.ToiletID,
		UserID:     user.UserID,
		Rating:     input.Rating,
		ReviewText: input.ReviewText,
		Images:     pq.StringArray(input.Images),
	}

	if err := rc.DB.Create(&review).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create review"})
		return
	}

	if err := rc.updateToiletStats(input.ToiletID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update toilet rating"})
		return
	}

	rc.DB.Preload("User").First(&review, review.ID)

	c.JSON(http.StatusCreated, review)
}

func (rc *ReviewController) UpdateReview(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input UpdateReviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var review models.Review
	if err := rc.DB.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if review.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your review"})
		return
	}

	updates := map[string]interface{}{
		"rating":      input.Rating,
		"review_text": input.ReviewText,
		"images":      pq.StringArray(input.Images),
	}
	if err := rc.DB.Model(&review).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update review"})
		return
	}

	if err := rc.updateToiletStats(review.ToiletID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update toilet rating"})
		return
	}

	c.JSON(http.StatusOK, review)
}

func (rc *ReviewController) DeleteReview(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var review models.Review
	if err := rc.DB.First(&review, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Review not found"})
		return
	}

	if review.UserID != user.UserID {
		c.JSON(http.StatusForbidden, gin.H{"error": "Not your review"})
		return
	}

	if err := rc.DB.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete review"})
		return
	}

	if err := rc.updateToiletStats(review.ToiletID); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update toilet rating"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// updateToiletStats recomputes the denormalized aggregate rating and
// review count on the toilet from its live reviews.
func (rc *ReviewController) updateToiletStats(toiletID uint) error {
	var stats struct {
		Avg   float64
		Count int
	}
	err := rc.DB.Model(&models.Review{}).
		Select("COALESCE(AVG(rating), 0) as avg, COUNT(*) as count").
		Where("toilet_id = ?", toiletID).
		Scan(&stats).Error
	if err != nil {
		return err
	}

	return rc.DB.Model(&models.Toilet{}).
		Where("id = ?", toiletID).
		Updates(map[string]interface{}{
			"rating":       stats.Avg,
			"review_count": stats.Count,
		}).Error
}
