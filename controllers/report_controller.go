package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/namma-loo/api-go/models"
	"github.com/namma-loo/api-go/utils"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

type CreateReportInput struct {
	ToiletID  uint   `json:"toiletId" binding:"required"`
	IssueText string `json:"issueText" binding:"required,max=500"`
}

type UpdateReportStatusInput struct {
	Status string `json:"status" binding:"required,oneof=PENDING REVIEWED RESOLVED DISMISSED"`
}

func (rc *ReportController) CreateReport(c *gin.Context) {
	user := utils.GetUser(c)
	if user == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User not found in context"})
		return
	}

	var input CreateReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var toilet models.Toilet
	if err := rc.DB.First(&toilet, input.ToiletID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Toilet not found"})
		return
	}

	report := models.Report{
		ToiletID:  input.ToiletID,
		UserID:    user.UserID,
		IssueText: input.IssueText,
		Status:    models.ReportPending,
	}

	if err := rc.DB.Create(&report).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to create report"})
		return
	}

	c.JSON(http.StatusCreated, report)
}

// GetToiletReports returns reports for one toilet, newest first.
func (rc *ReportController) GetToiletReports(c *gin.Context) {
	toiletID := c.Param("toiletId")

	db := rc.DB.Where("toilet_id = ?", toiletID)
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var reports []models.Report
	if err := db.Order("created_at DESC").Find(&reports).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch reports"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"reports": reports, "count": len(reports)})
}

func (rc *ReportController) UpdateReportStatus(c *gin.Context) {
	var input UpdateReportStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var report models.Report
	if err := rc.DB.First(&report, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Report not found"})
		return
	}

	if err := rc.DB.Model(&report).Update("status", input.Status).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update report"})
		return
	}

	c.JSON(http.StatusOK, report)
}
