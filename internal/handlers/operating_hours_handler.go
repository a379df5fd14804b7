package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/middleware"
	"github.com/SalonLinkApp/salon-scheduler/internal/models"
)

type OperatingHoursHandler struct {
	db *gorm.DB
}

func NewOperatingHoursHandler(db *gorm.DB) *OperatingHoursHandler {
	return &OperatingHoursHandler{db: db}
}

type DayConfig struct {
	Weekday int    `json:"weekday" binding:"min=0,max=6"`
	Closed  bool   `json:"closed"`
	Open    string `json:"open"`
	Close   string `json:"close"`
}

type OperatingHoursUpdateRequest struct {
	Days []DayConfig `json:"days" binding:"required"`
}

func (h *OperatingHoursHandler) Get(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var hours []models.OperatingHours
	if err := h.db.
		Where("salon_id = ?", salonID).
		Order("weekday ASC").
		Find(&hours).Error; err != nil {

		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_get_operating_hours"})
		return
	}

	c.JSON(http.StatusOK, hours)
}

func (h *OperatingHoursHandler) Update(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	var req OperatingHoursUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "invalid_request",
			"details": err.Error(),
		})
		return
	}

	for _, d := range req.Days {
		if d.Closed {
			continue
		}

		open, errOpen := domain.ParseClock(d.Open)
		closeAt, errClose := domain.ParseClock(d.Close)
		if errOpen != nil || errClose != nil || open >= closeAt {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid_hours",
				"weekday": d.Weekday,
			})
			return
		}
	}

	if err := h.db.Where("salon_id = ?", salonID).Delete(&models.OperatingHours{}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_clear_existing_hours"})
		return
	}

	var toCreate []models.OperatingHours
	for _, d := range req.Days {
		toCreate = append(toCreate, models.OperatingHours{
			SalonID: salonID,
			Weekday: d.Weekday,
			Closed:  d.Closed,
			Open:    d.Open,
			Close:   d.Close,
		})
	}

	if len(toCreate) > 0 {
		if err := h.db.Create(&toCreate).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "failed_to_save_operating_hours"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
