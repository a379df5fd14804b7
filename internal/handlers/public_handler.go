package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/httperr"
	"github.com/SalonLinkApp/salon-scheduler/internal/models"
	ucAppointment "github.com/SalonLinkApp/salon-scheduler/internal/usecase/appointment"
)

////////////////////////////////////////////////////////
// HANDLER
////////////////////////////////////////////////////////

// PublicHandler serves the client booking screen: catalog, availability
// and booking creation.
type PublicHandler struct {
	db           *gorm.DB
	availability *ucAppointment.GetAvailability
	create       *ucAppointment.CreateAppointment
}

func NewPublicHandler(
	db *gorm.DB,
	availability *ucAppointment.GetAvailability,
	create *ucAppointment.CreateAppointment,
) *PublicHandler {
	return &PublicHandler{
		db:           db,
		availability: availability,
		create:       create,
	}
}

////////////////////////////////////////////////////////
// DTOs
////////////////////////////////////////////////////////

type PublicCreateAppointmentRequest struct {
	ClientID    string `json:"client_id"`
	ClientName  string `json:"client_name" binding:"required"`
	ClientPhone string `json:"client_phone" binding:"required"`

	ServiceIDs []uint `json:"service_ids" binding:"required"`

	Date     string `json:"date" binding:"required"`      // YYYY-MM-DD
	TimeSlot string `json:"time_slot" binding:"required"` // HH:MM

	TotalPrice    float64 `json:"total_price"`
	TotalDuration int     `json:"total_duration" binding:"required"`

	Notes         string `json:"notes"`
	PaymentMethod string `json:"payment_method"`
}

func salonIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("salonID"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "invalid_salon_id", "Invalid salon id.")
		return 0, false
	}
	return uint(id), true
}

////////////////////////////////////////////////////////
// SERVICES
////////////////////////////////////////////////////////

func (h *PublicHandler) ListServices(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var salon models.Salon
	if err := h.db.First(&salon, salonID).Error; err != nil {
		httperr.NotFound(c, "salon_not_found", "Salon not found.")
		return
	}

	category := strings.TrimSpace(strings.ToLower(c.Query("category")))

	q := h.db.Where("salon_id = ? AND active = true", salonID)
	if category != "" {
		q = q.Where("LOWER(category) = ?", category)
	}

	var services []models.Service
	if err := q.Order("id ASC").Find(&services).Error; err != nil {
		httperr.Internal(c, "failed_to_list_services", "Failed to list services.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"salon":    salon,
		"services": services,
	})
}

////////////////////////////////////////////////////////
// AVAILABILITY
////////////////////////////////////////////////////////

func (h *PublicHandler) Availability(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	dateStr := c.Query("date")
	if dateStr == "" {
		httperr.BadRequest(c, "missing_date", "Date is required.")
		return
	}

	slots, err := h.availability.Execute(c.Request.Context(), salonID, dateStr)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"date":  dateStr,
		"slots": slots,
	})
}

////////////////////////////////////////////////////////
// CREATE APPOINTMENT
////////////////////////////////////////////////////////

func (h *PublicHandler) CreateAppointment(c *gin.Context) {
	salonID, ok := salonIDParam(c)
	if !ok {
		return
	}

	var req PublicCreateAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Invalid request body.")
		return
	}

	ap, err := h.create.Execute(
		c.Request.Context(),
		salonID,
		domain.BookingRequest{
			ClientID:      req.ClientID,
			ClientName:    req.ClientName,
			ClientPhone:   req.ClientPhone,
			ServiceIDs:    req.ServiceIDs,
			Date:          req.Date,
			TimeSlot:      req.TimeSlot,
			TotalPrice:    req.TotalPrice,
			TotalDuration: req.TotalDuration,
			Notes:         req.Notes,
			PaymentMethod: req.PaymentMethod,
		},
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusCreated, ap)
}
