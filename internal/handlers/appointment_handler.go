package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/SalonLinkApp/salon-scheduler/internal/domain/appointment"
	"github.com/SalonLinkApp/salon-scheduler/internal/httperr"
	"github.com/SalonLinkApp/salon-scheduler/internal/httpresp"
	"github.com/SalonLinkApp/salon-scheduler/internal/middleware"
	ucAppointment "github.com/SalonLinkApp/salon-scheduler/internal/usecase/appointment"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler serves the salon owner's appointment queue and the
// lifecycle actions on it.
type AppointmentHandler struct {
	transition   *ucAppointment.TransitionAppointment
	listForSalon *ucAppointment.ListForSalon
	listByMonth  *ucAppointment.ListByMonth
}

func NewAppointmentHandler(
	transition *ucAppointment.TransitionAppointment,
	listForSalon *ucAppointment.ListForSalon,
	listByMonth *ucAppointment.ListByMonth,
) *AppointmentHandler {
	return &AppointmentHandler{
		transition:   transition,
		listForSalon: listForSalon,
		listByMonth:  listByMonth,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type TransitionRequest struct {
	// Reason for reject/cancel; optional notes for confirm.
	Reason string `json:"reason"`
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	out, err := h.listForSalon.Execute(
		c.Request.Context(),
		salonID,
		c.Query("status"),
		c.Query("date"),
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.List(c, out)
}

// ======================================================
// LIST BY MONTH
// ======================================================

func (h *AppointmentHandler) ListByMonth(c *gin.Context) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)

	year, err := strconv.Atoi(c.Query("year"))
	if err != nil || year < 2000 || year > 2100 {
		httperr.BadRequest(c, "invalid_year", "Invalid year.")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil || month < 1 || month > 12 {
		httperr.BadRequest(c, "invalid_month", "Invalid month.")
		return
	}

	appointments, err := h.listByMonth.Execute(c.Request.Context(), salonID, year, month)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"year":         year,
		"month":        month,
		"appointments": appointments,
	})
}

// ======================================================
// LIFECYCLE ACTIONS
// ======================================================

func (h *AppointmentHandler) Confirm(c *gin.Context) {
	h.applyTransition(c, domain.StatusConfirmed)
}

func (h *AppointmentHandler) Reject(c *gin.Context) {
	h.applyTransition(c, domain.StatusRejected)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	h.applyTransition(c, domain.StatusCompleted)
}

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	h.applyTransition(c, domain.StatusCancelled)
}

func (h *AppointmentHandler) applyTransition(c *gin.Context, target domain.Status) {
	salonID := c.MustGet(middleware.ContextSalonID).(uint)
	actorID := c.MustGet(middleware.ContextUserID).(string)

	var req TransitionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			httperr.BadRequest(c, "invalid_request", "Invalid request body.")
			return
		}
	}

	ap, err := h.transition.Execute(
		c.Request.Context(),
		salonID,
		actorID,
		c.Param("id"),
		target,
		req.Reason,
	)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	c.JSON(http.StatusOK, ap)
}
