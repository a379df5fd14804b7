package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/SalonLinkApp/salon-scheduler/internal/httpresp"
	"github.com/SalonLinkApp/salon-scheduler/internal/middleware"
	ucAppointment "github.com/SalonLinkApp/salon-scheduler/internal/usecase/appointment"
)

// ClientHandler serves the authenticated client's own booking history.
type ClientHandler struct {
	listForClient *ucAppointment.ListForClient
}

func NewClientHandler(listForClient *ucAppointment.ListForClient) *ClientHandler {
	return &ClientHandler{listForClient: listForClient}
}

func (h *ClientHandler) ListAppointments(c *gin.Context) {
	clientID := c.MustGet(middleware.ContextUserID).(string)

	appointments, err := h.listForClient.Execute(c.Request.Context(), clientID)
	if err != nil {
		mapBusinessError(c, err)
		return
	}

	httpresp.List(c, appointments)
}
