package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"

	"github.com/SalonLinkApp/salon-scheduler/internal/audit"
	"github.com/SalonLinkApp/salon-scheduler/internal/config"
	"github.com/SalonLinkApp/salon-scheduler/internal/handlers"
	infraRepo "github.com/SalonLinkApp/salon-scheduler/internal/infra/repository"
	"github.com/SalonLinkApp/salon-scheduler/internal/middleware"
	"github.com/SalonLinkApp/salon-scheduler/internal/notify"
	ucAppointment "github.com/SalonLinkApp/salon-scheduler/internal/usecase/appointment"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, rdb *redis.Client, cfg *config.Config) {

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	appointmentRepo := infraRepo.NewAppointmentGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db))
	notifyDispatcher := notify.NewDispatcher(notify.NewRedisPublisher(rdb))

	// ======================================================
	// USE CASES
	// ======================================================
	availabilityUC := ucAppointment.NewGetAvailability(appointmentRepo)

	createUC := ucAppointment.NewCreateAppointment(
		appointmentRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	transitionUC := ucAppointment.NewTransitionAppointment(
		appointmentRepo,
		notifyDispatcher,
		auditDispatcher,
	)

	listForSalonUC := ucAppointment.NewListForSalon(appointmentRepo)
	listByMonthUC := ucAppointment.NewListByMonth(appointmentRepo)
	listForClientUC := ucAppointment.NewListForClient(appointmentRepo)

	// ======================================================
	// HANDLERS
	// ======================================================
	publicHandler := handlers.NewPublicHandler(db, availabilityUC, createUC)

	appointmentHandler := handlers.NewAppointmentHandler(
		transitionUC,
		listForSalonUC,
		listByMonthUC,
	)

	clientHandler := handlers.NewClientHandler(listForClientUC)
	operatingHoursHandler := handlers.NewOperatingHoursHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// PUBLIC (booking screen)
		// ------------------------------
		publicAPI := api.Group("/public")
		{
			publicAPI.GET("/:salonID/services", publicHandler.ListServices)
			publicAPI.GET("/:salonID/availability", publicHandler.Availability)
			publicAPI.POST("/:salonID/appointments", publicHandler.CreateAppointment)
		}

		// ------------------------------
		// CLIENT (history)
		// ------------------------------
		clientAPI := api.Group("/client")
		clientAPI.Use(middleware.AuthMiddleware(cfg), middleware.RequireClient())
		{
			clientAPI.GET("/appointments", clientHandler.ListAppointments)
		}

		// ------------------------------
		// OWNER
		// ------------------------------
		secured := api.Group("/me")
		secured.Use(middleware.AuthMiddleware(cfg), middleware.RequireOwner())
		{
			secured.GET("/appointments", appointmentHandler.List)
			secured.GET("/appointments/month", appointmentHandler.ListByMonth)

			secured.PATCH("/appointments/:id/confirm", appointmentHandler.Confirm)
			secured.PATCH("/appointments/:id/reject", appointmentHandler.Reject)
			secured.PATCH("/appointments/:id/complete", appointmentHandler.Complete)
			secured.PATCH("/appointments/:id/cancel", appointmentHandler.Cancel)

			secured.GET("/operating-hours", operatingHoursHandler.Get)
			secured.PUT("/operating-hours", operatingHoursHandler.Update)

			secured.GET("/audit-logs", auditLogsHandler.List)
		}
	}
}
