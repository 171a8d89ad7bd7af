package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/BruksfildServices01/prestine-booking/internal/apartment"
	"github.com/BruksfildServices01/prestine-booking/internal/audit"
	"github.com/BruksfildServices01/prestine-booking/internal/cache"
	"github.com/BruksfildServices01/prestine-booking/internal/config"
	"github.com/BruksfildServices01/prestine-booking/internal/handlers"
	infraRepo "github.com/BruksfildServices01/prestine-booking/internal/infra/repository"
	"github.com/BruksfildServices01/prestine-booking/internal/middleware"
	"github.com/BruksfildServices01/prestine-booking/internal/notify"
	"github.com/BruksfildServices01/prestine-booking/internal/timezone"
	ucBooking "github.com/BruksfildServices01/prestine-booking/internal/usecase/booking"
)

// Infra holds the process singletons built by main. Redis and Uploader
// may be nil.
type Infra struct {
	DB       *gorm.DB
	Redis    *redis.Client
	Notifier notify.Notifier
	Uploader ucBooking.Uploader
	Audit    *audit.Dispatcher
	Log      *logrus.Logger
}

func RegisterRoutes(r *gin.Engine, cfg *config.Config, infra Infra) {

	log := infra.Log

	// ======================================================
	// 🌍 GLOBAL MIDDLEWARE
	// ======================================================
	r.Use(middleware.CORSMiddleware(cfg.CORSOrigins))

	// ======================================================
	// 🔧 INFRA (SINGLETONS)
	// ======================================================
	catalog := apartment.Default()
	bookingRepo := infraRepo.NewBookingGormRepository(infra.DB)
	blockedDates := cache.NewBlockedDates(infra.Redis, cfg.BlockedDatesTTL, log)
	trigger := notify.NewTrigger(infra.Notifier, log)
	now := timezone.Now

	// ======================================================
	// 🧠 USE CASES: BOOKINGS
	// ======================================================
	availability := ucBooking.NewAvailability(bookingRepo, blockedDates, log)

	submitUC := ucBooking.NewSubmitBooking(
		bookingRepo,
		catalog,
		availability,
		trigger,
		infra.Audit,
		now,
		log,
	)

	confirmUC := ucBooking.NewConfirmBooking(bookingRepo, availability, trigger, infra.Audit, now, log)
	cancelUC := ucBooking.NewCancelBooking(bookingRepo, availability, trigger, infra.Audit, now, log)
	expireUC := ucBooking.NewExpireBooking(bookingRepo, availability, trigger, infra.Audit, now, log)
	extendUC := ucBooking.NewExtendBooking(bookingRepo, availability, trigger, infra.Audit, now, log)
	getUC := ucBooking.NewGetBooking(bookingRepo)

	sweeper := ucBooking.NewSweeper(expireUC, cfg.PaymentWindow, log)
	listUC := ucBooking.NewListBookings(bookingRepo, sweeper, now)
	exportUC := ucBooking.NewExportBookings(bookingRepo, infra.Uploader, now, log)

	// ======================================================
	// 🧩 HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(infra.DB, cfg, log)
	apartmentHandler := handlers.NewApartmentHandler(catalog, availability, log)
	bookingHandler := handlers.NewBookingHandler(submitUC, getUC, log)

	adminBookingHandler := handlers.NewAdminBookingHandler(
		listUC,
		getUC,
		confirmUC,
		cancelUC,
		extendUC,
		exportUC,
		log,
	)

	bookingEventsHandler := handlers.NewBookingEventsHandler(infra.DB, log)

	// ======================================================
	// 🌐 API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// 🏠 APARTMENTS
		// ------------------------------
		apartments := api.Group("/apartments")
		{
			apartments.GET("", apartmentHandler.List)
			apartments.GET("/:id", apartmentHandler.Get)
			apartments.GET("/:id/blocked-dates", apartmentHandler.BlockedDates)
			apartments.GET("/:id/availability", apartmentHandler.Availability)
		}

		// ------------------------------
		// 📅 BOOKINGS (guest)
		// ------------------------------
		bookings := api.Group("/bookings")
		bookings.Use(middleware.Identity(cfg))
		{
			bookings.POST("", bookingHandler.Submit)
			bookings.GET("/:id", bookingHandler.Get)
		}

		// ------------------------------
		// 🔐 AUTH
		// ------------------------------
		api.POST("/auth/register", authHandler.Register)
		api.POST("/auth/login", authHandler.Login)

		// ------------------------------
		// 🔐 ADMIN
		// ------------------------------
		admin := api.Group("/admin")
		admin.Use(middleware.RequireAdmin(cfg))
		{
			admin.GET("/bookings", adminBookingHandler.List)
			admin.POST("/bookings/export", adminBookingHandler.Export)
			admin.GET("/bookings/:id", adminBookingHandler.Get)
			admin.PATCH("/bookings/:id/confirm", adminBookingHandler.Confirm)
			admin.PATCH("/bookings/:id/cancel", adminBookingHandler.Cancel)
			admin.PATCH("/bookings/:id/extend", adminBookingHandler.Extend)

			admin.GET("/booking-events", bookingEventsHandler.List)
		}
	}
}
