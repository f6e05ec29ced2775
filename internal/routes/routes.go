package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/vilis-app/carsrent-api/internal/audit"
	"github.com/vilis-app/carsrent-api/internal/config"
	"github.com/vilis-app/carsrent-api/internal/handlers"
	"github.com/vilis-app/carsrent-api/internal/infra/repository"
	"github.com/vilis-app/carsrent-api/internal/mailer"
	"github.com/vilis-app/carsrent-api/internal/middleware"
	"github.com/vilis-app/carsrent-api/internal/storage"
	usecase "github.com/vilis-app/carsrent-api/internal/usecase/booking"
)

const (
	rateLimitRequests = 120
	rateLimitWindow   = time.Minute
)

// RegisterRoutes wires repositories, use cases and handlers onto the
// engine. This is the composition root: everything downstream receives
// its dependencies from here.
func RegisterRoutes(
	r *gin.Engine,
	db *gorm.DB,
	rdb *redis.Client,
	cfg *config.Config,
	log *zap.Logger,
) {
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RateLimitMiddleware(rdb, rateLimitRequests, rateLimitWindow))

	// ------------------------------
	// Infrastructure
	// ------------------------------

	bookingRepo := repository.NewBookingGormRepository(db)
	carRepo := repository.NewCarGormRepository(db)

	auditDispatcher := audit.NewDispatcher(audit.New(db), log)

	mailClient := mailer.NewClient(cfg.ResendAPIKey, cfg.EmailFrom, log)
	mailDispatcher := mailer.NewDispatcher(mailClient, log)

	imageStore := storage.NewImageStore(cfg)

	// ------------------------------
	// Use cases
	// ------------------------------

	createBooking := usecase.NewCreateBooking(bookingRepo, mailDispatcher, auditDispatcher)
	setBookingStatus := usecase.NewSetBookingStatus(bookingRepo, auditDispatcher)
	deleteBooking := usecase.NewDeleteBooking(bookingRepo, auditDispatcher)

	// ------------------------------
	// Handlers
	// ------------------------------

	authHandler := handlers.NewAuthHandler(db, cfg)
	agencyHandler := handlers.NewAgencyHandler(db)
	carHandler := handlers.NewCarHandler(db, auditDispatcher)
	publicHandler := handlers.NewPublicHandler(db, carRepo)
	bookingHandler := handlers.NewBookingHandler(bookingRepo, createBooking, setBookingStatus, deleteBooking)
	adminHandler := handlers.NewAdminHandler(db)
	auditLogsHandler := handlers.NewAuditLogsHandler(db)
	uploadHandler := handlers.NewUploadHandler(imageStore)

	// ------------------------------
	// Public routes
	// ------------------------------

	api := r.Group("/api")
	{
		api.GET("/cars", publicHandler.SearchCars)
		api.GET("/cars/:id", publicHandler.GetCar)
		api.GET("/agency/:id/cars", publicHandler.AgencyCatalog)

		api.POST("/bookings", bookingHandler.Create)

		api.POST("/agency/login", authHandler.Login)
	}

	// ------------------------------
	// Agency routes (JWT)
	// ------------------------------

	secured := api.Group("/")
	secured.Use(middleware.AuthMiddleware(db, cfg))
	{
		secured.GET("/agency/me", authHandler.Me)
		secured.DELETE("/agency/me", authHandler.DeleteMe)

		secured.GET("/agency/me/cities", agencyHandler.GetCities)
		secured.PUT("/agency/me/cities", agencyHandler.UpdateCities)

		secured.GET("/agency/me/cars", carHandler.ListMine)
		secured.POST("/cars", carHandler.Create)
		secured.PATCH("/cars/:id", carHandler.Update)
		secured.DELETE("/cars/:id", carHandler.Delete)

		secured.GET("/agency/me/bookings", bookingHandler.ListMine)
		secured.PATCH("/agency/me/bookings/:id", bookingHandler.SetStatus)
		secured.DELETE("/agency/me/bookings/:id", bookingHandler.Delete)

		secured.GET("/agency/me/audit-logs", auditLogsHandler.ListMine)

		secured.POST("/uploads/car-image", uploadHandler.CarImage)
	}

	// ------------------------------
	// Back-office routes (admin token)
	// ------------------------------

	admin := api.Group("/")
	admin.Use(middleware.AdminMiddleware(cfg))
	{
		admin.POST("/agency/register", authHandler.Register)
		admin.PUT("/admin/agency/:id/cities", agencyHandler.AdminUpdateCities)
		admin.GET("/admin/stats", adminHandler.Stats)
	}
}
