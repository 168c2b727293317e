package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/salusbook/api-prenotazioni/internal/audit"
	"github.com/salusbook/api-prenotazioni/internal/config"
	domain "github.com/salusbook/api-prenotazioni/internal/domain/booking"
	"github.com/salusbook/api-prenotazioni/internal/handlers"
	infraCache "github.com/salusbook/api-prenotazioni/internal/infra/cache"
	infraRepo "github.com/salusbook/api-prenotazioni/internal/infra/repository"
	"github.com/salusbook/api-prenotazioni/internal/middleware"
	"github.com/salusbook/api-prenotazioni/internal/storage"
	ucBooking "github.com/salusbook/api-prenotazioni/internal/usecase/booking"
)

func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, log *zap.Logger) {

	// ======================================================
	// MIDDLEWARE GLOBAL
	// ======================================================
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	// ======================================================
	// INFRA (SINGLETONS)
	// ======================================================
	slotLedger := infraRepo.NewSlotGormLedger(db)
	reservationRegistry := infraRepo.NewReservationGormRegistry(db)
	directory := infraRepo.NewDirectoryGorm(db)

	auditLogger := audit.New(db)
	auditDispatcher := audit.NewDispatcher(auditLogger, log)

	// Cache é opcional: sem REDIS_ADDR as projeções vão direto ao banco
	var availabilityCache domain.AvailabilityCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
		availabilityCache = infraCache.NewAvailabilityRedisCache(rdb, log)
	}

	photoStore := storage.NewPhotoStore(cfg)

	// ======================================================
	// USE CASES — BOOKING
	// ======================================================
	addSlotUC := ucBooking.NewAddSlot(slotLedger, auditDispatcher, availabilityCache)
	revokeSlotUC := ucBooking.NewRevokeSlot(slotLedger, auditDispatcher, availabilityCache)
	listDatesUC := ucBooking.NewListAvailableDates(slotLedger, availabilityCache)
	listTimesUC := ucBooking.NewListAvailableTimes(slotLedger, availabilityCache)

	createReservationUC := ucBooking.NewCreateReservation(
		slotLedger,
		reservationRegistry,
		directory,
		auditDispatcher,
	)
	updateReservationUC := ucBooking.NewUpdateReservation(reservationRegistry, auditDispatcher)
	cancelReservationUC := ucBooking.NewCancelReservation(reservationRegistry, auditDispatcher)
	listByUserUC := ucBooking.NewListUserReservations(reservationRegistry, directory)

	// ======================================================
	// HANDLERS
	// ======================================================
	authHandler := handlers.NewAuthHandler(db, cfg)
	userHandler := handlers.NewUserHandler(db)
	professionalHandler := handlers.NewProfessionalHandler(db, photoStore)

	availabilityHandler := handlers.NewAvailabilityHandler(
		addSlotUC,
		revokeSlotUC,
		listDatesUC,
		listTimesUC,
	)

	reservationHandler := handlers.NewReservationHandler(
		reservationRegistry,
		createReservationUC,
		updateReservationUC,
		cancelReservationUC,
		listByUserUC,
	)

	auditLogsHandler := handlers.NewAuditLogsHandler(db)

	// ======================================================
	// API (JSON)
	// ======================================================
	api := r.Group("/api")
	{
		// ------------------------------
		// AUTH
		// ------------------------------
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)

		// ------------------------------
		// PÚBLICO — CATÁLOGO E DISPONIBILIDADE
		// ------------------------------
		api.GET("/professionals", professionalHandler.List)
		api.GET("/professionals/:id/availability", availabilityHandler.ListDates)
		api.GET("/professionals/:id/availability/times", availabilityHandler.ListTimes)

		// ------------------------------
		// PRIVADO
		// ------------------------------
		secured := api.Group("/")
		secured.Use(middleware.AuthMiddleware(cfg))
		{
			// reservas
			secured.POST("/reservations", reservationHandler.Create)
			secured.GET("/reservations", reservationHandler.List)
			secured.GET("/reservations/:id", reservationHandler.Get)
			secured.PUT("/reservations/:id", reservationHandler.Update)
			secured.DELETE("/reservations/:id", reservationHandler.Cancel)
			secured.GET("/reservations/user/:id", reservationHandler.ListByUser)

			// perfil
			secured.GET("/users/:id", userHandler.Get)
			secured.PUT("/users/:id", userHandler.UpdateProfile)

			// administração
			admin := secured.Group("/")
			admin.Use(middleware.RequireRole("admin"))
			{
				admin.GET("/users", userHandler.List)
				admin.DELETE("/users/:id", userHandler.Delete)
				admin.PUT("/update-role/:id", authHandler.UpdateRole)

				admin.POST("/professionals", professionalHandler.Create)
				admin.POST("/professionals/:id/photo", professionalHandler.UploadPhoto)

				admin.POST("/professionals/:id/availability", availabilityHandler.AddSlot)
				admin.DELETE("/availability/:id", availabilityHandler.Revoke)

				admin.GET("/audit-logs", auditLogsHandler.List)
			}
		}
	}
}
