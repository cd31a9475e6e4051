package main

import (
	"context"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"hotelbooking/internal/config"
	"hotelbooking/internal/database"
	"hotelbooking/internal/middleware"
	"hotelbooking/internal/modules/auth"
	"hotelbooking/internal/modules/availability"
	"hotelbooking/internal/modules/booking"
	"hotelbooking/internal/modules/payment"
	"hotelbooking/internal/modules/rooms"
	jwtsvc "hotelbooking/internal/pkg/jwt"
	"hotelbooking/internal/repository"
	"hotelbooking/internal/scheduler"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}
	if err := repository.EnsureBookingConstraints(db); err != nil {
		log.Fatal("booking constraints failed:", err)
	}

	guestRepo := repository.NewGuestRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTAccessTTL)

	authService := auth.NewService(guestRepo, j)
	authHandler := auth.NewHandler(authService)

	availabilityService := availability.NewService(bookingRepo, roomRepo)
	availabilityHandler := availability.NewHandler(availabilityService)

	roomsService := rooms.NewService(roomRepo)
	roomsHandler := rooms.NewHandler(roomsService)

	bookingService := booking.NewService(bookingRepo, roomRepo, availabilityService)
	bookingHandler := booking.NewHandler(bookingService)

	paymentService := payment.NewService(paymentRepo, bookingRepo, bookingRepo)
	paymentHandler := payment.NewHandler(paymentService)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	scheduler.NewCompletionSweeper(bookingService, cfg.SweepInterval).Start(ctx)

	r := gin.Default()
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorLogger())

	v1 := r.Group("/api/v1")
	{
		// public
		authHandler.RegisterRoutes(v1)
		roomsHandler.RegisterRoutes(v1)
		availabilityHandler.RegisterRoutes(v1)

		// protected
		protected := v1.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			bookingHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)

			admin := protected.Group("/")
			admin.Use(middleware.AdminOnly())
			{
				roomsHandler.RegisterAdminRoutes(admin)
				paymentHandler.RegisterAdminRoutes(admin)
			}
		}
	}

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
