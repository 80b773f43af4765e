package config

import (
	"os"
	"time"

	"github.com/Om136/rentals/internal/api/handlers"
	"github.com/Om136/rentals/internal/api/routes"
	"github.com/Om136/rentals/internal/middleware"
	"github.com/Om136/rentals/internal/utils"
	"github.com/Om136/rentals/internal/utils/storage"
	"github.com/Om136/rentals/pkg/item"
	"github.com/Om136/rentals/pkg/jwt"
	"github.com/Om136/rentals/pkg/payment"
	"github.com/Om136/rentals/pkg/user"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()
	extendedFilters := utils.GetConfig("EXTENDED_FILTERS") == "true"

	// Repository
	userRepository := user.NewUserRepository(db)
	itemRepository := item.NewItemRepository(db)
	paymentRepository := payment.NewPaymentRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	itemService := item.NewItemService(itemRepository, s3, extendedFilters)
	paymentGateway := payment.NewMidtransGateway()
	paymentService := payment.NewPaymentService(paymentRepository, paymentGateway)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	itemHandler := handlers.NewItemHandler(itemService, validator)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:            app,
		UserHandler:    userHandler,
		ItemHandler:    itemHandler,
		PaymentHandler: paymentHandler,
		Middleware:     middlewares,
		JWTService:     jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
