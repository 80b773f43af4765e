package routes

import (
	"github.com/Om136/rentals/internal/api/handlers"
	"github.com/Om136/rentals/internal/middleware"
	"github.com/Om136/rentals/pkg/jwt"
	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App            *fiber.App
	UserHandler    handlers.UserHandler
	ItemHandler    handlers.ItemHandler
	PaymentHandler handlers.PaymentHandler
	Middleware     middleware.Middleware
	JWTService     jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Items()
	c.Payments()
	c.GuestRoute()
}

func (c *Config) Auth() {
	auth := c.App.Group("/auth")
	{
		auth.Post("/signup", c.UserHandler.SignUp)
		auth.Post("/signin", c.UserHandler.SignIn)
	}
}

func (c *Config) Items() {
	items := c.App.Group("/items")

	// Public: browsing and viewing item details
	items.Get("/", c.ItemHandler.GetItems)
	// /my/items must be registered before /:id
	items.Get("/my/items", c.Middleware.AuthMiddleware(c.JWTService), c.ItemHandler.GetMyItems)
	items.Get("/:id", c.ItemHandler.GetItemByID)

	// Protected: user-owned item management
	items.Post("/", c.Middleware.AuthMiddleware(c.JWTService), c.ItemHandler.CreateItem)
	items.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ItemHandler.UpdateItem)
	items.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ItemHandler.DeleteItem)
}

func (c *Config) Payments() {
	payments := c.App.Group("/payment", c.Middleware.AuthMiddleware(c.JWTService))
	{
		payments.Post("/create-payment-intent", c.PaymentHandler.CreatePaymentIntent)
		payments.Post("/confirm-payment", c.PaymentHandler.ConfirmPayment)
		payments.Get("/history", c.PaymentHandler.GetPaymentHistory)
	}
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
