package routes

import (
	"Recipe-Catalog/internal/api/handlers"
	"Recipe-Catalog/internal/middleware"
	"Recipe-Catalog/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	UserHandler     handlers.UserHandler
	RecipeHandler   handlers.RecipeHandler
	CategoryHandler handlers.CategoryHandler
	OrderHandler    handlers.OrderHandler
	PaymentHandler  handlers.PaymentHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Auth()
	c.Recipes()
	c.Categories()
	c.Orders()
	c.GuestRoute()
}

func (c *Config) Auth() {
	c.App.Get("/register", c.UserHandler.RegisterPage)
	c.App.Post("/register", c.UserHandler.Register)
	c.App.Get("/login", c.UserHandler.LoginPage)
	c.App.Post("/login", c.UserHandler.Login)
	c.App.Get("/logout", c.UserHandler.Logout)
	c.App.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
}

func (c *Config) Recipes() {
	sessionGate := c.Middleware.SessionAuth(c.JWTService)

	c.App.Get("/", c.RecipeHandler.Index)
	c.App.Get("/recipes/:id", c.RecipeHandler.GetRecipeDetail)
	c.App.Get("/recipe/:id", c.RecipeHandler.GetRecipeDetail)

	// Protected form flows
	c.App.Get("/recipes", sessionGate, c.RecipeHandler.NewRecipeForm)
	c.App.Post("/recipes", sessionGate, c.RecipeHandler.CreateRecipe)
	c.App.Post("/recipes/:id/delete", sessionGate, c.RecipeHandler.DeleteRecipeForm)
	c.App.Post("/recipes/:id/image", sessionGate, c.RecipeHandler.UploadRecipeImage)

	// Open JSON flows carried over from the API variant
	c.App.Post("/add_recipe", c.RecipeHandler.AddRecipe)
	c.App.Put("/update_recipe/:id", c.RecipeHandler.UpdateRecipe)
	c.App.Delete("/delete_recipe/:id", c.RecipeHandler.DeleteRecipe)
	c.App.Post("/favorite/:id", c.RecipeHandler.ToggleFavorite)
}

func (c *Config) Categories() {
	c.App.Get("/categories", c.CategoryHandler.GetCategories)
	c.App.Post("/categories", c.Middleware.SessionAuth(c.JWTService), c.CategoryHandler.CreateCategory)
}

func (c *Config) Orders() {
	c.App.Post("/order/:id", c.OrderHandler.PlaceOrder)
	c.App.Get("/history", c.OrderHandler.GetOrderHistory)
	c.App.Post("/order/:id/checkout", c.Middleware.SessionAuth(c.JWTService), c.OrderHandler.Checkout)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
	c.App.Post("/webhook/midtrans", c.PaymentHandler.MidtransWebhookHandler)
}
