package config

import (
	"Recipe-Catalog/internal/api/handlers"
	"Recipe-Catalog/internal/api/routes"
	"Recipe-Catalog/internal/middleware"
	"Recipe-Catalog/internal/utils"
	"Recipe-Catalog/internal/utils/storage"
	"Recipe-Catalog/pkg/category"
	"Recipe-Catalog/pkg/jwt"
	"Recipe-Catalog/pkg/order"
	"Recipe-Catalog/pkg/payment"
	"Recipe-Catalog/pkg/recipe"
	"Recipe-Catalog/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/session"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	sessions := session.New()
	middlewares := middleware.NewMiddleware(sessions)
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

	// Repository
	userRepository := user.NewUserRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	recipeRepository := recipe.NewRecipeRepository(db)
	orderRepository := order.NewOrderRepository(db)
	transactionRepository := payment.NewTransactionRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService)
	categoryService := category.NewCategoryService(categoryRepository)
	recipeService := recipe.NewRecipeService(recipeRepository, categoryRepository, s3)
	orderService := order.NewOrderService(orderRepository, recipeRepository)
	paymentService := payment.NewPaymentService(transactionRepository, recipeRepository, orderService)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator, sessions)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, categoryService, validator, sessions)
	orderHandler := handlers.NewOrderHandler(orderService, paymentService)
	paymentHandler := handlers.NewPaymentHandler(paymentService, validator)

	// routes
	routesConfig := routes.Config{
		App:             app,
		UserHandler:     userHandler,
		RecipeHandler:   recipeHandler,
		CategoryHandler: categoryHandler,
		OrderHandler:    orderHandler,
		PaymentHandler:  paymentHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
