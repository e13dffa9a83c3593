package config

import (
	"RecipeShare-Backend/internal/api/handlers"
	"RecipeShare-Backend/internal/api/routes"
	"RecipeShare-Backend/internal/middleware"
	"RecipeShare-Backend/internal/utils"
	"RecipeShare-Backend/internal/utils/storage"
	"RecipeShare-Backend/pkg/category"
	"RecipeShare-Backend/pkg/ingredient"
	"RecipeShare-Backend/pkg/jwt"
	"RecipeShare-Backend/pkg/recipe"
	"RecipeShare-Backend/pkg/review"
	"RecipeShare-Backend/pkg/user"
	"os"
	"time"

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
		TimeZone:   "UTC",
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
	recipeRepository := recipe.NewRecipeRepository(db)
	reviewRepository := review.NewReviewRepository(db)
	categoryRepository := category.NewCategoryRepository(db)
	ingredientRepository := ingredient.NewIngredientRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	userService := user.NewUserService(userRepository, jwtService, s3)
	recipeService := recipe.NewRecipeService(recipeRepository, reviewRepository, s3)
	reviewService := review.NewReviewService(reviewRepository, recipeRepository)
	categoryService := category.NewCategoryService(categoryRepository, s3)
	ingredientService := ingredient.NewIngredientService(ingredientRepository, s3)

	// Handler
	userHandler := handlers.NewUserHandler(userService, validator)
	recipeHandler := handlers.NewRecipeHandler(recipeService, validator)
	reviewHandler := handlers.NewReviewHandler(reviewService, validator)
	categoryHandler := handlers.NewCategoryHandler(categoryService, validator)
	ingredientHandler := handlers.NewIngredientHandler(ingredientService, validator)

	// routes
	routesConfig := routes.Config{
		App:               app,
		UserHandler:       userHandler,
		RecipeHandler:     recipeHandler,
		ReviewHandler:     reviewHandler,
		CategoryHandler:   categoryHandler,
		IngredientHandler: ingredientHandler,
		Middleware:        middlewares,
		JWTService:        jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
