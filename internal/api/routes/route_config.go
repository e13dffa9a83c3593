package routes

import (
	"RecipeShare-Backend/internal/api/handlers"
	"RecipeShare-Backend/internal/middleware"
	"RecipeShare-Backend/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App               *fiber.App
	UserHandler       handlers.UserHandler
	RecipeHandler     handlers.RecipeHandler
	ReviewHandler     handlers.ReviewHandler
	CategoryHandler   handlers.CategoryHandler
	IngredientHandler handlers.IngredientHandler
	Middleware        middleware.Middleware
	JWTService        jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.User()
	c.Recipes()
	c.Reviews()
	c.Categories()
	c.Ingredients()
	c.GuestRoute()
}

func (c *Config) User() {
	user := c.App.Group("/api/v1/users")
	// user routes
	{
		user.Post("/register", c.UserHandler.Register)
		user.Post("/login", c.UserHandler.Login)
		user.Post("/refresh", c.UserHandler.RefreshToken)
		user.Get("/me", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.Me)
		user.Patch("/update", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.UpdateUser)
		user.Delete("/delete", c.Middleware.AuthMiddleware(c.JWTService), c.UserHandler.DeleteUser)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")

	recipes.Get("", c.RecipeHandler.GetRecipes)
	recipes.Get("/:id", c.Middleware.OptionalAuthMiddleware(c.JWTService), c.RecipeHandler.GetRecipeDetail)
	recipes.Get("/:id/reviews", c.ReviewHandler.GetRecipeReviews)

	recipes.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.CreateRecipe)
	recipes.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UpdateRecipe)
	recipes.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.DeleteRecipe)
	recipes.Post("/:id/image", c.Middleware.AuthMiddleware(c.JWTService), c.RecipeHandler.UploadRecipeImage)
}

func (c *Config) Reviews() {
	reviews := c.App.Group("/api/v1/reviews")

	reviews.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.CreateReview)
	reviews.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.UpdateReview)
	reviews.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.ReviewHandler.DeleteReview)

	// moderation
	reviews.Get("/pending", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.ReviewHandler.GetPendingReviews)
	reviews.Patch("/:id/approve", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.ReviewHandler.ApproveReview)
}

func (c *Config) Categories() {
	categories := c.App.Group("/api/v1/categories")

	categories.Get("", c.CategoryHandler.GetCategories)
	categories.Get("/:id", c.CategoryHandler.GetCategory)

	categories.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.CategoryHandler.CreateCategory)
	categories.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.CategoryHandler.UpdateCategory)
	categories.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.CategoryHandler.DeleteCategory)
}

func (c *Config) Ingredients() {
	ingredients := c.App.Group("/api/v1/ingredients")

	ingredients.Get("", c.IngredientHandler.GetIngredients)
	ingredients.Get("/:id", c.IngredientHandler.GetIngredient)

	ingredients.Post("", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.IngredientHandler.CreateIngredient)
	ingredients.Put("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.IngredientHandler.UpdateIngredient)
	ingredients.Delete("/:id", c.Middleware.AuthMiddleware(c.JWTService), c.Middleware.AdminMiddleware(), c.IngredientHandler.DeleteIngredient)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
}
