// Package router wires the HTTP handlers onto the Gin engine.
package router

import (
	"github.com/gin-gonic/gin"

	"recipe_backend/internal/interface/handler"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth        *handler.AuthHandler
	Users       *handler.UserHandler
	Recipes     *handler.RecipeHandler
	Menus       *handler.MenuHandler
	Ingredients *handler.IngredientHandler
	Comments    *handler.CommentHandler
}

// NewRouter builds the full route table. Everything except the health
// check, signup and signin requires a valid token.
func NewRouter(tokens *jwtmw.Provider, h Handlers) *gin.Engine {
	r := gin.Default()

	// No authentication
	r.GET("/healthz", handler.Health)
	r.POST("/signup", h.Auth.Signup)
	r.POST("/signin", h.Auth.Signin)

	auth := r.Group("/")
	auth.Use(jwtmw.AuthRequired(tokens))
	{
		users := auth.Group("/users")
		{
			users.GET("", h.Users.List)
			users.GET("/:id", h.Users.Get)
			users.PATCH("/:id", h.Users.Update)
			users.DELETE("/:id", h.Users.Delete)
			users.GET("/:id/recipes", h.Users.GetRecipes)
			users.GET("/:id/menus", h.Users.GetMenus)
			users.GET("/:id/image", h.Users.GetImage)
			users.POST("/:id/image", h.Users.UploadImage)
			users.DELETE("/:id/image", h.Users.DeleteImage)
		}

		recipes := auth.Group("/recipes")
		{
			recipes.GET("", h.Recipes.List)
			recipes.POST("", h.Recipes.Create)
			recipes.GET("/:id", h.Recipes.Get)
			recipes.PATCH("/:id", h.Recipes.Update)
			recipes.DELETE("/:id", h.Recipes.Delete)
			recipes.GET("/:id/menus", h.Recipes.GetMenus)
			recipes.GET("/:id/comments", h.Recipes.GetComments)
			recipes.POST("/:id/comments", h.Comments.CreateForRecipe)
			recipes.GET("/:id/ingredients", h.Recipes.GetIngredients)
			recipes.POST("/:id/ingredients", h.Recipes.AddIngredients)
			recipes.PUT("/:id/ingredients", h.Recipes.ReplaceIngredients)
			recipes.DELETE("/:id/ingredients", h.Recipes.RemoveIngredients)
			recipes.GET("/:id/image", h.Recipes.GetImage)
			recipes.POST("/:id/image", h.Recipes.UploadImage)
			recipes.DELETE("/:id/image", h.Recipes.DeleteImage)
		}

		menus := auth.Group("/menus")
		{
			menus.GET("", h.Menus.List)
			menus.POST("", h.Menus.Create)
			menus.GET("/:id", h.Menus.Get)
			menus.PATCH("/:id", h.Menus.Update)
			menus.DELETE("/:id", h.Menus.Delete)
			menus.GET("/:id/recipes", h.Menus.GetRecipes)
			menus.POST("/:id/recipes", h.Menus.AddRecipes)
			menus.DELETE("/:id/recipes", h.Menus.RemoveRecipes)
			menus.GET("/:id/image", h.Menus.GetImage)
			menus.POST("/:id/image", h.Menus.UploadImage)
			menus.DELETE("/:id/image", h.Menus.DeleteImage)
		}

		ingredients := auth.Group("/ingredients")
		{
			ingredients.GET("", h.Ingredients.List)
			ingredients.POST("", h.Ingredients.Create)
			ingredients.GET("/:id", h.Ingredients.Get)
			ingredients.PATCH("/:id", h.Ingredients.Update)
			ingredients.DELETE("/:id", h.Ingredients.Delete)
			ingredients.GET("/:id/image", h.Ingredients.GetImage)
			ingredients.POST("/:id/image", h.Ingredients.UploadImage)
			ingredients.DELETE("/:id/image", h.Ingredients.DeleteImage)
		}

		comments := auth.Group("/comments")
		{
			comments.GET("", h.Comments.List)
			comments.POST("", h.Comments.Create)
			comments.GET("/:id", h.Comments.Get)
			comments.PATCH("/:id", h.Comments.Update)
			comments.DELETE("/:id", h.Comments.Delete)
		}
	}

	return r
}
