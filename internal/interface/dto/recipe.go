package dto

import (
	"time"

	"recipe_backend/internal/domain/entity"
)

// RecipeCreateReq is the request body for creating a recipe.
type RecipeCreateReq struct {
	Name            string `json:"name" binding:"required,max=255"`
	Description     string `json:"description" binding:"omitempty,max=2048"`
	SecondsDuration int64  `json:"seconds_duration" binding:"omitempty,min=0"`
	ProductsCost    int64  `json:"products_cost" binding:"omitempty,min=0"`
	Complexity      string `json:"complexity" binding:"required,oneof=EASY MEDIUM HARD"`
	IngredientIDs   []uint `json:"ingredient_ids"`
}

// RecipeUpdateReq is the partial-update body for a recipe.
type RecipeUpdateReq struct {
	Name            *string `json:"name" binding:"omitempty,max=255"`
	Description     *string `json:"description" binding:"omitempty,max=2048"`
	SecondsDuration *int64  `json:"seconds_duration" binding:"omitempty,min=0"`
	ProductsCost    *int64  `json:"products_cost" binding:"omitempty,min=0"`
	Complexity      *string `json:"complexity" binding:"omitempty,oneof=EASY MEDIUM HARD"`
}

// RecipeResponse is the full recipe body.
type RecipeResponse struct {
	ID              uint                 `json:"id"`
	Name            string               `json:"name"`
	Description     string               `json:"description,omitempty"`
	SecondsDuration int64                `json:"seconds_duration"`
	ProductsCost    int64                `json:"products_cost"`
	Complexity      string               `json:"complexity"`
	ImageKey        string               `json:"image_key,omitempty"`
	CreatedAt       time.Time            `json:"created_at"`
	Author          *UserSummary         `json:"author,omitempty"`
	Ingredients     []IngredientResponse `json:"ingredients"`
}

// NewRecipeResponse maps a recipe entity to its response form.
func NewRecipeResponse(r *entity.Recipe) RecipeResponse {
	return RecipeResponse{
		ID:              r.ID,
		Name:            r.Name,
		Description:     r.Description,
		SecondsDuration: r.SecondsDuration,
		ProductsCost:    r.ProductsCost,
		Complexity:      string(r.Complexity),
		ImageKey:        r.ImageKey,
		CreatedAt:       r.CreatedAt,
		Author:          NewUserSummary(r.Author()),
		Ingredients:     NewIngredientResponses(r.Ingredients()),
	}
}

// NewRecipeResponses maps a slice of recipe entities.
func NewRecipeResponses(recipes []*entity.Recipe) []RecipeResponse {
	out := make([]RecipeResponse, 0, len(recipes))
	for _, r := range recipes {
		out = append(out, NewRecipeResponse(r))
	}
	return out
}
