package dto

import (
	"time"

	"recipe_backend/internal/domain/entity"
)

// IngredientCreateReq is the request body for creating an ingredient.
type IngredientCreateReq struct {
	Name string `json:"name" binding:"required,max=255"`
}

// IngredientUpdateReq is the partial-update body for an ingredient.
type IngredientUpdateReq struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

// IngredientResponse is the full ingredient body.
type IngredientResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	ImageKey  string    `json:"image_key,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// NewIngredientResponse maps an ingredient entity to its response form.
func NewIngredientResponse(i *entity.Ingredient) IngredientResponse {
	return IngredientResponse{
		ID:        i.ID,
		Name:      i.Name,
		ImageKey:  i.ImageKey,
		CreatedAt: i.CreatedAt,
	}
}

// NewIngredientResponses maps a slice of ingredient entities.
func NewIngredientResponses(ingredients []*entity.Ingredient) []IngredientResponse {
	out := make([]IngredientResponse, 0, len(ingredients))
	for _, i := range ingredients {
		out = append(out, NewIngredientResponse(i))
	}
	return out
}
