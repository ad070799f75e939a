package dto

import (
	"recipe_backend/internal/domain/entity"
)

// MenuCreateReq is the request body for creating a menu.
type MenuCreateReq struct {
	Name      string `json:"name" binding:"required,max=255"`
	RecipeIDs []uint `json:"recipe_ids"`
}

// MenuUpdateReq is the partial-update body for a menu.
type MenuUpdateReq struct {
	Name *string `json:"name" binding:"omitempty,max=255"`
}

// MenuResponse is the full menu body.
type MenuResponse struct {
	ID       uint             `json:"id"`
	Name     string           `json:"name"`
	ImageKey string           `json:"image_key,omitempty"`
	Author   *UserSummary     `json:"author,omitempty"`
	Recipes  []RecipeResponse `json:"recipes"`
}

// NewMenuResponse maps a menu entity to its response form.
func NewMenuResponse(m *entity.Menu) MenuResponse {
	return MenuResponse{
		ID:       m.ID,
		Name:     m.Name,
		ImageKey: m.ImageKey,
		Author:   NewUserSummary(m.Author()),
		Recipes:  NewRecipeResponses(m.Recipes()),
	}
}

// NewMenuResponses maps a slice of menu entities.
func NewMenuResponses(menus []*entity.Menu) []MenuResponse {
	out := make([]MenuResponse, 0, len(menus))
	for _, m := range menus {
		out = append(out, NewMenuResponse(m))
	}
	return out
}
