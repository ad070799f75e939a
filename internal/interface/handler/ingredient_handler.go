package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/interface/dto"
	"recipe_backend/internal/usecase"
)

// IngredientUsecase defines the ingredient operations the handler needs.
type IngredientUsecase interface {
	Create(ctx context.Context, name string) (*entity.Ingredient, error)
	Update(ctx context.Context, id uint, upd usecase.IngredientUpdate) (*entity.Ingredient, error)
	FindAll(ctx context.Context) ([]*entity.Ingredient, error)
	FindByID(ctx context.Context, id uint) (*entity.Ingredient, error)
	Delete(ctx context.Context, id uint) error
	AddImage(ctx context.Context, id uint, data []byte) (string, error)
	GetImage(ctx context.Context, id uint) ([]byte, error)
	DeleteImage(ctx context.Context, id uint) error
}

// IngredientHandler serves the /ingredients endpoints. Ingredients are
// a shared catalog without an owner, so every mutation is admin-only.
type IngredientHandler struct {
	ingredients IngredientUsecase
}

// NewIngredientHandler creates a new IngredientHandler.
func NewIngredientHandler(ingredients IngredientUsecase) *IngredientHandler {
	return &IngredientHandler{ingredients: ingredients}
}

// Create persists a new ingredient.
func (h *IngredientHandler) Create(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	var req dto.IngredientCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	ingredient, err := h.ingredients.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, err)
		return
	}
	slog.Info("ingredient created", "ingredient_id", ingredient.ID)
	c.JSON(http.StatusCreated, dto.NewIngredientResponse(ingredient))
}

// List returns every ingredient.
func (h *IngredientHandler) List(c *gin.Context) {
	ingredients, err := h.ingredients.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewIngredientResponses(ingredients))
}

// Get returns one ingredient by id.
func (h *IngredientHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ingredient, err := h.ingredients.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewIngredientResponse(ingredient))
}

// Update applies a partial update.
func (h *IngredientHandler) Update(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.IngredientUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	ingredient, err := h.ingredients.Update(c.Request.Context(), id, usecase.IngredientUpdate{Name: req.Name})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewIngredientResponse(ingredient))
}

// Delete removes the ingredient; recipes keep working without it.
func (h *IngredientHandler) Delete(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ingredients.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("ingredient deleted", "ingredient_id", id)
	c.Status(http.StatusNoContent)
}

// UploadImage stores an image for the ingredient.
func (h *IngredientHandler) UploadImage(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	data, ok := readImageFile(c)
	if !ok {
		return
	}
	key, err := h.ingredients.AddImage(c.Request.Context(), id, data)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ImageResponse{Key: key})
}

// GetImage returns the stored ingredient image bytes.
func (h *IngredientHandler) GetImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	data, err := h.ingredients.GetImage(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	serveImage(c, data)
}

// DeleteImage removes the stored ingredient image.
func (h *IngredientHandler) DeleteImage(c *gin.Context) {
	if !requireAdmin(c) {
		return
	}
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := h.ingredients.DeleteImage(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
