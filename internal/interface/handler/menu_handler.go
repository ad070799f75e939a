package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/interface/dto"
	jwtmw "recipe_backend/internal/platform/jwt"
	"recipe_backend/internal/usecase"
)

// MenuUsecase defines the menu operations the handler needs.
type MenuUsecase interface {
	Create(ctx context.Context, name string, recipeIDs []uint, username string) (*entity.Menu, error)
	Update(ctx context.Context, id uint, upd usecase.MenuUpdate) (*entity.Menu, error)
	FindAll(ctx context.Context) ([]*entity.Menu, error)
	FindByID(ctx context.Context, id uint) (*entity.Menu, error)
	Delete(ctx context.Context, id uint) error
	GetRecipes(ctx context.Context, id uint) ([]*entity.Recipe, error)
	AddRecipes(ctx context.Context, id uint, recipeIDs []uint) error
	RemoveRecipes(ctx context.Context, id uint, recipeIDs []uint) error
	AddImage(ctx context.Context, id uint, data []byte) (string, error)
	GetImage(ctx context.Context, id uint) ([]byte, error)
	DeleteImage(ctx context.Context, id uint) error
}

// MenuChecker decides whether a principal may mutate a menu.
type MenuChecker interface {
	IsAuthor(ctx context.Context, id uint, username string) (bool, error)
}

// MenuHandler serves the /menus endpoints.
type MenuHandler struct {
	menus   MenuUsecase
	checker MenuChecker
}

// NewMenuHandler creates a new MenuHandler.
func NewMenuHandler(menus MenuUsecase, checker MenuChecker) *MenuHandler {
	return &MenuHandler{menus: menus, checker: checker}
}

// Create persists a new menu authored by the authenticated principal.
func (h *MenuHandler) Create(c *gin.Context) {
	var req dto.MenuCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	menu, err := h.menus.Create(c.Request.Context(), req.Name, req.RecipeIDs, jwtmw.PrincipalUsername(c))
	if err != nil {
		writeError(c, err)
		return
	}
	slog.Info("menu created", "menu_id", menu.ID, "username", jwtmw.PrincipalUsername(c))
	c.JSON(http.StatusCreated, dto.NewMenuResponse(menu))
}

// List returns every menu.
func (h *MenuHandler) List(c *gin.Context) {
	menus, err := h.menus.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMenuResponses(menus))
}

// Get returns one menu by id.
func (h *MenuHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	menu, err := h.menus.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMenuResponse(menu))
}

// Update applies a partial update. Only the author or an admin may do this.
func (h *MenuHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.MenuUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if !authorize(c, id, h.checker.IsAuthor) {
		return
	}

	menu, err := h.menus.Update(c.Request.Context(), id, usecase.MenuUpdate{Name: req.Name})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMenuResponse(menu))
}

// Delete removes the menu; its recipes survive.
func (h *MenuHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !authorize(c, id, h.checker.IsAuthor) {
		return
	}
	if err := h.menus.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("menu deleted", "menu_id", id)
	c.Status(http.StatusNoContent)
}

// GetRecipes returns the menu's recipe set.
func (h *MenuHandler) GetRecipes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	recipes, err := h.menus.GetRecipes(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeResponses(recipes))
}

// AddRecipes attaches a list of recipes to the menu.
func (h *MenuHandler) AddRecipes(c *gin.Context) {
	h.mutateRecipes(c, h.menus.AddRecipes)
}

// RemoveRecipes detaches a list of recipes from the menu.
func (h *MenuHandler) RemoveRecipes(c *gin.Context) {
	h.mutateRecipes(c, h.menus.RemoveRecipes)
}

func (h *MenuHandler) mutateRecipes(c *gin.Context, op func(ctx context.Context, id uint, recipeIDs []uint) error) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.IDListReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if !authorize(c, id, h.checker.IsAuthor) {
		return
	}
	if err := op(c.Request.Context(), id, req.IDs); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "ok"})
}

// UploadImage stores an image for the menu.
func (h *MenuHandler) UploadImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !authorize(c, id, h.checker.IsAuthor) {
		return
	}
	data, ok := readImageFile(c)
	if !ok {
		return
	}
	key, err := h.menus.AddImage(c.Request.Context(), id, data)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ImageResponse{Key: key})
}

// GetImage returns the stored menu image bytes.
func (h *MenuHandler) GetImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	data, err := h.menus.GetImage(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	serveImage(c, data)
}

// DeleteImage removes the stored menu image.
func (h *MenuHandler) DeleteImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !authorize(c, id, h.checker.IsAuthor) {
		return
	}
	if err := h.menus.DeleteImage(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
