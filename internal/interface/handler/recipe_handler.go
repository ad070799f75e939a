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

// RecipeUsecase defines the recipe operations the handler needs.
type RecipeUsecase interface {
	Create(ctx context.Context, in usecase.RecipeCreation, username string) (*entity.Recipe, error)
	Update(ctx context.Context, id uint, upd usecase.RecipeUpdate) (*entity.Recipe, error)
	FindAll(ctx context.Context) ([]*entity.Recipe, error)
	FindByID(ctx context.Context, id uint) (*entity.Recipe, error)
	Delete(ctx context.Context, id uint) error
	GetMenus(ctx context.Context, id uint) ([]*entity.Menu, error)
	GetComments(ctx context.Context, id uint) ([]*entity.Comment, error)
	GetIngredients(ctx context.Context, id uint) ([]*entity.Ingredient, error)
	AddIngredients(ctx context.Context, id uint, ingredientIDs []uint) error
	RemoveIngredients(ctx context.Context, id uint, ingredientIDs []uint) error
	ReplaceIngredients(ctx context.Context, id uint, ingredientIDs []uint) error
	AddImage(ctx context.Context, id uint, data []byte) (string, error)
	GetImage(ctx context.Context, id uint) ([]byte, error)
	DeleteImage(ctx context.Context, id uint) error
}

// RecipeChecker decides whether a principal may mutate a recipe.
type RecipeChecker interface {
	IsAuthor(ctx context.Context, id uint, username string) (bool, error)
}

// RecipeHandler serves the /recipes endpoints.
type RecipeHandler struct {
	recipes RecipeUsecase
	checker RecipeChecker
}

// NewRecipeHandler creates a new RecipeHandler.
func NewRecipeHandler(recipes RecipeUsecase, checker RecipeChecker) *RecipeHandler {
	return &RecipeHandler{recipes: recipes, checker: checker}
}

// Create persists a new recipe authored by the authenticated principal.
func (h *RecipeHandler) Create(c *gin.Context) {
	var req dto.RecipeCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	complexity, err := entity.ParseComplexity(req.Complexity)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid complexity"})
		return
	}

	recipe, err := h.recipes.Create(c.Request.Context(), usecase.RecipeCreation{
		Name:            req.Name,
		Description:     req.Description,
		SecondsDuration: req.SecondsDuration,
		ProductsCost:    req.ProductsCost,
		Complexity:      complexity,
		IngredientIDs:   req.IngredientIDs,
	}, jwtmw.PrincipalUsername(c))
	if err != nil {
		writeError(c, err)
		return
	}
	slog.Info("recipe created", "recipe_id", recipe.ID, "username", jwtmw.PrincipalUsername(c))
	c.JSON(http.StatusCreated, dto.NewRecipeResponse(recipe))
}

// List returns every recipe.
func (h *RecipeHandler) List(c *gin.Context) {
	recipes, err := h.recipes.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeResponses(recipes))
}

// Get returns one recipe by id.
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	recipe, err := h.recipes.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeResponse(recipe))
}

// Update applies a partial update. Only the author or an admin may do this.
func (h *RecipeHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.RecipeUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if !authorize(c, id, h.checker.IsAuthor) {
		return
	}

	upd := usecase.RecipeUpdate{
		Name:            req.Name,
		Description:     req.Description,
		SecondsDuration: req.SecondsDuration,
		ProductsCost:    req.ProductsCost,
	}
	if req.Complexity != nil {
		complexity, err := entity.ParseComplexity(*req.Complexity)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid complexity"})
			return
		}
		upd.Complexity = &complexity
	}

	recipe, err := h.recipes.Update(c.Request.Context(), id, upd)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeResponse(recipe))
}

// Delete removes the recipe, its comments and its associations.
func (h *RecipeHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !authorize(c, id, h.checker.IsAuthor) {
		return
	}
	if err := h.recipes.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("recipe deleted", "recipe_id", id)
	c.Status(http.StatusNoContent)
}

// GetMenus returns the menus the recipe appears on.
func (h *RecipeHandler) GetMenus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	menus, err := h.recipes.GetMenus(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMenuResponses(menus))
}

// GetComments returns the comments on the recipe.
func (h *RecipeHandler) GetComments(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	comments, err := h.recipes.GetComments(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCommentResponses(comments))
}

// GetIngredients returns the recipe's ingredient set.
func (h *RecipeHandler) GetIngredients(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	ingredients, err := h.recipes.GetIngredients(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewIngredientResponses(ingredients))
}

// AddIngredients attaches a list of ingredients to the recipe.
func (h *RecipeHandler) AddIngredients(c *gin.Context) {
	h.mutateIngredients(c, h.recipes.AddIngredients)
}

// RemoveIngredients detaches a list of ingredients from the recipe.
func (h *RecipeHandler) RemoveIngredients(c *gin.Context) {
	h.mutateIngredients(c, h.recipes.RemoveIngredients)
}

// ReplaceIngredients swaps the recipe's whole ingredient set.
func (h *RecipeHandler) ReplaceIngredients(c *gin.Context) {
	h.mutateIngredients(c, h.recipes.ReplaceIngredients)
}

func (h *RecipeHandler) mutateIngredients(c *gin.Context, op func(ctx context.Context, id uint, ingredientIDs []uint) error) {
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

// UploadImage stores an image for the recipe.
func (h *RecipeHandler) UploadImage(c *gin.Context) {
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
	key, err := h.recipes.AddImage(c.Request.Context(), id, data)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ImageResponse{Key: key})
}

// GetImage returns the stored recipe image bytes.
func (h *RecipeHandler) GetImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	data, err := h.recipes.GetImage(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	serveImage(c, data)
}

// DeleteImage removes the stored recipe image.
func (h *RecipeHandler) DeleteImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !authorize(c, id, h.checker.IsAuthor) {
		return
	}
	if err := h.recipes.DeleteImage(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
