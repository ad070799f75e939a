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

// UserUsecase defines the user operations the handler needs.
type UserUsecase interface {
	FindAll(ctx context.Context) ([]*entity.User, error)
	FindByID(ctx context.Context, id uint) (*entity.User, error)
	Update(ctx context.Context, id uint, upd usecase.UserUpdate) (*entity.User, error)
	Delete(ctx context.Context, id uint) error
	GetRecipes(ctx context.Context, id uint) ([]*entity.Recipe, error)
	GetMenus(ctx context.Context, id uint) ([]*entity.Menu, error)
	AddImage(ctx context.Context, id uint, data []byte) (string, error)
	GetImage(ctx context.Context, id uint) ([]byte, error)
	DeleteImage(ctx context.Context, id uint) error
}

// UserChecker decides whether a principal may act on a user account.
type UserChecker interface {
	IsSelf(ctx context.Context, id uint, username string) (bool, error)
}

// UserHandler serves the /users endpoints.
type UserHandler struct {
	users   UserUsecase
	checker UserChecker
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users UserUsecase, checker UserChecker) *UserHandler {
	return &UserHandler{users: users, checker: checker}
}

// List returns every user.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.users.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponses(users))
}

// Get returns one user by id.
func (h *UserHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	user, err := h.users.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Update applies a partial profile update. Only the account owner or an
// admin may do this.
func (h *UserHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.UserUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if !authorize(c, id, h.checker.IsSelf) {
		return
	}

	user, err := h.users.Update(c.Request.Context(), id, usecase.UserUpdate{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Password:    req.Password,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewUserResponse(user))
}

// Delete removes the account and everything it owns.
func (h *UserHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !authorize(c, id, h.checker.IsSelf) {
		return
	}
	if err := h.users.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	slog.Info("user deleted", "user_id", id)
	c.Status(http.StatusNoContent)
}

// GetRecipes returns the recipes the user authored.
func (h *UserHandler) GetRecipes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	recipes, err := h.users.GetRecipes(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewRecipeResponses(recipes))
}

// GetMenus returns the menus the user authored.
func (h *UserHandler) GetMenus(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	menus, err := h.users.GetMenus(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewMenuResponses(menus))
}

// UploadImage stores a profile image for the account.
func (h *UserHandler) UploadImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !authorize(c, id, h.checker.IsSelf) {
		return
	}
	data, ok := readImageFile(c)
	if !ok {
		return
	}
	key, err := h.users.AddImage(c.Request.Context(), id, data)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ImageResponse{Key: key})
}

// GetImage returns the stored profile image bytes.
func (h *UserHandler) GetImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	data, err := h.users.GetImage(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	serveImage(c, data)
}

// DeleteImage removes the stored profile image.
func (h *UserHandler) DeleteImage(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !authorize(c, id, h.checker.IsSelf) {
		return
	}
	if err := h.users.DeleteImage(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
