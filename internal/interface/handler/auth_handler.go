package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/interface/dto"
)

// AuthUsecase defines the authentication operations the handler needs.
// Following Go convention, the consumer declares the interface.
type AuthUsecase interface {
	SignUp(ctx context.Context, user *entity.User, password string) (*entity.User, error)
	SignIn(ctx context.Context, username, password string) (string, error)
}

// AuthHandler serves the public /signup and /signin endpoints.
type AuthHandler struct {
	auth AuthUsecase
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth AuthUsecase) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// Signup registers a new user. A taken username yields 409.
func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signup validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	user := &entity.User{
		Username:    req.Username,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
	}
	created, err := h.auth.SignUp(c.Request.Context(), user, req.Password)
	if err != nil {
		slog.Warn("signup failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
		writeError(c, err)
		return
	}
	slog.Info("user signup successful", "username", created.Username, "user_id", created.ID)
	c.JSON(http.StatusCreated, dto.NewUserResponse(created))
}

// Signin authenticates a user and returns a signed token. Unknown
// usernames and wrong passwords both collapse into the same response to
// prevent user enumeration.
func (h *AuthHandler) Signin(c *gin.Context) {
	var req dto.LoginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.Warn("signin validation failed", "error", err, "remote_addr", c.ClientIP())
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	token, err := h.auth.SignIn(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		// Only credential failures collapse; infrastructure faults keep
		// their error and reach the internal-error branch.
		if errors.Is(err, domain.ErrUserNotFound) || errors.Is(err, domain.ErrInvalidCredentials) {
			slog.Warn("signin failed", "error", err, "username", req.Username, "remote_addr", c.ClientIP())
			writeError(c, domain.ErrInvalidCredentials)
			return
		}
		writeError(c, err)
		return
	}
	slog.Info("user signin successful", "username", req.Username)
	c.JSON(http.StatusOK, dto.TokenResponse{Token: token})
}
