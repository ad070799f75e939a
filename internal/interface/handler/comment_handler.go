package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/interface/dto"
	jwtmw "recipe_backend/internal/platform/jwt"
)

// CommentUsecase defines the comment operations the handler needs.
type CommentUsecase interface {
	Create(ctx context.Context, text string, recipeID uint, username string) (*entity.Comment, error)
	Update(ctx context.Context, id uint, text string) (*entity.Comment, error)
	FindAll(ctx context.Context) ([]*entity.Comment, error)
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)
	Delete(ctx context.Context, id uint) error
}

// CommentChecker decides whether a principal may mutate a comment.
// Editing needs the comment author; deleting also admits the author of
// the recipe the comment sits on, who moderates their own recipe.
type CommentChecker interface {
	IsAuthor(ctx context.Context, id uint, username string) (bool, error)
	IsCommentOrRecipeAuthor(ctx context.Context, id uint, username string) (bool, error)
}

// CommentHandler serves the /comments endpoints.
type CommentHandler struct {
	comments CommentUsecase
	checker  CommentChecker
}

// NewCommentHandler creates a new CommentHandler.
func NewCommentHandler(comments CommentUsecase, checker CommentChecker) *CommentHandler {
	return &CommentHandler{comments: comments, checker: checker}
}

// Create attaches a comment to the recipe named in the body.
func (h *CommentHandler) Create(c *gin.Context) {
	var req dto.CommentCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), req.Text, req.RecipeID, jwtmw.PrincipalUsername(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCommentResponse(comment))
}

// CreateForRecipe attaches a comment to the recipe named in the path.
func (h *CommentHandler) CreateForRecipe(c *gin.Context) {
	recipeID, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CommentUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}

	comment, err := h.comments.Create(c.Request.Context(), req.Text, recipeID, jwtmw.PrincipalUsername(c))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.NewCommentResponse(comment))
}

// List returns every comment.
func (h *CommentHandler) List(c *gin.Context) {
	comments, err := h.comments.FindAll(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCommentResponses(comments))
}

// Get returns one comment by id.
func (h *CommentHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	comment, err := h.comments.FindByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCommentResponse(comment))
}

// Update edits the comment's text. Only its author or an admin may do this.
func (h *CommentHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req dto.CommentUpdateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "invalid request"})
		return
	}
	if !authorize(c, id, h.checker.IsAuthor) {
		return
	}

	comment, err := h.comments.Update(c.Request.Context(), id, req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.NewCommentResponse(comment))
}

// Delete removes the comment. The comment author, the recipe author and
// admins may do this.
func (h *CommentHandler) Delete(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if !authorize(c, id, h.checker.IsCommentOrRecipeAuthor) {
		return
	}
	if err := h.comments.Delete(c.Request.Context(), id); err != nil {
		writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
