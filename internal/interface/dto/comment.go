package dto

import (
	"time"

	"recipe_backend/internal/domain/entity"
)

// CommentCreateReq is the request body for creating a comment.
type CommentCreateReq struct {
	Text     string `json:"text" binding:"required,max=2048"`
	RecipeID uint   `json:"recipe_id" binding:"required"`
}

// CommentUpdateReq is the request body for editing a comment's text.
type CommentUpdateReq struct {
	Text string `json:"text" binding:"required,max=2048"`
}

// CommentResponse is the full comment body.
type CommentResponse struct {
	ID        uint         `json:"id"`
	Text      string       `json:"text"`
	CreatedAt time.Time    `json:"created_at"`
	Author    *UserSummary `json:"author,omitempty"`
	RecipeID  uint         `json:"recipe_id,omitempty"`
}

// NewCommentResponse maps a comment entity to its response form.
func NewCommentResponse(c *entity.Comment) CommentResponse {
	out := CommentResponse{
		ID:        c.ID,
		Text:      c.Text,
		CreatedAt: c.CreatedAt,
		Author:    NewUserSummary(c.Author()),
	}
	if r := c.Recipe(); r != nil {
		out.RecipeID = r.ID
	}
	return out
}

// NewCommentResponses maps a slice of comment entities.
func NewCommentResponses(comments []*entity.Comment) []CommentResponse {
	out := make([]CommentResponse, 0, len(comments))
	for _, c := range comments {
		out = append(out, NewCommentResponse(c))
	}
	return out
}
