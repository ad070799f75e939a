package usecase

import (
	"context"
	"time"

	"recipe_backend/internal/domain/entity"
)

// CommentRepository abstracts the persistence layer for comments.
type CommentRepository interface {
	// Create persists a new comment with its author and recipe links,
	// assigning the id.
	Create(ctx context.Context, comment *entity.Comment) error

	// Update persists the comment's text.
	Update(ctx context.Context, comment *entity.Comment) error

	// FindByID retrieves a comment with its author and its recipe's
	// author attached.
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)

	// FindAll lists every comment.
	FindAll(ctx context.Context) ([]*entity.Comment, error)

	// Delete removes the comment.
	Delete(ctx context.Context, id uint) error
}

// CommentUsecase implements comment lifecycle.
type CommentUsecase struct {
	comments CommentRepository
	recipes  RecipeRepository
	users    UserRepository
}

// NewCommentUsecase creates a new CommentUsecase.
func NewCommentUsecase(comments CommentRepository, recipes RecipeRepository, users UserRepository) *CommentUsecase {
	return &CommentUsecase{comments: comments, recipes: recipes, users: users}
}

// Create attaches a new comment to the recipe, authored by the given
// principal.
func (u *CommentUsecase) Create(ctx context.Context, text string, recipeID uint, username string) (*entity.Comment, error) {
	author, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	recipe, err := u.recipes.FindByID(ctx, recipeID)
	if err != nil {
		return nil, err
	}

	comment := &entity.Comment{Text: text, CreatedAt: time.Now()}
	author.AddComment(comment)
	recipe.AddComment(comment)

	if err := u.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Update replaces the comment's text.
func (u *CommentUsecase) Update(ctx context.Context, id uint, text string) (*entity.Comment, error) {
	comment, err := u.comments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comment.Text = text

	if err := u.comments.Update(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// FindAll lists every comment.
func (u *CommentUsecase) FindAll(ctx context.Context) ([]*entity.Comment, error) {
	return u.comments.FindAll(ctx)
}

// FindByID retrieves one comment.
func (u *CommentUsecase) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	return u.comments.FindByID(ctx, id)
}

// Delete removes the comment.
func (u *CommentUsecase) Delete(ctx context.Context, id uint) error {
	return u.comments.Delete(ctx, id)
}
