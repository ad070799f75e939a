package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/usecase"
)

// commentPG is the PostgreSQL implementation of usecase.CommentRepository.
type commentPG struct {
	db *gorm.DB
}

var _ usecase.CommentRepository = (*commentPG)(nil)

// NewCommentRepository creates a comment repository on the given connection.
func NewCommentRepository(db *gorm.DB) *commentPG {
	return &commentPG{db: db}
}

// Create inserts the comment. It must carry both an author and a recipe.
func (r *commentPG) Create(ctx context.Context, comment *entity.Comment) error {
	if comment == nil {
		return errors.New("nil comment")
	}
	author := comment.Author()
	recipe := comment.Recipe()
	if author == nil || author.ID == 0 || recipe == nil || recipe.ID == 0 {
		return errors.New("comment without persisted author and recipe")
	}
	m := CommentModel{
		Text:      comment.Text,
		CreatedAt: comment.CreatedAt,
		AuthorID:  author.ID,
		RecipeID:  recipe.ID,
	}
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(&m).Error; err != nil {
		return err
	}
	comment.ID = m.ID
	comment.CreatedAt = m.CreatedAt
	return nil
}

// Update writes the comment's text.
func (r *commentPG) Update(ctx context.Context, comment *entity.Comment) error {
	if comment == nil {
		return errors.New("nil comment")
	}
	res := r.db.WithContext(ctx).Model(&CommentModel{}).Where("id = ?", comment.ID).
		Update("text", comment.Text)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}

// FindByID retrieves a comment with its author and its recipe's author
// attached. The recipe author is needed for the moderation check that
// lets recipe owners manage comments on their recipes.
func (r *commentPG) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	var m CommentModel
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Recipe").Preload("Recipe.Author").
		Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrCommentNotFound
		}
		return nil, err
	}
	return commentEntity(&m), nil
}

// FindAll lists every comment with its author attached.
func (r *commentPG) FindAll(ctx context.Context) ([]*entity.Comment, error) {
	var models []CommentModel
	if err := r.db.WithContext(ctx).Preload("Author").Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	comments := make([]*entity.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, commentEntity(&models[i]))
	}
	return comments, nil
}

// Delete removes the comment.
func (r *commentPG) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&CommentModel{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrCommentNotFound
	}
	return nil
}
