package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/usecase"
)

// ingredientPG is the PostgreSQL implementation of usecase.IngredientRepository.
type ingredientPG struct {
	db *gorm.DB
}

var _ usecase.IngredientRepository = (*ingredientPG)(nil)

// NewIngredientRepository creates an ingredient repository on the given
// connection.
func NewIngredientRepository(db *gorm.DB) *ingredientPG {
	return &ingredientPG{db: db}
}

// Create inserts the ingredient, assigning the id.
func (r *ingredientPG) Create(ctx context.Context, ingredient *entity.Ingredient) error {
	if ingredient == nil {
		return errors.New("nil ingredient")
	}
	m := IngredientModel{
		Name:      ingredient.Name,
		ImageKey:  ingredient.ImageKey,
		CreatedAt: ingredient.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&m).Error; err != nil {
		return err
	}
	ingredient.ID = m.ID
	ingredient.CreatedAt = m.CreatedAt
	return nil
}

// Update writes the ingredient's scalar fields.
func (r *ingredientPG) Update(ctx context.Context, ingredient *entity.Ingredient) error {
	if ingredient == nil {
		return errors.New("nil ingredient")
	}
	res := r.db.WithContext(ctx).Model(&IngredientModel{}).Where("id = ?", ingredient.ID).
		Update("name", ingredient.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

// FindByID retrieves an ingredient.
func (r *ingredientPG) FindByID(ctx context.Context, id uint) (*entity.Ingredient, error) {
	var m IngredientModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrIngredientNotFound
		}
		return nil, err
	}
	return ingredientEntity(&m), nil
}

// FindAll lists every ingredient.
func (r *ingredientPG) FindAll(ctx context.Context) ([]*entity.Ingredient, error) {
	var models []IngredientModel
	if err := r.db.WithContext(ctx).Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	ingredients := make([]*entity.Ingredient, 0, len(models))
	for i := range models {
		ingredients = append(ingredients, ingredientEntity(&models[i]))
	}
	return ingredients, nil
}

// ExistsByID reports whether an ingredient with the id exists.
func (r *ingredientPG) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&IngredientModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateImageKey sets the stored image key without loading the row.
func (r *ingredientPG) UpdateImageKey(ctx context.Context, id uint, key string) error {
	res := r.db.WithContext(ctx).Model(&IngredientModel{}).Where("id = ?", id).Update("image_key", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrIngredientNotFound
	}
	return nil
}

// Delete detaches the ingredient from every recipe and removes it in
// one transaction. Recipes survive.
func (r *ingredientPG) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&IngredientModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrIngredientNotFound
		}
		if err := tx.Exec("DELETE FROM recipes_ingredients WHERE ingredient_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&IngredientModel{}, id).Error
	})
}
