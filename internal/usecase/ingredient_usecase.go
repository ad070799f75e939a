package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/platform/storage"
)

// IngredientRepository abstracts the persistence layer for ingredients.
type IngredientRepository interface {
	// Create persists a new ingredient, assigning the id.
	Create(ctx context.Context, ingredient *entity.Ingredient) error

	// Update persists the ingredient's scalar fields.
	Update(ctx context.Context, ingredient *entity.Ingredient) error

	// FindByID retrieves an ingredient.
	FindByID(ctx context.Context, id uint) (*entity.Ingredient, error)

	// FindAll lists every ingredient.
	FindAll(ctx context.Context) ([]*entity.Ingredient, error)

	// ExistsByID reports whether an ingredient with the id exists.
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Delete detaches the ingredient from every recipe and deletes it,
	// in one transaction. Recipes survive.
	Delete(ctx context.Context, id uint) error

	// UpdateImageKey sets the stored image key; empty clears it.
	UpdateImageKey(ctx context.Context, id uint, key string) error
}

// IngredientUpdate carries a partial ingredient update.
type IngredientUpdate struct {
	Name *string
}

// IngredientUsecase implements ingredient lifecycle and image handling.
type IngredientUsecase struct {
	ingredients IngredientRepository
	images      imageStore
}

// NewIngredientUsecase creates a new IngredientUsecase.
func NewIngredientUsecase(ingredients IngredientRepository, blobs storage.Storage, bucket string) *IngredientUsecase {
	return &IngredientUsecase{
		ingredients: ingredients,
		images:      imageStore{blobs: blobs, bucket: bucket, prefix: "ingredient-images"},
	}
}

// Create persists a new ingredient.
func (u *IngredientUsecase) Create(ctx context.Context, name string) (*entity.Ingredient, error) {
	ingredient := &entity.Ingredient{Name: name, CreatedAt: time.Now()}
	if err := u.ingredients.Create(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// Update applies a partial update; only supplied fields change.
func (u *IngredientUsecase) Update(ctx context.Context, id uint, upd IngredientUpdate) (*entity.Ingredient, error) {
	ingredient, err := u.ingredients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		ingredient.Name = *upd.Name
	}

	if err := u.ingredients.Update(ctx, ingredient); err != nil {
		return nil, err
	}
	return ingredient, nil
}

// FindAll lists every ingredient.
func (u *IngredientUsecase) FindAll(ctx context.Context) ([]*entity.Ingredient, error) {
	return u.ingredients.FindAll(ctx)
}

// FindByID retrieves one ingredient.
func (u *IngredientUsecase) FindByID(ctx context.Context, id uint) (*entity.Ingredient, error) {
	return u.ingredients.FindByID(ctx, id)
}

// Delete removes the ingredient from every recipe that uses it, then
// deletes it.
func (u *IngredientUsecase) Delete(ctx context.Context, id uint) error {
	return u.ingredients.Delete(ctx, id)
}

// AddImage stores an ingredient image under a fresh random key.
func (u *IngredientUsecase) AddImage(ctx context.Context, id uint, data []byte) (string, error) {
	exists, err := u.ingredients.ExistsByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrIngredientNotFound
	}

	key := uuid.NewString()
	if err := u.images.put(ctx, id, key, data); err != nil {
		return "", err
	}
	if err := u.ingredients.UpdateImageKey(ctx, id, key); err != nil {
		return "", err
	}
	return key, nil
}

// GetImage returns the stored ingredient image bytes.
func (u *IngredientUsecase) GetImage(ctx context.Context, id uint) ([]byte, error) {
	ingredient, err := u.ingredients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ingredient.ImageKey == "" {
		return nil, domain.ErrImageNotFound
	}
	return u.images.get(ctx, id, ingredient.ImageKey)
}

// DeleteImage removes the stored ingredient image, if any.
func (u *IngredientUsecase) DeleteImage(ctx context.Context, id uint) error {
	ingredient, err := u.ingredients.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if ingredient.ImageKey == "" {
		return nil
	}
	if err := u.images.remove(ctx, id, ingredient.ImageKey); err != nil {
		return err
	}
	return u.ingredients.UpdateImageKey(ctx, id, "")
}
