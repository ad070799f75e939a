package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/platform/storage"
)

// RecipeRepository abstracts the persistence layer for recipes. The
// association and delete operations run inside one transaction and
// resolve every referenced id strictly: a single unknown id aborts the
// whole operation with the typed not-found error.
type RecipeRepository interface {
	// Create persists a new recipe with its author link and ingredient
	// associations, assigning the id.
	Create(ctx context.Context, recipe *entity.Recipe) error

	// Update persists the recipe's scalar fields.
	Update(ctx context.Context, recipe *entity.Recipe) error

	// FindByID retrieves a recipe with author and ingredients attached.
	FindByID(ctx context.Context, id uint) (*entity.Recipe, error)

	// FindAll lists every recipe with author and ingredients attached.
	FindAll(ctx context.Context) ([]*entity.Recipe, error)

	// ExistsByID reports whether a recipe with the id exists.
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Delete detaches the recipe from every menu and ingredient, deletes
	// its comments and then the recipe itself, all in one transaction.
	// Menus and ingredients survive.
	Delete(ctx context.Context, id uint) error

	// UpdateImageKey sets the stored image key; empty clears it.
	UpdateImageKey(ctx context.Context, id uint, key string) error

	// MenusOf lists the menus the recipe appears on.
	MenusOf(ctx context.Context, id uint) ([]*entity.Menu, error)

	// CommentsOf lists the comments on the recipe.
	CommentsOf(ctx context.Context, id uint) ([]*entity.Comment, error)

	// IngredientsOf lists the recipe's ingredient set.
	IngredientsOf(ctx context.Context, id uint) ([]*entity.Ingredient, error)

	// AttachIngredients adds the given ingredients to the recipe's set.
	// Already-attached ids are no-ops.
	AttachIngredients(ctx context.Context, id uint, ingredientIDs []uint) error

	// DetachIngredients removes the given ingredients from the set.
	// Non-attached ids are no-ops.
	DetachIngredients(ctx context.Context, id uint, ingredientIDs []uint) error

	// ReplaceIngredients swaps the whole ingredient set for the given
	// ids, in order, deduplicated.
	ReplaceIngredients(ctx context.Context, id uint, ingredientIDs []uint) error
}

// RecipeCreation carries the fields of a new recipe.
type RecipeCreation struct {
	Name            string
	Description     string
	SecondsDuration int64
	ProductsCost    int64
	Complexity      entity.Complexity
	IngredientIDs   []uint
}

// RecipeUpdate carries a partial recipe update. Nil fields stay untouched.
type RecipeUpdate struct {
	Name            *string
	Description     *string
	SecondsDuration *int64
	ProductsCost    *int64
	Complexity      *entity.Complexity
}

// RecipeUsecase implements recipe lifecycle, ingredient association and
// image handling.
type RecipeUsecase struct {
	recipes     RecipeRepository
	ingredients IngredientRepository
	users       UserRepository
	images      imageStore
}

// NewRecipeUsecase creates a new RecipeUsecase.
func NewRecipeUsecase(recipes RecipeRepository, ingredients IngredientRepository, users UserRepository,
	blobs storage.Storage, bucket string) *RecipeUsecase {
	return &RecipeUsecase{
		recipes:     recipes,
		ingredients: ingredients,
		users:       users,
		images:      imageStore{blobs: blobs, bucket: bucket, prefix: "recipe-images"},
	}
}

// Create builds a recipe authored by the given principal, attaches the
// referenced ingredients and persists the result.
func (u *RecipeUsecase) Create(ctx context.Context, in RecipeCreation, username string) (*entity.Recipe, error) {
	author, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	recipe := &entity.Recipe{
		Name:            in.Name,
		Description:     in.Description,
		SecondsDuration: in.SecondsDuration,
		ProductsCost:    in.ProductsCost,
		Complexity:      in.Complexity,
		CreatedAt:       time.Now(),
	}
	author.AddRecipe(recipe)

	for _, id := range in.IngredientIDs {
		ingredient, err := u.ingredients.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		recipe.AddIngredient(ingredient)
	}

	if err := u.recipes.Create(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// Update applies a partial update; only supplied fields change.
func (u *RecipeUsecase) Update(ctx context.Context, id uint, upd RecipeUpdate) (*entity.Recipe, error) {
	recipe, err := u.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		recipe.Name = *upd.Name
	}
	if upd.Description != nil {
		recipe.Description = *upd.Description
	}
	if upd.SecondsDuration != nil {
		recipe.SecondsDuration = *upd.SecondsDuration
	}
	if upd.ProductsCost != nil {
		recipe.ProductsCost = *upd.ProductsCost
	}
	if upd.Complexity != nil {
		recipe.Complexity = *upd.Complexity
	}

	if err := u.recipes.Update(ctx, recipe); err != nil {
		return nil, err
	}
	return recipe, nil
}

// FindAll lists every recipe.
func (u *RecipeUsecase) FindAll(ctx context.Context) ([]*entity.Recipe, error) {
	return u.recipes.FindAll(ctx)
}

// FindByID retrieves one recipe.
func (u *RecipeUsecase) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	return u.recipes.FindByID(ctx, id)
}

// GetMenus lists the menus the recipe appears on.
func (u *RecipeUsecase) GetMenus(ctx context.Context, id uint) ([]*entity.Menu, error) {
	return u.recipes.MenusOf(ctx, id)
}

// GetComments lists the comments on the recipe.
func (u *RecipeUsecase) GetComments(ctx context.Context, id uint) ([]*entity.Comment, error) {
	return u.recipes.CommentsOf(ctx, id)
}

// GetIngredients lists the recipe's ingredient set.
func (u *RecipeUsecase) GetIngredients(ctx context.Context, id uint) ([]*entity.Ingredient, error) {
	return u.recipes.IngredientsOf(ctx, id)
}

// AddIngredients attaches the referenced ingredients to the recipe.
func (u *RecipeUsecase) AddIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	return u.recipes.AttachIngredients(ctx, id, ingredientIDs)
}

// RemoveIngredients detaches the referenced ingredients from the recipe.
func (u *RecipeUsecase) RemoveIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	return u.recipes.DetachIngredients(ctx, id, ingredientIDs)
}

// ReplaceIngredients swaps the recipe's whole ingredient set.
func (u *RecipeUsecase) ReplaceIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	return u.recipes.ReplaceIngredients(ctx, id, ingredientIDs)
}

// Delete removes the recipe, its comments and its associations.
func (u *RecipeUsecase) Delete(ctx context.Context, id uint) error {
	return u.recipes.Delete(ctx, id)
}

// AddImage stores a recipe image under a fresh random key.
func (u *RecipeUsecase) AddImage(ctx context.Context, id uint, data []byte) (string, error) {
	exists, err := u.recipes.ExistsByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrRecipeNotFound
	}

	key := uuid.NewString()
	if err := u.images.put(ctx, id, key, data); err != nil {
		return "", err
	}
	if err := u.recipes.UpdateImageKey(ctx, id, key); err != nil {
		return "", err
	}
	return key, nil
}

// GetImage returns the stored recipe image bytes.
func (u *RecipeUsecase) GetImage(ctx context.Context, id uint) ([]byte, error) {
	recipe, err := u.recipes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if recipe.ImageKey == "" {
		return nil, domain.ErrImageNotFound
	}
	return u.images.get(ctx, id, recipe.ImageKey)
}

// DeleteImage removes the stored recipe image, if any.
func (u *RecipeUsecase) DeleteImage(ctx context.Context, id uint) error {
	recipe, err := u.recipes.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if recipe.ImageKey == "" {
		return nil
	}
	if err := u.images.remove(ctx, id, recipe.ImageKey); err != nil {
		return err
	}
	return u.recipes.UpdateImageKey(ctx, id, "")
}
