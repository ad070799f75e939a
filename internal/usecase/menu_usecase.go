package usecase

import (
	"context"

	"github.com/google/uuid"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/platform/storage"
)

// MenuRepository abstracts the persistence layer for menus. Association
// and delete operations run in one transaction with strict id resolution.
type MenuRepository interface {
	// Create persists a new menu with its author link and recipe
	// associations, assigning the id.
	Create(ctx context.Context, menu *entity.Menu) error

	// Update persists the menu's scalar fields.
	Update(ctx context.Context, menu *entity.Menu) error

	// FindByID retrieves a menu with author and recipes attached.
	FindByID(ctx context.Context, id uint) (*entity.Menu, error)

	// FindAll lists every menu with its author attached.
	FindAll(ctx context.Context) ([]*entity.Menu, error)

	// ExistsByID reports whether a menu with the id exists.
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// Delete detaches all recipe associations and deletes the menu in
	// one transaction. Recipes survive.
	Delete(ctx context.Context, id uint) error

	// UpdateImageKey sets the stored image key; empty clears it.
	UpdateImageKey(ctx context.Context, id uint, key string) error

	// RecipesOf lists the menu's recipe set.
	RecipesOf(ctx context.Context, id uint) ([]*entity.Recipe, error)

	// AttachRecipes adds the given recipes to the menu's set.
	AttachRecipes(ctx context.Context, id uint, recipeIDs []uint) error

	// DetachRecipes removes the given recipes from the menu's set.
	DetachRecipes(ctx context.Context, id uint, recipeIDs []uint) error
}

// MenuUpdate carries a partial menu update. Nil fields stay untouched.
type MenuUpdate struct {
	Name *string
}

// MenuUsecase implements menu lifecycle, recipe association and image
// handling.
type MenuUsecase struct {
	menus   MenuRepository
	recipes RecipeRepository
	users   UserRepository
	images  imageStore
}

// NewMenuUsecase creates a new MenuUsecase.
func NewMenuUsecase(menus MenuRepository, recipes RecipeRepository, users UserRepository,
	blobs storage.Storage, bucket string) *MenuUsecase {
	return &MenuUsecase{
		menus:   menus,
		recipes: recipes,
		users:   users,
		images:  imageStore{blobs: blobs, bucket: bucket, prefix: "menu-images"},
	}
}

// Create builds a menu authored by the given principal, attaches the
// referenced recipes and persists the result.
func (u *MenuUsecase) Create(ctx context.Context, name string, recipeIDs []uint, username string) (*entity.Menu, error) {
	author, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return nil, err
	}

	menu := &entity.Menu{Name: name}
	author.AddMenu(menu)

	for _, id := range recipeIDs {
		recipe, err := u.recipes.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		menu.AddRecipe(recipe)
	}

	if err := u.menus.Create(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// Update applies a partial update; only supplied fields change.
func (u *MenuUsecase) Update(ctx context.Context, id uint, upd MenuUpdate) (*entity.Menu, error) {
	menu, err := u.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Name != nil {
		menu.Name = *upd.Name
	}

	if err := u.menus.Update(ctx, menu); err != nil {
		return nil, err
	}
	return menu, nil
}

// FindAll lists every menu.
func (u *MenuUsecase) FindAll(ctx context.Context) ([]*entity.Menu, error) {
	return u.menus.FindAll(ctx)
}

// FindByID retrieves one menu.
func (u *MenuUsecase) FindByID(ctx context.Context, id uint) (*entity.Menu, error) {
	return u.menus.FindByID(ctx, id)
}

// GetRecipes lists the menu's recipe set.
func (u *MenuUsecase) GetRecipes(ctx context.Context, id uint) ([]*entity.Recipe, error) {
	return u.menus.RecipesOf(ctx, id)
}

// AddRecipes attaches the referenced recipes to the menu.
func (u *MenuUsecase) AddRecipes(ctx context.Context, id uint, recipeIDs []uint) error {
	return u.menus.AttachRecipes(ctx, id, recipeIDs)
}

// RemoveRecipes detaches the referenced recipes from the menu.
func (u *MenuUsecase) RemoveRecipes(ctx context.Context, id uint, recipeIDs []uint) error {
	return u.menus.DetachRecipes(ctx, id, recipeIDs)
}

// Delete removes the menu; its recipes stay.
func (u *MenuUsecase) Delete(ctx context.Context, id uint) error {
	return u.menus.Delete(ctx, id)
}

// AddImage stores a menu image under a fresh random key.
func (u *MenuUsecase) AddImage(ctx context.Context, id uint, data []byte) (string, error) {
	exists, err := u.menus.ExistsByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrMenuNotFound
	}

	key := uuid.NewString()
	if err := u.images.put(ctx, id, key, data); err != nil {
		return "", err
	}
	if err := u.menus.UpdateImageKey(ctx, id, key); err != nil {
		return "", err
	}
	return key, nil
}

// GetImage returns the stored menu image bytes.
func (u *MenuUsecase) GetImage(ctx context.Context, id uint) ([]byte, error) {
	menu, err := u.menus.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if menu.ImageKey == "" {
		return nil, domain.ErrImageNotFound
	}
	return u.images.get(ctx, id, menu.ImageKey)
}

// DeleteImage removes the stored menu image, if any.
func (u *MenuUsecase) DeleteImage(ctx context.Context, id uint) error {
	menu, err := u.menus.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if menu.ImageKey == "" {
		return nil
	}
	if err := u.images.remove(ctx, id, menu.ImageKey); err != nil {
		return err
	}
	return u.menus.UpdateImageKey(ctx, id, "")
}
