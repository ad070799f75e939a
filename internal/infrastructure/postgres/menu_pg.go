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

// menuPG is the PostgreSQL implementation of usecase.MenuRepository.
type menuPG struct {
	db *gorm.DB
}

var _ usecase.MenuRepository = (*menuPG)(nil)

// NewMenuRepository creates a menu repository on the given connection.
func NewMenuRepository(db *gorm.DB) *menuPG {
	return &menuPG{db: db}
}

// Create inserts the menu row and its recipe associations in one
// transaction. The menu must carry an author.
func (r *menuPG) Create(ctx context.Context, menu *entity.Menu) error {
	if menu == nil {
		return errors.New("nil menu")
	}
	author := menu.Author()
	if author == nil || author.ID == 0 {
		return errors.New("menu without a persisted author")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := MenuModel{
			Name:     menu.Name,
			ImageKey: menu.ImageKey,
			AuthorID: author.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		for _, recipe := range menu.Recipes() {
			if err := tx.Exec(
				"INSERT INTO menus_recipes (menu_id, recipe_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
				m.ID, recipe.ID).Error; err != nil {
				return err
			}
		}
		menu.ID = m.ID
		return nil
	})
}

// Update writes the menu's scalar fields.
func (r *menuPG) Update(ctx context.Context, menu *entity.Menu) error {
	if menu == nil {
		return errors.New("nil menu")
	}
	res := r.db.WithContext(ctx).Model(&MenuModel{}).Where("id = ?", menu.ID).
		Update("name", menu.Name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

// FindByID retrieves a menu with author and recipes attached.
func (r *menuPG) FindByID(ctx context.Context, id uint) (*entity.Menu, error) {
	var m MenuModel
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Recipes").Preload("Recipes.Author").
		Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrMenuNotFound
		}
		return nil, err
	}
	return menuEntity(&m), nil
}

// FindAll lists every menu with its author attached.
func (r *menuPG) FindAll(ctx context.Context) ([]*entity.Menu, error) {
	var models []MenuModel
	if err := r.db.WithContext(ctx).Preload("Author").Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	menus := make([]*entity.Menu, 0, len(models))
	for i := range models {
		menus = append(menus, menuEntity(&models[i]))
	}
	return menus, nil
}

// ExistsByID reports whether a menu with the id exists.
func (r *menuPG) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&MenuModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateImageKey sets the stored image key without loading the aggregate.
func (r *menuPG) UpdateImageKey(ctx context.Context, id uint, key string) error {
	res := r.db.WithContext(ctx).Model(&MenuModel{}).Where("id = ?", id).Update("image_key", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

// RecipesOf lists the menu's recipe set.
func (r *menuPG) RecipesOf(ctx context.Context, id uint) ([]*entity.Recipe, error) {
	if err := r.mustExist(ctx, r.db, id); err != nil {
		return nil, err
	}
	var models []RecipeModel
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Ingredients").
		Joins("JOIN menus_recipes mr ON mr.recipe_id = recipes.id").
		Where("mr.menu_id = ?", id).Order("recipes.id").
		Find(&models).Error; err != nil {
		return nil, err
	}
	recipes := make([]*entity.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, recipeEntity(&models[i]))
	}
	return recipes, nil
}

// AttachRecipes adds the recipes to the menu's set. Every id is
// resolved first; one unknown id aborts the whole operation.
func (r *menuPG) AttachRecipes(ctx context.Context, id uint, recipeIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.mustExist(ctx, tx, id); err != nil {
			return err
		}
		if err := mustExistRecipes(ctx, tx, recipeIDs); err != nil {
			return err
		}
		for _, recipeID := range recipeIDs {
			if err := tx.Exec(
				"INSERT INTO menus_recipes (menu_id, recipe_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
				id, recipeID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DetachRecipes removes the recipes from the menu's set. Non-attached
// ids are no-ops, unknown ids abort.
func (r *menuPG) DetachRecipes(ctx context.Context, id uint, recipeIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.mustExist(ctx, tx, id); err != nil {
			return err
		}
		if err := mustExistRecipes(ctx, tx, recipeIDs); err != nil {
			return err
		}
		if len(recipeIDs) == 0 {
			return nil
		}
		return tx.Exec(
			"DELETE FROM menus_recipes WHERE menu_id = ? AND recipe_id IN ?",
			id, recipeIDs).Error
	})
}

// Delete detaches every recipe association and removes the menu in one
// transaction. Recipes survive.
func (r *menuPG) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.mustExist(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM menus_recipes WHERE menu_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&MenuModel{}, id).Error
	})
}

func (r *menuPG) mustExist(ctx context.Context, tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&MenuModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrMenuNotFound
	}
	return nil
}

// mustExistRecipes resolves every id, failing on the first unknown one.
func mustExistRecipes(ctx context.Context, tx *gorm.DB, ids []uint) error {
	for _, id := range ids {
		var count int64
		if err := tx.WithContext(ctx).Model(&RecipeModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrRecipeNotFound
		}
	}
	return nil
}
