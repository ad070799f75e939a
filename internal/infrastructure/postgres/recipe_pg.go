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

// recipePG is the PostgreSQL implementation of usecase.RecipeRepository.
type recipePG struct {
	db *gorm.DB
}

var _ usecase.RecipeRepository = (*recipePG)(nil)

// NewRecipeRepository creates a recipe repository on the given connection.
func NewRecipeRepository(db *gorm.DB) *recipePG {
	return &recipePG{db: db}
}

// Create inserts the recipe row and its ingredient associations in one
// transaction. The recipe must carry an author.
func (r *recipePG) Create(ctx context.Context, recipe *entity.Recipe) error {
	if recipe == nil {
		return errors.New("nil recipe")
	}
	author := recipe.Author()
	if author == nil || author.ID == 0 {
		return errors.New("recipe without a persisted author")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := RecipeModel{
			Name:            recipe.Name,
			Description:     recipe.Description,
			SecondsDuration: recipe.SecondsDuration,
			ProductsCost:    recipe.ProductsCost,
			Complexity:      string(recipe.Complexity),
			ImageKey:        recipe.ImageKey,
			CreatedAt:       recipe.CreatedAt,
			AuthorID:        author.ID,
		}
		if err := tx.Omit(clause.Associations).Create(&m).Error; err != nil {
			return err
		}
		for _, ingredient := range recipe.Ingredients() {
			if err := tx.Exec(
				"INSERT INTO recipes_ingredients (recipe_id, ingredient_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
				m.ID, ingredient.ID).Error; err != nil {
				return err
			}
		}
		recipe.ID = m.ID
		recipe.CreatedAt = m.CreatedAt
		return nil
	})
}

// Update writes the recipe's scalar fields.
func (r *recipePG) Update(ctx context.Context, recipe *entity.Recipe) error {
	if recipe == nil {
		return errors.New("nil recipe")
	}
	res := r.db.WithContext(ctx).Model(&RecipeModel{}).Where("id = ?", recipe.ID).Updates(map[string]any{
		"name":             recipe.Name,
		"description":      recipe.Description,
		"seconds_duration": recipe.SecondsDuration,
		"products_cost":    recipe.ProductsCost,
		"complexity":       string(recipe.Complexity),
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// FindByID retrieves a recipe with author and ingredients attached.
func (r *recipePG) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	var m RecipeModel
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Ingredients").
		Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRecipeNotFound
		}
		return nil, err
	}
	return recipeEntity(&m), nil
}

// FindAll lists every recipe with author and ingredients attached.
func (r *recipePG) FindAll(ctx context.Context) ([]*entity.Recipe, error) {
	var models []RecipeModel
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Ingredients").
		Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	recipes := make([]*entity.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, recipeEntity(&models[i]))
	}
	return recipes, nil
}

// ExistsByID reports whether a recipe with the id exists.
func (r *recipePG) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&RecipeModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateImageKey sets the stored image key without loading the aggregate.
func (r *recipePG) UpdateImageKey(ctx context.Context, id uint, key string) error {
	res := r.db.WithContext(ctx).Model(&RecipeModel{}).Where("id = ?", id).Update("image_key", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// MenusOf lists the menus the recipe appears on.
func (r *recipePG) MenusOf(ctx context.Context, id uint) ([]*entity.Menu, error) {
	if err := r.mustExist(ctx, r.db, id); err != nil {
		return nil, err
	}
	var models []MenuModel
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Joins("JOIN menus_recipes mr ON mr.menu_id = menus.id").
		Where("mr.recipe_id = ?", id).Order("menus.id").
		Find(&models).Error; err != nil {
		return nil, err
	}
	menus := make([]*entity.Menu, 0, len(models))
	for i := range models {
		menus = append(menus, menuEntity(&models[i]))
	}
	return menus, nil
}

// CommentsOf lists the comments on the recipe.
func (r *recipePG) CommentsOf(ctx context.Context, id uint) ([]*entity.Comment, error) {
	if err := r.mustExist(ctx, r.db, id); err != nil {
		return nil, err
	}
	var models []CommentModel
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("recipe_id = ?", id).Order("id").
		Find(&models).Error; err != nil {
		return nil, err
	}
	comments := make([]*entity.Comment, 0, len(models))
	for i := range models {
		comments = append(comments, commentEntity(&models[i]))
	}
	return comments, nil
}

// IngredientsOf lists the recipe's ingredient set.
func (r *recipePG) IngredientsOf(ctx context.Context, id uint) ([]*entity.Ingredient, error) {
	if err := r.mustExist(ctx, r.db, id); err != nil {
		return nil, err
	}
	var models []IngredientModel
	if err := r.db.WithContext(ctx).
		Joins("JOIN recipes_ingredients ri ON ri.ingredient_id = ingredients.id").
		Where("ri.recipe_id = ?", id).Order("ingredients.id").
		Find(&models).Error; err != nil {
		return nil, err
	}
	ingredients := make([]*entity.Ingredient, 0, len(models))
	for i := range models {
		ingredients = append(ingredients, ingredientEntity(&models[i]))
	}
	return ingredients, nil
}

// AttachIngredients adds the ingredients to the recipe's set. Every id
// is resolved first; one unknown id aborts the whole operation.
func (r *recipePG) AttachIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.mustExist(ctx, tx, id); err != nil {
			return err
		}
		if err := mustExistIngredients(ctx, tx, ingredientIDs); err != nil {
			return err
		}
		for _, ingredientID := range ingredientIDs {
			if err := tx.Exec(
				"INSERT INTO recipes_ingredients (recipe_id, ingredient_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
				id, ingredientID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// DetachIngredients removes the ingredients from the recipe's set.
// Non-attached ids are no-ops, unknown ids abort.
func (r *recipePG) DetachIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.mustExist(ctx, tx, id); err != nil {
			return err
		}
		if err := mustExistIngredients(ctx, tx, ingredientIDs); err != nil {
			return err
		}
		if len(ingredientIDs) == 0 {
			return nil
		}
		return tx.Exec(
			"DELETE FROM recipes_ingredients WHERE recipe_id = ? AND ingredient_id IN ?",
			id, ingredientIDs).Error
	})
}

// ReplaceIngredients swaps the whole ingredient set for the given ids.
func (r *recipePG) ReplaceIngredients(ctx context.Context, id uint, ingredientIDs []uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.mustExist(ctx, tx, id); err != nil {
			return err
		}
		if err := mustExistIngredients(ctx, tx, ingredientIDs); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipes_ingredients WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		for _, ingredientID := range ingredientIDs {
			if err := tx.Exec(
				"INSERT INTO recipes_ingredients (recipe_id, ingredient_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
				id, ingredientID).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// Delete removes the recipe, its comments and its menu and ingredient
// associations in one transaction. Menus and ingredients survive.
func (r *recipePG) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := r.mustExist(ctx, tx, id); err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM menus_recipes WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Exec("DELETE FROM recipes_ingredients WHERE recipe_id = ?", id).Error; err != nil {
			return err
		}
		if err := tx.Where("recipe_id = ?", id).Delete(&CommentModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&RecipeModel{}, id).Error
	})
}

func (r *recipePG) mustExist(ctx context.Context, tx *gorm.DB, id uint) error {
	var count int64
	if err := tx.WithContext(ctx).Model(&RecipeModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domain.ErrRecipeNotFound
	}
	return nil
}

// mustExistIngredients resolves every id, failing on the first unknown one.
func mustExistIngredients(ctx context.Context, tx *gorm.DB, ids []uint) error {
	for _, id := range ids {
		var count int64
		if err := tx.WithContext(ctx).Model(&IngredientModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return domain.ErrIngredientNotFound
		}
	}
	return nil
}
