package postgres

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
)

func TestMenuPG_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	chef := seedUser(t, db, "chef1")
	soup := seedRecipe(t, db, chef, "Soup")

	menu := seedMenu(t, db, chef, "Dinner", soup)
	assert.NotZero(t, menu.ID, "ID is not set")

	found, err := repo.FindByID(context.Background(), menu.ID)
	require.NoError(t, err, "failed to reload menu")
	assert.Equal(t, "Dinner", found.Name, "name does not match")
	require.NotNil(t, found.Author(), "author should be attached")
	assert.Equal(t, chef.ID, found.Author().ID, "author does not match")
	require.Len(t, found.Recipes(), 1, "recipe should be attached")
	assert.Equal(t, soup.ID, found.Recipes()[0].ID, "recipe does not match")

	found, err = repo.FindByID(context.Background(), 999)
	assert.Nil(t, found, "menu should be nil")
	assert.ErrorIs(t, err, domain.ErrMenuNotFound, "should return ErrMenuNotFound")
}

func TestMenuPG_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	chef := seedUser(t, db, "chef1")
	menu := seedMenu(t, db, chef, "Dinner")

	menu.Name = "Supper"
	err := repo.Update(context.Background(), menu)
	require.NoError(t, err, "failed to update menu")

	found, err := repo.FindByID(context.Background(), menu.ID)
	require.NoError(t, err, "failed to reload menu")
	assert.Equal(t, "Supper", found.Name, "name does not match")

	err = repo.Update(context.Background(), &entity.Menu{ID: 999, Name: "Ghost"})
	assert.ErrorIs(t, err, domain.ErrMenuNotFound, "unknown menu should fail")
}

func TestMenuPG_RecipeAssociations(t *testing.T) {
	t.Run("attach is idempotent", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewMenuRepository(db)
		chef := seedUser(t, db, "chef1")
		soup := seedRecipe(t, db, chef, "Soup")
		toast := seedRecipe(t, db, chef, "Toast")
		menu := seedMenu(t, db, chef, "Dinner", soup)

		err := repo.AttachRecipes(context.Background(), menu.ID, []uint{soup.ID, toast.ID})
		require.NoError(t, err, "failed to attach recipes")

		recipes, err := repo.RecipesOf(context.Background(), menu.ID)
		require.NoError(t, err, "failed to list recipes")
		assert.Len(t, recipes, 2, "re-attaching must not duplicate the link")
	})

	t.Run("one unknown id aborts the whole attach", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewMenuRepository(db)
		chef := seedUser(t, db, "chef1")
		soup := seedRecipe(t, db, chef, "Soup")
		menu := seedMenu(t, db, chef, "Dinner")

		err := repo.AttachRecipes(context.Background(), menu.ID, []uint{soup.ID, 999})
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound, "should report the unknown recipe")

		recipes, err := repo.RecipesOf(context.Background(), menu.ID)
		require.NoError(t, err, "failed to list recipes")
		assert.Empty(t, recipes, "nothing should have been attached")
	})

	t.Run("detach tolerates non-attached ids", func(t *testing.T) {
		db := setupTestDB(t)
		repo := NewMenuRepository(db)
		chef := seedUser(t, db, "chef1")
		soup := seedRecipe(t, db, chef, "Soup")
		toast := seedRecipe(t, db, chef, "Toast")
		menu := seedMenu(t, db, chef, "Dinner", soup)

		err := repo.DetachRecipes(context.Background(), menu.ID, []uint{soup.ID, toast.ID})
		require.NoError(t, err, "failed to detach recipes")

		recipes, err := repo.RecipesOf(context.Background(), menu.ID)
		require.NoError(t, err, "failed to list recipes")
		assert.Empty(t, recipes, "all recipes should be detached")
	})
}

// TestMenuPG_Delete verifies that removing a menu detaches its recipes
// without deleting them.
func TestMenuPG_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewMenuRepository(db)
	chef := seedUser(t, db, "chef1")
	soup := seedRecipe(t, db, chef, "Soup")
	menu := seedMenu(t, db, chef, "Dinner", soup)

	err := repo.Delete(context.Background(), menu.ID)
	require.NoError(t, err, "failed to delete menu")

	_, err = repo.FindByID(context.Background(), menu.ID)
	assert.ErrorIs(t, err, domain.ErrMenuNotFound, "menu should be gone")

	_, err = NewRecipeRepository(db).FindByID(context.Background(), soup.ID)
	assert.NoError(t, err, "recipe should survive")

	assert.Zero(t, countRows(t, db, "menus_recipes"), "recipe links should be gone")

	err = repo.Delete(context.Background(), menu.ID)
	assert.ErrorIs(t, err, domain.ErrMenuNotFound, "second delete should report the missing menu")
}
