package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"recipe_backend/internal/domain/entity"
)

// setupTestDB prepares an in-memory SQLite database with the full
// schema and the built-in roles.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err, "failed to initialize test database")

	// Every pooled connection to :memory: gets its own database, so pin
	// the pool to one connection; concurrent transactions queue on it.
	sqlDB, err := db.DB()
	require.NoError(t, err, "failed to access the connection pool")
	sqlDB.SetMaxOpenConns(1)

	err = db.AutoMigrate(Models()...)
	require.NoError(t, err, "failed to migrate tables")

	err = SeedRoles(db)
	require.NoError(t, err, "failed to seed roles")

	return db
}

// seedableUser builds an unsaved user entity.
func seedableUser(username string) *entity.User {
	return &entity.User{
		Username:  username,
		Email:     username + "@example.com",
		Password:  "hashed_password",
		CreatedAt: time.Now(),
	}
}

// seedUser creates a persisted user carrying ROLE_USER.
func seedUser(t *testing.T, db *gorm.DB, username string) *entity.User {
	t.Helper()

	roles := NewRoleRepository(db)
	role, err := roles.FindByName(context.Background(), "ROLE_USER")
	require.NoError(t, err, "failed to load ROLE_USER")

	user := seedableUser(username)
	user.AddRole(role)
	err = NewUserRepository(db).Create(context.Background(), user)
	require.NoError(t, err, "failed to create test user")
	return user
}

// seedRecipe creates a persisted recipe authored by the given user.
func seedRecipe(t *testing.T, db *gorm.DB, author *entity.User, name string, ingredients ...*entity.Ingredient) *entity.Recipe {
	t.Helper()

	recipe := &entity.Recipe{
		Name:       name,
		Complexity: entity.ComplexityEasy,
		CreatedAt:  time.Now(),
	}
	author.AddRecipe(recipe)
	for _, i := range ingredients {
		recipe.AddIngredient(i)
	}
	err := NewRecipeRepository(db).Create(context.Background(), recipe)
	require.NoError(t, err, "failed to create test recipe")
	return recipe
}

// seedIngredient creates a persisted ingredient.
func seedIngredient(t *testing.T, db *gorm.DB, name string) *entity.Ingredient {
	t.Helper()

	ingredient := &entity.Ingredient{Name: name, CreatedAt: time.Now()}
	err := NewIngredientRepository(db).Create(context.Background(), ingredient)
	require.NoError(t, err, "failed to create test ingredient")
	return ingredient
}

// seedMenu creates a persisted menu authored by the given user.
func seedMenu(t *testing.T, db *gorm.DB, author *entity.User, name string, recipes ...*entity.Recipe) *entity.Menu {
	t.Helper()

	menu := &entity.Menu{Name: name}
	author.AddMenu(menu)
	for _, r := range recipes {
		menu.AddRecipe(r)
	}
	err := NewMenuRepository(db).Create(context.Background(), menu)
	require.NoError(t, err, "failed to create test menu")
	return menu
}

// seedComment creates a persisted comment by author on recipe.
func seedComment(t *testing.T, db *gorm.DB, author *entity.User, recipe *entity.Recipe, text string) *entity.Comment {
	t.Helper()

	comment := &entity.Comment{Text: text, CreatedAt: time.Now()}
	author.AddComment(comment)
	recipe.AddComment(comment)
	err := NewCommentRepository(db).Create(context.Background(), comment)
	require.NoError(t, err, "failed to create test comment")
	return comment
}

// countRows counts the rows of an arbitrary table, join tables included.
func countRows(t *testing.T, db *gorm.DB, table string) int64 {
	t.Helper()

	var count int64
	err := db.Table(table).Count(&count).Error
	require.NoError(t, err, "failed to count rows of %s", table)
	return count
}
