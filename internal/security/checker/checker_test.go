package checker

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
)

// mockRecipeFinder is a mock implementation of the recipeFinder interface.
type mockRecipeFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Recipe, error)
}

func (m *mockRecipeFinder) FindByID(ctx context.Context, id uint) (*entity.Recipe, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrRecipeNotFound
}

// mockUserFinder is a mock implementation of the userFinder interface.
type mockUserFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.User, error)
}

func (m *mockUserFinder) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrUserNotFound
}

// mockMenuFinder is a mock implementation of the menuFinder interface.
type mockMenuFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Menu, error)
}

func (m *mockMenuFinder) FindByID(ctx context.Context, id uint) (*entity.Menu, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrMenuNotFound
}

// mockCommentFinder is a mock implementation of the commentFinder interface.
type mockCommentFinder struct {
	FindByIDFunc func(ctx context.Context, id uint) (*entity.Comment, error)
}

func (m *mockCommentFinder) FindByID(ctx context.Context, id uint) (*entity.Comment, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, domain.ErrCommentNotFound
}

func recipeByAlice() *entity.Recipe {
	alice := &entity.User{ID: 1, Username: "alice"}
	recipe := &entity.Recipe{ID: 10, Name: "Soup"}
	alice.AddRecipe(recipe)
	return recipe
}

func TestRecipeChecker_IsAuthor(t *testing.T) {
	ctx := context.Background()

	checker := NewRecipeChecker(&mockRecipeFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Recipe, error) {
			if id == 10 {
				return recipeByAlice(), nil
			}
			return nil, domain.ErrRecipeNotFound
		},
	})

	t.Run("author matches", func(t *testing.T) {
		ok, err := checker.IsAuthor(ctx, 10, "alice")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("different user is denied", func(t *testing.T) {
		ok, err := checker.IsAuthor(ctx, 10, "bob")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("absent id fails closed", func(t *testing.T) {
		ok, err := checker.IsAuthor(ctx, 0, "alice")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("absent username fails closed", func(t *testing.T) {
		ok, err := checker.IsAuthor(ctx, 10, "")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown recipe signals not found", func(t *testing.T) {
		ok, err := checker.IsAuthor(ctx, 99, "alice")
		assert.ErrorIs(t, err, domain.ErrRecipeNotFound)
		assert.False(t, ok)
	})
}

func TestUserChecker_IsSelf(t *testing.T) {
	ctx := context.Background()

	checker := NewUserChecker(&mockUserFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			if id == 1 {
				return &entity.User{ID: 1, Username: "alice"}, nil
			}
			return nil, domain.ErrUserNotFound
		},
	})

	ok, err := checker.IsSelf(ctx, 1, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = checker.IsSelf(ctx, 1, "bob")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = checker.IsSelf(ctx, 2, "alice")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestMenuChecker_IsAuthor(t *testing.T) {
	ctx := context.Background()

	checker := NewMenuChecker(&mockMenuFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Menu, error) {
			if id == 5 {
				alice := &entity.User{ID: 1, Username: "alice"}
				menu := &entity.Menu{ID: 5, Name: "Dinner"}
				alice.AddMenu(menu)
				return menu, nil
			}
			return nil, domain.ErrMenuNotFound
		},
	})

	ok, err := checker.IsAuthor(ctx, 5, "alice")
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = checker.IsAuthor(ctx, 6, "alice")
	assert.ErrorIs(t, err, domain.ErrMenuNotFound)
}

func TestCommentChecker(t *testing.T) {
	ctx := context.Background()

	// Comment by bob on alice's recipe
	newComment := func() *entity.Comment {
		recipe := recipeByAlice()
		bob := &entity.User{ID: 2, Username: "bob"}
		comment := &entity.Comment{ID: 20, Text: "tasty"}
		bob.AddComment(comment)
		recipe.AddComment(comment)
		return comment
	}

	checker := NewCommentChecker(&mockCommentFinder{
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.Comment, error) {
			if id == 20 {
				return newComment(), nil
			}
			return nil, domain.ErrCommentNotFound
		},
	})

	t.Run("comment author may moderate", func(t *testing.T) {
		ok, err := checker.IsCommentOrRecipeAuthor(ctx, 20, "bob")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("recipe author may moderate", func(t *testing.T) {
		ok, err := checker.IsCommentOrRecipeAuthor(ctx, 20, "alice")
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("third party is denied", func(t *testing.T) {
		ok, err := checker.IsCommentOrRecipeAuthor(ctx, 20, "carol")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("IsAuthor only accepts the comment author", func(t *testing.T) {
		ok, err := checker.IsAuthor(ctx, 20, "bob")
		require.NoError(t, err)
		assert.True(t, ok)

		ok, err = checker.IsAuthor(ctx, 20, "alice")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("unknown comment signals not found", func(t *testing.T) {
		_, err := checker.IsCommentOrRecipeAuthor(ctx, 21, "bob")
		assert.ErrorIs(t, err, domain.ErrCommentNotFound)
	})

	t.Run("absent inputs fail closed", func(t *testing.T) {
		ok, err := checker.IsCommentOrRecipeAuthor(ctx, 0, "bob")
		require.NoError(t, err)
		assert.False(t, ok)

		ok, err = checker.IsCommentOrRecipeAuthor(ctx, 20, "")
		require.NoError(t, err)
		assert.False(t, ok)
	})
}
