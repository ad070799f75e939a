package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
)

func TestAuthUsecase_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("hashes the password and attaches the default role", func(t *testing.T) {
		var created *entity.User
		users := &mockUserRepository{
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				created = user
				user.ID = 7
				return nil
			},
		}
		roles := &mockRoleRepository{
			FindByNameFunc: func(ctx context.Context, name string) (*entity.Role, error) {
				assert.Equal(t, DefaultRole, name)
				return &entity.Role{ID: 1, Name: name}, nil
			},
		}
		uc := NewAuthUsecase(users, roles, &mockTokenProvider{})

		user, err := uc.SignUp(ctx, &entity.User{Username: "chef1", Email: "chef1@example.com"}, "s3cretpass")
		require.NoError(t, err)

		assert.Equal(t, uint(7), user.ID)
		assert.Same(t, created, user)
		assert.NotEqual(t, "s3cretpass", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("s3cretpass")))
		assert.Equal(t, []string{DefaultRole}, user.RoleNames())
		assert.False(t, user.CreatedAt.IsZero())
	})

	t.Run("taken username", func(t *testing.T) {
		users := &mockUserRepository{
			ExistsByUsernameFunc: func(ctx context.Context, username string) (bool, error) {
				return true, nil
			},
			CreateFunc: func(ctx context.Context, user *entity.User) error {
				t.Fatal("Create should not be called")
				return nil
			},
		}
		uc := NewAuthUsecase(users, &mockRoleRepository{}, &mockTokenProvider{})

		_, err := uc.SignUp(ctx, &entity.User{Username: "chef1"}, "s3cretpass")
		assert.ErrorIs(t, err, domain.ErrUsernameTaken)
	})

	t.Run("missing role seed", func(t *testing.T) {
		roles := &mockRoleRepository{
			FindByNameFunc: func(ctx context.Context, name string) (*entity.Role, error) {
				return nil, domain.ErrRoleNotFound
			},
		}
		uc := NewAuthUsecase(&mockUserRepository{}, roles, &mockTokenProvider{})

		_, err := uc.SignUp(ctx, &entity.User{Username: "chef1"}, "s3cretpass")
		assert.ErrorIs(t, err, domain.ErrRoleNotFound)
	})
}

func TestAuthUsecase_SignIn(t *testing.T) {
	ctx := context.Background()

	hashed, err := bcrypt.GenerateFromPassword([]byte("s3cretpass"), bcrypt.MinCost)
	require.NoError(t, err)

	stored := func() *entity.User {
		u := &entity.User{ID: 7, Username: "chef1", Password: string(hashed)}
		u.AddRole(&entity.Role{ID: 1, Name: "ROLE_USER"})
		u.AddRole(&entity.Role{ID: 2, Name: "ROLE_ADMIN"})
		return u
	}

	t.Run("issues a token carrying the role names", func(t *testing.T) {
		users := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return stored(), nil
			},
		}
		tokens := &mockTokenProvider{
			GenerateFunc: func(userID uint, username string, roleNames []string) (string, error) {
				assert.Equal(t, uint(7), userID)
				assert.Equal(t, "chef1", username)
				assert.Equal(t, []string{"ROLE_USER", "ROLE_ADMIN"}, roleNames)
				return "signed-token", nil
			},
		}
		uc := NewAuthUsecase(users, &mockRoleRepository{}, tokens)

		token, err := uc.SignIn(ctx, "chef1", "s3cretpass")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", token)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return stored(), nil
			},
		}
		uc := NewAuthUsecase(users, &mockRoleRepository{}, &mockTokenProvider{})

		_, err := uc.SignIn(ctx, "chef1", "wrongpass")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := NewAuthUsecase(&mockUserRepository{}, &mockRoleRepository{}, &mockTokenProvider{})

		_, err := uc.SignIn(ctx, "nobody", "s3cretpass")
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("token generation failure surfaces", func(t *testing.T) {
		users := &mockUserRepository{
			FindByUsernameFunc: func(ctx context.Context, username string) (*entity.User, error) {
				return stored(), nil
			},
		}
		tokens := &mockTokenProvider{
			GenerateFunc: func(userID uint, username string, roleNames []string) (string, error) {
				return "", errors.New("signing failed")
			},
		}
		uc := NewAuthUsecase(users, &mockRoleRepository{}, tokens)

		_, err := uc.SignIn(ctx, "chef1", "s3cretpass")
		assert.ErrorContains(t, err, "signing failed")
	})
}
