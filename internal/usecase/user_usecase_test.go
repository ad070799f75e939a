package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
)

func strPtr(s string) *string { return &s }

func TestUserUsecase_Update(t *testing.T) {
	ctx := context.Background()

	stored := func() *entity.User {
		return &entity.User{
			ID:          7,
			Username:    "chef1",
			Email:       "chef1@example.com",
			PhoneNumber: "111",
			Password:    "old-hash",
		}
	}

	t.Run("only supplied fields change", func(t *testing.T) {
		var updated *entity.User
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return stored(), nil
			},
			UpdateFunc: func(ctx context.Context, user *entity.User) error {
				updated = user
				return nil
			},
		}
		uc := NewUserUsecase(users, newMemStorage(), "test-bucket")

		user, err := uc.Update(ctx, 7, UserUpdate{Email: strPtr("new@example.com")})
		require.NoError(t, err)

		require.NotNil(t, updated)
		assert.Equal(t, "new@example.com", user.Email)
		assert.Equal(t, "chef1", user.Username)
		assert.Equal(t, "111", user.PhoneNumber)
		assert.Equal(t, "old-hash", user.Password)
	})

	t.Run("new password is hashed", func(t *testing.T) {
		users := &mockUserRepository{
			FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
				return stored(), nil
			},
		}
		uc := NewUserUsecase(users, newMemStorage(), "test-bucket")

		user, err := uc.Update(ctx, 7, UserUpdate{Password: strPtr("newsecret123")})
		require.NoError(t, err)

		assert.NotEqual(t, "newsecret123", user.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.Password), []byte("newsecret123")))
	})

	t.Run("unknown user", func(t *testing.T) {
		uc := NewUserUsecase(&mockUserRepository{}, newMemStorage(), "test-bucket")

		_, err := uc.Update(ctx, 99, UserUpdate{Email: strPtr("x@example.com")})
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestUserUsecase_ImageLifecycle(t *testing.T) {
	ctx := context.Background()
	blobs := newMemStorage()

	imageKey := ""
	users := &mockUserRepository{
		ExistsByIDFunc: func(ctx context.Context, id uint) (bool, error) {
			return id == 7, nil
		},
		FindByIDFunc: func(ctx context.Context, id uint) (*entity.User, error) {
			if id != 7 {
				return nil, domain.ErrUserNotFound
			}
			return &entity.User{ID: 7, Username: "chef1", ImageKey: imageKey}, nil
		},
		UpdateImageKeyFunc: func(ctx context.Context, id uint, key string) error {
			imageKey = key
			return nil
		},
	}
	uc := NewUserUsecase(users, blobs, "test-bucket")

	t.Run("upload records a fresh key", func(t *testing.T) {
		key, err := uc.AddImage(ctx, 7, []byte("avatar-bytes"))
		require.NoError(t, err)
		assert.NotEmpty(t, key)
		assert.Equal(t, key, imageKey)
		assert.Equal(t, 1, blobs.len())
	})

	t.Run("get returns the stored bytes", func(t *testing.T) {
		data, err := uc.GetImage(ctx, 7)
		require.NoError(t, err)
		assert.Equal(t, []byte("avatar-bytes"), data)
	})

	t.Run("upload for an unknown user", func(t *testing.T) {
		_, err := uc.AddImage(ctx, 99, []byte("x"))
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})

	t.Run("delete clears blob and key", func(t *testing.T) {
		require.NoError(t, uc.DeleteImage(ctx, 7))
		assert.Empty(t, imageKey)
		assert.Equal(t, 0, blobs.len())

		_, err := uc.GetImage(ctx, 7)
		assert.ErrorIs(t, err, domain.ErrImageNotFound)
	})

	t.Run("delete without an image is a no-op", func(t *testing.T) {
		assert.NoError(t, uc.DeleteImage(ctx, 7))
	})
}
