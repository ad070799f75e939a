package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/platform/storage"
)

// UserRepository abstracts the persistence layer for users. Multi-step
// operations (Delete's cascade, Update's rename check) execute inside
// one transaction on the repository side.
type UserRepository interface {
	// Create persists a new user with its role associations and assigns
	// the id. It returns domain.ErrUsernameTaken on a username collision.
	Create(ctx context.Context, user *entity.User) error

	// Update persists the user's scalar fields. The uniqueness check for
	// a rename and the write happen under repeatable-read isolation, so
	// of two concurrent renames to the same name exactly one succeeds.
	Update(ctx context.Context, user *entity.User) error

	// FindByID retrieves a user with roles attached.
	FindByID(ctx context.Context, id uint) (*entity.User, error)

	// FindByUsername retrieves a user by unique username.
	FindByUsername(ctx context.Context, username string) (*entity.User, error)

	// FindAll lists every user.
	FindAll(ctx context.Context) ([]*entity.User, error)

	// ExistsByID reports whether a user with the id exists.
	ExistsByID(ctx context.Context, id uint) (bool, error)

	// ExistsByUsername reports whether the username is in use.
	ExistsByUsername(ctx context.Context, username string) (bool, error)

	// Delete removes the user and, in the same transaction, every
	// recipe, menu and comment it authored, including the dependents of
	// those recipes. Many-to-many associations are detached, never
	// followed.
	Delete(ctx context.Context, id uint) error

	// UpdateImageKey sets the stored image key without loading the
	// whole aggregate. An empty key clears the image.
	UpdateImageKey(ctx context.Context, id uint, key string) error

	// RecipesByAuthor lists the recipes authored by the user.
	RecipesByAuthor(ctx context.Context, userID uint) ([]*entity.Recipe, error)

	// MenusByAuthor lists the menus authored by the user.
	MenusByAuthor(ctx context.Context, userID uint) ([]*entity.Menu, error)
}

// UserUpdate carries a partial profile update. Nil fields stay untouched.
type UserUpdate struct {
	Username    *string
	Email       *string
	PhoneNumber *string
	Password    *string
}

// UserUsecase implements user profile management and its image handling.
type UserUsecase struct {
	users  UserRepository
	images imageStore
}

// NewUserUsecase creates a new UserUsecase.
func NewUserUsecase(users UserRepository, blobs storage.Storage, bucket string) *UserUsecase {
	return &UserUsecase{
		users:  users,
		images: imageStore{blobs: blobs, bucket: bucket, prefix: "user-images"},
	}
}

// FindAll lists every user.
func (u *UserUsecase) FindAll(ctx context.Context) ([]*entity.User, error) {
	return u.users.FindAll(ctx)
}

// FindByID retrieves one user.
func (u *UserUsecase) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	return u.users.FindByID(ctx, id)
}

// FindByUsername retrieves one user by username.
func (u *UserUsecase) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	return u.users.FindByUsername(ctx, username)
}

// Update applies a partial profile update. Only supplied fields change;
// a new password is hashed before it ever reaches the repository.
func (u *UserUsecase) Update(ctx context.Context, id uint, upd UserUpdate) (*entity.User, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if upd.Username != nil {
		user.Username = *upd.Username
	}
	if upd.Email != nil {
		user.Email = *upd.Email
	}
	if upd.PhoneNumber != nil {
		user.PhoneNumber = *upd.PhoneNumber
	}
	if upd.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*upd.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.Password = string(hashed)
	}

	if err := u.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes the user and everything it exclusively owns.
func (u *UserUsecase) Delete(ctx context.Context, id uint) error {
	return u.users.Delete(ctx, id)
}

// GetRecipes lists the recipes authored by the user.
func (u *UserUsecase) GetRecipes(ctx context.Context, id uint) ([]*entity.Recipe, error) {
	return u.users.RecipesByAuthor(ctx, id)
}

// GetMenus lists the menus authored by the user.
func (u *UserUsecase) GetMenus(ctx context.Context, id uint) ([]*entity.Menu, error) {
	return u.users.MenusByAuthor(ctx, id)
}

// AddImage stores an avatar under a fresh random key and records the
// key on the user. Keys are never reused.
func (u *UserUsecase) AddImage(ctx context.Context, id uint, data []byte) (string, error) {
	exists, err := u.users.ExistsByID(ctx, id)
	if err != nil {
		return "", err
	}
	if !exists {
		return "", domain.ErrUserNotFound
	}

	key := uuid.NewString()
	if err := u.images.put(ctx, id, key, data); err != nil {
		return "", err
	}
	if err := u.users.UpdateImageKey(ctx, id, key); err != nil {
		return "", err
	}
	return key, nil
}

// GetImage returns the stored avatar bytes.
func (u *UserUsecase) GetImage(ctx context.Context, id uint) ([]byte, error) {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user.ImageKey == "" {
		return nil, domain.ErrImageNotFound
	}
	return u.images.get(ctx, id, user.ImageKey)
}

// DeleteImage removes the stored avatar, if any.
func (u *UserUsecase) DeleteImage(ctx context.Context, id uint) error {
	user, err := u.users.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if user.ImageKey == "" {
		return nil
	}
	if err := u.images.remove(ctx, id, user.ImageKey); err != nil {
		return err
	}
	return u.users.UpdateImageKey(ctx, id, "")
}
