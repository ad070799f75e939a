package postgres

import (
	"context"
	"database/sql"
	"errors"

	"gorm.io/gorm"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/usecase"
)

// userPG is the PostgreSQL implementation of usecase.UserRepository.
type userPG struct {
	db *gorm.DB
}

var _ usecase.UserRepository = (*userPG)(nil)

// NewUserRepository creates a user repository on the given connection.
func NewUserRepository(db *gorm.DB) *userPG {
	return &userPG{db: db}
}

// renameTxOptions returns the isolation for the uniqueness-check-then-
// write transaction. sqlite (used in tests) is serializable already and
// rejects explicit levels, so the option is postgres-only.
func (r *userPG) renameTxOptions() []*sql.TxOptions {
	if r.db.Dialector.Name() == "postgres" {
		return []*sql.TxOptions{{Isolation: sql.LevelRepeatableRead}}
	}
	return nil
}

// Create inserts the user and its role associations in one transaction.
func (r *userPG) Create(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("nil user")
	}
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		m := UserModel{
			Username:    u.Username,
			Email:       u.Email,
			Password:    u.Password,
			PhoneNumber: u.PhoneNumber,
			ImageKey:    u.ImageKey,
			CreatedAt:   u.CreatedAt,
		}
		if err := tx.Create(&m).Error; err != nil {
			if isUniqueViolation(err) {
				return domain.ErrUsernameTaken
			}
			return err
		}
		for _, role := range u.Roles() {
			if err := tx.Exec(
				"INSERT INTO users_roles (user_id, role_id) VALUES (?, ?) ON CONFLICT DO NOTHING",
				m.ID, role.ID).Error; err != nil {
				return err
			}
		}
		u.ID = m.ID
		u.CreatedAt = m.CreatedAt
		return nil
	})
}

// Update writes the user's scalar fields. The uniqueness check and the
// write share one repeatable-read transaction, and the unique index
// backs it up: of two concurrent renames to the same username, exactly
// one commits.
func (r *userPG) Update(ctx context.Context, u *entity.User) error {
	if u == nil {
		return errors.New("nil user")
	}
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&UserModel{}).
			Where("username = ? AND id <> ?", u.Username, u.ID).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrUsernameTaken
		}

		res := tx.Model(&UserModel{}).Where("id = ?", u.ID).Updates(map[string]any{
			"username":     u.Username,
			"email":        u.Email,
			"password":     u.Password,
			"phone_number": u.PhoneNumber,
		})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrUserNotFound
		}
		return nil
	}, r.renameTxOptions()...)
	if err != nil && isUniqueViolation(err) {
		return domain.ErrUsernameTaken
	}
	return err
}

// FindByID retrieves a user with roles attached.
func (r *userPG) FindByID(ctx context.Context, id uint) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Preload("Roles").Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userEntity(&m), nil
}

// FindByUsername retrieves a user by unique username.
func (r *userPG) FindByUsername(ctx context.Context, username string) (*entity.User, error) {
	var m UserModel
	if err := r.db.WithContext(ctx).Preload("Roles").Where("username = ?", username).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return userEntity(&m), nil
}

// FindAll lists every user with roles attached.
func (r *userPG) FindAll(ctx context.Context) ([]*entity.User, error) {
	var models []UserModel
	if err := r.db.WithContext(ctx).Preload("Roles").Order("id").Find(&models).Error; err != nil {
		return nil, err
	}
	users := make([]*entity.User, 0, len(models))
	for i := range models {
		users = append(users, userEntity(&models[i]))
	}
	return users, nil
}

// ExistsByID reports whether a user with the id exists.
func (r *userPG) ExistsByID(ctx context.Context, id uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// ExistsByUsername reports whether the username is in use.
func (r *userPG) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&UserModel{}).Where("username = ?", username).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateImageKey sets the stored image key without loading the aggregate.
func (r *userPG) UpdateImageKey(ctx context.Context, id uint, key string) error {
	res := r.db.WithContext(ctx).Model(&UserModel{}).Where("id = ?", id).Update("image_key", key)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrUserNotFound
	}
	return nil
}

// RecipesByAuthor lists the recipes authored by the user.
func (r *userPG) RecipesByAuthor(ctx context.Context, userID uint) ([]*entity.Recipe, error) {
	exists, err := r.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	var models []RecipeModel
	if err := r.db.WithContext(ctx).
		Preload("Author").Preload("Ingredients").
		Where("author_id = ?", userID).Order("id").
		Find(&models).Error; err != nil {
		return nil, err
	}
	recipes := make([]*entity.Recipe, 0, len(models))
	for i := range models {
		recipes = append(recipes, recipeEntity(&models[i]))
	}
	return recipes, nil
}

// MenusByAuthor lists the menus authored by the user.
func (r *userPG) MenusByAuthor(ctx context.Context, userID uint) ([]*entity.Menu, error) {
	exists, err := r.ExistsByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, domain.ErrUserNotFound
	}

	var models []MenuModel
	if err := r.db.WithContext(ctx).
		Preload("Author").
		Where("author_id = ?", userID).Order("id").
		Find(&models).Error; err != nil {
		return nil, err
	}
	menus := make([]*entity.Menu, 0, len(models))
	for i := range models {
		menus = append(menus, menuEntity(&models[i]))
	}
	return menus, nil
}

// Delete removes the user and everything it exclusively owns: authored
// recipes (with their comments and associations), authored menus and
// authored comments. Entities only linked through many-to-many
// associations are detached, never deleted. One transaction bounds the
// whole cascade; any failure rolls everything back.
func (r *userPG) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m UserModel
		if err := tx.Where("id = ?", id).First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domain.ErrUserNotFound
			}
			return err
		}

		// Authored recipes, with their own cascade
		var recipeIDs []uint
		if err := tx.Model(&RecipeModel{}).Where("author_id = ?", id).Pluck("id", &recipeIDs).Error; err != nil {
			return err
		}
		if len(recipeIDs) > 0 {
			if err := tx.Exec("DELETE FROM menus_recipes WHERE recipe_id IN ?", recipeIDs).Error; err != nil {
				return err
			}
			if err := tx.Exec("DELETE FROM recipes_ingredients WHERE recipe_id IN ?", recipeIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("recipe_id IN ?", recipeIDs).Delete(&CommentModel{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", recipeIDs).Delete(&RecipeModel{}).Error; err != nil {
				return err
			}
		}

		// Authored menus; their recipes survive
		var menuIDs []uint
		if err := tx.Model(&MenuModel{}).Where("author_id = ?", id).Pluck("id", &menuIDs).Error; err != nil {
			return err
		}
		if len(menuIDs) > 0 {
			if err := tx.Exec("DELETE FROM menus_recipes WHERE menu_id IN ?", menuIDs).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", menuIDs).Delete(&MenuModel{}).Error; err != nil {
				return err
			}
		}

		// Comments the user left on other recipes
		if err := tx.Where("author_id = ?", id).Delete(&CommentModel{}).Error; err != nil {
			return err
		}

		// Role associations, then the user itself
		if err := tx.Exec("DELETE FROM users_roles WHERE user_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&UserModel{}, id).Error
	})
}
