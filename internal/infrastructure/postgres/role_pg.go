package postgres

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
	"recipe_backend/internal/usecase"
)

// rolePG is the PostgreSQL implementation of usecase.RoleRepository.
type rolePG struct {
	db *gorm.DB
}

var _ usecase.RoleRepository = (*rolePG)(nil)

// NewRoleRepository creates a role repository on the given connection.
func NewRoleRepository(db *gorm.DB) *rolePG {
	return &rolePG{db: db}
}

// FindByName retrieves a role by its unique name.
func (r *rolePG) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	var m RoleModel
	if err := r.db.WithContext(ctx).Where("name = ?", name).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrRoleNotFound
		}
		return nil, err
	}
	return roleEntity(&m), nil
}
