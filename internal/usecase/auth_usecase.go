// Package usecase implements the application services that combine the
// entity graph, the repositories and the platform collaborators. All
// multi-step mutations are delegated to the repositories, which bound
// them in one transaction.
package usecase

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"recipe_backend/internal/domain"
	"recipe_backend/internal/domain/entity"
)

// DefaultRole is attached to every new user at signup. It must exist in
// the store; a missing role is a deployment fault, not a user error.
const DefaultRole = "ROLE_USER"

// RoleRepository abstracts the persistence layer for roles.
// Following Go convention, interfaces are defined by the consumer
// (usecase) rather than the provider (infrastructure).
type RoleRepository interface {
	// FindByName retrieves a role by its unique name. It returns
	// domain.ErrRoleNotFound if the role does not exist.
	FindByName(ctx context.Context, name string) (*entity.Role, error)
}

// TokenProvider issues signed authentication tokens.
type TokenProvider interface {
	// Generate creates a signed token for the given principal.
	Generate(userID uint, username string, roles []string) (string, error)
}

// AuthUsecase implements registration and credential verification.
type AuthUsecase struct {
	users  UserRepository
	roles  RoleRepository
	tokens TokenProvider
}

// NewAuthUsecase creates a new AuthUsecase.
func NewAuthUsecase(users UserRepository, roles RoleRepository, tokens TokenProvider) *AuthUsecase {
	return &AuthUsecase{users: users, roles: roles, tokens: tokens}
}

// SignUp registers a new user with a hashed password and the default
// role attached. It fails with domain.ErrUsernameTaken when the username
// is in use and domain.ErrRoleNotFound when the role seed is missing.
func (u *AuthUsecase) SignUp(ctx context.Context, user *entity.User, password string) (*entity.User, error) {
	taken, err := u.users.ExistsByUsername(ctx, user.Username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrUsernameTaken
	}

	role, err := u.roles.FindByName(ctx, DefaultRole)
	if err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user.Password = string(hashed)
	user.AddRole(role)
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// SignIn verifies the presented credentials and issues a token. A
// missing user surfaces as domain.ErrUserNotFound, a wrong password as
// domain.ErrInvalidCredentials.
func (u *AuthUsecase) SignIn(ctx context.Context, username, password string) (string, error) {
	user, err := u.users.FindByUsername(ctx, username)
	if err != nil {
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", domain.ErrInvalidCredentials
	}

	token, err := u.tokens.Generate(user.ID, user.Username, user.RoleNames())
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
