// Package domain defines the domain-level errors shared across the application.
package domain

import "errors"

// Sentinel errors for domain operations. Repository adapters translate
// driver-level failures into these, and handlers translate them into
// HTTP statuses.
var (
	// ErrUserNotFound is returned when no user matches the given id or username.
	ErrUserNotFound = errors.New("user not found")

	// ErrRecipeNotFound is returned when no recipe matches the given id.
	ErrRecipeNotFound = errors.New("recipe not found")

	// ErrMenuNotFound is returned when no menu matches the given id.
	ErrMenuNotFound = errors.New("menu not found")

	// ErrIngredientNotFound is returned when no ingredient matches the given id.
	ErrIngredientNotFound = errors.New("ingredient not found")

	// ErrCommentNotFound is returned when no comment matches the given id.
	ErrCommentNotFound = errors.New("comment not found")

	// ErrRoleNotFound is returned when a role is missing from the store.
	// Hitting this during signup means the role seed did not run.
	ErrRoleNotFound = errors.New("role not found")

	// ErrImageNotFound is returned when an entity has no stored image key
	// or the blob behind the key is gone.
	ErrImageNotFound = errors.New("image not found")

	// ErrUsernameTaken is returned on create or rename when the username
	// is already in use by another user.
	ErrUsernameTaken = errors.New("username already in use")

	// ErrInvalidCredentials is returned when the password does not match
	// the stored hash during sign-in.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrImageUpload is returned when writing an image to blob storage fails.
	ErrImageUpload = errors.New("image upload failed")
)
