// Package checker implements the ownership predicates evaluated by the
// request-dispatch layer before a mutating operation runs. Every
// predicate is a pure read: it fails closed (false, nil) when the
// resource id or the principal username is absent, and signals the
// resource's typed not-found error when the id does not resolve: a
// missing resource is a routing-level client error, not a silent denial.
package checker

import (
	"context"

	"recipe_backend/internal/domain/entity"
)

// userFinder is the read-side user lookup the checkers depend on.
type userFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// recipeFinder is the read-side recipe lookup, hydrating the author.
type recipeFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.Recipe, error)
}

// menuFinder is the read-side menu lookup, hydrating the author.
type menuFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.Menu, error)
}

// commentFinder is the read-side comment lookup, hydrating the comment
// author and the parent recipe's author.
type commentFinder interface {
	FindByID(ctx context.Context, id uint) (*entity.Comment, error)
}

// UserChecker answers whether the principal is the account itself.
type UserChecker struct {
	users userFinder
}

// NewUserChecker creates a UserChecker.
func NewUserChecker(users userFinder) *UserChecker {
	return &UserChecker{users: users}
}

// IsSelf reports whether the username belongs to the user with the id.
func (c *UserChecker) IsSelf(ctx context.Context, id uint, username string) (bool, error) {
	if id == 0 || username == "" {
		return false, nil
	}
	user, err := c.users.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	return user.Username == username, nil
}

// RecipeChecker answers whether the principal authored a recipe.
type RecipeChecker struct {
	recipes recipeFinder
}

// NewRecipeChecker creates a RecipeChecker.
func NewRecipeChecker(recipes recipeFinder) *RecipeChecker {
	return &RecipeChecker{recipes: recipes}
}

// IsAuthor reports whether the username authored the recipe with the id.
func (c *RecipeChecker) IsAuthor(ctx context.Context, id uint, username string) (bool, error) {
	if id == 0 || username == "" {
		return false, nil
	}
	recipe, err := c.recipes.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	author := recipe.Author()
	return author != nil && author.Username == username, nil
}

// MenuChecker answers whether the principal authored a menu.
type MenuChecker struct {
	menus menuFinder
}

// NewMenuChecker creates a MenuChecker.
func NewMenuChecker(menus menuFinder) *MenuChecker {
	return &MenuChecker{menus: menus}
}

// IsAuthor reports whether the username authored the menu with the id.
func (c *MenuChecker) IsAuthor(ctx context.Context, id uint, username string) (bool, error) {
	if id == 0 || username == "" {
		return false, nil
	}
	menu, err := c.menus.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	author := menu.Author()
	return author != nil && author.Username == username, nil
}

// CommentChecker answers whether the principal may moderate a comment.
type CommentChecker struct {
	comments commentFinder
}

// NewCommentChecker creates a CommentChecker.
func NewCommentChecker(comments commentFinder) *CommentChecker {
	return &CommentChecker{comments: comments}
}

// IsAuthor reports whether the username authored the comment itself.
func (c *CommentChecker) IsAuthor(ctx context.Context, id uint, username string) (bool, error) {
	if id == 0 || username == "" {
		return false, nil
	}
	comment, err := c.comments.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	author := comment.Author()
	return author != nil && author.Username == username, nil
}

// IsCommentOrRecipeAuthor reports whether the username authored either
// the comment or its parent recipe. Recipe authors may moderate the
// comments on their recipes.
func (c *CommentChecker) IsCommentOrRecipeAuthor(ctx context.Context, id uint, username string) (bool, error) {
	if id == 0 || username == "" {
		return false, nil
	}
	comment, err := c.comments.FindByID(ctx, id)
	if err != nil {
		return false, err
	}
	if author := comment.Author(); author != nil && author.Username == username {
		return true, nil
	}
	if recipe := comment.Recipe(); recipe != nil {
		if author := recipe.Author(); author != nil && author.Username == username {
			return true, nil
		}
	}
	return false, nil
}
