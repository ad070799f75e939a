// Package entity defines the in-memory object graph of the application:
// users, roles, recipes, menus, ingredients and comments, together with
// the paired mutation methods that keep both sides of every association
// consistent. Association collections are unexported; the methods below
// are the only way to change them, and the accessors hand out copies.
package entity

import "time"

// User represents a registered account. A user exclusively owns the
// recipes, menus and comments it authored and is linked to roles through
// a non-owning many-to-many association.
type User struct {
	// ID is the unique identifier, assigned on first save.
	ID uint

	// Username is globally unique.
	Username string

	// Email is the user's contact address.
	Email string

	// Password holds the bcrypt hash, never the plain text.
	Password string

	// PhoneNumber is an optional contact number.
	PhoneNumber string

	// ImageKey references the avatar in blob storage; empty means no image.
	ImageKey string

	// CreatedAt is the creation timestamp.
	CreatedAt time.Time

	recipes  []*Recipe
	menus    []*Menu
	comments []*Comment
	roles    []*Role
}

// Same reports whether two instances denote the same logical user.
// Identity is the assigned id only; an unsaved user equals nothing.
func (u *User) Same(o *User) bool {
	if u == nil || o == nil {
		return false
	}
	return u == o || (u.ID != 0 && u.ID == o.ID)
}

// Recipes returns a copy of the recipes authored by the user.
func (u *User) Recipes() []*Recipe {
	return append([]*Recipe(nil), u.recipes...)
}

// Menus returns a copy of the menus authored by the user.
func (u *User) Menus() []*Menu {
	return append([]*Menu(nil), u.menus...)
}

// Comments returns a copy of the comments authored by the user.
func (u *User) Comments() []*Comment {
	return append([]*Comment(nil), u.comments...)
}

// Roles returns a copy of the roles attached to the user.
func (u *User) Roles() []*Role {
	return append([]*Role(nil), u.roles...)
}

// RoleNames returns the names of the attached roles.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.roles))
	for _, r := range u.roles {
		names = append(names, r.Name)
	}
	return names
}

// HasRole reports whether a role with the given name is attached.
func (u *User) HasRole(name string) bool {
	for _, r := range u.roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// AddRecipe records the user as the recipe's author. Adding a recipe
// that is already owned is a no-op.
func (u *User) AddRecipe(r *Recipe) {
	if r == nil || containsRecipe(u.recipes, r) {
		return
	}
	u.recipes = append(u.recipes, r)
	r.author = u
}

// RemoveRecipe detaches the recipe from the user and clears its author.
func (u *User) RemoveRecipe(r *Recipe) {
	if r == nil {
		return
	}
	u.recipes = removeRecipe(u.recipes, r)
	if r.author.Same(u) {
		r.author = nil
	}
}

// AddMenu records the user as the menu's author.
func (u *User) AddMenu(m *Menu) {
	if m == nil || containsMenu(u.menus, m) {
		return
	}
	u.menus = append(u.menus, m)
	m.author = u
}

// RemoveMenu detaches the menu from the user and clears its author.
func (u *User) RemoveMenu(m *Menu) {
	if m == nil {
		return
	}
	u.menus = removeMenu(u.menus, m)
	if m.author.Same(u) {
		m.author = nil
	}
}

// AddComment records the user as the comment's author.
func (u *User) AddComment(c *Comment) {
	if c == nil || containsComment(u.comments, c) {
		return
	}
	u.comments = append(u.comments, c)
	c.author = u
}

// RemoveComment detaches the comment from the user and clears its author.
func (u *User) RemoveComment(c *Comment) {
	if c == nil {
		return
	}
	u.comments = removeComment(u.comments, c)
	if c.author.Same(u) {
		c.author = nil
	}
}

// AddRole attaches the role, updating both sides of the association.
func (u *User) AddRole(r *Role) {
	if r == nil || containsRole(u.roles, r) {
		return
	}
	u.roles = append(u.roles, r)
	if !containsUser(r.users, u) {
		r.users = append(r.users, u)
	}
}

// RemoveRole removes the role, updating both sides of the association.
func (u *User) RemoveRole(r *Role) {
	if r == nil {
		return
	}
	u.roles = removeRole(u.roles, r)
	r.users = removeUser(r.users, u)
}
