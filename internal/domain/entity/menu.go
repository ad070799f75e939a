package entity

// Menu is a named collection of recipes authored by one user. The link
// to recipes is a non-owning many-to-many association: removing a menu
// never removes its recipes.
type Menu struct {
	ID       uint
	Name     string
	ImageKey string

	author  *User
	recipes []*Recipe
}

// Same reports whether two instances denote the same logical menu.
func (m *Menu) Same(o *Menu) bool {
	if m == nil || o == nil {
		return false
	}
	return m == o || (m.ID != 0 && m.ID == o.ID)
}

// Author returns the authoring user, or nil for a detached menu.
func (m *Menu) Author() *User {
	return m.author
}

// Recipes returns a copy of the menu's recipe set.
func (m *Menu) Recipes() []*Recipe {
	return append([]*Recipe(nil), m.recipes...)
}

// AddRecipe attaches the recipe, updating both sides. Attaching an
// already-attached recipe is a no-op.
func (m *Menu) AddRecipe(r *Recipe) {
	if r == nil || containsRecipe(m.recipes, r) {
		return
	}
	m.recipes = append(m.recipes, r)
	if !containsMenu(r.menus, m) {
		r.menus = append(r.menus, m)
	}
}

// RemoveRecipe detaches the recipe, updating both sides.
func (m *Menu) RemoveRecipe(r *Recipe) {
	if r == nil {
		return
	}
	m.recipes = removeRecipe(m.recipes, r)
	r.menus = removeMenu(r.menus, m)
}
