package entity

// Slice-backed set helpers. Membership is logical identity (Same), so
// a hydrated instance and a freshly loaded one with the same id count
// as one element.

func containsUser(list []*User, u *User) bool {
	for _, e := range list {
		if e.Same(u) {
			return true
		}
	}
	return false
}

func removeUser(list []*User, u *User) []*User {
	out := list[:0]
	for _, e := range list {
		if !e.Same(u) {
			out = append(out, e)
		}
	}
	return out
}

func containsRole(list []*Role, r *Role) bool {
	for _, e := range list {
		if e.Same(r) {
			return true
		}
	}
	return false
}

func removeRole(list []*Role, r *Role) []*Role {
	out := list[:0]
	for _, e := range list {
		if !e.Same(r) {
			out = append(out, e)
		}
	}
	return out
}

func containsRecipe(list []*Recipe, r *Recipe) bool {
	for _, e := range list {
		if e.Same(r) {
			return true
		}
	}
	return false
}

func removeRecipe(list []*Recipe, r *Recipe) []*Recipe {
	out := list[:0]
	for _, e := range list {
		if !e.Same(r) {
			out = append(out, e)
		}
	}
	return out
}

func containsMenu(list []*Menu, m *Menu) bool {
	for _, e := range list {
		if e.Same(m) {
			return true
		}
	}
	return false
}

func removeMenu(list []*Menu, m *Menu) []*Menu {
	out := list[:0]
	for _, e := range list {
		if !e.Same(m) {
			out = append(out, e)
		}
	}
	return out
}

func containsIngredient(list []*Ingredient, i *Ingredient) bool {
	for _, e := range list {
		if e.Same(i) {
			return true
		}
	}
	return false
}

func removeIngredient(list []*Ingredient, i *Ingredient) []*Ingredient {
	out := list[:0]
	for _, e := range list {
		if !e.Same(i) {
			out = append(out, e)
		}
	}
	return out
}

func containsComment(list []*Comment, c *Comment) bool {
	for _, e := range list {
		if e.Same(c) {
			return true
		}
	}
	return false
}

func removeComment(list []*Comment, c *Comment) []*Comment {
	out := list[:0]
	for _, e := range list {
		if !e.Same(c) {
			out = append(out, e)
		}
	}
	return out
}
