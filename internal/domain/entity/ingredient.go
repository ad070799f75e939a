package entity

import "time"

// Ingredient is a named cooking ingredient. It sits on the inverse side
// of the Recipe↔Ingredient association; recipes attach and detach it.
type Ingredient struct {
	ID        uint
	Name      string
	ImageKey  string
	CreatedAt time.Time

	recipes []*Recipe
}

// Same reports whether two instances denote the same logical ingredient.
func (i *Ingredient) Same(o *Ingredient) bool {
	if i == nil || o == nil {
		return false
	}
	return i == o || (i.ID != 0 && i.ID == o.ID)
}

// Recipes returns a copy of the recipes using the ingredient.
func (i *Ingredient) Recipes() []*Recipe {
	return append([]*Recipe(nil), i.recipes...)
}
