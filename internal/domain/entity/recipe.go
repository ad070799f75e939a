package entity

import "time"

// Recipe is a cooking recipe authored by one user. It exclusively owns
// its comments and is linked to menus and ingredients through non-owning
// many-to-many associations.
type Recipe struct {
	ID              uint
	Name            string
	Description     string
	SecondsDuration int64
	ProductsCost    int64
	Complexity      Complexity
	ImageKey        string
	CreatedAt       time.Time

	author      *User
	comments    []*Comment
	menus       []*Menu
	ingredients []*Ingredient
}

// Same reports whether two instances denote the same logical recipe.
func (r *Recipe) Same(o *Recipe) bool {
	if r == nil || o == nil {
		return false
	}
	return r == o || (r.ID != 0 && r.ID == o.ID)
}

// Author returns the authoring user, or nil for a detached recipe.
func (r *Recipe) Author() *User {
	return r.author
}

// Comments returns a copy of the comments on the recipe.
func (r *Recipe) Comments() []*Comment {
	return append([]*Comment(nil), r.comments...)
}

// Menus returns a copy of the menus the recipe appears on.
func (r *Recipe) Menus() []*Menu {
	return append([]*Menu(nil), r.menus...)
}

// Ingredients returns a copy of the recipe's ingredient set.
func (r *Recipe) Ingredients() []*Ingredient {
	return append([]*Ingredient(nil), r.ingredients...)
}

// AddComment attaches a comment to the recipe and points it back here.
func (r *Recipe) AddComment(c *Comment) {
	if c == nil || containsComment(r.comments, c) {
		return
	}
	r.comments = append(r.comments, c)
	c.recipe = r
}

// RemoveComment detaches the comment and clears its back-reference.
func (r *Recipe) RemoveComment(c *Comment) {
	if c == nil {
		return
	}
	r.comments = removeComment(r.comments, c)
	if c.recipe.Same(r) {
		c.recipe = nil
	}
}

// AddIngredient attaches the ingredient, updating both sides. Attaching
// an already-attached ingredient is a no-op.
func (r *Recipe) AddIngredient(i *Ingredient) {
	if i == nil || containsIngredient(r.ingredients, i) {
		return
	}
	r.ingredients = append(r.ingredients, i)
	if !containsRecipe(i.recipes, r) {
		i.recipes = append(i.recipes, r)
	}
}

// RemoveIngredient detaches the ingredient, updating both sides.
func (r *Recipe) RemoveIngredient(i *Ingredient) {
	if i == nil {
		return
	}
	r.ingredients = removeIngredient(r.ingredients, i)
	i.recipes = removeRecipe(i.recipes, r)
}

// ReplaceIngredients detaches every current ingredient and attaches the
// given ones in order. Duplicates in the input collapse into one entry.
func (r *Recipe) ReplaceIngredients(ingredients []*Ingredient) {
	for _, i := range r.ingredients {
		i.recipes = removeRecipe(i.recipes, r)
	}
	r.ingredients = nil
	for _, i := range ingredients {
		r.AddIngredient(i)
	}
}
