package entity

import "time"

// Comment is a user's remark on a recipe. It is exclusively owned by
// its recipe and deleted together with it.
type Comment struct {
	ID        uint
	Text      string
	CreatedAt time.Time

	author *User
	recipe *Recipe
}

// Same reports whether two instances denote the same logical comment.
func (c *Comment) Same(o *Comment) bool {
	if c == nil || o == nil {
		return false
	}
	return c == o || (c.ID != 0 && c.ID == o.ID)
}

// Author returns the authoring user, or nil for a detached comment.
func (c *Comment) Author() *User {
	return c.author
}

// Recipe returns the commented recipe, or nil for a detached comment.
func (c *Comment) Recipe() *Recipe {
	return c.recipe
}
