package entity

// Role names a set of permissions. It sits on the inverse side of the
// User↔Role association; users attach and detach it.
type Role struct {
	ID   uint
	Name string

	users []*User
}

// Same reports whether two instances denote the same logical role.
func (r *Role) Same(o *Role) bool {
	if r == nil || o == nil {
		return false
	}
	return r == o || (r.ID != 0 && r.ID == o.ID)
}

// Users returns a copy of the users holding the role.
func (r *Role) Users() []*User {
	return append([]*User(nil), r.users...)
}
