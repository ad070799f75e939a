package dto

import (
	"time"

	"recipe_backend/internal/domain/entity"
)

// UserUpdateReq is the partial-update body for a user. Absent fields
// stay untouched.
type UserUpdateReq struct {
	Username    *string `json:"username" binding:"omitempty,min=3,max=64"`
	Email       *string `json:"email" binding:"omitempty,email"`
	PhoneNumber *string `json:"phone_number" binding:"omitempty,max=32"`
	Password    *string `json:"password" binding:"omitempty,min=8"`
}

// UserSummary identifies a user inside another resource's body.
type UserSummary struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
}

// UserResponse is the full user body. The password hash never leaves
// the server.
type UserResponse struct {
	ID          uint      `json:"id"`
	Username    string    `json:"username"`
	Email       string    `json:"email"`
	PhoneNumber string    `json:"phone_number,omitempty"`
	ImageKey    string    `json:"image_key,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	Roles       []string  `json:"roles"`
}

// NewUserSummary maps a user entity to its summary form.
func NewUserSummary(u *entity.User) *UserSummary {
	if u == nil {
		return nil
	}
	return &UserSummary{ID: u.ID, Username: u.Username}
}

// NewUserResponse maps a user entity to its response form.
func NewUserResponse(u *entity.User) UserResponse {
	return UserResponse{
		ID:          u.ID,
		Username:    u.Username,
		Email:       u.Email,
		PhoneNumber: u.PhoneNumber,
		ImageKey:    u.ImageKey,
		CreatedAt:   u.CreatedAt,
		Roles:       u.RoleNames(),
	}
}

// NewUserResponses maps a slice of user entities.
func NewUserResponses(users []*entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, NewUserResponse(u))
	}
	return out
}
