package dto

// SignupReq is the request body for the /signup endpoint.
type SignupReq struct {
	Username    string `json:"username" binding:"required,min=3,max=64"`
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=8"`
	PhoneNumber string `json:"phone_number" binding:"omitempty,max=32"`
}

// LoginReq is the request body for the /signin endpoint.
type LoginReq struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
