// Package dto defines the request and response bodies of the HTTP API.
// Requests carry Gin binding tags for validation.
package dto

// ErrorResponse is the uniform error body.
type ErrorResponse struct {
	Error string `json:"error"`
}

// MessageResponse is the uniform confirmation body.
type MessageResponse struct {
	Message string `json:"message"`
}

// TokenResponse carries a signed JWT after sign-in.
type TokenResponse struct {
	Token string `json:"token"`
}

// IDListReq carries a list of entity ids for bulk association endpoints.
type IDListReq struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// ImageResponse carries the key assigned to an uploaded image.
type ImageResponse struct {
	Key string `json:"key"`
}
