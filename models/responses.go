package models

// MessageResponse is the generic `{"message": "..."}` body returned by
// acknowledgement and error responses alike.
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse is returned by POST /login on success. It carries the bearer
// token alongside the public projection of the authenticated user.
type LoginResponse struct {
	Message string      `json:"message"`
	Token   string      `json:"token"`
	User    UserProfile `json:"user"`
}
