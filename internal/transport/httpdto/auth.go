package httpdto

// RegisterRequest is used for POST /api/chat/register
type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginRequest is used for POST /api/chat/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// AuthResponse is returned after register and login
type AuthResponse struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}

// UserDTO is the user summary embedded in auth responses
type UserDTO struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}
