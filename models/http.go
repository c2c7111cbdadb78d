package models

// LoginRequest is the JSON body of POST /api/auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the JSON body returned by a successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// APIError mirrors the backend's error body shape. Message is surfaced to
// the user verbatim where the flow allows it (e.g. the login screen).
type APIError struct {
	Message string `json:"message"`
}
