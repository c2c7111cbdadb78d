package models

// User is the identity of the dealership employee currently signed in.
// It is persisted alongside the bearer token and shown in the TUI header.
type User struct {
	// Username is the unique login name.
	Username string `json:"username"`

	// Role is the backend-assigned role (e.g. "ADMIN"). Authorization is
	// enforced server-side; the client only displays the role.
	Role string `json:"role"`
}
