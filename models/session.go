package models

// Session is the persisted client credential state: the bearer token issued
// by the backend on login and the identity it belongs to. Both fields are
// stored and cleared as a unit.
type Session struct {
	// Token is the opaque bearer string sent in the Authorization header.
	Token string `json:"token"`

	// User is the signed-in identity.
	User User `json:"user"`
}

// LoggedIn reports whether the session carries a usable token.
func (s Session) LoggedIn() bool {
	return s.Token != ""
}
