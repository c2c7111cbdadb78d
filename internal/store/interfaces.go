// Package store persists the client's credential state between runs.
//
// The only storage shipped today is a small JSON file holding two keyed
// entries (the opaque bearer token and the serialized user identity) which
// are always written and cleared as a unit.
package store

import "github.com/MKhiriev/dealer-desk/models"

//go:generate mockgen -source=interfaces.go -destination=../mock/session_store_mock.go -package=mock

// SessionStore is the persisted credential state of the client.
//
// Reads are pure: Token and User never fail loudly. Malformed stored user
// data is treated as an absent identity rather than an error, so a corrupted
// file degrades to an anonymous session instead of blocking startup.
type SessionStore interface {
	// Save persists token and user as a unit, replacing any previous state.
	Save(session models.Session) error

	// Token returns the stored bearer token, or "" when not logged in.
	Token() string

	// User returns the stored identity, or nil when absent or unreadable.
	User() *models.User

	// IsLoggedIn reports whether a token is present.
	IsLoggedIn() bool

	// Clear removes both persisted fields.
	Clear() error
}
