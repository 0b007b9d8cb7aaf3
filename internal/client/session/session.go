// Package session describes who is signed in on the client.
package session

// Identity is the signed-in user.
type Identity struct {
	UserID string
	Email  string
}

// Provider reports the current identity, or nil when nobody is signed in.
type Provider interface {
	CurrentUser() *Identity
}

// Static is a Provider with a fixed identity.
type Static struct {
	Identity *Identity
}

func (s Static) CurrentUser() *Identity { return s.Identity }
