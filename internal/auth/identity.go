// Package auth holds the request identity model and the primitives used to
// authenticate it: HS256 bearer tokens and bcrypt password hashes.
package auth

// Kind separates the two identity spaces. Platform users and admin accounts
// are stored in different tables and never share ids.
type Kind string

const (
	KindUser  Kind = "user"
	KindAdmin Kind = "admin"
)

type Identity struct {
	ID    string
	Email string
	Role  string
	Kind  Kind
}

func (i Identity) HasRole(role string) bool {
	return i.Role == role
}

// DevIdentity is attached to every request when authentication is bypassed.
var DevIdentity = Identity{ID: "dev-user", Role: "admin", Kind: KindAdmin}
