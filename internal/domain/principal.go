package domain

// Roles recognized by role-gated routes.
const (
	RoleAdmin     = "admin"
	RoleOrganizer = "organizer"
	RoleUser      = "user"
)

// Principal is the authenticated identity attached to a request by the
// auth middleware. It is produced by an external token verifier; this
// service never issues tokens or stores credentials.
type Principal struct {
	UID   string `json:"uid"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// TokenVerifier validates a bearer token and returns the principal it
// carries. Implementations treat the token issuer as a black box.
type TokenVerifier interface {
	Verify(token string) (*Principal, error)
}
