package domain

// Role names carried in access tokens.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Principal is the authenticated caller as established by the request boundary.
type Principal struct {
	UserID string
	Role   string
}

// IsAdmin reports whether the principal may use catalog authoring operations.
func (p Principal) IsAdmin() bool {
	return p.Role == RoleAdmin
}
