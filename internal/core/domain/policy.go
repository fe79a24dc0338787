package domain

// Action is a mutation kind subject to the authorization policy.
type Action string

const (
	ActionUpdate Action = "update"
	ActionVoid   Action = "void"
)

// Principal is the authenticated identity behind a request, derived from a
// verified token plus the stored user record. It is never persisted itself.
type Principal struct {
	ID   string
	Role string
}

// Authorize decides whether principal may perform action on an entity owned
// by ownerID. Updates are owner-only; voiding is allowed for the owner or an
// admin. The decision uses only data already loaded — no queries.
//
// Denials map to HTTP 401 at the boundary, not 403; 403 is reserved for
// failed token verification.
func Authorize(principal Principal, ownerID string, action Action) error {
	if principal.ID != "" && principal.ID == ownerID {
		return nil
	}
	if action == ActionVoid && principal.Role == RoleAdmin {
		return nil
	}
	return ErrUnauthorized
}
