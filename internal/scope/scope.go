// Package scope turns an authenticated identity into the visibility
// predicate every submission read/update/delete runs under.
package scope

import "github.com/wasimadildev/card-to-text-backend/internal/models"

// Identity is the authenticated caller: id + role, as placed in the
// request context by the auth middleware.
type Identity struct {
	UserID string
	Role   string
}

func (id Identity) IsAdmin() bool { return id.Role == models.RoleAdmin }

// Scope restricts which submissions an operation may touch. A zero
// UserID matches everything (the admin scope); otherwise only records
// whose userId equals UserID are visible.
type Scope struct {
	UserID string
}

// All is the unconstrained scope.
var All = Scope{}

func (s Scope) IsAll() bool { return s.UserID == "" }

// Matches reports whether a submission owned by ownerID falls inside s.
func (s Scope) Matches(ownerID string) bool {
	return s.IsAll() || s.UserID == ownerID
}

// Resolve computes the visibility scope for an identity: admins see
// every record, everyone else only their own.
func Resolve(id Identity) Scope {
	if id.IsAdmin() {
		return All
	}
	return Scope{UserID: id.UserID}
}

// ForUser is the scope covering a single user's records, regardless of
// caller role. Used by admin views that drill into one user.
func ForUser(userID string) Scope { return Scope{UserID: userID} }
