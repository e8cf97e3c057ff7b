// Package policy is the authorization gate. It is a pure function of the
// authenticated identity, the operation's allowed roles, and resource
// ownership; it touches no storage.
package policy

import (
	"pitchhub/internal/apperrors"
	"pitchhub/internal/models"
)

// Identity is the authenticated caller, as decoded from a bearer token.
type Identity struct {
	UserID uint
	Role   models.Role
}

// IsAdmin reports whether the caller holds the admin role.
func (id Identity) IsAdmin() bool { return id.Role == models.RoleAdmin }

// RequireRole denies callers whose role is outside the allowed set.
func RequireRole(id Identity, allowed ...models.Role) error {
	for _, r := range allowed {
		if id.Role == r {
			return nil
		}
	}
	return apperrors.Newf(apperrors.ErrForbidden, "access denied for role %q", id.Role)
}

// RequireOwner denies callers who neither own the resource nor are admin.
// The error is distinct from not-found: the resource exists, the caller may
// not touch it.
func RequireOwner(id Identity, ownerID uint) error {
	if id.IsAdmin() || id.UserID == ownerID {
		return nil
	}
	return apperrors.New(apperrors.ErrForbidden, "access denied: not the resource owner")
}
