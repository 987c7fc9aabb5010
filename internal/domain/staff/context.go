package staff

import (
	"context"

	"github.com/go-chi/jwtauth/v5"
)

// Identity is the authenticated caller attached to every request context.
type Identity struct {
	StaffID string
	Role    Role
}

// FromContext extracts the authenticated staff identity from the JWT claims
// placed in the context by the jwtauth verifier.
func FromContext(ctx context.Context) (Identity, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}

	staffID, ok := claims["staff_id"].(string)
	if !ok || staffID == "" {
		return Identity{}, ErrStaffClaimMissing
	}

	roleStr, _ := claims["role"].(string)
	role := Role(roleStr)
	if !role.IsValid() {
		role = RoleStaff
	}

	return Identity{StaffID: staffID, Role: role}, nil
}
