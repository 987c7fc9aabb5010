package staff

// Role is the access level carried by the identity token. The core trusts
// the authenticated staff id and role without re-verifying credentials;
// issuing tokens is the job of an external identity service.
type Role string

const (
	RoleStaff   Role = "staff"
	RoleManager Role = "manager"
	RoleAdmin   Role = "admin"
)

// CanManage reports whether the role may invoke manager-level operations
// (full attendance listing, income distribution).
func (r Role) CanManage() bool {
	return r == RoleManager || r == RoleAdmin
}

// IsValid reports whether the role is one of the known roles.
func (r Role) IsValid() bool {
	switch r {
	case RoleStaff, RoleManager, RoleAdmin:
		return true
	}
	return false
}
