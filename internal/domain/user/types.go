package user

type Role string

const (
	RoleMember Role = "member"
	RoleVendor Role = "vendor"
	RoleAdmin  Role = "admin"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleMember, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// Level orders roles for gate checks: member < vendor < admin.
func (r Role) Level() int {
	switch r {
	case RoleMember:
		return 1
	case RoleVendor:
		return 2
	case RoleAdmin:
		return 3
	default:
		return 0
	}
}

func (r Role) AtLeast(min Role) bool {
	return r.Level() >= min.Level()
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
