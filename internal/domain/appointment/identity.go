package appointment

const RoleAdmin = "admin"

// Identity is the authenticated caller, passed explicitly into every
// workflow that needs one.
type Identity struct {
	UserID string
	Email  string
	Role   string
}

func (i Identity) IsZero() bool {
	return i.UserID == ""
}

func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
