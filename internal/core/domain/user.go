package domain

import "time"

// UserRole is the portal-wide role of a user, carried in the auth token and
// checked against the commission's current stage by the workflow engine.
type UserRole string

const (
	RoleRep        UserRole = "REP"
	RoleManager    UserRole = "MANAGER"
	RoleAccounting UserRole = "ACCOUNTING"
	RoleAdmin      UserRole = "ADMIN"
)

var validRoles = map[UserRole]bool{
	RoleRep:        true,
	RoleManager:    true,
	RoleAccounting: true,
	RoleAdmin:      true,
}

// IsValid returns true if the role is a known portal role.
func (r UserRole) IsValid() bool {
	return validRoles[r]
}

// User represents a portal user.
type User struct {
	UserID       string   `json:"userID"` // Primary Key (UUID)
	Username     string   `json:"username"`
	Name         string   `json:"name"`
	Role         UserRole `json:"role"`
	PasswordHash string   `json:"-"`
	AuditFields
	DeletedAt *time.Time `json:"deletedAt,omitempty"` // Used for soft delete
}

// Actor identifies who is invoking a workflow operation. It is always
// passed explicitly; the engine never reads identity from ambient state.
type Actor struct {
	UserID string   `json:"userID"`
	Name   string   `json:"name"`
	Role   UserRole `json:"role"`
}
