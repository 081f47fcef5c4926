package domain

import "time"

// UserRole enumerates supported account roles.
type UserRole string

const (
	UserRoleOrganization UserRole = "organization"
	UserRoleSupporter    UserRole = "supporter"
)

// ValidRole reports whether the value is a known role.
func ValidRole(r UserRole) bool {
	return r == UserRoleOrganization || r == UserRoleSupporter
}

// User represents a registered account. The role is assigned at
// registration and never changes afterwards.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         UserRole
	CreatedAt    time.Time
}

// IsOrganization reports whether the user may manage campaigns.
func (u User) IsOrganization() bool {
	return u.Role == UserRoleOrganization
}

// IsSupporter reports whether the user may make donations.
func (u User) IsSupporter() bool {
	return u.Role == UserRoleSupporter
}

// UserSummary carries the public identity fields joined into donation views.
type UserSummary struct {
	ID    string
	Name  string
	Email string
}

// Summary returns the public projection of the user.
func (u User) Summary() UserSummary {
	return UserSummary{ID: u.ID, Name: u.Name, Email: u.Email}
}
