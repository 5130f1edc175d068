package entity

import "time"

type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleModerator UserRole = "moderator"
	RoleAdmin     UserRole = "admin"
)

// roleLevels orders the hierarchy so that every permission check is a single
// comparison instead of per-endpoint boolean composition.
var roleLevels = map[UserRole]int{
	RoleUser:      1,
	RoleModerator: 2,
	RoleAdmin:     3,
}

func (r UserRole) Valid() bool {
	_, ok := roleLevels[r]
	return ok
}

func (r UserRole) AtLeast(other UserRole) bool {
	return roleLevels[r] >= roleLevels[other]
}

type User struct {
	ID               string    `json:"-"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	FirstName        string    `json:"first_name"`
	LastName         string    `json:"last_name"`
	Bio              string    `json:"bio"`
	Role             UserRole  `json:"role"`
	IsStaff          bool      `json:"-"`
	IsSuperuser      bool      `json:"-"`
	ConfirmationCode string    `json:"-"`
	CreatedAt        time.Time `json:"-"`
	UpdatedAt        time.Time `json:"-"`
}

// IsAdmin covers the staff flag and superusers as well as the admin role.
func (u *User) IsAdmin() bool {
	return u.IsStaff || u.IsSuperuser || u.Role.AtLeast(RoleAdmin)
}

// IsModerator reports whether the user may manage other users' content.
func (u *User) IsModerator() bool {
	return u.IsAdmin() || u.Role.AtLeast(RoleModerator)
}
