package usecase

import "reviewdb/internal/entity"

// Actor is the authenticated principal as carried by the access token.
type Actor struct {
	ID   string
	Role entity.UserRole
}

// CanEdit reports whether the actor may modify content owned by ownerID:
// the owner themselves, or anyone at moderator level and above.
func (a Actor) CanEdit(ownerID string) bool {
	return a.ID == ownerID || a.Role.AtLeast(entity.RoleModerator)
}
