package access

import "EasyToLearn/internal/models"

// IsAuthenticated reports whether a session user is present.
func IsAuthenticated(user *models.User) bool {
	return user != nil
}

// HasAnyRole is a plain membership test of the user's role against the
// allowed set. Signed-out users match only the guest sentinel; there is no
// role hierarchy, so admin does not satisfy an instructor-only check.
func HasAnyRole(user *models.User, roles ...string) bool {
	role := models.GuestRole
	if user != nil {
		role = user.Role
	}
	for _, r := range roles {
		if r == role {
			return true
		}
	}
	return false
}
