package access_test

import (
	"EasyToLearn/internal/models"
	"EasyToLearn/internal/service/access"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsAuthenticated(t *testing.T) {
	assert.False(t, access.IsAuthenticated(nil))
	assert.True(t, access.IsAuthenticated(&models.User{ID: "1", Role: models.ClientRole}))
}

func TestHasAnyRoleIsMembershipNotHierarchy(t *testing.T) {
	admin := &models.User{ID: "1", Role: models.AdminRole}
	instructor := &models.User{ID: "2", Role: models.InstructorRole}

	assert.True(t, access.HasAnyRole(admin, models.AdminRole))
	assert.True(t, access.HasAnyRole(instructor, models.AdminRole, models.InstructorRole))

	// admin does not implicitly satisfy an instructor-only check
	assert.False(t, access.HasAnyRole(admin, models.InstructorRole))
	assert.False(t, access.HasAnyRole(instructor, models.AdminRole))
}

func TestHasAnyRoleGuestSentinel(t *testing.T) {
	assert.True(t, access.HasAnyRole(nil, models.GuestRole))
	assert.False(t, access.HasAnyRole(nil, models.AdminRole, models.InstructorRole, models.ClientRole))

	// a signed-in user is not a guest
	user := &models.User{ID: "1", Role: models.ClientRole}
	assert.False(t, access.HasAnyRole(user, models.GuestRole))
}

func TestDecideGuestAllowed(t *testing.T) {
	d := access.Decide(nil, []string{models.GuestRole}, "/blog")
	assert.Equal(t, access.Allow, d.Verdict)
}

func TestDecideUnauthenticatedRedirectsToLogin(t *testing.T) {
	d := access.Decide(nil, []string{models.AdminRole}, "/dashboard/quiz-admin")
	assert.Equal(t, access.RedirectLogin, d.Verdict)
	assert.Equal(t, "/dashboard/quiz-admin", d.ReturnPath)
}

func TestDecideMissingRoleRedirectsToDefault(t *testing.T) {
	user := &models.User{ID: "1", Role: models.ClientRole}
	d := access.Decide(user, []string{models.AdminRole}, "/dashboard/quiz-admin")
	assert.Equal(t, access.RedirectDefault, d.Verdict)
}

func TestDecideAllows(t *testing.T) {
	user := &models.User{ID: "1", Role: models.ClientRole}

	d := access.Decide(user, []string{models.AdminRole, models.InstructorRole, models.ClientRole}, "/dashboard")
	assert.Equal(t, access.Allow, d.Verdict)

	// an empty role set only requires authentication
	d = access.Decide(user, nil, "/dashboard")
	assert.Equal(t, access.Allow, d.Verdict)
}
