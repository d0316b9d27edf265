package access

import "EasyToLearn/internal/models"

type Verdict int

const (
	Allow Verdict = iota
	// RedirectLogin sends the visitor to the login view, preserving the
	// path they were after.
	RedirectLogin
	// RedirectDefault sends an authenticated user without the required role
	// to the default page.
	RedirectDefault
)

type Decision struct {
	Verdict Verdict
	// ReturnPath is set on RedirectLogin so the login view can send the
	// visitor back where they were headed.
	ReturnPath string
}

// Decide applies the route-gate rules in order: an unauthenticated visitor is
// allowed only where guest is listed, otherwise bounced to login; an
// authenticated user missing a required role goes to the default page;
// everyone else passes.
func Decide(user *models.User, allowedRoles []string, path string) Decision {
	if !IsAuthenticated(user) {
		if HasAnyRole(nil, allowedRoles...) {
			return Decision{Verdict: Allow}
		}
		return Decision{Verdict: RedirectLogin, ReturnPath: path}
	}
	if len(allowedRoles) > 0 && !HasAnyRole(user, allowedRoles...) {
		return Decision{Verdict: RedirectDefault}
	}
	return Decision{Verdict: Allow}
}
