package models

const (
	AdminRole      = "admin"
	InstructorRole = "instructor"
	ClientRole     = "user"

	// GuestRole is the sentinel matched by unauthenticated visitors.
	// It is never stored on a user record.
	GuestRole = "guest"
)

type User struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Role     string `json:"role"`
	Name     string `json:"name"`
	Provider string `json:"provider,omitempty"`
}

// Redacted returns a copy safe to persist in the session slot or hand to
// delivery code. The password hash stays in the users collection only.
func (u User) Redacted() User {
	u.Password = ""
	return u
}
