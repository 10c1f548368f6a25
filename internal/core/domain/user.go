package domain

import "time"

const (
	RoleAdministrator = "administrator"
	RoleUser          = "user"
)

// User models a registered forum account. PasswordHash is the bcrypt digest of
// the credential; the plaintext never leaves the request that carried it.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ValidRole reports whether role is one of the two known roles.
func ValidRole(role string) bool {
	return role == RoleAdministrator || role == RoleUser
}
