package domain

import (
	"errors"
	"time"
	"unicode"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

var ErrWeakPassword = errors.New("password must contain at least one number, one uppercase letter, one lowercase letter, and one special character")

// User is an account holder. A User owns itself for authorization purposes.
type User struct {
	ID             string    `json:"id" bson:"_id,omitempty"`
	Name           string    `json:"name" bson:"name"`
	Email          string    `json:"email" bson:"email"`
	PasswordHash   string    `json:"-" bson:"password_hash"`
	Avatar         string    `json:"avatar,omitempty" bson:"avatar,omitempty"`
	Bio            string    `json:"bio,omitempty" bson:"bio,omitempty"`
	Skills         []string  `json:"skills" bson:"skills"`
	GithubUsername string    `json:"github_username,omitempty" bson:"github_username,omitempty"`
	Role           string    `json:"role" bson:"role"`
	CreatedAt      time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt      time.Time `json:"updated_at" bson:"updated_at"`

	Voidable `bson:",inline"`
}

// ValidRole reports whether role is one of the two recognised roles.
func ValidRole(role string) bool {
	return role == RoleUser || role == RoleAdmin
}

// ValidatePassword enforces the account password policy: at least 8
// characters with one digit, one lowercase letter, one uppercase letter and
// one character that is neither.
func ValidatePassword(password string) error {
	var digit, lower, upper, special bool
	for _, r := range password {
		switch {
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		default:
			special = true
		}
	}
	if len(password) < 8 || !digit || !lower || !upper || !special {
		return ErrWeakPassword
	}
	return nil
}
