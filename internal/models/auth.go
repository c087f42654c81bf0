package models

import "github.com/supabase-community/gotrue-go/types"

// Scope distinguishes the access token cookie from the refresh one.
type Scope int

const (
	AccessScope  Scope = 0
	RefreshScope Scope = 1
)

// User is the signed-in identity as the handlers see it. Email doubles as
// the author name on incident reports.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

func UserFromTypesUser(user types.User) User {
	return User{
		ID:    user.ID.String(),
		Email: user.Email,
	}
}
