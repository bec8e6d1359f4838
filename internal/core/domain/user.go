package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models an account holder. PasswordHash is never serialized.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name,omitempty"`
	DisplayName  string    `json:"display_name,omitempty"`
	PasswordHash string    `json:"-"`
	ProfilePic   string    `json:"profile_pic,omitempty"`
	Role         string    `json:"role"`
	IsActive     bool      `json:"is_active"`
	SignupDate   time.Time `json:"signup_date"`
	LastSession  time.Time `json:"last_session,omitempty"`
}
