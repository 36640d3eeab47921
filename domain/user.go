package domain

import (
	"context"
	"time"
)

const (
	RoleEducator = "educator"
	RoleMarketer = "marketer"
	RoleStudent  = "student"
)

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"` // educator | marketer | student
	CreatedAt time.Time `json:"created_at"`

	// Bcrypt hash. Persisted with the user record, stripped by Public()
	// before the record leaves the service layer.
	PasswordHash string `json:"password_hash,omitempty"`
}

// Public returns a copy safe to hand to the delivery layer.
func (u User) Public() User {
	u.PasswordHash = ""
	return u
}

type UserRepository interface {
	List(ctx context.Context) ([]User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	// GetByEmail matches case-insensitively.
	GetByEmail(ctx context.Context, email string) (*User, error)
	// Create fails with ErrUserExists when the email is already taken,
	// checked under the collection lock.
	Create(ctx context.Context, user *User) error
}
