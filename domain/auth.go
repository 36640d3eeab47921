// domain/auth.go
package domain

import (
	"context"

	"learnsphere/utils"
)

type AuthUseCase interface {
	GetAccessTokenManager() *utils.JWTManager
	Register(ctx context.Context, email, password, name, role string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	Me(ctx context.Context, userID string) (*User, error)
}

// AuthResult carries everything the client needs after login/register:
// the signed token, the public user record, and the role-specific landing
// route the frontend navigates to.
type AuthResult struct {
	Token    string `json:"token"`
	User     User   `json:"user"`
	Redirect string `json:"redirect"`
}
