package auth

import "context"

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
	// Me returns the profile of the authenticated user behind the token.
	Me(ctx context.Context, userID string) (UserResponse, error)
}
