package auth

import "context"

type AuthService interface {
	// Login verifies an employee code and PIN and issues an access token
	Login(ctx context.Context, req LoginRequest) (LoginResponse, error)
}
