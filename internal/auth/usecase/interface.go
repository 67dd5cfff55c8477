package usecase

import (
	"context"

	authdomain "lawdesk-backend/internal/auth/domain"
	authdto "lawdesk-backend/internal/auth/dto"
)

// AuthUsecase defines the authentication business logic
type AuthUsecase interface {
	// Signup creates a user from name/email/password and fails on duplicate email
	Signup(req *authdto.SignupRequest) (*authdomain.User, error)

	// Login verifies credentials; unknown email and wrong password are indistinguishable
	Login(req *authdto.LoginRequest) (*authdomain.User, error)

	// GetUser loads a user by ID
	GetUser(id string) (*authdomain.User, error)

	// IssueSession signs a session token for the user
	IssueSession(userID string) (string, error)

	// VerifySession returns the user ID embedded in a valid token
	VerifySession(token string) (string, error)

	// GoogleAuthURL builds the provider authorization URL bound to the CSRF state
	GoogleAuthURL(state string) (string, error)

	// CompleteGoogleLogin exchanges the authorization code, fetches the
	// profile and finds or creates the matching user
	CompleteGoogleLogin(ctx context.Context, code string) (*authdomain.User, error)
}
