package repository

import authdomain "lawdesk-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(user *authdomain.User) error

	// FindByEmail finds a user by normalized (lowercase) email, nil if absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID finds a user by ID, nil if absent
	FindByID(id string) (*authdomain.User, error)

	// Update saves changes to an existing user
	Update(user *authdomain.User) error
}
