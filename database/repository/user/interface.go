package userRepo

import "fixora/models"

// UserRepository defines read access to customer accounts.
type UserRepository interface {
	// FindByID retrieves a user with the verification-flag projection applied.
	// Returns (nil, nil) when no user matches.
	FindByID(id string) (*models.User, error)
}
