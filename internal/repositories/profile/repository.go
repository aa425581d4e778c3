// Package profile provides the interface for save profile persistence
package profile

//go:generate mockgen -destination=mock/mock_repository.go -package=profilemock github.com/railforge/railforge/internal/repositories/profile Repository

import (
	"context"

	"github.com/railforge/railforge/internal/entities/game"
)

// Repository defines the interface for save profile persistence
type Repository interface {
	// Create creates a new profile
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a profile with the same ID exists
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a profile by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the profile doesn't exist
	// Returns errors.Internal for storage failures
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update overwrites an existing profile
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.NotFound if the profile doesn't exist
	// Returns errors.Internal for storage failures
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete deletes a profile by ID
	// Returns errors.InvalidArgument for empty IDs
	// Returns errors.NotFound if the profile doesn't exist
	// Returns errors.Internal for storage failures
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// ListByPlayerID retrieves all profiles of a player
	// Returns errors.InvalidArgument for empty player IDs
	// Returns errors.Internal for storage failures
	ListByPlayerID(ctx context.Context, input ListByPlayerIDInput) (*ListByPlayerIDOutput, error)
}

// CreateInput defines the input for creating a profile
type CreateInput struct {
	Profile *game.Profile
}

// CreateOutput defines the output for creating a profile
type CreateOutput struct {
	Profile *game.Profile
}

// GetInput defines the input for getting a profile
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a profile
type GetOutput struct {
	Profile *game.Profile
}

// UpdateInput defines the input for updating a profile
type UpdateInput struct {
	Profile *game.Profile
}

// UpdateOutput defines the output for updating a profile
type UpdateOutput struct {
	Profile *game.Profile
}

// DeleteInput defines the input for deleting a profile
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a profile
type DeleteOutput struct{}

// ListByPlayerIDInput defines the input for listing a player's profiles
type ListByPlayerIDInput struct {
	PlayerID string
}

// ListByPlayerIDOutput defines the output for listing a player's profiles
type ListByPlayerIDOutput struct {
	Profiles []*game.Profile
}
