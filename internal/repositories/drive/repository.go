// Package drive provides the interface for drive persistence
package drive

//go:generate mockgen -destination=mock/mock_repository.go -package=drivemock github.com/KirkDiggler/drive-api/internal/repositories/drive Repository

import (
	"context"

	"github.com/KirkDiggler/drive-api/internal/entities/drive"
)

// Repository defines the interface for drive persistence
type Repository interface {
	// Create stores a new drive
	// Returns errors.InvalidArgument for a nil piece or empty ID
	// Returns errors.AlreadyExists if the ID is taken
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a drive by ID
	// Returns errors.NotFound if no drive exists
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// Update replaces a stored drive
	// Returns errors.NotFound if the drive does not exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a drive
	// Returns errors.NotFound if the drive does not exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// List returns one page of drives, newest first
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListAll returns every stored drive, newest first
	ListAll(ctx context.Context, input ListAllInput) (*ListAllOutput, error)
}

// CreateInput defines the input for creating a drive
type CreateInput struct {
	Piece *drive.Piece
}

// CreateOutput defines the output for creating a drive
type CreateOutput struct {
	Piece *drive.Piece
}

// GetInput defines the input for getting a drive
type GetInput struct {
	ID string
}

// GetOutput defines the output for getting a drive
type GetOutput struct {
	Piece *drive.Piece
}

// UpdateInput defines the input for updating a drive
type UpdateInput struct {
	Piece *drive.Piece
}

// UpdateOutput defines the output for updating a drive
type UpdateOutput struct {
	Piece *drive.Piece
}

// DeleteInput defines the input for deleting a drive
type DeleteInput struct {
	ID string
}

// DeleteOutput defines the output for deleting a drive
type DeleteOutput struct{}

// ListInput selects a window of the newest-first drive index
type ListInput struct {
	Offset int
	Limit  int
}

// ListOutput defines the output for listing drives
type ListOutput struct {
	Pieces []*drive.Piece
	Total  int
}

// ListAllInput defines the input for listing every drive
type ListAllInput struct{}

// ListAllOutput defines the output for listing every drive
type ListAllOutput struct {
	Pieces []*drive.Piece
}
