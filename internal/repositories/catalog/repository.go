// Package catalog provides the interface for the drive set and stat catalog
package catalog

//go:generate mockgen -destination=mock/mock_repository.go -package=catalogmock github.com/KirkDiggler/drive-api/internal/repositories/catalog Repository

import (
	"context"

	"github.com/KirkDiggler/drive-api/internal/entities/drive"
)

// Repository defines the interface for the set type and stat type catalog
type Repository interface {
	// ListSetTypes returns every set type sorted by name
	ListSetTypes(ctx context.Context, input ListSetTypesInput) (*ListSetTypesOutput, error)

	// ListStatTypes returns every known stat name sorted
	ListStatTypes(ctx context.Context, input ListStatTypesInput) (*ListStatTypesOutput, error)

	// HasSetType reports whether a set type exists
	HasSetType(ctx context.Context, input HasSetTypeInput) (*HasSetTypeOutput, error)

	// HasStatTypes returns the names that are not known stat types
	HasStatTypes(ctx context.Context, input HasStatTypesInput) (*HasStatTypesOutput, error)

	// SeedSetTypes upserts set types
	SeedSetTypes(ctx context.Context, input SeedSetTypesInput) (*SeedSetTypesOutput, error)

	// SeedStatTypes adds stat names
	SeedStatTypes(ctx context.Context, input SeedStatTypesInput) (*SeedStatTypesOutput, error)
}

// ListSetTypesInput defines the input for listing set types
type ListSetTypesInput struct{}

// ListSetTypesOutput defines the output for listing set types
type ListSetTypesOutput struct {
	SetTypes []*drive.SetType
}

// ListStatTypesInput defines the input for listing stat types
type ListStatTypesInput struct{}

// ListStatTypesOutput defines the output for listing stat types
type ListStatTypesOutput struct {
	Stats []string
}

// HasSetTypeInput defines the input for a set type lookup
type HasSetTypeInput struct {
	Name string
}

// HasSetTypeOutput defines the output for a set type lookup
type HasSetTypeOutput struct {
	Exists bool
}

// HasStatTypesInput defines the input for a stat type lookup
type HasStatTypesInput struct {
	Names []string
}

// HasStatTypesOutput lists the requested names missing from the catalog, in request order
type HasStatTypesOutput struct {
	Unknown []string
}

// SeedSetTypesInput defines the input for seeding set types
type SeedSetTypesInput struct {
	SetTypes []*drive.SetType
}

// SeedSetTypesOutput reports how many set types were new
type SeedSetTypesOutput struct {
	Added int
}

// SeedStatTypesInput defines the input for seeding stat types
type SeedStatTypesInput struct {
	Stats []string
}

// SeedStatTypesOutput reports how many stat names were new
type SeedStatTypesOutput struct {
	Added int
}
