package partner

import (
	"context"

	"github.com/google/uuid"
)

// PartyRepository defines the persistence interface for parties
type PartyRepository interface {
	// FindByID finds a party by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Party, error)

	// FindAll returns all parties of the given kind in insertion order
	FindAll(ctx context.Context, kind PartyKind) ([]*Party, error)

	// Save creates or updates a party
	Save(ctx context.Context, party *Party) error

	// Delete removes a party by ID
	Delete(ctx context.Context, id uuid.UUID) error

	// Count returns the number of parties of the given kind
	Count(ctx context.Context, kind PartyKind) (int64, error)
}
