package memory

import (
	"context"
	"sync"

	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// PartyRepository is an in-memory implementation of partner.PartyRepository.
// Entries live for the lifetime of the process and are returned in
// insertion order.
type PartyRepository struct {
	mu      sync.RWMutex
	parties map[uuid.UUID]*partner.Party
	order   []uuid.UUID
}

// NewPartyRepository creates an empty in-memory party repository
func NewPartyRepository() *PartyRepository {
	return &PartyRepository{
		parties: make(map[uuid.UUID]*partner.Party),
	}
}

// FindByID finds a party by ID
func (r *PartyRepository) FindByID(_ context.Context, id uuid.UUID) (*partner.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	party, ok := r.parties[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	copied := *party
	return &copied, nil
}

// FindAll returns all parties of the given kind in insertion order
func (r *PartyRepository) FindAll(_ context.Context, kind partner.PartyKind) ([]*partner.Party, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*partner.Party, 0, len(r.order))
	for _, id := range r.order {
		party := r.parties[id]
		if party.Kind != kind {
			continue
		}
		copied := *party
		result = append(result, &copied)
	}
	return result, nil
}

// Save creates or updates a party
func (r *PartyRepository) Save(_ context.Context, party *partner.Party) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := party.GetID()
	if _, ok := r.parties[id]; !ok {
		r.order = append(r.order, id)
	}
	copied := *party
	r.parties[id] = &copied
	return nil
}

// Delete removes a party by ID
func (r *PartyRepository) Delete(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.parties[id]; !ok {
		return shared.ErrNotFound
	}
	delete(r.parties, id)
	for i, existing := range r.order {
		if existing == id {
			r.order = append(r.order[:i], r.order[i+1:]...)
			break
		}
	}
	return nil
}

// Count returns the number of parties of the given kind
func (r *PartyRepository) Count(_ context.Context, kind partner.PartyKind) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var count int64
	for _, party := range r.parties {
		if party.Kind == kind {
			count++
		}
	}
	return count, nil
}
