package partner

import (
	"context"

	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/infrastructure/notification"
	"github.com/google/uuid"
)

// PartyService handles customer and supplier operations
type PartyService struct {
	partyRepo partner.PartyRepository
	notifier  *notification.Center
}

// NewPartyService creates a new PartyService
func NewPartyService(partyRepo partner.PartyRepository, notifier *notification.Center) *PartyService {
	return &PartyService{
		partyRepo: partyRepo,
		notifier:  notifier,
	}
}

// Create creates a new party of the given kind
func (s *PartyService) Create(ctx context.Context, kind partner.PartyKind, req CreatePartyRequest) (*PartyResponse, error) {
	party, err := partner.NewParty(kind, req.Name, req.Email, req.Phone, req.Notes)
	if err != nil {
		return nil, err
	}

	if err := s.partyRepo.Save(ctx, party); err != nil {
		return nil, err
	}

	s.notifier.Success(kindLabel(kind) + " added successfully")
	return ToPartyResponse(party), nil
}

// Update updates an existing party
func (s *PartyService) Update(ctx context.Context, id uuid.UUID, req UpdatePartyRequest) (*PartyResponse, error) {
	party, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := party.Update(req.Name, req.Email, req.Phone, req.Notes); err != nil {
		return nil, err
	}

	if err := s.partyRepo.Save(ctx, party); err != nil {
		return nil, err
	}

	s.notifier.Success(kindLabel(party.Kind) + " updated successfully")
	return ToPartyResponse(party), nil
}

// Delete removes a party
func (s *PartyService) Delete(ctx context.Context, id uuid.UUID) error {
	party, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.partyRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.notifier.Success(kindLabel(party.Kind) + " deleted successfully")
	return nil
}

// Get returns a single party by ID
func (s *PartyService) Get(ctx context.Context, id uuid.UUID) (*PartyResponse, error) {
	party, err := s.partyRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToPartyResponse(party), nil
}

// List returns all parties of a kind, optionally narrowed by a search
// term matching name or email.
func (s *PartyService) List(ctx context.Context, kind partner.PartyKind, search string) (*PartyListResponse, error) {
	parties, err := s.partyRepo.FindAll(ctx, kind)
	if err != nil {
		return nil, err
	}

	items := make([]PartyResponse, 0, len(parties))
	for _, party := range parties {
		if !party.MatchesSearch(search) {
			continue
		}
		items = append(items, *ToPartyResponse(party))
	}

	return &PartyListResponse{Items: items, Total: len(items)}, nil
}

func kindLabel(kind partner.PartyKind) string {
	if kind == partner.PartyKindSupplier {
		return "Supplier"
	}
	return "Customer"
}
