package partner

import (
	"context"
	"testing"

	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/bizdash/backend/internal/infrastructure/notification"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockPartyRepository is a mock implementation of partner.PartyRepository
type MockPartyRepository struct {
	mock.Mock
}

func (m *MockPartyRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Party, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Party), args.Error(1)
}

func (m *MockPartyRepository) FindAll(ctx context.Context, kind partner.PartyKind) ([]*partner.Party, error) {
	args := m.Called(ctx, kind)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Party), args.Error(1)
}

func (m *MockPartyRepository) Save(ctx context.Context, party *partner.Party) error {
	args := m.Called(ctx, party)
	return args.Error(0)
}

func (m *MockPartyRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPartyRepository) Count(ctx context.Context, kind partner.PartyKind) (int64, error) {
	args := m.Called(ctx, kind)
	return args.Get(0).(int64), args.Error(1)
}

func newTestParty(t *testing.T, kind partner.PartyKind, name string) *partner.Party {
	t.Helper()
	party, err := partner.NewParty(kind, name, "test@example.com", "555", "")
	require.NoError(t, err)
	return party
}

func TestPartyService_Create(t *testing.T) {
	ctx := context.Background()

	t.Run("creates and notifies", func(t *testing.T) {
		mockRepo := new(MockPartyRepository)
		notifier := notification.NewCenter(0)
		service := NewPartyService(mockRepo, notifier)

		mockRepo.On("Save", ctx, mock.AnythingOfType("*partner.Party")).Return(nil)

		resp, err := service.Create(ctx, partner.PartyKindCustomer, CreatePartyRequest{
			Name:  "John Doe",
			Email: "john@example.com",
			Phone: "555",
		})

		require.NoError(t, err)
		assert.Equal(t, "John Doe", resp.Name)
		assert.Equal(t, "customer", resp.Kind)
		assert.Len(t, resp.Transactions, 3)

		current := notifier.Current()
		require.NotNil(t, current)
		assert.Equal(t, "Customer added successfully", current.Message)
		mockRepo.AssertExpectations(t)
	})

	t.Run("validation failure saves nothing and keeps quiet", func(t *testing.T) {
		mockRepo := new(MockPartyRepository)
		notifier := notification.NewCenter(0)
		service := NewPartyService(mockRepo, notifier)

		_, err := service.Create(ctx, partner.PartyKindCustomer, CreatePartyRequest{
			Name:  "",
			Email: "bad",
			Phone: "",
		})

		var ve *shared.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Nil(t, notifier.Current())
		mockRepo.AssertNotCalled(t, "Save")
	})

	t.Run("supplier notification label", func(t *testing.T) {
		mockRepo := new(MockPartyRepository)
		notifier := notification.NewCenter(0)
		service := NewPartyService(mockRepo, notifier)

		mockRepo.On("Save", ctx, mock.AnythingOfType("*partner.Party")).Return(nil)

		_, err := service.Create(ctx, partner.PartyKindSupplier, CreatePartyRequest{
			Name:  "Acme Corp",
			Email: "acme@example.com",
			Phone: "555",
		})

		require.NoError(t, err)
		assert.Equal(t, "Supplier added successfully", notifier.Current().Message)
	})
}

func TestPartyService_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("updates existing party", func(t *testing.T) {
		mockRepo := new(MockPartyRepository)
		notifier := notification.NewCenter(0)
		service := NewPartyService(mockRepo, notifier)

		party := newTestParty(t, partner.PartyKindCustomer, "John Doe")
		mockRepo.On("FindByID", ctx, party.GetID()).Return(party, nil)
		mockRepo.On("Save", ctx, mock.AnythingOfType("*partner.Party")).Return(nil)

		resp, err := service.Update(ctx, party.GetID(), UpdatePartyRequest{
			Name:  "Jane Smith",
			Email: "jane@example.com",
			Phone: "666",
		})

		require.NoError(t, err)
		assert.Equal(t, "Jane Smith", resp.Name)
		assert.Equal(t, "Customer updated successfully", notifier.Current().Message)
	})

	t.Run("unknown party", func(t *testing.T) {
		mockRepo := new(MockPartyRepository)
		service := NewPartyService(mockRepo, notification.NewCenter(0))

		id := uuid.New()
		mockRepo.On("FindByID", ctx, id).Return(nil, shared.ErrNotFound)

		_, err := service.Update(ctx, id, UpdatePartyRequest{Name: "X", Email: "x@example.com", Phone: "1"})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestPartyService_Delete(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPartyRepository)
	notifier := notification.NewCenter(0)
	service := NewPartyService(mockRepo, notifier)

	party := newTestParty(t, partner.PartyKindSupplier, "Acme Corp")
	mockRepo.On("FindByID", ctx, party.GetID()).Return(party, nil)
	mockRepo.On("Delete", ctx, party.GetID()).Return(nil)

	err := service.Delete(ctx, party.GetID())
	require.NoError(t, err)
	assert.Equal(t, "Supplier deleted successfully", notifier.Current().Message)
}

func TestPartyService_List(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockPartyRepository)
	service := NewPartyService(mockRepo, notification.NewCenter(0))

	john := newTestParty(t, partner.PartyKindCustomer, "John Doe")
	jane := newTestParty(t, partner.PartyKindCustomer, "Jane Smith")
	mockRepo.On("FindAll", ctx, partner.PartyKindCustomer).Return([]*partner.Party{john, jane}, nil)

	t.Run("no search returns everything", func(t *testing.T) {
		resp, err := service.List(ctx, partner.PartyKindCustomer, "")
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("search narrows the list", func(t *testing.T) {
		resp, err := service.List(ctx, partner.PartyKindCustomer, "jane")
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "Jane Smith", resp.Items[0].Name)
	})
}
