package partner

import (
	"time"

	"github.com/bizdash/backend/internal/domain/partner"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreatePartyRequest represents a request to create a customer or supplier
type CreatePartyRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"required,email,max=200"`
	Phone string `json:"phone" binding:"required,min=1,max=50"`
	Notes string `json:"notes"`
}

// UpdatePartyRequest represents a request to update a customer or supplier
type UpdatePartyRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=200"`
	Email string `json:"email" binding:"required,email,max=200"`
	Phone string `json:"phone" binding:"required,min=1,max=50"`
	Notes string `json:"notes"`
}

// TransactionResponse represents a party transaction in API responses
type TransactionResponse struct {
	ID     uuid.UUID       `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Type   string          `json:"type"`
}

// PartyResponse represents a party in API responses
type PartyResponse struct {
	ID           uuid.UUID             `json:"id"`
	Kind         string                `json:"kind"`
	Name         string                `json:"name"`
	Email        string                `json:"email"`
	Phone        string                `json:"phone"`
	Notes        string                `json:"notes"`
	Transactions []TransactionResponse `json:"transactions"`
	CreatedAt    time.Time             `json:"created_at"`
	UpdatedAt    time.Time             `json:"updated_at"`
}

// PartyListResponse represents the result of a party listing
type PartyListResponse struct {
	Items []PartyResponse `json:"items"`
	Total int             `json:"total"`
}

// ToPartyResponse converts a domain party to a response DTO
func ToPartyResponse(p *partner.Party) *PartyResponse {
	transactions := make([]TransactionResponse, 0, len(p.Transactions))
	for _, tx := range p.Transactions {
		transactions = append(transactions, TransactionResponse{
			ID:     tx.ID,
			Date:   tx.Date,
			Amount: tx.Amount,
			Type:   string(tx.Type),
		})
	}

	return &PartyResponse{
		ID:           p.GetID(),
		Kind:         p.Kind.String(),
		Name:         p.Name,
		Email:        p.Email,
		Phone:        p.Phone,
		Notes:        p.Notes,
		Transactions: transactions,
		CreatedAt:    p.GetCreatedAt(),
		UpdatedAt:    p.GetUpdatedAt(),
	}
}
