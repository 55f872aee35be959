package partner

import (
	"math/rand/v2"
	"regexp"
	"strings"
	"time"

	"github.com/bizdash/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PartyKind selects which collection a party belongs to
type PartyKind string

const (
	PartyKindCustomer PartyKind = "customer"
	PartyKindSupplier PartyKind = "supplier"
)

// IsValid checks if the kind is a valid PartyKind
func (k PartyKind) IsValid() bool {
	return k == PartyKindCustomer || k == PartyKindSupplier
}

// String returns the string representation of PartyKind
func (k PartyKind) String() string {
	return string(k)
}

// TransactionType classifies a party transaction
type TransactionType string

const (
	TransactionTypeSale     TransactionType = "sale"
	TransactionTypePurchase TransactionType = "purchase"
)

// TransactionTypeFor returns the transaction type generated for a kind:
// customers accumulate sales, suppliers accumulate purchases.
func TransactionTypeFor(kind PartyKind) TransactionType {
	if kind == PartyKindSupplier {
		return TransactionTypePurchase
	}
	return TransactionTypeSale
}

// Transaction is a display-only history entry attached to a party.
// Transactions are bulk-generated when the party is created and never
// edited afterwards.
type Transaction struct {
	ID     uuid.UUID
	Date   time.Time
	Amount decimal.Decimal
	Type   TransactionType
}

// Party represents a customer or supplier record. The two collections share
// a single shape and differ only in kind and generated transaction type.
type Party struct {
	shared.BaseEntity
	Kind         PartyKind
	Name         string
	Email        string
	Phone        string
	Notes        string
	Transactions []Transaction
}

// NewParty creates a new party with generated placeholder transactions.
// Validation failures are reported per field and nothing is created.
func NewParty(kind PartyKind, name, email, phone, notes string) (*Party, error) {
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Party kind must be 'customer' or 'supplier'")
	}
	if err := validatePartyForm(name, email, phone); err != nil {
		return nil, err
	}

	return &Party{
		BaseEntity:   shared.NewBaseEntity(),
		Kind:         kind,
		Name:         strings.TrimSpace(name),
		Email:        strings.TrimSpace(email),
		Phone:        strings.TrimSpace(phone),
		Notes:        notes,
		Transactions: generateTransactions(kind),
	}, nil
}

// Update replaces all editable fields. ID, kind, and transaction history
// are preserved.
func (p *Party) Update(name, email, phone, notes string) error {
	if err := validatePartyForm(name, email, phone); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(name)
	p.Email = strings.TrimSpace(email)
	p.Phone = strings.TrimSpace(phone)
	p.Notes = notes
	p.UpdatedAt = time.Now()

	return nil
}

// MatchesSearch reports whether the party's name or email contains the
// term, case-insensitively. An empty term matches everything.
func (p *Party) MatchesSearch(term string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	return strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Email), term)
}

// IsCustomer returns true if the party is a customer
func (p *Party) IsCustomer() bool {
	return p.Kind == PartyKindCustomer
}

// IsSupplier returns true if the party is a supplier
func (p *Party) IsSupplier() bool {
	return p.Kind == PartyKindSupplier
}

// generateTransactions synthesizes three history entries dated today,
// a week ago, and two weeks ago, with amounts in [100, 599].
func generateTransactions(kind PartyKind) []Transaction {
	txType := TransactionTypeFor(kind)
	now := time.Now()

	transactions := make([]Transaction, 0, 3)
	for i := 0; i < 3; i++ {
		transactions = append(transactions, Transaction{
			ID:     uuid.New(),
			Date:   now.AddDate(0, 0, -7*i),
			Amount: decimal.NewFromInt(100 + rand.Int64N(500)),
			Type:   txType,
		})
	}
	return transactions
}

var emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validatePartyForm(name, email, phone string) error {
	ve := shared.NewValidationError()
	if strings.TrimSpace(name) == "" {
		ve.Add("name", "Name is required")
	}
	if strings.TrimSpace(email) == "" || !emailRegex.MatchString(strings.TrimSpace(email)) {
		ve.Add("email", "Valid email is required")
	}
	if strings.TrimSpace(phone) == "" {
		ve.Add("phone", "Phone is required")
	}
	if ve.HasErrors() {
		return ve
	}
	return nil
}
