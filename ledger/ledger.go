package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"cashbook/models"
)

// Store is the data access needed by the ledger. *models.Store satisfies it.
type Store interface {
	Create(ctx context.Context, transaction *models.Transaction) error
	FindBySession(ctx context.Context, session string) ([]models.Transaction, error)
	FindByID(ctx context.Context, id string, session string) (*models.Transaction, error)
	SumBySession(ctx context.Context, session string) (float64, error)
}

// Service performs the session-scoped ledger operations. It holds no state
// of its own; every call is a single round trip to the store.
type Service struct {
	store Store
	now   func() time.Time
	newID func() string
}

func New(store Store) *Service {
	return &Service{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Create derives the signed amount from already validated params and
// inserts the transaction. The sign is fixed here once and never
// recomputed: credit keeps the caller's amount, debit negates it.
func (s *Service) Create(ctx context.Context, session string, params CreateParams) (*models.Transaction, error) {
	amount := params.Amount
	if params.Direction == Debit {
		amount = -amount
	}

	transaction := &models.Transaction{
		ID:        s.newID(),
		Title:     params.Title,
		Amount:    amount,
		SessionID: session,
		CreatedAt: s.now(),
	}
	if err := s.store.Create(ctx, transaction); err != nil {
		return nil, err
	}

	return transaction, nil
}

// List returns every transaction owned by the session, in storage order.
func (s *Service) List(ctx context.Context, session string) ([]models.Transaction, error) {
	return s.store.FindBySession(ctx, session)
}

// Get looks up a single transaction by id within the session. A malformed
// id is a validation error; an id that exists under another session and an
// id that exists nowhere both come back nil, nil.
func (s *Service) Get(ctx context.Context, session string, id string) (*models.Transaction, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, &ValidationError{Field: "id", Reason: "must be a valid uuid"}
	}
	return s.store.FindByID(ctx, id, session)
}

// Summary returns the net balance of the session: the sum of the signed
// amounts, zero when the session has no transactions.
func (s *Service) Summary(ctx context.Context, session string) (float64, error) {
	return s.store.SumBySession(ctx, session)
}
