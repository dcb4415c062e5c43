package models

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Transaction is a single signed movement owned by one session. Rows are
// append-only: there is no update or delete path anywhere in the service.
type Transaction struct {
	ID        string    `json:"id" gorm:"primary_key"`
	Title     string    `json:"title" gorm:"not null"`
	Amount    float64   `json:"amount"`
	SessionID string    `json:"session_id" gorm:"index;not null"`
	CreatedAt time.Time `json:"created_at"`
}

// Store wraps the database handle with the four single-statement queries
// the ledger needs. Every query is scoped by session_id.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, transaction *Transaction) error {
	return s.db.WithContext(ctx).Create(transaction).Error
}

func (s *Store) FindBySession(ctx context.Context, session string) ([]Transaction, error) {
	transactions := []Transaction{}
	err := s.db.WithContext(ctx).Where("session_id = ?", session).Find(&transactions).Error
	return transactions, err
}

// FindByID returns nil without error when no row matches both id and
// session, so a foreign id and a foreign session look the same to callers.
func (s *Store) FindByID(ctx context.Context, id string, session string) (*Transaction, error) {
	var transaction Transaction
	err := s.db.WithContext(ctx).Where("id = ? AND session_id = ?", id, session).First(&transaction).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (s *Store) SumBySession(ctx context.Context, session string) (float64, error) {
	var amount float64
	err := s.db.WithContext(ctx).Model(&Transaction{}).
		Where("session_id = ?", session).
		Select("COALESCE(SUM(amount), 0)").
		Scan(&amount).Error
	return amount, err
}
