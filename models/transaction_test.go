package models

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *Store {
	db, err := Connect(":memory:", false)
	require.NoError(t, err)
	return NewStore(db)
}

func seed(t *testing.T, store *Store, id string, session string, amount float64) {
	err := store.Create(context.Background(), &Transaction{
		ID:        id,
		Title:     "seed",
		Amount:    amount,
		SessionID: session,
		CreatedAt: time.Now(),
	})
	require.NoError(t, err)
}

func TestFindBySessionScoping(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "a1", "sess-a", 5000)
	seed(t, store, "a2", "sess-a", -1200)
	seed(t, store, "b1", "sess-b", 999)

	transactions, err := store.FindBySession(context.Background(), "sess-a")
	assert.NoError(t, err)
	require.Len(t, transactions, 2)
	// insertion order
	assert.Equal(t, "a1", transactions[0].ID)
	assert.Equal(t, "a2", transactions[1].ID)
	for _, transaction := range transactions {
		assert.Equal(t, "sess-a", transaction.SessionID)
	}
}

func TestFindBySessionEmpty(t *testing.T) {
	store := newTestStore(t)

	transactions, err := store.FindBySession(context.Background(), "sess-none")
	assert.NoError(t, err)
	assert.Empty(t, transactions)
}

func TestFindByID(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "a1", "sess-a", 5000)

	found, err := store.FindByID(context.Background(), "a1", "sess-a")
	assert.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, 5000.0, found.Amount)

	// wrong session and unknown id are both a plain nil result
	foreign, err := store.FindByID(context.Background(), "a1", "sess-b")
	assert.NoError(t, err)
	assert.Nil(t, foreign)

	missing, err := store.FindByID(context.Background(), "zz", "sess-a")
	assert.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSumBySession(t *testing.T) {
	store := newTestStore(t)
	seed(t, store, "a1", "sess-a", 5000)
	seed(t, store, "a2", "sess-a", -1200)
	seed(t, store, "b1", "sess-b", 999)

	amount, err := store.SumBySession(context.Background(), "sess-a")
	assert.NoError(t, err)
	assert.Equal(t, 3800.0, amount)
}

func TestSumBySessionEmptyIsZero(t *testing.T) {
	store := newTestStore(t)

	amount, err := store.SumBySession(context.Background(), "sess-none")
	assert.NoError(t, err)
	assert.Equal(t, 0.0, amount)
}
