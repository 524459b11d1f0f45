package repository

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"felizeducation/internal/database"
	"felizeducation/internal/models"
)

const transactionsKey = "transactions"

// TransactionRepository owns the append-only payment log, stored as a
// single JSON array blob ordered newest-first.
type TransactionRepository struct {
	kv database.KV
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(kv database.KV) *TransactionRepository {
	return &TransactionRepository{kv: kv}
}

// GetAll returns the full log, newest first. A missing or corrupt blob
// yields an empty log.
func (r *TransactionRepository) GetAll() ([]models.Transaction, error) {
	raw, ok, err := r.kv.Get(transactionsKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	if !ok {
		return []models.Transaction{}, nil
	}

	var txs []models.Transaction
	if err := json.Unmarshal([]byte(raw), &txs); err != nil {
		logrus.WithError(err).Warn("corrupt transaction log, treating as empty")
		return []models.Transaction{}, nil
	}
	return txs, nil
}

// Append prepends a transaction to the log and persists it.
func (r *TransactionRepository) Append(tx models.Transaction) error {
	txs, err := r.GetAll()
	if err != nil {
		return err
	}

	txs = append([]models.Transaction{tx}, txs...)

	blob, err := json.Marshal(txs)
	if err != nil {
		return fmt.Errorf("failed to encode transactions: %w", err)
	}
	if err := r.kv.Set(transactionsKey, string(blob)); err != nil {
		return fmt.Errorf("failed to save transactions: %w", err)
	}
	return nil
}
