package service

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"felizeducation/internal/models"
	"felizeducation/internal/repository"
)

// BackupData is the complete store snapshot written by the backup tool.
// Password hashes are intentionally excluded.
type BackupData struct {
	Version      string               `json:"version"`
	ExportedAt   time.Time            `json:"exported_at"`
	Users        []models.UserProfile `json:"users"`
	Transactions []models.Transaction `json:"transactions"`
}

// BackupService exports the profile store to a JSON snapshot file.
type BackupService struct {
	users        *repository.UserRepository
	transactions *repository.TransactionRepository
}

// NewBackupService creates a new backup service
func NewBackupService(users *repository.UserRepository, transactions *repository.TransactionRepository) *BackupService {
	return &BackupService{users: users, transactions: transactions}
}

// Export collects all profiles and the payment log into a BackupData.
func (s *BackupService) Export() (*BackupData, error) {
	users, err := s.users.GetAllProfiles()
	if err != nil {
		return nil, fmt.Errorf("failed to export users: %w", err)
	}
	txs, err := s.transactions.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to export transactions: %w", err)
	}

	return &BackupData{
		Version:      "1",
		ExportedAt:   time.Now().UTC(),
		Users:        users,
		Transactions: txs,
	}, nil
}

// ExportToFile writes the snapshot as indented JSON to path.
func (s *BackupService) ExportToFile(path string) error {
	data, err := s.Export()
	if err != nil {
		return err
	}

	blob, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode backup: %w", err)
	}

	if err := os.WriteFile(path, blob, 0o600); err != nil {
		return fmt.Errorf("failed to write backup file: %w", err)
	}
	return nil
}
