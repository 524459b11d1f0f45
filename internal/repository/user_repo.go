package repository

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"felizeducation/internal/database"
	"felizeducation/internal/models"
)

const userKeyPrefix = "users:"

// UserRecord is the stored value for a registered account: the profile
// plus the parent's password hash, keyed by email.
type UserRecord struct {
	PasswordHash string             `json:"password_hash"`
	Profile      models.UserProfile `json:"profile"`
}

// UserRepository owns the users namespace of the key-value store. Every
// profile it returns has been through the repair pass.
type UserRepository struct {
	kv database.KV
}

// NewUserRepository creates a new user repository
func NewUserRepository(kv database.KV) *UserRepository {
	return &UserRepository{kv: kv}
}

func userKey(email string) string {
	return userKeyPrefix + strings.ToLower(strings.TrimSpace(email))
}

// storedRecord defers profile decoding so that a malformed profile inside
// an otherwise valid record can still be repaired field by field.
type storedRecord struct {
	PasswordHash string          `json:"password_hash"`
	Profile      json.RawMessage `json:"profile"`
}

// Get retrieves the record for an email. Returns (nil, nil) when the email
// is unknown. A corrupt stored blob is treated as absent.
func (r *UserRepository) Get(email string) (*UserRecord, error) {
	raw, ok, err := r.kv.Get(userKey(email))
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if !ok {
		return nil, nil
	}

	var stored storedRecord
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		logrus.WithField("email", email).WithError(err).Warn("corrupt user record, treating as absent")
		return nil, nil
	}

	return &UserRecord{
		PasswordHash: stored.PasswordHash,
		Profile:      decodeProfile(stored.Profile),
	}, nil
}

// Save persists the record under the user's email
func (r *UserRepository) Save(rec *UserRecord) error {
	blob, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("failed to encode user record: %w", err)
	}
	if err := r.kv.Set(userKey(rec.Profile.Email), string(blob)); err != nil {
		return fmt.Errorf("failed to save user: %w", err)
	}
	return nil
}

// GetAllProfiles returns every stored profile, repaired. Corrupt records
// are skipped.
func (r *UserRepository) GetAllProfiles() ([]models.UserProfile, error) {
	keys, err := r.kv.Keys(userKeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	profiles := make([]models.UserProfile, 0, len(keys))
	for _, key := range keys {
		raw, ok, err := r.kv.Get(key)
		if err != nil {
			return nil, fmt.Errorf("failed to read user %q: %w", key, err)
		}
		if !ok {
			continue
		}

		var stored storedRecord
		if err := json.Unmarshal([]byte(raw), &stored); err != nil {
			logrus.WithField("key", key).WithError(err).Warn("skipping corrupt user record")
			continue
		}
		profiles = append(profiles, decodeProfile(stored.Profile))
	}

	return profiles, nil
}
