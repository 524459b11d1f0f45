package repository

import (
	"encoding/json"
	"fmt"

	"github.com/sirupsen/logrus"

	"felizeducation/internal/database"
	"felizeducation/internal/models"
)

const sessionKey = "session:current"

// SessionRepository owns the single active-session slot: the profile of
// the currently signed-in user, stored as one JSON blob.
type SessionRepository struct {
	kv database.KV
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(kv database.KV) *SessionRepository {
	return &SessionRepository{kv: kv}
}

// Get returns the active session profile, repaired, or nil when no session
// exists. An unparsable session blob is cleared and reported as absent.
// The second result reports whether the repair pass changed the stored
// profile, so callers can re-persist the corrected version.
func (r *SessionRepository) Get() (*models.UserProfile, bool, error) {
	raw, ok, err := r.kv.Get(sessionKey)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get session: %w", err)
	}
	if !ok {
		return nil, false, nil
	}

	// Only unparsable JSON counts as corrupt. Valid blobs with legacy
	// field types go through the tolerant decode and get repaired.
	if !json.Valid([]byte(raw)) {
		logrus.Warn("corrupt session blob, clearing")
		if err := r.kv.Delete(sessionKey); err != nil {
			logrus.WithError(err).Warn("failed to clear corrupt session")
		}
		return nil, false, nil
	}

	repaired := decodeProfile(json.RawMessage(raw))

	repairedBlob, err := json.Marshal(repaired)
	if err != nil {
		return nil, false, fmt.Errorf("failed to encode session: %w", err)
	}
	changed := string(repairedBlob) != raw

	return &repaired, changed, nil
}

// Save replaces the active session with the given profile
func (r *SessionRepository) Save(profile models.UserProfile) error {
	blob, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	if err := r.kv.Set(sessionKey, string(blob)); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

// Clear removes the active session. Clearing an empty slot is a no-op.
func (r *SessionRepository) Clear() error {
	if err := r.kv.Delete(sessionKey); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
