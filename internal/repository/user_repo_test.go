package repository

import (
	"testing"

	"felizeducation/internal/database"
	"felizeducation/internal/models"
)

func testProfile(email string) models.UserProfile {
	return RepairProfile(models.UserProfile{
		ID:    "u-" + email,
		Email: email,
		Name:  "Leo",
		Age:   6,
	})
}

func TestUserRepositorySaveAndGet(t *testing.T) {
	repo := NewUserRepository(database.NewMemoryKV())

	rec := &UserRecord{PasswordHash: "hash", Profile: testProfile("a@x.com")}
	if err := repo.Save(rec); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, err := repo.Get("a@x.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Fatal("Get() = nil for saved record")
	}
	if got.PasswordHash != "hash" {
		t.Errorf("PasswordHash = %q, want %q", got.PasswordHash, "hash")
	}
	if got.Profile.Email != "a@x.com" {
		t.Errorf("Profile.Email = %q, want a@x.com", got.Profile.Email)
	}
}

func TestUserRepositoryGetIsCaseInsensitive(t *testing.T) {
	repo := NewUserRepository(database.NewMemoryKV())
	_ = repo.Save(&UserRecord{PasswordHash: "h", Profile: testProfile("a@x.com")})

	got, err := repo.Get("A@X.COM")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got == nil {
		t.Error("Get() with different casing = nil, want record")
	}
}

func TestUserRepositoryGetMissing(t *testing.T) {
	repo := NewUserRepository(database.NewMemoryKV())

	got, err := repo.Get("nobody@x.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %+v for missing email, want nil", got)
	}
}

func TestUserRepositoryCorruptRecordTreatedAsAbsent(t *testing.T) {
	kv := database.NewMemoryKV()
	_ = kv.Set("users:a@x.com", "{{{ not json")
	repo := NewUserRepository(kv)

	got, err := repo.Get("a@x.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != nil {
		t.Errorf("Get() = %+v for corrupt record, want nil", got)
	}
}

func TestUserRepositoryGetAllProfiles(t *testing.T) {
	kv := database.NewMemoryKV()
	repo := NewUserRepository(kv)
	_ = repo.Save(&UserRecord{PasswordHash: "h1", Profile: testProfile("a@x.com")})
	_ = repo.Save(&UserRecord{PasswordHash: "h2", Profile: testProfile("b@x.com")})
	_ = kv.Set("users:broken@x.com", "not json") // skipped, not fatal

	profiles, err := repo.GetAllProfiles()
	if err != nil {
		t.Fatalf("GetAllProfiles() error = %v", err)
	}
	if len(profiles) != 2 {
		t.Errorf("GetAllProfiles() returned %d profiles, want 2", len(profiles))
	}
}

func TestTransactionRepositoryNewestFirst(t *testing.T) {
	repo := NewTransactionRepository(database.NewMemoryKV())

	if err := repo.Append(models.Transaction{ID: "t1", Amount: 29.90}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}
	if err := repo.Append(models.Transaction{ID: "t2", Amount: 299.00}); err != nil {
		t.Fatalf("Append() error = %v", err)
	}

	txs, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(txs) != 2 {
		t.Fatalf("GetAll() returned %d transactions, want 2", len(txs))
	}
	if txs[0].ID != "t2" {
		t.Errorf("first transaction = %q, want newest (t2)", txs[0].ID)
	}
}

func TestTransactionRepositoryCorruptLogIsEmpty(t *testing.T) {
	kv := database.NewMemoryKV()
	_ = kv.Set("transactions", "][")
	repo := NewTransactionRepository(kv)

	txs, err := repo.GetAll()
	if err != nil {
		t.Fatalf("GetAll() error = %v", err)
	}
	if len(txs) != 0 {
		t.Errorf("GetAll() = %v for corrupt log, want empty", txs)
	}
}

func TestSessionRepositoryLifecycle(t *testing.T) {
	repo := NewSessionRepository(database.NewMemoryKV())

	// Empty slot
	p, _, err := repo.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p != nil {
		t.Errorf("Get() = %+v on empty slot, want nil", p)
	}

	// Save then read back
	if err := repo.Save(testProfile("a@x.com")); err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	p, changed, err := repo.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p == nil || p.Email != "a@x.com" {
		t.Fatalf("Get() = %+v, want saved profile", p)
	}
	if changed {
		t.Error("Get() reported repair changes for an already-repaired profile")
	}

	// Clear
	if err := repo.Clear(); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if p, _, _ := repo.Get(); p != nil {
		t.Error("session still present after Clear")
	}
}

func TestSessionRepositoryCorruptSlotCleared(t *testing.T) {
	kv := database.NewMemoryKV()
	_ = kv.Set("session:current", "garbage{")
	repo := NewSessionRepository(kv)

	p, _, err := repo.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p != nil {
		t.Errorf("Get() = %+v for corrupt slot, want nil", p)
	}
	if _, ok, _ := kv.Get("session:current"); ok {
		t.Error("corrupt session slot was not cleared")
	}
}

func TestSessionRepositoryCoercesWrongTypedFields(t *testing.T) {
	kv := database.NewMemoryKV()
	// Old client versions stored numbers as strings. Valid JSON must be
	// coerced and kept, not cleared as corrupt.
	_ = kv.Set("session:current", `{"email":"a@x.com","name":"Leo","age":6,"xp":"2500","unlockedSubjects":["GRAMMAR"]}`)
	repo := NewSessionRepository(kv)

	p, changed, err := repo.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p == nil {
		t.Fatal("Get() = nil, want coerced profile")
	}
	if !changed {
		t.Error("Get() changed = false, want true for coerced profile")
	}
	if p.XP != 2500 {
		t.Errorf("XP = %d, want 2500 (coerced from string)", p.XP)
	}
	if p.Level != 3 {
		t.Errorf("Level = %d, want 3 (recomputed from coerced xp)", p.Level)
	}
	if _, ok, _ := kv.Get("session:current"); !ok {
		t.Error("wrong-typed session slot was cleared instead of coerced")
	}
}

func TestSessionRepositoryRepairsLegacyProfile(t *testing.T) {
	kv := database.NewMemoryKV()
	// Legacy session without masteredLetters and with a stale level.
	_ = kv.Set("session:current", `{"email":"a@x.com","name":"Leo","age":6,"xp":1500,"level":1,"unlockedSubjects":["GRAMMAR"]}`)
	repo := NewSessionRepository(kv)

	p, changed, err := repo.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if p == nil {
		t.Fatal("Get() = nil, want repaired profile")
	}
	if !changed {
		t.Error("Get() changed = false, want true for legacy profile")
	}
	if p.Level != 2 {
		t.Errorf("Level = %d, want 2 (recomputed from xp)", p.Level)
	}
	if p.MasteredLetters == nil {
		t.Error("MasteredLetters not defaulted")
	}
}
