package database

import "testing"

func TestMemoryKVRoundTrip(t *testing.T) {
	kv := NewMemoryKV()

	if err := kv.Set("users:a@x.com", `{"xp":0}`); err != nil {
		t.Fatalf("Set() error = %v", err)
	}

	v, ok, err := kv.Get("users:a@x.com")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if !ok {
		t.Fatal("Get() ok = false, want true")
	}
	if v != `{"xp":0}` {
		t.Errorf("Get() = %q, want %q", v, `{"xp":0}`)
	}
}

func TestMemoryKVGetMissing(t *testing.T) {
	kv := NewMemoryKV()

	_, ok, err := kv.Get("session:current")
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if ok {
		t.Error("Get() ok = true for missing key, want false")
	}
}

func TestMemoryKVDelete(t *testing.T) {
	kv := NewMemoryKV()

	if err := kv.Set("session:current", "blob"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if err := kv.Delete("session:current"); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	if _, ok, _ := kv.Get("session:current"); ok {
		t.Error("key still present after Delete")
	}

	// Deleting a missing key is not an error
	if err := kv.Delete("session:current"); err != nil {
		t.Errorf("Delete() of missing key error = %v", err)
	}
}

func TestMemoryKVKeysPrefix(t *testing.T) {
	kv := NewMemoryKV()
	_ = kv.Set("users:a@x.com", "1")
	_ = kv.Set("users:b@x.com", "2")
	_ = kv.Set("transactions", "3")

	keys, err := kv.Keys("users:")
	if err != nil {
		t.Fatalf("Keys() error = %v", err)
	}
	if len(keys) != 2 {
		t.Errorf("Keys(users:) returned %d keys, want 2", len(keys))
	}
}

func TestMemoryKVFailWrites(t *testing.T) {
	kv := NewMemoryKV()
	kv.FailWrites = true

	if err := kv.Set("users:a@x.com", "blob"); err == nil {
		t.Error("Set() error = nil with FailWrites, want error")
	}
	if _, ok, _ := kv.Get("users:a@x.com"); ok {
		t.Error("failed write must not store a value")
	}
}

func TestDialectRewriteQuery(t *testing.T) {
	tests := []struct {
		name    string
		dialect Dialect
		query   string
		want    string
	}{
		{
			name:    "sqlite keeps question marks",
			dialect: NewSQLiteDialect(),
			query:   "SELECT v FROM kv WHERE k = ?",
			want:    "SELECT v FROM kv WHERE k = ?",
		},
		{
			name:    "mysql keeps question marks",
			dialect: NewMySQLDialect(),
			query:   "SELECT v FROM kv WHERE k = ?",
			want:    "SELECT v FROM kv WHERE k = ?",
		},
		{
			name:    "postgres numbers placeholders",
			dialect: NewPostgresDialect(),
			query:   "INSERT INTO kv (k, v) VALUES (?, ?)",
			want:    "INSERT INTO kv (k, v) VALUES ($1, $2)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dialect.RewriteQuery(tt.query); got != tt.want {
				t.Errorf("RewriteQuery() = %q, want %q", got, tt.want)
			}
		})
	}
}
