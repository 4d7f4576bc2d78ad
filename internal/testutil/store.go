package testutil

import (
	"path/filepath"
	"testing"

	"packlist/internal/encryption"
	"packlist/internal/record"
)

// NewTestRecordStore creates an in-memory record store for testing.
func NewTestRecordStore() *record.MemoryStore {
	return record.NewMemoryStore()
}

// NewTestSQLiteStore creates a SQLite record store backed by a temporary
// database file. The store is automatically closed when the test completes.
func NewTestSQLiteStore(t *testing.T) *record.SQLiteStore {
	t.Helper()

	store, err := record.NewSQLiteStore(filepath.Join(t.TempDir(), "packlist.db"))
	if err != nil {
		t.Fatalf("failed to open sqlite store: %v", err)
	}

	t.Cleanup(func() {
		store.Close()
	})

	return store
}

// NewTestCipher generates a throwaway unprotected age key and returns a
// cipher opened from it.
func NewTestCipher(t *testing.T) *encryption.AgeCipher {
	t.Helper()

	keyPath := filepath.Join(t.TempDir(), "test.key")
	if err := encryption.Setup(keyPath, ""); err != nil {
		t.Fatalf("failed to set up key: %v", err)
	}

	cipher, err := encryption.Open(keyPath, "")
	if err != nil {
		t.Fatalf("failed to open key: %v", err)
	}
	return cipher
}
