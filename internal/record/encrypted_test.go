package record

import (
	"bytes"
	"errors"
	"testing"
)

// xorCipher is a trivial Cipher for tests. Real encryption lives in the
// encryption package, which depends on this one.
type xorCipher struct{ key byte }

func (c xorCipher) Encrypt(plaintext []byte) ([]byte, error) {
	out := make([]byte, len(plaintext))
	for i, b := range plaintext {
		out[i] = b ^ c.key
	}
	return out, nil
}

func (c xorCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	return c.Encrypt(ciphertext)
}

type failingCipher struct{}

func (failingCipher) Encrypt([]byte) ([]byte, error) { return nil, errors.New("encrypt failed") }
func (failingCipher) Decrypt([]byte) ([]byte, error) { return nil, errors.New("decrypt failed") }

func TestEncryptedStore_RoundTrip(t *testing.T) {
	inner := NewMemoryStore()
	store := NewEncryptedStore(inner, xorCipher{key: 0x5a})

	data := []byte(`{"version":3}`)
	if err := store.Save("pack-store", data); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	got, found, err := store.Load("pack-store")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !found {
		t.Fatal("Load() found = false, want true")
	}
	if !bytes.Equal(got, data) {
		t.Errorf("Load() = %q, want %q", got, data)
	}
}

func TestEncryptedStore_InnerSeesCiphertext(t *testing.T) {
	inner := NewMemoryStore()
	store := NewEncryptedStore(inner, xorCipher{key: 0x5a})

	data := []byte("plaintext record")
	if err := store.Save("key", data); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	raw, found, err := inner.Load("key")
	if err != nil || !found {
		t.Fatalf("inner Load() = %v, found %v", err, found)
	}
	if bytes.Equal(raw, data) {
		t.Error("backing store holds plaintext, want ciphertext")
	}
}

func TestEncryptedStore_LoadNotFound(t *testing.T) {
	store := NewEncryptedStore(NewMemoryStore(), xorCipher{key: 0x5a})

	_, found, err := store.Load("nonexistent")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if found {
		t.Error("Load() found = true for missing key, want false")
	}
}

func TestEncryptedStore_CipherErrors(t *testing.T) {
	inner := NewMemoryStore()
	store := NewEncryptedStore(inner, failingCipher{})

	if err := store.Save("key", []byte("data")); err == nil {
		t.Error("Save() expected error from failing cipher, got nil")
	}

	// Seed ciphertext directly so Load reaches the cipher.
	if err := inner.Save("key", []byte("garbage")); err != nil {
		t.Fatalf("inner Save() error = %v", err)
	}
	if _, _, err := store.Load("key"); err == nil {
		t.Error("Load() expected error from failing cipher, got nil")
	}
}
