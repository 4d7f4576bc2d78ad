package record

import "fmt"

// Cipher transforms record bytes on their way to and from a backing store.
type Cipher interface {
	Encrypt(plaintext []byte) ([]byte, error)
	Decrypt(ciphertext []byte) ([]byte, error)
}

// EncryptedStore wraps another Store, encrypting records on save and
// decrypting them on load. The backing store only ever sees ciphertext.
type EncryptedStore struct {
	inner  Store
	cipher Cipher
}

// NewEncryptedStore wraps inner with the given cipher.
func NewEncryptedStore(inner Store, cipher Cipher) *EncryptedStore {
	return &EncryptedStore{inner: inner, cipher: cipher}
}

// Load reads ciphertext from the backing store and decrypts it.
func (e *EncryptedStore) Load(key string) ([]byte, bool, error) {
	data, found, err := e.inner.Load(key)
	if err != nil || !found {
		return nil, found, err
	}

	plaintext, err := e.cipher.Decrypt(data)
	if err != nil {
		return nil, false, fmt.Errorf("decrypting record %q: %w", key, err)
	}
	return plaintext, true, nil
}

// Save encrypts the record and writes the ciphertext to the backing store.
func (e *EncryptedStore) Save(key string, data []byte) error {
	ciphertext, err := e.cipher.Encrypt(data)
	if err != nil {
		return fmt.Errorf("encrypting record %q: %w", key, err)
	}
	return e.inner.Save(key, ciphertext)
}

// Close closes the backing store.
func (e *EncryptedStore) Close() error { return e.inner.Close() }

// Compile-time check that EncryptedStore implements the Store interface
var _ Store = (*EncryptedStore)(nil)
