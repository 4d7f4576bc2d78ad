package encryption

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"filippo.io/age"

	"packlist/internal/record"
)

// ageHeader is the first line of any age ciphertext, used to tell a
// passphrase-protected key file from a plaintext one.
const ageHeader = "age-encryption.org/v1"

// AgeCipher implements record.Cipher using filippo.io/age with an X25519
// identity stored in a local key file. With a passphrase, the key file itself
// is encrypted using age's scrypt-based passphrase encryption; without one it
// is stored plaintext with 0600 permissions.
type AgeCipher struct {
	identity *age.X25519Identity
}

var _ record.Cipher = (*AgeCipher)(nil)

// Setup performs one-time key generation, writing the identity to keyPath.
// A non-empty passphrase wraps the key file in scrypt encryption.
func Setup(keyPath, passphrase string) error {
	if _, err := os.Stat(keyPath); err == nil {
		return fmt.Errorf("key file already exists at %s", keyPath)
	}

	identity, err := age.GenerateX25519Identity()
	if err != nil {
		return fmt.Errorf("generating key pair: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(keyPath), 0700); err != nil {
		return fmt.Errorf("creating key directory: %w", err)
	}

	keyLine := identity.String() + "\n"
	if passphrase == "" {
		if err := os.WriteFile(keyPath, []byte(keyLine), 0600); err != nil {
			return fmt.Errorf("writing key file: %w", err)
		}
		return nil
	}

	recipient, err := age.NewScryptRecipient(passphrase)
	if err != nil {
		return fmt.Errorf("creating scrypt recipient: %w", err)
	}

	f, err := os.OpenFile(keyPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("creating key file: %w", err)
	}
	defer f.Close()

	w, err := age.Encrypt(f, recipient)
	if err != nil {
		return fmt.Errorf("creating encrypted writer: %w", err)
	}
	if _, err := io.WriteString(w, keyLine); err != nil {
		return fmt.Errorf("writing encrypted key: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalizing encrypted key: %w", err)
	}

	return nil
}

// KeyNeedsPassphrase reports whether the key file at keyPath is
// passphrase-protected.
func KeyNeedsPassphrase(keyPath string) (bool, error) {
	f, err := os.Open(keyPath)
	if err != nil {
		return false, fmt.Errorf("opening key file: %w", err)
	}
	defer f.Close()

	header := make([]byte, len(ageHeader))
	n, err := f.Read(header)
	if err != nil && err != io.EOF {
		return false, fmt.Errorf("reading key file: %w", err)
	}
	return strings.HasPrefix(string(header[:n]), ageHeader), nil
}

// Open loads the identity from keyPath, unwrapping it with the passphrase
// when the key file is protected. Returns an error for a wrong passphrase.
func Open(keyPath, passphrase string) (*AgeCipher, error) {
	data, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("reading key file: %w", err)
	}

	if strings.HasPrefix(string(data), ageHeader) {
		identity, err := age.NewScryptIdentity(passphrase)
		if err != nil {
			return nil, fmt.Errorf("creating scrypt identity: %w", err)
		}
		r, err := age.Decrypt(bytes.NewReader(data), identity)
		if err != nil {
			return nil, fmt.Errorf("unlocking key file: %w", err)
		}
		data, err = io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("reading unlocked key: %w", err)
		}
	}

	identity, err := age.ParseX25519Identity(strings.TrimSpace(string(data)))
	if err != nil {
		return nil, fmt.Errorf("parsing key: %w", err)
	}

	return &AgeCipher{identity: identity}, nil
}

// Encrypt encrypts plaintext to the key's recipient.
func (c *AgeCipher) Encrypt(plaintext []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := age.Encrypt(&buf, c.identity.Recipient())
	if err != nil {
		return nil, fmt.Errorf("creating encrypted writer: %w", err)
	}
	if _, err := w.Write(plaintext); err != nil {
		return nil, fmt.Errorf("encrypting data: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("finalizing encryption: %w", err)
	}
	return buf.Bytes(), nil
}

// Decrypt decrypts ciphertext with the identity.
func (c *AgeCipher) Decrypt(ciphertext []byte) ([]byte, error) {
	r, err := age.Decrypt(bytes.NewReader(ciphertext), c.identity)
	if err != nil {
		return nil, fmt.Errorf("creating decrypted reader: %w", err)
	}
	plaintext, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("decrypting data: %w", err)
	}
	return plaintext, nil
}
