package middleware

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/hexcomb/pkg/domain"
	"github.com/aretw0/hexcomb/pkg/ports"
)

// EncryptionConfig holds the keys for sealing and opening cached results.
type EncryptionConfig struct {
	// ActiveKey is the key used for sealing new entries.
	// Must be 32 bytes for AES-256.
	ActiveKey []byte

	// FallbackKeys is a list of old keys to try when opening fails.
	// This enables zero-downtime key rotation.
	FallbackKeys [][]byte
}

type encryptionMiddleware struct {
	next   ports.ResultCache
	config EncryptionConfig
}

// NewEncryption creates a middleware that seals results with AES-GCM before
// they reach the underlying cache. Anyone reading the backing store directly
// sees a single opaque entry instead of the found words.
func NewEncryption(config EncryptionConfig) Middleware {
	if len(config.ActiveKey) != 32 {
		panic("active key must be 32 bytes (AES-256)")
	}
	return func(next ports.ResultCache) ports.ResultCache {
		return &encryptionMiddleware{
			next:   next,
			config: config,
		}
	}
}

// envelopePrefix marks an entry as sealed. A result passing through this
// middleware carries exactly one word: the prefix plus the ciphertext.
const envelopePrefix = "gcm:"

func (m *encryptionMiddleware) Set(ctx context.Context, key string, res *domain.Result) error {
	plain, err := json.Marshal(res)
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}

	sealed, err := seal(plain, m.config.ActiveKey)
	if err != nil {
		return fmt.Errorf("failed to encrypt result: %w", err)
	}

	envelope := &domain.Result{
		Words: []string{envelopePrefix + base64.StdEncoding.EncodeToString(sealed)},
	}
	return m.next.Set(ctx, key, envelope)
}

func (m *encryptionMiddleware) Get(ctx context.Context, key string) (*domain.Result, error) {
	envelope, err := m.next.Get(ctx, key)
	if err != nil {
		return nil, err
	}

	// Fail secure: once encryption is configured, plain entries written
	// before it was enabled are rejected rather than passed through.
	if len(envelope.Words) != 1 || !strings.HasPrefix(envelope.Words[0], envelopePrefix) {
		return nil, errors.New("cached result is missing the encrypted envelope")
	}

	sealed, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(envelope.Words[0], envelopePrefix))
	if err != nil {
		return nil, fmt.Errorf("failed to decode envelope base64: %w", err)
	}

	plain, err := open(sealed, m.config.ActiveKey, m.config.FallbackKeys)
	if err != nil {
		return nil, fmt.Errorf("failed to decrypt result: %w", err)
	}

	var res domain.Result
	if err := json.Unmarshal(plain, &res); err != nil {
		return nil, fmt.Errorf("failed to unmarshal decrypted result: %w", err)
	}
	return &res, nil
}

func seal(plain, key []byte) ([]byte, error) {
	gcm, err := newGCM(key)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	return gcm.Seal(nonce, nonce, plain, nil), nil
}

// open tries the active key first, then each fallback key in order.
func open(sealed, activeKey []byte, fallbackKeys [][]byte) ([]byte, error) {
	keys := append([][]byte{activeKey}, fallbackKeys...)
	for _, key := range keys {
		gcm, err := newGCM(key)
		if err != nil {
			continue
		}
		if len(sealed) < gcm.NonceSize() {
			return nil, errors.New("ciphertext too short")
		}
		nonce, body := sealed[:gcm.NonceSize()], sealed[gcm.NonceSize():]
		if plain, err := gcm.Open(nil, nonce, body, nil); err == nil {
			return plain, nil
		}
	}
	return nil, errors.New("decryption failed with all available keys")
}

func newGCM(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}
