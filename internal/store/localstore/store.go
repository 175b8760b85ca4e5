package localstore

import (
	"context"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"errors"
	"regexp"

	"timo-intelligence-be/internal/content"
	"timo-intelligence-be/internal/model"
	"timo-intelligence-be/internal/pkg/logger"
)

const storageKey = "timo-intelligence-content"

var base64Re = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)

// Store is the encrypted fallback/backup store for the content
// document. Values are written under a single fixed key as
// base64(12-byte nonce + AES-GCM ciphertext of the JSON document);
// plaintext JSON from the pre-encryption format is still readable.
type Store struct {
	kv      KV
	keyring *keyring
	log     logger.ILogger
}

// NewStore wraps kv as the document backend. The session key lives in
// its own process-scoped storage regardless of the document backend.
func NewStore(kv KV, log logger.ILogger) *Store {
	return &Store{
		kv:      kv,
		keyring: newKeyring(NewMemoryKV()),
		log:     log,
	}
}

// Save serializes, encrypts and writes the document, fully overwriting
// any prior value. When the encryption subsystem fails the document is
// written unencrypted instead; losing the edit would be worse.
func (s *Store) Save(ctx context.Context, doc *model.ContentDocument) error {
	payload, err := json.Marshal(doc)
	if err != nil {
		return err
	}

	encrypted, err := s.encrypt(ctx, payload)
	if err != nil {
		s.log.Warn("LocalStore", "Encryption failed, saving unencrypted", map[string]interface{}{"error": err.Error()})
		return s.kv.Set(ctx, storageKey, string(payload))
	}
	return s.kv.Set(ctx, storageKey, encrypted)
}

// Load reads and decodes the stored document. Plaintext JSON (legacy
// format) is returned directly; otherwise the value is decrypted and
// validated. Decryption or validation failure is non-fatal: the entry
// is cleared and nil is returned so the caller falls through to
// defaults. A rotated session key lands here by design.
func (s *Store) Load(ctx context.Context) (*model.ContentDocument, error) {
	raw, ok, err := s.kv.Get(ctx, storageKey)
	if err != nil {
		return nil, err
	}
	if !ok || raw == "" {
		return nil, nil
	}

	// Legacy unencrypted format.
	if doc := content.DecodeDocument([]byte(raw)); doc != nil {
		return doc, nil
	}

	if len(raw) > 100 && base64Re.MatchString(raw) {
		plaintext, err := s.decrypt(ctx, raw)
		if err == nil {
			if doc := content.DecodeDocument(plaintext); doc != nil {
				return doc, nil
			}
		} else {
			s.log.Warn("LocalStore", "Failed to decrypt stored content, clearing entry", map[string]interface{}{"error": err.Error()})
		}
	}

	// Neither valid JSON nor decryptable ciphertext. Clear it so the
	// next load does not trip over the same entry.
	if err := s.kv.Delete(ctx, storageKey); err != nil {
		s.log.Warn("LocalStore", "Failed to clear corrupted entry", map[string]interface{}{"error": err.Error()})
	}
	return nil, nil
}

func (s *Store) encrypt(ctx context.Context, plaintext []byte) (string, error) {
	key, err := s.keyring.key(ctx)
	if err != nil {
		return "", err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return "", err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return "", err
	}

	sealed := gcm.Seal(nonce, nonce, plaintext, nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (s *Store) decrypt(ctx context.Context, encoded string) ([]byte, error) {
	key, err := s.keyring.key(ctx)
	if err != nil {
		return nil, err
	}

	combined, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	if len(combined) < gcm.NonceSize() {
		return nil, errors.New("localstore: ciphertext shorter than nonce")
	}

	nonce, ciphertext := combined[:gcm.NonceSize()], combined[gcm.NonceSize():]
	return gcm.Open(nil, nonce, ciphertext, nil)
}
