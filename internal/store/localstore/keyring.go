package localstore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"sync"
)

const sessionKeyName = "timo-storage-key"

// keyring manages the per-session 256-bit encryption key. The key lives
// in session-scoped storage under a fixed name and is generated once on
// first use; it is never persisted across sessions in plaintext, so a
// restart means previously encrypted values can no longer be decrypted.
// That is an expected occurrence, not a bug.
type keyring struct {
	mu        sync.Mutex
	sessionKV KV
}

func newKeyring(sessionKV KV) *keyring {
	return &keyring{sessionKV: sessionKV}
}

func (k *keyring) key(ctx context.Context) ([]byte, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	stored, ok, err := k.sessionKV.Get(ctx, sessionKeyName)
	if err == nil && ok {
		if key, decErr := hex.DecodeString(stored); decErr == nil && len(key) == 32 {
			return key, nil
		}
	}

	key := make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	if err := k.sessionKV.Set(ctx, sessionKeyName, hex.EncodeToString(key)); err != nil {
		return nil, err
	}
	return key, nil
}
