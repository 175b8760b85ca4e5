package localstore

import (
	"context"
	"encoding/json"
	"testing"

	"timo-intelligence-be/internal/model"
	"timo-intelligence-be/internal/pkg/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore() (*Store, *MemoryKV) {
	kv := NewMemoryKV()
	return NewStore(kv, logger.Noop{}), kv
}

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	doc := model.DefaultContent()
	doc.Hero.Tag = "aangepaste tag"
	require.NoError(t, store.Save(ctx, doc))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "aangepaste tag", loaded.Hero.Tag)
	assert.Equal(t, doc.Solutions, loaded.Solutions)
}

func TestStoreValueIsEncrypted(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore()

	require.NoError(t, store.Save(ctx, model.DefaultContent()))

	raw, ok, err := kv.Get(ctx, storageKey)
	require.NoError(t, err)
	require.True(t, ok)
	assert.False(t, json.Valid([]byte(raw)), "stored value should not be plaintext JSON")
	assert.Regexp(t, `^[A-Za-z0-9+/=]+$`, raw)
}

func TestStoreEmpty(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)
}

func TestStoreReadsLegacyPlaintext(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore()

	payload, err := json.Marshal(model.DefaultContent())
	require.NoError(t, err)
	require.NoError(t, kv.Set(ctx, storageKey, string(payload)))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, model.DefaultContent(), loaded)
}

func TestStoreClearsCorruptedEntry(t *testing.T) {
	ctx := context.Background()
	store, kv := newTestStore()

	require.NoError(t, kv.Set(ctx, storageKey, "not json and not base64!!"))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, ok, err := kv.Get(ctx, storageKey)
	require.NoError(t, err)
	assert.False(t, ok, "corrupted entry should be cleared")
}

// A value written by a previous process cannot be decrypted with this
// process's session key; the store treats it like corruption.
func TestStoreRotatedKeyClearsEntry(t *testing.T) {
	ctx := context.Background()
	kv := NewMemoryKV()

	previous := NewStore(kv, logger.Noop{})
	require.NoError(t, previous.Save(ctx, model.DefaultContent()))

	// Fresh store over the same backend simulates a restart.
	current := NewStore(kv, logger.Noop{})
	loaded, err := current.Load(ctx)
	require.NoError(t, err)
	assert.Nil(t, loaded)

	_, ok, err := kv.Get(ctx, storageKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreOverwritesPriorValue(t *testing.T) {
	ctx := context.Background()
	store, _ := newTestStore()

	first := model.DefaultContent()
	first.Hero.Tag = "eerste"
	require.NoError(t, store.Save(ctx, first))

	second := model.DefaultContent()
	second.Hero.Tag = "tweede"
	require.NoError(t, store.Save(ctx, second))

	loaded, err := store.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, "tweede", loaded.Hero.Tag)
}

func TestFileKVRoundTrip(t *testing.T) {
	ctx := context.Background()
	kv, err := NewFileKV(t.TempDir())
	require.NoError(t, err)

	_, ok, err := kv.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "k", "v"))
	got, ok, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", got)

	require.NoError(t, kv.Delete(ctx, "k"))
	_, ok, err = kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}
