package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKeyHex = "0000000000000000000000000000000000000000000000000000000000000000"

func TestNewSessionStoreValidation(t *testing.T) {
	_, err := NewSessionStore("zz")
	assert.Error(t, err)

	_, err = NewSessionStore("0011") // too short
	assert.Error(t, err)

	store, err := NewSessionStore(testKeyHex)
	assert.NoError(t, err)
	assert.NotNil(t, store)
}

func TestSessionStoreEncryptDecrypt(t *testing.T) {
	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)

	enc, err := store.encrypt([]byte(`{"x":1}`))
	assert.NoError(t, err)
	assert.NotEmpty(t, enc)

	dec, err := store.decrypt(enc)
	assert.NoError(t, err)
	assert.Contains(t, string(dec), `"x":1`)

	_, err = store.decrypt("00") // shorter than the GCM nonce
	assert.Error(t, err)

	_, err = store.decrypt("zz-not-hex")
	assert.Error(t, err)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)

	ctx := context.Background()
	data := &SessionData{
		UserID:       "u-1",
		Phone:        "13812345678",
		AccessToken:  "access",
		RefreshToken: "refresh",
	}
	require.NoError(t, store.CreateSession(ctx, "sid-1", data, time.Minute))

	// stored value is ciphertext, not the raw session JSON
	raw, err := mr.Get("session:sid-1")
	require.NoError(t, err)
	assert.NotContains(t, raw, "13812345678")

	got, err := store.GetSession(ctx, "sid-1")
	require.NoError(t, err)
	assert.Equal(t, data, got)

	require.NoError(t, store.DeleteSession(ctx, "sid-1"))
	_, err = store.GetSession(ctx, "sid-1")
	assert.Error(t, err)
}

func TestSessionStoreExpiry(t *testing.T) {
	mr := miniredis.RunT(t)
	SetClient(goredis.NewClient(&goredis.Options{Addr: mr.Addr()}))

	store, err := NewSessionStore(testKeyHex)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, store.CreateSession(ctx, "sid-ttl", &SessionData{UserID: "u"}, time.Minute))

	mr.FastForward(2 * time.Minute)

	_, err = store.GetSession(ctx, "sid-ttl")
	assert.Error(t, err)
}
