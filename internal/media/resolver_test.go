package media

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEmptyKeySkipsBackend(t *testing.T) {
	store := &fakeStorage{}
	r := NewResolver(store, time.Hour, 45*time.Minute, 16)

	assert.Empty(t, r.Resolve(context.Background(), ""))
	assert.Zero(t, store.mints)
}

func TestResolveCachesWithinTTL(t *testing.T) {
	store := &fakeStorage{}
	r := NewResolver(store, time.Hour, 45*time.Minute, 16)

	first := r.Resolve(context.Background(), "parents/abc123de-photo.jpg")
	require.NotEmpty(t, first)
	second := r.Resolve(context.Background(), "parents/abc123de-photo.jpg")

	assert.Equal(t, first, second, "a cache hit returns the identical URL")
	assert.Equal(t, 1, store.mints, "exactly one mint within the TTL")
}

func TestResolveMintsAgainAfterTTL(t *testing.T) {
	store := &fakeStorage{}
	r := NewResolver(store, 500*time.Millisecond, 50*time.Millisecond, 16)

	first := r.Resolve(context.Background(), "hero/deadbeef-banner.png")
	require.Equal(t, 1, store.mints)

	time.Sleep(80 * time.Millisecond)

	second := r.Resolve(context.Background(), "hero/deadbeef-banner.png")
	assert.Equal(t, 2, store.mints, "expired entry forces a fresh mint")
	assert.NotEqual(t, first, second)
}

func TestResolveDistinctKeysMintSeparately(t *testing.T) {
	store := &fakeStorage{}
	r := NewResolver(store, time.Hour, 45*time.Minute, 16)

	a := r.Resolve(context.Background(), "gallery/11111111-a.jpg")
	b := r.Resolve(context.Background(), "gallery/22222222-b.jpg")

	assert.NotEqual(t, a, b)
	assert.Equal(t, 2, store.mints)
}

func TestResolveBackendFailureDegradesToEmpty(t *testing.T) {
	store := &fakeStorage{signErr: errors.New("backend down")}
	r := NewResolver(store, time.Hour, 45*time.Minute, 16)

	assert.Empty(t, r.Resolve(context.Background(), "about/cafebabe-img.jpg"))

	// Failures are not cached: once the backend recovers, resolution works.
	store.mu.Lock()
	store.signErr = nil
	store.mu.Unlock()
	assert.NotEmpty(t, r.Resolve(context.Background(), "about/cafebabe-img.jpg"))
}

func TestResolverClampsCacheTTLBelowExpiry(t *testing.T) {
	store := &fakeStorage{}

	// A misconfigured TTL at or above the expiry would let a hit hand out a
	// dead URL; the constructor clamps it instead.
	r := NewResolver(store, time.Hour, 2*time.Hour, 16)
	assert.NotEmpty(t, r.Resolve(context.Background(), "hero/12345678-x.jpg"))
	assert.Equal(t, 1, store.mints)
}

func TestInvalidateForcesFreshMint(t *testing.T) {
	store := &fakeStorage{}
	r := NewResolver(store, time.Hour, 45*time.Minute, 16)

	key := "puppies/87654321-pup.jpg"
	first := r.Resolve(context.Background(), key)
	r.Invalidate(key)
	second := r.Resolve(context.Background(), key)

	assert.NotEqual(t, first, second)
	assert.Equal(t, 2, store.mints)
}
