package media

import (
	"context"
	"log"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/goldenpaws/service/internal/storage"
)

// Resolver turns stored keys into short-lived signed URLs, memoizing each
// result so repeated renders of the same image within the cache TTL reuse
// the last-issued URL instead of re-contacting the backend.
//
// The cache TTL is kept strictly below the URL expiry, so a cache hit never
// returns a URL that has already expired. Concurrent misses on one key may
// each mint a URL; signed URLs for the same key are interchangeable, so the
// duplicate work is harmless.
type Resolver struct {
	store  storage.Storage
	expiry time.Duration
	cache  *expirable.LRU[string, string]
}

// NewResolver creates a Resolver minting URLs valid for expiry and caching
// them for cacheTTL. A cacheTTL of zero, or one at or above the expiry, is
// clamped to half the expiry. maxEntries bounds the cache size.
func NewResolver(store storage.Storage, expiry, cacheTTL time.Duration, maxEntries int) *Resolver {
	if cacheTTL <= 0 || cacheTTL >= expiry {
		cacheTTL = expiry / 2
	}
	if maxEntries <= 0 {
		maxEntries = 1024
	}
	return &Resolver{
		store:  store,
		expiry: expiry,
		cache:  expirable.NewLRU[string, string](maxEntries, nil, cacheTTL),
	}
}

// Resolve returns a signed URL for key, or "" when key is empty or the
// backend fails. Callers routinely hold optional image fields, and a missing
// preview must not break the surrounding page, so this never returns an
// error; failures are logged and rendered as an absent image.
func (r *Resolver) Resolve(ctx context.Context, key string) string {
	if key == "" {
		return ""
	}

	if url, ok := r.cache.Get(key); ok {
		return url
	}

	url, err := r.store.SignedURL(ctx, key, r.expiry)
	if err != nil {
		log.Printf("media: sign %q failed: %v", key, err)
		return ""
	}

	r.cache.Add(key, url)
	return url
}

// Invalidate drops the cached URL for key, forcing the next Resolve to mint
// a fresh one. Used when the underlying object is replaced or deleted.
func (r *Resolver) Invalidate(key string) {
	r.cache.Remove(key)
}
