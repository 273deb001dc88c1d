package media

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/goldenpaws/service/internal/storage"
)

// ErrUpload is returned when writing a variant to the storage backend fails.
// Earlier variants of the same batch are not rolled back.
var ErrUpload = errors.New("media: variant upload failed")

// Asset is the logical result of one upload: variant tag to storage key.
// Callers persist the keys as opaque strings; the pipeline keeps no state.
type Asset map[string]string

// OriginalKey returns the key of the full-resolution variant.
func (a Asset) OriginalKey() string {
	return a[TagOriginal]
}

// File is an uploaded file handed over from the HTTP layer.
type File struct {
	Name string
	Data []byte
}

// Pipeline ties the variant generator to the storage backend. Construct it
// once at startup and share it; it is safe for concurrent use.
type Pipeline struct {
	store storage.Storage
	tiers []Tier
}

// NewPipeline creates a Pipeline uploading through store. tiers defines the
// responsive size classes; pass DefaultTiers() unless the caller needs
// custom bounds.
func NewPipeline(store storage.Storage, tiers []Tier) *Pipeline {
	return &Pipeline{store: store, tiers: tiers}
}

// Store normalizes raw, generates the requested variants, and uploads each
// under a key derived from folder and filename. With responsive=true the
// returned Asset holds one key per tier plus "original"; otherwise just
// "original".
//
// Uploads run sequentially and stop at the first failure. Variants already
// uploaded in the same attempt are left in place; the sweep command reclaims
// them (they are orphans only, never referenced, since the caller must not
// persist an Asset on error).
func (p *Pipeline) Store(ctx context.Context, raw []byte, filename, folder string, responsive bool) (Asset, error) {
	variants, contentType, err := Generate(raw, p.tiers, responsive)
	if err != nil {
		return nil, err
	}

	namer := NewNamer(folder, filename)
	asset := make(Asset, len(variants))
	for _, v := range variants {
		key := namer.Key(v.Tag)
		if err := p.store.Upload(ctx, key, bytes.NewReader(v.Data), int64(len(v.Data)), contentType); err != nil {
			return nil, fmt.Errorf("%w: %s under %q: %s", ErrUpload, v.Tag, key, err)
		}
		asset[v.Tag] = key
	}

	log.Printf("media: stored %q as %d variant(s) under %s/%s-*", filename, len(asset), folder, namer.prefix)
	return asset, nil
}
