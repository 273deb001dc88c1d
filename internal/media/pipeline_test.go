package media

import (
	"context"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStorage records uploads and serves canned signed URLs. failOn, when
// non-empty, makes Upload fail for keys containing that substring.
type fakeStorage struct {
	mu      sync.Mutex
	uploads []fakeUpload
	deletes []string
	mints   int
	failOn  string
	signErr error
}

type fakeUpload struct {
	key         string
	size        int64
	contentType string
}

func (f *fakeStorage) Upload(_ context.Context, key string, reader io.Reader, size int64, contentType string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failOn != "" && strings.Contains(key, f.failOn) {
		return errors.New("backend unavailable")
	}
	f.uploads = append(f.uploads, fakeUpload{key: key, size: size, contentType: contentType})
	return nil
}

func (f *fakeStorage) SignedURL(_ context.Context, key string, _ time.Duration) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.signErr != nil {
		return "", f.signErr
	}
	f.mints++
	return fmt.Sprintf("https://store.example/%s?sig=%d", key, f.mints), nil
}

func (f *fakeStorage) Delete(_ context.Context, key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deletes = append(f.deletes, key)
	return nil
}

func (f *fakeStorage) List(_ context.Context, prefix string) ([]string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var keys []string
	for _, u := range f.uploads {
		if strings.HasPrefix(u.key, prefix) {
			keys = append(keys, u.key)
		}
	}
	return keys, nil
}

func TestPipelineStoreResponsive(t *testing.T) {
	store := &fakeStorage{}
	p := NewPipeline(store, DefaultTiers())

	asset, err := p.Store(context.Background(), jpegImage(t, 1600, 1200), "photo.jpg", "parents", true)
	require.NoError(t, err)

	require.Len(t, asset, 4)
	assert.Regexp(t, regexp.MustCompile(`^parents/[0-9a-f]{8}-small-photo\.jpg$`), asset["small"])
	assert.Regexp(t, regexp.MustCompile(`^parents/[0-9a-f]{8}-medium-photo\.jpg$`), asset["medium"])
	assert.Regexp(t, regexp.MustCompile(`^parents/[0-9a-f]{8}-large-photo\.jpg$`), asset["large"])
	assert.Regexp(t, regexp.MustCompile(`^parents/[0-9a-f]{8}-photo\.jpg$`), asset.OriginalKey())

	// All variants of one attempt share the disambiguating prefix.
	prefix := strings.SplitN(strings.TrimPrefix(asset.OriginalKey(), "parents/"), "-", 2)[0]
	for tag, key := range asset {
		assert.True(t, strings.HasPrefix(key, "parents/"+prefix+"-"), "variant %s key %q", tag, key)
	}

	require.Len(t, store.uploads, 4)
	for _, u := range store.uploads {
		assert.Equal(t, "image/jpeg", u.contentType)
		assert.Positive(t, u.size)
	}
}

func TestPipelineStoreSingleVariant(t *testing.T) {
	store := &fakeStorage{}
	p := NewPipeline(store, DefaultTiers())

	asset, err := p.Store(context.Background(), jpegImage(t, 800, 600), "alt.jpg", "parents_alternates", false)
	require.NoError(t, err)

	require.Len(t, asset, 1)
	assert.Regexp(t, regexp.MustCompile(`^parents_alternates/[0-9a-f]{8}-alt\.jpg$`), asset.OriginalKey())
	assert.Len(t, store.uploads, 1)
}

func TestPipelineStoreCorruptInputUploadsNothing(t *testing.T) {
	store := &fakeStorage{}
	p := NewPipeline(store, DefaultTiers())

	asset, err := p.Store(context.Background(), []byte("corrupt"), "photo.jpg", "parents", true)
	assert.ErrorIs(t, err, ErrDecode)
	assert.Nil(t, asset)
	assert.Empty(t, store.uploads, "a decode failure must not touch the backend")
}

func TestPipelineStoreAbortsBatchOnUploadFailure(t *testing.T) {
	store := &fakeStorage{failOn: "-medium-"}
	p := NewPipeline(store, DefaultTiers())

	asset, err := p.Store(context.Background(), jpegImage(t, 1600, 1200), "photo.jpg", "parents", true)
	require.ErrorIs(t, err, ErrUpload)
	assert.Nil(t, asset, "no keys are returned on a partial failure")

	// The small variant went up before medium failed; it stays orphaned in
	// storage rather than being rolled back.
	require.Len(t, store.uploads, 1)
	assert.Contains(t, store.uploads[0].key, "-small-")
	assert.Empty(t, store.deletes)
}
