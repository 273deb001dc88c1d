// Package media implements the image ingestion pipeline: it normalizes an
// uploaded image, derives responsive variants, stores each under a
// deterministic key, and resolves stored keys to short-lived signed URLs.
package media

import (
	"path"
	"strings"

	"github.com/google/uuid"
)

// Namer derives storage keys for all variants of one upload attempt. The
// random prefix is drawn once per attempt so every variant of the same
// logical image shares it and the group is recognizable in the bucket.
type Namer struct {
	folder   string
	prefix   string
	filename string
}

// NewNamer creates a Namer for one upload attempt. folder is the logical
// namespace ("parents", "hero", ...); filename is sanitized before use.
func NewNamer(folder, filename string) Namer {
	return Namer{
		folder:   folder,
		prefix:   randomPrefix(),
		filename: sanitizeFilename(filename),
	}
}

// Key returns the storage key for the given variant tag. The original
// variant omits the tag segment:
//
//	parents/3f2a9c1d-small-photo.jpg
//	parents/3f2a9c1d-photo.jpg        (original)
func (n Namer) Key(tag string) string {
	if tag == "" || tag == TagOriginal {
		return n.folder + "/" + n.prefix + "-" + n.filename
	}
	return n.folder + "/" + n.prefix + "-" + tag + "-" + n.filename
}

// randomPrefix returns 8 hex characters drawn fresh per upload attempt.
func randomPrefix() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
}

// sanitizeFilename strips directory components and reduces the name to
// characters safe for use as an object-storage path segment. Anything
// outside [A-Za-z0-9._-] becomes an underscore.
func sanitizeFilename(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return "file"
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	cleaned := strings.Trim(b.String(), ".")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}
