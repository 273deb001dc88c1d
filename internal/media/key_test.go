package media

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNamerKeyShape(t *testing.T) {
	n := NewNamer("parents", "photo.jpg")

	small := n.Key("small")
	assert.Regexp(t, regexp.MustCompile(`^parents/[0-9a-f]{8}-small-photo\.jpg$`), small)

	original := n.Key(TagOriginal)
	assert.Regexp(t, regexp.MustCompile(`^parents/[0-9a-f]{8}-photo\.jpg$`), original)

	// An empty tag behaves like the original tier.
	assert.Equal(t, original, n.Key(""))
}

func TestNamerSharesPrefixAcrossVariants(t *testing.T) {
	n := NewNamer("hero", "banner.png")

	keys := []string{n.Key("small"), n.Key("medium"), n.Key("large"), n.Key(TagOriginal)}
	prefix := strings.SplitN(strings.TrimPrefix(keys[0], "hero/"), "-", 2)[0]
	require.Len(t, prefix, 8)

	for _, k := range keys {
		assert.True(t, strings.HasPrefix(k, "hero/"+prefix+"-"), "key %q must carry the attempt prefix", k)
	}
}

func TestNamerKeysDifferAcrossAttempts(t *testing.T) {
	a := NewNamer("puppies", "pup.jpg")
	b := NewNamer("puppies", "pup.jpg")
	assert.NotEqual(t, a.Key(TagOriginal), b.Key(TagOriginal))
}

func TestSanitizeFilename(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"photo.jpg", "photo.jpg"},
		{"my photo (1).jpg", "my_photo__1_.jpg"},
		{"../../etc/passwd", "passwd"},
		{`C:\Users\me\dog.png`, "dog.png"},
		{"..hidden", "hidden"},
		{"%%%", "___"},
		{"", "file"},
		{"über-hund.jpeg", "_ber-hund.jpeg"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, sanitizeFilename(c.in), "input %q", c.in)
	}
}

func TestSanitizedKeysHaveNoTraversal(t *testing.T) {
	n := NewNamer("gallery", "../../../evil.jpg")
	key := n.Key(TagOriginal)
	assert.NotContains(t, key, "..")
	assert.Equal(t, 1, strings.Count(key, "/"), "key must stay inside its folder")
}
