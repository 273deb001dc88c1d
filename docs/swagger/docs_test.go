package swagger

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Every route the API mounts must appear in the generated document, so a
// forgotten regeneration shows up here instead of as a silently stale UI.
func TestSpecCoversAllMountedRoutes(t *testing.T) {
	routes := []string{
		"/auth/login",
		"/home",
		"/parents",
		"/parents/{id}",
		"/puppies",
		"/puppies/{id}",
		"/admin/parents",
		"/admin/parents/{id}",
		"/admin/puppies",
		"/admin/puppies/{id}",
		"/admin/hero",
		"/admin/about",
		"/admin/gallery",
		"/admin/gallery/{id}",
		"/admin/reviews",
		"/admin/reviews/{id}",
		"/admin/banner",
	}
	for _, route := range routes {
		assert.True(t, strings.Contains(docTemplate, `"`+route+`"`), "route %s missing from swagger paths", route)
	}
}
