package sitecontent

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewInputValidate(t *testing.T) {
	cases := []struct {
		name    string
		in      ReviewInput
		wantErr string
	}{
		{
			name: "complete",
			in:   ReviewInput{AuthorName: "The Smiths", TestimonialText: "Wonderful pup!", IsFeatured: true},
		},
		{
			name:    "missing author",
			in:      ReviewInput{TestimonialText: "Wonderful pup!"},
			wantErr: "author_name is required",
		},
		{
			name:    "missing testimonial",
			in:      ReviewInput{AuthorName: "The Smiths"},
			wantErr: "testimonial_text is required",
		},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.in.Validate()
			if c.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.EqualError(t, err, c.wantErr)
		})
	}
}

func TestToReviewResponses(t *testing.T) {
	svc := &Service{}
	now := time.Now()

	reviews := []*Review{
		{ID: "r2", AuthorName: "Newer", TestimonialText: "Great breeder", IsFeatured: true, CreatedAt: now},
		{ID: "r1", AuthorName: "Older", TestimonialText: "Healthy and happy", CreatedAt: now.Add(-time.Hour)},
	}

	out := svc.ToReviewResponses(reviews)
	require.Len(t, out, 2)

	// Repository order (newest first) is preserved.
	assert.Equal(t, "r2", out[0].ID)
	assert.Equal(t, "Newer", out[0].AuthorName)
	assert.True(t, out[0].IsFeatured)
	assert.Equal(t, "r1", out[1].ID)
	assert.False(t, out[1].IsFeatured)
}

func TestToReviewResponsesEmpty(t *testing.T) {
	svc := &Service{}
	assert.Empty(t, svc.ToReviewResponses(nil))
}
