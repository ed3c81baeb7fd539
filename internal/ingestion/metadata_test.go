package ingestion

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewMetadata(t *testing.T) {
	before := time.Now().UTC()
	meta := NewMetadata("Senior Go Engineer at Acme", "https://example.com/job")

	assert.Equal(t, "https://example.com/job", meta.URL)
	assert.Len(t, meta.ContentHash, 64)
	assert.False(t, meta.FetchedAt.Before(before))
	assert.Equal(t, time.UTC, meta.FetchedAt.Location())
}

func TestNewMetadata_HashTracksContent(t *testing.T) {
	a := NewMetadata("posting text", "")
	b := NewMetadata("different posting text", "")
	again := NewMetadata("posting text", "")

	assert.NotEqual(t, a.ContentHash, b.ContentHash)
	assert.Equal(t, a.ContentHash, again.ContentHash)
	assert.Empty(t, a.URL)
}
