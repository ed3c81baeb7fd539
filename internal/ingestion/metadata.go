package ingestion

import (
	"crypto/sha256"
	"encoding/hex"
	"time"
)

// Metadata records where an ingested posting came from and when.
type Metadata struct {
	URL         string    `json:"url,omitempty"`
	Platform    string    `json:"platform,omitempty"`
	FetchedAt   time.Time `json:"fetched_at"`
	ContentHash string    `json:"content_hash"`
}

// NewMetadata stamps the fetch time and a SHA-256 digest of the cleaned
// posting text, so re-ingesting an unchanged page is detectable.
func NewMetadata(content, url string) *Metadata {
	sum := sha256.Sum256([]byte(content))
	return &Metadata{
		URL:         url,
		FetchedAt:   time.Now().UTC(),
		ContentHash: hex.EncodeToString(sum[:]),
	}
}
