package columnar

import (
	"bytes"
	"sync"

	"github.com/kezzal/variant-go/internal/hash"
)

// MetadataCache interns metadata buffers by content hash, so that batches
// whose rows collect the same set of dictionary keys reuse one []byte
// instead of rebuilding and reallocating an equal buffer every time.
type MetadataCache struct {
	mu   sync.Mutex
	byID map[uint64][]byte
}

// NewMetadataCache returns an empty cache, safe for concurrent use.
func NewMetadataCache() *MetadataCache {
	return &MetadataCache{byID: make(map[uint64][]byte)}
}

// Intern returns a buffer byte-equal to built, reusing a prior result if
// one with the same content hash was already interned.
func (c *MetadataCache) Intern(built []byte) []byte {
	id := hash.ID(string(built))

	c.mu.Lock()
	defer c.mu.Unlock()

	if cached, ok := c.byID[id]; ok && bytes.Equal(cached, built) {
		return cached
	}

	c.byID[id] = built

	return built
}
