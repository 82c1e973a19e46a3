package columnar

import (
	"github.com/kezzal/variant-go/internal/options"
)

// ingestConfig holds the optional behavior of the columnar adapters.
type ingestConfig struct {
	metaCache *MetadataCache
}

// IngestOption configures VariantsFromJSON and CastBoolToVariants.
type IngestOption = options.Option[*ingestConfig]

// WithMetadataCache interns each batch's built metadata dictionary through
// cache, so that repeated batches with an identical key set reuse one
// []byte across many Columns instead of reallocating it per batch.
func WithMetadataCache(cache *MetadataCache) IngestOption {
	return options.NoError(func(c *ingestConfig) {
		c.metaCache = cache
	})
}

func newIngestConfig(opts ...IngestOption) (*ingestConfig, error) {
	c := &ingestConfig{}
	if err := options.Apply(c, opts...); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *ingestConfig) intern(built []byte) []byte {
	if c.metaCache == nil {
		return built
	}

	return c.metaCache.Intern(built)
}
