// Package hash provides the content-hash primitive columnar.MetadataCache
// uses to dedupe metadata dictionaries across batches.
package hash

import "github.com/cespare/xxhash/v2"

// ID computes the xxHash64 of the given string.
func ID(data string) uint64 {
	return xxhash.Sum64String(data)
}
