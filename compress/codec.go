package compress

import (
	"fmt"
)

// Type identifies the compression algorithm applied to a variant column's
// values buffer.
//
// Compression is an optional layer on top of the columnar adapter: it
// operates on the concatenated, length-prefixed value bytes of a batch,
// after encoding, and is transparent to the core codec (readers always
// see decompressed bytes once a column is opened).
type Type uint8

const (
	// None applies no compression.
	None Type = 0x1
	// Zstd applies Zstandard compression.
	Zstd Type = 0x2
	// S2 applies S2 (Snappy-compatible) compression.
	S2 Type = 0x3
	// LZ4 applies LZ4 compression.
	LZ4 Type = 0x4
)

func (t Type) String() string {
	switch t {
	case None:
		return "None"
	case Zstd:
		return "Zstd"
	case S2:
		return "S2"
	case LZ4:
		return "LZ4"
	default:
		return "Unknown"
	}
}

// Compressor compresses a batch's columnar value bytes prior to storage.
type Compressor interface {
	// Compress compresses the input data and returns the compressed result.
	//
	// Memory management:
	//   - Returned slice is owned by the caller (NoOpCompressor returns the input slice itself)
	//   - Input slice is not modified
	//   - Internal buffers may be reused for efficiency
	Compress(data []byte) ([]byte, error)
}

// Decompressor reverses a Compressor's transformation.
//
// Thread Safety: Decompressor implementations must be safe for concurrent use
// or document their thread safety requirements clearly.
type Decompressor interface {
	// Decompress decompresses the input data and returns the original result.
	//
	// Returns an error if the input is corrupted or was compressed with an
	// incompatible algorithm.
	Decompress(data []byte) ([]byte, error)
}

// Codec combines both compression and decompression capabilities.
type Codec interface {
	Compressor
	Decompressor
}

// CompressionStats reports the outcome of a compress/decompress cycle on a
// column's values buffer, useful when deciding whether compression is worth
// enabling for a given workload.
type CompressionStats struct {
	// Algorithm identifies the compression algorithm used
	Algorithm Type

	// OriginalSize is the size of input data before compression
	OriginalSize int64

	// CompressedSize is the size of data after compression
	CompressedSize int64

	// Ratio is the ratio of compressed size to original size (< 1.0 for compression)
	Ratio float64

	// CompressionTimeNs is the time taken to compress the data
	CompressionTimeNs int64

	// DecompressionTimeNs is the time taken to decompress the data (if applicable)
	DecompressionTimeNs int64
}

// CompressionRatio returns the compression ratio (compressed size / original size).
//
// Values less than 1.0 indicate successful compression.
// Values equal to 1.0 indicate no compression benefit.
func (s CompressionStats) CompressionRatio() float64 {
	if s.OriginalSize == 0 {
		return 0.0
	}

	return float64(s.CompressedSize) / float64(s.OriginalSize)
}

// SpaceSavings returns the space savings as a percentage (0-100%).
func (s CompressionStats) SpaceSavings() float64 {
	return (1.0 - s.CompressionRatio()) * 100.0
}

// CreateCodec is a factory function that creates a Codec based on the specified compression type.
//
// Parameters:
//   - compressionType: Type of compression (None, Zstd, S2, or LZ4)
//   - target: Description of target usage (for error messages)
func CreateCodec(compressionType Type, target string) (Codec, error) {
	switch compressionType {
	case None:
		return NewNoOpCompressor(), nil
	case Zstd:
		return NewZstdCompressor(), nil
	case S2:
		return NewS2Compressor(), nil
	case LZ4:
		return NewLZ4Compressor(), nil
	default:
		return nil, fmt.Errorf("invalid %s compression: %s", target, compressionType)
	}
}

var builtinCodecs = map[Type]Codec{
	None: NewNoOpCompressor(),
	Zstd: NewZstdCompressor(),
	S2:   NewS2Compressor(),
	LZ4:  NewLZ4Compressor(),
}

// GetCodec retrieves a built-in Codec for the specified compression type.
func GetCodec(compressionType Type) (Codec, error) {
	if codec, ok := builtinCodecs[compressionType]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression type: %s", compressionType)
}
