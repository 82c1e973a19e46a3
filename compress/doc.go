// Package compress provides compression and decompression codecs for the
// variant columnar adapter's values buffer.
//
// A variant column's values buffer is a concatenation of individually
// self-describing variant values (see the value package). Once a batch has
// been built, this package can optionally shrink it further with a
// general-purpose byte compressor. Compression is opt-in and orthogonal to
// the wire format: a reader always decompresses a column's values buffer (if
// compressed) before handing bytes to the value package, so value.Reader
// itself never needs to know a column was compressed.
//
// # Supported Algorithms
//
//   - None: No compression (fastest, largest)
//   - Zstd: Excellent compression ratio, moderate speed
//   - S2: Balanced compression and speed
//   - LZ4: Fast decompression, moderate compression
//
// # Architecture
//
// The package defines three core interfaces:
//
//	type Compressor interface {
//	    Compress(data []byte) ([]byte, error)
//	}
//
//	type Decompressor interface {
//	    Decompress(data []byte) ([]byte, error)
//	}
//
//	type Codec interface {
//	    Compressor
//	    Decompressor
//	}
//
// # Algorithm Selection Guide
//
// | Workload                   | Recommended | Reason                         |
// |----------------------------|-------------|--------------------------------|
// | Storage-constrained batch  | Zstd        | Best compression ratio         |
// | Streaming ingestion        | S2          | Balanced speed and compression |
// | Read-heavy query path      | LZ4         | Fastest decompression          |
// | CPU-constrained            | None        | No compression overhead        |
//
// String-heavy columns (object field names, String primitives) tend to
// compress best with Zstd; columns dominated by small fixed-width numeric
// primitives see smaller gains from any algorithm.
//
// # Thread Safety
//
// All codec implementations are safe to share across goroutines.
//
// # Error Handling
//
// Decompression errors occur on corrupted input, a mismatched algorithm, or
// a decompressed size that overflows internal limits. Zstd errors are wrapped
// with context; S2 and LZ4 return their library's errors unwrapped.
//
// # Usage
//
//	codec, err := compress.GetCodec(compress.Zstd)
//	if err != nil {
//	    return err
//	}
//	compressed, err := codec.Compress(valuesBuf)
package compress
