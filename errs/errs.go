// Package errs defines the sentinel errors returned across the variant
// codec, so callers can classify failures with errors.Is instead of string
// matching.
package errs

import "errors"

// Malformed buffer errors: truncated input, invalid header bits, impossible
// widths, or non-UTF-8 string data.
var (
	ErrTruncatedBuffer  = errors.New("variant: truncated buffer")
	ErrInvalidHeader    = errors.New("variant: invalid header byte")
	ErrInvalidWidth     = errors.New("variant: invalid offset or field-id width")
	ErrInvalidUTF8      = errors.New("variant: invalid UTF-8 string")
	ErrUnsortedStrings  = errors.New("variant: metadata dictionary is not sorted")
	ErrNonMonotonicOffs = errors.New("variant: offsets are not monotonically increasing")
)

// Type-mismatch errors: an extractor or view constructor was called against
// a value whose basic type or primitive id disagrees with what was asked
// for.
var (
	ErrTypeMismatch = errors.New("variant: type mismatch")
	ErrKindMismatch = errors.New("variant: basic type mismatch")
)

// Builder errors.
var (
	ErrKeyNotFound    = errors.New("variant: key not found in metadata")
	ErrOutOfRange     = errors.New("variant: value out of range for its declared width")
	ErrScaleTooLarge  = errors.New("variant: decimal scale exceeds 38")
	ErrWrongAppendCnt = errors.New("variant: builder received wrong number of appends")
)

// Columnar / JSON ingestion errors.
var (
	ErrUnsupportedInput = errors.New("variant: unsupported input column type")
	ErrParse            = errors.New("variant: JSON could not be parsed")
)
