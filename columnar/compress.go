package columnar

import (
	"encoding/binary"

	"github.com/kezzal/variant-go/compress"
)

// FlattenValues concatenates a column's per-row value bytes into a single
// buffer suitable for compress.Codec or for writing outside Arrow's own
// IPC framing: a 4-byte LE length prefix per row (0xFFFFFFFF marks a null
// row) followed by that row's value bytes, back to back.
func FlattenValues(col Column) []byte {
	var buf []byte

	n := col.Len()
	for i := 0; i < n; i++ {
		if col.Values.IsNull(i) {
			buf = binary.LittleEndian.AppendUint32(buf, 0xFFFFFFFF)
			continue
		}

		v := col.Values.Value(i)
		buf = binary.LittleEndian.AppendUint32(buf, uint32(len(v)))
		buf = append(buf, v...)
	}

	return buf
}

// CompressValues flattens col's values and compresses the result with
// codec, for transport or at-rest storage of a batch's value bytes
// independent of Arrow's own IPC compression.
func CompressValues(col Column, codec compress.Codec) ([]byte, error) {
	return codec.Compress(FlattenValues(col))
}
