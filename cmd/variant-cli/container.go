package main

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/kezzal/variant-go/errs"
)

// writeContainer writes meta and val to w as a single file: a 4-byte LE
// length prefix for meta, then meta, then val. This is variant-cli's own
// on-disk framing, not part of the wire format those two buffers hold.
func writeContainer(w io.Writer, meta, val []byte) error {
	var lenBuf [4]byte
	binary.LittleEndian.PutUint32(lenBuf[:], uint32(len(meta)))

	if _, err := w.Write(lenBuf[:]); err != nil {
		return fmt.Errorf("writing metadata length: %w", err)
	}
	if _, err := w.Write(meta); err != nil {
		return fmt.Errorf("writing metadata: %w", err)
	}
	if _, err := w.Write(val); err != nil {
		return fmt.Errorf("writing value: %w", err)
	}

	return nil
}

// readContainer splits raw (a whole file read by writeContainer) back into
// its metadata and value buffers.
func readContainer(raw []byte) (meta, val []byte, err error) {
	if len(raw) < 4 {
		return nil, nil, fmt.Errorf("%w: container shorter than length prefix", errs.ErrTruncatedBuffer)
	}

	metaLen := int(binary.LittleEndian.Uint32(raw[:4]))
	if metaLen < 0 || len(raw) < 4+metaLen {
		return nil, nil, fmt.Errorf("%w: container metadata length exceeds file size", errs.ErrTruncatedBuffer)
	}

	return raw[4 : 4+metaLen], raw[4+metaLen:], nil
}
