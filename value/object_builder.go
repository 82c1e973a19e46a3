package value

import (
	"encoding/binary"
	"sort"

	"github.com/kezzal/variant-go/bitwidth"
	"github.com/kezzal/variant-go/errs"
	"github.com/kezzal/variant-go/metadata"
)

type fieldOffset struct {
	fieldID int
	offset  int
}

// ObjectBuilder accumulates (field id, value) pairs into a scratch buffer
// and emits an Object value into its target buffer on Finish.
//
// The field-offset width and the field-id width both depend on
// information only known at Finish time (the total scratch length and the
// largest field id actually appended), so the header is written in two
// passes: a partial header at construction, patched in full at Finish.
type ObjectBuilder struct {
	target       []byte
	headerOffset int
	meta         *metadata.Ref
	n            int
	pairs        []fieldOffset
	scratch      []byte
}

// NewObjectBuilder starts building an Object of n fields into target,
// resolving field names against meta.
func NewObjectBuilder(target []byte, meta *metadata.Ref, n int) *ObjectBuilder {
	isLarge := n > 127

	headerOffset := len(target)
	// Provisional field-id width, bounded by n. Finish recomputes this
	// from the observed max field id and patches the header in place,
	// since a sparse metadata dictionary can make max_field_id > n.
	fw := bitwidth.WidthFor(int64(n))

	header := byte(BasicObject) | (bitwidth.MinusOne(fw) << 4)
	if isLarge {
		header |= 1 << 6
	}
	target = append(target, header)

	if isLarge {
		target = binary.LittleEndian.AppendUint32(target, uint32(n))
	} else {
		target = bitwidth.WriteLE(target, int64(n), bitwidth.W1)
	}

	return &ObjectBuilder{
		target:       target,
		headerOffset: headerOffset,
		meta:         meta,
		n:            n,
		pairs:        make([]fieldOffset, 0, n),
	}
}

// Append resolves key to a field id via the builder's metadata and records
// value at that field id. Returns ErrKeyNotFound if key is absent from the
// metadata dictionary. Appending the same key twice is undefined behavior;
// callers must not do it.
func (b *ObjectBuilder) Append(key string, value []byte) error {
	id, err := b.meta.Find(key)
	if err != nil {
		return errs.ErrKeyNotFound
	}

	b.pairs = append(b.pairs, fieldOffset{fieldID: id, offset: len(b.scratch)})
	b.scratch = append(b.scratch, value...)

	return nil
}

// Finish computes the final offset width and field-id width, patches the
// header, emits field ids and offsets sorted by field id, and appends the
// scratch buffer. Returns the extended target buffer.
func (b *ObjectBuilder) Finish() []byte {
	finalOffset := len(b.scratch)
	ow := bitwidth.WidthFor(int64(finalOffset))

	maxFieldID := 0
	for _, p := range b.pairs {
		if p.fieldID > maxFieldID {
			maxFieldID = p.fieldID
		}
	}
	fw := bitwidth.WidthFor(int64(maxFieldID))

	header := b.target[b.headerOffset]
	header &^= 0b00111100 // clear OW and FW bits, keep basic type and is_large
	header |= bitwidth.MinusOne(ow) << 2
	header |= bitwidth.MinusOne(fw) << 4
	b.target[b.headerOffset] = header

	sort.Slice(b.pairs, func(i, j int) bool { return b.pairs[i].fieldID < b.pairs[j].fieldID })

	for _, p := range b.pairs {
		b.target = bitwidth.WriteLE(b.target, int64(p.fieldID), fw)
	}
	for _, p := range b.pairs {
		b.target = bitwidth.WriteLE(b.target, int64(p.offset), ow)
	}
	b.target = bitwidth.WriteLE(b.target, int64(finalOffset), ow)

	return append(b.target, b.scratch...)
}
