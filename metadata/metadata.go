// Package metadata implements the variant metadata buffer: a sorted,
// deduplicated string dictionary shared by one or more value buffers.
package metadata

import (
	"sort"

	"github.com/kezzal/variant-go/bitwidth"
	"github.com/kezzal/variant-go/errs"
)

const (
	version         = 1
	sortedFlagBit   = 1 << 4
	offsetSizeShift = 6
)

// BuildMetadata deduplicates and sorts strings, and encodes them into a
// metadata buffer: header(1) | dictionary_size(W) | offsets[n+1](W each) |
// concatenated string bytes.
//
// The returned buffer always has the sorted_strings flag set: BuildMetadata
// sorts its input itself, so every buffer it produces is binary-searchable.
func BuildMetadata(strings []string) []byte {
	dict := dedupeSorted(strings)

	total := 0
	for _, s := range dict {
		total += len(s)
	}

	w := bitwidth.WidthFor(int64(total))
	if n := bitwidth.WidthFor(int64(len(dict))); n > w {
		w = n
	}

	buf := make([]byte, 0, 2+int(w)*(len(dict)+2)+total)

	header := byte(version) | sortedFlagBit | (bitwidth.MinusOne(w) << offsetSizeShift)
	buf = append(buf, header)
	buf = bitwidth.WriteLE(buf, int64(len(dict)), w)

	offset := int64(0)
	buf = bitwidth.WriteLE(buf, offset, w)
	for _, s := range dict {
		offset += int64(len(s))
		buf = bitwidth.WriteLE(buf, offset, w)
	}

	for _, s := range dict {
		buf = append(buf, s...)
	}

	return buf
}

// dedupeSorted returns the distinct values of strings in ascending
// byte-lexicographic order.
func dedupeSorted(strings []string) []string {
	if len(strings) == 0 {
		return nil
	}

	uniq := make(map[string]struct{}, len(strings))
	for _, s := range strings {
		uniq[s] = struct{}{}
	}

	out := make([]string, 0, len(uniq))
	for s := range uniq {
		out = append(out, s)
	}

	sort.Strings(out)

	return out
}

// Ref is a zero-copy view over an encoded metadata buffer. It borrows the
// byte slice it was opened from; the caller must keep that slice alive for
// the lifetime of Ref.
type Ref struct {
	raw     []byte
	offW    bitwidth.Width
	count   int
	offsOff int // byte offset of the offsets array within raw
	dataOff int // byte offset of the concatenated string bytes within raw
}

// OpenMetadata parses the header and offsets table of an encoded metadata
// buffer without copying the string bytes.
func OpenMetadata(raw []byte) (Ref, error) {
	if len(raw) < 1 {
		return Ref{}, errs.ErrTruncatedBuffer
	}

	header := raw[0]
	w := bitwidth.FromMinusOne(header >> offsetSizeShift)

	if len(raw) < 1+int(w) {
		return Ref{}, errs.ErrTruncatedBuffer
	}

	count64, err := bitwidth.ReadLE(raw, 1, w)
	if err != nil {
		return Ref{}, err
	}
	count := int(count64)

	offsOff := 1 + int(w)
	dataOff := offsOff + int(w)*(count+1)
	if dataOff > len(raw) {
		return Ref{}, errs.ErrTruncatedBuffer
	}

	last, err := bitwidth.ReadLE(raw, offsOff+int(w)*count, w)
	if err != nil {
		return Ref{}, err
	}
	if dataOff+int(last) > len(raw) {
		return Ref{}, errs.ErrTruncatedBuffer
	}

	return Ref{raw: raw, offW: w, count: count, offsOff: offsOff, dataOff: dataOff}, nil
}

// Version returns the metadata format version, encoded in the header's low
// 4 bits.
func (r Ref) Version() int {
	return int(r.raw[0] & 0x0f)
}

// SortedFlag reports whether the dictionary is sorted ascending. Every
// buffer produced by BuildMetadata has this set; it exists so a reader
// can refuse to binary-search a dictionary that isn't.
func (r Ref) SortedFlag() bool {
	return r.raw[0]&sortedFlagBit != 0
}

// Len returns the number of distinct strings in the dictionary.
func (r Ref) Len() int {
	return r.count
}

// Get returns a copy of the i'th dictionary string.
func (r Ref) Get(i int) (string, error) {
	if i < 0 || i >= r.count {
		return "", errs.ErrKeyNotFound
	}

	start, err := bitwidth.ReadLE(r.raw, r.offsOff+int(r.offW)*i, r.offW)
	if err != nil {
		return "", err
	}
	end, err := bitwidth.ReadLE(r.raw, r.offsOff+int(r.offW)*(i+1), r.offW)
	if err != nil {
		return "", err
	}

	return string(r.raw[r.dataOff+int(start) : r.dataOff+int(end)]), nil
}

// Find binary-searches the dictionary for key and returns its index.
// Returns ErrKeyNotFound if the dictionary does not contain key, and
// ErrUnsortedStrings if the dictionary isn't sorted (SortedFlag false).
func (r Ref) Find(key string) (int, error) {
	if !r.SortedFlag() {
		return 0, errs.ErrUnsortedStrings
	}

	lo, hi := 0, r.count
	for lo < hi {
		mid := (lo + hi) / 2

		s, err := r.Get(mid)
		if err != nil {
			return 0, err
		}

		switch {
		case s == key:
			return mid, nil
		case s < key:
			lo = mid + 1
		default:
			hi = mid
		}
	}

	return 0, errs.ErrKeyNotFound
}
