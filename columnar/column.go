// Package columnar adapts the variant value and metadata codecs onto an
// Arrow columnar batch: a dictionary-encoded metadata child shared by a
// batch's rows, paired with a nullable binary values child.
package columnar

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"
	"github.com/apache/arrow-go/v18/arrow/memory"

	"github.com/kezzal/variant-go/metadata"
	"github.com/kezzal/variant-go/value"
)

// MetadataDictType is the Arrow type of a variant column's metadata child:
// a dictionary-encoded binary column with a 1-byte signed index.
var MetadataDictType = &arrow.DictionaryType{
	IndexType: arrow.PrimitiveTypes.Int8,
	ValueType: arrow.BinaryTypes.Binary,
}

// Column is the logical "variant" struct column described by the
// columnar surface: a metadata child (dictionary of binary) and a values
// child (nullable binary), equal length, row-aligned.
type Column struct {
	Metadata *array.Dictionary
	Values   *array.Binary
}

// Len returns the number of rows.
func (c Column) Len() int {
	return c.Values.Len()
}

// Release releases the underlying Arrow array memory.
func (c Column) Release() {
	c.Metadata.Release()
	c.Values.Release()
}

// Row opens row i as a value.Reader, with a metadata.Ref resolved for that
// row's dictionary entry. ok is false if the row is a null row (a SQL
// null, distinct from a Null primitive value).
func (c Column) Row(i int) (r value.Reader, ok bool, err error) {
	if c.Values.IsNull(i) {
		return value.Reader{}, false, nil
	}

	dictValues := c.Metadata.Dictionary().(*array.Binary)
	metaBytes := dictValues.Value(c.Metadata.GetValueIndex(i))

	ref, err := metadata.OpenMetadata(metaBytes)
	if err != nil {
		return value.Reader{}, false, err
	}

	return value.OpenValueLE(c.Values.Value(i), &ref), true, nil
}

// rowsBuilder assembles a Column from rows that share a single metadata
// buffer, matching the columnar surface's dictionary-of-one-entry shape.
type rowsBuilder struct {
	mem            memory.Allocator
	sharedMetadata []byte
	valuesBuilder  *array.BinaryBuilder
	numRows        int
}

func newRowsBuilder(mem memory.Allocator, sharedMetadata []byte) *rowsBuilder {
	return &rowsBuilder{
		mem:            mem,
		sharedMetadata: sharedMetadata,
		valuesBuilder:  array.NewBinaryBuilder(mem, arrow.BinaryTypes.Binary),
	}
}

func (b *rowsBuilder) appendValue(buf []byte) {
	b.valuesBuilder.Append(buf)
	b.numRows++
}

func (b *rowsBuilder) appendNull() {
	b.valuesBuilder.AppendNull()
	b.numRows++
}

func (b *rowsBuilder) finish() Column {
	dictValuesBuilder := array.NewBinaryBuilder(b.mem, arrow.BinaryTypes.Binary)
	dictValuesBuilder.Append(b.sharedMetadata)
	dictValues := dictValuesBuilder.NewBinaryArray()
	dictValuesBuilder.Release()

	indexBuilder := array.NewInt8Builder(b.mem)
	for i := 0; i < b.numRows; i++ {
		indexBuilder.Append(0)
	}
	indices := indexBuilder.NewInt8Array()
	indexBuilder.Release()

	metaCol := array.NewDictionaryArray(MetadataDictType, indices, dictValues)
	indices.Release()
	dictValues.Release()

	values := b.valuesBuilder.NewBinaryArray()
	b.valuesBuilder.Release()

	return Column{Metadata: metaCol, Values: values}
}
