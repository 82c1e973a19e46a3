package columnar

import (
	"testing"

	"github.com/apache/arrow-go/v18/arrow/memory"
	"github.com/stretchr/testify/require"
)

func TestCastBoolToVariants_RoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()

	bools := []bool{true, false, true}
	isNull := []bool{false, false, true}

	col, err := CastBoolToVariants(mem, bools, isNull)
	require.NoError(t, err)
	defer col.Release()

	require.Equal(t, 3, col.Len())

	r, ok, err := col.Row(0)
	require.NoError(t, err)
	require.True(t, ok)
	b, err := r.Bool()
	require.NoError(t, err)
	require.True(t, b)

	r, ok, err = col.Row(1)
	require.NoError(t, err)
	require.True(t, ok)
	b, err = r.Bool()
	require.NoError(t, err)
	require.False(t, b)

	_, ok, err = col.Row(2)
	require.NoError(t, err)
	require.False(t, ok, "row 2 should be a null row")
}

func TestCastBoolToVariants_LengthMismatch(t *testing.T) {
	mem := memory.NewGoAllocator()

	_, err := CastBoolToVariants(mem, []bool{true}, []bool{false, false})
	require.Error(t, err)
}

func TestCastBoolToVariants_SharesOneMetadataDictEntry(t *testing.T) {
	mem := memory.NewGoAllocator()

	col, err := CastBoolToVariants(mem, []bool{true, false, true}, []bool{false, false, false})
	require.NoError(t, err)
	defer col.Release()

	require.Equal(t, 1, col.Metadata.Dictionary().Len(), "bool cast has no keys, so every row shares one empty metadata entry")

	for i := 0; i < col.Len(); i++ {
		require.Equal(t, 0, col.Metadata.GetValueIndex(i))
	}
}

func TestCastBoolToVariants_WithMetadataCache(t *testing.T) {
	mem := memory.NewGoAllocator()
	cache := NewMetadataCache()

	col1, err := CastBoolToVariants(mem, []bool{true}, []bool{false}, WithMetadataCache(cache))
	require.NoError(t, err)
	defer col1.Release()

	col2, err := CastBoolToVariants(mem, []bool{false}, []bool{false}, WithMetadataCache(cache))
	require.NoError(t, err)
	defer col2.Release()

	meta1 := col1.Metadata.Dictionary().(interface{ Value(int) []byte })
	meta2 := col2.Metadata.Dictionary().(interface{ Value(int) []byte })
	require.Equal(t, meta1.Value(0), meta2.Value(0), "both batches build the same empty dictionary and should intern to equal bytes")
}

func TestCastBoolToVariants_Empty(t *testing.T) {
	mem := memory.NewGoAllocator()

	col, err := CastBoolToVariants(mem, nil, nil)
	require.NoError(t, err)
	defer col.Release()

	require.Equal(t, 0, col.Len())
}

func TestCastInt64ToVariants_RoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()

	col, err := CastInt64ToVariants(mem, []int64{-42, 7}, []bool{false, false})
	require.NoError(t, err)
	defer col.Release()

	r, ok, err := col.Row(0)
	require.NoError(t, err)
	require.True(t, ok)
	v, err := r.Int64()
	require.NoError(t, err)
	require.Equal(t, int64(-42), v)
}

func TestCastFloat64ToVariants_RoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()

	col, err := CastFloat64ToVariants(mem, []float64{2.5}, []bool{false})
	require.NoError(t, err)
	defer col.Release()

	r, _, err := col.Row(0)
	require.NoError(t, err)
	v, err := r.Float64()
	require.NoError(t, err)
	require.InDelta(t, 2.5, v, 1e-9)
}

func TestCastStringToVariants_RoundTrip(t *testing.T) {
	mem := memory.NewGoAllocator()

	col, err := CastStringToVariants(mem, []string{"hello", "world"}, []bool{false, true})
	require.NoError(t, err)
	defer col.Release()

	r, ok, err := col.Row(0)
	require.NoError(t, err)
	require.True(t, ok)
	s, err := r.String()
	require.NoError(t, err)
	require.Equal(t, "hello", s)

	_, ok, err = col.Row(1)
	require.NoError(t, err)
	require.False(t, ok)
}
