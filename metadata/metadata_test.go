package metadata

import (
	"testing"

	"github.com/kezzal/variant-go/errs"
	"github.com/stretchr/testify/require"
)

func TestBuildMetadata_SortsAndDedupes(t *testing.T) {
	buf := BuildMetadata([]string{"carrot", "apple", "brussel sprouts", "apple"})

	ref, err := OpenMetadata(buf)
	require.NoError(t, err)
	require.Equal(t, 1, ref.Version())
	require.True(t, ref.SortedFlag())
	require.Equal(t, 3, ref.Len())

	s0, err := ref.Get(0)
	require.NoError(t, err)
	require.Equal(t, "apple", s0)

	s1, err := ref.Get(1)
	require.NoError(t, err)
	require.Equal(t, "brussel sprouts", s1)

	s2, err := ref.Get(2)
	require.NoError(t, err)
	require.Equal(t, "carrot", s2)
}

func TestRef_Find(t *testing.T) {
	buf := BuildMetadata([]string{"carrot", "apple", "brussel sprouts"})
	ref, err := OpenMetadata(buf)
	require.NoError(t, err)

	i, err := ref.Find("carrot")
	require.NoError(t, err)
	require.Equal(t, 2, i)

	_, err = ref.Find("durian")
	require.ErrorIs(t, err, errs.ErrKeyNotFound)
}

func TestRef_Get_OutOfRange(t *testing.T) {
	buf := BuildMetadata([]string{"a", "b"})
	ref, err := OpenMetadata(buf)
	require.NoError(t, err)

	_, err = ref.Get(2)
	require.ErrorIs(t, err, errs.ErrKeyNotFound)

	_, err = ref.Get(-1)
	require.ErrorIs(t, err, errs.ErrKeyNotFound)
}

func TestBuildMetadata_Empty(t *testing.T) {
	buf := BuildMetadata(nil)

	ref, err := OpenMetadata(buf)
	require.NoError(t, err)
	require.Equal(t, 0, ref.Len())

	_, err = ref.Find("anything")
	require.ErrorIs(t, err, errs.ErrKeyNotFound)
}

func TestOpenMetadata_TruncatedBuffer(t *testing.T) {
	buf := BuildMetadata([]string{"apple", "carrot"})

	_, err := OpenMetadata(buf[:len(buf)-1])
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)

	_, err = OpenMetadata(nil)
	require.ErrorIs(t, err, errs.ErrTruncatedBuffer)
}

func TestBuildMetadata_LargeDictionaryUsesWiderOffsets(t *testing.T) {
	strs := make([]string, 200)
	for i := range strs {
		strs[i] = string(rune('A'+i%26)) + string(rune(i))
	}

	buf := BuildMetadata(strs)
	ref, err := OpenMetadata(buf)
	require.NoError(t, err)
	require.Equal(t, 200, ref.Len())

	for i := 0; i < ref.Len(); i++ {
		_, err := ref.Get(i)
		require.NoError(t, err)
	}
}
