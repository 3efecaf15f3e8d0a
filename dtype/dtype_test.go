package dtype_test

import (
	"testing"

	"github.com/katalvlaran/numc/dtype"
	"github.com/stretchr/testify/require"
)

func TestInvalidDtype(t *testing.T) {
	var zero dtype.Dtype
	require.False(t, zero.Valid())
	require.Equal(t, 0, zero.Size())
	require.Equal(t, "invalid", zero.String())
	require.Panics(t, func() { zero.Index() })
}

func TestSizesAndNames(t *testing.T) {
	cases := []struct {
		d    dtype.Dtype
		size int
		name string
	}{
		{dtype.Int8, 1, "int8"},
		{dtype.Int16, 2, "int16"},
		{dtype.Int32, 4, "int32"},
		{dtype.Int64, 8, "int64"},
		{dtype.Uint8, 1, "uint8"},
		{dtype.Uint16, 2, "uint16"},
		{dtype.Uint32, 4, "uint32"},
		{dtype.Uint64, 8, "uint64"},
		{dtype.Float32, 4, "float32"},
		{dtype.Float64, 8, "float64"},
	}
	for _, c := range cases {
		require.True(t, c.d.Valid(), c.name)
		require.Equal(t, c.size, c.d.Size(), c.name)
		require.Equal(t, c.size, c.d.Align(), c.name) // align == size per §3
		require.Equal(t, c.name, c.d.String())
	}
}

func TestIndexIsContiguousFromZero(t *testing.T) {
	all := []dtype.Dtype{
		dtype.Int8, dtype.Int16, dtype.Int32, dtype.Int64,
		dtype.Uint8, dtype.Uint16, dtype.Uint32, dtype.Uint64,
		dtype.Float32, dtype.Float64,
	}
	require.Equal(t, dtype.NumDtypes, len(all))
	for i, d := range all {
		require.Equal(t, i, d.Index())
	}
}

func TestSignedUnsignedFloatClassification(t *testing.T) {
	require.True(t, dtype.Int32.IsSigned())
	require.False(t, dtype.Int32.IsUnsigned())
	require.True(t, dtype.Int32.IsInteger())
	require.False(t, dtype.Int32.IsFloat())

	require.True(t, dtype.Uint32.IsUnsigned())
	require.False(t, dtype.Uint32.IsSigned())
	require.True(t, dtype.Uint32.IsInteger())

	require.True(t, dtype.Float64.IsFloat())
	require.False(t, dtype.Float64.IsInteger())
}
