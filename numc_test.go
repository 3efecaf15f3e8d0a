// SPDX-License-Identifier: MIT
package numc_test

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/numc"
	"github.com/katalvlaran/numc/dtype"
	"github.com/stretchr/testify/require"
)

func putFloat32s(t *testing.T, a *numc.Array, vals []float32) {
	t.Helper()
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(v))
	}
	require.NoError(t, a.Write(buf))
}

func getFloat32s(t *testing.T, a *numc.Array) []float32 {
	t.Helper()
	require.NoError(t, a.Contiguous())
	data := a.Data()
	out := make([]float32, a.Size())
	for i := range out {
		out[i] = math.Float32frombits(binary.LittleEndian.Uint32(data[i*4:]))
	}
	return out
}

func putInt32s(t *testing.T, a *numc.Array, vals []int32) {
	t.Helper()
	buf := make([]byte, 4*len(vals))
	for i, v := range vals {
		binary.LittleEndian.PutUint32(buf[i*4:], uint32(v))
	}
	require.NoError(t, a.Write(buf))
}

func getInt64s(t *testing.T, a *numc.Array) []int64 {
	t.Helper()
	require.NoError(t, a.Contiguous())
	data := a.Data()
	out := make([]int64, a.Size())
	for i := range out {
		out[i] = int64(binary.LittleEndian.Uint64(data[i*8:]))
	}
	return out
}

func getInt32At(t *testing.T, a *numc.Array, i int) int32 {
	t.Helper()
	require.NoError(t, a.Contiguous())
	return int32(binary.LittleEndian.Uint32(a.Data()[i*4:]))
}

// Scenario 1 (§8): contiguous add.
func TestAddContiguous(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{2, 3})
	require.NoError(t, err)
	putFloat32s(t, a, []float32{1, 2, 3, 4, 5, 6})

	b, err := ctx.Create(dtype.Float32, []int{2, 3})
	require.NoError(t, err)
	putFloat32s(t, b, []float32{10, 20, 30, 40, 50, 60})

	out, err := ctx.Create(dtype.Float32, []int{2, 3})
	require.NoError(t, err)

	require.NoError(t, numc.Add(a, b, out))
	require.Equal(t, []float32{11, 22, 33, 44, 55, 66}, getFloat32s(t, out))
	require.True(t, out.IsContiguous())
}

// Scenario 2 (§8): broadcast add, (3,1) + (1,4) -> (3,4).
func TestAddBroadcast(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{3, 1})
	require.NoError(t, err)
	putFloat32s(t, a, []float32{1, 2, 3})

	b, err := ctx.Create(dtype.Float32, []int{1, 4})
	require.NoError(t, err)
	putFloat32s(t, b, []float32{10, 20, 30, 40})

	out, err := ctx.Create(dtype.Float32, []int{3, 4})
	require.NoError(t, err)

	require.NoError(t, numc.Add(a, b, out))
	require.Equal(t, []float32{
		11, 21, 31, 41,
		12, 22, 32, 42,
		13, 23, 33, 43,
	}, getFloat32s(t, out))
}

func TestAddBroadcastIncompatibleShapesFails(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{3})
	require.NoError(t, err)
	b, err := ctx.Create(dtype.Float32, []int{4})
	require.NoError(t, err)
	out, err := ctx.Create(dtype.Float32, []int{4})
	require.NoError(t, err)

	err = numc.Add(a, b, out)
	require.ErrorIs(t, err, numc.ErrShape)
}

// Scenario 3 (§8): sliced sum.
func TestSlicedSum(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Int32, []int{10})
	require.NoError(t, err)
	vals := make([]int32, 10)
	for i := range vals {
		vals[i] = int32(i)
	}
	putInt32s(t, a, vals)

	view, err := a.Slice(0, 0, 10, 2)
	require.NoError(t, err)
	require.Equal(t, []int{5}, view.Shape())

	out, err := ctx.Create(dtype.Int32, []int{1})
	require.NoError(t, err)
	require.NoError(t, numc.Sum(view, out))
	require.Equal(t, int32(20), getInt32At(t, out, 0))
}

// Scenario 4 (§8): small matmul.
func TestMatmulSmall(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{2, 3})
	require.NoError(t, err)
	putFloat32s(t, a, []float32{1, 2, 3, 4, 5, 6})

	b, err := ctx.Create(dtype.Float32, []int{3, 2})
	require.NoError(t, err)
	putFloat32s(t, b, []float32{7, 8, 9, 10, 11, 12})

	out, err := ctx.Zeros(dtype.Float32, []int{2, 2})
	require.NoError(t, err)

	require.NoError(t, numc.Matmul(a, b, out))
	require.Equal(t, []float32{58, 64, 139, 154}, getFloat32s(t, out))
}

func TestMatmulIdentity(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{2, 2})
	require.NoError(t, err)
	putFloat32s(t, a, []float32{1, 2, 3, 4})

	ident, err := ctx.Zeros(dtype.Float32, []int{2, 2})
	require.NoError(t, err)
	putFloat32s(t, ident, []float32{1, 0, 0, 1})

	out, err := ctx.Zeros(dtype.Float32, []int{2, 2})
	require.NoError(t, err)
	require.NoError(t, numc.Matmul(a, ident, out))
	require.Equal(t, []float32{1, 2, 3, 4}, getFloat32s(t, out))
}

func TestMatmulRejectsShapeMismatch(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{2, 3})
	require.NoError(t, err)
	b, err := ctx.Create(dtype.Float32, []int{4, 2})
	require.NoError(t, err)
	out, err := ctx.Create(dtype.Float32, []int{2, 2})
	require.NoError(t, err)

	require.ErrorIs(t, numc.Matmul(a, b, out), numc.ErrShape)
}

// Scenario 5 (§8): argmax axis.
func TestArgmaxAxis(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Int32, []int{2, 4})
	require.NoError(t, err)
	putInt32s(t, a, []int32{3, 1, 4, 1, 5, 9, 2, 6})

	out, err := ctx.Create(dtype.Int64, []int{2})
	require.NoError(t, err)
	require.NoError(t, numc.ArgmaxAxis(a, 1, false, out))
	require.Equal(t, []int64{2, 1}, getInt64s(t, out))
}

// Scenario 6 (§8): float pairwise sum accuracy.
func TestFloatPairwiseSumAccuracy(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	const n = 1_000_000
	a, err := ctx.Create(dtype.Float32, []int{n})
	require.NoError(t, err)
	vals := make([]float32, n)
	for i := range vals {
		vals[i] = 1
	}
	putFloat32s(t, a, vals)

	out, err := ctx.Create(dtype.Float32, []int{1})
	require.NoError(t, err)
	require.NoError(t, numc.Sum(a, out))
	require.InDelta(t, float32(n), getFloat32s(t, out)[0], 0.5)
}

// §8 invariant 6: transpose is self-inverse.
func TestTransposeSelfInverse(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{2, 3, 4})
	require.NoError(t, err)
	require.NoError(t, a.Fill(1))

	perm := []int{2, 0, 1}
	require.NoError(t, a.Transpose(perm))
	require.Equal(t, []int{4, 2, 3}, a.Shape())

	inv := make([]int, len(perm))
	for i, p := range perm {
		inv[p] = i
	}
	require.NoError(t, a.Transpose(inv))
	require.Equal(t, []int{2, 3, 4}, a.Shape())
	require.True(t, a.IsContiguous())
}

// §8: copy(a) is element-wise equal to a and always contiguous.
func TestCopyEqualsAndContiguous(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{2, 3})
	require.NoError(t, err)
	putFloat32s(t, a, []float32{1, 2, 3, 4, 5, 6})
	require.NoError(t, a.Transpose([]int{1, 0}))
	require.False(t, a.IsContiguous())

	cp, err := a.Copy()
	require.NoError(t, err)
	require.True(t, cp.IsContiguous())
	require.Equal(t, getFloat32s(t, a), getFloat32s(t, cp))
}

// §8: sum(a) == sum_axis(a, 0, keepdim=false) for 1-D a.
func TestSumMatchesSumAxisOnVector(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{5})
	require.NoError(t, err)
	putFloat32s(t, a, []float32{1, 2, 3, 4, 5})

	full, err := ctx.Create(dtype.Float32, []int{1})
	require.NoError(t, err)
	require.NoError(t, numc.Sum(a, full))

	axisOut, err := ctx.Create(dtype.Float32, []int{}) // rank 0: axis 0 dropped
	require.NoError(t, err)
	require.NoError(t, numc.SumAxis(a, 0, false, axisOut))

	require.Equal(t, getFloat32s(t, full)[0], getFloat32s(t, axisOut)[0])
}

// §8 boundary: in-place op where out = a matches the non-aliasing form.
func TestInPlaceMatchesNonAliasing(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{4})
	require.NoError(t, err)
	putFloat32s(t, a, []float32{1, 2, 3, 4})

	b, err := ctx.Create(dtype.Float32, []int{4})
	require.NoError(t, err)
	putFloat32s(t, b, []float32{10, 20, 30, 40})

	aCopy, err := a.Copy()
	require.NoError(t, err)
	out, err := ctx.Create(dtype.Float32, []int{4})
	require.NoError(t, err)
	require.NoError(t, numc.Add(aCopy, b, out))

	require.NoError(t, numc.AddInPlace(a, b))
	require.Equal(t, getFloat32s(t, out), getFloat32s(t, a))
}

func TestDtypeMismatchRejected(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{2})
	require.NoError(t, err)
	b, err := ctx.Create(dtype.Int32, []int{2})
	require.NoError(t, err)
	out, err := ctx.Create(dtype.Float32, []int{2})
	require.NoError(t, err)

	require.True(t, errors.Is(numc.Add(a, b, out), numc.ErrType))
}

func TestMaxOfEmptyArrayFails(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{0})
	require.NoError(t, err)
	out, err := ctx.Create(dtype.Float32, []int{1})
	require.NoError(t, err)

	require.ErrorIs(t, numc.Max(a, out), numc.ErrInvalid)
}

func TestReshapeRejectsNonContiguousView(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{2, 3})
	require.NoError(t, err)
	require.NoError(t, a.Transpose([]int{1, 0}))

	require.ErrorIs(t, a.Reshape([]int{6}), numc.ErrContiguous)

	cp, err := a.ReshapeCopy([]int{6})
	require.NoError(t, err)
	require.Equal(t, []int{6}, cp.Shape())
}

func TestAddScalar(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{3})
	require.NoError(t, err)
	putFloat32s(t, a, []float32{1, 2, 3})

	out, err := ctx.Create(dtype.Float32, []int{3})
	require.NoError(t, err)
	require.NoError(t, numc.AddScalar(a, 10, out))
	require.Equal(t, []float32{11, 12, 13}, getFloat32s(t, out))
}

func TestClip(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Create(dtype.Float32, []int{5})
	require.NoError(t, err)
	putFloat32s(t, a, []float32{-5, -1, 0, 1, 5})

	out, err := ctx.Create(dtype.Float32, []int{5})
	require.NoError(t, err)
	require.NoError(t, numc.Clip(a, -1, 1, out))
	require.Equal(t, []float32{-1, -1, 0, 1, 1}, getFloat32s(t, out))
}

func TestZerosActuallyZero(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	a, err := ctx.Zeros(dtype.Float32, []int{4})
	require.NoError(t, err)
	require.Equal(t, []float32{0, 0, 0, 0}, getFloat32s(t, a))
}

func TestContextResetInvalidatesCapacityButReusesBlocks(t *testing.T) {
	ctx := numc.NewContext()
	defer ctx.Free()

	_, err := ctx.Create(dtype.Float32, []int{100})
	require.NoError(t, err)
	ctx.Reset()
	a, err := ctx.Create(dtype.Float32, []int{100})
	require.NoError(t, err)
	require.Equal(t, 100, a.Size())
}
