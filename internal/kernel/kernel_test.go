package kernel_test

import (
	"testing"
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
	"github.com/katalvlaran/numc/internal/kernel"
	"github.com/stretchr/testify/require"
)

func TestBroadcastAlignsAndZeroStrides(t *testing.T) {
	// a: (3,1), b: (1,4) -> out (3,4), per §8 boundary example.
	outShape, aStr, bStr, err := kernel.Broadcast([]int{3, 1}, []int{8, 8}, []int{1, 4}, []int{16, 4})
	require.NoError(t, err)
	require.Equal(t, []int{3, 4}, outShape)
	require.Equal(t, 0, aStr[1]) // a's size-1 axis broadcasts with stride 0
	require.Equal(t, 0, bStr[0])
}

func TestBroadcastVectorAndScalarShape(t *testing.T) {
	outShape, _, _, err := kernel.Broadcast([]int{1}, []int{4}, []int{5}, []int{4})
	require.NoError(t, err)
	require.Equal(t, []int{5}, outShape)
}

func TestBroadcastIncompatibleShapesRejected(t *testing.T) {
	_, _, _, err := kernel.Broadcast([]int{3}, []int{4}, []int{4}, []int{4})
	require.ErrorIs(t, err, kernel.ErrIncompatibleShapes)
}

func TestAxisSortPutsSmallestStrideInnermost(t *testing.T) {
	shape := []int{2, 3}
	sa := []int{4, 40} // axis 0 has the smaller stride
	sb := []int{4, 40}
	so := []int{4, 40}
	kernel.AxisSort(shape, sa, sb, so)
	require.Equal(t, []int{3, 2}, shape)
	require.Equal(t, 4, sa[1]) // smallest-stride axis now innermost
}

func TestRunBinaryContiguousPath(t *testing.T) {
	a := []float32{1, 2, 3, 4}
	b := []float32{10, 20, 30, 40}
	out := make([]float32, 4)

	fn := kernel.AddTable[dtype.Float32.Index()]
	elem := 4
	strides := []int{elem}
	kernel.RunBinary(fn, []int{4},
		unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), unsafe.Pointer(&out[0]),
		strides, strides, strides, elem, 0)

	require.Equal(t, []float32{11, 22, 33, 44}, out)
}

func TestRunBinaryStridedPathMatchesContiguous(t *testing.T) {
	// 2x2 row-major a, transposed access pattern (column-major strides)
	// against a contiguous b and out — forces the generic tiled path.
	a := []float32{1, 2, 3, 4} // logical [[1,2],[3,4]]
	b := []float32{10, 20, 30, 40}
	out := make([]float32, 4)

	elem := 4
	// a read in transposed order: column stride 4, row stride 8.
	aStrides := []int{elem, 2 * elem}
	bStrides := []int{2 * elem, elem}
	oStrides := []int{2 * elem, elem}

	fn := kernel.AddTable[dtype.Float32.Index()]
	kernel.RunBinary(fn, []int{2, 2},
		unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), unsafe.Pointer(&out[0]),
		aStrides, bStrides, oStrides, elem, 0)

	// out[i,j] = a[j,i] + b[i,j]
	want := []float32{
		a[0] + b[0], a[2] + b[1],
		a[1] + b[2], a[3] + b[3],
	}
	require.Equal(t, want, out)
}

func TestRunBinaryScalarBroadcastPath(t *testing.T) {
	a := []float32{1, 2, 3}
	scalar := float32(100)
	out := make([]float32, 3)

	elem := 4
	fn := kernel.AddTable[dtype.Float32.Index()]
	kernel.RunBinary(fn, []int{3},
		unsafe.Pointer(&a[0]), unsafe.Pointer(&scalar), unsafe.Pointer(&out[0]),
		[]int{elem}, []int{0}, []int{elem}, elem, 0)

	require.Equal(t, []float32{101, 102, 103}, out)
}

func TestRunUnaryNeg(t *testing.T) {
	a := []int32{1, -2, 3}
	out := make([]int32, 3)
	elem := 4

	fn := kernel.NegTable[dtype.Int32.Index()]
	kernel.RunUnary(fn, []int{3}, unsafe.Pointer(&a[0]), unsafe.Pointer(&out[0]),
		[]int{elem}, []int{elem}, elem, 0)

	require.Equal(t, []int32{-1, 2, -3}, out)
}

func TestRunClip(t *testing.T) {
	a := []float32{-5, -1, 0, 1, 5}
	out := make([]float32, 5)
	elem := 4
	lo, hi := float32(-1), float32(1)

	fn := kernel.Clip[dtype.Float32.Index()]
	kernel.RunClip(fn, []int{5}, unsafe.Pointer(&a[0]), unsafe.Pointer(&out[0]),
		unsafe.Pointer(&lo), unsafe.Pointer(&hi), []int{elem}, []int{elem}, elem, 0)

	require.Equal(t, []float32{-1, -1, 0, 1, 1}, out)
}

func TestParallelForRunsSequentiallyBelowThreshold(t *testing.T) {
	seen := make([]bool, 4)
	kernel.ParallelFor(4, 16, 1<<20, func(i int) { seen[i] = true })
	for _, s := range seen {
		require.True(t, s)
	}
}

func TestParallelForSpansAllIndicesAboveThreshold(t *testing.T) {
	n := 64
	var seen [64]int32
	kernel.ParallelFor(n, 2<<20, 1<<20, func(i int) { seen[i] = 1 })
	for i, s := range seen {
		require.Equal(t, int32(1), s, "index %d not visited", i)
	}
}

func TestDivInt8CastsThroughFloat32(t *testing.T) {
	a := []int8{100}
	b := []int8{3}
	out := make([]int8, 1)
	elem := 1

	fn := kernel.DivTable[dtype.Int8.Index()]
	kernel.RunBinary(fn, []int{1}, unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), unsafe.Pointer(&out[0]),
		[]int{elem}, []int{elem}, []int{elem}, elem, 0)

	require.Equal(t, int8(33), out[0])
}

func TestPowIntegerNegativeExponentReturnsZero(t *testing.T) {
	a := []int32{2}
	b := []int32{-1}
	out := make([]int32, 1)
	elem := 4

	fn := kernel.PowTable[dtype.Int32.Index()]
	kernel.RunBinary(fn, []int{1}, unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), unsafe.Pointer(&out[0]),
		[]int{elem}, []int{elem}, []int{elem}, elem, 0)

	require.Equal(t, int32(0), out[0])
}

func TestAbsSignedSelectsMagnitude(t *testing.T) {
	a := []int32{-7, 7, 0}
	out := make([]int32, 3)
	elem := 4

	fn := kernel.AbsTable[dtype.Int32.Index()]
	kernel.RunUnary(fn, []int{3}, unsafe.Pointer(&a[0]), unsafe.Pointer(&out[0]),
		[]int{elem}, []int{elem}, elem, 0)

	require.Equal(t, []int32{7, 7, 0}, out)
}
