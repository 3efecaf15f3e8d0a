package matmul_test

import (
	"testing"
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
	"github.com/katalvlaran/numc/internal/matmul"
	"github.com/stretchr/testify/require"
)

func rowMajorStrides(elemSize, cols int) matmul.Strides2D {
	return matmul.Strides2D{Row: elemSize * cols, Col: elemSize}
}

// §8 scenario 4: small float32 matmul.
func TestDenseFloat32Small(t *testing.T) {
	a := []float32{1, 2, 3, 4, 5, 6} // (2,3)
	b := []float32{7, 8, 9, 10, 11, 12} // (3,2)
	out := make([]float32, 4)          // (2,2), pre-zeroed

	fn := matmul.DenseTable[dtype.Float32.Index()]
	sa := rowMajorStrides(4, 3)
	sb := rowMajorStrides(4, 2)
	so := rowMajorStrides(4, 2)

	matmul.Dense(fn, 2, 3, 2, unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), unsafe.Pointer(&out[0]),
		sa, sb, so, 4, 0)

	require.Equal(t, []float32{58, 64, 139, 154}, out)
}

func TestDenseIdentityFloat64(t *testing.T) {
	a := []float64{1, 2, 3, 4}
	ident := []float64{1, 0, 0, 1}
	out := make([]float64, 4)

	fn := matmul.DenseTable[dtype.Float64.Index()]
	sa := rowMajorStrides(8, 2)
	so := rowMajorStrides(8, 2)

	matmul.Dense(fn, 2, 2, 2, unsafe.Pointer(&a[0]), unsafe.Pointer(&ident[0]), unsafe.Pointer(&out[0]),
		sa, sa, so, 8, 0)

	require.Equal(t, a, out)
}

func TestDenseInt8AccumulatesInWidenedAccumulator(t *testing.T) {
	// 100*1 + 100*1 = 200 overflows int8 (max 127) on the second step, but
	// the promoted int32 accumulator should hold the true sum before the
	// final truncating write-back (§4.4).
	a := []int8{100, 100} // (1,2)
	b := []int8{1, 1}     // (2,1)
	out := make([]int8, 1)

	fn := matmul.DenseTable[dtype.Int8.Index()]
	sa := rowMajorStrides(1, 2)
	sb := rowMajorStrides(1, 1)
	so := rowMajorStrides(1, 1)

	matmul.Dense(fn, 1, 2, 1, unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), unsafe.Pointer(&out[0]),
		sa, sb, so, 1, 0)

	// true sum is 200, which truncates (mod 256, signed) to -56 once
	// written back to the 8-bit storage type.
	require.Equal(t, int8(-56), out[0])
}

func TestDenseTransposedViewNoCopyNeeded(t *testing.T) {
	// a stored column-major (i.e. the transpose of [[1,2,3],[4,5,6]]):
	// logical a[i,k] is read via swapped row/col strides.
	aCols := []float32{1, 4, 2, 5, 3, 6} // column-major storage of (2,3)
	b := []float32{7, 8, 9, 10, 11, 12}
	out := make([]float32, 4)

	fn := matmul.DenseTable[dtype.Float32.Index()]
	// column-major (2,3): element (i,k) is at aCols[k*2+i], so Row stride
	// (over i) is 1 elem, Col stride (over k) is 2 elems.
	sa := matmul.Strides2D{Row: 4, Col: 8}
	sb := rowMajorStrides(4, 2)
	so := rowMajorStrides(4, 2)

	matmul.Dense(fn, 2, 3, 2, unsafe.Pointer(&aCols[0]), unsafe.Pointer(&b[0]), unsafe.Pointer(&out[0]),
		sa, sb, so, 4, 0)

	require.Equal(t, []float32{58, 64, 139, 154}, out)
}

func TestDenseParallelMatchesSerial(t *testing.T) {
	const m, k, n = 40, 8, 8
	a := make([]float32, m*k)
	b := make([]float32, k*n)
	for i := range a {
		a[i] = float32(i%7) - 3
	}
	for i := range b {
		b[i] = float32(i%5) - 2
	}

	fn := matmul.DenseTable[dtype.Float32.Index()]
	sa := rowMajorStrides(4, k)
	sb := rowMajorStrides(4, n)
	so := rowMajorStrides(4, n)

	serial := make([]float32, m*n)
	matmul.Dense(fn, m, k, n, unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), unsafe.Pointer(&serial[0]),
		sa, sb, so, 4, -1) // negative threshold means "use DefaultParallelThreshold" -> serial given small volume

	parallel := make([]float32, m*n)
	matmul.Dense(fn, m, k, n, unsafe.Pointer(&a[0]), unsafe.Pointer(&b[0]), unsafe.Pointer(&parallel[0]),
		sa, sb, so, 4, 0) // force the parallel path: threshold 0 always parallelizes

	require.Equal(t, serial, parallel)
}
