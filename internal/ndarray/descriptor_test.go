package ndarray_test

import (
	"testing"
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
	"github.com/katalvlaran/numc/internal/arena"
	"github.com/katalvlaran/numc/internal/ndarray"
	"github.com/stretchr/testify/require"
)

func writeFloat64(p unsafe.Pointer, v float64) { *(*float64)(p) = v }
func readFloat64(p unsafe.Pointer) float64     { return *(*float64)(p) }

func TestNewContiguousShapeAndStrides(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Float64, []int{2, 3})
	require.NoError(t, err)
	require.Equal(t, []int{2, 3}, d.Shape())
	require.Equal(t, []int{24, 8}, d.Strides()) // row stride 3*8, col stride 8
	require.True(t, d.IsContig)
	require.Equal(t, 6, d.Size)
}

func TestNewOverflowRejected(t *testing.T) {
	a := arena.New(1 << 16)
	_, err := ndarray.New(a, dtype.Float64, []int{1 << 40, 1 << 40})
	require.ErrorIs(t, err, ndarray.ErrOverflow)
}

func TestHighRankSpillsToHeap(t *testing.T) {
	a := arena.New(1 << 20)
	shape := make([]int, ndarray.MaxInlineDims+1)
	for i := range shape {
		shape[i] = 1
	}
	d, err := ndarray.New(a, dtype.Int8, shape)
	require.NoError(t, err)
	require.Equal(t, shape, d.Shape())
}

func TestFillWritesEveryElement(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Float64, []int{2, 2})
	require.NoError(t, err)
	d.Fill(func(p unsafe.Pointer) { writeFloat64(p, 7) })

	strides := d.Strides()
	base := d.Ptr()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			p := unsafe.Add(base, i*strides[0]+j*strides[1])
			require.Equal(t, 7.0, readFloat64(p))
		}
	}
}

func TestCloneIsIndependentOfOriginal(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Float64, []int{2, 3})
	require.NoError(t, err)

	clone := d.Clone()
	require.NoError(t, clone.Transpose([]int{1, 0}))

	require.Equal(t, []int{2, 3}, d.Shape())     // original untouched
	require.Equal(t, []int{3, 2}, clone.Shape()) // clone transposed
	require.Equal(t, unsafe.Pointer(&d.Data[0]), unsafe.Pointer(&clone.Data[0]))
}

func TestReshapeRequiresSameSize(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Float64, []int{2, 3})
	require.NoError(t, err)

	require.ErrorIs(t, d.Reshape([]int{4, 4}), ndarray.ErrShape)

	require.NoError(t, d.Reshape([]int{3, 2}))
	require.Equal(t, []int{3, 2}, d.Shape())
}

func TestReshapeRejectsNonContiguous(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Float64, []int{2, 3})
	require.NoError(t, err)

	require.NoError(t, d.Transpose([]int{1, 0})) // now non-contiguous
	require.ErrorIs(t, d.Reshape([]int{6}), ndarray.ErrNotContig)
}

func TestTransposeIsSelfInverse(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Float64, []int{2, 3, 4})
	require.NoError(t, err)

	axes := []int{2, 0, 1}
	require.NoError(t, d.Transpose(axes))
	require.Equal(t, []int{4, 2, 3}, d.Shape())

	require.NoError(t, d.Transpose(ndarray.InversePermutation(axes)))
	require.Equal(t, []int{2, 3, 4}, d.Shape())
}

func TestTransposeRejectsInvalidPermutation(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Float64, []int{2, 3})
	require.NoError(t, err)

	require.ErrorIs(t, d.Transpose([]int{0, 0}), ndarray.ErrShape) // duplicate axis
	require.ErrorIs(t, d.Transpose([]int{0}), ndarray.ErrRank)     // wrong length
}

func TestSliceNormalizesBoundsAndStep(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Float64, []int{10})
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		writeFloat64(unsafe.Add(d.Ptr(), i*d.Strides()[0]), float64(i))
	}

	view, err := d.Slice(0, 2, 8, 2)
	require.NoError(t, err)
	require.Equal(t, []int{3}, view.Shape()) // 2,4,6 -> 3 elements

	strides := view.Strides()
	base := view.Ptr()
	require.Equal(t, 2.0, readFloat64(base))
	require.Equal(t, 4.0, readFloat64(unsafe.Add(base, strides[0])))
	require.Equal(t, 6.0, readFloat64(unsafe.Add(base, 2*strides[0])))
}

func TestSliceEmptyRangeRejected(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Float64, []int{10})
	require.NoError(t, err)
	_, err = d.Slice(0, 5, 5, 1)
	require.ErrorIs(t, err, ndarray.ErrRange)
}

func TestSliceAxisOutOfRange(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Float64, []int{10})
	require.NoError(t, err)
	_, err = d.Slice(5, 0, 1, 1)
	require.ErrorIs(t, err, ndarray.ErrAxis)
}

func TestContiguousRematerializesTransposedView(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Float64, []int{2, 3})
	require.NoError(t, err)
	for i := 0; i < 2; i++ {
		for j := 0; j < 3; j++ {
			p := unsafe.Add(d.Ptr(), i*d.Strides()[0]+j*d.Strides()[1])
			writeFloat64(p, float64(i*3+j))
		}
	}

	require.NoError(t, d.Transpose([]int{1, 0}))
	require.False(t, d.IsContig)

	require.NoError(t, d.Contiguous(a))
	require.True(t, d.IsContig)

	strides := d.Strides()
	for i := 0; i < 3; i++ {
		for j := 0; j < 2; j++ {
			p := unsafe.Add(d.Ptr(), i*strides[0]+j*strides[1])
			require.Equal(t, float64(j*3+i), readFloat64(p)) // transposed value preserved
		}
	}
}

func TestWriteRawRequiresExactSizeAndContiguity(t *testing.T) {
	a := arena.New(1 << 16)
	d, err := ndarray.New(a, dtype.Int32, []int{4})
	require.NoError(t, err)

	require.ErrorIs(t, d.WriteRaw(make([]byte, 3)), ndarray.ErrShape)

	buf := make([]byte, 16)
	buf[0] = 1
	require.NoError(t, d.WriteRaw(buf))
	require.Equal(t, byte(1), d.Data[0])

	view, err := d.Slice(0, 0, 4, 2) // stride-2 view of 2 elements, not contiguous
	require.NoError(t, err)
	require.ErrorIs(t, view.WriteRaw(make([]byte, 8)), ndarray.ErrNotContig)
}

func TestCopyIntoProducesIdenticalValues(t *testing.T) {
	a := arena.New(1 << 16)
	src, err := ndarray.New(a, dtype.Float64, []int{2, 2})
	require.NoError(t, err)
	src.Fill(func(p unsafe.Pointer) { writeFloat64(p, 3.5) })

	dst, err := ndarray.New(a, dtype.Float64, []int{2, 2})
	require.NoError(t, err)
	src.CopyInto(dst)

	strides := dst.Strides()
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			p := unsafe.Add(dst.Ptr(), i*strides[0]+j*strides[1])
			require.Equal(t, 3.5, readFloat64(p))
		}
	}
}
