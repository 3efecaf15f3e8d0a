// Package ndarray implements the array/view model of §4.1: a
// stride-and-shape descriptor over raw typed bytes, with a canonical
// "contiguous" predicate, in-place reshape/transpose/slice that touch
// only the descriptor, and on-demand rematerialization to contiguous
// form. It is adapted from the flat-buffer Dense matrix in
// matrix/dense.go and matrix/impl_dense.go, generalized from a fixed 2-D
// row-major layout to an arbitrary-rank strided layout.
package ndarray

import (
	"errors"
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
	"github.com/katalvlaran/numc/internal/arena"
)

// MaxInlineDims is the inline shape/stride capacity carried directly in
// a Descriptor (§3: "An inline buffer of capacity 8 dimensions"). Higher
// ranks spill to arena-independent heap slices; the spec leaves the
// higher-rank ceiling implementation-defined, so Descriptor simply grows
// a Go slice.
const MaxInlineDims = 8

// Sentinel errors returned by this package. The numc facade wraps these
// with the operation name and re-exposes them as the public error
// taxonomy's ErrShape/ErrContiguous/etc; ndarray itself stays free of
// any dependency on the public error set so it can be unit-tested in
// isolation.
var (
	ErrRank      = errors.New("ndarray: rank mismatch")
	ErrShape     = errors.New("ndarray: shape mismatch")
	ErrAxis      = errors.New("ndarray: axis out of range")
	ErrStep      = errors.New("ndarray: invalid slice step")
	ErrRange     = errors.New("ndarray: empty slice range")
	ErrNotContig = errors.New("ndarray: array is not contiguous")
	ErrOverflow  = errors.New("ndarray: shape/stride overflow")
	ErrExhausted = errors.New("ndarray: arena allocation failed")
)

// Descriptor is the shape/stride/dtype/flags metadata identifying an
// array (§3). Data is a slice into arena-owned storage; Data's start
// (&Data[0]) is element (0,0,...,0)'s address. Views re-slice Data so
// they share the base array's backing bytes with no reference counting:
// the arena is the sole owner (§3 "Views").
type Descriptor struct {
	Data     []byte
	Dtype    dtype.Dtype
	ndim     int
	shape    [MaxInlineDims]int
	strides  [MaxInlineDims]int // byte strides
	shapeX   []int              // spill storage for ndim > MaxInlineDims
	stridesX []int

	ElemSize int
	Size     int // product of Shape()
	Capacity int // bytes allocated for Data
	IsContig bool
}

// Shape returns the descriptor's current shape. The returned slice
// aliases Descriptor-owned storage; callers must not retain it across a
// mutating call (Reshape/Transpose/Slice) without copying.
func (d *Descriptor) Shape() []int {
	if d.ndim <= MaxInlineDims {
		return d.shape[:d.ndim]
	}
	return d.shapeX
}

// Strides returns the descriptor's current byte strides, aliased the
// same way Shape is.
func (d *Descriptor) Strides() []int {
	if d.ndim <= MaxInlineDims {
		return d.strides[:d.ndim]
	}
	return d.stridesX
}

// Ndim returns the descriptor's rank.
func (d *Descriptor) Ndim() int { return d.ndim }

// Ptr returns the address of element (0,0,...,0), i.e. &Data[0]. Callers
// use this together with Strides to compute element addresses via
// unsafe.Add. It returns nil when Data is empty, the "no valid element"
// case of a size-0 array.
func (d *Descriptor) Ptr() unsafe.Pointer {
	if len(d.Data) == 0 {
		return nil
	}
	return unsafe.Pointer(&d.Data[0])
}

func (d *Descriptor) setShape(shape []int) {
	d.ndim = len(shape)
	if d.ndim <= MaxInlineDims {
		copy(d.shape[:d.ndim], shape)
		d.shapeX = nil
		return
	}
	d.shapeX = append(d.shapeX[:0], shape...)
}

func (d *Descriptor) setStrides(strides []int) {
	n := len(strides)
	if n <= MaxInlineDims {
		copy(d.strides[:n], strides)
		d.stridesX = nil
		return
	}
	d.stridesX = append(d.stridesX[:0], strides...)
}

// product returns the element-count product of shape, along with
// whether the multiplication overflowed a platform int.
func product(shape []int) (int, bool) {
	n := 1
	for _, s := range shape {
		if s < 0 {
			return 0, true
		}
		if s != 0 && n > (1<<62)/maxInt(s, 1) {
			return 0, true
		}
		n *= s
	}
	return n, false
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// cStrides computes canonical C-order byte strides for shape given an
// element size (§3: strides[n-1] = e, strides[i-1] = strides[i]*s[i]).
func cStrides(shape []int, elemSize int) []int {
	n := len(shape)
	strides := make([]int, n)
	if n == 0 {
		return strides
	}
	strides[n-1] = elemSize
	for i := n - 2; i >= 0; i-- {
		strides[i] = strides[i+1] * shape[i+1]
	}
	return strides
}

// ContiguousPredicate scans strides from innermost outward, verifying
// strides[i] = elemSize * Π_{j>i} shape[j] (§4.1). O(ndim).
func ContiguousPredicate(shape, strides []int, elemSize int) bool {
	n := len(shape)
	expect := elemSize
	for i := n - 1; i >= 0; i-- {
		if shape[i] == 1 {
			// A unit dimension's stride is unconstrained by the C-order
			// formula (there is only one valid index along it), so it
			// never breaks contiguity.
			continue
		}
		if strides[i] != expect {
			return false
		}
		expect *= shape[i]
	}
	return true
}

func (d *Descriptor) recomputeContiguity() {
	d.IsContig = ContiguousPredicate(d.Shape(), d.Strides(), d.ElemSize)
}

// New builds a fresh, contiguous Descriptor of the given shape and
// dtype, allocating backing bytes from a. The buffer is left as the
// arena returns it (create leaves bytes uninitialized per §3; zeroing is
// the caller's job, as the facade's Zeros does with an explicit fill).
// Go's arena always zeros fresh blocks, so "uninitialized" here means
// "not explicitly overwritten", which is stronger than the spec requires
// but never weaker.
func New(a *arena.Arena, dt dtype.Dtype, shape []int) (*Descriptor, error) {
	return NewAligned(a, dt, shape, arena.DefaultAlignment)
}

// NewAligned is New with an explicit alignment, letting a caller (the
// facade's WithAlignment array option) request a stronger guarantee than
// arena.DefaultAlignment for a particular array.
func NewAligned(a *arena.Arena, dt dtype.Dtype, shape []int, alignment int) (*Descriptor, error) {
	size, overflow := product(shape)
	if overflow {
		return nil, ErrOverflow
	}
	elemSize := dt.Size()
	capacity := size * elemSize
	data := a.Alloc(capacity, alignment)
	if data == nil && capacity > 0 {
		return nil, ErrExhausted // surfaces as ErrAlloc at the facade, see translateNdarrayErr
	}

	d := &Descriptor{
		Data:     data,
		Dtype:    dt,
		ElemSize: elemSize,
		Size:     size,
		Capacity: capacity,
	}
	d.setShape(shape)
	d.setStrides(cStrides(shape, elemSize))
	d.recomputeContiguity()

	return d, nil
}

// Clone returns an independent Descriptor that shares d's Data buffer
// but owns its own shape/stride storage, so permuting or reshaping the
// clone (e.g. transpose_copy at the facade layer) never mutates d. Used
// wherever a "_copy" operation is specified as a view rather than a
// byte-level duplication: transpose_copy never touches data, so the only
// thing that needs independence is the descriptor metadata.
func (d *Descriptor) Clone() *Descriptor {
	c := *d
	c.shapeX = append([]int(nil), d.shapeX...)
	c.stridesX = append([]int(nil), d.stridesX...)
	return &c
}

// Fill writes value's bytes to every logical element through the
// stride pattern. The caller supplies a function that knows how to
// encode the dtype's representation of value into a single element slot;
// ndarray itself stays dtype-agnostic.
func (d *Descriptor) Fill(writeElem func(ptr unsafe.Pointer)) {
	walkAll(d.Shape(), d.Strides(), d.Ptr(), writeElem)
}

func walkAll(shape, strides []int, base unsafe.Pointer, fn func(unsafe.Pointer)) {
	if len(shape) == 0 {
		fn(base)
		return
	}
	if len(shape) == 1 {
		p := base
		for i := 0; i < shape[0]; i++ {
			fn(p)
			p = unsafe.Add(p, strides[0])
		}
		return
	}
	p := base
	for i := 0; i < shape[0]; i++ {
		walkAll(shape[1:], strides[1:], p, fn)
		p = unsafe.Add(p, strides[0])
	}
}
