// Package kernel implements the element-wise kernel engine of §4.2:
// per-(operation, dtype) inner loops with runtime-selected paths (fully
// contiguous, scalar broadcast, generic strided tiled), dispatch tables
// keyed by dtype, broadcasting via virtual zero-strides, axis
// permutation for locality, and byte-volume-gated parallelism.
//
// The per-(op,dtype) kernel instantiation this engine needs is written
// once per operation as a small generic function and monomorphized for
// each of the ten dtypes when its dispatch table is built — the
// re-architecture §9 describes for a statically typed, monomorphizing
// target language. The style (operation-name constants, a thin
// validating wrapper, a fast path over a flat buffer) is adapted from
// matrix/ops_elementwise.go and matrix/impl_linear_algebra.go.
package kernel

import "unsafe"

// BinaryFn is the per-(operation, dtype) kernel signature for a, b, out
// arrays sharing an inner dimension of n elements, with byte strides
// sa, sb, so along that dimension (§4.2 "Per-(operation, dtype) kernel
// signature").
type BinaryFn func(a, b, out unsafe.Pointer, n, sa, sb, so int)

// Scalar-right operations (add_scalar, sub_scalar, ...) reuse BinaryFn
// directly: the caller passes the scalar's address as b with sb == 0,
// which lands on Path 2 ("right scalar broadcast") inside the same
// per-dtype kernel used for the array-array form. This mirrors §4.2's
// own framing of scalar ops as a broadcast special case rather than a
// distinct kernel family.

// UnaryFn is the per-(operation, dtype) kernel signature for a, out
// arrays sharing an inner dimension of n elements.
type UnaryFn func(a, out unsafe.Pointer, n, sa, so int)

// ClipFn is Clip's kernel signature: bounds are passed as dtype-encoded
// scalars the same way a scalar-right op passes its scalar as b.
type ClipFn func(a, out, lo, hi unsafe.Pointer, n, sa, so int)
