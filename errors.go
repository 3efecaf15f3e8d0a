// SPDX-License-Identifier: MIT
// Package numc: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across numc.
// Every operation MUST return one of these sentinels (wrapped via
// numcErrorf for context) and tests MUST check them via errors.Is.
// Panics occur in three places: private helpers on programmer errors
// (index math that the caller has already validated), the With* option
// constructors on an invalid argument, and 64-bit integer Div on a zero
// divisor (Go's native division traps).
package numc

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "numc: ..." for consistency and easy
// grepping across logs. Do not %w these sentinels a second time when
// already wrapped; wrap once at the public-function boundary via
// numcErrorf so errors.Is still matches at any call depth.
//
// This replaces the source specification's (negative return code,
// thread-local last error) pair with a single Go error value per §9's
// own redesign guidance — there is no thread-local state anywhere in
// this package.

var (
	// ErrNull is returned when a required array or buffer was absent
	// (a nil *Array where one was required).
	ErrNull = errors.New("numc: null array or buffer")

	// ErrAlloc is returned when the arena or allocator could not satisfy
	// an allocation request.
	ErrAlloc = errors.New("numc: allocation failed")

	// ErrShape is returned for shape mismatches, out-of-range axes,
	// non-broadcastable operands, and invalid reshape targets.
	ErrShape = errors.New("numc: shape mismatch")

	// ErrType is returned when operand dtypes disagree, or disagree with
	// the output's dtype.
	ErrType = errors.New("numc: dtype mismatch")

	// ErrContiguous is returned when an operation requires contiguity
	// the input lacks and refuses to rematerialize implicitly.
	ErrContiguous = errors.New("numc: array is not contiguous")

	// ErrInvalid is returned for preconditions outside the other
	// categories (e.g. Max/Min/Argmax/Argmin of an empty array or along
	// an empty axis).
	ErrInvalid = errors.New("numc: invalid argument")

	// ErrSize is returned when a capacity or element-count computation
	// would overflow what the array's backing storage can hold.
	ErrSize = errors.New("numc: size exceeds capacity")

	// ErrOverflow is returned when computing a shape product or stride
	// would overflow the platform integer.
	ErrOverflow = errors.New("numc: integer overflow computing shape or stride")

	// ErrBounds is returned when an index falls outside a valid range.
	ErrBounds = errors.New("numc: index out of bounds")

	// ErrAxis is returned when an axis value lies outside [0, ndim).
	ErrAxis = errors.New("numc: axis out of range")

	// ErrDim is returned on a rank mismatch between operands, or between
	// an operand and its expected rank for the operation.
	ErrDim = errors.New("numc: rank mismatch")
)

// numcErrorf wraps an underlying sentinel with the operation name that
// produced it, the way matrixErrorf/validatorErrorf do in the matrix
// package this is adapted from.
func numcErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
