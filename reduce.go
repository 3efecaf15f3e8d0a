// SPDX-License-Identifier: MIT
package numc

import (
	"github.com/katalvlaran/numc/dtype"
	"github.com/katalvlaran/numc/internal/reduce"
)

// fullReduce implements §4.3's "Full reductions" path selection:
// contiguous input calls the flat kernel directly; non-contiguous input
// is rematerialized into a fresh contiguous copy first, since a strided
// walk over a full reduction would otherwise pay an O(ndim) stride
// computation per element that the flat walk over the copy avoids. The
// copy never touches the caller's array — reductions are read-only by
// contract (§5 "A single array may be read concurrently... as long as
// no thread is writing it").
func fullReduce(tag string, fn reduce.SumFn, a, out *Array, requireNonEmpty bool) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf(tag, err)
	}
	if err := validateNotNil(out); err != nil {
		return numcErrorf(tag, err)
	}
	if err := validateSameDtype(a, out); err != nil {
		return numcErrorf(tag, err)
	}
	if out.desc.Size != 1 {
		return numcErrorf(tag, ErrShape)
	}
	if requireNonEmpty {
		if err := validateNonEmpty(a); err != nil {
			return numcErrorf(tag, err)
		}
	}

	src := a
	if !a.desc.IsContig {
		cp, err := a.Copy()
		if err != nil {
			return numcErrorf(tag, err)
		}
		src = cp
	}

	fn(src.desc.Ptr(), out.desc.Ptr(), src.desc.Size, src.desc.ElemSize)
	return nil
}

// Sum writes the full-reduction sum of a into out (a 1-element array).
// Empty arrays yield the additive identity, 0 (§9 Open Questions
// resolution; see DESIGN.md).
func Sum(a, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Sum", err)
	}
	return fullReduce("Sum", reduce.SumTable[a.desc.Dtype.Index()], a, out, false)
}

// Mean writes the full-reduction mean of a into out, in a's own dtype
// (§4.3: integer truncation for integer dtypes). Empty arrays yield 0.
func Mean(a, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Mean", err)
	}
	return fullReduce("Mean", reduce.MeanTable[a.desc.Dtype.Index()], a, out, false)
}

// Max writes the full-reduction maximum of a into out. Empty arrays
// return ErrInvalid (§9 Open Questions resolution).
func Max(a, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Max", err)
	}
	fn := reduce.SumFn(reduce.MaxTable[a.desc.Dtype.Index()])
	return fullReduce("Max", fn, a, out, true)
}

// Min writes the full-reduction minimum of a into out. Empty arrays
// return ErrInvalid.
func Min(a, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Min", err)
	}
	fn := reduce.SumFn(reduce.MinTable[a.desc.Dtype.Index()])
	return fullReduce("Min", fn, a, out, true)
}

// argFullReduce mirrors fullReduce for the index-returning reductions:
// out must be a 1-element int64 array (§3: "argmax/argmin always
// produce 64-bit signed integer indices").
func argFullReduce(tag string, fn reduce.ArgFn, a, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf(tag, err)
	}
	if err := validateNotNil(out); err != nil {
		return numcErrorf(tag, err)
	}
	if out.desc.Dtype != dtype.Int64 {
		return numcErrorf(tag, ErrType)
	}
	if out.desc.Size != 1 {
		return numcErrorf(tag, ErrShape)
	}
	if err := validateNonEmpty(a); err != nil {
		return numcErrorf(tag, err)
	}

	src := a
	if !a.desc.IsContig {
		cp, err := a.Copy()
		if err != nil {
			return numcErrorf(tag, err)
		}
		src = cp
	}

	idx := fn(src.desc.Ptr(), src.desc.Size, src.desc.ElemSize)
	*(*int64)(out.desc.Ptr()) = idx
	return nil
}

// Argmax writes the index of a's first maximal element into out
// (§8 "argmax(a) returns the smallest index i such that a[i] = max(a)").
func Argmax(a, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Argmax", err)
	}
	return argFullReduce("Argmax", reduce.ArgMaxTable[a.desc.Dtype.Index()], a, out)
}

// Argmin writes the index of a's first minimal element into out.
func Argmin(a, out *Array) error {
	if err := validateNotNil(a); err != nil {
		return numcErrorf("Argmin", err)
	}
	return argFullReduce("Argmin", reduce.ArgMinTable[a.desc.Dtype.Index()], a, out)
}
