// SPDX-License-Identifier: MIT
package numc

import "github.com/katalvlaran/numc/internal/ndarray"

// translateNdarrayErr maps internal/ndarray's sentinel set onto numc's
// public error taxonomy (§7). ndarray keeps its own sentinels so it can
// be unit-tested without importing the root package (which would create
// an import cycle, since the root package imports ndarray); this is the
// one place the two vocabularies meet.
func translateNdarrayErr(err error) error {
	switch err {
	case ndarray.ErrRank:
		return ErrDim
	case ndarray.ErrShape:
		return ErrShape
	case ndarray.ErrAxis:
		return ErrAxis
	case ndarray.ErrStep:
		return ErrInvalid
	case ndarray.ErrRange:
		return ErrShape
	case ndarray.ErrNotContig:
		return ErrContiguous
	case ndarray.ErrOverflow:
		return ErrOverflow
	case ndarray.ErrExhausted:
		return ErrAlloc
	default:
		return err
	}
}
