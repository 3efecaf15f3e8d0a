// SPDX-License-Identifier: MIT

// Package numc: precondition checks shared by every public operation,
// in the style of matrix/validators.go — small functions, each wrapping
// its failure with a tag via numcErrorf, called at the top of every
// public operation before any kernel runs.
package numc

import "fmt"

// validatorErrorf wraps an underlying error with the validator tag that
// produced it, the way matrix/validators.go's validatorErrorf does.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// validateNotNil ensures a is a non-nil *Array with a live descriptor.
func validateNotNil(a *Array) error {
	if a == nil || a.desc == nil {
		return validatorErrorf("validateNotNil", ErrNull)
	}
	return nil
}

// validateSameDtype requires every array in arrs to share one dtype
// (§4.2 broadcast validation rule 1: "a.dtype = b.dtype = out.dtype").
func validateSameDtype(arrs ...*Array) error {
	if len(arrs) == 0 {
		return nil
	}
	want := arrs[0].desc.Dtype
	for _, a := range arrs[1:] {
		if a.desc.Dtype != want {
			return validatorErrorf("validateSameDtype", ErrType)
		}
	}
	return nil
}

// validateShapeEquals requires a's shape to equal want exactly.
func validateShapeEquals(a *Array, want []int) error {
	got := a.desc.Shape()
	if len(got) != len(want) {
		return validatorErrorf("validateShapeEquals", ErrShape)
	}
	for i := range got {
		if got[i] != want[i] {
			return validatorErrorf("validateShapeEquals", ErrShape)
		}
	}
	return nil
}

// validateContiguous requires a to already be contiguous, refusing to
// rematerialize implicitly (§7 CONTIGUOUS).
func validateContiguous(a *Array) error {
	if !a.desc.IsContig {
		return validatorErrorf("validateContiguous", ErrContiguous)
	}
	return nil
}

// validateAxis requires axis to lie in [0, ndim).
func validateAxis(axis, ndim int) error {
	if axis < 0 || axis >= ndim {
		return validatorErrorf("validateAxis", ErrAxis)
	}
	return nil
}

// validateRank requires a to have exactly want dimensions.
func validateRank(a *Array, want int) error {
	if a.desc.Ndim() != want {
		return validatorErrorf("validateRank", ErrDim)
	}
	return nil
}

// validateNonEmpty rejects an array with zero total elements, the policy
// §9's Open Questions resolution picks for max/min/argmax/argmin (see
// DESIGN.md's "Zero-length reductions" entry).
func validateNonEmpty(a *Array) error {
	if a.desc.Size == 0 {
		return validatorErrorf("validateNonEmpty", ErrInvalid)
	}
	return nil
}
