package kernel

import "unsafe"

// IterateBinary walks shape (already axis-sorted by the caller) and
// invokes fn on the innermost dimension (§4.2 "Outer iteration"): if
// d==1 the kernel is called once; otherwise the outermost dimension is
// looped and the remaining dimensions recursed into.
func IterateBinary(fn BinaryFn, shape []int, a, b, out unsafe.Pointer, sa, sb, so []int) {
	d := len(shape)
	if d == 0 {
		fn(a, b, out, 1, 0, 0, 0)
		return
	}
	if d == 1 {
		fn(a, b, out, shape[0], sa[0], sb[0], so[0])
		return
	}

	n := shape[0]
	ap, bp, op := a, b, out
	for i := 0; i < n; i++ {
		IterateBinary(fn, shape[1:], ap, bp, op, sa[1:], sb[1:], so[1:])
		ap = unsafe.Add(ap, sa[0])
		bp = unsafe.Add(bp, sb[0])
		op = unsafe.Add(op, so[0])
	}
}

// IterateUnary is IterateBinary's single-operand counterpart, used by
// Neg/Abs/Log/Exp/Sqrt and by Clip's inner walk.
func IterateUnary(fn UnaryFn, shape []int, a, out unsafe.Pointer, sa, so []int) {
	d := len(shape)
	if d == 0 {
		fn(a, out, 1, 0, 0)
		return
	}
	if d == 1 {
		fn(a, out, shape[0], sa[0], so[0])
		return
	}

	n := shape[0]
	ap, op := a, out
	for i := 0; i < n; i++ {
		IterateUnary(fn, shape[1:], ap, op, sa[1:], so[1:])
		ap = unsafe.Add(ap, sa[0])
		op = unsafe.Add(op, so[0])
	}
}

// IterateClip is IterateUnary's counterpart for the two-bound Clip
// kernel; lo/hi are scalar addresses passed through unchanged at every
// level of recursion.
func IterateClip(fn ClipFn, shape []int, a, out, lo, hi unsafe.Pointer, sa, so []int) {
	d := len(shape)
	if d == 0 {
		fn(a, out, lo, hi, 1, 0, 0)
		return
	}
	if d == 1 {
		fn(a, out, lo, hi, shape[0], sa[0], so[0])
		return
	}

	n := shape[0]
	ap, op := a, out
	for i := 0; i < n; i++ {
		IterateClip(fn, shape[1:], ap, op, lo, hi, sa[1:], so[1:])
		ap = unsafe.Add(ap, sa[0])
		op = unsafe.Add(op, so[0])
	}
}

// TotalElems returns the product of shape, the quantity the parallel
// gate's byte-volume rule (§4.2) multiplies by elemSize.
func TotalElems(shape []int) int {
	n := 1
	for _, s := range shape {
		n *= s
	}
	return n
}
