package kernel

import (
	"unsafe"

	"golang.org/x/sync/errgroup"
)

// DefaultParallelThreshold is the byte-volume gate from §4.2: "When
// total byte volume n*elem_size exceeds a threshold (1 MiB)..." Below
// this, RunBinary/RunUnary/RunClip never spawn a goroutine, so small
// arrays pay no scheduling overhead (the gate lives at the call site,
// not inside the kernel, per §4.2).
const DefaultParallelThreshold = 1 << 20

// BytesPerThread is the volume-to-worker-count divisor §4.2 specifies:
// "thread count = volume / bytes-per-thread (1 MiB), clamped at >= 1".
const BytesPerThread = 1 << 20

// parallelFor runs body(i) for i in [0, outerN) using an errgroup of
// statically sized chunks when volumeBytes crosses threshold, and
// sequentially otherwise. Parallel sections are a leaf (§5 "The parallel
// region is a leaf: kernels do not recursively spawn"): this is the one
// place the whole engine fans out goroutines.
func parallelFor(outerN, volumeBytes, threshold int, body func(i int)) {
	ParallelFor(outerN, volumeBytes, threshold, body)
}

// ParallelFor runs body(i) for i in [0, outerN) using an errgroup of
// statically sized chunks when volumeBytes crosses threshold, and
// sequentially otherwise. It is the one parallel-for primitive §4.2 and
// §4.4 share ("closely related fourth component because it shares the
// dispatch and parallelism fabric"): internal/matmul's i-loop gates on
// this exact function rather than reimplementing the byte-volume rule.
func ParallelFor(outerN, volumeBytes, threshold int, body func(i int)) {
	if threshold < 0 {
		threshold = DefaultParallelThreshold
	}
	if outerN <= 1 || volumeBytes < threshold {
		for i := 0; i < outerN; i++ {
			body(i)
		}
		return
	}

	workers := volumeBytes / BytesPerThread
	if workers < 1 {
		workers = 1
	}
	if workers > outerN {
		workers = outerN
	}
	chunk := (outerN + workers - 1) / workers

	var g errgroup.Group
	for start := 0; start < outerN; start += chunk {
		start := start
		end := start + chunk
		if end > outerN {
			end = outerN
		}
		g.Go(func() error {
			for i := start; i < end; i++ {
				body(i)
			}
			return nil
		})
	}
	_ = g.Wait() // bodies never return an error; Wait only joins the workers
}

// RunBinary is the element-wise engine's entry point for the binary op
// family: it axis-sorts, decides whether the whole call collapses to a
// single flat kernel invocation, and otherwise parallelizes the
// outermost dimension across the recursive strided walk.
func RunBinary(fn BinaryFn, shape []int, a, b, out unsafe.Pointer, sa, sb, so []int, elemSize, threshold int) {
	if len(shape) <= 1 {
		IterateBinary(fn, shape, a, b, out, sa, sb, so)
		return
	}

	shape = append([]int(nil), shape...)
	sa = append([]int(nil), sa...)
	sb = append([]int(nil), sb...)
	so = append([]int(nil), so...)
	AxisSort(shape, sa, sb, so)

	volume := TotalElems(shape) * elemSize
	outerN := shape[0]
	innerShape, innerSa, innerSb, innerSo := shape[1:], sa[1:], sb[1:], so[1:]

	parallelFor(outerN, volume, threshold, func(i int) {
		ap := unsafe.Add(a, i*sa[0])
		bp := unsafe.Add(b, i*sb[0])
		op := unsafe.Add(out, i*so[0])
		IterateBinary(fn, innerShape, ap, bp, op, innerSa, innerSb, innerSo)
	})
}

// RunUnary mirrors RunBinary for the unary op family.
func RunUnary(fn UnaryFn, shape []int, a, out unsafe.Pointer, sa, so []int, elemSize, threshold int) {
	if len(shape) <= 1 {
		IterateUnary(fn, shape, a, out, sa, so)
		return
	}

	shape = append([]int(nil), shape...)
	sa = append([]int(nil), sa...)
	so = append([]int(nil), so...)
	AxisSort(shape, sa, so)

	volume := TotalElems(shape) * elemSize
	outerN := shape[0]
	innerShape, innerSa, innerSo := shape[1:], sa[1:], so[1:]

	parallelFor(outerN, volume, threshold, func(i int) {
		ap := unsafe.Add(a, i*sa[0])
		op := unsafe.Add(out, i*so[0])
		IterateUnary(fn, innerShape, ap, op, innerSa, innerSo)
	})
}

// RunClip mirrors RunUnary for Clip's extra pair of scalar bounds.
func RunClip(fn ClipFn, shape []int, a, out, lo, hi unsafe.Pointer, sa, so []int, elemSize, threshold int) {
	if len(shape) <= 1 {
		IterateClip(fn, shape, a, out, lo, hi, sa, so)
		return
	}

	shape = append([]int(nil), shape...)
	sa = append([]int(nil), sa...)
	so = append([]int(nil), so...)
	AxisSort(shape, sa, so)

	volume := TotalElems(shape) * elemSize
	outerN := shape[0]
	innerShape, innerSa, innerSo := shape[1:], sa[1:], so[1:]

	parallelFor(outerN, volume, threshold, func(i int) {
		ap := unsafe.Add(a, i*sa[0])
		op := unsafe.Add(out, i*so[0])
		IterateClip(fn, innerShape, ap, op, lo, hi, innerSa, innerSo)
	})
}
