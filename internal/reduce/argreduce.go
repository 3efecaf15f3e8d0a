package reduce

import (
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
)

type ArgTable [dtype.NumDtypes]ArgFn

// argExtreme returns the index of the winning element according to
// better(candidate, current). Ties resolve to the lowest index since the
// scan only replaces on a strict improvement.
func argExtreme[T dtype.Numeric](better func(candidate, current T) bool) func(unsafe.Pointer, int, int) int64 {
	return func(data unsafe.Pointer, n, stride int) int64 {
		p := data
		bestIdx := int64(0)
		best := *(*T)(p)
		p = unsafe.Add(p, stride)
		for i := int64(1); i < int64(n); i++ {
			v := *(*T)(p)
			if better(v, best) {
				best = v
				bestIdx = i
			}
			p = unsafe.Add(p, stride)
		}
		return bestIdx
	}
}

func argMaxBetter[T dtype.Numeric](candidate, current T) bool { return candidate > current }
func argMinBetter[T dtype.Numeric](candidate, current T) bool { return candidate < current }

// argExtremeFloat is the float variant of argExtreme: a NaN candidate is
// skipped, and a NaN incumbent (only possible from index 0) is replaced
// by the first non-NaN element, so the result is the lowest index of the
// extreme among the non-NaN values. An all-NaN input yields index 0.
func argExtremeFloat[T dtype.Float](better func(candidate, current T) bool) func(unsafe.Pointer, int, int) int64 {
	return func(data unsafe.Pointer, n, stride int) int64 {
		p := data
		bestIdx := int64(0)
		best := *(*T)(p)
		p = unsafe.Add(p, stride)
		for i := int64(1); i < int64(n); i++ {
			v := *(*T)(p)
			if v == v && (best != best || better(v, best)) {
				best = v
				bestIdx = i
			}
			p = unsafe.Add(p, stride)
		}
		return bestIdx
	}
}

var ArgMaxTable = ArgTable{
	dtype.Int8.Index():    argExtreme(argMaxBetter[int8]),
	dtype.Int16.Index():   argExtreme(argMaxBetter[int16]),
	dtype.Int32.Index():   argExtreme(argMaxBetter[int32]),
	dtype.Int64.Index():   argExtreme(argMaxBetter[int64]),
	dtype.Uint8.Index():   argExtreme(argMaxBetter[uint8]),
	dtype.Uint16.Index():  argExtreme(argMaxBetter[uint16]),
	dtype.Uint32.Index():  argExtreme(argMaxBetter[uint32]),
	dtype.Uint64.Index():  argExtreme(argMaxBetter[uint64]),
	dtype.Float32.Index(): argExtremeFloat(argMaxBetter[float32]),
	dtype.Float64.Index(): argExtremeFloat(argMaxBetter[float64]),
}

var ArgMinTable = ArgTable{
	dtype.Int8.Index():    argExtreme(argMinBetter[int8]),
	dtype.Int16.Index():   argExtreme(argMinBetter[int16]),
	dtype.Int32.Index():   argExtreme(argMinBetter[int32]),
	dtype.Int64.Index():   argExtreme(argMinBetter[int64]),
	dtype.Uint8.Index():   argExtreme(argMinBetter[uint8]),
	dtype.Uint16.Index():  argExtreme(argMinBetter[uint16]),
	dtype.Uint32.Index():  argExtreme(argMinBetter[uint32]),
	dtype.Uint64.Index():  argExtreme(argMinBetter[uint64]),
	dtype.Float32.Index(): argExtremeFloat(argMinBetter[float32]),
	dtype.Float64.Index(): argExtremeFloat(argMinBetter[float64]),
}
