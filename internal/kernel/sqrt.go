package kernel

import (
	"math"

	"github.com/chewxy/math32"
	"github.com/katalvlaran/numc/dtype"
)

// Sqrt's casting rule mirrors Div's width split (§4.2 groups both under
// "numerically delicate kernels" that cast narrow integers through
// float32 and 32-bit integers through float64). Signed integers clamp
// negatives to 0 before the cast ("Sqrt for signed integers clamps
// negatives to 0"); float sqrt uses github.com/chewxy/math32's
// dedicated float32 Sqrt for the 32-bit dtype instead of round-tripping
// through float64, the same "maps to the hardware instruction" intent
// the spec asks for, and math.Sqrt for float64.
func sqrtInt8(x int8) int8 {
	if x < 0 {
		x = 0
	}
	return int8(math32.Sqrt(float32(x)))
}

func sqrtInt16(x int16) int16 {
	if x < 0 {
		x = 0
	}
	return int16(math32.Sqrt(float32(x)))
}

func sqrtUint8(x uint8) uint8 { return uint8(math32.Sqrt(float32(x))) }
func sqrtUint16(x uint16) uint16 { return uint16(math32.Sqrt(float32(x))) }

func sqrtInt32(x int32) int32 {
	if x < 0 {
		x = 0
	}
	return int32(math.Sqrt(float64(x)))
}

func sqrtInt64(x int64) int64 {
	if x < 0 {
		x = 0
	}
	return int64(math.Sqrt(float64(x)))
}

func sqrtUint32(x uint32) uint32 { return uint32(math.Sqrt(float64(x))) }
func sqrtUint64(x uint64) uint64 { return uint64(math.Sqrt(float64(x))) }

func sqrtFloat32(x float32) float32 { return math32.Sqrt(x) }
func sqrtFloat64(x float64) float64 { return math.Sqrt(x) }

var SqrtTable = UnaryTable{
	dtype.Int8.Index():    makeUnaryKernel(sqrtInt8),
	dtype.Int16.Index():   makeUnaryKernel(sqrtInt16),
	dtype.Int32.Index():   makeUnaryKernel(sqrtInt32),
	dtype.Int64.Index():   makeUnaryKernel(sqrtInt64),
	dtype.Uint8.Index():   makeUnaryKernel(sqrtUint8),
	dtype.Uint16.Index():  makeUnaryKernel(sqrtUint16),
	dtype.Uint32.Index():  makeUnaryKernel(sqrtUint32),
	dtype.Uint64.Index():  makeUnaryKernel(sqrtUint64),
	dtype.Float32.Index(): makeUnaryKernel(sqrtFloat32),
	dtype.Float64.Index(): makeUnaryKernel(sqrtFloat64),
}
