package kernel

import "github.com/katalvlaran/numc/dtype"

// powFixedIter implements the branchless, fixed-iteration square-and-
// multiply pow for 8- and 16-bit widths (§4.2: "a branchless fixed-
// iteration (one loop step per bit of the type width) square-and-
// multiply using unsigned arithmetic so the element loop auto-
// vectorizes"). The per-step multiplier is selected without a branch via
// factor = 1 + (base-1)*bit, which is base when bit==1 and 1 when
// bit==0.
func powFixedIter[U ~uint8 | ~uint16](base, exp U, bits int) U {
	result := U(1)
	b := base
	e := exp
	for i := 0; i < bits; i++ {
		bit := e & 1
		factor := U(1) + (b-U(1))*bit
		result *= factor
		b *= b
		e >>= 1
	}
	return result
}

func powInt8(a, b int8) int8 {
	if b < 0 {
		return 0 // §4.2: "Negative exponent returns 0"
	}
	return int8(powFixedIter(uint8(a), uint8(b), 8))
}

func powUint8(a, b uint8) uint8 {
	return powFixedIter(a, b, 8)
}

func powInt16(a, b int16) int16 {
	if b < 0 {
		return 0
	}
	return int16(powFixedIter(uint16(a), uint16(b), 16))
}

func powUint16(a, b uint16) uint16 {
	return powFixedIter(a, b, 16)
}

// wideInt is the constraint for the square-and-multiply pow used by the
// 32- and 64-bit integer dtypes, which the spec does not mandate a
// branchless fixed-iteration form for (only 8/16-bit are called out).
type wideInt interface {
	~int32 | ~int64 | ~uint32 | ~uint64
}

func powWide[T wideInt](a, b T) T {
	if b < 0 {
		return 0
	}
	result := T(1)
	base := a
	e := b
	for e > 0 {
		if e&1 == 1 {
			result *= base
		}
		base *= base
		e >>= 1
	}
	return result
}

func powInt32(a, b int32) int32 { return powWide(a, b) }
func powUint32(a, b uint32) uint32 { return powWide(a, b) }
func powInt64(a, b int64) int64 { return powWide(a, b) }
func powUint64(a, b uint64) uint64 { return powWide(a, b) }

// Float pow is computed as exp(b*log(a)) using numc's own log/exp
// (§4.2: "Float pow is computed as exp(b · log(a)) using the library's
// own log/exp").
func powFloat32(a, b float32) float32 { return expFloat32(b * logFloat32(a)) }
func powFloat64(a, b float64) float64 { return expFloat64(b * logFloat64(a)) }

var PowTable = BinaryTable{
	dtype.Int8.Index():    makeBinaryKernel(powInt8),
	dtype.Int16.Index():   makeBinaryKernel(powInt16),
	dtype.Int32.Index():   makeBinaryKernel(powInt32),
	dtype.Int64.Index():   makeBinaryKernel(powInt64),
	dtype.Uint8.Index():   makeBinaryKernel(powUint8),
	dtype.Uint16.Index():  makeBinaryKernel(powUint16),
	dtype.Uint32.Index():  makeBinaryKernel(powUint32),
	dtype.Uint64.Index():  makeBinaryKernel(powUint64),
	dtype.Float32.Index(): makeBinaryKernel(powFloat32),
	dtype.Float64.Index(): makeBinaryKernel(powFloat64),
}
