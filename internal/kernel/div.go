package kernel

import "github.com/katalvlaran/numc/dtype"

// Div's per-dtype casting rule (§4.2 "Numerically delicate kernels"):
// narrow integers divide through a wider float type to sidestep
// undefined behavior at INT_MIN/-1 and keep the result well-defined;
// wide integers and floats divide natively. Go's native integer
// division by zero panics (the runtime's analogue of the hardware trap
// a native C division would take); this is left as-is per §7's
// "implementation-defined" clause for integer division by zero rather
// than papered over with a manual zero-check, since the spec does not
// ask for one.
func divInt8(a, b int8) int8 { return int8(float32(a) / float32(b)) }
func divInt16(a, b int16) int16 { return int16(float32(a) / float32(b)) }
func divUint8(a, b uint8) uint8 { return uint8(float32(a) / float32(b)) }
func divUint16(a, b uint16) uint16 { return uint16(float32(a) / float32(b)) }
func divInt32(a, b int32) int32 { return int32(float64(a) / float64(b)) }
func divUint32(a, b uint32) uint32 { return uint32(float64(a) / float64(b)) }
func divInt64(a, b int64) int64 { return a / b }
func divUint64(a, b uint64) uint64 { return a / b }
func divFloat32(a, b float32) float32 { return a / b }
func divFloat64(a, b float64) float64 { return a / b }

var DivTable = BinaryTable{
	dtype.Int8.Index():    makeBinaryKernel(divInt8),
	dtype.Int16.Index():   makeBinaryKernel(divInt16),
	dtype.Int32.Index():   makeBinaryKernel(divInt32),
	dtype.Int64.Index():   makeBinaryKernel(divInt64),
	dtype.Uint8.Index():   makeBinaryKernel(divUint8),
	dtype.Uint16.Index():  makeBinaryKernel(divUint16),
	dtype.Uint32.Index():  makeBinaryKernel(divUint32),
	dtype.Uint64.Index():  makeBinaryKernel(divUint64),
	dtype.Float32.Index(): makeBinaryKernel(divFloat32),
	dtype.Float64.Index(): makeBinaryKernel(divFloat64),
}
