package kernel

import "github.com/katalvlaran/numc/dtype"

// Log and Exp for integer dtypes cast through float/double and back
// (§4.2: "For integers, it casts through float/double and back"),
// following the same narrow-vs-wide split as Div and Sqrt.

func logInt8(x int8) int8 { return int8(logFloat32(float32(x))) }
func logInt16(x int16) int16 { return int16(logFloat32(float32(x))) }
func logUint8(x uint8) uint8 { return uint8(logFloat32(float32(x))) }
func logUint16(x uint16) uint16 { return uint16(logFloat32(float32(x))) }
func logInt32(x int32) int32 { return int32(logFloat64(float64(x))) }
func logInt64(x int64) int64 { return int64(logFloat64(float64(x))) }
func logUint32(x uint32) uint32 { return uint32(logFloat64(float64(x))) }
func logUint64(x uint64) uint64 { return uint64(logFloat64(float64(x))) }

var LogTable = UnaryTable{
	dtype.Int8.Index():    makeUnaryKernel(logInt8),
	dtype.Int16.Index():   makeUnaryKernel(logInt16),
	dtype.Int32.Index():   makeUnaryKernel(logInt32),
	dtype.Int64.Index():   makeUnaryKernel(logInt64),
	dtype.Uint8.Index():   makeUnaryKernel(logUint8),
	dtype.Uint16.Index():  makeUnaryKernel(logUint16),
	dtype.Uint32.Index():  makeUnaryKernel(logUint32),
	dtype.Uint64.Index():  makeUnaryKernel(logUint64),
	dtype.Float32.Index(): makeUnaryKernel(logFloat32),
	dtype.Float64.Index(): makeUnaryKernel(logFloat64),
}

func expInt8(x int8) int8 { return int8(expFloat32(float32(x))) }
func expInt16(x int16) int16 { return int16(expFloat32(float32(x))) }
func expUint8(x uint8) uint8 { return uint8(expFloat32(float32(x))) }
func expUint16(x uint16) uint16 { return uint16(expFloat32(float32(x))) }
func expInt32(x int32) int32 { return int32(expFloat64(float64(x))) }
func expInt64(x int64) int64 { return int64(expFloat64(float64(x))) }
func expUint32(x uint32) uint32 { return uint32(expFloat64(float64(x))) }
func expUint64(x uint64) uint64 { return uint64(expFloat64(float64(x))) }

var ExpTable = UnaryTable{
	dtype.Int8.Index():    makeUnaryKernel(expInt8),
	dtype.Int16.Index():   makeUnaryKernel(expInt16),
	dtype.Int32.Index():   makeUnaryKernel(expInt32),
	dtype.Int64.Index():   makeUnaryKernel(expInt64),
	dtype.Uint8.Index():   makeUnaryKernel(expUint8),
	dtype.Uint16.Index():  makeUnaryKernel(expUint16),
	dtype.Uint32.Index():  makeUnaryKernel(expUint32),
	dtype.Uint64.Index():  makeUnaryKernel(expUint64),
	dtype.Float32.Index(): makeUnaryKernel(expFloat32),
	dtype.Float64.Index(): makeUnaryKernel(expFloat64),
}
