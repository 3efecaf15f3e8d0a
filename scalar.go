// SPDX-License-Identifier: MIT
package numc

import (
	"unsafe"

	"github.com/katalvlaran/numc/dtype"
)

// fillWriter returns a closure that encodes value into one element slot
// of the given dtype (§4.2 "Scalar conversion": "A double scalar is
// converted to the operand dtype by truncating/rounding toward zero for
// integer targets and by the normal IEEE conversion for float targets").
// Go's float-to-integer conversion already truncates toward zero, so
// each case below is a direct conversion.
func fillWriter(dt dtype.Dtype, value float64) func(unsafe.Pointer) {
	switch dt {
	case dtype.Int8:
		v := int8(value)
		return func(p unsafe.Pointer) { *(*int8)(p) = v }
	case dtype.Int16:
		v := int16(value)
		return func(p unsafe.Pointer) { *(*int16)(p) = v }
	case dtype.Int32:
		v := int32(value)
		return func(p unsafe.Pointer) { *(*int32)(p) = v }
	case dtype.Int64:
		v := int64(value)
		return func(p unsafe.Pointer) { *(*int64)(p) = v }
	case dtype.Uint8:
		v := uint8(value)
		return func(p unsafe.Pointer) { *(*uint8)(p) = v }
	case dtype.Uint16:
		v := uint16(value)
		return func(p unsafe.Pointer) { *(*uint16)(p) = v }
	case dtype.Uint32:
		v := uint32(value)
		return func(p unsafe.Pointer) { *(*uint32)(p) = v }
	case dtype.Uint64:
		v := uint64(value)
		return func(p unsafe.Pointer) { *(*uint64)(p) = v }
	case dtype.Float32:
		v := float32(value)
		return func(p unsafe.Pointer) { *(*float32)(p) = v }
	default: // dtype.Float64
		v := value
		return func(p unsafe.Pointer) { *(*float64)(p) = v }
	}
}

// scalarPointer encodes value into a dtype-sized element and returns a
// pointer to it, suitable as the "b" operand of a BinaryFn with stride 0
// (§4.2 "The 8-byte scratch buffer is then used with sb = 0"). The
// backing array is heap-allocated so the returned pointer stays valid
// for the caller's use.
func scalarPointer(dt dtype.Dtype, value float64) unsafe.Pointer {
	buf := new([8]byte)
	fillWriter(dt, value)(unsafe.Pointer(&buf[0]))
	return unsafe.Pointer(&buf[0])
}
