// Package dtype defines the closed set of element types numc arrays may
// hold: their size, alignment, and signedness, plus the generic numeric
// constraints the kernel and reduction engines instantiate against.
//
// The set is fixed by design (§3 of the spec this package implements):
// adding an eleventh type means extending this file, the dispatch tables
// in internal/kernel, internal/reduce and internal/matmul, and the root
// package's scalar encoder (fillWriter).
package dtype

import "fmt"

// Dtype identifies one of the ten fixed numeric element types numc
// supports. The zero value is intentionally invalid so a forgotten
// initialization surfaces as an error rather than silently behaving like
// Int8.
type Dtype uint8

// The closed enumeration of element types. Order is stable API: values
// are persisted nowhere, but tests and dispatch tables index by this
// ordering, so entries are only ever appended, never reordered.
const (
	Invalid Dtype = iota
	Int8
	Int16
	Int32
	Int64
	Uint8
	Uint16
	Uint32
	Uint64
	Float32
	Float64

	numDtypes = int(Float64) + 1
)

// info carries the static facts about one dtype: byte size, alignment
// (equal to size, per §3), and whether it is a signed integer type.
type info struct {
	name     string
	size     int
	signed   bool
	float    bool
	unsigned bool
}

var registry = [numDtypes]info{
	Invalid: {name: "invalid"},
	Int8:    {name: "int8", size: 1, signed: true},
	Int16:   {name: "int16", size: 2, signed: true},
	Int32:   {name: "int32", size: 4, signed: true},
	Int64:   {name: "int64", size: 8, signed: true},
	Uint8:   {name: "uint8", size: 1, unsigned: true},
	Uint16:  {name: "uint16", size: 2, unsigned: true},
	Uint32:  {name: "uint32", size: 4, unsigned: true},
	Uint64:  {name: "uint64", size: 8, unsigned: true},
	Float32: {name: "float32", size: 4, float: true},
	Float64: {name: "float64", size: 8, float: true},
}

// Size returns the element's byte size (1, 2, 4, or 8).
func (d Dtype) Size() int {
	if !d.Valid() {
		return 0
	}
	return registry[d].size
}

// Align returns the element's natural alignment, equal to its Size (§3).
func (d Dtype) Align() int {
	return d.Size()
}

// Valid reports whether d is one of the ten registered element types.
func (d Dtype) Valid() bool {
	return d > Invalid && int(d) < numDtypes
}

// IsSigned reports whether d is a signed integer type.
func (d Dtype) IsSigned() bool {
	return d.Valid() && registry[d].signed
}

// IsUnsigned reports whether d is an unsigned integer type.
func (d Dtype) IsUnsigned() bool {
	return d.Valid() && registry[d].unsigned
}

// IsFloat reports whether d is a floating-point type.
func (d Dtype) IsFloat() bool {
	return d.Valid() && registry[d].float
}

// IsInteger reports whether d is any integer type, signed or unsigned.
func (d Dtype) IsInteger() bool {
	return d.IsSigned() || d.IsUnsigned()
}

// String implements fmt.Stringer for diagnostic messages and test output.
func (d Dtype) String() string {
	if !d.Valid() {
		return "invalid"
	}
	return registry[d].name
}

// Index returns the zero-based dispatch index for d, used by internal
// per-dtype kernel tables. Panics if d is invalid; callers validate d
// before reaching dispatch.
func (d Dtype) Index() int {
	if !d.Valid() {
		panic(fmt.Sprintf("dtype: Index called on invalid dtype %d", uint8(d)))
	}
	return int(d) - 1 // Int8 -> 0 ... Float64 -> 9
}

// NumDtypes is the number of valid dtypes; dispatch tables are arrays of
// this length indexed by Dtype.Index().
const NumDtypes = numDtypes - 1

// Numeric is the generic constraint satisfied by the ten concrete Go
// types backing numc arrays. Kernel and reduction code is written once
// against this constraint and monomorphized per dtype at the dispatch
// table's construction (see internal/kernel and internal/reduce).
type Numeric interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Signed is the subset of Numeric used by kernels that only make sense
// for signed types (e.g. Neg, signed Abs).
type Signed interface {
	~int8 | ~int16 | ~int32 | ~int64 | ~float32 | ~float64
}

// Float is the subset of Numeric used by float-only kernels (Log, Exp,
// and the pairwise/multi-accumulator reduction algorithms).
type Float interface {
	~float32 | ~float64
}
