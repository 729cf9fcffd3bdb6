package neon

// SignedInts is a constraint for the signed lane widths NEON integer
// arithmetic operates on.
type SignedInts interface {
	~int8 | ~int16 | ~int32
}

// UnsignedInts is a constraint for the unsigned lane widths.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32
}

// Integers is a constraint for all supported lane types.
type Integers interface {
	SignedInts | UnsignedInts
}

// 64-bit (D) registers.
type (
	// Int8x8 is a 64-bit vector of 8 signed 8-bit lanes (int8x8_t).
	Int8x8 [8]int8
	// Int16x4 is a 64-bit vector of 4 signed 16-bit lanes (int16x4_t).
	Int16x4 [4]int16
	// Int32x2 is a 64-bit vector of 2 signed 32-bit lanes (int32x2_t).
	Int32x2 [2]int32
	// Uint8x8 is a 64-bit vector of 8 unsigned 8-bit lanes (uint8x8_t).
	Uint8x8 [8]uint8
	// Uint16x4 is a 64-bit vector of 4 unsigned 16-bit lanes (uint16x4_t).
	Uint16x4 [4]uint16
	// Uint32x2 is a 64-bit vector of 2 unsigned 32-bit lanes (uint32x2_t).
	Uint32x2 [2]uint32
)

// 128-bit (Q) registers.
type (
	// Int8x16 is a 128-bit vector of 16 signed 8-bit lanes (int8x16_t).
	Int8x16 [16]int8
	// Int16x8 is a 128-bit vector of 8 signed 16-bit lanes (int16x8_t).
	Int16x8 [8]int16
	// Int32x4 is a 128-bit vector of 4 signed 32-bit lanes (int32x4_t).
	Int32x4 [4]int32
	// Uint8x16 is a 128-bit vector of 16 unsigned 8-bit lanes (uint8x16_t).
	Uint8x16 [16]uint8
	// Uint16x8 is a 128-bit vector of 8 unsigned 16-bit lanes (uint16x8_t).
	Uint16x8 [8]uint16
	// Uint32x4 is a 128-bit vector of 4 unsigned 32-bit lanes (uint32x4_t).
	Uint32x4 [4]uint32
)

// fromSlice copies exactly n lanes from src into a fresh register.
// A register holds a fixed lane count by construction; handing it a
// slice of any other length is a caller bug, not a recoverable state.
func fromSlice[T Integers](dst []T, src []T) {
	if len(src) != len(dst) {
		panic("neon: slice length does not match lane count")
	}
	copy(dst, src)
}

// Int8x8FromSlice builds a register from exactly 8 lanes, lane 0 first.
// It panics if src has any other length.
func Int8x8FromSlice(src []int8) Int8x8 {
	var v Int8x8
	fromSlice(v[:], src)
	return v
}

// Int16x4FromSlice builds a register from exactly 4 lanes, lane 0 first.
// It panics if src has any other length.
func Int16x4FromSlice(src []int16) Int16x4 {
	var v Int16x4
	fromSlice(v[:], src)
	return v
}

// Int32x2FromSlice builds a register from exactly 2 lanes, lane 0 first.
// It panics if src has any other length.
func Int32x2FromSlice(src []int32) Int32x2 {
	var v Int32x2
	fromSlice(v[:], src)
	return v
}

// Uint8x8FromSlice builds a register from exactly 8 lanes, lane 0 first.
// It panics if src has any other length.
func Uint8x8FromSlice(src []uint8) Uint8x8 {
	var v Uint8x8
	fromSlice(v[:], src)
	return v
}

// Uint16x4FromSlice builds a register from exactly 4 lanes, lane 0 first.
// It panics if src has any other length.
func Uint16x4FromSlice(src []uint16) Uint16x4 {
	var v Uint16x4
	fromSlice(v[:], src)
	return v
}

// Uint32x2FromSlice builds a register from exactly 2 lanes, lane 0 first.
// It panics if src has any other length.
func Uint32x2FromSlice(src []uint32) Uint32x2 {
	var v Uint32x2
	fromSlice(v[:], src)
	return v
}

// Int8x16FromSlice builds a register from exactly 16 lanes, lane 0 first.
// It panics if src has any other length.
func Int8x16FromSlice(src []int8) Int8x16 {
	var v Int8x16
	fromSlice(v[:], src)
	return v
}

// Int16x8FromSlice builds a register from exactly 8 lanes, lane 0 first.
// It panics if src has any other length.
func Int16x8FromSlice(src []int16) Int16x8 {
	var v Int16x8
	fromSlice(v[:], src)
	return v
}

// Int32x4FromSlice builds a register from exactly 4 lanes, lane 0 first.
// It panics if src has any other length.
func Int32x4FromSlice(src []int32) Int32x4 {
	var v Int32x4
	fromSlice(v[:], src)
	return v
}

// Uint8x16FromSlice builds a register from exactly 16 lanes, lane 0 first.
// It panics if src has any other length.
func Uint8x16FromSlice(src []uint8) Uint8x16 {
	var v Uint8x16
	fromSlice(v[:], src)
	return v
}

// Uint16x8FromSlice builds a register from exactly 8 lanes, lane 0 first.
// It panics if src has any other length.
func Uint16x8FromSlice(src []uint16) Uint16x8 {
	var v Uint16x8
	fromSlice(v[:], src)
	return v
}

// Uint32x4FromSlice builds a register from exactly 4 lanes, lane 0 first.
// It panics if src has any other length.
func Uint32x4FromSlice(src []uint32) Uint32x4 {
	var v Uint32x4
	fromSlice(v[:], src)
	return v
}

// Lanes returns the lane count of each register type.

func (Int8x8) Lanes() int   { return 8 }
func (Int16x4) Lanes() int  { return 4 }
func (Int32x2) Lanes() int  { return 2 }
func (Uint8x8) Lanes() int  { return 8 }
func (Uint16x4) Lanes() int { return 4 }
func (Uint32x2) Lanes() int { return 2 }

func (Int8x16) Lanes() int  { return 16 }
func (Int16x8) Lanes() int  { return 8 }
func (Int32x4) Lanes() int  { return 4 }
func (Uint8x16) Lanes() int { return 16 }
func (Uint16x8) Lanes() int { return 8 }
func (Uint32x4) Lanes() int { return 4 }

// Slice returns the lanes as a fresh slice, lane 0 first. The slice
// does not alias the register; callers may pass it to code that treats
// lane data as an opaque numeric buffer.

func (v Int8x8) Slice() []int8     { return append([]int8(nil), v[:]...) }
func (v Int16x4) Slice() []int16   { return append([]int16(nil), v[:]...) }
func (v Int32x2) Slice() []int32   { return append([]int32(nil), v[:]...) }
func (v Uint8x8) Slice() []uint8   { return append([]uint8(nil), v[:]...) }
func (v Uint16x4) Slice() []uint16 { return append([]uint16(nil), v[:]...) }
func (v Uint32x2) Slice() []uint32 { return append([]uint32(nil), v[:]...) }

func (v Int8x16) Slice() []int8    { return append([]int8(nil), v[:]...) }
func (v Int16x8) Slice() []int16   { return append([]int16(nil), v[:]...) }
func (v Int32x4) Slice() []int32   { return append([]int32(nil), v[:]...) }
func (v Uint8x16) Slice() []uint8  { return append([]uint8(nil), v[:]...) }
func (v Uint16x8) Slice() []uint16 { return append([]uint16(nil), v[:]...) }
func (v Uint32x4) Slice() []uint32 { return append([]uint32(nil), v[:]...) }
