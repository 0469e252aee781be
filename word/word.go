package word

import "fmt"

// Word is a tagged pointer: one 64-bit value multiplexing an aligned
// pointer with caller-defined tag and data bits.
//
// Encoding scheme:
//   - bits 0-2:   tag, three independent flags or one 3-bit unsigned value
//   - bits 3-46:  pointer guts, the 44 significant bits of an aligned pointer
//   - bits 47-62: 16-bit unsigned data field (the magnitude of the signed view)
//   - bit 63:     sign bit, alone or combined with bits 47-62 to form a
//     17-bit sign-magnitude value
//
// The unsigned data field and the 17-bit signed value are two views over
// the same high bits, not independent fields: writing one is observable
// through the other.
//
// A Word is a plain value with no internal synchronization. Two Words are
// equal (==) iff their raw storage is bit-identical. Sharing one instance
// across goroutines requires external synchronization, exactly as for any
// other 8-byte value; each setter is a single independently observable
// write.
//
// A Word never keeps its pointee alive. The stored bits are invisible to
// the garbage collector; see PinSet for the keep-alive side of that
// contract.
type Word[A Address] uint64

// Field masks. The three logical fields are bit-disjoint: tag | guts |
// (data16 | sign) partition the word.
const (
	// Tag mask: bits 0-2, the alignment artifact of an 8-byte-aligned pointer.
	tagMask uint64 = 0x0000000000000007

	// Pointer guts: bits 3-46, stored in place (no shift).
	gutsMask uint64 = 0x00007FFFFFFFFFF8

	// Unsigned data field: bits 47-62.
	data16Mask  uint64 = 0x7FFF800000000000
	data16Shift        = 47

	// Sign bit of the 17-bit signed view.
	signMask uint64 = 0x8000000000000000
)

// Range of the 17-bit sign-magnitude data field.
const (
	MaxData17 int32 = 1<<16 - 1 // 65535
	MinData17 int32 = -(1 << 16) // -65536
)

// Size is the storage footprint of a Word in bytes, independent of the
// Address parameter. Checked at compile time in platform.go.
const Size = wordBytes

// New packs ptr into a fresh Word with tag and data zero.
// The pointer contract is asserted: ptr must be 8-byte aligned and its
// high 17 bits must be zero. Violations are programming errors and panic.
func New[A Address](ptr A) Word[A] {
	checkPointer[A]("word.New", ptr)
	return Word[A](uint64(ptr))
}

// TryNew packs ptr into a fresh Word, reporting false instead of
// panicking when ptr violates the pointer contract.
func TryNew[A Address](ptr A) (Word[A], bool) {
	if uint64(ptr)&^gutsMask != 0 {
		return 0, false
	}
	return Word[A](uint64(ptr)), true
}

// FromRaw reinterprets a raw 64-bit storage value as a Word. It performs
// no validation: the raw word is trusted to have been produced by a Word
// (or by an out-of-band writer following the same layout).
func FromRaw[A Address](raw uint64) Word[A] {
	return Word[A](raw)
}

// Raw returns the full 64-bit storage value, for diagnostics and
// serialization. It exposes no field semantics.
func (w Word[A]) Raw() uint64 {
	return uint64(w)
}

// ---------------------------------------------------------------------------
// Pointer field
// ---------------------------------------------------------------------------

// Pointer reconstructs the stored pointer from the guts bits alone, with
// the tag and data bits forced to zero. It returns exactly the last
// pointer stored, regardless of any tag or data mutations in between.
func (w Word[A]) Pointer() A {
	return A(uint64(w) & gutsMask)
}

// SetPointer overwrites the pointer guts, leaving tag and data untouched.
// Same pointer contract as New; violations panic.
func (w *Word[A]) SetPointer(ptr A) {
	checkPointer[A]("Word.SetPointer", ptr)
	*w = Word[A](uint64(*w)&^gutsMask | uint64(ptr))
}

// TrySetPointer overwrites the pointer guts, reporting false and leaving
// the word unchanged when ptr violates the pointer contract.
func (w *Word[A]) TrySetPointer(ptr A) bool {
	if uint64(ptr)&^gutsMask != 0 {
		return false
	}
	*w = Word[A](uint64(*w)&^gutsMask | uint64(ptr))
	return true
}

// checkPointer asserts the pointer contract: low 3 bits zero (8-byte
// aligned) and high 17 bits zero (44-bit user-space range).
func checkPointer[A Address](op string, ptr A) {
	bits := uint64(ptr)
	if bits&tagMask != 0 {
		panic(op + ": pointer not 8-byte aligned")
	}
	if bits&(data16Mask|signMask) != 0 {
		panic(op + ": pointer outside the 44-bit user-space range")
	}
}

// ---------------------------------------------------------------------------
// Tag field
// ---------------------------------------------------------------------------

// Tag returns the low 3 bits as one unsigned value in [0,7].
func (w Word[A]) Tag() uint8 {
	return uint8(uint64(w) & tagMask)
}

// SetTag overwrites the 3-bit tag. Panics if t > 7.
func (w *Word[A]) SetTag(t uint8) {
	if t > 7 {
		panic("Word.SetTag: tag out of range [0,7]")
	}
	*w = Word[A](uint64(*w)&^tagMask | uint64(t))
}

// TrySetTag overwrites the 3-bit tag, reporting false and leaving the
// word unchanged if t > 7.
func (w *Word[A]) TrySetTag(t uint8) bool {
	if t > 7 {
		return false
	}
	*w = Word[A](uint64(*w)&^tagMask | uint64(t))
	return true
}

// TagBit returns tag bit i, for i in 0..2. Bit 0 is the least
// significant tag bit. Panics on any other index.
func (w Word[A]) TagBit(i int) bool {
	if i < 0 || i > 2 {
		panic("Word.TagBit: bit index out of range [0,2]")
	}
	return uint64(w)&(1<<uint(i)) != 0
}

// SetTagBit sets or clears tag bit i without disturbing the other two
// tag bits or any other field. Panics on an index outside 0..2.
func (w *Word[A]) SetTagBit(i int, on bool) {
	if i < 0 || i > 2 {
		panic("Word.SetTagBit: bit index out of range [0,2]")
	}
	if on {
		*w = Word[A](uint64(*w) | 1<<uint(i))
	} else {
		*w = Word[A](uint64(*w) &^ (1 << uint(i)))
	}
}

// ---------------------------------------------------------------------------
// Data field: 16-bit unsigned and 17-bit sign-magnitude views
// ---------------------------------------------------------------------------

// Data16 returns bits 47-62 as an unsigned value, independent of the
// sign bit. When the 17-bit signed view is in use this is its magnitude.
func (w Word[A]) Data16() uint16 {
	return uint16((uint64(w) & data16Mask) >> data16Shift)
}

// SetData16 overwrites bits 47-62, leaving the sign bit and every other
// field untouched. Every uint16 is in range; nothing to assert.
func (w *Word[A]) SetData16(v uint16) {
	*w = Word[A](uint64(*w)&^data16Mask | uint64(v)<<data16Shift)
}

// SignBit returns bit 63 alone.
func (w Word[A]) SignBit() bool {
	return uint64(w)&signMask != 0
}

// SetSignBit sets or clears bit 63 alone.
func (w *Word[A]) SetSignBit(on bool) {
	if on {
		*w = Word[A](uint64(*w) | signMask)
	} else {
		*w = Word[A](uint64(*w) &^ signMask)
	}
}

// Data17 returns the 17-bit signed view of the high bits. The encoding
// is sign-magnitude, not two's complement: with the sign bit set the
// value is -(magnitude)-1, so sign=1 magnitude=0 reads as -1 and there
// is no representable negative zero.
func (w Word[A]) Data17() int32 {
	mag := int32(w.Data16())
	if w.SignBit() {
		return -mag - 1
	}
	return mag
}

// SetData17 stores v in sign-magnitude form across bits 47-63.
// v must be in [MinData17, MaxData17]; out-of-range values panic rather
// than truncate.
func (w *Word[A]) SetData17(v int32) {
	if !w.TrySetData17(v) {
		panic(fmt.Sprintf("Word.SetData17: value %d out of range [%d,%d]", v, MinData17, MaxData17))
	}
}

// TrySetData17 stores v in sign-magnitude form, reporting false and
// leaving the word unchanged when v is out of range.
func (w *Word[A]) TrySetData17(v int32) bool {
	if v < MinData17 || v > MaxData17 {
		return false
	}
	if v < 0 {
		w.SetData16(uint16(-v - 1))
		w.SetSignBit(true)
	} else {
		w.SetData16(uint16(v))
		w.SetSignBit(false)
	}
	return true
}

// String returns a compact diagnostic rendering. Use Inspect for the
// full structured breakdown.
func (w Word[A]) String() string {
	return fmt.Sprintf("Word(raw=0x%016x ptr=0x%x tag=%d data17=%d)",
		uint64(w), uint64(w.Pointer()), w.Tag(), w.Data17())
}
