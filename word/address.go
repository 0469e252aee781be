package word

import "unsafe"

// Address is the capability contract for the Word parameter: any type
// that is a thin wrapper around an address-sized integer, so its 64-bit
// bit pattern converts exactly in both directions. The zero bit pattern
// is the null-equivalent. Raw memory addresses use Addr; callers with
// their own address-like types (handles, offsets, packed ids) satisfy
// the constraint directly.
//
// A Word[A] is safe to pass between goroutines by value whenever A is;
// every type in the constraint's type set is.
type Address interface {
	~uintptr | ~uint64
}

// Addr is the canonical Address implementation: a raw user-space memory
// address. Addr(0) is null.
type Addr uintptr

// AddrOf returns the address of p as an Addr.
//
// The result is a bare bit pattern: the garbage collector does not trace
// it, so p must be kept alive by other means (a live Go reference, or a
// PinSet) for as long as the address may be dereferenced.
func AddrOf[T any](p *T) Addr {
	return Addr(uintptr(unsafe.Pointer(p)))
}

// PointerAt reinterprets a as a *T. A null Addr yields nil. The caller
// is responsible for a actually addressing a live T.
func PointerAt[T any](a Addr) *T {
	if a == 0 {
		return nil
	}
	return (*T)(unsafe.Pointer(uintptr(a)))
}

// Aligned reports whether a is 8-byte aligned (low 3 bits zero).
func (a Addr) Aligned() bool {
	return uint64(a)&tagMask == 0
}

// InRange reports whether a fits the 44-bit user-space range (high 17
// bits zero).
func (a Addr) InRange() bool {
	return uint64(a)&(data16Mask|signMask) == 0
}

// Packable reports whether a satisfies the full pointer contract of New
// and SetPointer.
func (a Addr) Packable() bool {
	return a.Aligned() && a.InRange()
}
