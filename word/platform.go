//go:build amd64 || arm64 || riscv64 || loong64

package word

import "unsafe"

// Platform contract: 64-bit little-endian user-space targets only. The
// build constraint above enumerates them; on any other GOARCH this file
// is excluded and the package fails to compile (wordBytes undefined),
// which is the intended build-time failure mode.

// wordBytes is the machine word size the layout is defined against.
const wordBytes = 8

// Compile-time assertions: pointer width and Word storage are exactly one
// machine word. Each pair fails to compile (constant underflow) if either
// side exceeds the other.
const (
	_ = uint64(unsafe.Sizeof(uintptr(0)) - wordBytes)
	_ = uint64(wordBytes - unsafe.Sizeof(uintptr(0)))
	_ = uint64(unsafe.Sizeof(Word[Addr](0)) - wordBytes)
	_ = uint64(wordBytes - unsafe.Sizeof(Word[Addr](0)))
)
