package word

import (
	"fmt"
	"strings"
)

// Inspection contains the structured decomposition of one raw word.
// Every field is derived by the same masking as the Word accessors, so
// an Inspection of w.Raw() always agrees with w's accessors.
type Inspection struct {
	Raw     uint64 // full storage value
	Pointer uint64 // guts bits, already a valid aligned-pointer pattern
	Tag     uint8  // 3-bit tag value
	TagBits [3]bool
	Data16  uint16 // unsigned data field, bits 47-62
	Sign    bool   // bit 63
	Data17  int32  // sign-magnitude view of Data16 + Sign
}

// Inspect decomposes a raw 64-bit word into its logical fields.
func Inspect(raw uint64) *Inspection {
	w := FromRaw[Addr](raw)
	return &Inspection{
		Raw:     raw,
		Pointer: uint64(w.Pointer()),
		Tag:     w.Tag(),
		TagBits: [3]bool{w.TagBit(0), w.TagBit(1), w.TagBit(2)},
		Data16:  w.Data16(),
		Sign:    w.SignBit(),
		Data17:  w.Data17(),
	}
}

// String renders the inspection as a multi-line field breakdown.
func (in *Inspection) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "raw     0x%016x\n", in.Raw)
	fmt.Fprintf(&b, "pointer 0x%012x\n", in.Pointer)
	fmt.Fprintf(&b, "tag     %d (bit0=%t bit1=%t bit2=%t)\n",
		in.Tag, in.TagBits[0], in.TagBits[1], in.TagBits[2])
	fmt.Fprintf(&b, "data16  %d (0x%04x)\n", in.Data16, in.Data16)
	fmt.Fprintf(&b, "sign    %t\n", in.Sign)
	fmt.Fprintf(&b, "data17  %d", in.Data17)
	return b.String()
}
