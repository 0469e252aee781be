package word

import (
	"strings"
	"testing"
)

func TestInspectAgreesWithAccessors(t *testing.T) {
	w := New(addrA)
	w.SetTag(5)
	w.SetData17(-5)

	in := Inspect(w.Raw())

	if in.Raw != w.Raw() {
		t.Errorf("Raw = %#x, want %#x", in.Raw, w.Raw())
	}
	if in.Pointer != uint64(w.Pointer()) {
		t.Errorf("Pointer = %#x, want %#x", in.Pointer, uint64(w.Pointer()))
	}
	if in.Tag != 5 {
		t.Errorf("Tag = %d, want 5", in.Tag)
	}
	if in.TagBits != [3]bool{true, false, true} {
		t.Errorf("TagBits = %v, want [true false true]", in.TagBits)
	}
	if in.Data16 != 4 {
		t.Errorf("Data16 = %d, want 4", in.Data16)
	}
	if !in.Sign {
		t.Error("Sign = false, want true")
	}
	if in.Data17 != -5 {
		t.Errorf("Data17 = %d, want -5", in.Data17)
	}
}

func TestInspectionString(t *testing.T) {
	w := New(addrB)
	w.SetTag(1)
	w.SetData17(-1)

	s := Inspect(w.Raw()).String()
	for _, want := range []string{"raw", "pointer", "tag     1", "sign    true", "data17  -1"} {
		if !strings.Contains(s, want) {
			t.Errorf("Inspection.String() missing %q:\n%s", want, s)
		}
	}
}

func TestWordString(t *testing.T) {
	w := New(addrB)
	w.SetTag(2)
	s := w.String()
	for _, want := range []string{"tag=2", "data17=0"} {
		if !strings.Contains(s, want) {
			t.Errorf("Word.String() = %q, missing %q", s, want)
		}
	}
}
