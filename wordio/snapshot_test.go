package wordio

import (
	"testing"

	"github.com/fxamacker/cbor/v2"
)

func TestSnapshotRoundTrip(t *testing.T) {
	words := []uint64{0, 0x1f8, 0x8002000000fe3a05}
	s := NewSnapshot("boot", words)

	data, err := MarshalSnapshot(s)
	if err != nil {
		t.Fatalf("MarshalSnapshot: %v", err)
	}

	got, err := UnmarshalSnapshot(data)
	if err != nil {
		t.Fatalf("UnmarshalSnapshot: %v", err)
	}
	if got.Label != "boot" {
		t.Errorf("Label = %q, want %q", got.Label, "boot")
	}
	if len(got.Words) != len(words) {
		t.Fatalf("len(Words) = %d, want %d", len(got.Words), len(words))
	}
	for i, w := range words {
		if got.Words[i] != w {
			t.Errorf("Words[%d] = %#x, want %#x", i, got.Words[i], w)
		}
	}
}

func TestSnapshotDeterministicEncoding(t *testing.T) {
	s := NewSnapshot("x", []uint64{1, 2, 3})
	a, err := MarshalSnapshot(s)
	if err != nil {
		t.Fatalf("MarshalSnapshot: %v", err)
	}
	b, err := MarshalSnapshot(s)
	if err != nil {
		t.Fatalf("MarshalSnapshot: %v", err)
	}
	if string(a) != string(b) {
		t.Error("canonical encoding must be byte-identical across calls")
	}
}

func TestSnapshotVersionMismatch(t *testing.T) {
	data, err := cbor.Marshal(&Snapshot{Version: SnapshotVersion + 1})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if _, err := UnmarshalSnapshot(data); err == nil {
		t.Error("UnmarshalSnapshot accepted a future version")
	}
}

func TestSnapshotGarbageInput(t *testing.T) {
	if _, err := UnmarshalSnapshot([]byte{0xff, 0x00, 0x13}); err == nil {
		t.Error("UnmarshalSnapshot accepted garbage bytes")
	}
}
