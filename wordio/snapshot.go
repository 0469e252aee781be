// Package wordio serializes captured words for out-of-band inspection:
// CBOR snapshots and TOML manifests of named words.
package wordio

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// SnapshotVersion is the current snapshot format version. Bump on any
// incompatible layout or encoding change.
const SnapshotVersion = 1

// Snapshot is a labeled capture of raw words. Only the raw 64-bit
// storage values are carried; field semantics are reapplied on the
// reading side, so a snapshot is valid against any Address parameter.
type Snapshot struct {
	Version int      `cbor:"version"`
	Label   string   `cbor:"label,omitempty"`
	Words   []uint64 `cbor:"words"`
}

// cborEncMode uses canonical mode for deterministic encoding.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wordio: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// NewSnapshot captures the given raw words under a label.
func NewSnapshot(label string, words []uint64) *Snapshot {
	return &Snapshot{
		Version: SnapshotVersion,
		Label:   label,
		Words:   words,
	}
}

// MarshalSnapshot serializes a Snapshot to canonical CBOR bytes.
func MarshalSnapshot(s *Snapshot) ([]byte, error) {
	return cborEncMode.Marshal(s)
}

// UnmarshalSnapshot deserializes a Snapshot from CBOR bytes. A version
// mismatch is an error: snapshots are an I/O boundary, not a contract
// surface, so bad input must never panic.
func UnmarshalSnapshot(data []byte) (*Snapshot, error) {
	var s Snapshot
	if err := cbor.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("wordio: unmarshal snapshot: %w", err)
	}
	if s.Version != SnapshotVersion {
		return nil, fmt.Errorf("wordio: unsupported snapshot version %d (want %d)", s.Version, SnapshotVersion)
	}
	return &s, nil
}
