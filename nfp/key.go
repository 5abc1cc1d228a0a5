package nfp

import "fmt"

// Key is the canonical identity of an NFP query: spec 4.N's tuple
// (A_id, B_id, A_rot, B_rot, inside). For an inner-NFP query, AID is the
// container's ID. RotationID fields index into each part's allowed
// rotation set rather than carrying raw degrees, so the key is exact (no
// float comparison) and independent of insertion order.
type Key struct {
	AID        string
	BID        string
	ARotation  int
	BRotation  int
	Inside     bool
}

// String renders Key as a deterministic cache/map key.
func (k Key) String() string {
	return fmt.Sprintf("%s|%d|%s|%d|%t", k.AID, k.ARotation, k.BID, k.BRotation, k.Inside)
}
