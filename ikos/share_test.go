package ikos

import (
	"bytes"
	"testing"
)

func threeContexts(t *testing.T, tapeLengthBits int) [3]*Context {
	t.Helper()
	var out [3]*Context
	for i := 0; i < 3; i++ {
		seed := bytes.Repeat([]byte{byte(i + 1)}, 16)
		c, err := newContextFromReader(bytes.NewReader(seed), tapeLengthBits)
		if err != nil {
			t.Fatalf("unexpected error building context %d: %v", i, err)
		}
		out[i] = c
	}
	return out
}

// openTwo opens the two non-hidden parties in wire-contract order: local
// index 0 is role (hidden+1)%3 (whose real cross-term neighbor is the
// other opened party, recomputable by AndV/AddV) and local index 1 is
// role (hidden+2)%3 (whose real neighbor is the hidden party, read
// straight from its disclosed trace).
func openTwo(ctxs [3]*Context, hidden int) ([2]*Context, [2]int) {
	roles := [2]int{(hidden + 1) % 3, (hidden + 2) % 3}
	var open [2]*Context
	for k, i := range roles {
		open[k] = ContextFromView(&View{Seed: ctxs[i].view.Seed, InputShares: ctxs[i].view.InputShares, OutputTrace: append([]uint32(nil), ctxs[i].view.OutputTrace...)}, len(ctxs[i].tape)*32)
	}
	return open, roles
}

func TestAndPReconstructsLogicalValue(t *testing.T) {
	ctxs := threeContexts(t, 512)
	ctxList := []*Context{ctxs[0], ctxs[1], ctxs[2]}

	a := NewShareP([3]uint32{5, 9, 1}, ctxList)
	b := NewShareP([3]uint32{2, 2, 2}, ctxList)

	out, err := AndP(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := uint32((5 ^ 9 ^ 1) & (2 ^ 2 ^ 2))
	if out.Reconstruct() != want {
		t.Fatalf("got %#x, want %#x", out.Reconstruct(), want)
	}
}

func TestAddPReconstructsLogicalValue(t *testing.T) {
	ctxs := threeContexts(t, 512)
	ctxList := []*Context{ctxs[0], ctxs[1], ctxs[2]}

	a := NewShareP([3]uint32{10, 20, 3}, ctxList)
	b := NewShareP([3]uint32{1, 0, 0}, ctxList)

	out, err := AddP(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := uint32((10 ^ 20 ^ 3) + (1 ^ 0 ^ 0))
	if out.Reconstruct() != want {
		t.Fatalf("got %#x, want %#x", out.Reconstruct(), want)
	}
}

func TestAndVReplaysOpenedParties(t *testing.T) {
	ctxs := threeContexts(t, 512)
	ctxList := []*Context{ctxs[0], ctxs[1], ctxs[2]}

	aVals := [3]uint32{5, 9, 1}
	bVals := [3]uint32{2, 2, 2}
	a := NewShareP(aVals, ctxList)
	b := NewShareP(bVals, ctxList)
	if _, err := AndP(a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hidden := 2
	open, roles := openTwo(ctxs, hidden)
	av := NewShareV([2]uint32{aVals[roles[0]], aVals[roles[1]]}, []*Context{open[0], open[1]})
	bv := NewShareV([2]uint32{bVals[roles[0]], bVals[roles[1]]}, []*Context{open[0], open[1]})

	if _, err := AndV(av, bv); err != nil {
		t.Fatalf("verify replay rejected an honest proof: %v", err)
	}
}

func TestAndVRejectsTamperedTrace(t *testing.T) {
	ctxs := threeContexts(t, 512)
	ctxList := []*Context{ctxs[0], ctxs[1], ctxs[2]}

	aVals := [3]uint32{5, 9, 1}
	bVals := [3]uint32{2, 2, 2}
	a := NewShareP(aVals, ctxList)
	b := NewShareP(bVals, ctxList)
	if _, err := AndP(a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hidden := 2
	open, roles := openTwo(ctxs, hidden)
	open[0].view.OutputTrace[0] ^= 0xFF

	av := NewShareV([2]uint32{aVals[roles[0]], aVals[roles[1]]}, []*Context{open[0], open[1]})
	bv := NewShareV([2]uint32{bVals[roles[0]], bVals[roles[1]]}, []*Context{open[0], open[1]})

	if _, err := AndV(av, bv); err != ErrProofInvalid {
		t.Fatalf("expected ErrProofInvalid, got %v", err)
	}
}

func TestAddVReplaysOpenedParties(t *testing.T) {
	ctxs := threeContexts(t, 512)
	ctxList := []*Context{ctxs[0], ctxs[1], ctxs[2]}

	aVals := [3]uint32{10, 20, 3}
	bVals := [3]uint32{1, 0, 0}
	a := NewShareP(aVals, ctxList)
	b := NewShareP(bVals, ctxList)
	if _, err := AddP(a, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	hidden := 1
	open, roles := openTwo(ctxs, hidden)
	av := NewShareV([2]uint32{aVals[roles[0]], aVals[roles[1]]}, []*Context{open[0], open[1]})
	bv := NewShareV([2]uint32{bVals[roles[0]], bVals[roles[1]]}, []*Context{open[0], open[1]})

	if _, err := AddV(av, bv); err != nil {
		t.Fatalf("verify replay rejected an honest proof: %v", err)
	}
}

func TestContextFreeFastPath(t *testing.T) {
	a := NewConstP(6)
	b := NewConstP(3)

	and, err := AndP(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if and.Reconstruct() != 2 {
		t.Fatalf("got %d, want 2", and.Reconstruct())
	}

	add, err := AddP(a, b)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if add.Reconstruct() != 9 {
		t.Fatalf("got %d, want 9", add.Reconstruct())
	}
}
