package ikos

// View is the per-party, per-round record disclosed by the prover: a seed
// (which deterministically reproduces the party's randomness tape), the
// ordered input shares the party received, and the ordered output trace
// the party produced while running the circuit.
//
// Insertion order is semantically significant: both InputShares and
// OutputTrace are consumed positionally during verification.
type View struct {
	Seed        [16]byte
	InputShares []uint32
	OutputTrace []uint32
}

// Clone returns a deep copy of the view, safe to hand to a fresh Context
// without aliasing the original's backing slices.
func (v View) Clone() View {
	out := View{Seed: v.Seed}
	if len(v.InputShares) > 0 {
		out.InputShares = append([]uint32(nil), v.InputShares...)
	}
	if len(v.OutputTrace) > 0 {
		out.OutputTrace = append([]uint32(nil), v.OutputTrace...)
	}
	return out
}
