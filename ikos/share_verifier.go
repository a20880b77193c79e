package ikos

// ShareV is a 32-bit word held as two shares during verification, the
// opened pair out of the prover's original three. Linear gates mirror
// ShareP exactly. Non-linear gates cannot recompute the logical value
// (the third, hidden party's share is unknown): of the two opened
// parties, only the one whose real cross-term neighbor is the other
// opened party can have its output recomputed and checked; the other
// opened party's real neighbor is the hidden party, so its output is
// simply read from its own disclosed trace.
type ShareV struct {
	value [2]uint32
	ctx   []*Context
}

// NewConstV returns a context-free two-party share representing the
// public constant v.
func NewConstV(v uint32) *ShareV {
	return &ShareV{value: [2]uint32{v, v}}
}

// NewShareV constructs a context-bearing share from its two components
// and the round's two open-party contexts.
func NewShareV(values [2]uint32, ctx []*Context) *ShareV {
	return &ShareV{value: values, ctx: ctx}
}

// IsContextFree reports whether s carries no party context.
func (s *ShareV) IsContextFree() bool { return len(s.ctx) == 0 }

// Value returns the two share components.
func (s *ShareV) Value() [2]uint32 { return s.value }

func pickCtxV(a, b *ShareV) []*Context {
	if !a.IsContextFree() {
		return a.ctx
	}
	return b.ctx
}

// Not returns the bitwise complement of each share component.
func (s *ShareV) Not() *ShareV {
	var out [2]uint32
	for i := range out {
		out[i] = ^s.value[i]
	}
	return &ShareV{value: out, ctx: s.ctx}
}

// XorV returns the componentwise XOR of a and b.
func XorV(a, b *ShareV) *ShareV {
	var out [2]uint32
	for i := range out {
		out[i] = a.value[i] ^ b.value[i]
	}
	return &ShareV{value: out, ctx: pickCtxV(a, b)}
}

// ShiftL returns each share component shifted left by n.
func (s *ShareV) ShiftL(n uint32) *ShareV {
	var out [2]uint32
	for i := range out {
		out[i] = s.value[i] << n
	}
	return &ShareV{value: out, ctx: s.ctx}
}

// ShiftR returns each share component shifted right by n.
func (s *ShareV) ShiftR(n uint32) *ShareV {
	var out [2]uint32
	for i := range out {
		out[i] = s.value[i] >> n
	}
	return &ShareV{value: out, ctx: s.ctx}
}

// OrV returns the componentwise OR of a and b.
func OrV(a, b *ShareV) *ShareV {
	var out [2]uint32
	for i := range out {
		out[i] = a.value[i] | b.value[i]
	}
	return &ShareV{value: out, ctx: pickCtxV(a, b)}
}

// AndV replays the non-linear AND gate across the two opened parties.
// Local index 0's real cross-party neighbor (index (role+1)%3 in the
// original three-party numbering) is local index 1, so its output is
// recomputable from the two visible shares and is checked against (or, if
// the trace ran short, folded into) its disclosed output trace. Local
// index 1's real neighbor is the hidden third party, so its output cannot
// be recomputed at all; it is simply read from its own disclosed trace.
func AndV(a, b *ShareV) (*ShareV, error) {
	if a.IsContextFree() && b.IsContextFree() {
		var out [2]uint32
		for i := range out {
			out[i] = a.value[i] & b.value[i]
		}
		return &ShareV{value: out}, nil
	}
	ctx := pickCtxV(a, b)
	if len(ctx) != 2 {
		panic(ErrMismatchedShares)
	}

	r0, err := ctx[0].NextRandom()
	if err != nil {
		return nil, err
	}
	r1, err := ctx[1].NextRandom()
	if err != nil {
		return nil, err
	}

	computed0 := (a.value[0] & b.value[1]) ^ (a.value[1] & b.value[0]) ^ (a.value[0] & b.value[0]) ^ r0 ^ r1
	if !ctx[0].checkOrAppend(computed0) {
		return nil, ErrProofInvalid
	}

	out1, ok := ctx[1].NextStoredOutput()
	if !ok {
		return nil, ErrProofInvalid
	}

	return &ShareV{value: [2]uint32{computed0, out1}, ctx: ctx}, nil
}

// AddV replays the non-linear ADD gate across the two opened parties.
// Local index 0's neighbor in the three-party carry recurrence is local
// index 1, so its final carry word is recomputable bit by bit and checked
// against (or, if the trace ran short, folded into) its disclosed output
// trace. Local index 1's neighbor is the hidden third party, so its carry
// chain cannot be recomputed; its final carry word is read directly from
// its own disclosed trace. Because each iteration of the carry recurrence
// only ever sets a strictly higher bit than the last, local index 1's
// already-known final word supplies exactly the right bit at every
// position local index 0's recurrence needs.
func AddV(a, b *ShareV) (*ShareV, error) {
	if a.IsContextFree() && b.IsContextFree() {
		var out [2]uint32
		for i := range out {
			out[i] = a.value[i] + b.value[i]
		}
		return &ShareV{value: out}, nil
	}
	ctx := pickCtxV(a, b)
	if len(ctx) != 2 {
		panic(ErrMismatchedShares)
	}

	r0, err := ctx[0].NextRandom()
	if err != nil {
		return nil, err
	}
	r1, err := ctx[1].NextRandom()
	if err != nil {
		return nil, err
	}

	carry1, ok := ctx[1].NextStoredOutput()
	if !ok {
		return nil, ErrProofInvalid
	}

	var carry0 uint32
	for i := 0; i < 31; i++ {
		a0 := getBit(a.value[0]^carry0, i)
		a1 := getBit(a.value[1]^carry1, i)
		b0 := getBit(b.value[0]^carry0, i)
		b1 := getBit(b.value[1]^carry1, i)
		c := (a0 & b1) ^ (a1 & b0) ^ getBit(r1, i)
		nextBit := c ^ (a0 & b0) ^ getBit(carry0, i) ^ getBit(r0, i)
		setBit(&carry0, i+1, nextBit)
	}

	if !ctx[0].checkOrAppend(carry0) {
		return nil, ErrProofInvalid
	}

	out0 := a.value[0] ^ b.value[0] ^ carry0
	out1 := a.value[1] ^ b.value[1] ^ carry1
	return &ShareV{value: [2]uint32{out0, out1}, ctx: ctx}, nil
}
