package ikos

// ShareP is a 32-bit word held as three shares during proving, such that
// the logical value equals v0 ^ v1 ^ v2. A ShareP either carries a
// populated, 3-element context list (one per party) or is "context-free":
// all three components equal the same public constant and no party state
// is touched by linear operations on it.
type ShareP struct {
	value [3]uint32
	ctx   []*Context
}

// NewConstP returns a context-free share representing the public constant v.
func NewConstP(v uint32) *ShareP {
	return &ShareP{value: [3]uint32{v, v, v}}
}

// NewShareP constructs a context-bearing share from its three components
// and the round's three party contexts.
func NewShareP(values [3]uint32, ctx []*Context) *ShareP {
	return &ShareP{value: values, ctx: ctx}
}

// IsContextFree reports whether s carries no party context.
func (s *ShareP) IsContextFree() bool { return len(s.ctx) == 0 }

// Value returns the three share components.
func (s *ShareP) Value() [3]uint32 { return s.value }

// Reconstruct returns the logical value v0^v1^v2.
func (s *ShareP) Reconstruct() uint32 { return s.value[0] ^ s.value[1] ^ s.value[2] }

func pickCtxP(a, b *ShareP) []*Context {
	if !a.IsContextFree() {
		return a.ctx
	}
	return b.ctx
}

// Not returns the bitwise complement of each share component.
func (s *ShareP) Not() *ShareP {
	var out [3]uint32
	for i := range out {
		out[i] = ^s.value[i]
	}
	return &ShareP{value: out, ctx: s.ctx}
}

// XorP returns the componentwise XOR of a and b. XOR is linear in GF(2),
// so reconstruction is preserved without touching any party state.
func XorP(a, b *ShareP) *ShareP {
	var out [3]uint32
	for i := range out {
		out[i] = a.value[i] ^ b.value[i]
	}
	return &ShareP{value: out, ctx: pickCtxP(a, b)}
}

// ShiftL returns each share component shifted left by n.
func (s *ShareP) ShiftL(n uint32) *ShareP {
	var out [3]uint32
	for i := range out {
		out[i] = s.value[i] << n
	}
	return &ShareP{value: out, ctx: s.ctx}
}

// ShiftR returns each share component shifted right by n.
func (s *ShareP) ShiftR(n uint32) *ShareP {
	var out [3]uint32
	for i := range out {
		out[i] = s.value[i] >> n
	}
	return &ShareP{value: out, ctx: s.ctx}
}

// OrP returns the componentwise OR of a and b. This is a public logical
// combine, not a cryptographically secure 3-party OR; it must only be used
// within public (context-free) branches of a circuit.
func OrP(a, b *ShareP) *ShareP {
	var out [3]uint32
	for i := range out {
		out[i] = a.value[i] | b.value[i]
	}
	return &ShareP{value: out, ctx: pickCtxP(a, b)}
}

// AndP evaluates the non-linear IKOS AND gate across three parties: one
// fresh tape word is drawn per party, the cross-party output is computed,
// and each party's output component is appended to its own output trace.
func AndP(a, b *ShareP) (*ShareP, error) {
	if a.IsContextFree() && b.IsContextFree() {
		var out [3]uint32
		for i := range out {
			out[i] = a.value[i] & b.value[i]
		}
		return &ShareP{value: out}, nil
	}
	ctx := pickCtxP(a, b)
	if len(ctx) != 3 {
		panic(ErrMismatchedShares)
	}

	var r [3]uint32
	for i := 0; i < 3; i++ {
		w, err := ctx[i].NextRandom()
		if err != nil {
			return nil, err
		}
		r[i] = w
	}

	var out [3]uint32
	for i := 0; i < 3; i++ {
		j := (i + 1) % 3
		out[i] = (a.value[i] & b.value[j]) ^ (a.value[j] & b.value[i]) ^ (a.value[i] & b.value[i]) ^ r[i] ^ r[j]
	}
	for i := 0; i < 3; i++ {
		ctx[i].PushOutputTrace(out[i])
	}
	return &ShareP{value: out, ctx: ctx}, nil
}

// AddP evaluates the non-linear IKOS ADD gate (integer addition modulo
// 2^32) as a bitwise carry-propagation circuit, per party, over 31 bit
// positions. Exactly one tape word is drawn per party (not per bit); the
// final carry word is appended to each party's output trace.
func AddP(a, b *ShareP) (*ShareP, error) {
	if a.IsContextFree() && b.IsContextFree() {
		var out [3]uint32
		for i := range out {
			out[i] = a.value[i] + b.value[i]
		}
		return &ShareP{value: out}, nil
	}
	ctx := pickCtxP(a, b)
	if len(ctx) != 3 {
		panic(ErrMismatchedShares)
	}

	var r [3]uint32
	for i := 0; i < 3; i++ {
		w, err := ctx[i].NextRandom()
		if err != nil {
			return nil, err
		}
		r[i] = w
	}

	var carry [3]uint32
	for i := 0; i < 31; i++ {
		var av, bv [3]uint32
		for j := 0; j < 3; j++ {
			av[j] = getBit(a.value[j]^carry[j], i)
			bv[j] = getBit(b.value[j]^carry[j], i)
		}
		var nextBit [3]uint32
		for j := 0; j < 3; j++ {
			k := (j + 1) % 3
			c := (av[j] & bv[k]) ^ (av[k] & bv[j]) ^ getBit(r[k], i)
			nextBit[j] = c ^ (av[j] & bv[j]) ^ getBit(carry[j], i) ^ getBit(r[j], i)
		}
		for j := 0; j < 3; j++ {
			setBit(&carry[j], i+1, nextBit[j])
		}
	}

	var out [3]uint32
	for i := 0; i < 3; i++ {
		out[i] = a.value[i] ^ b.value[i] ^ carry[i]
		ctx[i].PushOutputTrace(carry[i])
	}
	return &ShareP{value: out, ctx: ctx}, nil
}

func getBit(x uint32, i int) uint32 {
	return (x >> uint(i)) & 1
}

func setBit(x *uint32, i int, b uint32) {
	if b&1 != 0 {
		*x |= 1 << uint(i)
	} else {
		*x &^= 1 << uint(i)
	}
}
