package ikos

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"io"
)

// Context bundles one party's View with its randomness-tape cursor and,
// during verification, an output-trace playback cursor. Both cursors only
// advance; randCursor exceeding len(tape) is ErrExhaustedTape.
//
// A round's party contexts are referenced by every Share created during
// that round's circuit execution, because gate evaluation mutates cursor
// state through whichever share it operates on. Context is therefore
// always shared via pointer, never copied mid-round.
type Context struct {
	view       *View
	tape       []uint32
	randCursor int
	outCursor  int
}

// NewContext generates a fresh 16-byte seed from crypto/rand, expands it
// into a tape of the requested length, and returns a ready-to-use Context.
func NewContext(tapeLengthBits int) (*Context, error) {
	return newContextFromReader(rand.Reader, tapeLengthBits)
}

func newContextFromReader(r io.Reader, tapeLengthBits int) (*Context, error) {
	var seed [16]byte
	if _, err := io.ReadFull(r, seed[:]); err != nil {
		return nil, err
	}
	return &Context{
		view: &View{Seed: seed},
		tape: GenerateTape(seed, tapeLengthBits),
	}, nil
}

// ContextFromView rebuilds a context from an externally supplied view
// (the verify-side path): the tape is regenerated deterministically from
// the view's seed and both cursors start at zero.
func ContextFromView(view *View, tapeLengthBits int) *Context {
	return &Context{
		view: view,
		tape: GenerateTape(view.Seed, tapeLengthBits),
	}
}

// View returns the context's live view. Callers in the prove path snapshot
// it with View.Clone after the round completes.
func (c *Context) View() *View { return c.view }

// NextRandom returns the next tape word and advances the randomness
// cursor, or ErrExhaustedTape if the tape is exhausted.
func (c *Context) NextRandom() (uint32, error) {
	if c.randCursor >= len(c.tape) {
		return 0, ErrExhaustedTape
	}
	w := c.tape[c.randCursor]
	c.randCursor++
	return w, nil
}

// PushInputShare appends w to the party's input-share sequence.
func (c *Context) PushInputShare(w uint32) {
	c.view.InputShares = append(c.view.InputShares, w)
}

// PushOutputTrace appends w to the party's output-trace sequence.
func (c *Context) PushOutputTrace(w uint32) {
	c.view.OutputTrace = append(c.view.OutputTrace, w)
}

// Commit computes the party's commitment: the ASCII-hex SHA-256 digest of
// (seed || big-endian output trace).
func (c *Context) Commit() [64]byte {
	h := sha256.New()
	h.Write(c.view.Seed[:])
	if len(c.view.OutputTrace) > 0 {
		buf := make([]byte, 4*len(c.view.OutputTrace))
		for i, w := range c.view.OutputTrace {
			binary.BigEndian.PutUint32(buf[i*4:], w)
		}
		h.Write(buf)
	}
	sum := h.Sum(nil)
	var out [64]byte
	hex.Encode(out[:], sum)
	return out
}

// checkOrAppend is the generic verify-side replay primitive described in
// the wire contract: if the output trace still has an entry at the current
// cursor, compare it against computed and advance ("no reconstruction
// required"); otherwise the trace ran short for this party (reconstruction
// required) and computed is appended instead of compared.
func (c *Context) checkOrAppend(computed uint32) bool {
	if c.outCursor < len(c.view.OutputTrace) {
		stored := c.view.OutputTrace[c.outCursor]
		c.outCursor++
		return stored == computed
	}
	c.view.OutputTrace = append(c.view.OutputTrace, computed)
	c.outCursor++
	return true
}

// ReplayOutput checks computed against the next stored output-trace entry
// (advancing past it) or, if the trace ran short, appends computed in its
// place. It reports false only on an outright mismatch against a stored
// entry. Driver code uses this to replay a circuit's final per-round
// output share against a party's disclosed trace, the same primitive
// non-linear gates use internally for their cross-terms.
func (c *Context) ReplayOutput(computed uint32) bool {
	return c.checkOrAppend(computed)
}

// NextStoredOutput reads the next output-trace entry without comparing
// against a recomputed value, advancing the playback cursor. It reports
// false if the trace is exhausted at this position.
func (c *Context) NextStoredOutput() (uint32, bool) {
	if c.outCursor >= len(c.view.OutputTrace) {
		return 0, false
	}
	w := c.view.OutputTrace[c.outCursor]
	c.outCursor++
	return w, true
}
