// Package zkboo implements the ZKBoo non-interactive zero-knowledge proof
// driver: round orchestration, Fiat-Shamir challenge derivation, response
// and proof compaction, and verification replay, built on top of the
// three-party/two-party IKOS share algebra in package ikos.
package zkboo

import (
	"errors"

	"github.com/zokerlab/zkboo/ikos"
)

var (
	// ErrProofInvalid indicates a verification-time mismatch: a gate replay
	// disagreement, a public-output mismatch, or a recomputed challenge that
	// disagrees with the supplied one.
	ErrProofInvalid = errors.New("zkboo: proof invalid")

	// ErrMalformedProof indicates a proof blob's declared lengths do not
	// match its actual byte content at decode time.
	ErrMalformedProof = errors.New("zkboo: malformed proof")

	// ErrCircuitMismatch indicates a circuit's returned output share count
	// disagreed with the declared output length.
	ErrCircuitMismatch = errors.New("zkboo: circuit output length mismatch")
)

// ErrExhaustedTape re-exports ikos.ErrExhaustedTape so callers of this
// package's entry points never need to import ikos just to check errors.
var ErrExhaustedTape = ikos.ErrExhaustedTape
