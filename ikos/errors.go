// Package ikos implements the IKOS share algebra: the randomness tape,
// per-party context, and the 3-party (prover) / 2-party (verifier) gate
// semantics that the zkboo package orchestrates into full ZKBoo proofs.
package ikos

import "errors"

var (
	// ErrExhaustedTape indicates a party requested a randomness word beyond
	// its materialized tape.
	ErrExhaustedTape = errors.New("ikos: randomness tape exhausted")

	// ErrProofInvalid indicates a non-linear gate replay disagreed with a
	// stored trace value during verification.
	ErrProofInvalid = errors.New("ikos: view replay disagreement")

	// ErrMismatchedShares indicates a structural bug: a share vector did
	// not have the expected number of components for its party count.
	ErrMismatchedShares = errors.New("ikos: mismatched share vector length")
)
