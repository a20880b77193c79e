package zkboo

import "github.com/zokerlab/zkboo/ikos"

// Parties is the number of MPC-in-the-head branches the prover runs per
// round (B in the protocol's own vocabulary).
const Parties = 3

// OpenParties is the number of branches disclosed to the verifier per
// round (B').
const OpenParties = 2

// CommitmentLen is the byte length of one party's commitment: an
// ASCII-hex SHA-256 digest.
const CommitmentLen = 64

// DefaultRounds is the round count used by Prove/Verify when callers do
// not supply an explicit Params.
const DefaultRounds = 2

// Params fixes the round count for a prove/verify pair. Parties,
// OpenParties and CommitmentLen are not configurable: they are load-bearing
// constants of the wire format.
type Params struct {
	Rounds int
}

// DefaultParams returns the Params used by Prove/Verify.
func DefaultParams() Params {
	return Params{Rounds: DefaultRounds}
}

// ProverCircuit evaluates a computation over secret input shares and
// public (context-free) shares, returning the output shares. It must
// consume randomness only through the shares' party contexts, and must
// visit gates in the same order every time it is called with shares of
// the same shape, so that a VerifierCircuit expressing the same
// computation produces an identical gate-visit order.
type ProverCircuit func(secret, public []*ikos.ShareP) ([]*ikos.ShareP, error)

// VerifierCircuit is the two-party analogue of ProverCircuit, run during
// verification against the two opened parties' shares.
type VerifierCircuit func(secret, public []*ikos.ShareV) ([]*ikos.ShareV, error)

// Proof is everything the prover discloses before the challenge is known:
// the public shape of the computation, the reconstructed public output,
// the flattened per-round per-party output shares, the full commitment
// buffer, and every party's view for every round. BuildResponse and
// RebuildProof later select from it the opened views and hidden-party
// commitments that Verify consumes; Marshal serializes the whole Proof,
// all views included, as the wire-format blob.
type Proof struct {
	InputLen     int
	OutputLen    int
	Rounds       int
	PublicOutput []uint32

	// OutputShares is indexed [word][round][party], flattened as
	// ((word*Rounds)+round)*Parties+party.
	OutputShares []uint32

	// Commitments is Rounds*Parties*CommitmentLen bytes, party j of round r
	// at offset r*Parties*CommitmentLen + j*CommitmentLen.
	Commitments []byte

	// Views holds all three parties' views for every round, Views[r][j].
	Views [][Parties]ikos.View
}

func (p *Proof) outputIndex(word, round, party int) int {
	return ((word*p.Rounds)+round)*Parties + party
}

// OutputShare returns the given party's share of the given output word in
// the given round.
func (p *Proof) OutputShare(word, round, party int) uint32 {
	return p.OutputShares[p.outputIndex(word, round, party)]
}

func (p *Proof) setOutputShare(word, round, party int, v uint32) {
	p.OutputShares[p.outputIndex(word, round, party)] = v
}

// CommitmentAt returns party j's commitment bytes for round r.
func (p *Proof) CommitmentAt(round, party int) []byte {
	off := round*Parties*CommitmentLen + party*CommitmentLen
	return p.Commitments[off : off+CommitmentLen]
}
