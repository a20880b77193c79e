package zkboo

import "github.com/zokerlab/zkboo/ikos"

// openedRoles returns, for the given hidden-party index, the two parties
// that stay open, in the wire-contract order: (hidden+1)%3 first, then
// (hidden+2)%3.
func openedRoles(hidden int) [OpenParties]int {
	return [OpenParties]int{(hidden + 1) % Parties, (hidden + 2) % Parties}
}

// BuildResponse selects, for each round, the two views belonging to the
// parties that the challenge does not hide. The concatenation order
// across rounds and within a round is part of the wire contract.
func BuildResponse(proof *Proof, challenge [64]byte) []ikos.View {
	indices := chooseIndices(challenge, proof.Rounds)
	response := make([]ikos.View, 0, proof.Rounds*OpenParties)
	for r, hidden := range indices {
		roles := openedRoles(hidden)
		response = append(response, proof.Views[r][roles[0]], proof.Views[r][roles[1]])
	}
	return response
}

// RebuildProof emits the per-round hidden-party commitment blob: the
// commitments of the two opened parties are dropped (the verifier
// re-derives them), leaving only the single hidden-party commitment per
// round, Rounds*CommitmentLen bytes total.
func RebuildProof(proof *Proof, challenge [64]byte) []byte {
	indices := chooseIndices(challenge, proof.Rounds)
	out := make([]byte, 0, proof.Rounds*CommitmentLen)
	for r, hidden := range indices {
		out = append(out, proof.CommitmentAt(r, hidden)...)
	}
	return out
}
