package zkboo

import (
	"bytes"
	"errors"

	"github.com/zokerlab/zkboo/ikos"
)

// Verify replays a ZKBoo proof's response against the given challenge and
// rebuilt hidden-party commitments, using the two-party verifier circuit.
// It returns (true, nil) only if every round's gate replay, output-share
// comparison, and the recomputed challenge all agree with what was
// supplied.
func Verify(inputLen int, publicInput, publicOutput []uint32, challenge [64]byte, commitments []byte, response []ikos.View, circuit VerifierCircuit) (bool, error) {
	if len(response)%OpenParties != 0 {
		return false, ErrMalformedProof
	}
	rounds := len(response) / OpenParties
	if len(commitments) != rounds*CommitmentLen {
		return false, ErrMalformedProof
	}

	outputLen := len(publicOutput)
	tapeBits := ikos.TapeLengthBits(inputLen)
	indices := chooseIndices(challenge, rounds)

	reconstructed := make([]uint32, outputLen*rounds*Parties)
	idx := func(word, round, party int) int {
		return ((word*rounds)+round)*Parties + party
	}

	reassembled := make([]byte, 0, rounds*Parties*CommitmentLen)

	for r := 0; r < rounds; r++ {
		hidden := indices[r]
		roles := openedRoles(hidden)

		v0 := response[2*r].Clone()
		v1 := response[2*r+1].Clone()
		ctx0 := ikos.ContextFromView(&v0, tapeBits)
		ctx1 := ikos.ContextFromView(&v1, tapeBits)

		secretShares := make([]*ikos.ShareV, inputLen)
		for i := 0; i < inputLen; i++ {
			s0, err := deriveInputShare(ctx0, roles[0], i)
			if err != nil {
				return false, err
			}
			s1, err := deriveInputShare(ctx1, roles[1], i)
			if err != nil {
				return false, err
			}
			secretShares[i] = ikos.NewShareV([2]uint32{s0, s1}, []*ikos.Context{ctx0, ctx1})
		}

		publicShares := make([]*ikos.ShareV, len(publicInput))
		for i, w := range publicInput {
			publicShares[i] = ikos.NewConstV(w)
		}

		outShares, err := circuit(secretShares, publicShares)
		if err != nil {
			if errors.Is(err, ikos.ErrProofInvalid) {
				return false, ErrProofInvalid
			}
			return false, err
		}
		if len(outShares) != outputLen {
			return false, ErrCircuitMismatch
		}

		for word, share := range outShares {
			v := share.Value()
			if !ctx0.ReplayOutput(v[0]) || !ctx1.ReplayOutput(v[1]) {
				return false, ErrProofInvalid
			}
			third := publicOutput[word] ^ v[0] ^ v[1]

			reconstructed[idx(word, r, roles[0])] = v[0]
			reconstructed[idx(word, r, roles[1])] = v[1]
			reconstructed[idx(word, r, hidden)] = third
		}

		hiddenCommit := commitments[r*CommitmentLen : (r+1)*CommitmentLen]
		opened0Commit := ctx0.Commit()
		opened1Commit := ctx1.Commit()

		var block [Parties * CommitmentLen]byte
		switch hidden {
		case 0:
			copy(block[0:], hiddenCommit)
			copy(block[CommitmentLen:], opened0Commit[:])
			copy(block[2*CommitmentLen:], opened1Commit[:])
		case 1:
			copy(block[0:], opened1Commit[:])
			copy(block[CommitmentLen:], hiddenCommit)
			copy(block[2*CommitmentLen:], opened0Commit[:])
		case 2:
			copy(block[0:], opened0Commit[:])
			copy(block[CommitmentLen:], opened1Commit[:])
			copy(block[2*CommitmentLen:], hiddenCommit)
		}
		reassembled = append(reassembled, block[:]...)
	}

	for word := 0; word < outputLen; word++ {
		xor := reconstructed[idx(word, 0, 0)] ^ reconstructed[idx(word, 0, 1)] ^ reconstructed[idx(word, 0, 2)]
		if xor != publicOutput[word] {
			return false, ErrProofInvalid
		}
	}

	recomputed := QueryRandomOracle(inputLen, outputLen, reconstructed, reassembled)
	if !bytes.Equal(recomputed[:], challenge[:]) {
		return false, ErrProofInvalid
	}

	return true, nil
}

// deriveInputShare reproduces one secret-input word's share for an opened
// party identified by its global role (0, 1, or 2). Roles 0 and 1 redraw
// their share directly from their own tape, in the same per-word order
// the prover used; role 2 never owns tape-drawn shares (the prover could
// only record its leftover XOR share into its input-share trace), so its
// share is read back positionally from the disclosed view.
func deriveInputShare(ctx *ikos.Context, role, wordIndex int) (uint32, error) {
	if role == 2 {
		shares := ctx.View().InputShares
		if wordIndex >= len(shares) {
			return 0, ErrMalformedProof
		}
		return shares[wordIndex], nil
	}
	return ctx.NextRandom()
}
