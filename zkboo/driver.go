package zkboo

import "github.com/zokerlab/zkboo/ikos"

// Prove runs the default-parameter ZKBoo prover over secretInput and
// publicInput. circuit is invoked once per round and must return exactly
// outputLen output shares.
func Prove(secretInput, publicInput []uint32, outputLen int, circuit ProverCircuit) (*Proof, error) {
	return ProveWithParams(DefaultParams(), secretInput, publicInput, outputLen, circuit)
}

// RoundProgress reports one round's per-party commitments as proving
// completes it, for callers that want to stream progress (the HTTP
// service's websocket endpoint) rather than wait for the whole proof.
type RoundProgress func(round int, commitments [Parties][]byte)

// ProveWithParams is Prove with an explicit round count. The optional
// onRound callback, if non-nil, is invoked after each round's commitments
// are computed.
func ProveWithParams(params Params, secretInput, publicInput []uint32, outputLen int, circuit ProverCircuit, onRound ...RoundProgress) (*Proof, error) {
	rounds := params.Rounds
	tapeBits := ikos.TapeLengthBits(len(secretInput))

	proof := &Proof{
		InputLen:     len(secretInput),
		OutputLen:    outputLen,
		Rounds:       rounds,
		OutputShares: make([]uint32, outputLen*rounds*Parties),
		Commitments:  make([]byte, rounds*Parties*CommitmentLen),
		Views:        make([][Parties]ikos.View, rounds),
	}

	publicShares := make([]*ikos.ShareP, len(publicInput))
	for i, w := range publicInput {
		publicShares[i] = ikos.NewConstP(w)
	}

	for r := 0; r < rounds; r++ {
		ctxs := [Parties]*ikos.Context{}
		for j := 0; j < Parties; j++ {
			c, err := ikos.NewContext(tapeBits)
			if err != nil {
				return nil, err
			}
			ctxs[j] = c
		}
		ctxList := []*ikos.Context{ctxs[0], ctxs[1], ctxs[2]}

		secretShares := make([]*ikos.ShareP, len(secretInput))
		for i, w := range secretInput {
			s0, err := ctxs[0].NextRandom()
			if err != nil {
				return nil, err
			}
			s1, err := ctxs[1].NextRandom()
			if err != nil {
				return nil, err
			}
			s2 := w ^ s0 ^ s1
			ctxs[2].PushInputShare(s2)
			secretShares[i] = ikos.NewShareP([3]uint32{s0, s1, s2}, ctxList)
		}

		outShares, err := circuit(secretShares, publicShares)
		if err != nil {
			return nil, err
		}
		if len(outShares) != outputLen {
			return nil, ErrCircuitMismatch
		}

		for word, share := range outShares {
			v := share.Value()
			for j := 0; j < Parties; j++ {
				proof.setOutputShare(word, r, j, v[j])
				ctxs[j].PushOutputTrace(v[j])
			}
		}

		var roundCommits [Parties][]byte
		for j := 0; j < Parties; j++ {
			commit := ctxs[j].Commit()
			off := r*Parties*CommitmentLen + j*CommitmentLen
			copy(proof.Commitments[off:off+CommitmentLen], commit[:])
			proof.Views[r][j] = ctxs[j].View().Clone()
			roundCommits[j] = append([]byte(nil), commit[:]...)
		}
		for _, cb := range onRound {
			if cb != nil {
				cb(r, roundCommits)
			}
		}
	}

	proof.PublicOutput = make([]uint32, outputLen)
	for word := 0; word < outputLen; word++ {
		proof.PublicOutput[word] = proof.OutputShare(word, 0, 0) ^ proof.OutputShare(word, 0, 1) ^ proof.OutputShare(word, 0, 2)
	}

	return proof, nil
}
