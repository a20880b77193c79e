package zkboo

// ProveAndVerify runs the full prove-challenge-respond-verify cycle in one
// call, for callers (such as this package's end-to-end tests) that want
// the whole cycle instead of wiring the four steps by hand. The CLI and
// the HTTP service wire the steps themselves.
func ProveAndVerify(secretInput, publicInput []uint32, outputLen int, prover ProverCircuit, verifier VerifierCircuit) (bool, *Proof, error) {
	proof, err := Prove(secretInput, publicInput, outputLen, prover)
	if err != nil {
		return false, nil, err
	}

	challenge := QueryRandomOracle(proof.InputLen, proof.OutputLen, proof.OutputShares, proof.Commitments)
	response := BuildResponse(proof, challenge)
	rebuilt := RebuildProof(proof, challenge)

	ok, err := Verify(proof.InputLen, publicInput, proof.PublicOutput, challenge, rebuilt, response, verifier)
	return ok, proof, err
}
