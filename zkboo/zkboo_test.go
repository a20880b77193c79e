package zkboo_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zokerlab/zkboo/ikos"
	"github.com/zokerlab/zkboo/zkboo"
)

func addChainCircuitP(secret, public []*ikos.ShareP) ([]*ikos.ShareP, error) {
	acc := secret[0]
	for _, s := range secret[1:] {
		var err error
		acc, err = ikos.AddP(acc, s)
		if err != nil {
			return nil, err
		}
	}
	for _, p := range public {
		var err error
		acc, err = ikos.AddP(acc, p)
		if err != nil {
			return nil, err
		}
	}
	return []*ikos.ShareP{acc}, nil
}

func addChainCircuitV(secret, public []*ikos.ShareV) ([]*ikos.ShareV, error) {
	acc := secret[0]
	for _, s := range secret[1:] {
		var err error
		acc, err = ikos.AddV(acc, s)
		if err != nil {
			return nil, err
		}
	}
	for _, p := range public {
		var err error
		acc, err = ikos.AddV(acc, p)
		if err != nil {
			return nil, err
		}
	}
	return []*ikos.ShareV{acc}, nil
}

func multiplyByConstantCircuitP(secret, public []*ikos.ShareP) ([]*ikos.ShareP, error) {
	loopCount := int(public[0].Value()[0])
	acc := ikos.NewConstP(0)
	for i := 0; i < loopCount; i++ {
		var err error
		acc, err = ikos.AddP(acc, secret[0])
		if err != nil {
			return nil, err
		}
	}
	return []*ikos.ShareP{acc}, nil
}

func multiplyByConstantCircuitV(secret, public []*ikos.ShareV) ([]*ikos.ShareV, error) {
	loopCount := int(public[0].Value()[0])
	acc := ikos.NewConstV(0)
	for i := 0; i < loopCount; i++ {
		var err error
		acc, err = ikos.AddV(acc, secret[0])
		if err != nil {
			return nil, err
		}
	}
	return []*ikos.ShareV{acc}, nil
}

func TestTwoWordAddWithPublicConstant(t *testing.T) {
	ok, proof, err := zkboo.ProveAndVerify([]uint32{97, 107}, []uint32{15}, 1, addChainCircuitP, addChainCircuitV)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []uint32{219}, proof.PublicOutput)
}

func TestFourWordChainedAdd(t *testing.T) {
	ok, proof, err := zkboo.ProveAndVerify([]uint32{97, 107, 10, 2}, []uint32{15}, 1, addChainCircuitP, addChainCircuitV)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []uint32{231}, proof.PublicOutput)
}

func TestMultiplyByConstantViaAdditiveLoop(t *testing.T) {
	ok, proof, err := zkboo.ProveAndVerify([]uint32{97}, []uint32{107}, 1, multiplyByConstantCircuitP, multiplyByConstantCircuitV)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, []uint32{10379}, proof.PublicOutput)
}

func TestTamperedPublicOutputFailsVerification(t *testing.T) {
	proof, err := zkboo.Prove([]uint32{97, 107, 10, 2}, []uint32{15}, 1, addChainCircuitP)
	require.NoError(t, err)

	challenge := zkboo.QueryRandomOracle(proof.InputLen, proof.OutputLen, proof.OutputShares, proof.Commitments)
	response := zkboo.BuildResponse(proof, challenge)
	rebuilt := zkboo.RebuildProof(proof, challenge)

	tamperedOutput := append([]uint32(nil), proof.PublicOutput...)
	tamperedOutput[0] ^= 1

	ok, err := zkboo.Verify(proof.InputLen, []uint32{15}, tamperedOutput, challenge, rebuilt, response, addChainCircuitV)
	require.ErrorIs(t, err, zkboo.ErrProofInvalid)
	require.False(t, ok)
}

func TestTamperedResponseTraceFailsVerification(t *testing.T) {
	proof, err := zkboo.Prove([]uint32{97, 107}, []uint32{15}, 1, addChainCircuitP)
	require.NoError(t, err)

	challenge := zkboo.QueryRandomOracle(proof.InputLen, proof.OutputLen, proof.OutputShares, proof.Commitments)
	response := zkboo.BuildResponse(proof, challenge)
	rebuilt := zkboo.RebuildProof(proof, challenge)

	if len(response[0].OutputTrace) > 0 {
		response[0].OutputTrace[0] ^= 0xFF
	} else {
		response[0].InputShares = append(response[0].InputShares, 0xDEADBEEF)
	}

	ok, err := zkboo.Verify(proof.InputLen, []uint32{15}, proof.PublicOutput, challenge, rebuilt, response, addChainCircuitV)
	require.Error(t, err)
	require.False(t, ok)
}

func TestTruncatedTapeFailsProveWithExhaustedTape(t *testing.T) {
	deepAnd := func(secret, public []*ikos.ShareP) ([]*ikos.ShareP, error) {
		acc := secret[0]
		for i := 0; i < 2000; i++ {
			var err error
			acc, err = ikos.AndP(acc, secret[0])
			if err != nil {
				return nil, err
			}
		}
		return []*ikos.ShareP{acc}, nil
	}

	_, err := zkboo.Prove([]uint32{97}, nil, 1, deepAnd)
	require.ErrorIs(t, err, zkboo.ErrExhaustedTape)
}

func TestQueryRandomOracleChallengeLength(t *testing.T) {
	challenge := zkboo.QueryRandomOracle(1, 1, []uint32{42}, []byte{1, 2, 3})
	require.Len(t, challenge, 64)
}

func TestIdempotentVerify(t *testing.T) {
	proof, err := zkboo.Prove([]uint32{97, 107}, []uint32{15}, 1, addChainCircuitP)
	require.NoError(t, err)

	challenge := zkboo.QueryRandomOracle(proof.InputLen, proof.OutputLen, proof.OutputShares, proof.Commitments)
	response := zkboo.BuildResponse(proof, challenge)
	rebuilt := zkboo.RebuildProof(proof, challenge)

	ok1, err1 := zkboo.Verify(proof.InputLen, []uint32{15}, proof.PublicOutput, challenge, rebuilt, response, addChainCircuitV)
	require.NoError(t, err1)

	response2 := zkboo.BuildResponse(proof, challenge)
	ok2, err2 := zkboo.Verify(proof.InputLen, []uint32{15}, proof.PublicOutput, challenge, rebuilt, response2, addChainCircuitV)
	require.NoError(t, err2)

	require.Equal(t, ok1, ok2)
	require.True(t, ok1)
}
