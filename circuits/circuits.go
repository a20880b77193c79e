// Package circuits holds named example computations over the engine's
// share types, for the CLI and HTTP service to expose by name instead of
// requiring callers to write Go.
package circuits

import (
	"fmt"

	"github.com/zokerlab/zkboo/ikos"
	"github.com/zokerlab/zkboo/zkboo"
)

// Pair bundles a prover circuit with its verifier counterpart: the two
// are conceptually one computation expressed twice, over different share
// types, and must always be dispatched together.
type Pair struct {
	Prover   zkboo.ProverCircuit
	Verifier zkboo.VerifierCircuit
}

// ByName is the registry of computations the CLI and HTTP service can run
// without the caller writing any Go.
var ByName = map[string]Pair{
	"add-chain":           {Prover: addChainP, Verifier: addChainV},
	"multiply-by-constant": {Prover: multiplyByConstantP, Verifier: multiplyByConstantV},
}

// Lookup returns the named pair, or an error if no such circuit exists.
func Lookup(name string) (Pair, error) {
	p, ok := ByName[name]
	if !ok {
		return Pair{}, fmt.Errorf("circuits: unknown circuit %q", name)
	}
	return p, nil
}

// addChainP sums every secret share and every public constant.
func addChainP(secret, public []*ikos.ShareP) ([]*ikos.ShareP, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("circuits: add-chain requires at least one secret word")
	}
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

func addChainV(secret, public []*ikos.ShareV) ([]*ikos.ShareV, error) {
	if len(secret) == 0 {
		return nil, fmt.Errorf("circuits: add-chain requires at least one secret word")
	}
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

// multiplyByConstantP computes secret[0] * public[0] by repeated addition,
// reading the loop count directly off the public constant since it is
// known to both sides.
func multiplyByConstantP(secret, public []*ikos.ShareP) ([]*ikos.ShareP, error) {
	if len(secret) == 0 || len(public) == 0 {
		return nil, fmt.Errorf("circuits: multiply-by-constant requires one secret and one public word")
	}
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

func multiplyByConstantV(secret, public []*ikos.ShareV) ([]*ikos.ShareV, error) {
	if len(secret) == 0 || len(public) == 0 {
		return nil, fmt.Errorf("circuits: multiply-by-constant requires one secret and one public word")
	}
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
