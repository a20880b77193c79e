package zkboo

import (
	"encoding/binary"

	"github.com/zokerlab/zkboo/ikos"
)

// Marshal serializes the proof into the persisted wire format: input_len,
// output_len, round count, the flattened output-share buffer, the
// commitment buffer, then every round's three views in order.
//
// The round count is not part of the distilled wire contract this format
// is based on, but is required to decode the variable-length buffers that
// follow it unambiguously; see DESIGN.md.
func (p *Proof) Marshal() []byte {
	size := 12 + 4*len(p.OutputShares) + len(p.Commitments)
	for r := 0; r < p.Rounds; r++ {
		for j := 0; j < Parties; j++ {
			size += viewWireSize(&p.Views[r][j])
		}
	}

	buf := make([]byte, size)
	off := 0
	off += putUint32(buf[off:], uint32(p.InputLen))
	off += putUint32(buf[off:], uint32(p.OutputLen))
	off += putUint32(buf[off:], uint32(p.Rounds))
	for _, w := range p.OutputShares {
		off += putUint32(buf[off:], w)
	}
	off += copy(buf[off:], p.Commitments)
	for r := 0; r < p.Rounds; r++ {
		for j := 0; j < Parties; j++ {
			off += putView(buf[off:], &p.Views[r][j])
		}
	}
	return buf[:off]
}

// UnmarshalProof decodes a Marshal-produced blob, validating that every
// declared length and count is consistent with the bytes actually present.
func UnmarshalProof(data []byte) (*Proof, error) {
	if len(data) < 12 {
		return nil, ErrMalformedProof
	}
	inputLen := int(binary.BigEndian.Uint32(data[0:4]))
	outputLen := int(binary.BigEndian.Uint32(data[4:8]))
	rounds := int(binary.BigEndian.Uint32(data[8:12]))
	off := 12

	if inputLen < 0 || outputLen < 0 || rounds < 0 {
		return nil, ErrMalformedProof
	}

	shareCount := outputLen * rounds * Parties
	if shareCount < 0 || off+4*shareCount > len(data) {
		return nil, ErrMalformedProof
	}
	shares := make([]uint32, shareCount)
	for i := range shares {
		shares[i] = binary.BigEndian.Uint32(data[off : off+4])
		off += 4
	}

	commitLen := rounds * Parties * CommitmentLen
	if off+commitLen > len(data) {
		return nil, ErrMalformedProof
	}
	commitments := make([]byte, commitLen)
	off += copy(commitments, data[off:off+commitLen])

	views := make([][Parties]ikos.View, rounds)
	for r := 0; r < rounds; r++ {
		for j := 0; j < Parties; j++ {
			v, n, err := decodeView(data[off:])
			if err != nil {
				return nil, err
			}
			views[r][j] = v
			off += n
		}
	}

	if off != len(data) {
		return nil, ErrMalformedProof
	}

	return &Proof{
		InputLen:     inputLen,
		OutputLen:    outputLen,
		Rounds:       rounds,
		PublicOutput: reconstructPublicOutputFromShares(shares, outputLen, rounds),
		OutputShares: shares,
		Commitments:  commitments,
		Views:        views,
	}, nil
}

func reconstructPublicOutputFromShares(shares []uint32, outputLen, rounds int) []uint32 {
	out := make([]uint32, outputLen)
	for word := 0; word < outputLen; word++ {
		base := (word*rounds + 0) * Parties
		out[word] = shares[base] ^ shares[base+1] ^ shares[base+2]
	}
	return out
}

func putUint32(dst []byte, v uint32) int {
	binary.BigEndian.PutUint32(dst, v)
	return 4
}

func viewWireSize(v *ikos.View) int {
	return 16 + 4 + 4*len(v.InputShares) + 4 + 4*len(v.OutputTrace)
}

func putView(dst []byte, v *ikos.View) int {
	off := 0
	off += copy(dst[off:], v.Seed[:])
	off += putUint32(dst[off:], uint32(len(v.InputShares)))
	for _, w := range v.InputShares {
		off += putUint32(dst[off:], w)
	}
	off += putUint32(dst[off:], uint32(len(v.OutputTrace)))
	for _, w := range v.OutputTrace {
		off += putUint32(dst[off:], w)
	}
	return off
}

func decodeView(data []byte) (ikos.View, int, error) {
	if len(data) < 16+4 {
		return ikos.View{}, 0, ErrMalformedProof
	}
	var v ikos.View
	off := copy(v.Seed[:], data[:16])

	inputCount := int(binary.BigEndian.Uint32(data[off : off+4]))
	off += 4
	if inputCount < 0 || off+4*inputCount > len(data) {
		return ikos.View{}, 0, ErrMalformedProof
	}
	if inputCount > 0 {
		v.InputShares = make([]uint32, inputCount)
		for i := range v.InputShares {
			v.InputShares[i] = binary.BigEndian.Uint32(data[off : off+4])
			off += 4
		}
	}

	if off+4 > len(data) {
		return ikos.View{}, 0, ErrMalformedProof
	}
	outputCount := int(binary.BigEndian.Uint32(data[off : off+4]))
	off += 4
	if outputCount < 0 || off+4*outputCount > len(data) {
		return ikos.View{}, 0, ErrMalformedProof
	}
	if outputCount > 0 {
		v.OutputTrace = make([]uint32, outputCount)
		for i := range v.OutputTrace {
			v.OutputTrace[i] = binary.BigEndian.Uint32(data[off : off+4])
			off += 4
		}
	}

	return v, off, nil
}
