package crypta

import (
	"fmt"
)

type SDESRoundFunction struct{}

// EP reuses bit positions on purpose: it expands 4 bits to 8.
var EP = []int{4, 1, 2, 3, 2, 3, 4, 1}

var P4 = []int{2, 4, 3, 1}

var S0 = [4][4]uint8{
	{1, 0, 3, 2},
	{3, 2, 1, 0},
	{0, 2, 1, 3},
	{3, 1, 3, 2},
}

var S1 = [4][4]uint8{
	{0, 1, 2, 3},
	{2, 0, 1, 3},
	{3, 0, 1, 0},
	{2, 1, 0, 3},
}

// sboxLookup maps a 4-bit group to a 2-bit output. The row is addressed by
// the outer bits (bit0, bit3) and the column by the inner bits (bit1, bit2),
// exactly as in the classical S-DES specification.
func sboxLookup(group BitVector, table [4][4]uint8) BitVector {
	row := (group[0] << 1) | group[3]
	col := (group[1] << 1) | group[2]
	value := table[row][col]
	return BitVector{(value >> 1) & 1, value & 1}
}

// Apply computes the S-DES F-function of the 4-bit right half under an 8-bit
// round key. The Feistel network XORs the result into the left half.
func (srf *SDESRoundFunction) Apply(inputBlock BitVector, roundKey BitVector) (BitVector, error) {
	if len(inputBlock) != 4 {
		return nil, &DimensionError{Op: "sdes round function input", Got: len(inputBlock), Want: 4}
	}
	if len(roundKey) != 8 {
		return nil, &DimensionError{Op: "sdes round key", Got: len(roundKey), Want: 8}
	}

	expanded, err := Permute(inputBlock, EP)
	if err != nil {
		return nil, fmt.Errorf("EP permutation failed: %w", err)
	}

	mixed, err := XOR(expanded, roundKey)
	if err != nil {
		return nil, fmt.Errorf("round key mixing failed: %w", err)
	}

	substituted := Concat(sboxLookup(mixed[:4], S0), sboxLookup(mixed[4:], S1))

	output, err := Permute(substituted, P4)
	if err != nil {
		return nil, fmt.Errorf("P4 permutation failed: %w", err)
	}

	return output, nil
}
