package crypta

import (
	"fmt"
)

type SDESKeySchedule struct{}

var P10 = []int{3, 5, 2, 7, 4, 10, 1, 9, 8, 6}

var P8 = []int{6, 3, 7, 4, 8, 5, 10, 9}

// GenerateRoundKeys derives the two 8-bit S-DES round keys from a 10-bit
// master key. The second key is produced from the running shifted halves,
// not from the original halves, so its cumulative shift is 3.
func (sks *SDESKeySchedule) GenerateRoundKeys(masterKey BitVector) ([]BitVector, error) {
	if len(masterKey) != 10 {
		return nil, &InvalidKeyWidthError{Got: len(masterKey), Want: 10}
	}

	permutedKey, err := Permute(masterKey, P10)
	if err != nil {
		return nil, fmt.Errorf("P10 permutation failed: %w", err)
	}

	left := CircularLeftShift(permutedKey[:5], 1)
	right := CircularLeftShift(permutedKey[5:], 1)

	key1, err := Permute(Concat(left, right), P8)
	if err != nil {
		return nil, fmt.Errorf("P8 permutation failed for round key 1: %w", err)
	}

	left = CircularLeftShift(left, 2)
	right = CircularLeftShift(right, 2)

	key2, err := Permute(Concat(left, right), P8)
	if err != nil {
		return nil, fmt.Errorf("P8 permutation failed for round key 2: %w", err)
	}

	return []BitVector{key1, key2}, nil
}
