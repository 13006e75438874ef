package crypta

import (
	"fmt"
)

// FeistelNetwork runs a classic Feistel round structure over BitVector
// blocks: each round replaces the right half with left XOR F(right, key) and
// swaps halves. The swap after the last round is undone when the halves are
// recombined, so decryption is the same structure with round keys consumed
// in reverse order.
type FeistelNetwork struct {
	keySchedule   IKeySchedule
	roundFunction IRoundFunction

	blockWidth  int
	roundsCount int

	currentKey BitVector
	roundKeys  []BitVector
}

func NewFeistelNetwork(
	keyScheduleImpl IKeySchedule,
	roundFunctionImpl IRoundFunction,
	blockWidth int,
	roundsCount int,
) (*FeistelNetwork, error) {

	if keyScheduleImpl == nil {
		return nil, fmt.Errorf("key schedule implementation cannot be nil")
	}
	if roundFunctionImpl == nil {
		return nil, fmt.Errorf("round function implementation cannot be nil")
	}
	if blockWidth <= 0 || blockWidth%2 != 0 {
		return nil, fmt.Errorf("block width must be positive and even for Feistel network, got %d", blockWidth)
	}
	if roundsCount <= 0 {
		return nil, fmt.Errorf("rounds count must be positive, got %d", roundsCount)
	}

	return &FeistelNetwork{
		keySchedule:   keyScheduleImpl,
		roundFunction: roundFunctionImpl,
		blockWidth:    blockWidth,
		roundsCount:   roundsCount,
	}, nil
}

func (fn *FeistelNetwork) GetBlockWidth() int {
	return fn.blockWidth
}

func (fn *FeistelNetwork) GetRoundsCount() int {
	return fn.roundsCount
}

func (fn *FeistelNetwork) SetKey(key BitVector) error {
	if len(key) == 0 {
		return fmt.Errorf("key cannot be empty")
	}

	roundKeys, err := fn.keySchedule.GenerateRoundKeys(key)
	if err != nil {
		return fmt.Errorf("failed to generate round keys: %w", err)
	}

	if len(roundKeys) < fn.roundsCount {
		return fmt.Errorf("key schedule generated insufficient round keys: got %d, need %d",
			len(roundKeys), fn.roundsCount)
	}

	fn.currentKey = key.Clone()
	fn.roundKeys = roundKeys
	return nil
}

func (fn *FeistelNetwork) splitBlock(block BitVector) (BitVector, BitVector) {
	halfWidth := len(block) / 2
	return block[:halfWidth].Clone(), block[halfWidth:].Clone()
}

func (fn *FeistelNetwork) checkBlock(block BitVector) error {
	if len(block) != fn.blockWidth {
		return &InvalidBlockWidthError{Got: len(block), Want: fn.blockWidth}
	}
	if len(fn.roundKeys) == 0 {
		return fmt.Errorf("key not set, call SetKey first")
	}
	return nil
}

func (fn *FeistelNetwork) EncryptBlock(plainBlock BitVector) (BitVector, error) {
	if err := fn.checkBlock(plainBlock); err != nil {
		return nil, err
	}

	left, right := fn.splitBlock(plainBlock)

	for round := 0; round < fn.roundsCount; round++ {
		functionOutput, err := fn.roundFunction.Apply(right, fn.roundKeys[round])
		if err != nil {
			return nil, fmt.Errorf("round function error in round %d: %w", round, err)
		}

		newRight, err := XOR(left, functionOutput)
		if err != nil {
			return nil, fmt.Errorf("xor operation failed in round %d: %w", round, err)
		}

		left = right
		right = newRight
	}

	// Undo the trailing halves swap.
	return Concat(right, left), nil
}

func (fn *FeistelNetwork) DecryptBlock(cipherBlock BitVector) (BitVector, error) {
	if err := fn.checkBlock(cipherBlock); err != nil {
		return nil, err
	}

	left, right := fn.splitBlock(cipherBlock)

	for round := fn.roundsCount - 1; round >= 0; round-- {
		functionOutput, err := fn.roundFunction.Apply(right, fn.roundKeys[round])
		if err != nil {
			return nil, fmt.Errorf("round function error in round %d: %w", round, err)
		}

		newRight, err := XOR(left, functionOutput)
		if err != nil {
			return nil, fmt.Errorf("xor operation failed in round %d: %w", round, err)
		}

		left = right
		right = newRight
	}

	return Concat(right, left), nil
}
