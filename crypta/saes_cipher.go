package crypta

import "fmt"

// saesState holds the four S-AES nibbles in the column-major order of the
// classic S-AES definition: [n15..n12, n7..n4, n11..n8, n3..n0].
type saesState [4]uint8

// SAESCipher is the simplified AES teaching cipher: a 16-bit block, a 16-bit
// key, a pre-round key addition and two substitution-permutation rounds.
// Encryption and decryption are two distinct pipelines because the inverse
// applies the layers in inverted order, not merely with reversed keys.
type SAESCipher struct {
	keySchedule   IKeySchedule
	roundFunction IRoundFunction
	gfService     *GF16Service

	currentKey BitVector
	roundKeys  []saesState
}

func NewSAESCipher(key BitVector) (*SAESCipher, error) {
	cipher := &SAESCipher{
		keySchedule: &SAESKeySchedule{},
		gfService:   NewGF16Service(),
	}
	cipher.roundFunction = &SAESRoundFunction{cipher: cipher}

	if err := cipher.SetKey(key); err != nil {
		return nil, err
	}

	return cipher, nil
}

func (saes *SAESCipher) SetKey(key BitVector) error {
	if len(key) != 16 {
		return &InvalidKeyWidthError{Got: len(key), Want: 16}
	}

	scheduled, err := saes.keySchedule.GenerateRoundKeys(key)
	if err != nil {
		return fmt.Errorf("failed to generate round keys: %w", err)
	}

	roundKeys := make([]saesState, len(scheduled))
	for i, roundKey := range scheduled {
		roundKeys[i] = stateFromInteger(uint16(roundKey.ToInteger()))
	}

	saes.currentKey = key.Clone()
	saes.roundKeys = roundKeys
	return nil
}

func stateFromInteger(n uint16) saesState {
	return saesState{
		uint8(n>>12) & 0xF,
		uint8(n>>4) & 0xF,
		uint8(n>>8) & 0xF,
		uint8(n) & 0xF,
	}
}

func stateToInteger(st saesState) uint16 {
	return uint16(st[0])<<12 | uint16(st[2])<<8 | uint16(st[1])<<4 | uint16(st[3])
}

func addRoundKey(a, b saesState) saesState {
	return saesState{a[0] ^ b[0], a[1] ^ b[1], a[2] ^ b[2], a[3] ^ b[3]}
}

func subNibbles(table [16]uint8, st saesState) saesState {
	return saesState{table[st[0]], table[st[1]], table[st[2]], table[st[3]]}
}

// shiftRows swaps nibble positions 2 and 3, the row transposition of the 2x2
// state. It is its own inverse.
func shiftRows(st saesState) saesState {
	return saesState{st[0], st[1], st[3], st[2]}
}

func (saes *SAESCipher) mixColumns(st saesState) saesState {
	gf := saes.gfService
	return saesState{
		st[0] ^ gf.Multiply(4, st[2]),
		st[1] ^ gf.Multiply(4, st[3]),
		st[2] ^ gf.Multiply(4, st[0]),
		st[3] ^ gf.Multiply(4, st[1]),
	}
}

func (saes *SAESCipher) inverseMixColumns(st saesState) saesState {
	gf := saes.gfService
	return saesState{
		gf.Multiply(9, st[0]) ^ gf.Multiply(2, st[2]),
		gf.Multiply(9, st[1]) ^ gf.Multiply(2, st[3]),
		gf.Multiply(9, st[2]) ^ gf.Multiply(2, st[0]),
		gf.Multiply(9, st[3]) ^ gf.Multiply(2, st[1]),
	}
}

func (saes *SAESCipher) checkBlock(block BitVector) error {
	if len(block) != 16 {
		return &InvalidBlockWidthError{Got: len(block), Want: 16}
	}
	if len(saes.roundKeys) == 0 {
		return fmt.Errorf("key not set, call SetKey first")
	}
	return nil
}

func (saes *SAESCipher) EncryptBlock(plainBlock BitVector) (BitVector, error) {
	if err := saes.checkBlock(plainBlock); err != nil {
		return nil, err
	}

	state := addRoundKey(saes.roundKeys[0], stateFromInteger(uint16(plainBlock.ToInteger())))

	// Round 1: the full substitute -> shift -> mix -> add-key sequence.
	roundOutput, err := saes.roundFunction.Apply(
		FromInteger(uint64(stateToInteger(state)), 16),
		FromInteger(uint64(stateToInteger(saes.roundKeys[1])), 16),
	)
	if err != nil {
		return nil, fmt.Errorf("round function error in round 1: %w", err)
	}
	state = stateFromInteger(uint16(roundOutput.ToInteger()))

	// Final round omits mixColumns.
	state = shiftRows(subNibbles(SAESSBox, state))
	state = addRoundKey(saes.roundKeys[2], state)

	return FromInteger(uint64(stateToInteger(state)), 16), nil
}

func (saes *SAESCipher) DecryptBlock(cipherBlock BitVector) (BitVector, error) {
	if err := saes.checkBlock(cipherBlock); err != nil {
		return nil, err
	}

	state := addRoundKey(saes.roundKeys[2], stateFromInteger(uint16(cipherBlock.ToInteger())))
	state = subNibbles(SAESSBoxInv, shiftRows(state))
	state = saes.inverseMixColumns(addRoundKey(saes.roundKeys[1], state))
	state = subNibbles(SAESSBoxInv, shiftRows(state))
	state = addRoundKey(saes.roundKeys[0], state)

	return FromInteger(uint64(stateToInteger(state)), 16), nil
}
