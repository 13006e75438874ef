package crypta

// SAESRoundFunction applies one full S-AES round: substitute nibbles, shift
// rows, mix columns, then add the round key. The final round of the cipher
// skips mixColumns and is sequenced by the cipher itself.
type SAESRoundFunction struct {
	cipher *SAESCipher
}

func (srf *SAESRoundFunction) Apply(inputBlock BitVector, roundKey BitVector) (BitVector, error) {
	if len(inputBlock) != 16 {
		return nil, &InvalidBlockWidthError{Got: len(inputBlock), Want: 16}
	}
	if len(roundKey) != 16 {
		return nil, &DimensionError{Op: "saes round key", Got: len(roundKey), Want: 16}
	}

	state := stateFromInteger(uint16(inputBlock.ToInteger()))
	key := stateFromInteger(uint16(roundKey.ToInteger()))

	state = subNibbles(SAESSBox, state)
	state = shiftRows(state)
	state = srf.cipher.mixColumns(state)
	state = addRoundKey(key, state)

	return FromInteger(uint64(stateToInteger(state)), 16), nil
}
