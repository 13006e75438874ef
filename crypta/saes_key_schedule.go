package crypta

// SAESSBox is the forward 4-bit substitution table shared by the S-AES key
// schedule and round layers. A nibble value is the direct table index.
var SAESSBox = [16]uint8{
	0x9, 0x4, 0xA, 0xB,
	0xD, 0x1, 0x8, 0x5,
	0x6, 0x2, 0x0, 0x3,
	0xC, 0xE, 0xF, 0x7,
}

// SAESSBoxInv is the inverse of SAESSBox, used only by the decryption
// pipeline.
var SAESSBoxInv = [16]uint8{
	0xA, 0x5, 0x9, 0xB,
	0x1, 0x7, 0x8, 0xF,
	0x6, 0x0, 0x2, 0x3,
	0xC, 0x4, 0xD, 0xE,
}

const (
	saesRcon1 = 0x80
	saesRcon2 = 0x30
)

type SAESKeySchedule struct{}

// rotNibbles swaps the high and low 4-bit halves of an 8-bit word.
func rotNibbles(word uint8) uint8 {
	return (word << 4) | (word >> 4)
}

// subWord applies the S-box independently to each nibble of an 8-bit word.
func subWord(word uint8) uint8 {
	return (SAESSBox[word>>4] << 4) | SAESSBox[word&0x0F]
}

// GenerateRoundKeys expands a 16-bit master key into the pre-round key and
// two 16-bit round keys. The half-words w0, w1 form the pre-round key
// directly; each later pair is chained from the previous ones.
func (sks *SAESKeySchedule) GenerateRoundKeys(masterKey BitVector) ([]BitVector, error) {
	if len(masterKey) != 16 {
		return nil, &InvalidKeyWidthError{Got: len(masterKey), Want: 16}
	}

	key := masterKey.ToInteger()

	var w [6]uint8
	w[0] = uint8(key >> 8)
	w[1] = uint8(key)
	w[2] = w[0] ^ (subWord(rotNibbles(w[1])) ^ saesRcon1)
	w[3] = w[2] ^ w[1]
	w[4] = w[2] ^ (subWord(rotNibbles(w[3])) ^ saesRcon2)
	w[5] = w[4] ^ w[3]

	return []BitVector{
		FromInteger(uint64(w[0])<<8|uint64(w[1]), 16),
		FromInteger(uint64(w[2])<<8|uint64(w[3]), 16),
		FromInteger(uint64(w[4])<<8|uint64(w[5]), 16),
	}, nil
}
