package crypta

import "fmt"

// SDESCipher is the simplified DES teaching cipher: an 8-bit block, a 10-bit
// key and two Feistel rounds framed by an initial and final permutation.
type SDESCipher struct {
	feistel    *FeistelNetwork
	currentKey BitVector
}

var IP = []int{2, 6, 3, 1, 4, 8, 5, 7}

var IPInv = []int{4, 1, 3, 5, 7, 2, 8, 6}

// NewSDESCipher builds the cipher and runs the key schedule once. The round
// keys live as long as the cipher instance.
func NewSDESCipher(key BitVector) (*SDESCipher, error) {
	keySchedule := &SDESKeySchedule{}
	roundFunction := &SDESRoundFunction{}

	feistel, err := NewFeistelNetwork(
		keySchedule,
		roundFunction,
		8,
		2,
	)
	if err != nil {
		return nil, err
	}

	cipher := &SDESCipher{
		feistel: feistel,
	}

	if err := cipher.SetKey(key); err != nil {
		return nil, err
	}

	return cipher, nil
}

func (sdes *SDESCipher) SetKey(key BitVector) error {
	if len(key) != 10 {
		return &InvalidKeyWidthError{Got: len(key), Want: 10}
	}

	if err := sdes.feistel.SetKey(key); err != nil {
		return fmt.Errorf("failed to set key in feistel network: %w", err)
	}

	sdes.currentKey = key.Clone()
	return nil
}

func (sdes *SDESCipher) EncryptBlock(plainBlock BitVector) (BitVector, error) {
	if len(plainBlock) != 8 {
		return nil, &InvalidBlockWidthError{Got: len(plainBlock), Want: 8}
	}

	permuted, err := Permute(plainBlock, IP)
	if err != nil {
		return nil, fmt.Errorf("IP permutation failed: %w", err)
	}

	feistelOutput, err := sdes.feistel.EncryptBlock(permuted)
	if err != nil {
		return nil, fmt.Errorf("feistel encryption failed: %w", err)
	}

	cipherBlock, err := Permute(feistelOutput, IPInv)
	if err != nil {
		return nil, fmt.Errorf("inverse IP permutation failed: %w", err)
	}

	return cipherBlock, nil
}

func (sdes *SDESCipher) DecryptBlock(cipherBlock BitVector) (BitVector, error) {
	if len(cipherBlock) != 8 {
		return nil, &InvalidBlockWidthError{Got: len(cipherBlock), Want: 8}
	}

	permuted, err := Permute(cipherBlock, IP)
	if err != nil {
		return nil, fmt.Errorf("IP permutation failed: %w", err)
	}

	feistelOutput, err := sdes.feistel.DecryptBlock(permuted)
	if err != nil {
		return nil, fmt.Errorf("feistel decryption failed: %w", err)
	}

	plainBlock, err := Permute(feistelOutput, IPInv)
	if err != nil {
		return nil, fmt.Errorf("inverse IP permutation failed: %w", err)
	}

	return plainBlock, nil
}
