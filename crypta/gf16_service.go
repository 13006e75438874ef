package crypta

import (
	"fmt"
)

// gf16Modulus is the irreducible polynomial x^4 + x + 1 used for all GF(2^4)
// reductions in the S-AES diffusion layer.
const gf16Modulus = 0b10011

// GF16Service provides arithmetic in the field GF(2^4).
type GF16Service struct{}

func NewGF16Service() *GF16Service {
	return &GF16Service{}
}

// Add adds two field elements (bitwise XOR).
func (s *GF16Service) Add(a, b uint8) uint8 {
	return (a ^ b) & 0x0F
}

// Multiply multiplies two 4-bit values in GF(2^4) modulo x^4 + x + 1 with
// the standard shift-and-reduce algorithm. Operands are masked to 4 bits, so
// the function is closed over its domain and has no error conditions.
func (s *GF16Service) Multiply(a, b uint8) uint8 {
	var product uint8
	a &= 0x0F
	b &= 0x0F

	for a != 0 && b != 0 {
		if b&1 != 0 {
			product ^= a
		}

		a <<= 1
		if a&(1<<4) != 0 {
			a ^= gf16Modulus
		}

		b >>= 1
	}

	return product
}

// Inverse finds the multiplicative inverse of a field element by search. The
// field has 15 invertible elements, so brute force is exact and cheap.
func (s *GF16Service) Inverse(a uint8) (uint8, error) {
	a &= 0x0F
	if a == 0 {
		return 0, fmt.Errorf("zero element has no inverse")
	}

	for i := uint8(1); i < 16; i++ {
		if s.Multiply(a, i) == 1 {
			return i, nil
		}
	}
	return 0, fmt.Errorf("inverse not found for 0x%x", a)
}
