package crypta

import (
	"crypto/rand"
	"fmt"
	"strings"
)

// BitVector is an ordered fixed-length sequence of bits, most significant
// bit first. Each element is 0 or 1. Permutation tables address bits with
// 1-based indices, matching the classic cipher literature; internally the
// slice is 0-based.
type BitVector []uint8

// FromInteger converts an unsigned integer into a BitVector of the given
// width, MSB first. Bits above the width are discarded.
func FromInteger(value uint64, width int) BitVector {
	result := make(BitVector, width)
	for i := 0; i < width; i++ {
		result[i] = uint8((value >> (width - 1 - i)) & 1)
	}
	return result
}

// ToInteger converts the BitVector into an unsigned integer, MSB first.
func (bv BitVector) ToInteger() uint64 {
	var value uint64
	for _, bit := range bv {
		value = (value << 1) | uint64(bit&1)
	}
	return value
}

func (bv BitVector) String() string {
	var sb strings.Builder
	for _, bit := range bv {
		if bit == 0 {
			sb.WriteByte('0')
		} else {
			sb.WriteByte('1')
		}
	}
	return sb.String()
}

func (bv BitVector) Clone() BitVector {
	result := make(BitVector, len(bv))
	copy(result, bv)
	return result
}

// ParseBitString parses a string of '0' and '1' characters into a BitVector.
func ParseBitString(s string) (BitVector, error) {
	result := make(BitVector, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			result[i] = 0
		case '1':
			result[i] = 1
		default:
			return nil, &InvalidDigitError{Char: s[i], Pos: i}
		}
	}
	return result, nil
}

// GenerateRandomBits returns a random BitVector of the given width.
func GenerateRandomBits(width int) (BitVector, error) {
	if width <= 0 {
		return nil, fmt.Errorf("bit width must be positive, got %d", width)
	}

	raw := make([]byte, (width+7)/8)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("failed to read random bytes: %w", err)
	}

	result := make(BitVector, width)
	for i := 0; i < width; i++ {
		result[i] = (raw[i/8] >> (7 - i%8)) & 1
	}
	return result, nil
}

// Permute builds a new BitVector where output bit i is taken from input bit
// rule[i]-1. Tables may repeat indices, so expansion permutations and
// non-bijective selections are allowed.
func Permute(input BitVector, rule []int) (BitVector, error) {
	result := make(BitVector, len(rule))
	for i, pos := range rule {
		if pos < 1 || pos > len(input) {
			return nil, &DimensionError{Op: "permute", Got: pos, Want: len(input)}
		}
		result[i] = input[pos-1]
	}
	return result, nil
}

// CircularLeftShift rotates the BitVector left by n positions. The shift
// wraps, so n may exceed the vector length.
func CircularLeftShift(input BitVector, n int) BitVector {
	if len(input) == 0 {
		return BitVector{}
	}

	n %= len(input)
	if n < 0 {
		n += len(input)
	}

	result := make(BitVector, 0, len(input))
	result = append(result, input[n:]...)
	result = append(result, input[:n]...)
	return result
}

// XOR combines two BitVectors of equal width element-wise.
func XOR(a, b BitVector) (BitVector, error) {
	if len(a) != len(b) {
		return nil, &DimensionError{Op: "xor", Got: len(b), Want: len(a)}
	}

	result := make(BitVector, len(a))
	for i := range a {
		result[i] = a[i] ^ b[i]
	}
	return result, nil
}

// Concat joins two BitVectors into a new one.
func Concat(a, b BitVector) BitVector {
	result := make(BitVector, 0, len(a)+len(b))
	result = append(result, a...)
	result = append(result, b...)
	return result
}
