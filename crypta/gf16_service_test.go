package crypta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGF16MultiplyByZero(t *testing.T) {
	gf := NewGF16Service()

	for a := uint8(0); a < 16; a++ {
		assert.Equal(t, uint8(0), gf.Multiply(a, 0))
		assert.Equal(t, uint8(0), gf.Multiply(0, a))
	}
}

func TestGF16MultiplyCommutative(t *testing.T) {
	gf := NewGF16Service()

	for a := uint8(0); a < 16; a++ {
		for b := uint8(0); b < 16; b++ {
			require.Equal(t, gf.Multiply(a, b), gf.Multiply(b, a))
		}
	}
}

func TestGF16MultiplyKnownProducts(t *testing.T) {
	gf := NewGF16Service()

	// Products under x^4 + x + 1, including the mixColumns coefficients.
	assert.Equal(t, uint8(2), gf.Multiply(4, 9))
	assert.Equal(t, uint8(1), gf.Multiply(2, 9))
	assert.Equal(t, uint8(0xA), gf.Multiply(0xF, 0xF))
	assert.Equal(t, uint8(1), gf.Multiply(1, 1))

	// Operands are masked to 4 bits on entry.
	assert.Equal(t, gf.Multiply(4, 9), gf.Multiply(0x14, 0x19))
}

func TestGF16Add(t *testing.T) {
	gf := NewGF16Service()

	assert.Equal(t, uint8(0), gf.Add(0xB, 0xB))
	assert.Equal(t, uint8(0x6), gf.Add(0x5, 0x3))
}

func TestGF16Inverse(t *testing.T) {
	gf := NewGF16Service()

	_, err := gf.Inverse(0)
	assert.Error(t, err)

	for a := uint8(1); a < 16; a++ {
		inv, err := gf.Inverse(a)
		require.NoError(t, err)
		assert.Equal(t, uint8(1), gf.Multiply(a, inv))
	}
}
