package crypta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromIntegerToIntegerRoundTrip(t *testing.T) {
	for value := uint64(0); value < 256; value++ {
		bv := FromInteger(value, 8)
		require.Len(t, bv, 8)
		assert.Equal(t, value, bv.ToInteger())
	}

	assert.Equal(t, uint64(0xD728), FromInteger(0xD728, 16).ToInteger())
	assert.Equal(t, BitVector{1, 0, 1, 1}, FromInteger(0xB, 4))
}

func TestParseBitString(t *testing.T) {
	bv, err := ParseBitString("1001100111")
	require.NoError(t, err)
	assert.Equal(t, BitVector{1, 0, 0, 1, 1, 0, 0, 1, 1, 1}, bv)
	assert.Equal(t, "1001100111", bv.String())

	_, err = ParseBitString("10021011")
	var digitErr *InvalidDigitError
	require.ErrorAs(t, err, &digitErr)
	assert.Equal(t, byte('2'), digitErr.Char)
	assert.Equal(t, 3, digitErr.Pos)
}

func TestPermute(t *testing.T) {
	input := BitVector{1, 0, 0, 1, 1, 0, 0, 1, 1, 1}

	permuted, err := Permute(input, P10)
	require.NoError(t, err)
	assert.Equal(t, BitVector{0, 1, 0, 0, 1, 1, 1, 1, 1, 0}, permuted)

	// Expansion tables reuse source positions.
	expanded, err := Permute(BitVector{1, 0, 0, 1}, EP)
	require.NoError(t, err)
	assert.Equal(t, BitVector{1, 1, 0, 0, 0, 0, 1, 1}, expanded)
}

func TestPermuteOutOfRange(t *testing.T) {
	_, err := Permute(BitVector{1, 0, 1}, []int{1, 4, 2})
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 4, dimErr.Got)
	assert.Equal(t, 3, dimErr.Want)

	_, err = Permute(BitVector{1, 0, 1}, []int{0, 1, 2})
	assert.ErrorAs(t, err, &dimErr)
}

func TestCircularLeftShift(t *testing.T) {
	input := BitVector{1, 0, 0, 1, 1}

	assert.Equal(t, BitVector{0, 0, 1, 1, 1}, CircularLeftShift(input, 1))
	assert.Equal(t, BitVector{0, 1, 1, 1, 0}, CircularLeftShift(input, 2))
	assert.Equal(t, input, CircularLeftShift(input, 5))
	// Shift amounts beyond the length wrap.
	assert.Equal(t, CircularLeftShift(input, 2), CircularLeftShift(input, 7))
}

func TestXOR(t *testing.T) {
	a := BitVector{1, 0, 1, 0}
	b := BitVector{1, 1, 0, 0}

	result, err := XOR(a, b)
	require.NoError(t, err)
	assert.Equal(t, BitVector{0, 1, 1, 0}, result)

	_, err = XOR(a, BitVector{1, 0, 1})
	var dimErr *DimensionError
	require.ErrorAs(t, err, &dimErr)
	assert.Equal(t, 3, dimErr.Got)
	assert.Equal(t, 4, dimErr.Want)
}

func TestGenerateRandomBits(t *testing.T) {
	for _, width := range []int{8, 10, 16} {
		bv, err := GenerateRandomBits(width)
		require.NoError(t, err)
		require.Len(t, bv, width)
		for _, bit := range bv {
			assert.LessOrEqual(t, bit, uint8(1))
		}
	}

	_, err := GenerateRandomBits(0)
	assert.Error(t, err)
}
