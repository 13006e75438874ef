package crypta

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewFeistelNetworkValidation(t *testing.T) {
	keySchedule := &SDESKeySchedule{}
	roundFunction := &SDESRoundFunction{}

	_, err := NewFeistelNetwork(nil, roundFunction, 8, 2)
	assert.Error(t, err)

	_, err = NewFeistelNetwork(keySchedule, nil, 8, 2)
	assert.Error(t, err)

	_, err = NewFeistelNetwork(keySchedule, roundFunction, 7, 2)
	assert.Error(t, err)

	_, err = NewFeistelNetwork(keySchedule, roundFunction, 8, 0)
	assert.Error(t, err)

	fn, err := NewFeistelNetwork(keySchedule, roundFunction, 8, 2)
	require.NoError(t, err)
	assert.Equal(t, 8, fn.GetBlockWidth())
	assert.Equal(t, 2, fn.GetRoundsCount())
}

func TestFeistelNetworkRequiresKey(t *testing.T) {
	fn, err := NewFeistelNetwork(&SDESKeySchedule{}, &SDESRoundFunction{}, 8, 2)
	require.NoError(t, err)

	_, err = fn.EncryptBlock(mustBits(t, "10010111"))
	assert.ErrorContains(t, err, "key not set")

	_, err = fn.DecryptBlock(mustBits(t, "10010111"))
	assert.ErrorContains(t, err, "key not set")
}

func TestFeistelNetworkRoundTrip(t *testing.T) {
	fn, err := NewFeistelNetwork(&SDESKeySchedule{}, &SDESRoundFunction{}, 8, 2)
	require.NoError(t, err)
	require.NoError(t, fn.SetKey(mustBits(t, "1100011100")))

	for block := uint64(0); block < 256; block++ {
		plaintext := FromInteger(block, 8)

		encrypted, err := fn.EncryptBlock(plaintext)
		require.NoError(t, err)

		decrypted, err := fn.DecryptBlock(encrypted)
		require.NoError(t, err)
		require.Equal(t, plaintext, decrypted)
	}
}

func TestFeistelNetworkBlockWidth(t *testing.T) {
	fn, err := NewFeistelNetwork(&SDESKeySchedule{}, &SDESRoundFunction{}, 8, 2)
	require.NoError(t, err)
	require.NoError(t, fn.SetKey(mustBits(t, "1100011100")))

	var blockErr *InvalidBlockWidthError
	_, err = fn.EncryptBlock(mustBits(t, "100101"))
	require.ErrorAs(t, err, &blockErr)
	assert.Equal(t, 6, blockErr.Got)
	assert.Equal(t, 8, blockErr.Want)
}
