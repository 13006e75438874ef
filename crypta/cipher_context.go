package crypta

import (
	"fmt"
)

// CipherContext binds a symmetric cipher to a master key for host
// collaborators such as the CLI. Each call is synchronous and stateless
// given the scheduled keys; a failed call leaves the context untouched.
type CipherContext struct {
	cipher ISymmetricCipher
	key    BitVector
}

func NewCipherContext(cipher ISymmetricCipher, key BitVector) (*CipherContext, error) {
	if cipher == nil {
		return nil, fmt.Errorf("cipher implementation cannot be nil")
	}

	ctx := &CipherContext{
		cipher: cipher,
	}

	if err := ctx.SetKey(key); err != nil {
		return nil, fmt.Errorf("failed to set key: %w", err)
	}

	return ctx, nil
}

func (ctx *CipherContext) SetKey(newKey BitVector) error {
	if err := ctx.cipher.SetKey(newKey); err != nil {
		return err
	}
	ctx.key = newKey.Clone()
	return nil
}

func (ctx *CipherContext) Encrypt(plainBlock BitVector) (BitVector, error) {
	return ctx.cipher.EncryptBlock(plainBlock)
}

func (ctx *CipherContext) Decrypt(cipherBlock BitVector) (BitVector, error) {
	return ctx.cipher.DecryptBlock(cipherBlock)
}
