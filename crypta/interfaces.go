package crypta

type IKeySchedule interface {
	GenerateRoundKeys(masterKey BitVector) ([]BitVector, error)
}

type IRoundFunction interface {
	Apply(inputBlock BitVector, roundKey BitVector) (BitVector, error)
}

type ISymmetricCipher interface {
	SetKey(key BitVector) error
	EncryptBlock(plainBlock BitVector) (BitVector, error)
	DecryptBlock(cipherBlock BitVector) (BitVector, error)
}
