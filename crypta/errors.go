package crypta

import "fmt"

// DimensionError reports a width mismatch between bit-level operands, or a
// permutation table entry that falls outside the input width.
type DimensionError struct {
	Op   string
	Got  int
	Want int
}

func (e *DimensionError) Error() string {
	return fmt.Sprintf("%s: got width %d, want %d", e.Op, e.Got, e.Want)
}

// InvalidKeyWidthError reports a master key of the wrong bit width.
type InvalidKeyWidthError struct {
	Got  int
	Want int
}

func (e *InvalidKeyWidthError) Error() string {
	return fmt.Sprintf("invalid key width: got %d bits, want %d", e.Got, e.Want)
}

// InvalidBlockWidthError reports a block of the wrong bit width. Blocks are
// never silently truncated or padded.
type InvalidBlockWidthError struct {
	Got  int
	Want int
}

func (e *InvalidBlockWidthError) Error() string {
	return fmt.Sprintf("invalid block width: got %d bits, want %d", e.Got, e.Want)
}

// InvalidDigitError reports a non-binary character in a bit string.
type InvalidDigitError struct {
	Char byte
	Pos  int
}

func (e *InvalidDigitError) Error() string {
	return fmt.Sprintf("invalid digit %q at position %d: want '0' or '1'", e.Char, e.Pos)
}
