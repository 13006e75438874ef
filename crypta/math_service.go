package crypta

import (
	"math/big"
)

// ModPow computes base^exponent mod modulus by binary exponentiation. The
// naive float pow/fmod approach loses precision long before int64 overflow,
// so every step stays in modular integer arithmetic. Use BigModPow when
// (modulus-1)^2 does not fit in an int64.
func ModPow(base, exponent, modulus int64) int64 {
	if modulus == 1 {
		return 0
	}

	result := int64(1)
	base = base % modulus
	if base < 0 {
		base += modulus
	}

	for exponent > 0 {
		if exponent&1 == 1 {
			result = (result * base) % modulus
		}
		base = (base * base) % modulus
		exponent >>= 1
	}

	return result
}

// BigModPow computes base^exponent mod modulus for big integers.
func BigModPow(base, exponent, modulus *big.Int) *big.Int {
	return new(big.Int).Exp(base, exponent, modulus)
}

// GCD computes the greatest common divisor by the Euclidean algorithm.
func GCD(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// ExtendedGCD computes the GCD together with the Bezout coefficients.
func ExtendedGCD(a, b int64) (int64, int64, int64) {
	if b == 0 {
		return a, 1, 0
	}

	g, x1, y1 := ExtendedGCD(b, a%b)
	x := y1
	y := x1 - (a/b)*y1

	return g, x, y
}

// ModularInverse computes the inverse of a modulo m. The second return value
// is false when the inverse does not exist.
func ModularInverse(a, m int64) (int64, bool) {
	g, x, _ := ExtendedGCD(a, m)
	if g != 1 {
		return 0, false
	}

	result := x % m
	if result < 0 {
		result += m
	}

	return result, true
}
