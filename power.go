package compound

import "math"

// Scale is the fixed-point scale of growth multipliers: 100 means 1.00.
const Scale = 100

// ScaledPow returns (base/Scale)^exp, scaled by Scale, using exponentiation by squaring.
//
// Every product is divided by Scale as soon as it is computed, so digits below
// 1/Scale are truncated at each step. This loss is part of the result: the
// sequence of operations must stay as is for amounts to be reproducible.
//
// A zero base yields a zero multiplier. ErrOverflow is returned when a product
// does not fit in 64 bits.
func ScaledPow(base, exp uint64) (uint64, error) {
	if base == 0 {
		return 0, nil
	}
	result := uint64(Scale)
	for exp > 0 {
		if exp&1 == 1 {
			if result > math.MaxUint64/base {
				return 0, ErrOverflow
			}
			result = result * base / Scale
		}
		exp >>= 1
		if exp > 0 {
			if base > math.MaxUint64/base {
				return 0, ErrOverflow
			}
			base = base * base / Scale
			if base == 0 {
				// a base below 0.10 squares to zero, the remaining set bit will multiply it in.
				return 0, nil
			}
		}
	}
	return result, nil
}
