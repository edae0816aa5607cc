package domain

import "math"

// CheckedAdd returns a+b or ErrMathOverflow.
func CheckedAdd(a, b uint64) (uint64, error) {
	if a > math.MaxUint64-b {
		return 0, ErrMathOverflow
	}
	return a + b, nil
}

// CheckedSub returns a-b or ErrMathOverflow when b > a.
func CheckedSub(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrMathOverflow
	}
	return a - b, nil
}

func CheckedAdd32(a, b uint32) (uint32, error) {
	if a > math.MaxUint32-b {
		return 0, ErrMathOverflow
	}
	return a + b, nil
}

// CheckedSum adds all values, failing on the first overflow.
func CheckedSum(values ...uint64) (uint64, error) {
	var total uint64
	for _, v := range values {
		next, err := CheckedAdd(total, v)
		if err != nil {
			return 0, err
		}
		total = next
	}
	return total, nil
}

// ClampRating applies delta to rating and saturates at the rating bounds.
func ClampRating(rating uint16, delta int) uint16 {
	next := int(rating) + delta
	if next < MinRating {
		return MinRating
	}
	if next > MaxRating {
		return MaxRating
	}
	return uint16(next)
}
