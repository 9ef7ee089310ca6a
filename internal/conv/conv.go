package conv

import (
	"fmt"
	"math"
)

// IntToUint32 converts int to uint32 safely.
func IntToUint32(v int) (uint32, error) {
	if v < 0 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (negative)", v)
	}
	// On 64-bit systems, int can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// Uint32ToInt converts uint32 to int safely.
func Uint32ToInt(v uint32) (int, error) {
	if uint64(v) > uint64(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// MulInt returns a*b for non-negative operands.
func MulInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d * %d (negative operand)", a, b)
	}
	if a == 0 || b == 0 {
		return 0, nil
	}
	if a > math.MaxInt/b {
		return 0, fmt.Errorf("integer overflow: %d * %d exceeds max int", a, b)
	}
	return a * b, nil
}

// AddInt returns a+b for non-negative operands.
func AddInt(a, b int) (int, error) {
	if a < 0 || b < 0 {
		return 0, fmt.Errorf("integer overflow: %d + %d (negative operand)", a, b)
	}
	if a > math.MaxInt-b {
		return 0, fmt.Errorf("integer overflow: %d + %d exceeds max int", a, b)
	}
	return a + b, nil
}

// CeilDiv returns ceil(n/d) for n >= 0 and d > 0.
// Unlike (n+d-1)/d it cannot overflow for n close to math.MaxInt.
func CeilDiv(n, d int) (int, error) {
	if d <= 0 {
		return 0, fmt.Errorf("invalid divisor: %d", d)
	}
	if n < 0 {
		return 0, fmt.Errorf("invalid dividend: %d (negative)", n)
	}
	q := n / d
	if n%d != 0 {
		q++
	}
	return q, nil
}
