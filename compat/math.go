// Package compat provides integer arithmetic, fixed-point trigonometry, character classification, and string helpers
// for runtimes without floating point or with reduced libraries. File and process operations are not available and
// always fail.
package compat

import "fmt"

// MaxLength is the largest magnitude of the length argument of Sin and Cos.
const MaxLength = 32767

// sineTable holds 65536*sin(deg) truncated, for 0 to 90 degrees.
var sineTable = [91]int{
	0, 1143, 2287, 3429, 4571, 5711, 6850, 7986, 9120, 10252, // 0 to 9 degrees
	11380, 12504, 13625, 14742, 15854, 16961, 18064, 19160, 20251, 21336, // 10 to 19 degrees
	22414, 23486, 24550, 25606, 26655, 27696, 28729, 29752, 30767, 31772, // 20 to 29 degrees
	32767, 33753, 34728, 35693, 36647, 37589, 38521, 39440, 40347, 41243, // 30 to 39 degrees
	42125, 42995, 43852, 44695, 45525, 46340, 47142, 47929, 48702, 49460, // 40 to 49 degrees
	50203, 50931, 51643, 52339, 53019, 53683, 54331, 54963, 55577, 56175, // 50 to 59 degrees
	56755, 57319, 57864, 58393, 58903, 59395, 59870, 60326, 60763, 61183, // 60 to 69 degrees
	61583, 61965, 62328, 62672, 62997, 63302, 63589, 63856, 64103, 64331, // 70 to 79 degrees
	64540, 64729, 64898, 65047, 65176, 65286, 65376, 65446, 65496, 65526, // 80 to 89 degrees
	65536, // 90 degrees
}

// Sin returns length*sin(angle) for an angle in degrees, truncated towards negative infinity. It returns
// ErrInvalidRange if the magnitude of length exceeds MaxLength.
func Sin(angle, length int) (int, error) {
	if length < -MaxLength || MaxLength < length {
		return 0, fmt.Errorf("compat: %w: length %d", ErrInvalidRange, length)
	}

	angle %= 360
	if angle < 0 {
		angle += 360
	}

	var v int
	switch {
	case angle < 90:
		v = sineTable[angle]
	case angle < 180:
		v = sineTable[180-angle]
	case angle < 270:
		v = -sineTable[angle-180]
	default:
		v = -sineTable[360-angle]
	}
	return (v * length) >> 16, nil
}

// Cos returns length*cos(angle) for an angle in degrees, see Sin.
func Cos(angle, length int) (int, error) {
	return Sin(90-angle, length)
}

// Ceil returns the smallest integer not less than p/q. It panics if q is zero.
func Ceil(p, q int) int {
	res := p / q
	if p%q == 0 || res < 0 || res == 0 && (p < 0 && 0 < q || 0 < p && q < 0) {
		return res
	}
	return res + 1
}

// Floor returns the largest integer not greater than p/q. It panics if q is zero.
func Floor(p, q int) int {
	res := p / q
	if p%q == 0 || 0 < res || res == 0 && (0 < p && 0 < q || p < 0 && q < 0) {
		return res
	}
	return res - 1
}

// Round returns p/q rounded to the nearest integer, halves round up. It returns ErrInvalidRange unless p is in
// [0,32767] and q in [1,32767].
func Round(p, q int) (int, error) {
	if p < 0 || 32767 < p || q < 1 || 32767 < q {
		return 0, fmt.Errorf("compat: %w: round %d/%d", ErrInvalidRange, p, q)
	}
	return (2*p + q) / (2 * q), nil
}

// Pow2 returns 2 to the power n for n in [0,30], or ErrInvalidRange otherwise.
func Pow2(n int) (int, error) {
	if 1 <= n && n <= 30 {
		return 2 << (n - 1), nil
	} else if n != 0 {
		return 0, fmt.Errorf("compat: %w: exponent %d", ErrInvalidRange, n)
	}
	return 1, nil
}
