package compat

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestSineTable(t *testing.T) {
	for deg, v := range sineTable {
		exact := 65536.0 * math.Sin(float64(deg)*math.Pi/180.0)
		diff := exact - float64(v)
		test.That(t, -1e-6 < diff && diff < 1.0, fmt.Sprintf("%d degrees: %d for %v", deg, v, exact))
	}
}

func TestSin(t *testing.T) {
	var tests = []struct {
		angle, length int
		expected      int
	}{
		{0, 1000, 0},
		{30, 1000, 499},
		{90, 32767, 32767},
		{90, -32767, -32767},
		{150, 1000, 499},
		{180, 1000, 0},
		{210, 1000, -500},
		{270, 32767, -32767},
		{330, 1000, -500},
		{360, 1000, 0},
		{450, 100, 100},
		{-30, 1000, -500},
		{-90, 100, -100},
		{-720, 100, 0},
		{45, 0, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d,%d", tt.angle, tt.length), func(t *testing.T) {
			v, err := Sin(tt.angle, tt.length)
			test.Error(t, err)
			test.T(t, v, tt.expected)
		})
	}
}

func TestSinRange(t *testing.T) {
	for _, length := range []int{-32768, 32768, math.MaxInt32} {
		_, err := Sin(0, length)
		test.That(t, errors.Is(err, ErrInvalidRange), err)
		_, err = Cos(0, length)
		test.That(t, errors.Is(err, ErrInvalidRange), err)
	}
}

func TestSinSymmetry(t *testing.T) {
	for _, length := range []int{-32767, -1000, -1, 0, 1, 777, 32767} {
		for angle := 0; angle < 360; angle++ {
			a, err := Sin(angle, length)
			test.Error(t, err)
			b, err := Sin(angle+180, length)
			test.Error(t, err)

			// the shift truncates towards negative infinity
			diff := a + b
			test.That(t, -1 <= diff && diff <= 1, fmt.Sprintf("sin(%d,%d)=%d sin(%d,%d)=%d", angle, length, a, angle+180, length, b))
		}
	}
}

func TestCos(t *testing.T) {
	for _, length := range []int{-32767, -5, 0, 1, 1000, 32767} {
		v, err := Cos(0, length)
		test.Error(t, err)
		test.T(t, v, length)

		v, err = Cos(90, length)
		test.Error(t, err)
		test.T(t, v, 0)

		v, err = Cos(360, length)
		test.Error(t, err)
		test.T(t, v, length)
	}

	v, err := Cos(60, 1000)
	test.Error(t, err)
	test.T(t, v, 499)
}

func TestCeilFloor(t *testing.T) {
	var tests = []struct {
		p, q        int
		floor, ceil int
	}{
		{7, 2, 3, 4},
		{-7, 2, -4, -3},
		{7, -2, -4, -3},
		{-7, -2, 3, 4},
		{6, 2, 3, 3},
		{-6, 2, -3, -3},
		{1, 2, 0, 1},
		{-1, 2, -1, 0},
		{1, -2, -1, 0},
		{-1, -2, 0, 1},
		{0, 5, 0, 0},
		{0, -5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.p, tt.q), func(t *testing.T) {
			test.T(t, Floor(tt.p, tt.q), tt.floor)
			test.T(t, Ceil(tt.p, tt.q), tt.ceil)
		})
	}
}

func TestCeilFloorBounds(t *testing.T) {
	for p := -20; p <= 20; p++ {
		for _, q := range []int{-7, -3, -2, -1, 1, 2, 3, 7} {
			f, c := Floor(p, q), Ceil(p, q)
			exact := float64(p) / float64(q)
			test.That(t, float64(f) <= exact && exact <= float64(c), fmt.Sprintf("%d/%d", p, q))
			test.T(t, f == c, p%q == 0, fmt.Sprintf("%d/%d", p, q))
			test.T(t, float64(f), math.Floor(exact), fmt.Sprintf("%d/%d", p, q))
			test.T(t, float64(c), math.Ceil(exact), fmt.Sprintf("%d/%d", p, q))
		}
	}
}

func TestCeilZeroDivisor(t *testing.T) {
	defer func() {
		test.That(t, recover() != nil, "expected division by zero")
	}()
	Ceil(1, 0)
}

func TestRound(t *testing.T) {
	var tests = []struct {
		p, q     int
		expected int
	}{
		{7, 2, 4},
		{0, 1, 0},
		{5, 2, 3},
		{4, 3, 1},
		{5, 3, 2},
		{1, 3, 0},
		{32767, 1, 32767},
		{32767, 32767, 1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d/%d", tt.p, tt.q), func(t *testing.T) {
			v, err := Round(tt.p, tt.q)
			test.Error(t, err)
			test.T(t, v, tt.expected)
		})
	}

	for _, pq := range [][2]int{{-1, 1}, {32768, 1}, {1, 0}, {1, -1}, {1, 32768}} {
		_, err := Round(pq[0], pq[1])
		test.That(t, errors.Is(err, ErrInvalidRange), pq)
	}
}

func TestPow2(t *testing.T) {
	var tests = []struct {
		n        int
		expected int
	}{
		{0, 1},
		{1, 2},
		{5, 32},
		{16, 65536},
		{30, 1 << 30},
	}
	for _, tt := range tests {
		v, err := Pow2(tt.n)
		test.Error(t, err)
		test.T(t, v, tt.expected)
	}

	for _, n := range []int{-1, 31, 64} {
		_, err := Pow2(n)
		test.That(t, errors.Is(err, ErrInvalidRange), n)
	}
}
