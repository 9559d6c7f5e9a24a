// Copyright 2024 Axel Wagner.
// All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mathx implements checked and floor-rounding integer arithmetic on
// int64. The checked operations report overflow instead of wrapping.
package mathx

import "math"

// AddExact returns a+b and whether the sum fits into an int64.
func AddExact(a, b int64) (int64, bool) {
	s := a + b
	// Overflow iff both operands have the same sign and the sum has the
	// other one.
	if (a^s)&(b^s) < 0 {
		return 0, false
	}
	return s, true
}

// SubExact returns a-b and whether the difference fits into an int64.
func SubExact(a, b int64) (int64, bool) {
	d := a - b
	if (a^b)&(a^d) < 0 {
		return 0, false
	}
	return d, true
}

// MulExact returns a*b and whether the product fits into an int64.
func MulExact(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	p := a * b
	if (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) || p/b != a {
		return 0, false
	}
	return p, true
}

// NegateExact returns -a and whether it fits into an int64.
func NegateExact(a int64) (int64, bool) {
	if a == math.MinInt64 {
		return 0, false
	}
	return -a, true
}

// ToInt32 returns v as an int32 and whether it fits.
func ToInt32(v int64) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

// FloorDiv returns the largest integer q with q*b <= a. b must not be zero.
func FloorDiv(a, b int64) int64 {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FloorMod returns a - FloorDiv(a, b)*b. The result has the sign of b.
func FloorMod(a, b int64) int64 {
	m := a % b
	if m != 0 && ((m < 0) != (b < 0)) {
		m += b
	}
	return m
}
