package maths

import (
	"golang.org/x/exp/constraints"
)

// Abs 返回任意有序数值类型的绝对值
func Abs[T constraints.Integer | constraints.Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Clamp 将 v 限制在 [lo, hi] 区间内
func Clamp[T constraints.Ordered](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Max 返回两者较大值
func Max[T constraints.Ordered](a, b T) T {
	if a > b {
		return a
	}
	return b
}
