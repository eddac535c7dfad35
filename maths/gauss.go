package maths

import (
	"errors"
	"fmt"
	"math"
)

// ErrSingular 结构性奇异矩阵(例如无接地通路的悬浮子网络)
var ErrSingular = errors.New("matrix is singular or nearly singular")

// Gauss 带部分主元选择的高斯消元求解器。
// 每次消元前在当前列选取绝对值最大的候选主元保证数值稳定，
// 主元绝对值低于阈值时报告奇异而不是让 NaN/Inf 向外扩散。
type Gauss struct {
	n       int     // 矩阵维度(方阵n×n)
	epsilon float64 // 主元奇异判定阈值
}

// NewGauss 创建高斯消元求解器
//
//	n: 矩阵维度(必须为正整数)。
//	epsilon: 主元奇异判定阈值(<=0 使用默认值1e-12)。
func NewGauss(n int, epsilon float64) (*Gauss, error) {
	if n < 1 {
		return nil, errors.New("gauss dimension must be positive")
	}
	if epsilon <= 0 {
		epsilon = 1e-12
	}
	return &Gauss{n: n, epsilon: epsilon}, nil
}

// Dim 获取矩阵维度
func (g *Gauss) Dim() int { return g.n }

// Solve 原位求解 A·x = z。
// 消元直接在 a 和 z 上进行(调用方每步重建系统，无需保留)，
// 结果写入 x。矩阵奇异时返回包装 ErrSingular 的错误。
func (g *Gauss) Solve(a *Matrix, z, x *Vector) error {
	// 输入合法性校验
	if !a.IsSquare() {
		return errors.New("gauss solve: input must be square matrix")
	}
	if a.Rows() != g.n {
		return errors.New("gauss solve: matrix dimension mismatch")
	}
	if z.Length() != g.n || x.Length() != g.n {
		return errors.New("gauss solve: vector dimension mismatch")
	}

	// 前向消元
	for k := 0; k < g.n; k++ {
		// 部分主元选择: 在活动列中选取绝对值最大候选
		maxRow := k
		maxAbsVal := math.Abs(a.Get(k, k))
		for i := k + 1; i < g.n; i++ {
			if v := math.Abs(a.Get(i, k)); v > maxAbsVal {
				maxAbsVal = v
				maxRow = i
			}
		}

		// 奇异检查
		if maxAbsVal < g.epsilon {
			return fmt.Errorf("gauss solve: %w (pivot=%.3e at row %d)", ErrSingular, maxAbsVal, k)
		}

		// 交换行
		if maxRow != k {
			a.SwapRows(k, maxRow)
			z.Swap(k, maxRow)
		}

		// 消元
		pivot := a.Get(k, k)
		for i := k + 1; i < g.n; i++ {
			factor := a.Get(i, k) / pivot
			if factor == 0 {
				continue
			}
			a.Set(i, k, 0)
			for j := k + 1; j < g.n; j++ {
				a.Increment(i, j, -factor*a.Get(k, j))
			}
			z.Increment(i, -factor*z.Get(k))
		}
	}

	// 回代
	for i := g.n - 1; i >= 0; i-- {
		sum := z.Get(i)
		for j := i + 1; j < g.n; j++ {
			sum -= a.Get(i, j) * x.Get(j)
		}
		x.Set(i, sum/a.Get(i, i))
	}

	// 结果有效性检查
	for i := 0; i < g.n; i++ {
		if v := x.Get(i); math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("gauss solve: %w (non-finite solution at index %d)", ErrSingular, i)
		}
	}
	return nil
}
