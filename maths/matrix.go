package maths

import (
	"fmt"
	"strings"
)

// Matrix 稠密矩阵(行优先存储)
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix 创建指定维度的空稠密矩阵
func NewMatrix(rows, cols int) *Matrix {
	if rows < 0 || cols < 0 {
		panic("invalid matrix dimensions: cannot be negative")
	}
	return &Matrix{
		rows: rows,
		cols: cols,
		data: make([]float64, rows*cols),
	}
}

// Rows 返回矩阵行数
func (m *Matrix) Rows() int { return m.rows }

// Cols 返回矩阵列数
func (m *Matrix) Cols() int { return m.cols }

// IsSquare 判断是否为方阵
func (m *Matrix) IsSquare() bool { return m.rows == m.cols }

// Get 获取指定行列元素值(越界panic)
func (m *Matrix) Get(row, col int) float64 {
	m.check(row, col)
	return m.data[row*m.cols+col]
}

// Set 设置指定行列元素值(越界panic)
func (m *Matrix) Set(row, col int, value float64) {
	m.check(row, col)
	m.data[row*m.cols+col] = value
}

// Increment 增量更新矩阵元素(value累加，越界panic)
func (m *Matrix) Increment(row, col int, value float64) {
	m.check(row, col)
	m.data[row*m.cols+col] += value
}

// SwapRows 交换两行
func (m *Matrix) SwapRows(row1, row2 int) {
	if row1 == row2 {
		return
	}
	a := m.data[row1*m.cols : (row1+1)*m.cols]
	b := m.data[row2*m.cols : (row2+1)*m.cols]
	for i := range a {
		a[i], b[i] = b[i], a[i]
	}
}

// Zero 清空矩阵为零矩阵
func (m *Matrix) Zero() {
	for i := range m.data {
		m.data[i] = 0
	}
}

// Copy 复制自身数据到目标矩阵
func (m *Matrix) Copy(a *Matrix) {
	if a.rows != m.rows || a.cols != m.cols {
		panic(fmt.Sprintf("dimension mismatch: source %dx%d, target %dx%d", m.rows, m.cols, a.rows, a.cols))
	}
	copy(a.data, m.data)
}

// MatrixVectorMultiply 矩阵向量乘法(A*x，返回新向量)
func (m *Matrix) MatrixVectorMultiply(x *Vector) *Vector {
	if x.Length() != m.cols {
		panic(fmt.Sprintf("vector dimension mismatch: x length=%d, matrix cols=%d", x.Length(), m.cols))
	}
	result := NewVector(m.rows)
	for i := 0; i < m.rows; i++ {
		sum := 0.0
		for j := 0; j < m.cols; j++ {
			sum += m.Get(i, j) * x.Get(j)
		}
		result.Set(i, sum)
	}
	return result
}

// String 格式化输出矩阵
func (m *Matrix) String() string {
	var sb strings.Builder
	for i := 0; i < m.rows; i++ {
		sb.WriteByte('[')
		for j := 0; j < m.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%+.6e", m.Get(i, j))
		}
		sb.WriteString("]\n")
	}
	return sb.String()
}

func (m *Matrix) check(row, col int) {
	if row < 0 || row >= m.rows || col < 0 || col >= m.cols {
		panic(fmt.Sprintf("matrix index out of range: row=%d, col=%d (rows=%d, cols=%d)", row, col, m.rows, m.cols))
	}
}
