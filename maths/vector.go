package maths

import (
	"fmt"
	"strings"
)

// Vector 稠密向量
type Vector struct {
	data []float64
}

// NewVector 创建新的稠密向量
func NewVector(length int) *Vector {
	if length < 0 {
		panic("invalid vector length: cannot be negative")
	}
	return &Vector{data: make([]float64, length)}
}

// NewVectorWithData 从现有数据创建稠密向量
func NewVectorWithData(data []float64) *Vector {
	return &Vector{data: data}
}

// Length 返回向量长度
func (v *Vector) Length() int { return len(v.data) }

// Get 获取指定位置的元素值
func (v *Vector) Get(index int) float64 { return v.data[index] }

// Set 设置向量元素值
func (v *Vector) Set(index int, value float64) { v.data[index] = value }

// Increment 增量设置向量元素(累加值)
func (v *Vector) Increment(index int, value float64) { v.data[index] += value }

// Zero 清空向量，重置为零向量
func (v *Vector) Zero() {
	for i := range v.data {
		v.data[i] = 0
	}
}

// Copy 将自身值复制到 a 向量
func (v *Vector) Copy(a *Vector) {
	if a.Length() != v.Length() {
		panic("vector dimension mismatch")
	}
	copy(a.data, v.data)
}

// Swap 交换两个元素
func (v *Vector) Swap(i, j int) {
	v.data[i], v.data[j] = v.data[j], v.data[i]
}

// ToDense 转换为稠密切片
func (v *Vector) ToDense() []float64 {
	return append([]float64{}, v.data...)
}

// String 返回向量的字符串表示
func (v *Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v.data {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%+.6e", x)
	}
	sb.WriteByte(']')
	return sb.String()
}
