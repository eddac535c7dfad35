// Package mna 实现修正节点分析(MNA)线性系统的构建与求解。
// 通过一系列"加盖"(Stamp)操作叠加各元件的电导/电压源贡献，
// 再用带部分主元的高斯消元求解节点电压与支路电流。
package mna

import (
	"fmt"

	"circuitlab/maths"
	"circuitlab/types"
)

// System MNA线性系统 A·x = z。
// 矩阵维度 = 非地节点数 + 理想电压支路数。
// 解向量前段为节点电压(按行索引)，后段为支路电流。
type System struct {
	NumNodes    int           // 非地节点数量
	NumBranches int           // 理想电压支路数量
	A           *maths.Matrix // 求解矩阵A
	Z           *maths.Vector // 已知向量Z
	X           *maths.Vector // 未知向量X(解)
	solver      *maths.Gauss
}

// NewSystem 创建MNA系统
//
//	numNodes: 非地节点数量。
//	numBranches: 独立电压源支路数量。
func NewSystem(numNodes, numBranches int) (*System, error) {
	n := numNodes + numBranches
	if n < 1 {
		return nil, fmt.Errorf("空系统: 节点数=%d 支路数=%d", numNodes, numBranches)
	}
	solver, err := maths.NewGauss(n, types.PivotEpsilon)
	if err != nil {
		return nil, err
	}
	return &System{
		NumNodes:    numNodes,
		NumBranches: numBranches,
		A:           maths.NewMatrix(n, n),
		Z:           maths.NewVector(n),
		X:           maths.NewVector(n),
		solver:      solver,
	}, nil
}

// Zero 将系统(矩阵A、向量Z和X)重置为零
func (m *System) Zero() {
	m.A.Zero()
	m.Z.Zero()
	m.X.Zero()
}

// Solve 求解线性系统。奇异矩阵返回 *SingularSystemError。
func (m *System) Solve() error {
	if err := m.solver.Solve(m.A, m.Z, m.X); err != nil {
		return &SingularSystemError{Err: err}
	}
	return nil
}

// NodeVoltage 从解向量X中获取指定节点的电压(地节点或无效节点返回0)
func (m *System) NodeVoltage(i types.NodeID) float64 {
	if i > types.GndNodeID && i < m.NumNodes {
		return m.X.Get(i)
	}
	return 0
}

// BranchCurrent 从解向量X中获取流经指定电压支路的电流。
// 符号约定: 正值为电流自正引脚经支路流向负引脚。
func (m *System) BranchCurrent(vs types.BranchID) float64 {
	if vs > types.NoBranchID && vs < m.NumBranches {
		return m.X.Get(m.NumNodes + vs)
	}
	return 0
}

// ------------------------------ MNA矩阵操作 ------------------------------

// StampMatrix 将一个值加到矩阵A的(i,j)元素上。地节点索引将被忽略。
func (m *System) StampMatrix(i, j types.NodeID, value float64) {
	if i > types.GndNodeID && j > types.GndNodeID {
		m.A.Increment(i, j, value)
	}
}

// StampRightSide 将一个值加到向量Z的第i个元素上。地节点索引将被忽略。
func (m *System) StampRightSide(i types.NodeID, value float64) {
	if i > types.GndNodeID {
		m.Z.Increment(i, value)
	}
}

// ------------------------------ 无源元件加盖 ------------------------------

// StampConductance 为电导元件添加加盖，修改矩阵A的四个相关元素。
func (m *System) StampConductance(n1, n2 types.NodeID, g float64) {
	m.StampMatrix(n1, n1, g)
	m.StampMatrix(n2, n2, g)
	m.StampMatrix(n1, n2, -g)
	m.StampMatrix(n2, n1, -g)
}

// StampResistor 为瞬时电阻R的二端电阻性元件添加加盖(内部按 g=1/R 处理)。
func (m *System) StampResistor(n1, n2 types.NodeID, r float64) {
	if r < types.MinWiperRes*1e-6 {
		r = types.MinWiperRes * 1e-6 // 避免除零
	}
	m.StampConductance(n1, n2, 1.0/r)
}

// ------------------------------ 理想电压支路加盖 ------------------------------

// StampVoltageSource 为理想电压元件添加支路约束加盖。
// 引入一个支路电流未知量，修改矩阵A与向量Z建立电压约束方程:
// V(n1) - V(n2) = v。
func (m *System) StampVoltageSource(n1, n2 types.NodeID, vs types.BranchID, v float64) {
	if vs <= types.NoBranchID {
		return
	}
	vsRow := m.NumNodes + vs
	// KCL方程: I(vs) 对 n1/n2 节点的贡献
	m.StampMatrix(n1, vsRow, 1)
	m.StampMatrix(n2, vsRow, -1)
	// 电压源约束方程
	m.StampMatrix(vsRow, n1, 1)
	m.StampMatrix(vsRow, n2, -1)
	m.Z.Set(vsRow, v)
}

// StampBranchResistance 向支路约束折算串联内阻:
// 约束方程变为 V(n1) - V(n2) - r·I = v (电池内阻建模)。
func (m *System) StampBranchResistance(vs types.BranchID, r float64) {
	if vs <= types.NoBranchID {
		return
	}
	vsRow := m.NumNodes + vs
	m.A.Increment(vsRow, vsRow, -r)
}
