package types

import (
	"image"

	"gonum.org/v1/gonum/mat"
)

// NodeID 节点矩阵行索引(GndNodeID 表示地节点)
type NodeID = int

// BranchID 电压源支路索引
type BranchID = int

// TerminalID 引脚
type TerminalID = int

// WireID 连接
type WireID = int

// ComponentID 元件
type ComponentID = int

// Terminal 元件引脚。每个引脚归属唯一元件，
// 电压与电流由求解提取阶段每步写入一次。
type Terminal struct {
	ID        TerminalID  // 引脚ID
	Component ComponentID // 所属元件ID
	Index     int         // 元件内引脚序号
	Offset    image.Point // 相对元件的位置偏移
	Voltage   float64     // 上次求解的电压
	Current   float64     // 上次求解的电流
}

// Wire 连接两个引脚的理想导线(零阻抗，仅参与节点合并)
type Wire struct {
	ID   WireID     // 线路ID
	From TerminalID // 起始引脚
	To   TerminalID // 结束引脚
}

// State 元件类型专有状态记录。
// 每个类型一个具名结构体，字段显式定义，禁止自由属性表。
type State interface {
	StateKind() Kind // 状态所属的元件类型
}

// Component 电路元件。引脚数量在创建时固定，
// 核心只读写状态字段，从不改变结构。
type Component struct {
	ID        ComponentID   // 元件ID
	Kind      Kind          // 元件类型
	Terminals []*Terminal   // 引脚列表(固定顺序)
	State     State         // 类型专有状态
	Current   *mat.VecDense // 引脚电流数组，存储各引脚的电流值

	// 每步重建的求解索引(仅在单步内有效)
	Nodes  []NodeID // 各引脚的矩阵行索引
	Branch BranchID // 电压源支路索引(无支路为 NoBranchID)

	// 每步求解提取结果
	VoltageDrop     float64 // 引脚0-引脚1电压降
	SolvedCurrent   float64 // 流经元件的电流
	StampResistance float64 // 本步加盖使用的瞬时电阻(电阻性元件)
}

// TerminalID 返回指定序号的引脚ID
func (c *Component) TerminalID(i int) TerminalID { return c.Terminals[i].ID }

// ResetSolveIndex 重置单步求解索引
func (c *Component) ResetSolveIndex() {
	for i := range c.Nodes {
		c.Nodes[i] = GndNodeID
	}
	c.Branch = NoBranchID
}
