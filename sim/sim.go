// Package sim 实现单步仿真协调器。
// 每次外部tick调用严格顺序执行: 节点识别 -> 加盖 -> 求解 ->
// 元件状态推进 -> 故障评估，过程中无内部并行、无挂起点。
// 相同拓扑、相同先前状态和相同步长必定产生相同输出。
package sim

import (
	"fmt"

	"circuitlab/component"
	"circuitlab/graph"
	"circuitlab/mna"
	"circuitlab/types"
)

// Input 单步输入: 外部持有者提供的元件/导线列表与步长。
// 核心不保留任何超出本次调用的引用。
type Input struct {
	Components []*types.Component // 元件列表(有序)
	Wires      []types.Wire       // 导线列表
	DeltaTime  float64            // 步长(秒)，必须为正
}

// WireReading 导线导出读数。
// 电压取两端节点电压的平均值；电流取导线From端引脚的电流
// (已知的近似处理，不做真实节点电流求和)。
type WireReading struct {
	Wire    types.WireID // 导线ID
	Voltage float64      // 导线电压(V)
	Current float64      // 导线电流(A)
}

// Output 单步输出
type Output struct {
	Nodes        []*graph.Node // 求解后的节点(含电压)
	NodeVoltages []float64     // 非地节点电压(按行索引)
	WireReadings []WireReading // 导线读数
	NewFaults    []types.Fault // 本步新产生的故障(有序)
	Halted       bool          // 运行是否已停止
}

// Runner 仿真运行状态。
// 跨步保留仿真时间与已上报故障集合；节点/支路映射每步重建。
type Runner struct {
	Time   float64 // 仿真时间(秒)，与墙钟无关
	Halted bool    // 停止标记

	faults  []types.Fault       // 累积故障(有序保留供查看)
	seenID  map[string]struct{} // 已上报故障标识
	seenMsg map[string]struct{} // 已上报故障消息
}

// NewRunner 创建仿真运行器
func NewRunner() *Runner {
	return &Runner{
		seenID:  make(map[string]struct{}),
		seenMsg: make(map[string]struct{}),
	}
}

// Faults 累积故障列表(只读视图)
func (r *Runner) Faults() []types.Fault {
	return append([]types.Fault{}, r.faults...)
}

// ClearFaults 显式清除全部故障并恢复运行。
// 停止性故障从不被静默清除，这是唯一的清除入口。
func (r *Runner) ClearFaults() {
	r.faults = r.faults[:0]
	r.seenID = make(map[string]struct{})
	r.seenMsg = make(map[string]struct{})
	r.Halted = false
}

// Tick 推进一步仿真。
// 错误仅用于调用方契约违反(非法步长、未建模类型)；
// 求解失败被转换为停止运行的故障而不向外抛出。
func (r *Runner) Tick(in Input) (*Output, error) {
	if in.DeltaTime <= 0 {
		return nil, fmt.Errorf("非法步长: %v (必须为正数)", in.DeltaTime)
	}
	out := &Output{Halted: r.Halted}

	// 节点识别(每步重建，连接可能已被外部修改)
	g := graph.Build(in.Components, in.Wires)
	out.Nodes = g.Nodes()

	// 分配求解索引: 行索引按节点映射，支路索引按元件顺序
	numBranches := 0
	terminals := make(map[types.TerminalID]*types.Terminal)
	for _, c := range in.Components {
		c.ResetSolveIndex()
		for i, t := range c.Terminals {
			c.Nodes[i] = g.RowOf(t.ID)
			terminals[t.ID] = t
		}
		if c.Kind.BranchCount() > 0 {
			c.Branch = numBranches
			numBranches++
		}
	}

	// 空电路: 无未知量，直接推进时间
	if g.NumRows+numBranches == 0 {
		r.Time += in.DeltaTime
		return out, nil
	}

	sys, err := mna.NewSystem(g.NumRows, numBranches)
	if err != nil {
		return nil, err
	}

	// 按当前状态加盖线性贡献
	for _, c := range in.Components {
		m, err := component.ModelOf(c.Kind)
		if err != nil {
			return nil, err
		}
		m.Stamp(sys, c)
	}

	// 求解。奇异系统(如无接地通路的悬浮子网络)转换为单条
	// 停止运行的合成故障，本步状态不推进。
	if err := sys.Solve(); err != nil {
		fault := types.NewFault("solver-singular", types.SeverityCritical, err.Error())
		out.NewFaults = r.report([]types.Fault{fault})
		r.Halted = true
		out.Halted = true
		return out, nil
	}

	// 求解提取: 节点电压、引脚电压/电流、元件电压降与电流
	out.NodeVoltages = make([]float64, g.NumRows)
	for _, node := range g.Nodes() {
		node.Voltage = sys.NodeVoltage(node.Row)
		if node.Row > types.GndNodeID {
			out.NodeVoltages[node.Row] = node.Voltage
		}
	}
	for _, c := range in.Components {
		v0 := sys.NodeVoltage(c.Nodes[0])
		v1 := sys.NodeVoltage(c.Nodes[1])
		c.Terminals[0].Voltage = v0
		c.Terminals[1].Voltage = v1
		c.VoltageDrop = v0 - v1
		if c.Branch > types.NoBranchID {
			c.SolvedCurrent = sys.BranchCurrent(c.Branch)
		} else if c.StampResistance > 0 {
			c.SolvedCurrent = c.VoltageDrop / c.StampResistance
		} else {
			c.SolvedCurrent = 0
		}
		c.Terminals[0].Current = c.SolvedCurrent
		c.Terminals[1].Current = -c.SolvedCurrent
		c.Current.SetVec(0, c.SolvedCurrent)
		c.Current.SetVec(1, -c.SolvedCurrent)
	}

	// 导线读数
	out.WireReadings = make([]WireReading, 0, len(in.Wires))
	for _, w := range in.Wires {
		reading := WireReading{Wire: w.ID}
		if from, ok := terminals[w.From]; ok {
			if to, ok := terminals[w.To]; ok {
				reading.Voltage = (from.Voltage + to.Voltage) / 2
			} else {
				reading.Voltage = from.Voltage
			}
			reading.Current = from.Current
		}
		out.WireReadings = append(out.WireReadings, reading)
	}

	// 推进仿真时间并更新元件状态(显式前向积分)
	r.Time += in.DeltaTime
	for _, c := range in.Components {
		m, _ := component.ModelOf(c.Kind)
		m.Update(c, r.Time, in.DeltaTime)
	}

	// 保护评估: 状态全部更新完成后再做停止判定，
	// 保证检测到停止条件的这一步状态一致。
	var reported []types.Fault
	for _, c := range in.Components {
		m, _ := component.ModelOf(c.Kind)
		reported = append(reported, m.Faults(c)...)
	}
	out.NewFaults = r.report(reported)
	for _, f := range reported {
		if f.Halt {
			r.Halted = true
		}
	}
	out.Halted = r.Halted
	return out, nil
}

// report 按标识或消息去重后记录故障，返回本步新故障
func (r *Runner) report(reported []types.Fault) []types.Fault {
	var fresh []types.Fault
	for _, f := range reported {
		if _, ok := r.seenID[f.ID]; ok {
			continue
		}
		if _, ok := r.seenMsg[f.Message]; ok {
			continue
		}
		r.seenID[f.ID] = struct{}{}
		r.seenMsg[f.Message] = struct{}{}
		r.faults = append(r.faults, f)
		fresh = append(fresh, f)
	}
	return fresh
}
