package component

import (
	"circuitlab/mna"
	"circuitlab/types"
)

// DiodeState 二极管状态。
// 正向导通区域用固定小线性电阻近似(非指数二极管定律)，
// 反向击穿只作为故障上报，不改变导通模型。
type DiodeState struct {
	BreakdownVoltage float64 // 反向击穿电压(V)
	Voltage          float64 // 引脚0-引脚1电压(V)
}

func (*DiodeState) StateKind() types.Kind { return types.KindDiode }

// diodeModel 二极管
type diodeModel struct{}

func (diodeModel) NewState() types.State {
	return &DiodeState{BreakdownVoltage: 100}
}

func (diodeModel) Stamp(sys *mna.System, c *types.Component) {
	stampResistive(sys, c, types.DiodeOnRes)
}

func (diodeModel) Update(c *types.Component, now, dt float64) {
	c.State.(*DiodeState).Voltage = c.VoltageDrop
}

func (diodeModel) Faults(c *types.Component) []types.Fault {
	s := c.State.(*DiodeState)
	if s.BreakdownVoltage > 0 && -s.Voltage > s.BreakdownVoltage {
		return []types.Fault{types.NewFault(
			faultID(c, "breakdown"),
			types.SeverityCritical,
			"二极管反向击穿电压超限",
			c.ID,
		)}
	}
	return nil
}
