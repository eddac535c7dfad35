package component

import (
	"math"

	"circuitlab/mna"
	"circuitlab/types"
)

// LEDState 发光二极管状态。导通模型与二极管相同，
// 亮度由正向电流相对额定电流的比例导出。
type LEDState struct {
	BreakdownVoltage float64 // 反向击穿电压(V)
	CurrentRating    float64 // 额定电流(A)
	Voltage          float64 // 引脚0-引脚1电压(V)
	Brightness       float64 // 亮度 [0,1.5]
}

func (*LEDState) StateKind() types.Kind { return types.KindLED }

// ledModel 发光二极管
type ledModel struct{}

func (ledModel) NewState() types.State {
	return &LEDState{
		BreakdownVoltage: 5,
		CurrentRating:    0.02,
	}
}

func (ledModel) Stamp(sys *mna.System, c *types.Component) {
	stampResistive(sys, c, types.DiodeOnRes)
}

func (ledModel) Update(c *types.Component, now, dt float64) {
	s := c.State.(*LEDState)
	s.Voltage = c.VoltageDrop
	if s.CurrentRating > 0 && c.SolvedCurrent > 0 {
		s.Brightness = math.Min(c.SolvedCurrent/s.CurrentRating, 1.5)
	} else {
		s.Brightness = 0
	}
}

func (ledModel) Faults(c *types.Component) []types.Fault {
	s := c.State.(*LEDState)
	var faults []types.Fault
	if s.BreakdownVoltage > 0 && -s.Voltage > s.BreakdownVoltage {
		faults = append(faults, types.NewFault(
			faultID(c, "breakdown"),
			types.SeverityCritical,
			"LED反向击穿电压超限",
			c.ID,
		))
	}
	if s.CurrentRating > 0 && math.Abs(c.SolvedCurrent) > s.CurrentRating {
		faults = append(faults, types.NewFault(
			faultID(c, "overcurrent"),
			types.SeverityWarning,
			"LED电流超出额定值",
			c.ID,
		))
	}
	return faults
}
