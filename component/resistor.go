package component

import (
	"math"

	"circuitlab/mna"
	"circuitlab/types"
)

// ResistorState 电阻状态
type ResistorState struct {
	Resistance        float64 // 电阻值(Ω)
	PowerRating       float64 // 额定功率(W)，0表示不检查
	ThermalResistance float64 // 热阻(℃/W)
	Voltage           float64 // 两端电压(V)
	Current           float64 // 电流(A)
	Power             float64 // 耗散功率(W)
	Temperature       float64 // 温度(℃)，静态映射不做积分
}

func (*ResistorState) StateKind() types.Kind { return types.KindResistor }

// resistorModel 电阻
type resistorModel struct{}

func (resistorModel) NewState() types.State {
	return &ResistorState{
		Resistance:        10000, // 基础电阻: 10kΩ
		PowerRating:       0.25,
		ThermalResistance: 100,
		Temperature:       types.AmbientTemp,
	}
}

func (resistorModel) Stamp(sys *mna.System, c *types.Component) {
	s := c.State.(*ResistorState)
	stampResistive(sys, c, s.Resistance)
}

func (resistorModel) Update(c *types.Component, now, dt float64) {
	s := c.State.(*ResistorState)
	s.Voltage = math.Abs(c.VoltageDrop)
	if s.Resistance > 0 {
		s.Current = s.Voltage / s.Resistance
	} else {
		s.Current = 0
	}
	s.Power = s.Current * s.Current * s.Resistance
	s.Temperature = types.AmbientTemp + s.Power*s.ThermalResistance
}

func (resistorModel) Faults(c *types.Component) []types.Fault {
	s := c.State.(*ResistorState)
	if s.PowerRating > 0 && s.Power > s.PowerRating {
		return []types.Fault{types.NewFault(
			faultID(c, "overpower"),
			types.SeverityWarning,
			"电阻功率超出额定值",
			c.ID,
		)}
	}
	return nil
}
