package component

import (
	"math"

	"circuitlab/maths"
	"circuitlab/mna"
	"circuitlab/types"
)

// InductorState 电感状态。
// 直流工作点下按短路近似加盖，电流按 ΔI = V·Δt/L 前向积分，
// 钳制在 ±MaxCurrent 以内。
type InductorState struct {
	Inductance float64 // 电感值(H)
	MaxCurrent float64 // 电流限幅(A)，0表示不限制
	Current    float64 // 积分电流(A)
	Flux       float64 // 磁链(Wb)
	Energy     float64 // 储能(J)
}

func (*InductorState) StateKind() types.Kind { return types.KindInductor }

// inductorModel 电感
type inductorModel struct{}

func (inductorModel) NewState() types.State {
	return &InductorState{
		Inductance: 1e-3, // 默认1mH
		MaxCurrent: 10,
	}
}

func (inductorModel) Stamp(sys *mna.System, c *types.Component) {
	stampResistive(sys, c, types.InductorDCRes)
}

func (inductorModel) Update(c *types.Component, now, dt float64) {
	s := c.State.(*InductorState)
	if s.Inductance <= 0 {
		return
	}
	s.Current += c.VoltageDrop * dt / s.Inductance
	if s.MaxCurrent > 0 {
		s.Current = maths.Clamp(s.Current, -s.MaxCurrent, s.MaxCurrent)
	}
	s.Flux = s.Inductance * s.Current
	s.Energy = 0.5 * s.Inductance * s.Current * s.Current
}

func (inductorModel) Faults(c *types.Component) []types.Fault {
	s := c.State.(*InductorState)
	if s.MaxCurrent > 0 && math.Abs(s.Current) >= s.MaxCurrent {
		return []types.Fault{types.NewFault(
			faultID(c, "saturated"),
			types.SeverityWarning,
			"电感电流达到限幅值",
			c.ID,
		)}
	}
	return nil
}
