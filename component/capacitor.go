package component

import (
	"math"

	"circuitlab/mna"
	"circuitlab/types"
)

// CapacitorState 电容状态。
// 直流工作点下按开路近似加盖，电流由上一步电压差分导出:
// I = C·ΔV/Δt。
type CapacitorState struct {
	Capacitance   float64 // 电容值(F)
	VoltageRating float64 // 额定电压(V)，0表示不检查
	PrevVoltage   float64 // 上一步两端电压(V)
	Voltage       float64 // 当前两端电压(V)
	Current       float64 // 电流(A)
	Charge        float64 // 电荷量(C)
	Energy        float64 // 储能(J)
}

func (*CapacitorState) StateKind() types.Kind { return types.KindCapacitor }

// capacitorModel 电容
type capacitorModel struct{}

func (capacitorModel) NewState() types.State {
	return &CapacitorState{Capacitance: 1e-5} // 默认10μF
}

func (capacitorModel) Stamp(sys *mna.System, c *types.Component) {
	stampResistive(sys, c, types.CapacitorDCRes)
}

func (capacitorModel) Update(c *types.Component, now, dt float64) {
	s := c.State.(*CapacitorState)
	v := c.VoltageDrop
	if dt > 0 {
		s.Current = s.Capacitance * (v - s.PrevVoltage) / dt
	}
	s.Voltage = v
	s.Charge = s.Capacitance * v
	s.Energy = 0.5 * s.Capacitance * v * v
	s.PrevVoltage = v
}

func (capacitorModel) Faults(c *types.Component) []types.Fault {
	s := c.State.(*CapacitorState)
	if s.VoltageRating > 0 && math.Abs(s.Voltage) > s.VoltageRating {
		return []types.Fault{types.NewFault(
			faultID(c, "overvoltage"),
			types.SeverityWarning,
			"电容电压超出额定值",
			c.ID,
		)}
	}
	return nil
}
