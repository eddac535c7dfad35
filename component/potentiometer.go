package component

import (
	"circuitlab/maths"
	"circuitlab/mna"
	"circuitlab/types"
)

// PotentiometerState 电位器状态(除滑动端比例外无持久状态)
type PotentiometerState struct {
	MaxResistance float64 // 最大电阻值(Ω)
	WiperPercent  float64 // 滑动端位置百分比 [0,100]
}

func (*PotentiometerState) StateKind() types.Kind { return types.KindPotentiometer }

// potentiometerModel 电位器
type potentiometerModel struct{}

func (potentiometerModel) NewState() types.State {
	return &PotentiometerState{
		MaxResistance: 10000,
		WiperPercent:  50,
	}
}

// Resistance 滑动端当前瞬时电阻，钳制远离零值
func (s *PotentiometerState) Resistance() float64 {
	r := s.MaxResistance * maths.Clamp(s.WiperPercent, 0, 100) / 100
	return maths.Max(r, types.MinWiperRes)
}

func (potentiometerModel) Stamp(sys *mna.System, c *types.Component) {
	stampResistive(sys, c, c.State.(*PotentiometerState).Resistance())
}

func (potentiometerModel) Update(c *types.Component, now, dt float64) {}

func (potentiometerModel) Faults(c *types.Component) []types.Fault { return nil }
