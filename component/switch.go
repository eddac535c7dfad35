package component

import (
	"circuitlab/mna"
	"circuitlab/types"
)

// SwitchState 开关状态(闭合标记即全部状态，无不可逆转变)
type SwitchState struct {
	Closed bool // 闭合标记
}

func (*SwitchState) StateKind() types.Kind { return types.KindSwitch }

// switchModel 开关
type switchModel struct{}

func (switchModel) NewState() types.State { return &SwitchState{} }

func (switchModel) Stamp(sys *mna.System, c *types.Component) {
	r := types.OpenResistance
	if c.State.(*SwitchState).Closed {
		r = types.ClosedResistance
	}
	stampResistive(sys, c, r)
}

func (switchModel) Update(c *types.Component, now, dt float64) {}

func (switchModel) Faults(c *types.Component) []types.Fault { return nil }
