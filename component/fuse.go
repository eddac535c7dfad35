package component

import (
	"math"

	"circuitlab/maths"
	"circuitlab/mna"
	"circuitlab/types"
)

// FuseState 保险丝状态。
// 过流期间按 I²t 积分累积热量，回落后线性散热；
// 热量超过阈值后熔断，熔断为终态，只能由外部"更换保险丝"复位。
type FuseState struct {
	CurrentRating float64 // 额定电流(A)
	Heat          float64 // 累积热量(归一化 I²t)
	Blown         bool    // 熔断标记(终态)
}

func (*FuseState) StateKind() types.Kind { return types.KindFuse }

// fuseModel 保险丝
type fuseModel struct{}

func (fuseModel) NewState() types.State {
	return &FuseState{CurrentRating: 1}
}

func (fuseModel) Stamp(sys *mna.System, c *types.Component) {
	r := types.ClosedResistance
	if c.State.(*FuseState).Blown {
		r = types.OpenResistance
	}
	stampResistive(sys, c, r)
}

func (fuseModel) Update(c *types.Component, now, dt float64) {
	s := c.State.(*FuseState)
	if s.Blown || s.CurrentRating <= 0 {
		return
	}
	ratio := math.Abs(c.SolvedCurrent) / s.CurrentRating
	if ratio > 1 {
		// 归一化 I²t 积分: 2倍额定电流持续2秒达到熔断阈值
		s.Heat += ratio * ratio * dt
	} else {
		s.Heat = maths.Max(s.Heat-types.FuseCoolRate*dt, 0)
	}
	if s.Heat >= types.FuseHeatLimit {
		s.Blown = true
	}
}

func (fuseModel) Faults(c *types.Component) []types.Fault {
	s := c.State.(*FuseState)
	if s.Blown {
		return []types.Fault{types.NewFault(
			faultID(c, "blown"),
			types.SeverityError,
			"保险丝熔断",
			c.ID,
		)}
	}
	if s.CurrentRating > 0 && math.Abs(c.SolvedCurrent) > s.CurrentRating {
		return []types.Fault{types.NewFault(
			faultID(c, "overcurrent"),
			types.SeverityWarning,
			"保险丝电流超出额定值",
			c.ID,
		)}
	}
	return nil
}
