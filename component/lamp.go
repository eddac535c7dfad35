package component

import (
	"math"

	"circuitlab/mna"
	"circuitlab/types"
)

// LampState 灯泡状态。
// 瞬时功率超过额定功率的1.5倍即不可逆烧毁，
// 烧毁后呈近无穷电阻、亮度为0，直到外部更换。
type LampState struct {
	VoltageRating float64 // 额定电压(V)
	PowerRating   float64 // 额定功率(W)
	Power         float64 // 当前功率(W)
	Brightness    float64 // 亮度 [0,1.5]
	Broken        bool    // 烧毁标记(终态)
}

func (*LampState) StateKind() types.Kind { return types.KindLamp }

// lampModel 灯泡
type lampModel struct{}

func (lampModel) NewState() types.State {
	return &LampState{
		VoltageRating: 5,
		PowerRating:   1,
	}
}

// Resistance 灯丝电阻 V²/P，烧毁后近无穷
func (s *LampState) Resistance() float64 {
	if s.Broken || s.PowerRating <= 0 {
		return types.OpenResistance
	}
	return s.VoltageRating * s.VoltageRating / s.PowerRating
}

func (lampModel) Stamp(sys *mna.System, c *types.Component) {
	stampResistive(sys, c, c.State.(*LampState).Resistance())
}

func (lampModel) Update(c *types.Component, now, dt float64) {
	s := c.State.(*LampState)
	s.Power = math.Abs(c.VoltageDrop * c.SolvedCurrent)
	if s.Broken {
		s.Brightness = 0
		return
	}
	if s.PowerRating > 0 && s.Power > types.LampBreakRatio*s.PowerRating {
		s.Broken = true
		s.Brightness = 0
		return
	}
	if s.PowerRating > 0 {
		s.Brightness = math.Min(math.Sqrt(s.Power/s.PowerRating), types.LampBreakRatio)
	}
}

func (lampModel) Faults(c *types.Component) []types.Fault {
	s := c.State.(*LampState)
	if s.Broken {
		return []types.Fault{types.NewFault(
			faultID(c, "broken"),
			types.SeverityError,
			"灯泡烧毁",
			c.ID,
		)}
	}
	if s.PowerRating > 0 && s.Power > s.PowerRating {
		return []types.Fault{types.NewFault(
			faultID(c, "overpower"),
			types.SeverityWarning,
			"灯泡功率超出额定值",
			c.ID,
		)}
	}
	return nil
}
