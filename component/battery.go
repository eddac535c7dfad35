package component

import (
	"circuitlab/maths"
	"circuitlab/mna"
	"circuitlab/types"
)

// BatteryState 电池状态。
// 理想电压支路叠加串联内阻建模，放电电流按 ∫I·dt 消耗电量(mAh)；
// 剩余电量比例低于下限后标称电压线性跌落，耗尽为终态，
// 只能由外部"充电"动作复位。
type BatteryState struct {
	NominalVoltage     float64 // 标称电压(V)
	InternalResistance float64 // 串联内阻(Ω)
	CapacityMAh        float64 // 额定容量(mAh)
	ChargeMAh          float64 // 剩余电量(mAh)
	Voltage            float64 // 当前输出电压(含跌落)(V)
	Current            float64 // 放电电流(A)，正值为放电
	Depleted           bool    // 耗尽标记(终态)
}

func (*BatteryState) StateKind() types.Kind { return types.KindBattery }

// batteryModel 电池
type batteryModel struct{}

func (batteryModel) NewState() types.State {
	return &BatteryState{
		NominalVoltage:     9,
		InternalResistance: 0.5,
		CapacityMAh:        500,
		ChargeMAh:          500,
		Voltage:            9,
	}
}

func (batteryModel) Stamp(sys *mna.System, c *types.Component) {
	s := c.State.(*BatteryState)
	sys.StampVoltageSource(c.Nodes[0], c.Nodes[1], c.Branch, s.Voltage)
	sys.StampBranchResistance(c.Branch, s.InternalResistance)
}

func (batteryModel) Update(c *types.Component, now, dt float64) {
	s := c.State.(*BatteryState)
	if s.InternalResistance <= 0 {
		return
	}
	// 放电电流: (标称电压 - 端电压) / 内阻
	s.Current = (s.Voltage - c.VoltageDrop) / s.InternalResistance
	if s.Current > 0 && !s.Depleted {
		// 1mAh = 3.6A·s
		s.ChargeMAh = maths.Max(s.ChargeMAh-s.Current*dt/3.6, 0)
		if s.ChargeMAh <= 0 {
			s.Depleted = true
		}
	}
	// 电量不足时标称电压线性跌落
	frac := 1.0
	if s.CapacityMAh > 0 {
		frac = s.ChargeMAh / s.CapacityMAh
	}
	if frac < types.BatterySagFloor {
		sag := types.BatterySagLevel + (1-types.BatterySagLevel)*frac/types.BatterySagFloor
		s.Voltage = s.NominalVoltage * sag
	} else {
		s.Voltage = s.NominalVoltage
	}
}

func (batteryModel) Faults(c *types.Component) []types.Fault {
	s := c.State.(*BatteryState)
	if s.Depleted {
		return []types.Fault{types.NewFault(
			faultID(c, "depleted"),
			types.SeverityWarning,
			"电池电量耗尽",
			c.ID,
		)}
	}
	return nil
}
