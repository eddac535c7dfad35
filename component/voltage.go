package component

import (
	"circuitlab/mna"
	"circuitlab/types"
)

// VoltageSourceState 独立电压源状态。
// 每步由波形发生器按仿真时间重新计算目标输出电压，
// 该目标作为下一步支路约束的输入。
type VoltageSourceState struct {
	Waveform  Waveform // 波形类型
	Amplitude float64  // 幅值(V)
	Frequency float64  // 频率(Hz)
	Phase     float64  // 相位(弧度)
	Offset    float64  // 偏置电压(V)
	DutyCycle float64  // 占空比 (0,1)，方波/脉冲有效
	Voltage   float64  // 当前目标输出电压(V)
}

func (*VoltageSourceState) StateKind() types.Kind { return types.KindVoltageSource }

// Value 波形在仿真时刻t的瞬时值
func (s *VoltageSourceState) Value(t float64) float64 {
	return waveValue(s.Waveform, s.Amplitude, s.Frequency, s.Phase, s.Offset, s.DutyCycle, t)
}

// Retarget 重新计算目标输出电压(参数修改后调用)
func (s *VoltageSourceState) Retarget(t float64) { s.Voltage = s.Value(t) }

// voltageSourceModel 电压源
type voltageSourceModel struct{}

func (voltageSourceModel) NewState() types.State {
	s := &VoltageSourceState{
		Waveform:  WfDC,
		Amplitude: 5, // 基础电压: 5V
	}
	s.Retarget(0)
	return s
}

func (voltageSourceModel) Stamp(sys *mna.System, c *types.Component) {
	s := c.State.(*VoltageSourceState)
	sys.StampVoltageSource(c.Nodes[0], c.Nodes[1], c.Branch, s.Voltage)
}

func (voltageSourceModel) Update(c *types.Component, now, dt float64) {
	c.State.(*VoltageSourceState).Retarget(now)
}

func (voltageSourceModel) Faults(c *types.Component) []types.Fault { return nil }
