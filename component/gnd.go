package component

import (
	"circuitlab/mna"
	"circuitlab/types"
)

// GroundState 接地参考状态(0V约束，无其他状态)
type GroundState struct{}

func (*GroundState) StateKind() types.Kind { return types.KindGround }

// groundModel 接地参考。
// 两引脚间加盖0V支路约束；其第二引脚所在节点被接地
// 选择启发式优先选为地节点。
type groundModel struct{}

func (groundModel) NewState() types.State { return &GroundState{} }

func (groundModel) Stamp(sys *mna.System, c *types.Component) {
	sys.StampVoltageSource(c.Nodes[0], c.Nodes[1], c.Branch, 0)
}

func (groundModel) Update(c *types.Component, now, dt float64) {}

func (groundModel) Faults(c *types.Component) []types.Fault { return nil }
