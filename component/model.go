// Package component 实现各元件类型的物理状态模型。
// 每个类型一个固定状态结构体，通过封闭的调度表映射
// 类型 -> {加盖函数, 状态推进函数, 故障检查函数}，
// 未建模的类型在创建阶段即被拒绝，不会被静默忽略。
package component

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"circuitlab/mna"
	"circuitlab/types"
)

// Model 元件类型模型。
// Stamp 使用元件的当前状态(而非即将求解的电压)写入线性贡献；
// Update 在求解之后按引脚电压/电流推进内部状态(显式前向积分)；
// Faults 对照阈值检查状态并产生故障记录。
type Model interface {
	NewState() types.State                   // 创建类型专有状态(默认参数)
	Stamp(sys *mna.System, c *types.Component)
	Update(c *types.Component, now, dt float64)
	Faults(c *types.Component) []types.Fault
}

// models 封闭调度表。所有可仿真类型必须且只能在此登记，
// 保持加盖/推进逻辑对类型穷尽。
var models = map[types.Kind]Model{
	types.KindResistor:      resistorModel{},
	types.KindPotentiometer: potentiometerModel{},
	types.KindSwitch:        switchModel{},
	types.KindFuse:          fuseModel{},
	types.KindLamp:          lampModel{},
	types.KindDiode:         diodeModel{},
	types.KindLED:           ledModel{},
	types.KindCapacitor:     capacitorModel{},
	types.KindInductor:      inductorModel{},
	types.KindVoltageSource: voltageSourceModel{},
	types.KindBattery:       batteryModel{},
	types.KindGround:        groundModel{},
}

// ModelOf 查找类型模型
func ModelOf(kind types.Kind) (Model, error) {
	if m, ok := models[kind]; ok {
		return m, nil
	}
	return nil, fmt.Errorf("元件类型 '%s' 未实现仿真模型", kind)
}

// New 创建元件实例。引脚数量与状态结构在此固定，
// 未实现的类型直接返回错误。
func New(kind types.Kind, id types.ComponentID, terminalIDs ...types.TerminalID) (*types.Component, error) {
	m, err := ModelOf(kind)
	if err != nil {
		return nil, err
	}
	n := kind.TerminalCount()
	if len(terminalIDs) != n {
		return nil, fmt.Errorf("元件 '%s' 引脚数量不符: 需要 %d，得到 %d", kind, n, len(terminalIDs))
	}
	c := &types.Component{
		ID:        id,
		Kind:      kind,
		Terminals: make([]*types.Terminal, n),
		State:     m.NewState(),
		Current:   mat.NewVecDense(n, nil),
		Nodes:     make([]types.NodeID, n),
		Branch:    types.NoBranchID,
	}
	for i := range c.Terminals {
		c.Terminals[i] = &types.Terminal{
			ID:        terminalIDs[i],
			Component: id,
			Index:     i,
		}
	}
	c.ResetSolveIndex()
	return c, nil
}

// stampResistive 电阻性元件的统一加盖路径:
// 记录本步使用的瞬时电阻并写入电导贡献(地行自动跳过)。
func stampResistive(sys *mna.System, c *types.Component, r float64) {
	c.StampResistance = r
	sys.StampResistor(c.Nodes[0], c.Nodes[1], r)
}

// faultID 故障去重标识
func faultID(c *types.Component, cond string) string {
	return fmt.Sprintf("%s%d-%s", c.Kind, c.ID, cond)
}
