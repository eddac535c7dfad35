// Package circuitlab 提供电路容器与外部操作入口。
// 容器持有有序的元件列表与导线列表，是拓扑和不可逆状态复位
// (更换保险丝、电池充电、开关切换、滑动端调节)的唯一修改方;
// 仿真核心只读写元件状态字段，从不主动改变拓扑。
package circuitlab

import (
	"fmt"

	"circuitlab/component"
	"circuitlab/sim"
	"circuitlab/types"
)

// Circuit 电路容器
type Circuit struct {
	Components []*types.Component // 元件列表(有序)
	Wires      []types.Wire       // 导线列表
	Runner     *sim.Runner        // 仿真运行状态

	nextComponent types.ComponentID
	nextTerminal  types.TerminalID
	nextWire      types.WireID
}

// NewCircuit 初始化
func NewCircuit() *Circuit {
	return &Circuit{Runner: sim.NewRunner()}
}

// AddComponent 添加元件(引脚标识自动分配，未建模类型返回错误)
func (cir *Circuit) AddComponent(kind types.Kind) (*types.Component, error) {
	n := kind.TerminalCount()
	ids := make([]types.TerminalID, n)
	for i := range ids {
		ids[i] = cir.nextTerminal + i
	}
	c, err := component.New(kind, cir.nextComponent, ids...)
	if err != nil {
		return nil, err
	}
	cir.nextTerminal += n
	cir.nextComponent++
	cir.Components = append(cir.Components, c)
	return c, nil
}

// RemoveComponent 删除元件及其引脚涉及的全部导线
func (cir *Circuit) RemoveComponent(id types.ComponentID) {
	for i, c := range cir.Components {
		if c.ID != id {
			continue
		}
		for _, t := range c.Terminals {
			cir.removeWiresTouching(t.ID)
		}
		cir.Components = append(cir.Components[:i], cir.Components[i+1:]...)
		return
	}
}

// AddWire 在两个引脚之间添加导线
func (cir *Circuit) AddWire(from, to types.TerminalID) types.Wire {
	w := types.Wire{ID: cir.nextWire, From: from, To: to}
	cir.nextWire++
	cir.Wires = append(cir.Wires, w)
	return w
}

// RemoveWire 删除导线
func (cir *Circuit) RemoveWire(id types.WireID) {
	for i, w := range cir.Wires {
		if w.ID == id {
			cir.Wires = append(cir.Wires[:i], cir.Wires[i+1:]...)
			return
		}
	}
}

// Connect 用一条导线连接两个元件的指定引脚
func (cir *Circuit) Connect(a *types.Component, pinA int, b *types.Component, pinB int) types.Wire {
	return cir.AddWire(a.TerminalID(pinA), b.TerminalID(pinB))
}

// Tick 推进一步仿真
func (cir *Circuit) Tick(deltaTime float64) (*sim.Output, error) {
	return cir.Runner.Tick(sim.Input{
		Components: cir.Components,
		Wires:      cir.Wires,
		DeltaTime:  deltaTime,
	})
}

// ClearFaults 显式清除全部故障并恢复运行
func (cir *Circuit) ClearFaults() { cir.Runner.ClearFaults() }

// Find 按ID查找元件
func (cir *Circuit) Find(id types.ComponentID) (*types.Component, bool) {
	for _, c := range cir.Components {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// ------------------------------ 外部复位操作 ------------------------------
// 失效型元件的状态转变在运行内单向，以下操作是唯一的恢复途径。

// ReplaceFuse 更换保险丝(清除热量与熔断标记)
func (cir *Circuit) ReplaceFuse(id types.ComponentID) error {
	s, err := stateOf[*component.FuseState](cir, id)
	if err != nil {
		return err
	}
	s.Heat = 0
	s.Blown = false
	return nil
}

// ReplaceLamp 更换灯泡(清除烧毁标记)
func (cir *Circuit) ReplaceLamp(id types.ComponentID) error {
	s, err := stateOf[*component.LampState](cir, id)
	if err != nil {
		return err
	}
	s.Broken = false
	s.Brightness = 0
	return nil
}

// RechargeBattery 电池充满(恢复电量与标称电压)
func (cir *Circuit) RechargeBattery(id types.ComponentID) error {
	s, err := stateOf[*component.BatteryState](cir, id)
	if err != nil {
		return err
	}
	s.ChargeMAh = s.CapacityMAh
	s.Voltage = s.NominalVoltage
	s.Depleted = false
	return nil
}

// ToggleSwitch 切换开关状态
func (cir *Circuit) ToggleSwitch(id types.ComponentID) error {
	s, err := stateOf[*component.SwitchState](cir, id)
	if err != nil {
		return err
	}
	s.Closed = !s.Closed
	return nil
}

// SetWiper 调节电位器滑动端位置百分比
func (cir *Circuit) SetWiper(id types.ComponentID, percent float64) error {
	s, err := stateOf[*component.PotentiometerState](cir, id)
	if err != nil {
		return err
	}
	s.WiperPercent = percent
	return nil
}

// SetSourceWaveform 设置电压源波形参数并按当前仿真时间重置目标电压
func (cir *Circuit) SetSourceWaveform(id types.ComponentID, s component.VoltageSourceState) error {
	cur, err := stateOf[*component.VoltageSourceState](cir, id)
	if err != nil {
		return err
	}
	*cur = s
	cur.Retarget(cir.Runner.Time)
	return nil
}

// stateOf 查找元件并断言状态类型
func stateOf[T types.State](cir *Circuit, id types.ComponentID) (T, error) {
	var zero T
	c, ok := cir.Find(id)
	if !ok {
		return zero, fmt.Errorf("元件不存在: %d", id)
	}
	s, ok := c.State.(T)
	if !ok {
		return zero, fmt.Errorf("元件 %d 类型不符: %s", id, c.Kind)
	}
	return s, nil
}

// removeWiresTouching 删除涉及指定引脚的全部导线
func (cir *Circuit) removeWiresTouching(t types.TerminalID) {
	for c, i := len(cir.Wires), 0; i < c; {
		if cir.Wires[i].From == t || cir.Wires[i].To == t {
			c--
			cir.Wires[i] = cir.Wires[c]
			cir.Wires = cir.Wires[:c]
			continue
		}
		i++
	}
}
