package component

import (
	"testing"

	"circuitlab/types"
)

func TestNewRejectsUnknownKind(t *testing.T) {
	// 未建模的类型必须在创建阶段被拒绝，不得静默忽略
	if _, err := New(types.KindUnknown, 0, 0, 1); err == nil {
		t.Error("未知类型未被拒绝")
	}
	if _, err := ModelOf(types.Kind(999)); err == nil {
		t.Error("越界类型未被拒绝")
	}
}

func TestNewRejectsWrongTerminalCount(t *testing.T) {
	if _, err := New(types.KindResistor, 0, 0); err == nil {
		t.Error("引脚数量不符未被拒绝")
	}
	if _, err := New(types.KindResistor, 0, 0, 1, 2); err == nil {
		t.Error("引脚数量过多未被拒绝")
	}
}

func TestModelTableExhaustive(t *testing.T) {
	// 调度表必须覆盖全部已命名类型
	kinds := []types.Kind{
		types.KindResistor, types.KindPotentiometer, types.KindSwitch,
		types.KindFuse, types.KindLamp, types.KindDiode, types.KindLED,
		types.KindCapacitor, types.KindInductor, types.KindVoltageSource,
		types.KindBattery, types.KindGround,
	}
	for _, k := range kinds {
		m, err := ModelOf(k)
		if err != nil {
			t.Errorf("类型 '%s' 缺少模型: %s", k, err)
			continue
		}
		s := m.NewState()
		if s.StateKind() != k {
			t.Errorf("类型 '%s' 状态归属不一致: %s", k, s.StateKind())
		}
	}
}

func TestNewComponentDefaults(t *testing.T) {
	c, err := New(types.KindResistor, 5, 10, 11)
	if err != nil {
		t.Fatalf("创建电阻失败: %s", err)
	}
	if len(c.Terminals) != 2 || c.Terminals[0].ID != 10 || c.Terminals[1].ID != 11 {
		t.Errorf("引脚分配不正确: %+v", c.Terminals)
	}
	if c.Branch != types.NoBranchID {
		t.Errorf("初始支路索引不正确: %d", c.Branch)
	}
	if c.Current.Len() != 2 {
		t.Errorf("电流向量维度不正确: %d", c.Current.Len())
	}
	s, ok := c.State.(*ResistorState)
	if !ok {
		t.Fatalf("状态类型不正确: %T", c.State)
	}
	if s.Resistance != 10000 {
		t.Errorf("默认电阻不正确: %v", s.Resistance)
	}
}
