package circuitlab

import (
	"math"
	"testing"

	"circuitlab/component"
	"circuitlab/types"
)

// 搭建 源-开关-电阻 串联回路
func buildSwitchLoop(t *testing.T) (*Circuit, *types.Component, *types.Component, *types.Component) {
	t.Helper()
	cir := NewCircuit()
	v, err := cir.AddComponent(types.KindVoltageSource)
	if err != nil {
		t.Fatalf("添加电压源失败: %s", err)
	}
	sw, _ := cir.AddComponent(types.KindSwitch)
	r, _ := cir.AddComponent(types.KindResistor)
	r.State.(*component.ResistorState).Resistance = 100
	cir.Connect(v, 0, sw, 0)
	cir.Connect(sw, 1, r, 0)
	cir.Connect(r, 1, v, 1)
	return cir, v, sw, r
}

func TestCircuitSwitchToggle(t *testing.T) {
	cir, _, sw, r := buildSwitchLoop(t)

	// 开关默认断开: 回路几乎无电流
	if _, err := cir.Tick(0.001); err != nil {
		t.Fatalf("仿真失败: %s", err)
	}
	if math.Abs(r.SolvedCurrent) > 1e-6 {
		t.Errorf("断开回路电流过大: %vA", r.SolvedCurrent)
	}

	// 闭合后: 5V/100Ω = 0.05A
	if err := cir.ToggleSwitch(sw.ID); err != nil {
		t.Fatalf("切换开关失败: %s", err)
	}
	if _, err := cir.Tick(0.001); err != nil {
		t.Fatalf("仿真失败: %s", err)
	}
	if math.Abs(r.SolvedCurrent-0.05) > 1e-6 {
		t.Errorf("闭合回路电流不正确: 期望 0.05A, 实际 %vA", r.SolvedCurrent)
	}
}

func TestCircuitReplaceFuse(t *testing.T) {
	cir := NewCircuit()
	v, _ := cir.AddComponent(types.KindVoltageSource)
	fuse, _ := cir.AddComponent(types.KindFuse)
	r, _ := cir.AddComponent(types.KindResistor)
	r.State.(*component.ResistorState).Resistance = 1
	r.State.(*component.ResistorState).PowerRating = 0
	cir.Connect(v, 0, fuse, 0)
	cir.Connect(fuse, 1, r, 0)
	cir.Connect(r, 1, v, 1)

	// 持续过流至熔断停止
	s := fuse.State.(*component.FuseState)
	for !s.Blown {
		if _, err := cir.Tick(0.1); err != nil {
			t.Fatalf("仿真失败: %s", err)
		}
	}
	if !cir.Runner.Halted {
		t.Fatal("熔断未停止运行")
	}

	// 更换保险丝并清除故障后恢复导通
	if err := cir.ReplaceFuse(fuse.ID); err != nil {
		t.Fatalf("更换保险丝失败: %s", err)
	}
	cir.ClearFaults()
	if s.Blown || s.Heat != 0 {
		t.Error("更换后状态未复位")
	}
	if _, err := cir.Tick(0.1); err != nil {
		t.Fatalf("仿真失败: %s", err)
	}
	if math.Abs(fuse.SolvedCurrent) < 1 {
		t.Errorf("更换后回路未恢复导通: %vA", fuse.SolvedCurrent)
	}
}

func TestCircuitSetWiper(t *testing.T) {
	cir := NewCircuit()
	v, _ := cir.AddComponent(types.KindVoltageSource)
	pot, _ := cir.AddComponent(types.KindPotentiometer)
	cir.Connect(v, 0, pot, 0)
	cir.Connect(pot, 1, v, 1)

	if err := cir.SetWiper(pot.ID, 10); err != nil {
		t.Fatalf("调节滑动端失败: %s", err)
	}
	if _, err := cir.Tick(0.001); err != nil {
		t.Fatalf("仿真失败: %s", err)
	}
	// 10% × 10kΩ = 1kΩ → 5V/1kΩ = 0.005A
	if math.Abs(pot.SolvedCurrent-0.005) > 1e-9 {
		t.Errorf("滑动端电流不正确: 期望 0.005A, 实际 %vA", pot.SolvedCurrent)
	}
}

func TestCircuitSetSourceWaveform(t *testing.T) {
	cir := NewCircuit()
	v, _ := cir.AddComponent(types.KindVoltageSource)
	r, _ := cir.AddComponent(types.KindResistor)
	cir.Connect(v, 0, r, 0)
	cir.Connect(r, 1, v, 1)

	err := cir.SetSourceWaveform(v.ID, component.VoltageSourceState{
		Waveform:  component.WfDC,
		Amplitude: 12,
	})
	if err != nil {
		t.Fatalf("设置波形失败: %s", err)
	}
	out, err := cir.Tick(0.001)
	if err != nil {
		t.Fatalf("仿真失败: %s", err)
	}
	if math.Abs(out.NodeVoltages[0]-12) > 1e-9 {
		t.Errorf("波形切换后电压不正确: 期望 12V, 实际 %vV", out.NodeVoltages[0])
	}
}

func TestCircuitRemoveComponent(t *testing.T) {
	cir, _, sw, _ := buildSwitchLoop(t)
	if len(cir.Wires) != 3 {
		t.Fatalf("导线数量不正确: %d", len(cir.Wires))
	}
	cir.RemoveComponent(sw.ID)
	if _, ok := cir.Find(sw.ID); ok {
		t.Error("元件未被删除")
	}
	// 涉及开关引脚的两条导线同时删除
	if len(cir.Wires) != 1 {
		t.Errorf("关联导线未删除: 剩余 %d 条", len(cir.Wires))
	}
	if len(cir.Components) != 2 {
		t.Errorf("元件数量不正确: %d", len(cir.Components))
	}
}

func TestCircuitResetWrongKind(t *testing.T) {
	cir := NewCircuit()
	r, _ := cir.AddComponent(types.KindResistor)
	if err := cir.ReplaceFuse(r.ID); err == nil {
		t.Error("对电阻执行更换保险丝未报告错误")
	}
	if err := cir.ToggleSwitch(99); err == nil {
		t.Error("不存在的元件未报告错误")
	}
}

func TestCircuitRechargeBattery(t *testing.T) {
	cir := NewCircuit()
	bat, _ := cir.AddComponent(types.KindBattery)
	s := bat.State.(*component.BatteryState)
	s.ChargeMAh = 0
	s.Depleted = true
	s.Voltage = s.NominalVoltage * types.BatterySagLevel

	if err := cir.RechargeBattery(bat.ID); err != nil {
		t.Fatalf("充电失败: %s", err)
	}
	if s.Depleted || s.ChargeMAh != s.CapacityMAh || s.Voltage != s.NominalVoltage {
		t.Errorf("充电后状态不正确: %+v", s)
	}
}
