package mna

import (
	"errors"
	"math"
	"testing"

	"circuitlab/maths"
	"circuitlab/types"
)

func TestSolveOhm(t *testing.T) {
	// 5V电压源接100Ω电阻到地: 节点电压5V, 支路电流-0.05A
	sys, err := NewSystem(1, 1)
	if err != nil {
		t.Fatalf("创建系统失败: %s", err)
	}
	sys.StampResistor(0, types.GndNodeID, 100)
	sys.StampVoltageSource(0, types.GndNodeID, 0, 5)
	if err := sys.Solve(); err != nil {
		t.Fatalf("求解失败: %s", err)
	}
	if v := sys.NodeVoltage(0); math.Abs(v-5) > 1e-9 {
		t.Errorf("节点电压不正确: 期望 5V, 实际 %vV", v)
	}
	// 支路电流符号约定: 电流自正引脚经支路流向负引脚为正，
	// 输出功率时为负值
	if i := sys.BranchCurrent(0); math.Abs(i-(-0.05)) > 1e-9 {
		t.Errorf("支路电流不正确: 期望 -0.05A, 实际 %vA", i)
	}
}

func TestGroundStampsIgnored(t *testing.T) {
	sys, _ := NewSystem(1, 0)
	// 地节点索引的加盖必须被静默跳过
	sys.StampMatrix(types.GndNodeID, types.GndNodeID, 1)
	sys.StampRightSide(types.GndNodeID, 1)
	sys.StampConductance(0, types.GndNodeID, 0.5)
	if g := sys.A.Get(0, 0); math.Abs(g-0.5) > 1e-12 {
		t.Errorf("电导加盖不正确: 期望 0.5, 实际 %v", g)
	}
	if z := sys.Z.Get(0); z != 0 {
		t.Errorf("地行右端项应保持为0, 实际 %v", z)
	}
}

func TestSolveSingularFloating(t *testing.T) {
	// 两个节点仅由一个电导相连、无接地通路: 结构性奇异
	sys, _ := NewSystem(2, 0)
	sys.StampConductance(0, 1, 0.01)
	err := sys.Solve()
	if err == nil {
		t.Fatal("悬浮网络未报告奇异")
	}
	var singular *SingularSystemError
	if !errors.As(err, &singular) {
		t.Fatalf("错误类型不正确: 期望 *SingularSystemError, 实际 %T", err)
	}
	if !errors.Is(err, maths.ErrSingular) {
		t.Errorf("错误链不含 ErrSingular: %s", err)
	}
}

func TestBranchResistance(t *testing.T) {
	// 9V电池(内阻0.5Ω)接8.5Ω负载: I = 9/9 = 1A, 端电压 8.5V
	sys, _ := NewSystem(1, 1)
	sys.StampResistor(0, types.GndNodeID, 8.5)
	sys.StampVoltageSource(0, types.GndNodeID, 0, 9)
	sys.StampBranchResistance(0, 0.5)
	if err := sys.Solve(); err != nil {
		t.Fatalf("求解失败: %s", err)
	}
	if v := sys.NodeVoltage(0); math.Abs(v-8.5) > 1e-9 {
		t.Errorf("端电压不正确: 期望 8.5V, 实际 %vV", v)
	}
	if i := sys.BranchCurrent(0); math.Abs(i-(-1)) > 1e-9 {
		t.Errorf("支路电流不正确: 期望 -1A, 实际 %vA", i)
	}
}

func TestVoltageDivider(t *testing.T) {
	// 10V源 + 两个1kΩ串联: 中点电压5V
	sys, _ := NewSystem(2, 1)
	sys.StampResistor(0, 1, 1000)
	sys.StampResistor(1, types.GndNodeID, 1000)
	sys.StampVoltageSource(0, types.GndNodeID, 0, 10)
	if err := sys.Solve(); err != nil {
		t.Fatalf("求解失败: %s", err)
	}
	if v := sys.NodeVoltage(1); math.Abs(v-5) > 1e-9 {
		t.Errorf("中点电压不正确: 期望 5V, 实际 %vV", v)
	}
}

func TestNewSystemEmpty(t *testing.T) {
	if _, err := NewSystem(0, 0); err == nil {
		t.Error("空系统未报告错误")
	}
}

func TestNodeVoltageOutOfRange(t *testing.T) {
	sys, _ := NewSystem(1, 1)
	if v := sys.NodeVoltage(types.GndNodeID); v != 0 {
		t.Errorf("地节点电压应为0, 实际 %v", v)
	}
	if v := sys.NodeVoltage(5); v != 0 {
		t.Errorf("越界节点电压应为0, 实际 %v", v)
	}
	if i := sys.BranchCurrent(types.NoBranchID); i != 0 {
		t.Errorf("无效支路电流应为0, 实际 %v", i)
	}
}
