package component

import (
	"testing"

	"circuitlab/types"
)

func TestFuseBlowsAtSustainedOvercurrent(t *testing.T) {
	// 1A保险丝持续通过3A: 热量以9/s速率累积，
	// 约0.9s后超过熔断阈值
	c, err := New(types.KindFuse, 0, 0, 1)
	if err != nil {
		t.Fatalf("创建保险丝失败: %s", err)
	}
	m, _ := ModelOf(types.KindFuse)
	s := c.State.(*FuseState)
	c.SolvedCurrent = 3

	dt := 0.1
	now := 0.0
	steps := 0
	for !s.Blown && steps < 100 {
		now += dt
		m.Update(c, now, dt)
		steps++
	}
	if !s.Blown {
		t.Fatal("持续过流后保险丝未熔断")
	}
	if steps != 9 {
		t.Errorf("熔断时机不正确: 期望第9步, 实际第%d步", steps)
	}

	// 熔断为终态: 后续更新不再改变状态
	heat := s.Heat
	m.Update(c, now+dt, dt)
	if !s.Blown || s.Heat != heat {
		t.Error("熔断后状态仍被推进")
	}
}

func TestFuseCoolsBelowRating(t *testing.T) {
	c, _ := New(types.KindFuse, 0, 0, 1)
	m, _ := ModelOf(types.KindFuse)
	s := c.State.(*FuseState)

	// 2倍额定电流0.5s: 热量 = 4·0.5 = 2
	c.SolvedCurrent = 2
	m.Update(c, 0.5, 0.5)
	if abs(s.Heat-2) > 1e-12 {
		t.Fatalf("热量累积不正确: 期望 2, 实际 %v", s.Heat)
	}

	// 回落到额定以下: 线性散热1/s，不会降到负值
	c.SolvedCurrent = 0.5
	m.Update(c, 1.5, 1)
	if abs(s.Heat-1) > 1e-12 {
		t.Errorf("散热不正确: 期望 1, 实际 %v", s.Heat)
	}
	m.Update(c, 4.5, 3)
	if s.Heat != 0 {
		t.Errorf("热量应归零且不为负: 实际 %v", s.Heat)
	}
	if s.Blown {
		t.Error("未达阈值不应熔断")
	}
}

func TestFuseFaults(t *testing.T) {
	c, _ := New(types.KindFuse, 7, 0, 1)
	m, _ := ModelOf(types.KindFuse)
	s := c.State.(*FuseState)

	// 过流告警(未熔断)
	c.SolvedCurrent = 1.5
	faults := m.Faults(c)
	if len(faults) != 1 || faults[0].Severity != types.SeverityWarning {
		t.Fatalf("过流告警不正确: %+v", faults)
	}
	if faults[0].Halt {
		t.Error("过流告警不应停止运行")
	}

	// 熔断故障必须停止运行
	s.Blown = true
	faults = m.Faults(c)
	if len(faults) != 1 || faults[0].Severity != types.SeverityError {
		t.Fatalf("熔断故障不正确: %+v", faults)
	}
	if !faults[0].Halt {
		t.Error("熔断故障应停止运行")
	}
}
