package component

import (
	"math"
	"testing"
)

func abs(v float64) float64 { return math.Abs(v) }

func TestWaveDC(t *testing.T) {
	s := &VoltageSourceState{Waveform: WfDC, Amplitude: 5, Offset: 1}
	// 直流忽略时间
	if v := s.Value(0); abs(v-6) > 1e-12 {
		t.Errorf("直流值不正确: 期望 6, 实际 %v", v)
	}
	if v := s.Value(123.456); abs(v-6) > 1e-12 {
		t.Errorf("直流值随时间变化: 实际 %v", v)
	}
}

func TestWaveSine(t *testing.T) {
	s := &VoltageSourceState{Waveform: WfSine, Amplitude: 2, Frequency: 1}
	if v := s.Value(0); abs(v) > 1e-12 {
		t.Errorf("正弦波t=0不正确: 期望 0, 实际 %v", v)
	}
	if v := s.Value(0.25); abs(v-2) > 1e-12 {
		t.Errorf("正弦波峰值不正确: 期望 2, 实际 %v", v)
	}
	if v := s.Value(0.75); abs(v+2) > 1e-12 {
		t.Errorf("正弦波谷值不正确: 期望 -2, 实际 %v", v)
	}
}

func TestWaveSquare(t *testing.T) {
	s := &VoltageSourceState{Waveform: WfSquare, Amplitude: 3, Frequency: 1, DutyCycle: 0.25}
	if v := s.Value(0.1); abs(v-3) > 1e-12 {
		t.Errorf("方波高电平不正确: 期望 3, 实际 %v", v)
	}
	if v := s.Value(0.5); abs(v+3) > 1e-12 {
		t.Errorf("方波低电平不正确: 期望 -3, 实际 %v", v)
	}
}

func TestWavePulse(t *testing.T) {
	s := &VoltageSourceState{Waveform: WfPulse, Amplitude: 3, Frequency: 1, Offset: 1, DutyCycle: 0.5}
	if v := s.Value(0.1); abs(v-4) > 1e-12 {
		t.Errorf("脉冲高电平不正确: 期望 4, 实际 %v", v)
	}
	// 脉冲低电平回到偏置而非负幅值
	if v := s.Value(0.9); abs(v-1) > 1e-12 {
		t.Errorf("脉冲低电平不正确: 期望 1, 实际 %v", v)
	}
}

func TestWaveTriangle(t *testing.T) {
	s := &VoltageSourceState{Waveform: WfTriangle, Amplitude: 4, Frequency: 1}
	if v := s.Value(0); abs(v) > 1e-12 {
		t.Errorf("三角波t=0不正确: 期望 0, 实际 %v", v)
	}
	if v := s.Value(0.25); abs(v-4) > 1e-12 {
		t.Errorf("三角波峰值不正确: 期望 4, 实际 %v", v)
	}
	if v := s.Value(0.5); abs(v) > 1e-12 {
		t.Errorf("三角波过零不正确: 期望 0, 实际 %v", v)
	}
	if v := s.Value(0.75); abs(v+4) > 1e-12 {
		t.Errorf("三角波谷值不正确: 期望 -4, 实际 %v", v)
	}
}

func TestParseWaveform(t *testing.T) {
	for _, name := range []string{"dc", "sine", "square", "pulse", "triangle"} {
		w, err := ParseWaveform(name)
		if err != nil {
			t.Errorf("解析波形 '%s' 失败: %s", name, err)
		}
		if w.String() != name {
			t.Errorf("波形名称往返不一致: '%s' -> '%s'", name, w.String())
		}
	}
	if _, err := ParseWaveform("sawtooth"); err == nil {
		t.Error("未知波形名称未报告错误")
	}
}

func TestRetargetDeterministic(t *testing.T) {
	// 相同仿真时间必须得到相同目标电压(禁止读取墙钟)
	a := &VoltageSourceState{Waveform: WfSine, Amplitude: 5, Frequency: 50}
	b := &VoltageSourceState{Waveform: WfSine, Amplitude: 5, Frequency: 50}
	for _, tt := range []float64{0, 0.001, 0.0137, 1.5} {
		a.Retarget(tt)
		b.Retarget(tt)
		if a.Voltage != b.Voltage {
			t.Fatalf("目标电压不确定: t=%v 时 %v != %v", tt, a.Voltage, b.Voltage)
		}
	}
}
