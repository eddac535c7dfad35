package component

import (
	"fmt"
	"math"
)

// Waveform 电压源波形类型
type Waveform int

// 波形常量定义
const (
	WfDC       Waveform = iota // 直流
	WfSine                     // 正弦波
	WfSquare                   // 方波
	WfPulse                    // 脉冲波
	WfTriangle                 // 三角波
)

var waveformNames = map[Waveform]string{
	WfDC:       "dc",
	WfSine:     "sine",
	WfSquare:   "square",
	WfPulse:    "pulse",
	WfTriangle: "triangle",
}

// String 返回波形的字符串表示
func (w Waveform) String() string {
	if name, ok := waveformNames[w]; ok {
		return name
	}
	return "unknown"
}

// ParseWaveform 通过名称获取波形类型
func ParseWaveform(name string) (Waveform, error) {
	for w, n := range waveformNames {
		if n == name {
			return w, nil
		}
	}
	return WfDC, fmt.Errorf("未知的波形类型 '%s'", name)
}

// waveValue 计算波形在仿真时刻t的瞬时值。
// 只依赖仿真时间，保证相同输入得到相同输出(确定性要求，禁止读取墙钟)。
func waveValue(w Waveform, amplitude, freq, phase, offset, duty, t float64) float64 {
	switch w {
	case WfSine:
		return offset + amplitude*math.Sin(2*math.Pi*freq*t+phase)
	case WfSquare:
		if duty <= 0 || duty >= 1 {
			duty = 0.5
		}
		if phaseFrac(freq, phase, t) < duty {
			return offset + amplitude
		}
		return offset - amplitude
	case WfPulse:
		if duty <= 0 || duty >= 1 {
			duty = 0.5
		}
		if phaseFrac(freq, phase, t) < duty {
			return offset + amplitude
		}
		return offset
	case WfTriangle:
		p := phaseFrac(freq, phase, t)
		switch {
		case p < 0.25:
			return offset + amplitude*4*p
		case p < 0.75:
			return offset + amplitude*(2-4*p)
		default:
			return offset + amplitude*(4*p-4)
		}
	}
	// 直流忽略时间
	return offset + amplitude
}

// phaseFrac 当前周期内的相位比例 [0,1)
func phaseFrac(freq, phase, t float64) float64 {
	p := freq*t + phase/(2*math.Pi)
	return p - math.Floor(p)
}
