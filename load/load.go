// Package load 实现电路网表文本的加载与导出。
// 行格式: 类型标记+序号 两个网络标号 值列表，'#'开头为注释。
// 网络标号只表达连接关系，同标号的引脚用导线归并到同一节点。
package load

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"circuitlab"
	"circuitlab/component"
	"circuitlab/graph"
	"circuitlab/types"
)

// Values 网表行的值列表
type Values []string

// ParseFloat 按位解析浮点值，缺失或非法时使用默认值
func (v Values) ParseFloat(i int, defaultValue float64) float64 {
	if i < len(v) {
		if val, err := strconv.ParseFloat(v[i], 64); err == nil {
			return val
		}
	}
	return defaultValue
}

// ParseInt 按位解析整数值，缺失或非法时使用默认值
func (v Values) ParseInt(i int, defaultValue int) int {
	if i < len(v) {
		if val, err := strconv.Atoi(v[i]); err == nil {
			return val
		}
	}
	return defaultValue
}

// File 从文件加载网表
func File(filename string) (*circuitlab.Circuit, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return Reader(file)
}

// String 从字符串加载网表
func String(s string) (*circuitlab.Circuit, error) {
	return Reader(strings.NewReader(s))
}

// Reader 加载网表。元件按行顺序创建，保证仿真顺序确定。
func Reader(r io.Reader) (*circuitlab.Circuit, error) {
	cir := circuitlab.NewCircuit()
	// 网络标号 -> 首个引脚(后续引脚以导线星形归并)
	nets := map[string]types.TerminalID{}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		// 解析类型标记(字母前缀+序号)
		name := fields[0]
		cut := len(name)
		for i, s := range name {
			if unicode.IsNumber(s) {
				cut = i
				break
			}
		}
		kind, err := types.KindByName(strings.ToUpper(name[:cut]))
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: %v", lineNo, err)
		}
		// 处理引脚
		n := kind.TerminalCount()
		if len(fields) < n+1 {
			return nil, fmt.Errorf("第 %d 行: 元件 '%s' 引脚定义不足，需要 %d 个网络标号", lineNo, kind, n)
		}
		c, err := cir.AddComponent(kind)
		if err != nil {
			return nil, fmt.Errorf("第 %d 行: %v", lineNo, err)
		}
		for i := 0; i < n; i++ {
			label := fields[1+i]
			if first, ok := nets[label]; ok {
				cir.AddWire(first, c.TerminalID(i))
			} else {
				nets[label] = c.TerminalID(i)
			}
		}
		// 元件值
		if err := applyValues(c, Values(fields[1+n:])); err != nil {
			return nil, fmt.Errorf("第 %d 行: %v", lineNo, err)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return cir, nil
}

// applyValues 按类型把值列表写入状态结构
func applyValues(c *types.Component, v Values) error {
	switch s := c.State.(type) {
	case *component.ResistorState:
		s.Resistance = v.ParseFloat(0, s.Resistance)
		s.PowerRating = v.ParseFloat(1, s.PowerRating)
		s.ThermalResistance = v.ParseFloat(2, s.ThermalResistance)
	case *component.PotentiometerState:
		s.MaxResistance = v.ParseFloat(0, s.MaxResistance)
		s.WiperPercent = v.ParseFloat(1, s.WiperPercent)
	case *component.SwitchState:
		s.Closed = v.ParseInt(0, 0) != 0
	case *component.FuseState:
		s.CurrentRating = v.ParseFloat(0, s.CurrentRating)
	case *component.LampState:
		s.VoltageRating = v.ParseFloat(0, s.VoltageRating)
		s.PowerRating = v.ParseFloat(1, s.PowerRating)
	case *component.DiodeState:
		s.BreakdownVoltage = v.ParseFloat(0, s.BreakdownVoltage)
	case *component.LEDState:
		s.BreakdownVoltage = v.ParseFloat(0, s.BreakdownVoltage)
		s.CurrentRating = v.ParseFloat(1, s.CurrentRating)
	case *component.CapacitorState:
		s.Capacitance = v.ParseFloat(0, s.Capacitance)
		s.VoltageRating = v.ParseFloat(1, s.VoltageRating)
	case *component.InductorState:
		s.Inductance = v.ParseFloat(0, s.Inductance)
		s.MaxCurrent = v.ParseFloat(1, s.MaxCurrent)
	case *component.VoltageSourceState:
		if len(v) > 0 {
			w, err := component.ParseWaveform(strings.ToLower(v[0]))
			if err != nil {
				return err
			}
			s.Waveform = w
		}
		s.Amplitude = v.ParseFloat(1, s.Amplitude)
		s.Frequency = v.ParseFloat(2, s.Frequency)
		s.Phase = v.ParseFloat(3, s.Phase)
		s.Offset = v.ParseFloat(4, s.Offset)
		s.DutyCycle = v.ParseFloat(5, s.DutyCycle)
		s.Retarget(0)
	case *component.BatteryState:
		s.NominalVoltage = v.ParseFloat(0, s.NominalVoltage)
		s.InternalResistance = v.ParseFloat(1, s.InternalResistance)
		s.CapacityMAh = v.ParseFloat(2, s.CapacityMAh)
		s.ChargeMAh = s.CapacityMAh
		s.Voltage = s.NominalVoltage
	case *component.GroundState:
		// 无参数
	default:
		return fmt.Errorf("元件 '%s' 不支持网表值", c.Kind)
	}
	return nil
}

// Export 导出网表。网络标号按节点发现顺序编号。
func Export(cir *circuitlab.Circuit, w io.Writer) error {
	g := graph.Build(cir.Components, cir.Wires)
	labels := map[types.TerminalID]int{}
	for i, node := range g.Nodes() {
		for _, t := range node.Terminals {
			labels[t] = i
		}
	}
	writer := bufio.NewWriter(w)
	for _, c := range cir.Components {
		fmt.Fprintf(writer, "%s%d", c.Kind, c.ID)
		for _, t := range c.Terminals {
			fmt.Fprintf(writer, " %d", labels[t.ID])
		}
		for _, v := range exportValues(c) {
			fmt.Fprintf(writer, " %s", v)
		}
		fmt.Fprintln(writer)
	}
	return writer.Flush()
}

// exportValues 按类型导出状态参数
func exportValues(c *types.Component) []string {
	f := func(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }
	switch s := c.State.(type) {
	case *component.ResistorState:
		return []string{f(s.Resistance), f(s.PowerRating), f(s.ThermalResistance)}
	case *component.PotentiometerState:
		return []string{f(s.MaxResistance), f(s.WiperPercent)}
	case *component.SwitchState:
		if s.Closed {
			return []string{"1"}
		}
		return []string{"0"}
	case *component.FuseState:
		return []string{f(s.CurrentRating)}
	case *component.LampState:
		return []string{f(s.VoltageRating), f(s.PowerRating)}
	case *component.DiodeState:
		return []string{f(s.BreakdownVoltage)}
	case *component.LEDState:
		return []string{f(s.BreakdownVoltage), f(s.CurrentRating)}
	case *component.CapacitorState:
		return []string{f(s.Capacitance), f(s.VoltageRating)}
	case *component.InductorState:
		return []string{f(s.Inductance), f(s.MaxCurrent)}
	case *component.VoltageSourceState:
		return []string{s.Waveform.String(), f(s.Amplitude), f(s.Frequency), f(s.Phase), f(s.Offset), f(s.DutyCycle)}
	case *component.BatteryState:
		return []string{f(s.NominalVoltage), f(s.InternalResistance), f(s.CapacityMAh)}
	}
	return nil
}
