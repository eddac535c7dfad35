package types

import "fmt"

// Kind 元件类型
type Kind uint

// 电路元件类型常量定义
const (
	KindUnknown       Kind = iota // 未知类型
	KindResistor                  // 电阻
	KindPotentiometer             // 电位器
	KindSwitch                    // 开关
	KindFuse                      // 保险丝
	KindLamp                      // 灯泡
	KindDiode                     // 二极管
	KindLED                       // 发光二极管
	KindCapacitor                 // 电容
	KindInductor                  // 电感
	KindVoltageSource             // 电压源
	KindBattery                   // 电池
	KindGround                    // 接地参考
)

// kindTable 元件类型封闭映射表(新增类型必须在此注册)
var kindTable = map[Kind]string{
	KindResistor:      "R",
	KindPotentiometer: "POT",
	KindSwitch:        "SW",
	KindFuse:          "FUSE",
	KindLamp:          "LAMP",
	KindDiode:         "D",
	KindLED:           "LED",
	KindCapacitor:     "C",
	KindInductor:      "L",
	KindVoltageSource: "V",
	KindBattery:       "BAT",
	KindGround:        "GND",
}

var kindByName = func() map[string]Kind {
	m := make(map[string]Kind, len(kindTable))
	for k, name := range kindTable {
		m[name] = k
	}
	return m
}()

// String 返回元件类型的字符串表示
func (k Kind) String() string {
	if name, ok := kindTable[k]; ok {
		return name
	}
	return "Unknown"
}

// KindByName 通过名称获取类型
func KindByName(name string) (Kind, error) {
	if k, ok := kindByName[name]; ok {
		return k, nil
	}
	return KindUnknown, fmt.Errorf("未知的元件类型 '%s'", name)
}

// TerminalCount 元件引脚数量(当前所有建模类型均为2)
func (k Kind) TerminalCount() int { return 2 }

// BranchCount 元件占用的电压源支路数量
func (k Kind) BranchCount() int {
	switch k {
	case KindVoltageSource, KindBattery, KindGround:
		return 1
	}
	return 0
}

// IsIdealSource 是否属于理想直流源家族(接地选择启发式使用)
func (k Kind) IsIdealSource() bool { return k.BranchCount() > 0 }
