package types

// Severity 故障严重级别
type Severity uint

// 故障级别常量定义
const (
	SeverityWarning  Severity = iota // 警告(仅提示，不停止运行)
	SeverityError                    // 错误(停止运行)
	SeverityCritical                 // 危险(停止运行，存在安全隐患)
)

// String 返回级别的字符串表示
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "警告"
	case SeverityError:
		return "错误"
	case SeverityCritical:
		return "危险"
	}
	return "未知"
}

// Fault 元件或求解过程的故障记录。
// 每步由保护评估器重新产生，按标识或消息去重。
type Fault struct {
	ID         string        // 去重标识
	Severity   Severity      // 严重级别
	Message    string        // 说明信息
	Components []ComponentID // 涉及的元件ID
	Halt       bool          // 是否需要停止运行
}

// NewFault 创建故障记录(停止标记由级别推导: 警告不停止，其余停止)
func NewFault(id string, severity Severity, message string, components ...ComponentID) Fault {
	return Fault{
		ID:         id,
		Severity:   severity,
		Message:    message,
		Components: components,
		Halt:       severity != SeverityWarning,
	}
}
