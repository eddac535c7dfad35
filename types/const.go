package types

// 默认连接常量定义
const (
	GndNodeID  NodeID   = -1 // 标记为地(无矩阵行)
	NoBranchID BranchID = -1 // 元件不占用电压源支路
)

// 默认参数常量定义
var (
	ClosedResistance = 1e-6  // 闭合开关/完好保险丝的近零电阻
	OpenResistance   = 1e12  // 断开开关/熔断保险丝的近无穷电阻
	CapacitorDCRes   = 1e12  // 电容直流开路近似电阻
	InductorDCRes    = 1e-6  // 电感直流短路近似电阻
	DiodeOnRes       = 10.0  // 二极管/LED正向导通线性近似电阻
	MinWiperRes      = 1e-3  // 电位器滑动端最小电阻(避免除零)
	PivotEpsilon     = 1e-12 // 消元主元奇异判定阈值
	FuseHeatLimit    = 8.0   // 保险丝熔断热量阈值(归一化I²t: 2倍额定电流持续2秒)
	FuseCoolRate     = 1.0   // 保险丝每秒线性散热量
	LampBreakRatio   = 1.5   // 灯泡烧毁的功率倍数
	BatterySagFloor  = 0.2   // 电池电压跌落的剩余电量比例
	BatterySagLevel  = 0.6   // 电量耗尽时标称电压的跌落比例
	AmbientTemp      = 25.0  // 环境温度(摄氏度)
)
