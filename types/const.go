package types

// 默认参数常量定义
var (
	Tolerance     = 1e-10 // 反解收敛容差（相对）
	MaxIterations = 200   // 反解最大迭代次数
)

// 朗肯闭式近似常量（无物性表时使用）
const (
	FallbackLiquidCp        = 4.18   // 液态水比热 kJ/(kg·K)
	FallbackVaporEnthalpy   = 2800.0 // 名义蒸汽焓 kJ/kg
	FallbackExpansionFactor = 0.7    // 等熵膨胀比例
	FallbackReferenceT      = 273.0  // 液体焓参考温度 K
)

// 默认工况
const (
	DefaultInletTemperature  = 300.0   // 压气机入口温度 K
	DefaultInletPressure     = 101.325 // 压气机入口压力 kPa
	DefaultPressureRatio     = 8.0     // 压比
	DefaultTurbineInletT     = 1200.0  // 透平入口温度 K
	DefaultCompressorEff     = 0.85    // 压气机效率
	DefaultTurbineEff        = 0.88    // 透平效率
	DefaultBoilerTemperature = 773.0   // 锅炉出口温度 K
	DefaultBoilerPressure    = 4000.0  // 锅炉压力 kPa
	DefaultCondenserT        = 313.0   // 冷凝温度 K
	DefaultSteamTurbineEff   = 0.85    // 汽轮机效率
	DefaultAirFuelRatio      = 50.0    // 空燃比
	DefaultFuelLHV           = 50000.0 // 燃料低位热值 kJ/kg
	DefaultFuelMassFlow      = 1.0     // 燃料质量流量 kg/s
	DefaultStackTemperature  = 0.0     // 排烟温度 K，0 表示不计算余热
	DefaultPumpEfficiency    = 0.0     // 给水泵效率，0 表示不计泵功
)
