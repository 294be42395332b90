package types

import "fmt"

// HeatMode 燃气循环加热方式
type HeatMode string

const (
	HeatFuel   HeatMode = "fuel"   // 燃料能量混合（CombustionMixer）
	HeatFiring HeatMode = "firing" // 给定透平入口温度
)

// GasSpec 燃气循环边界条件
type GasSpec struct {
	InletPressure    float64  `yaml:"inlet_pressure" validate:"gt=0"`               // p1
	InletTemperature float64  `yaml:"inlet_temperature" validate:"gt=0"`            // T1 K
	PressureRatio    float64  `yaml:"pressure_ratio" validate:"gt=0"`               // rp
	CompressorEff    float64  `yaml:"compressor_efficiency" validate:"gt=0,lte=1"`  // ηc
	TurbineEff       float64  `yaml:"turbine_efficiency" validate:"gt=0,lte=1"`     // ηt
	Heat             HeatMode `yaml:"heat_mode" validate:"oneof=fuel firing"`       // 加热方式
	TurbineInletT    float64  `yaml:"turbine_inlet_temperature" validate:"gte=0"`   // T3 K（firing）
	StackTemperature float64  `yaml:"stack_temperature,omitempty" validate:"gte=0"` // 排烟温度 K
	AirMassFlow      float64  `yaml:"air_mass_flow,omitempty" validate:"gte=0"`     // 显式空气流量 kg/s
	Combustion       Fuel     `yaml:"combustion"`                                   // 燃料参数
}

// Fuel 燃料参数
type Fuel struct {
	MassFlow     float64 `yaml:"mass_flow" validate:"gte=0"`      // 燃料质量流量 kg/s
	LHV          float64 `yaml:"lhv" validate:"gte=0"`            // 低位热值 kJ/kg
	AirFuelRatio float64 `yaml:"air_fuel_ratio" validate:"gte=0"` // 空燃质量比
}

// SteamSpec 蒸汽循环边界条件
type SteamSpec struct {
	BoilerPressure       float64 `yaml:"boiler_pressure" validate:"gt=0"`                  // p_boiler
	BoilerTemperature    float64 `yaml:"boiler_temperature" validate:"gt=0"`               // T_boiler K
	CondenserPressure    float64 `yaml:"condenser_pressure" validate:"gte=0"`              // p_cond，0 表示由冷凝温度推算
	CondenserTemperature float64 `yaml:"condenser_temperature" validate:"gte=0"`           // T_cond K
	TurbineEff           float64 `yaml:"turbine_efficiency" validate:"gt=0,lte=1"`         // ηt_steam
	PumpEff              float64 `yaml:"pump_efficiency,omitempty" validate:"gte=0,lte=1"` // ηp，0 表示不计泵功
}

// CycleSpecification 一次分析的边界条件，求解过程中只读
type CycleSpecification struct {
	Units Units     `yaml:"units"`
	Gas   GasSpec   `yaml:"gas" validate:"required"`
	Steam SteamSpec `yaml:"steam" validate:"required"`
}

// DefaultSpecification 默认工况（压力单位 kPa）
func DefaultSpecification() CycleSpecification {
	return DefaultSpecificationIn(DefaultUnits())
}

// DefaultSpecificationIn 默认工况，压力换算到给定单位
func DefaultSpecificationIn(units Units) CycleSpecification {
	return CycleSpecification{
		Units: units,
		Gas: GasSpec{
			InletPressure:    units.FromKPa(DefaultInletPressure),
			InletTemperature: DefaultInletTemperature,
			PressureRatio:    DefaultPressureRatio,
			CompressorEff:    DefaultCompressorEff,
			TurbineEff:       DefaultTurbineEff,
			Heat:             HeatFiring,
			TurbineInletT:    DefaultTurbineInletT,
			StackTemperature: DefaultStackTemperature,
			Combustion: Fuel{
				MassFlow:     DefaultFuelMassFlow,
				LHV:          DefaultFuelLHV,
				AirFuelRatio: DefaultAirFuelRatio,
			},
		},
		Steam: SteamSpec{
			BoilerPressure:       units.FromKPa(DefaultBoilerPressure),
			BoilerTemperature:    DefaultBoilerTemperature,
			CondenserTemperature: DefaultCondenserT,
			TurbineEff:           DefaultSteamTurbineEff,
			PumpEff:              DefaultPumpEfficiency,
		},
	}
}

// AirFlow 空气质量流量：显式值优先，否则按空燃比推算
func (g GasSpec) AirFlow() float64 {
	if g.AirMassFlow > 0 {
		return g.AirMassFlow
	}
	return g.Combustion.AirFuelRatio * g.Combustion.MassFlow
}

// String 简要描述
func (c CycleSpecification) String() string {
	return fmt.Sprintf("gas(p1=%g%s T1=%g rp=%g %s) steam(pb=%g Tb=%g pc=%g)",
		c.Gas.InletPressure, c.Units.Pressure, c.Gas.InletTemperature, c.Gas.PressureRatio, c.Gas.Heat,
		c.Steam.BoilerPressure, c.Steam.BoilerTemperature, c.Steam.CondenserPressure)
}
