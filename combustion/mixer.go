package combustion

import "cycle/types"

// Mixture 绝热混合后的燃烧室出口
type Mixture struct {
	H        float64 // 出口比焓 kJ/kg
	MassFlow float64 // 总质量流量 kg/s
}

// Mixer 燃烧室能量平衡：
// h3 = (ṁa·h2 + ṁf·LHV)/(ṁa + ṁf)
type Mixer struct {
	AirFlow  float64 // 空气质量流量 kg/s
	FuelFlow float64 // 燃料质量流量 kg/s
	LHV      float64 // 燃料低位热值 kJ/kg
}

// NewMixer 由燃气循环参数构造
func NewMixer(g types.GasSpec) Mixer {
	return Mixer{AirFlow: g.AirFlow(), FuelFlow: g.Combustion.MassFlow, LHV: g.Combustion.LHV}
}

// Validate 检查流量与热值
func (m Mixer) Validate() error {
	switch {
	case m.FuelFlow < 0:
		return types.InvalidInput("fuel_mass_flow", m.FuelFlow)
	case m.LHV < 0:
		return types.InvalidInput("fuel_lhv", m.LHV)
	case m.AirFlow < 0:
		return types.InvalidInput("air_mass_flow", m.AirFlow)
	case m.AirFlow+m.FuelFlow == 0:
		return types.InvalidInput("total_mass_flow", 0)
	}
	return nil
}

// Mix 求压气机出口焓 h2 下的燃烧室出口焓
func (m Mixer) Mix(h2 float64) (Mixture, error) {
	if err := m.Validate(); err != nil {
		return Mixture{}, err
	}
	total := m.AirFlow + m.FuelFlow
	return Mixture{
		H:        (m.AirFlow*h2 + m.FuelFlow*m.LHV) / total,
		MassFlow: total,
	}, nil
}
