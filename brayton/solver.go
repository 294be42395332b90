package brayton

import (
	"cycle/combustion"
	"cycle/fluid"
	"cycle/types"
)

// 状态点标记
const (
	Inlet       = "1"  // 压气机入口
	Compressed  = "2"  // 压气机出口
	Fired       = "3"  // 透平入口
	Exhaust     = "4"  // 透平出口
	Compressed0 = "2s" // 等熵压缩终点
	Exhaust0    = "4s" // 等熵膨胀终点
)

// Result 燃气循环求解结果
type Result struct {
	Cycle    types.CycleResult
	MassFlow float64 // 透平燃气质量流量 kg/s
	AirFlow  float64 // 空气质量流量 kg/s
}

// Solver 布雷顿循环求解器
type Solver struct {
	Air fluid.Provider // 空气物性后端
}

// NewSolver 创建求解器
func NewSolver(air fluid.Provider) *Solver {
	return &Solver{Air: air}
}

// Solve 求解 1-2-3-4 四个状态点。
// 加热方式 fuel 由燃烧室能量平衡给出 h3，firing 由给定透平入口温度给出。
func (b *Solver) Solve(g types.GasSpec) (Result, error) {
	if err := efficiency("compressor_efficiency", g.CompressorEff); err != nil {
		return Result{}, err
	}
	if err := efficiency("turbine_efficiency", g.TurbineEff); err != nil {
		return Result{}, err
	}
	if g.PressureRatio <= 1 {
		return Result{}, types.InvalidCycle("pressure_ratio", g.PressureRatio)
	}
	p1, p2 := g.InletPressure, g.InletPressure*g.PressureRatio
	// 压缩
	s1, err := fluid.State(b.Air, Inlet, g.InletTemperature, p1)
	if err != nil {
		return Result{}, err
	}
	s2s, err := fluid.StateFromS(b.Air, Compressed0, s1.S, p2)
	if err != nil {
		return Result{}, err
	}
	s2, err := fluid.StateFromH(b.Air, Compressed, s1.H+(s2s.H-s1.H)/g.CompressorEff, p2)
	if err != nil {
		return Result{}, err
	}
	// 加热
	res := Result{AirFlow: g.AirFlow()}
	var s3 types.ThermodynamicState
	switch g.Heat {
	case types.HeatFuel:
		mix, err := combustion.NewMixer(g).Mix(s2.H)
		if err != nil {
			return Result{}, err
		}
		res.MassFlow = mix.MassFlow
		if s3, err = fluid.StateFromH(b.Air, Fired, mix.H, p2); err != nil {
			return Result{}, err
		}
	case types.HeatFiring:
		if g.TurbineInletT <= s2.T {
			return Result{}, types.InvalidCycle("turbine_inlet_temperature", g.TurbineInletT)
		}
		res.MassFlow = res.AirFlow + g.Combustion.MassFlow
		if s3, err = fluid.State(b.Air, Fired, g.TurbineInletT, p2); err != nil {
			return Result{}, err
		}
	default:
		return Result{}, types.InvalidInput("heat_mode", 0)
	}
	if s3.T <= s2.T {
		return Result{}, types.InvalidCycle("turbine_inlet_temperature", s3.T)
	}
	// 膨胀
	s4s, err := fluid.StateFromS(b.Air, Exhaust0, s3.S, p1)
	if err != nil {
		return Result{}, err
	}
	s4, err := fluid.StateFromH(b.Air, Exhaust, s3.H-g.TurbineEff*(s3.H-s4s.H), p1)
	if err != nil {
		return Result{}, err
	}
	wt, wc := s3.H-s4.H, s2.H-s1.H
	if wt-wc <= 0 {
		return Result{}, types.InvalidCycle("net_work", wt-wc)
	}
	res.Cycle = types.NewCycleResult(types.CycleValue{
		Kind:        types.Brayton,
		States:      []types.ThermodynamicState{s1, s2, s3, s4},
		Isentropic:  []types.ThermodynamicState{s2s, s4s},
		Expansion:   wt,
		Compression: wc,
		Heat:        s3.H - s2.H,
	})
	return res, nil
}

// efficiency 效率须在 (0,1]
func efficiency(quantity string, eta float64) error {
	if !(eta > 0 && eta <= 1) {
		return types.InvalidInput(quantity, eta)
	}
	return nil
}
