package rankine

import (
	"cycle/fluid"
	"cycle/maths"
	"cycle/types"
	"fmt"
)

// 状态点标记
const (
	Condensate = "1"  // 冷凝器出口饱和水
	Feed       = "2"  // 给水泵出口
	Live       = "3"  // 锅炉出口
	Exhaust    = "4"  // 透平排汽
	Feed0      = "2s" // 等熵泵出口
	Exhaust0   = "4s" // 等熵膨胀终点
)

// 闭式近似的示意熵值，仅用于图形
const (
	nominalLiquidS  = 0.5
	nominalLiveS    = 6.5
	nominalExhaustS = 7.0
)

// ApproximateNote 闭式近似结果说明
const ApproximateNote = "闭式近似：液相比热常数、名义蒸汽焓与固定膨胀系数，非物性表结果"

// PumpIgnoredNote 闭式近似忽略给水泵时附加的说明
const PumpIgnoredNote = "；给水泵效率已忽略，未计泵功"

// Solver 朗肯循环求解器。
// Steam 为空时使用闭式近似。
type Solver struct {
	Steam fluid.Provider // 水/水蒸气物性后端
}

// NewSolver 创建求解器
func NewSolver(steam fluid.Provider) *Solver {
	return &Solver{Steam: steam}
}

// Solve 求解朗肯循环
func (r *Solver) Solve(s types.SteamSpec) (types.CycleResult, error) {
	if !(s.TurbineEff > 0 && s.TurbineEff <= 1) {
		return types.CycleResult{}, types.InvalidInput("steam_turbine_efficiency", s.TurbineEff)
	}
	if s.PumpEff < 0 || s.PumpEff > 1 {
		return types.CycleResult{}, types.InvalidInput("pump_efficiency", s.PumpEff)
	}
	if r.Steam == nil {
		return Fallback(s)
	}
	pc, err := r.CondenserPressure(s)
	if err != nil {
		return types.CycleResult{}, err
	}
	pb := s.BoilerPressure
	// 冷凝器出口饱和水
	s1, err := fluid.SaturatedState(r.Steam, Condensate, pc, 0)
	if err != nil {
		return types.CycleResult{}, err
	}
	// 给水泵
	s2, s2s := s1, types.ThermodynamicState{}
	if s.PumpEff > 0 {
		if s2s, err = fluid.StateFromS(r.Steam, Feed0, s1.S, pb); err != nil {
			return types.CycleResult{}, err
		}
		if s2, err = fluid.StateFromH(r.Steam, Feed, s1.H+(s2s.H-s1.H)/s.PumpEff, pb); err != nil {
			return types.CycleResult{}, err
		}
	}
	// 锅炉出口
	s3, err := fluid.State(r.Steam, Live, s.BoilerTemperature, pb)
	if err != nil {
		return types.CycleResult{}, err
	}
	// 等熵膨胀终点按干度插值
	s4s, err := r.expand(s3.S, pc)
	if err != nil {
		return types.CycleResult{}, err
	}
	s4, err := fluid.StateFromH(r.Steam, Exhaust, s3.H-s.TurbineEff*(s3.H-s4s.H), pc)
	if err != nil {
		return types.CycleResult{}, err
	}

	v := types.CycleValue{
		Kind:       types.Rankine,
		States:     []types.ThermodynamicState{s1, s3, s4},
		Isentropic: []types.ThermodynamicState{s4s},
		Expansion:  s3.H - s4.H,
		Heat:       s3.H - s1.H,
	}
	if s.PumpEff > 0 {
		v.States = []types.ThermodynamicState{s1, s2, s3, s4}
		v.Isentropic = []types.ThermodynamicState{s2s, s4s}
		v.Compression = s2.H - s1.H
		v.Heat = s3.H - s2.H
	}
	if v.Heat <= 0 {
		return types.CycleResult{}, types.InvalidCycle("heat_input", v.Heat)
	}
	if v.Expansion-v.Compression <= 0 {
		return types.CycleResult{}, types.InvalidCycle("net_work", v.Expansion-v.Compression)
	}
	return types.NewCycleResult(v), nil
}

// expand 等熵膨胀终点：x = (s − s_f)/(s_g − s_f)，h 按同一干度插值。
// s 超出 [s_f, s_g] 返回 OutOfRange。
func (r *Solver) expand(s, pc float64) (types.ThermodynamicState, error) {
	x, err := r.Steam.QualityFromS(s, pc)
	if err != nil {
		return types.ThermodynamicState{}, err
	}
	hf, sf, err := r.Steam.Saturation(pc, 0)
	if err != nil {
		return types.ThermodynamicState{}, err
	}
	hg, sg, err := r.Steam.Saturation(pc, 1)
	if err != nil {
		return types.ThermodynamicState{}, err
	}
	state := types.ThermodynamicState{
		Label: Exhaust0,
		P:     pc,
		H:     maths.Lerp(hf, hg, x),
		S:     maths.Lerp(sf, sg, x),
	}
	if curve, ok := r.Steam.(fluid.SaturationCurve); ok {
		if state.T, err = curve.SaturationTemperature(pc); err != nil {
			return types.ThermodynamicState{}, err
		}
	}
	return state.WithQuality(x), nil
}

// CondenserPressure 冷凝压力：显式值优先，否则由冷凝温度按饱和线推算
func (r *Solver) CondenserPressure(s types.SteamSpec) (float64, error) {
	if s.CondenserPressure > 0 {
		return s.CondenserPressure, nil
	}
	if s.CondenserTemperature <= 0 {
		return 0, types.InvalidInput("condenser_pressure", s.CondenserPressure)
	}
	curve, ok := r.Steam.(fluid.SaturationCurve)
	if !ok {
		return 0, fmt.Errorf("%s 不支持饱和线查询: %w", r.Steam.Name(),
			types.OutOfDomain("condenser_temperature", s.CondenserTemperature))
	}
	return curve.SaturationPressure(s.CondenserTemperature)
}

// Fallback 无物性表时的闭式近似：
// h_f = c·(T_cond − 273)，h3 取名义蒸汽焓，h4s = h_f + k·(h3 − h_f)。
// 结果标记为近似；不计泵功，给定泵效率时在说明中注明。
func Fallback(s types.SteamSpec) (types.CycleResult, error) {
	if s.CondenserTemperature <= 0 {
		return types.CycleResult{}, types.InvalidInput("condenser_temperature", s.CondenserTemperature)
	}
	hf := types.FallbackLiquidCp * (s.CondenserTemperature - types.FallbackReferenceT)
	h3 := types.FallbackVaporEnthalpy
	h4s := hf + types.FallbackExpansionFactor*(h3-hf)
	h4 := h3 - s.TurbineEff*(h3-h4s)
	states := []types.ThermodynamicState{
		{Label: Condensate, P: s.CondenserPressure, T: s.CondenserTemperature, H: hf, S: nominalLiquidS},
		{Label: Live, P: s.BoilerPressure, T: s.BoilerTemperature, H: h3, S: nominalLiveS},
		{Label: Exhaust, P: s.CondenserPressure, T: s.CondenserTemperature, H: h4, S: nominalExhaustS},
	}
	if h3-hf <= 0 {
		return types.CycleResult{}, types.InvalidCycle("heat_input", h3-hf)
	}
	note := ApproximateNote
	if s.PumpEff > 0 {
		note += PumpIgnoredNote
	}
	return types.NewCycleResult(types.CycleValue{
		Kind:        types.Rankine,
		States:      states,
		Isentropic:  []types.ThermodynamicState{{Label: Exhaust0, P: s.CondenserPressure, T: s.CondenserTemperature, H: h4s, S: nominalLiveS}},
		Expansion:   h3 - h4,
		Heat:        h3 - hf,
		Approximate: true,
		Note:        note,
	}), nil
}
