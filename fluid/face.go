package fluid

import (
	"cycle/maths"
	"cycle/types"
	"errors"
	"fmt"
	"log"
	"sort"
)

// Provider 工质物性接口。
// 构造后无状态，可并发只读；压力单位由构造时的 Units 决定。
// 越出后端有效域的查询返回 OutOfDomain，不做钳位。
type Provider interface {
	Name() string                                      // 后端名称
	Units() types.Units                                // 单位配置
	H(T, p float64) (float64, error)                   // 比焓 h(T,p)
	S(T, p float64) (float64, error)                   // 比熵 s(T,p)
	TFromH(h, p float64) (float64, error)              // 由 (h,p) 反解温度
	TFromS(s, p float64) (float64, error)              // 由 (s,p) 反解温度
	Saturation(p, x float64) (h, s float64, err error) // 饱和边界 x=0/1 的 h、s
	QualityFromS(s, p float64) (float64, error)        // 由 (s,p) 求干度
	QualityFromH(h, p float64) (float64, error)        // 由 (h,p) 求干度
}

// SaturationCurve 饱和线查询（可选能力）
type SaturationCurve interface {
	SaturationTemperature(p float64) (float64, error) // 饱和温度 T_sat(p)
	SaturationPressure(T float64) (float64, error)    // 饱和压力 p_sat(T)
}

// Constructor 后端构造函数
type Constructor func(units types.Units) (Provider, error)

// fluidList 后端注册表
var fluidList = map[string]Constructor{}

// AddFluid 注册物性后端，重复注册将终止程序
func AddFluid(name string, c Constructor) string {
	if _, ok := fluidList[name]; ok {
		log.Fatalf("物性后端重复注册: %s", name)
	}
	fluidList[name] = c
	return name
}

// NewFluid 按名称创建物性后端
func NewFluid(name string, units types.Units) (Provider, error) {
	c, ok := fluidList[name]
	if !ok {
		return nil, fmt.Errorf("未注册的物性后端: %s", name)
	}
	return c(units)
}

// Names 已注册后端名称（排序）
func Names() []string {
	names := make([]string, 0, len(fluidList))
	for name := range fluidList {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// State 由 (T,p) 构造完整状态点
func State(f Provider, label string, T, p float64) (types.ThermodynamicState, error) {
	h, err := f.H(T, p)
	if err != nil {
		return types.ThermodynamicState{}, err
	}
	s, err := f.S(T, p)
	if err != nil {
		return types.ThermodynamicState{}, err
	}
	return types.ThermodynamicState{Label: label, P: p, T: T, H: h, S: s}, nil
}

// StateFromH 由 (h,p) 构造完整状态点。
// 具备饱和线能力的后端先判断两相区，两相状态按干度插值求熵。
func StateFromH(f Provider, label string, h, p float64) (types.ThermodynamicState, error) {
	if state, ok, err := twoPhase(f, label, p, h, f.QualityFromH); ok || err != nil {
		return state, err
	}
	T, err := f.TFromH(h, p)
	if err != nil {
		return types.ThermodynamicState{}, err
	}
	s, err := f.S(T, p)
	if err != nil {
		return types.ThermodynamicState{}, err
	}
	return types.ThermodynamicState{Label: label, P: p, T: T, H: h, S: s}, nil
}

// StateFromS 由 (s,p) 构造完整状态点，两相处理同 StateFromH
func StateFromS(f Provider, label string, s, p float64) (types.ThermodynamicState, error) {
	if state, ok, err := twoPhase(f, label, p, s, f.QualityFromS); ok || err != nil {
		return state, err
	}
	T, err := f.TFromS(s, p)
	if err != nil {
		return types.ThermodynamicState{}, err
	}
	h, err := f.H(T, p)
	if err != nil {
		return types.ThermodynamicState{}, err
	}
	return types.ThermodynamicState{Label: label, P: p, T: T, H: h, S: s}, nil
}

// SaturatedState 饱和边界状态点（x=0 或 x=1）
func SaturatedState(f Provider, label string, p, x float64) (types.ThermodynamicState, error) {
	curve, ok := f.(SaturationCurve)
	if !ok {
		return types.ThermodynamicState{}, types.OutOfDomain("saturation_pressure", p)
	}
	T, err := curve.SaturationTemperature(p)
	if err != nil {
		return types.ThermodynamicState{}, err
	}
	h, s, err := f.Saturation(p, x)
	if err != nil {
		return types.ThermodynamicState{}, err
	}
	return types.ThermodynamicState{Label: label, P: p, T: T, H: h, S: s}.WithQuality(x), nil
}

// twoPhase 尝试按两相状态解析，ok 为假表示不在两相区
func twoPhase(f Provider, label string, p, v float64, quality func(v, p float64) (float64, error)) (types.ThermodynamicState, bool, error) {
	curve, ok := f.(SaturationCurve)
	if !ok {
		return types.ThermodynamicState{}, false, nil
	}
	// 超临界压力下不存在两相区
	T, err := curve.SaturationTemperature(p)
	if errors.Is(err, types.ErrOutOfDomain) {
		return types.ThermodynamicState{}, false, nil
	} else if err != nil {
		return types.ThermodynamicState{}, false, err
	}
	x, err := quality(v, p)
	switch {
	case errors.Is(err, types.ErrOutOfRange):
		return types.ThermodynamicState{}, false, nil
	case err != nil:
		return types.ThermodynamicState{}, false, err
	}
	hf, sf, err := f.Saturation(p, 0)
	if err != nil {
		return types.ThermodynamicState{}, false, err
	}
	hg, sg, err := f.Saturation(p, 1)
	if err != nil {
		return types.ThermodynamicState{}, false, err
	}
	state := types.ThermodynamicState{
		Label: label,
		P:     p,
		T:     T,
		H:     maths.Lerp(hf, hg, x),
		S:     maths.Lerp(sf, sg, x),
	}
	return state.WithQuality(x), true, nil
}
