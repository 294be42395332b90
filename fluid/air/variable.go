package air

import (
	"cycle/fluid"
	"cycle/maths"
	"cycle/types"
	"math"
)

// 空气 cp(T) 三次多项式系数 kJ/(kmol·K)，适用 273–1800 K
const (
	cpA = 28.11
	cpB = 0.1967e-2
	cpC = 0.4802e-5
	cpD = -1.966e-9

	MolarMass = 28.97   // kg/kmol
	Ru        = 8.31447 // 通用气体常数 kJ/(kmol·K)
	MinT      = 273.0   // 多项式下限 K
	MaxT      = 1800.0  // 多项式上限 K
)

// VariableName 变比热空气后端名称
var VariableName = fluid.AddFluid("air.variable", func(units types.Units) (fluid.Provider, error) {
	return NewVariable(units), nil
})

// Variable 变比热理想气体空气，温度反解使用有界求根
type Variable struct {
	units types.Units
	root  maths.Root
	s0    float64 // 参考温度下的 s°
}

// NewVariable 创建变比热空气
func NewVariable(units types.Units) *Variable {
	return &Variable{units: units, root: maths.NewRoot(), s0: sZero(ReferenceT)}
}

func (a *Variable) Name() string       { return VariableName }
func (a *Variable) Units() types.Units { return a.units }

// Cp 定压比热 kJ/(kg·K)
func (a *Variable) Cp(T float64) float64 {
	return (cpA + T*(cpB+T*(cpC+T*cpD))) / MolarMass
}

// H 比焓（0 K 为参考）
func (a *Variable) H(T, p float64) (float64, error) {
	if err := a.check(T, p); err != nil {
		return 0, err
	}
	return enthalpy(T), nil
}

// S 比熵（T0=298.15 K，p0=101.325 kPa 为零点）
func (a *Variable) S(T, p float64) (float64, error) {
	if err := a.check(T, p); err != nil {
		return 0, err
	}
	return sZero(T) - a.s0 - Ru/MolarMass*math.Log(a.units.ToKPa(p)/ReferenceP), nil
}

// TFromH 由焓反解温度
func (a *Variable) TFromH(h, p float64) (float64, error) {
	if p <= 0 {
		return 0, types.OutOfDomain("pressure", p)
	}
	return a.root.Invert(func(T float64) (float64, error) {
		return enthalpy(T), nil
	}, h, MinT, MaxT, "enthalpy")
}

// TFromS 由熵反解温度
func (a *Variable) TFromS(s, p float64) (float64, error) {
	if p <= 0 {
		return 0, types.OutOfDomain("pressure", p)
	}
	return a.root.Invert(func(T float64) (float64, error) {
		return a.S(T, p)
	}, s, MinT, MaxT, "entropy")
}

// Saturation 理想气体无饱和边界
func (a *Variable) Saturation(p, x float64) (h, s float64, err error) {
	return 0, 0, types.OutOfDomain("saturation_pressure", p)
}

// QualityFromS 理想气体无两相区
func (a *Variable) QualityFromS(s, p float64) (float64, error) {
	return 0, types.OutOfDomain("saturation_pressure", p)
}

// QualityFromH 理想气体无两相区
func (a *Variable) QualityFromH(h, p float64) (float64, error) {
	return 0, types.OutOfDomain("saturation_pressure", p)
}

func (a *Variable) check(T, p float64) error {
	if T < MinT || T > MaxT {
		return types.OutOfDomain("temperature", T)
	}
	if p <= 0 {
		return types.OutOfDomain("pressure", p)
	}
	return nil
}

// enthalpy ∫cp dT
func enthalpy(T float64) float64 {
	return T * (cpA + T*(cpB/2+T*(cpC/3+T*cpD/4))) / MolarMass
}

// sZero ∫cp/T dT
func sZero(T float64) float64 {
	return (cpA*math.Log(T) + T*(cpB+T*(cpC/2+T*cpD/3))) / MolarMass
}
