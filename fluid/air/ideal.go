package air

import (
	"cycle/fluid"
	"cycle/types"
	"fmt"
	"math"
)

// 理想气体空气默认参数
const (
	DefaultCp    = 1.005   // 定压比热 kJ/(kg·K)
	DefaultGamma = 1.4     // 比热比
	ReferenceT   = 298.15  // 熵参考温度 K
	ReferenceP   = 101.325 // 熵参考压力 kPa
)

// IdealName 理想气体空气后端名称
var IdealName = fluid.AddFluid("air.ideal", func(units types.Units) (fluid.Provider, error) {
	return NewIdeal(units), nil
})

// Ideal 定比热理想气体空气（闭式解）。
// h = cp·T，s = cp·ln(T/T0) − R·ln(p/p0)，R = cp(γ−1)/γ，
// 与等熵关系 T2s/T1 = (p2/p1)^((γ−1)/γ) 严格一致。
type Ideal struct {
	units types.Units
	cp    float64
	gamma float64
	r     float64
}

// NewIdeal 默认参数（cp=1.005，γ=1.4）
func NewIdeal(units types.Units) *Ideal {
	ideal, _ := NewIdealGas(units, DefaultCp, DefaultGamma)
	return ideal
}

// NewIdealGas 指定 cp 与 γ 创建
func NewIdealGas(units types.Units, cp, gamma float64) (*Ideal, error) {
	if cp <= 0 {
		return nil, fmt.Errorf("定压比热必须为正: %w", types.InvalidInput("cp", cp))
	}
	if gamma <= 1 {
		return nil, fmt.Errorf("比热比必须大于1: %w", types.InvalidInput("gamma", gamma))
	}
	return &Ideal{units: units, cp: cp, gamma: gamma, r: cp * (gamma - 1) / gamma}, nil
}

func (a *Ideal) Name() string       { return IdealName }
func (a *Ideal) Units() types.Units { return a.units }

// Cp 定压比热
func (a *Ideal) Cp() float64 { return a.cp }

// Gamma 比热比
func (a *Ideal) Gamma() float64 { return a.gamma }

// R 气体常数
func (a *Ideal) R() float64 { return a.r }

// H 比焓
func (a *Ideal) H(T, p float64) (float64, error) {
	if err := a.check(T, p); err != nil {
		return 0, err
	}
	return a.cp * T, nil
}

// S 比熵
func (a *Ideal) S(T, p float64) (float64, error) {
	if err := a.check(T, p); err != nil {
		return 0, err
	}
	return a.cp*math.Log(T/ReferenceT) - a.r*math.Log(a.units.ToKPa(p)/ReferenceP), nil
}

// TFromH 由焓反解温度
func (a *Ideal) TFromH(h, p float64) (float64, error) {
	if h <= 0 {
		return 0, types.OutOfDomain("enthalpy", h)
	}
	if p <= 0 {
		return 0, types.OutOfDomain("pressure", p)
	}
	return h / a.cp, nil
}

// TFromS 由熵反解温度
func (a *Ideal) TFromS(s, p float64) (float64, error) {
	if p <= 0 {
		return 0, types.OutOfDomain("pressure", p)
	}
	T := ReferenceT * math.Exp((s+a.r*math.Log(a.units.ToKPa(p)/ReferenceP))/a.cp)
	if math.IsInf(T, 0) || T <= 0 {
		return 0, types.OutOfDomain("entropy", s)
	}
	return T, nil
}

// Saturation 理想气体无饱和边界
func (a *Ideal) Saturation(p, x float64) (h, s float64, err error) {
	return 0, 0, types.OutOfDomain("saturation_pressure", p)
}

// QualityFromS 理想气体无两相区
func (a *Ideal) QualityFromS(s, p float64) (float64, error) {
	return 0, types.OutOfDomain("saturation_pressure", p)
}

// QualityFromH 理想气体无两相区
func (a *Ideal) QualityFromH(h, p float64) (float64, error) {
	return 0, types.OutOfDomain("saturation_pressure", p)
}

// IsentropicTemperature 等熵压缩/膨胀终温 T·(p2/p1)^((γ−1)/γ)
func (a *Ideal) IsentropicTemperature(T1, p1, p2 float64) float64 {
	return T1 * math.Pow(p2/p1, (a.gamma-1)/a.gamma)
}

func (a *Ideal) check(T, p float64) error {
	if T <= 0 {
		return types.OutOfDomain("temperature", T)
	}
	if p <= 0 {
		return types.OutOfDomain("pressure", p)
	}
	return nil
}
