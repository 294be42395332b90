package steam

import (
	"cycle/fluid"
	"cycle/maths"
	"cycle/types"
	"math"
)

// IF97Name IF97 水蒸气后端名称
var IF97Name = fluid.AddFluid("steam.if97", func(units types.Units) (fluid.Provider, error) {
	return NewIF97(units), nil
})

// 饱和线有效压力范围（区域 4 且两侧均为区域 1/2），MPa
var (
	minSaturationP = SaturationPressure(TripleT)
	maxSaturationP = SaturationPressure(Region3T)
)

// IF97 基于 IAPWS-IF97 的水/水蒸气物性后端。
// 支持区域 1（压缩液）、区域 2（过热蒸汽）与区域 4（饱和线）；
// 区域 3、5 返回 OutOfDomain。
type IF97 struct {
	units types.Units
	root  maths.Root
}

// NewIF97 创建后端
func NewIF97(units types.Units) *IF97 {
	return &IF97{units: units, root: maths.NewRoot()}
}

func (w *IF97) Name() string       { return IF97Name }
func (w *IF97) Units() types.Units { return w.units }

// region 单相区间：温度范围与对应区域方程
type region struct {
	lo, hi float64
	eval   func(T, p float64) (h, s float64)
}

// segments 给定压力下的单相温度区间（液相在前）。
// 两相或区域 3 位于两个区间之间。
func (w *IF97) segments(p float64) (liquid, vapor *region, err error) {
	if p <= 0 || p > MaxP {
		return nil, nil, types.OutOfDomain("pressure", w.units.FromMPa(p))
	}
	switch {
	case p < minSaturationP:
		// 低于三相点压力，仅有蒸汽
		vapor = &region{lo: TripleT, hi: MaxT, eval: Region2}
	case p <= maxSaturationP:
		Ts := SaturationTemperature(p)
		liquid = &region{lo: TripleT, hi: Ts, eval: Region1}
		vapor = &region{lo: Ts, hi: MaxT, eval: Region2}
	default:
		liquid = &region{lo: TripleT, hi: Region3T, eval: Region1}
		if p <= B23Pressure(MaxT) {
			vapor = &region{lo: B23Temperature(p), hi: MaxT, eval: Region2}
		}
	}
	return liquid, vapor, nil
}

// eval 按 (T,p) 选择区域求 h、s，p 单位 MPa
func (w *IF97) eval(T, p float64) (h, s float64, err error) {
	if T < TripleT || T > MaxT || math.IsNaN(T) {
		return 0, 0, types.OutOfDomain("temperature", T)
	}
	liquid, vapor, err := w.segments(p)
	if err != nil {
		return 0, 0, err
	}
	// 饱和温度处取汽相
	if vapor != nil && T >= vapor.lo {
		h, s = vapor.eval(T, p)
		return h, s, nil
	}
	if liquid != nil && T <= liquid.hi {
		h, s = liquid.eval(T, p)
		return h, s, nil
	}
	return 0, 0, types.OutOfDomain("temperature", T)
}

// H 比焓
func (w *IF97) H(T, p float64) (float64, error) {
	h, _, err := w.eval(T, w.units.ToMPa(p))
	return h, err
}

// S 比熵
func (w *IF97) S(T, p float64) (float64, error) {
	_, s, err := w.eval(T, w.units.ToMPa(p))
	return s, err
}

// TFromH 由焓反解温度，两相区返回饱和温度
func (w *IF97) TFromH(h, p float64) (float64, error) {
	return w.invert(h, w.units.ToMPa(p), 0, "enthalpy")
}

// TFromS 由熵反解温度，两相区返回饱和温度
func (w *IF97) TFromS(s, p float64) (float64, error) {
	return w.invert(s, w.units.ToMPa(p), 1, "entropy")
}

// invert 在单相区间内有界反解，idx 选择 h(0) 或 s(1)
func (w *IF97) invert(target, p float64, idx int, quantity string) (float64, error) {
	liquid, vapor, err := w.segments(p)
	if err != nil {
		return 0, err
	}
	pick := func(r *region) maths.Func {
		return func(T float64) (float64, error) {
			h, s := r.eval(T, p)
			if idx == 0 {
				return h, nil
			}
			return s, nil
		}
	}
	if liquid != nil {
		top, _ := pick(liquid)(liquid.hi)
		if target <= top {
			return w.root.Invert(pick(liquid), target, liquid.lo, liquid.hi, quantity)
		}
	}
	if vapor != nil {
		bottom, _ := pick(vapor)(vapor.lo)
		if target >= bottom {
			return w.root.Invert(pick(vapor), target, vapor.lo, vapor.hi, quantity)
		}
	}
	// 介于两区间之间：饱和线下为两相，否则为区域 3
	if liquid != nil && vapor != nil && p <= maxSaturationP {
		return SaturationTemperature(p), nil
	}
	return 0, types.OutOfDomain(quantity, target)
}

// saturation 饱和边界值，p 单位 MPa
func (w *IF97) saturation(p float64) (hf, sf, hg, sg float64, err error) {
	if p < minSaturationP || p > maxSaturationP {
		return 0, 0, 0, 0, types.OutOfDomain("saturation_pressure", w.units.FromMPa(p))
	}
	Ts := SaturationTemperature(p)
	hf, sf = Region1(Ts, p)
	hg, sg = Region2(Ts, p)
	return hf, sf, hg, sg, nil
}

// Saturation 饱和液（x=0）或饱和汽（x=1）的 h、s
func (w *IF97) Saturation(p, x float64) (h, s float64, err error) {
	hf, sf, hg, sg, err := w.saturation(w.units.ToMPa(p))
	if err != nil {
		return 0, 0, err
	}
	switch x {
	case 0:
		return hf, sf, nil
	case 1:
		return hg, sg, nil
	}
	return 0, 0, types.InvalidInput("quality", x)
}

// QualityFromS 两点插值求干度，超出 [s_f, s_g] 返回 OutOfRange
func (w *IF97) QualityFromS(s, p float64) (float64, error) {
	_, sf, _, sg, err := w.saturation(w.units.ToMPa(p))
	if err != nil {
		return 0, err
	}
	return quality(s, sf, sg, "entropy")
}

// QualityFromH 两点插值求干度，超出 [h_f, h_g] 返回 OutOfRange
func (w *IF97) QualityFromH(h, p float64) (float64, error) {
	hf, _, hg, _, err := w.saturation(w.units.ToMPa(p))
	if err != nil {
		return 0, err
	}
	return quality(h, hf, hg, "enthalpy")
}

// SaturationTemperature 饱和温度，范围与两相查询一致
func (w *IF97) SaturationTemperature(p float64) (float64, error) {
	pm := w.units.ToMPa(p)
	if pm < minSaturationP || pm > maxSaturationP {
		return 0, types.OutOfDomain("saturation_pressure", p)
	}
	return SaturationTemperature(pm), nil
}

// SaturationPressure 饱和压力（配置单位）
func (w *IF97) SaturationPressure(T float64) (float64, error) {
	if T < TripleT || T > Region3T {
		return 0, types.OutOfDomain("saturation_temperature", T)
	}
	return w.units.FromMPa(SaturationPressure(T)), nil
}

// quality x = (v − v_f)/(v_g − v_f)，仅在 [0,1] 内有效
func quality(v, vf, vg float64, quantity string) (float64, error) {
	if v < vf || v > vg {
		return 0, types.OutOfRange(quantity, v)
	}
	return maths.Fraction(v, vf, vg), nil
}
