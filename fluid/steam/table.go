package steam

import (
	"cycle/fluid"
	"cycle/maths"
	"cycle/types"
	"math"
)

// TableName 饱和表后端名称
var TableName = fluid.AddFluid("steam.table", func(units types.Units) (fluid.Provider, error) {
	return NewTable(units, TableSize)
})

// TableSize 饱和表默认节点数
var TableSize = 200

// Table 饱和线查表后端。
// 构造时在对数压力网格上预计算 IF97 饱和性质并做保单调插值，
// 单相查询直接使用 IF97 方程。构造后只读。
type Table struct {
	*IF97
	lo, hi float64      // 网格压力范围 MPa
	tsat   *maths.Curve // ln p → T_sat
	hf, sf *maths.Curve // 饱和液
	hg, sg *maths.Curve // 饱和汽
}

// NewTable 按 n 个节点建表
func NewTable(units types.Units, n int) (*Table, error) {
	if n < 3 {
		return nil, types.InvalidInput("table_size", float64(n))
	}
	w := NewIF97(units)
	ps := maths.LogGrid(minSaturationP, maxSaturationP, n)
	// 端点取精确值，避免对数往返误差越界
	ps[0], ps[n-1] = minSaturationP, maxSaturationP
	xs := make([]float64, n)
	cols := make([][]float64, 5)
	for i := range cols {
		cols[i] = make([]float64, n)
	}
	for i, p := range ps {
		xs[i] = math.Log(p)
		Ts := SaturationTemperature(p)
		hf, sf := Region1(Ts, p)
		hg, sg := Region2(Ts, p)
		cols[0][i], cols[1][i], cols[2][i], cols[3][i], cols[4][i] = Ts, hf, sf, hg, sg
	}
	t := &Table{IF97: w, lo: ps[0], hi: ps[n-1]}
	var err error
	names := []string{"saturation_temperature", "enthalpy", "entropy", "enthalpy", "entropy"}
	curves := []**maths.Curve{&t.tsat, &t.hf, &t.sf, &t.hg, &t.sg}
	for i, c := range curves {
		if *c, err = maths.NewCurve(names[i], xs, cols[i]); err != nil {
			return nil, err
		}
	}
	return t, nil
}

func (t *Table) Name() string { return TableName }

// at 按压力查表，p 单位 MPa
func (t *Table) at(c *maths.Curve, p float64) (float64, error) {
	if p < t.lo || p > t.hi || math.IsNaN(p) {
		return 0, types.OutOfDomain("saturation_pressure", t.units.FromMPa(p))
	}
	return c.At(math.Log(p))
}

// saturation 插值饱和边界值
func (t *Table) saturation(p float64) (hf, sf, hg, sg float64, err error) {
	if hf, err = t.at(t.hf, p); err != nil {
		return
	}
	if sf, err = t.at(t.sf, p); err != nil {
		return
	}
	if hg, err = t.at(t.hg, p); err != nil {
		return
	}
	sg, err = t.at(t.sg, p)
	return
}

// Saturation 饱和液（x=0）或饱和汽（x=1）的 h、s
func (t *Table) Saturation(p, x float64) (h, s float64, err error) {
	hf, sf, hg, sg, err := t.saturation(t.units.ToMPa(p))
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

// QualityFromS 由熵求干度
func (t *Table) QualityFromS(s, p float64) (float64, error) {
	_, sf, _, sg, err := t.saturation(t.units.ToMPa(p))
	if err != nil {
		return 0, err
	}
	return quality(s, sf, sg, "entropy")
}

// QualityFromH 由焓求干度
func (t *Table) QualityFromH(h, p float64) (float64, error) {
	hf, _, hg, _, err := t.saturation(t.units.ToMPa(p))
	if err != nil {
		return 0, err
	}
	return quality(h, hf, hg, "enthalpy")
}

// SaturationTemperature 查表饱和温度
func (t *Table) SaturationTemperature(p float64) (float64, error) {
	return t.at(t.tsat, t.units.ToMPa(p))
}

// SaturationPressure 由插值曲线反解饱和压力
func (t *Table) SaturationPressure(T float64) (float64, error) {
	lnp, err := t.root.Invert(t.tsat.At, T, math.Log(t.lo), math.Log(t.hi), "saturation_temperature")
	if err != nil {
		return 0, err
	}
	return t.units.FromMPa(math.Exp(lnp)), nil
}
