package maths

import (
	"cycle/types"
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// Curve 一元单调插值曲线（Fritsch-Butland 保单调三次插值）
type Curve struct {
	name string
	lo   float64
	hi   float64
	fit  interp.FritschButland
}

// NewCurve 拟合曲线，xs 必须严格递增
func NewCurve(name string, xs, ys []float64) (*Curve, error) {
	if len(xs) != len(ys) || len(xs) < 3 {
		return nil, fmt.Errorf("插值曲线 %s 数据点不足: %d/%d", name, len(xs), len(ys))
	}
	if floats.HasNaN(xs) || !isIncreasing(xs) {
		return nil, fmt.Errorf("插值曲线 %s 自变量非严格递增", name)
	}
	c := &Curve{name: name, lo: xs[0], hi: xs[len(xs)-1]}
	if err := c.fit.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("插值曲线 %s 拟合失败: %w", name, err)
	}
	return c, nil
}

// At 求值，超出拟合区间返回 OutOfDomain
func (c *Curve) At(x float64) (float64, error) {
	if x < c.lo || x > c.hi {
		return 0, types.OutOfDomain(c.name, x)
	}
	return c.fit.Predict(x), nil
}

// Range 拟合区间
func (c *Curve) Range() (lo, hi float64) { return c.lo, c.hi }

func isIncreasing(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			return false
		}
	}
	return true
}

// LogGrid 对数等距网格
func LogGrid(lo, hi float64, n int) []float64 {
	return floats.LogSpan(make([]float64, n), lo, hi)
}

// Grid 线性等距网格
func Grid(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}
