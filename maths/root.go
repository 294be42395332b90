package maths

import (
	"cycle/types"
	"math"
)

// Func 单调前向函数 y = f(x)
type Func func(x float64) (float64, error)

// Root 有界反解器，在单调区间内求 f(x) = target。
// 采用 Illinois 修正的试位法，区间退化时回退为二分。
type Root struct {
	Tolerance     float64 // 相对收敛容差
	MaxIterations int     // 迭代上限，超出返回 ConvergenceError
}

// NewRoot 使用默认参数创建反解器
func NewRoot() Root {
	return Root{Tolerance: types.Tolerance, MaxIterations: types.MaxIterations}
}

// Invert 在 [lo, hi] 上求 f(x) = target。
// quantity 为出错时报告的物理量名称；
// 目标值不在 f(lo)、f(hi) 之间时返回 OutOfDomain。
func (r Root) Invert(f Func, target, lo, hi float64, quantity string) (float64, error) {
	if lo > hi {
		lo, hi = hi, lo
	}
	flo, err := f(lo)
	if err != nil {
		return 0, err
	}
	fhi, err := f(hi)
	if err != nil {
		return 0, err
	}
	flo -= target
	fhi -= target
	switch {
	case flo == 0:
		return lo, nil
	case fhi == 0:
		return hi, nil
	case math.Signbit(flo) == math.Signbit(fhi):
		return 0, types.OutOfDomain(quantity, target)
	}
	ytol := r.Tolerance * math.Max(1, math.Abs(target))
	side := 0
	for range r.MaxIterations {
		// 试位点
		x := (lo*fhi - hi*flo) / (fhi - flo)
		if !(x > lo && x < hi) {
			x = lo + (hi-lo)/2
		}
		fx, err := f(x)
		if err != nil {
			return 0, err
		}
		fx -= target
		if math.Abs(fx) <= ytol || hi-lo <= r.Tolerance*math.Max(1, math.Abs(x)) {
			return x, nil
		}
		if math.Signbit(fx) == math.Signbit(flo) {
			lo, flo = x, fx
			// 连续同侧时将另一端权重减半
			if side == -1 {
				fhi /= 2
			}
			side = -1
		} else {
			hi, fhi = x, fx
			if side == 1 {
				flo /= 2
			}
			side = 1
		}
	}
	return 0, types.Convergence(quantity, target)
}

// Invert 使用默认参数反解
func Invert(f Func, target, lo, hi float64, quantity string) (float64, error) {
	return NewRoot().Invert(f, target, lo, hi, quantity)
}

// Lerp 线性插值 a + t(b-a)
func Lerp(a, b, t float64) float64 { return a + t*(b-a) }

// Fraction 求 v 在 [a, b] 中的位置 (v-a)/(b-a)
func Fraction(v, a, b float64) float64 {
	if a == b {
		return 0
	}
	return (v - a) / (b - a)
}
