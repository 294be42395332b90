package rankine

import (
	"cycle/fluid"
	"cycle/fluid/steam"
	"cycle/types"
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

var bar = types.Units{Pressure: types.Bar}

// 蒸汽侧工况 B：40 bar / 700 K，冷凝 0.1 bar
func scenarioB() types.SteamSpec {
	return types.SteamSpec{
		BoilerPressure:    40,
		BoilerTemperature: 700,
		CondenserPressure: 0.1,
		TurbineEff:        0.85,
	}
}

func TestScenarioB(t *testing.T) {
	res, err := NewSolver(steam.NewIF97(bar)).Solve(scenarioB())
	if err != nil {
		t.Fatalf("求解失败 %s", err)
	}
	s3, _ := res.State(Live)
	s4, _ := res.State(Exhaust)
	if !(s3.H > s4.H) {
		t.Errorf("h3 应大于 h4: %v / %v", s3.H, s4.H)
	}
	if eta := res.Efficiency(); !(eta > 0 && eta < 1) {
		t.Errorf("效率越界 %v", eta)
	}
	// IF97 计算值
	checks := []struct {
		name      string
		got, want float64
	}{
		{"h3", s3.H, 3277.33},
		{"h4", s4.H, 2339.26},
		{"净功", res.Work(), 938.08},
		{"效率", res.Efficiency(), 0.30403},
	}
	for _, c := range checks {
		if !scalar.EqualWithinRel(c.got, c.want, 1e-4) {
			t.Errorf("%s 不正确: 期望 %v, 实际 %v", c.name, c.want, c.got)
		}
	}
	if len(res.States()) != 3 || res.Approximate() {
		t.Errorf("无泵时应为 [1,3,4] 且非近似: %v", res.States())
	}
	// 实际排汽仍在两相区，熵由 (h4,p) 反解
	if x, ok := s4.Quality(); !ok || x <= 0 || x >= 1 {
		t.Errorf("排汽干度不正确 %v", s4)
	}
	if s4.S <= s3.S {
		t.Errorf("不可逆膨胀熵应增加: s3=%v s4=%v", s3.S, s4.S)
	}
}

// 干度插值：x ∈ [0,1] 且 h4s 为线性插值
func TestQualityLaw(t *testing.T) {
	w := steam.NewIF97(bar)
	r := NewSolver(w)
	hf, sf, _ := w.Saturation(0.1, 0)
	hg, sg, _ := w.Saturation(0.1, 1)
	for _, Tb := range []float64{560, 600, 700, 800} {
		spec := scenarioB()
		spec.BoilerTemperature = Tb
		res, err := r.Solve(spec)
		if err != nil {
			t.Fatalf("Tb=%g 求解失败 %s", Tb, err)
		}
		s4s, ok := res.State(Exhaust0)
		x, two := s4s.Quality()
		if !ok || !two || x < 0 || x > 1 {
			t.Fatalf("Tb=%g 等熵终点干度越界 %v", Tb, s4s)
		}
		s3, _ := res.State(Live)
		if !scalar.EqualWithinAbs(x, (s3.S-sf)/(sg-sf), 1e-12) {
			t.Errorf("Tb=%g 干度不正确 %v", Tb, x)
		}
		if !scalar.EqualWithinAbs(s4s.H, hf+x*(hg-hf), 1e-9) {
			t.Errorf("Tb=%g h4s 不是线性插值 %v", Tb, s4s.H)
		}
	}
}

func TestQualityOutOfRange(t *testing.T) {
	r := NewSolver(steam.NewIF97(bar))
	cases := []struct {
		name string
		pb   float64
		Tb   float64
	}{
		{"熵高于饱和汽", 0.2, 1000}, // 低压高温过热汽
		{"熵低于饱和水", 40, 300},   // 锅炉出口为压缩水
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := scenarioB()
			spec.BoilerPressure, spec.BoilerTemperature = c.pb, c.Tb
			_, err := r.Solve(spec)
			if !errors.Is(err, types.ErrOutOfRange) {
				t.Errorf("期望 OutOfRange, 实际 %v", err)
			}
		})
	}
}

// 给水泵：泵功约为 v·Δp
func TestPump(t *testing.T) {
	spec := scenarioB()
	spec.PumpEff = 1
	res, err := NewSolver(steam.NewIF97(bar)).Solve(spec)
	if err != nil {
		t.Fatalf("求解失败 %s", err)
	}
	if len(res.States()) != 4 {
		t.Fatalf("带泵时应为 [1,2,3,4]: %v", res.States())
	}
	s1, _ := res.State(Condensate)
	s2, _ := res.State(Feed)
	s3, _ := res.State(Live)
	s4, _ := res.State(Exhaust)
	pump := s2.H - s1.H
	if !scalar.EqualWithinAbs(pump, 0.0010103*(4000-10), 0.05) {
		t.Errorf("泵功不正确 %v", pump)
	}
	if !scalar.EqualWithinAbs(res.Work(), (s3.H-s4.H)-pump, 1e-9) {
		t.Errorf("净功未扣除泵功 %v", res.Work())
	}
	if !scalar.EqualWithinAbs(res.HeatInput(), s3.H-s2.H, 1e-9) {
		t.Errorf("吸热量应从泵出口计 %v", res.HeatInput())
	}
	if !scalar.EqualWithinAbs(s2.S, s1.S, 1e-8) {
		t.Errorf("等熵泵出口熵不等于入口熵 %v / %v", s2.S, s1.S)
	}
}

// 冷凝压力由冷凝温度按饱和线推算
func TestCondenserTemperature(t *testing.T) {
	want, err := NewSolver(steam.NewIF97(bar)).Solve(scenarioB())
	if err != nil {
		t.Fatalf("求解失败 %s", err)
	}
	for _, w := range []fluid.Provider{steam.NewIF97(bar), mustTable(t)} {
		r := NewSolver(w)
		spec := scenarioB()
		spec.CondenserPressure, spec.CondenserTemperature = 0, 318.957
		pc, err := r.CondenserPressure(spec)
		if err != nil {
			t.Fatalf("%s 推算冷凝压力失败 %s", w.Name(), err)
		}
		if !scalar.EqualWithinRel(pc, 0.1, 1e-4) {
			t.Errorf("%s 冷凝压力不正确 %v", w.Name(), pc)
		}
		res, err := r.Solve(spec)
		if err != nil {
			t.Fatalf("%s 求解失败 %s", w.Name(), err)
		}
		if !scalar.EqualWithinRel(res.Efficiency(), want.Efficiency(), 1e-3) {
			t.Errorf("%s 效率不一致: 期望 %v, 实际 %v", w.Name(), want.Efficiency(), res.Efficiency())
		}
	}
}

func mustTable(t *testing.T) *steam.Table {
	t.Helper()
	tab, err := steam.NewTable(bar, steam.TableSize)
	if err != nil {
		t.Fatal(err)
	}
	return tab
}

func TestFallback(t *testing.T) {
	spec := types.DefaultSpecification().Steam
	res, err := NewSolver(nil).Solve(spec)
	if err != nil {
		t.Fatalf("求解失败 %s", err)
	}
	if !res.Approximate() || res.Note() == "" {
		t.Errorf("闭式近似必须标记")
	}
	hf := 4.18 * (313 - 273)
	h4 := 2800 - 0.85*(2800-(hf+0.7*(2800-hf)))
	if !scalar.EqualWithinAbs(res.Work(), 2800-h4, 1e-9) {
		t.Errorf("净功不正确: 期望 %v, 实际 %v", 2800-h4, res.Work())
	}
	if !scalar.EqualWithinAbs(res.HeatInput(), 2800-hf, 1e-9) {
		t.Errorf("吸热量不正确: 期望 %v, 实际 %v", 2800-hf, res.HeatInput())
	}
	if res.Note() != ApproximateNote {
		t.Errorf("无泵时说明不正确 %q", res.Note())
	}
	spec.PumpEff = 0.8
	pumped, err := NewSolver(nil).Solve(spec)
	if err != nil {
		t.Fatalf("求解失败 %s", err)
	}
	if pumped.Note() != ApproximateNote+PumpIgnoredNote || pumped.Work() != res.Work() {
		t.Errorf("给定泵效率时应注明泵功被忽略 %q", pumped.Note())
	}
	spec.CondenserTemperature = 0
	if _, err := NewSolver(nil).Solve(spec); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("缺少冷凝温度应返回 InvalidInput, 实际 %v", err)
	}
}

// 透平效率为 1 时实际排汽与等熵排汽重合
func TestIsentropicLimit(t *testing.T) {
	for _, w := range []fluid.Provider{steam.NewIF97(bar), mustTable(t)} {
		spec := scenarioB()
		spec.TurbineEff = 1
		res, err := NewSolver(w).Solve(spec)
		if err != nil {
			t.Fatalf("%s 求解失败 %s", w.Name(), err)
		}
		s4, _ := res.State(Exhaust)
		s4s, _ := res.State(Exhaust0)
		x4, ok4 := s4.Quality()
		x4s, ok4s := s4s.Quality()
		if !ok4 || !ok4s || s4.P != spec.CondenserPressure {
			t.Fatalf("%s 排汽应位于冷凝压力下的两相区 %v %v", w.Name(), s4, s4s)
		}
		if !scalar.EqualWithinRel(s4.H, s4s.H, 1e-9) || !scalar.EqualWithinAbs(s4.S, s4s.S, 1e-9) || !scalar.EqualWithinAbs(x4, x4s, 1e-9) {
			t.Errorf("%s 期望 %v, 实际 %v", w.Name(), s4s, s4)
		}
	}
}

func TestInvalidEfficiency(t *testing.T) {
	r := NewSolver(steam.NewIF97(bar))
	for _, mod := range []func(*types.SteamSpec){
		func(s *types.SteamSpec) { s.TurbineEff = 0 },
		func(s *types.SteamSpec) { s.TurbineEff = 1.1 },
		func(s *types.SteamSpec) { s.PumpEff = -0.1 },
	} {
		spec := scenarioB()
		mod(&spec)
		if _, err := r.Solve(spec); !errors.Is(err, types.ErrInvalidInput) {
			t.Errorf("期望 InvalidInput, 实际 %v", err)
		}
	}
}
