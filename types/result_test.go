package types

import (
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func testCycle() CycleResult {
	return NewCycleResult(CycleValue{
		Kind: Brayton,
		States: []ThermodynamicState{
			{Label: "1", T: 300},
			{Label: "2", T: 586},
			{Label: "3", T: 1200},
			{Label: "4", T: 727},
		},
		Isentropic:  []ThermodynamicState{{Label: "2s", T: 543}},
		Expansion:   473,
		Compression: 286,
		Heat:        617,
	})
}

func TestCycleResult(t *testing.T) {
	r := testCycle()
	if r.Work() != 187 || r.Efficiency() != 187.0/617 || r.Kind() != Brayton {
		t.Errorf("净功或效率不正确 %v %v", r.Work(), r.Efficiency())
	}
	poly := r.Polygon()
	if len(poly) != 5 || poly[4] != poly[0] {
		t.Errorf("多边形未闭合 %v", poly)
	}
	if s, ok := r.State("2s"); !ok || s.T != 543 {
		t.Errorf("等熵点查找失败 %v", s)
	}
	if _, ok := r.State("9"); ok {
		t.Errorf("不存在的标记不应找到")
	}
	states := r.States()
	states[0].T = 0
	if r.States()[0].T != 300 {
		t.Errorf("States 应返回副本")
	}
	if (CycleResult{}).Polygon() != nil || NewCycleResult(CycleValue{}).Efficiency() != 0 {
		t.Errorf("空结果处理不正确")
	}
	if Rankine.String() != "Rankine" || CycleKind(0).String() != "Unknown" {
		t.Errorf("循环名称不正确")
	}
}

func TestResultSet(t *testing.T) {
	rs := NewResultSet(ResultValue{Gas: testCycle(), WasteHeat: 12, HasWasteHeat: true, MassFlow: 51, Mode: "air.ideal"})
	if duty, ok := rs.WasteHeatDuty(); !ok || duty != 12 {
		t.Errorf("余热不正确 %v", duty)
	}
	if rs.MassFlow() != 51 || rs.Mode() != "air.ideal" || rs.Gas().Work() != 187 {
		t.Errorf("结果集字段不正确")
	}
}

func TestState(t *testing.T) {
	s := ThermodynamicState{Label: "4", P: 10, T: 318.96, H: 2339.26, S: 7.38}
	if _, ok := s.Quality(); ok {
		t.Errorf("单相状态不应有干度")
	}
	w := s.WithQuality(0.9)
	if x, ok := w.Quality(); !ok || x != 0.9 || s.TwoPhase {
		t.Errorf("WithQuality 应返回副本 %v", w)
	}
	if w.String() != "4(p=10 T=318.96 h=2339.26 s=7.3800 x=0.9000)" {
		t.Errorf("描述不正确 %s", w)
	}
}

func TestDefaultSpecification(t *testing.T) {
	spec := DefaultSpecification()
	if spec.Gas.AirFlow() != 50 {
		t.Errorf("空气流量应为空燃比乘燃料流量 %v", spec.Gas.AirFlow())
	}
	spec.Gas.AirMassFlow = 20
	if spec.Gas.AirFlow() != 20 {
		t.Errorf("显式空气流量应优先")
	}
	if spec.Units.Pressure != KPa || spec.Steam.CondenserTemperature != DefaultCondenserT {
		t.Errorf("默认工况不正确 %s", spec)
	}
}

func TestDefaultSpecificationIn(t *testing.T) {
	spec := DefaultSpecificationIn(Units{Pressure: MPa})
	if spec.Units.Pressure != MPa || !scalar.EqualWithinRel(spec.Gas.InletPressure, 0.101325, 1e-12) || spec.Steam.BoilerPressure != 4 {
		t.Errorf("默认压力未换算 %s", spec)
	}
	if spec.Gas.TurbineInletT != DefaultTurbineInletT || spec.Steam.CondenserTemperature != DefaultCondenserT {
		t.Errorf("温度不应随压力单位变化 %s", spec)
	}
}
