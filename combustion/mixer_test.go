package combustion

import (
	"cycle/types"
	"errors"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestMix(t *testing.T) {
	m := Mixer{AirFlow: 50, FuelFlow: 1, LHV: 50000}
	out, err := m.Mix(600)
	if err != nil {
		t.Fatalf("混合失败 %s", err)
	}
	want := (50*600.0 + 50000) / 51
	if !scalar.EqualWithinAbs(out.H, want, 1e-9) {
		t.Errorf("出口焓不正确: 期望 %v, 实际 %v", want, out.H)
	}
	if out.MassFlow != 51 {
		t.Errorf("总流量不正确: 期望 51, 实际 %v", out.MassFlow)
	}
}

// 无燃料时出口焓等于入口焓
func TestMixNoFuel(t *testing.T) {
	out, err := Mixer{AirFlow: 10, LHV: 50000}.Mix(586.4)
	if err != nil {
		t.Fatalf("混合失败 %s", err)
	}
	if !scalar.EqualWithinAbs(out.H, 586.4, 1e-12) {
		t.Errorf("出口焓不正确: %v", out.H)
	}
}

func TestMixInvalid(t *testing.T) {
	cases := []struct {
		name     string
		m        Mixer
		quantity string
	}{
		{"负燃料流量", Mixer{AirFlow: 50, FuelFlow: -1, LHV: 50000}, "fuel_mass_flow"},
		{"负热值", Mixer{AirFlow: 50, FuelFlow: 1, LHV: -1}, "fuel_lhv"},
		{"负空气流量", Mixer{AirFlow: -5, FuelFlow: 1, LHV: 50000}, "air_mass_flow"},
		{"零流量", Mixer{LHV: 50000}, "total_mass_flow"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := c.m.Mix(600)
			if !errors.Is(err, types.ErrInvalidInput) {
				t.Fatalf("期望 InvalidInput, 实际 %v", err)
			}
			var e *types.Error
			if !errors.As(err, &e) || e.Quantity != c.quantity {
				t.Errorf("物理量不正确: 期望 %s, 实际 %v", c.quantity, err)
			}
		})
	}
}

func TestNewMixerAirFlow(t *testing.T) {
	g := types.DefaultSpecification().Gas
	if m := NewMixer(g); m.AirFlow != g.Combustion.AirFuelRatio*g.Combustion.MassFlow {
		t.Errorf("按空燃比推算空气流量错误: %v", m.AirFlow)
	}
	g.AirMassFlow = 20
	if m := NewMixer(g); m.AirFlow != 20 {
		t.Errorf("显式空气流量未生效: %v", m.AirFlow)
	}
}
