package load

import (
	"context"
	"cycle"
	"cycle/types"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

const scenarioB = `
units:
  pressure: bar
gas:
  inlet_pressure: 1.01
  inlet_temperature: 300
  pressure_ratio: 10
  compressor_efficiency: 0.85
  turbine_efficiency: 0.88
  heat_mode: firing
  turbine_inlet_temperature: 1200
  combustion:
    mass_flow: 1
    lhv: 50000
    air_fuel_ratio: 50
steam:
  boiler_pressure: 40
  boiler_temperature: 700
  condenser_pressure: 0.1
  turbine_efficiency: 0.85
`

func TestLoadString(t *testing.T) {
	spec, err := LoadString(scenarioB)
	if err != nil {
		t.Fatalf("加载失败 %s", err)
	}
	if spec.Units.Pressure != types.Bar {
		t.Errorf("压力单位不正确 %s", spec.Units.Pressure)
	}
	if spec.Gas.PressureRatio != 10 || spec.Steam.BoilerPressure != 40 || spec.Steam.CondenserPressure != 0.1 {
		t.Errorf("字段解析不正确 %s", spec)
	}
}

// 空文档取默认工况
func TestLoadDefaults(t *testing.T) {
	spec, err := LoadString("")
	if err != nil {
		t.Fatalf("加载失败 %s", err)
	}
	if !reflect.DeepEqual(spec, types.DefaultSpecification()) {
		t.Errorf("默认工况不一致 %s", spec)
	}
	spec, err = LoadString("gas:\n  pressure_ratio: 12\n")
	if err != nil {
		t.Fatalf("加载失败 %s", err)
	}
	if spec.Gas.PressureRatio != 12 || spec.Gas.TurbineInletT != types.DefaultTurbineInletT {
		t.Errorf("部分覆盖不正确 %s", spec)
	}
}

// 只给出单位时，默认压力按该单位换算
func TestLoadDefaultsInUnits(t *testing.T) {
	spec, err := LoadString("units:\n  pressure: bar\nsteam:\n  condenser_pressure: 0.1\n")
	if err != nil {
		t.Fatalf("加载失败 %s", err)
	}
	if !scalar.EqualWithinRel(spec.Gas.InletPressure, 1.01325, 1e-12) {
		t.Errorf("入口压力应为 1.01325 bar, 实际 %v", spec.Gas.InletPressure)
	}
	if !scalar.EqualWithinRel(spec.Steam.BoilerPressure, 40, 1e-12) || spec.Steam.CondenserPressure != 0.1 {
		t.Errorf("蒸汽压力不正确 %s", spec)
	}
	c, err := cycle.New(cycle.WithMode(cycle.ModeTable))
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.Analyze(context.Background(), spec); err != nil {
		t.Errorf("分析失败 %s", err)
	}
}

func TestRoundTrip(t *testing.T) {
	want, err := LoadString(scenarioB)
	if err != nil {
		t.Fatal(err)
	}
	file := filepath.Join(t.TempDir(), "spec.yaml")
	if err := ExportFile(file, want); err != nil {
		t.Fatalf("导出失败 %s", err)
	}
	got, err := LoadFile(file)
	if err != nil {
		t.Fatalf("重新加载失败 %s", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("往返不一致:\n%v\n%v", got, want)
	}
	text, err := ExportString(want)
	if err != nil || !strings.Contains(text, "pressure: bar") {
		t.Errorf("导出内容不正确 %q %v", text, err)
	}
}

func TestValidate(t *testing.T) {
	cases := map[string]string{
		"效率大于1":  "gas:\n  compressor_efficiency: 1.2\n",
		"负压力":    "gas:\n  inlet_pressure: -1\n",
		"未知加热方式": "gas:\n  heat_mode: nuclear\n",
		"负燃料流量":  "gas:\n  combustion:\n    mass_flow: -1\n",
		"缺少冷凝条件": "steam:\n  condenser_temperature: 0\n",
		"未知字段":   "gas:\n  humidity: 0.5\n",
		"未知单位":   "units:\n  pressure: psi\n",
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadString(doc); err == nil {
				t.Errorf("期望校验失败")
			}
		})
	}
}
