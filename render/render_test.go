package render

import (
	"bytes"
	"cycle/types"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

// sample 手工构造的结果集
func sample() types.ResultSet {
	gas := types.NewCycleResult(types.CycleValue{
		Kind: types.Brayton,
		States: []types.ThermodynamicState{
			{Label: "1", P: 101.325, T: 300, H: 301.5, S: 0.0067},
			{Label: "2", P: 810.6, T: 586.4, H: 589.3, S: 0.0877},
			{Label: "3", P: 810.6, T: 1200, H: 1206, S: 0.8080},
			{Label: "4", P: 101.325, T: 727, H: 730.6, S: 0.8995},
		},
		Isentropic: []types.ThermodynamicState{
			{Label: "2s", P: 810.6, T: 543.4, H: 546.2, S: 0.0067},
			{Label: "4s", P: 101.325, T: 662.5, H: 665.8, S: 0.8080},
		},
		Expansion:   475.4,
		Compression: 287.8,
		Heat:        616.7,
	})
	steam := types.NewCycleResult(types.CycleValue{
		Kind: types.Rankine,
		States: []types.ThermodynamicState{
			{Label: "1", T: 313, H: 167.2, S: 0.5},
			{Label: "3", T: 773, H: 2800, S: 6.5},
			{Label: "4", T: 313, H: 2128.6, S: 7.0},
		},
		Expansion:   671.4,
		Heat:        2632.8,
		Approximate: true,
		Note:        "closed form",
	})
	return types.NewResultSet(types.ResultValue{
		Gas:          gas,
		Steam:        steam,
		WasteHeat:    16677,
		HasWasteHeat: true,
		MassFlow:     51,
		Mode:         "air.ideal+rankine.closed-form",
	})
}

func TestRecord(t *testing.T) {
	var rec Record
	var d types.Debug = &rec
	d.Init(types.DefaultSpecification())
	d.Update(sample())
	d.Update(sample())
	d.Error(errors.New("boom"))

	var buf bytes.Buffer
	if err := d.Render(&buf); err != nil {
		t.Fatalf("输出失败 %s", err)
	}
	var got Record
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("解析输出失败 %s", err)
	}
	if len(got.Runs) != 2 || len(got.Errors) != 1 {
		t.Fatalf("记录数量不正确 %d/%d", len(got.Runs), len(got.Errors))
	}
	run := got.Runs[0]
	if len(run.Gas.Polygon) != 5 || run.Gas.Polygon[0] != run.Gas.Polygon[4] {
		t.Errorf("燃气多边形未闭合 %v", run.Gas.Polygon)
	}
	if run.WasteHeat == nil || *run.WasteHeat != 16677 {
		t.Errorf("余热记录不正确 %v", run.WasteHeat)
	}
	if !run.Steam.Approximate || run.Steam.Note == "" {
		t.Errorf("近似标记丢失")
	}
	if got.Spec.Units.Pressure != types.KPa {
		t.Errorf("工况记录不正确 %v", got.Spec.Units)
	}
}

func TestCharts(t *testing.T) {
	c := &Charts{}
	c.Init(types.DefaultSpecification())
	var buf bytes.Buffer
	if err := c.Render(&buf); err == nil {
		t.Errorf("无结果时应返回错误")
	}
	c.Update(sample())
	buf.Reset()
	if err := c.Render(&buf); err != nil {
		t.Fatalf("输出失败 %s", err)
	}
	html := buf.String()
	for _, want := range []string{"T-h Diagram", "h-s Diagram", "Brayton #1", "Rankine #1 (approx)"} {
		if !strings.Contains(html, want) {
			t.Errorf("页面缺少 %q", want)
		}
	}
}

func TestPlot(t *testing.T) {
	res := sample()
	for _, c := range []types.CycleResult{res.Gas(), res.Steam()} {
		var buf bytes.Buffer
		if err := Plot(&buf, DiagramFor(c.Kind()), c, "png"); err != nil {
			t.Fatalf("%s 绘图失败 %s", c.Kind(), err)
		}
		if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
			t.Errorf("%s 输出不是 PNG", c.Kind())
		}
	}
	if err := Plot(&bytes.Buffer{}, THDiagram, types.CycleResult{}, "png"); err == nil {
		t.Errorf("空结果应返回错误")
	}
}

func TestDiagramPoints(t *testing.T) {
	pts := HSDiagram.Points(sample().Steam().Polygon())
	if len(pts) != 4 || pts[1] != [2]float64{6.5, 2800} {
		t.Errorf("h-s 坐标不正确 %v", pts)
	}
	if DiagramFor(types.Brayton).Name != "T-h" || DiagramFor(types.Rankine).Name != "h-s" {
		t.Errorf("状态图选择不正确")
	}
}

func TestSummary(t *testing.T) {
	var buf bytes.Buffer
	if err := Summary(&buf, sample()); err != nil {
		t.Fatal(err)
	}
	text := buf.String()
	for _, want := range []string{
		"Net Work Output    = 187.60 kJ/kg",
		"Turbine Work       = 671.40 kJ/kg",
		"Waste Heat Duty",
		"Note: closed form",
		"2s(",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("摘要缺少 %q:\n%s", want, text)
		}
	}
}
