package render

import (
	"cycle/types"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	echarts "github.com/go-echarts/go-echarts/v2/types"
)

// Charts 状态图与效率曲线页面
type Charts struct {
	Record
}

// diagramChart 状态图，坐标轴均为数值轴
func diagramChart(d Diagram, title, subtitle string) *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: echarts.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    title,
			Subtitle: subtitle,
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "item",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithXAxisOpts(opts.XAxis{
			Name:  d.X.Label,
			Type:  "value",
			Scale: opts.Bool(true),
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Name:  d.Y.Label,
			Type:  "value",
			Scale: opts.Bool(true),
		}),
	)
	return line
}

// addCycle 添加一个循环的闭合折线
func addCycle(line *charts.Line, d Diagram, name string, c Cycle) {
	data := make([]opts.LineData, len(c.Polygon))
	for i, pt := range d.Points(c.Polygon) {
		data[i] = opts.LineData{Name: c.Polygon[i].Label, Value: []float64{pt[0], pt[1]}}
	}
	line.AddSeries(name, data,
		charts.WithLabelOpts(opts.Label{
			Show:      opts.Bool(true),
			Position:  "top",
			Formatter: "{b}",
		}),
	)
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	if len(c.Runs) == 0 {
		return fmt.Errorf("没有可绘制的结果")
	}
	lineGas := diagramChart(THDiagram, "T-h Diagram", "Brayton Cycle")
	lineSteam := diagramChart(HSDiagram, "h-s Diagram", "Rankine Cycle")
	for i, run := range c.Runs {
		addCycle(lineGas, THDiagram, fmt.Sprintf("Brayton #%d", i+1), run.Gas)
		name := fmt.Sprintf("Rankine #%d", i+1)
		if run.Steam.Approximate {
			name += " (approx)"
		}
		addCycle(lineSteam, HSDiagram, name, run.Steam)
	}
	// 效率信息
	lineE := charts.NewLine()
	lineE.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: echarts.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "热效率",
			Subtitle: "各工况燃气与蒸汽循环热效率",
		}),
		charts.WithTooltipOpts(opts.Tooltip{
			Show:    opts.Bool(true),
			Trigger: "axis",
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
		charts.WithAnimation(true),
	)
	{
		x := make([]string, len(c.Runs))
		gas := make([]opts.LineData, len(c.Runs))
		steam := make([]opts.LineData, len(c.Runs))
		for i, run := range c.Runs {
			x[i] = fmt.Sprintf("#%d", i+1)
			gas[i].Value = run.Gas.Efficiency
			steam[i].Value = run.Steam.Efficiency
		}
		lineE.SetXAxis(x).
			AddSeries(types.Brayton.String(), gas).
			AddSeries(types.Rankine.String(), steam)
	}
	// 构建界面
	page := components.NewPage()
	page.AddCharts(
		lineGas,
		lineSteam,
		lineE,
	)
	return page.Render(w)
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
