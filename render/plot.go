package render

import (
	"cycle/types"
	"fmt"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// 图片尺寸
var (
	PlotWidth  = 6 * vg.Inch
	PlotHeight = 4 * vg.Inch
)

// Plot 绘制循环状态图，format 为 png、svg、pdf 等
func Plot(w io.Writer, d Diagram, c types.CycleResult, format string) error {
	p, err := NewPlot(d, c)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(PlotWidth, PlotHeight, format)
	if err != nil {
		return fmt.Errorf("创建 %s 图失败: %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// NewPlot 构造状态图：闭合折线、状态点标记与等熵参考点
func NewPlot(d Diagram, c types.CycleResult) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("%s Diagram (%s Cycle)", d.Name, c.Kind())
	if c.Approximate() {
		p.Title.Text += " [approximate]"
	}
	p.X.Label.Text = d.X.Label
	p.Y.Label.Text = d.Y.Label
	p.Add(plotter.NewGrid())

	poly := c.Polygon()
	if len(poly) == 0 {
		return nil, fmt.Errorf("%s 循环没有状态点", c.Kind())
	}
	xys := toXYs(d.Points(poly))
	line, points, err := plotter.NewLinePoints(xys)
	if err != nil {
		return nil, err
	}
	line.Color = plotutil.Color(0)
	points.Color = plotutil.Color(0)
	points.Shape = plotutil.Shape(0)
	p.Add(line, points)
	p.Legend.Add(c.Kind().String(), line, points)

	// 状态点标记，不含闭合点
	states := poly[:len(poly)-1]
	labels, err := plotter.NewLabels(plotter.XYLabels{XYs: xys[:len(states)], Labels: labelsOf(states)})
	if err != nil {
		return nil, err
	}
	p.Add(labels)

	if iso := c.Isentropic(); len(iso) > 0 {
		scatter, err := plotter.NewScatter(toXYs(d.Points(iso)))
		if err != nil {
			return nil, err
		}
		scatter.Color = plotutil.Color(1)
		scatter.Shape = plotutil.Shape(1)
		p.Add(scatter)
		p.Legend.Add("isentropic", scatter)
	}
	return p, nil
}

func toXYs(pts [][2]float64) plotter.XYs {
	xys := make(plotter.XYs, len(pts))
	for i, pt := range pts {
		xys[i].X, xys[i].Y = pt[0], pt[1]
	}
	return xys
}

func labelsOf(states []types.ThermodynamicState) []string {
	labels := make([]string, len(states))
	for i, s := range states {
		labels[i] = s.Label
	}
	return labels
}
