package render

import "cycle/types"

// Axis 状态点坐标分量
type Axis struct {
	Label string
	Value func(s types.ThermodynamicState) float64
}

var (
	Temperature = Axis{"Temperature (K)", func(s types.ThermodynamicState) float64 { return s.T }}
	Enthalpy    = Axis{"Enthalpy (kJ/kg)", func(s types.ThermodynamicState) float64 { return s.H }}
	Entropy     = Axis{"Entropy (kJ/kgK)", func(s types.ThermodynamicState) float64 { return s.S }}
)

// Diagram 状态图定义
type Diagram struct {
	Name string
	X, Y Axis
}

// 燃气循环使用 T-h 图，蒸汽循环使用 h-s 图
var (
	THDiagram = Diagram{Name: "T-h", X: Enthalpy, Y: Temperature}
	HSDiagram = Diagram{Name: "h-s", X: Entropy, Y: Enthalpy}
)

// DiagramFor 按循环类型选择状态图
func DiagramFor(kind types.CycleKind) Diagram {
	if kind == types.Rankine {
		return HSDiagram
	}
	return THDiagram
}

// Points 状态点在图上的坐标
func (d Diagram) Points(states []types.ThermodynamicState) [][2]float64 {
	pts := make([][2]float64, len(states))
	for i, s := range states {
		pts[i] = [2]float64{d.X.Value(s), d.Y.Value(s)}
	}
	return pts
}
