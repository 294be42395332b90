package types

// CycleKind 循环类型
type CycleKind uint8

const (
	Brayton CycleKind = iota + 1 // 燃气顶循环
	Rankine                      // 蒸汽底循环
)

// String 循环名称
func (k CycleKind) String() string {
	switch k {
	case Brayton:
		return "Brayton"
	case Rankine:
		return "Rankine"
	}
	return "Unknown"
}

// CycleResult 单个循环的求解结果。
// 构造后不可修改，所有切片读取时返回副本。
type CycleResult struct {
	kind        CycleKind
	states      []ThermodynamicState // 按过程顺序排列的状态点
	isentropic  []ThermodynamicState // 等熵参考状态点（2s、4s）
	work        float64              // 比净功 kJ/kg
	heat        float64              // 比吸热量 kJ/kg
	efficiency  float64              // 热效率
	expansion   float64              // 膨胀比功 kJ/kg
	compression float64              // 压缩（泵）比功 kJ/kg
	approximate bool                 // 是否为闭式近似
	note        string               // 近似说明
}

// CycleValue 构造 CycleResult 的输入
type CycleValue struct {
	Kind        CycleKind
	States      []ThermodynamicState
	Isentropic  []ThermodynamicState
	Expansion   float64 // 膨胀比功
	Compression float64 // 压缩比功
	Heat        float64 // 比吸热量
	Approximate bool
	Note        string
}

// NewCycleResult 由过程数据构造结果，净功与效率在此计算
func NewCycleResult(v CycleValue) CycleResult {
	work := v.Expansion - v.Compression
	var efficiency float64
	if v.Heat != 0 {
		efficiency = work / v.Heat
	}
	return CycleResult{
		kind:        v.Kind,
		states:      append([]ThermodynamicState(nil), v.States...),
		isentropic:  append([]ThermodynamicState(nil), v.Isentropic...),
		work:        work,
		heat:        v.Heat,
		efficiency:  efficiency,
		expansion:   v.Expansion,
		compression: v.Compression,
		approximate: v.Approximate,
		note:        v.Note,
	}
}

// Kind 循环类型
func (r CycleResult) Kind() CycleKind { return r.kind }

// States 状态点副本（过程顺序，不含闭合点）
func (r CycleResult) States() []ThermodynamicState {
	return append([]ThermodynamicState(nil), r.states...)
}

// State 按标记查找状态点
func (r CycleResult) State(label string) (ThermodynamicState, bool) {
	for _, s := range r.states {
		if s.Label == label {
			return s, true
		}
	}
	for _, s := range r.isentropic {
		if s.Label == label {
			return s, true
		}
	}
	return ThermodynamicState{}, false
}

// Isentropic 等熵参考状态点副本
func (r CycleResult) Isentropic() []ThermodynamicState {
	return append([]ThermodynamicState(nil), r.isentropic...)
}

// Polygon 闭合多边形（首点重复），供图形层使用
func (r CycleResult) Polygon() []ThermodynamicState {
	if len(r.states) == 0 {
		return nil
	}
	poly := make([]ThermodynamicState, 0, len(r.states)+1)
	poly = append(poly, r.states...)
	return append(poly, r.states[0])
}

// Work 比净功
func (r CycleResult) Work() float64 { return r.work }

// HeatInput 比吸热量
func (r CycleResult) HeatInput() float64 { return r.heat }

// Efficiency 热效率
func (r CycleResult) Efficiency() float64 { return r.efficiency }

// ExpansionWork 透平比功
func (r CycleResult) ExpansionWork() float64 { return r.expansion }

// CompressionWork 压气机（泵）比功
func (r CycleResult) CompressionWork() float64 { return r.compression }

// Approximate 是否为闭式近似结果
func (r CycleResult) Approximate() bool { return r.approximate }

// Note 近似说明
func (r CycleResult) Note() string { return r.note }

// ResultSet 一次分析的完整输出，构造后不可修改
type ResultSet struct {
	gas          CycleResult
	steam        CycleResult
	wasteHeat    float64
	hasWasteHeat bool
	massFlow     float64
	mode         string
}

// ResultValue 构造 ResultSet 的输入
type ResultValue struct {
	Gas          CycleResult
	Steam        CycleResult
	WasteHeat    float64 // 余热功率 kW
	HasWasteHeat bool
	MassFlow     float64 // 燃气总质量流量 kg/s
	Mode         string  // 物性后端组合名称
}

// NewResultSet 构造结果集
func NewResultSet(v ResultValue) ResultSet {
	return ResultSet{
		gas:          v.Gas,
		steam:        v.Steam,
		wasteHeat:    v.WasteHeat,
		hasWasteHeat: v.HasWasteHeat,
		massFlow:     v.MassFlow,
		mode:         v.Mode,
	}
}

// Gas 燃气循环结果
func (r ResultSet) Gas() CycleResult { return r.gas }

// Steam 蒸汽循环结果
func (r ResultSet) Steam() CycleResult { return r.steam }

// WasteHeatDuty 余热功率（仅报告，不参与蒸汽循环计算）
func (r ResultSet) WasteHeatDuty() (float64, bool) { return r.wasteHeat, r.hasWasteHeat }

// MassFlow 燃气总质量流量
func (r ResultSet) MassFlow() float64 { return r.massFlow }

// Mode 物性后端组合名称
func (r ResultSet) Mode() string { return r.mode }
