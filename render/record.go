package render

import (
	"cycle/types"
	"encoding/json"
	"io"

	"github.com/rs/zerolog/log"
)

// Cycle 单个循环的记录
type Cycle struct {
	Kind        string                     `json:"kind"`
	Polygon     []types.ThermodynamicState `json:"polygon"`              // 闭合状态点序列
	Isentropic  []types.ThermodynamicState `json:"isentropic,omitempty"` // 等熵参考点
	Work        float64                    `json:"work"`
	HeatInput   float64                    `json:"heat_input"`
	Efficiency  float64                    `json:"efficiency"`
	Approximate bool                       `json:"approximate,omitempty"`
	Note        string                     `json:"note,omitempty"`
}

// Run 一次分析的记录
type Run struct {
	Mode      string   `json:"mode"`
	Gas       Cycle    `json:"gas"`
	Steam     Cycle    `json:"steam"`
	WasteHeat *float64 `json:"waste_heat,omitempty"` // 余热功率 kW
	MassFlow  float64  `json:"mass_flow"`
}

// NewCycle 转换循环结果
func NewCycle(c types.CycleResult) Cycle {
	return Cycle{
		Kind:        c.Kind().String(),
		Polygon:     c.Polygon(),
		Isentropic:  c.Isentropic(),
		Work:        c.Work(),
		HeatInput:   c.HeatInput(),
		Efficiency:  c.Efficiency(),
		Approximate: c.Approximate(),
		Note:        c.Note(),
	}
}

// NewRun 转换结果集
func NewRun(res types.ResultSet) Run {
	run := Run{
		Mode:     res.Mode(),
		Gas:      NewCycle(res.Gas()),
		Steam:    NewCycle(res.Steam()),
		MassFlow: res.MassFlow(),
	}
	if duty, ok := res.WasteHeatDuty(); ok {
		run.WasteHeat = &duty
	}
	return run
}

// Record 记录分析历史
type Record struct {
	Spec   types.CycleSpecification `json:"spec"`             // 基准工况
	Runs   []Run                    `json:"runs"`             // 结果列
	Errors []string                 `json:"errors,omitempty"` // 错误信息
}

// Init 初始化
func (list *Record) Init(spec types.CycleSpecification) {
	list.Spec = spec
	list.Runs = list.Runs[:0]
	list.Errors = nil
}

func (Record) IsDebug() bool    { return true }
func (Record) SetDebug(is bool) {}

// Render 格式和输出内容
func (list *Record) Render(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(list)
}

// Update 记录数据
func (list *Record) Update(res types.ResultSet) {
	list.Runs = append(list.Runs, NewRun(res))
}

func (list *Record) Error(err error) {
	log.Error().Err(err).Msg("分析失败")
	list.Errors = append(list.Errors, err.Error())
}
