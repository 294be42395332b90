package cycle

import (
	"context"
	"cycle/brayton"
	"cycle/fluid"
	"cycle/rankine"
	"cycle/telemetry"
	"cycle/types"
	"cycle/wasteheat"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	_ "cycle/fluid/air"
	_ "cycle/fluid/steam"
)

// Mode 物性后端组合
type Mode string

const (
	ModeClosedForm Mode = "closed-form" // 定比热空气 + 朗肯闭式近似
	ModeTable      Mode = "table"       // 变比热空气 + IF97 水蒸气
)

// Fluids 模式对应的后端名称，蒸汽为空表示闭式近似
func (m Mode) Fluids() (gas, steam string, err error) {
	switch m {
	case ModeClosedForm:
		return "air.ideal", "", nil
	case ModeTable:
		return "air.variable", "steam.if97", nil
	}
	return "", "", fmt.Errorf("未知物性模式: %s", m)
}

// Cycle 联合循环分析器。
// 构造后只读；未设置 Debug 时可并发调用 Analyze。
type Cycle struct {
	gasName   string
	steamName string
	gas       fluid.Provider // 显式指定的燃气后端
	steam     fluid.Provider // 显式指定的蒸汽后端
	log       zerolog.Logger
	debug     types.Debug
	metrics   *telemetry.Metrics
}

// Option 构造选项
type Option func(c *Cycle) error

// WithMode 按模式选择后端
func WithMode(m Mode) Option {
	return func(c *Cycle) (err error) {
		c.gasName, c.steamName, err = m.Fluids()
		return err
	}
}

// WithFluids 按注册名称选择后端，蒸汽为空表示闭式近似
func WithFluids(gas, steam string) Option {
	return func(c *Cycle) error {
		c.gasName, c.steamName = gas, steam
		return nil
	}
}

// WithProviders 直接指定后端实例，steam 可为空
func WithProviders(gas, steam fluid.Provider) Option {
	return func(c *Cycle) error {
		if gas == nil {
			return fmt.Errorf("燃气物性后端不能为空")
		}
		c.gas, c.steam = gas, steam
		return nil
	}
}

// WithLogger 设置日志
func WithLogger(log zerolog.Logger) Option {
	return func(c *Cycle) error {
		c.log = log
		return nil
	}
}

// WithDebug 设置结果记录
func WithDebug(d types.Debug) Option {
	return func(c *Cycle) error {
		c.debug = d
		return nil
	}
}

// WithMetrics 设置运行指标
func WithMetrics(m *telemetry.Metrics) Option {
	return func(c *Cycle) error {
		c.metrics = m
		return nil
	}
}

// New 创建分析器，默认闭式模式
func New(opts ...Option) (*Cycle, error) {
	c := &Cycle{log: zerolog.Nop()}
	if err := WithMode(ModeClosedForm)(c); err != nil {
		return nil, err
	}
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	for _, name := range []string{c.gasName, c.steamName} {
		if _, err := c.fluid(name, types.DefaultUnits()); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// fluid 按名称创建后端，空名称返回 nil
func (c *Cycle) fluid(name string, units types.Units) (fluid.Provider, error) {
	if name == "" {
		return nil, nil
	}
	return fluid.NewFluid(name, units)
}

// providers 本次运行使用的后端
func (c *Cycle) providers(units types.Units) (gas, steam fluid.Provider, err error) {
	if c.gas != nil {
		if c.gas.Units() != units || (c.steam != nil && c.steam.Units() != units) {
			return nil, nil, fmt.Errorf("物性后端单位与工况不一致: %s", units.Pressure)
		}
		return c.gas, c.steam, nil
	}
	if gas, err = c.fluid(c.gasName, units); err != nil {
		return nil, nil, err
	}
	if steam, err = c.fluid(c.steamName, units); err != nil {
		return nil, nil, err
	}
	return gas, steam, nil
}

// Name 后端组合名称
func (c *Cycle) Name() string {
	gas, steam := c.gasName, c.steamName
	if c.gas != nil {
		gas, steam = c.gas.Name(), ""
		if c.steam != nil {
			steam = c.steam.Name()
		}
	}
	if steam == "" {
		steam = "rankine.closed-form"
	}
	return gas + "+" + steam
}

// Analyze 依次求解燃气循环、余热与蒸汽循环
func (c *Cycle) Analyze(ctx context.Context, spec types.CycleSpecification) (types.ResultSet, error) {
	debug := c.debug != nil && c.debug.IsDebug()
	if debug {
		c.debug.Init(spec)
	}
	start := time.Now()
	res, err := c.analyze(ctx, spec)
	c.metrics.Observe(c.Name(), res, err, time.Since(start))
	if err != nil {
		if debug {
			c.debug.Error(err)
		}
		return types.ResultSet{}, err
	}
	if debug {
		c.debug.Update(res)
	}
	return res, nil
}

func (c *Cycle) analyze(ctx context.Context, spec types.CycleSpecification) (types.ResultSet, error) {
	if err := ctx.Err(); err != nil {
		return types.ResultSet{}, err
	}
	log := c.log.With().Str("run", uuid.NewString()).Str("fluids", c.Name()).Logger()
	log.Debug().Stringer("spec", spec).Msg("开始分析")

	gas, steam, err := c.providers(spec.Units)
	if err != nil {
		return types.ResultSet{}, err
	}
	// 燃气顶循环
	br, err := brayton.NewSolver(gas).Solve(spec.Gas)
	if err != nil {
		log.Debug().Err(err).Msg("燃气循环求解失败")
		return types.ResultSet{}, fmt.Errorf("燃气循环: %w", err)
	}
	log.Debug().
		Float64("work", br.Cycle.Work()).
		Float64("efficiency", br.Cycle.Efficiency()).
		Msg("燃气循环完成")
	// 余热
	exhaust, _ := br.Cycle.State(brayton.Exhaust)
	duty, hasDuty, err := wasteheat.Link{Gas: gas}.Duty(exhaust, br.MassFlow, spec.Gas.StackTemperature)
	if err != nil {
		return types.ResultSet{}, fmt.Errorf("余热: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return types.ResultSet{}, err
	}
	// 蒸汽底循环
	rr, err := rankine.NewSolver(steam).Solve(spec.Steam)
	if err != nil {
		log.Debug().Err(err).Msg("蒸汽循环求解失败")
		return types.ResultSet{}, fmt.Errorf("蒸汽循环: %w", err)
	}
	log.Debug().
		Float64("work", rr.Work()).
		Float64("efficiency", rr.Efficiency()).
		Bool("approximate", rr.Approximate()).
		Msg("蒸汽循环完成")

	return types.NewResultSet(types.ResultValue{
		Gas:          br.Cycle,
		Steam:        rr,
		WasteHeat:    duty,
		HasWasteHeat: hasDuty,
		MassFlow:     br.MassFlow,
		Mode:         c.Name(),
	}), nil
}
