package cycle

import (
	"context"
	"cycle/types"
	"fmt"
	"runtime"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"
)

// paramList 可扫描参数
var paramList = map[string]func(s *types.CycleSpecification, v float64){
	"pressure_ratio":            func(s *types.CycleSpecification, v float64) { s.Gas.PressureRatio = v },
	"inlet_temperature":         func(s *types.CycleSpecification, v float64) { s.Gas.InletTemperature = v },
	"turbine_inlet_temperature": func(s *types.CycleSpecification, v float64) { s.Gas.TurbineInletT = v },
	"compressor_efficiency":     func(s *types.CycleSpecification, v float64) { s.Gas.CompressorEff = v },
	"turbine_efficiency":        func(s *types.CycleSpecification, v float64) { s.Gas.TurbineEff = v },
	"fuel_mass_flow":            func(s *types.CycleSpecification, v float64) { s.Gas.Combustion.MassFlow = v },
	"stack_temperature":         func(s *types.CycleSpecification, v float64) { s.Gas.StackTemperature = v },
	"boiler_pressure":           func(s *types.CycleSpecification, v float64) { s.Steam.BoilerPressure = v },
	"boiler_temperature":        func(s *types.CycleSpecification, v float64) { s.Steam.BoilerTemperature = v },
	"condenser_pressure":        func(s *types.CycleSpecification, v float64) { s.Steam.CondenserPressure = v },
	"condenser_temperature":     func(s *types.CycleSpecification, v float64) { s.Steam.CondenserTemperature = v },
	"steam_turbine_efficiency":  func(s *types.CycleSpecification, v float64) { s.Steam.TurbineEff = v },
}

// SweepParams 可扫描参数名称（排序）
func SweepParams() []string {
	names := make([]string, 0, len(paramList))
	for name := range paramList {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Sweep 对单一参数并行扫描，结果与 values 顺序一致。
// 任一工况失败即取消其余工况并返回该错误。
func (c *Cycle) Sweep(ctx context.Context, spec types.CycleSpecification, param string, values []float64) ([]types.ResultSet, error) {
	set, ok := paramList[param]
	if !ok {
		return nil, fmt.Errorf("未知扫描参数: %s", param)
	}
	debug := c.debug != nil && c.debug.IsDebug()
	if debug {
		c.debug.Init(spec)
	}
	results := make([]types.ResultSet, len(values))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, v := range values {
		run := spec
		set(&run, v)
		g.Go(func() error {
			start := time.Now()
			res, err := c.analyze(ctx, run)
			c.metrics.Observe(c.Name(), res, err, time.Since(start))
			if err != nil {
				return fmt.Errorf("%s=%g: %w", param, v, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		if debug {
			c.debug.Error(err)
		}
		return nil, err
	}
	if debug {
		for _, res := range results {
			c.debug.Update(res)
		}
	}
	return results, nil
}
