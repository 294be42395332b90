package commands

import (
	"context"
	"cycle"
	"cycle/load"
	"cycle/types"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

// options 全局参数
type options struct {
	specFile string // 工况文件
	mode     string // 物性模式
	gas      string // 燃气后端名称
	steam    string // 蒸汽后端名称
	json     bool   // JSON 输出
}

// Execute 执行根命令
func Execute(ctx context.Context, version string) error {
	return NewRootCommand(version).ExecuteContext(ctx)
}

// NewRootCommand 创建根命令
func NewRootCommand(version string) *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "cycle",
		Short: "Brayton/Rankine 联合循环状态点求解",
		Long: `求解燃气顶循环（压气机-燃烧室-透平）与蒸汽底循环（锅炉-汽轮机-冷凝器-泵）的状态点，
给出净功、吸热量、热效率与余热功率。

物性模式:
  closed-form  定比热空气，蒸汽循环使用闭式近似
  table        变比热空气，IAPWS-IF97 水蒸气`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVarP(&o.specFile, "config", "c", "", "工况文件 (YAML)，缺省使用默认工况")
	root.PersistentFlags().StringVarP(&o.mode, "mode", "m", string(cycle.ModeClosedForm), "物性模式: closed-form | table")
	root.PersistentFlags().StringVar(&o.gas, "gas", "", "燃气物性后端名称，覆盖 --mode")
	root.PersistentFlags().StringVar(&o.steam, "steam", "", "蒸汽物性后端名称，覆盖 --mode（none 表示闭式近似）")
	root.PersistentFlags().BoolVar(&o.json, "json", false, "以 JSON 格式输出")

	root.AddCommand(newAnalyzeCommand(o))
	root.AddCommand(newSweepCommand(o))
	root.AddCommand(newFluidsCommand())
	root.AddCommand(newInitCommand())
	return root
}

// spec 加载工况
func (o *options) spec() (types.CycleSpecification, error) {
	if o.specFile == "" {
		return types.DefaultSpecification(), nil
	}
	return load.LoadFile(o.specFile)
}

// cycle 按参数创建分析器
func (o *options) cycle(extra ...cycle.Option) (*cycle.Cycle, error) {
	opts := []cycle.Option{cycle.WithMode(cycle.Mode(o.mode)), cycle.WithLogger(log.Logger)}
	if o.gas != "" || o.steam != "" {
		gas, steam, err := cycle.Mode(o.mode).Fluids()
		if err != nil {
			return nil, err
		}
		if o.gas != "" {
			gas = o.gas
		}
		switch o.steam {
		case "":
		case "none":
			steam = ""
		default:
			steam = o.steam
		}
		opts = append(opts, cycle.WithFluids(gas, steam))
	}
	return cycle.New(append(opts, extra...)...)
}
