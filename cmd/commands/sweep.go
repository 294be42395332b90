package commands

import (
	"cycle"
	"cycle/maths"
	"cycle/render"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSweepCommand(o *options) *cobra.Command {
	var (
		param    string
		from, to float64
		steps    int
		values   []float64
		html     string
	)
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "单参数并行扫描",
		Long:  "对单一参数取一组值并行求解，结果按取值顺序输出。\n\n可扫描参数: " + strings.Join(cycle.SweepParams(), ", "),
		Example: `  # 压比 4~20 共 9 点
  cycle sweep --param pressure_ratio --from 4 --to 20 --steps 9

  # 指定取值
  cycle sweep -m table --param boiler_temperature --values 600,700,800`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(values) == 0 {
				if steps < 2 {
					return fmt.Errorf("扫描点数至少为 2: %d", steps)
				}
				values = maths.Grid(from, to, steps)
			}
			spec, err := o.spec()
			if err != nil {
				return err
			}
			charts := &render.Charts{}
			c, err := o.cycle(cycle.WithDebug(charts))
			if err != nil {
				return err
			}
			results, err := c.Sweep(cmd.Context(), spec, param, values)
			if err != nil {
				return err
			}
			log.Info().Str("param", param).Int("points", len(results)).Msg("扫描完成")

			if o.json {
				return charts.Record.Render(cmd.OutOrStdout())
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "%s\tgas work\tgas eff\tsteam work\tsteam eff\twaste heat\n", param)
			for i, res := range results {
				duty := "-"
				if d, ok := res.WasteHeatDuty(); ok {
					duty = fmt.Sprintf("%.2f", d)
				}
				fmt.Fprintf(tw, "%g\t%.2f\t%.4f\t%.2f\t%.4f\t%s\n", values[i],
					res.Gas().Work(), res.Gas().Efficiency(),
					res.Steam().Work(), res.Steam().Efficiency(), duty)
			}
			if err := tw.Flush(); err != nil {
				return err
			}
			if html != "" {
				return writeFile(html, charts.Render)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&param, "param", "p", "pressure_ratio", "扫描参数")
	cmd.Flags().Float64Var(&from, "from", 4, "起始值")
	cmd.Flags().Float64Var(&to, "to", 20, "终止值")
	cmd.Flags().IntVar(&steps, "steps", 9, "等距点数")
	cmd.Flags().Float64SliceVar(&values, "values", nil, "指定取值，覆盖 --from/--to/--steps")
	cmd.Flags().StringVar(&html, "html", "", "交互页面输出文件")
	return cmd
}
