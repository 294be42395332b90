package commands

import (
	"context"
	"cycle"
	"cycle/load"
	"cycle/render"
	"cycle/telemetry"
	"cycle/types"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync/atomic"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

func newAnalyzeCommand(o *options) *cobra.Command {
	var (
		plotDir string
		format  string
		html    string
		serve   string
		watch   bool
	)
	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "求解一个工况",
		Example: `  # 默认工况，闭式模式
  cycle analyze

  # IF97 查表模式并输出状态图
  cycle analyze -c spec.yaml -m table --plot out/

  # 生成交互页面
  cycle analyze -m table --html cycle.html

  # 发布页面与指标，工况文件变更后自动重算
  cycle analyze -c spec.yaml -m table --serve :8080 --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if watch && o.specFile == "" {
				return fmt.Errorf("--watch 需要通过 -c 指定工况文件")
			}
			spec, err := o.spec()
			if err != nil {
				return err
			}
			metrics := telemetry.NewMetrics()
			var page atomic.Pointer[render.Charts]
			analyze := func(spec types.CycleSpecification) error {
				charts := &render.Charts{}
				c, err := o.cycle(cycle.WithDebug(charts), cycle.WithMetrics(metrics))
				if err != nil {
					return err
				}
				res, err := c.Analyze(cmd.Context(), spec)
				if err != nil {
					return err
				}
				page.Store(charts)
				log.Info().
					Str("mode", res.Mode()).
					Float64("gas_efficiency", res.Gas().Efficiency()).
					Float64("steam_efficiency", res.Steam().Efficiency()).
					Msg("分析完成")

				out := cmd.OutOrStdout()
				if o.json {
					err = charts.Record.Render(out)
				} else {
					err = render.Summary(out, res)
				}
				if err != nil {
					return err
				}
				if plotDir != "" {
					if err := writePlots(plotDir, format, res); err != nil {
						return err
					}
				}
				if html != "" {
					return writeFile(html, charts.Render)
				}
				return nil
			}
			if err := analyze(spec); err != nil {
				return err
			}

			g, ctx := errgroup.WithContext(cmd.Context())
			if serve != "" {
				mux := http.NewServeMux()
				mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
					page.Load().Handler(w, r)
				})
				mux.Handle("/metrics", metrics.Handler())
				srv := &http.Server{Addr: serve, Handler: mux}
				g.Go(func() error {
					log.Info().Str("addr", serve).Msg("发布页面")
					if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
						return err
					}
					return nil
				})
				g.Go(func() error {
					<-ctx.Done()
					return srv.Shutdown(context.Background())
				})
			}
			if watch {
				g.Go(func() error {
					return load.Watch(ctx, o.specFile, log.Logger, func(spec types.CycleSpecification, err error) {
						if err == nil {
							err = analyze(spec)
						}
						if err != nil {
							log.Error().Err(err).Msg("重新分析失败")
						}
					})
				})
			}
			return g.Wait()
		},
	}
	cmd.Flags().StringVar(&plotDir, "plot", "", "状态图输出目录")
	cmd.Flags().StringVar(&format, "format", "png", "状态图格式: png | svg | pdf")
	cmd.Flags().StringVar(&html, "html", "", "交互页面输出文件")
	cmd.Flags().StringVar(&serve, "serve", "", "在指定地址发布交互页面与 /metrics，如 :8080")
	cmd.Flags().BoolVar(&watch, "watch", false, "监视工况文件，变更后重新分析")
	return cmd
}

// writePlots 输出燃气 T-h 图与蒸汽 h-s 图
func writePlots(dir, format string, res types.ResultSet) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	for _, c := range []types.CycleResult{res.Gas(), res.Steam()} {
		d := render.DiagramFor(c.Kind())
		name := filepath.Join(dir, fmt.Sprintf("%s_%s.%s", c.Kind(), d.Name, format))
		err := writeFile(name, func(w io.Writer) error {
			return render.Plot(w, d, c, format)
		})
		if err != nil {
			return err
		}
		log.Debug().Str("file", name).Msg("状态图已输出")
	}
	return nil
}

// writeFile 创建文件并写入
func writeFile(name string, write func(w io.Writer) error) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := write(file); err != nil {
		return fmt.Errorf("写入 %s 失败: %w", name, err)
	}
	return file.Close()
}
