package commands

import (
	"cycle"
	"cycle/fluid"
	"cycle/load"
	"fmt"

	"github.com/spf13/cobra"
)

func newFluidsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "fluids",
		Short: "列出已注册的物性后端",
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range fluid.Names() {
				fmt.Fprintln(out, name)
			}
			for _, m := range []cycle.Mode{cycle.ModeClosedForm, cycle.ModeTable} {
				gas, steam, _ := m.Fluids()
				if steam == "" {
					steam = "closed-form"
				}
				fmt.Fprintf(out, "mode %s: %s + %s\n", m, gas, steam)
			}
			return nil
		},
	}
}

func newInitCommand() *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "init",
		Short: "输出默认工况文件",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := load.LoadString("")
			if err != nil {
				return err
			}
			if output == "" {
				return load.Export(cmd.OutOrStdout(), spec)
			}
			return load.ExportFile(output, spec)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "输出文件，缺省为标准输出")
	return cmd
}
