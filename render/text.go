package render

import (
	"cycle/types"
	"fmt"
	"io"
)

// Summary 输出结果摘要
func Summary(w io.Writer, res types.ResultSet) error {
	gas, steam := res.Gas(), res.Steam()
	_, err := fmt.Fprintf(w, "Mode: %s\n\n", res.Mode())
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Brayton Cycle Performance")
	fmt.Fprintf(w, "  Net Work Output    = %.2f kJ/kg\n", gas.Work())
	fmt.Fprintf(w, "  Heat Input         = %.2f kJ/kg\n", gas.HeatInput())
	fmt.Fprintf(w, "  Thermal Efficiency = %.2f %%\n", gas.Efficiency()*100)
	if duty, ok := res.WasteHeatDuty(); ok {
		fmt.Fprintf(w, "  Waste Heat Duty    = %.2f kW (%.2f kg/s)\n", duty, res.MassFlow())
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Rankine Cycle Performance")
	fmt.Fprintf(w, "  Turbine Work       = %.2f kJ/kg\n", steam.ExpansionWork())
	if steam.CompressionWork() != 0 {
		fmt.Fprintf(w, "  Pump Work          = %.2f kJ/kg\n", steam.CompressionWork())
	}
	fmt.Fprintf(w, "  Thermal Efficiency = %.2f %%\n", steam.Efficiency()*100)
	if steam.Approximate() {
		fmt.Fprintf(w, "  Note: %s\n", steam.Note())
	}
	fmt.Fprintln(w)
	for _, c := range []types.CycleResult{gas, steam} {
		fmt.Fprintf(w, "%s states\n", c.Kind())
		for _, s := range append(c.States(), c.Isentropic()...) {
			fmt.Fprintf(w, "  %s\n", s)
		}
	}
	return nil
}
