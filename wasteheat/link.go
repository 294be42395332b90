package wasteheat

import (
	"cycle/fluid"
	"cycle/types"
)

// Link 燃气排气到蒸汽循环的余热报告。
// 仅用于展示，不反馈到朗肯循环。
type Link struct {
	Gas fluid.Provider // 燃气物性后端
}

// Duty Ḣ = ṁ·(h4 − h(T_stack, p4))，单位 kW。
// stack 为 0 时不计算，ok 返回假。
func (l Link) Duty(exhaust types.ThermodynamicState, massFlow, stack float64) (duty float64, ok bool, err error) {
	if stack == 0 {
		return 0, false, nil
	}
	if massFlow < 0 {
		return 0, false, types.InvalidInput("mass_flow", massFlow)
	}
	if stack < 0 || stack >= exhaust.T {
		return 0, false, types.InvalidInput("stack_temperature", stack)
	}
	h, err := l.Gas.H(stack, exhaust.P)
	if err != nil {
		return 0, false, err
	}
	return massFlow * (exhaust.H - h), true, nil
}
