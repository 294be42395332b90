package types

import "fmt"

// ThermodynamicState 平衡状态点（值类型）。
// 压力单位由运行时 Units 决定，温度 K，比焓 kJ/kg，比熵 kJ/(kg·K)。
// X 仅在 TwoPhase 为真时有效，且 0 ≤ X ≤ 1。
type ThermodynamicState struct {
	Label    string  `json:"label"`               // 状态标记（如 "1"、"2s"）
	P        float64 `json:"p"`                   // 压力
	T        float64 `json:"T"`                   // 温度
	H        float64 `json:"h"`                   // 比焓
	S        float64 `json:"s"`                   // 比熵
	X        float64 `json:"x,omitempty"`         // 干度
	TwoPhase bool    `json:"two_phase,omitempty"` // 是否位于两相区
}

// Quality 返回干度及其是否有效
func (s ThermodynamicState) Quality() (float64, bool) {
	if !s.TwoPhase {
		return 0, false
	}
	return s.X, true
}

// WithQuality 返回带干度的副本
func (s ThermodynamicState) WithQuality(x float64) ThermodynamicState {
	s.X, s.TwoPhase = x, true
	return s
}

// String 状态描述
func (s ThermodynamicState) String() string {
	if s.TwoPhase {
		return fmt.Sprintf("%s(p=%g T=%.2f h=%.2f s=%.4f x=%.4f)", s.Label, s.P, s.T, s.H, s.S, s.X)
	}
	return fmt.Sprintf("%s(p=%g T=%.2f h=%.2f s=%.4f)", s.Label, s.P, s.T, s.H, s.S)
}
