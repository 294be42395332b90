package types

import "io"

// Debug 结果记录接口，由分析流程在每次求解后回调
type Debug interface {
	Init(spec CycleSpecification)
	IsDebug() bool
	SetDebug(is bool)
	Update(result ResultSet)
	Render(w io.Writer) error
	Error(err error)
}
