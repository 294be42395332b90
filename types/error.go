package types

import (
	"errors"
	"fmt"
)

// ErrorKind 错误分类
type ErrorKind uint8

const (
	KindOutOfDomain  ErrorKind = iota + 1 // 物性查询超出后端有效域
	KindInvalidInput                      // 输入非法（流量、热值、效率）
	KindInvalidCycle                      // 循环不成立（压比、温升、负净功）
	KindOutOfRange                        // 干度搜索目标超出两相区
	KindConvergence                       // 有界反解未收敛
)

// 错误分类哨兵，配合 errors.Is 使用
var (
	ErrOutOfDomain  = errors.New("OutOfDomain")
	ErrInvalidInput = errors.New("InvalidInput")
	ErrInvalidCycle = errors.New("InvalidCycle")
	ErrOutOfRange   = errors.New("OutOfRange")
	ErrConvergence  = errors.New("ConvergenceError")
)

var kindSentinel = map[ErrorKind]error{
	KindOutOfDomain:  ErrOutOfDomain,
	KindInvalidInput: ErrInvalidInput,
	KindInvalidCycle: ErrInvalidCycle,
	KindOutOfRange:   ErrOutOfRange,
	KindConvergence:  ErrConvergence,
}

// String 返回分类名称
func (k ErrorKind) String() string {
	if err, ok := kindSentinel[k]; ok {
		return err.Error()
	}
	return "Unknown"
}

// Error 求解错误，携带分类和出错的物理量
type Error struct {
	Kind     ErrorKind // 分类
	Quantity string    // 出错量名称
	Value    float64   // 出错量数值
	Err      error     // 底层原因
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s=%g: %v", e.Kind, e.Quantity, e.Value, e.Err)
	}
	return fmt.Sprintf("%s: %s=%g", e.Kind, e.Quantity, e.Value)
}

// Unwrap 返回底层原因
func (e *Error) Unwrap() error { return e.Err }

// Is 分类哨兵匹配
func (e *Error) Is(target error) bool {
	return kindSentinel[e.Kind] == target
}

// NewError 创建错误
func NewError(kind ErrorKind, quantity string, value float64) *Error {
	return &Error{Kind: kind, Quantity: quantity, Value: value}
}

// OutOfDomain 物性查询越界
func OutOfDomain(quantity string, value float64) *Error {
	return NewError(KindOutOfDomain, quantity, value)
}

// InvalidInput 非法输入
func InvalidInput(quantity string, value float64) *Error {
	return NewError(KindInvalidInput, quantity, value)
}

// InvalidCycle 循环不成立
func InvalidCycle(quantity string, value float64) *Error {
	return NewError(KindInvalidCycle, quantity, value)
}

// OutOfRange 干度越界
func OutOfRange(quantity string, value float64) *Error {
	return NewError(KindOutOfRange, quantity, value)
}

// Convergence 反解未收敛
func Convergence(quantity string, value float64) *Error {
	return NewError(KindConvergence, quantity, value)
}

// KindOf 取出错误分类，非本包错误返回 0
func KindOf(err error) ErrorKind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
