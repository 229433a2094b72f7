package types

import (
	"errors"
	"fmt"

	"phasecalc/maths"
)

// ErrInvalidInput 参数非法（除数为零、长度不匹配等）
var ErrInvalidInput = errors.New("invalid input")

// Invalid 构造参数非法错误
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// NonZero 检查除数不为零
func NonZero(name string, v float64) error {
	if v == 0 {
		return Invalid("%s cannot be zero", name)
	}
	return nil
}

// Finite 检查计算结果不是 NaN 或 Inf
// 除数非零但过小时商仍可能溢出
func Finite(name string, v float64) (float64, error) {
	if !maths.IsFinite(v) {
		return 0, Invalid("%s is not finite", name)
	}
	return v, nil
}

// FiniteC 检查复数计算结果不是 NaN 或 Inf
func FiniteC(name string, v complex128) (complex128, error) {
	if !maths.IsFinite(v) {
		return 0, Invalid("%s is not finite", name)
	}
	return v, nil
}

// NonZeroC 检查复数除数不为零
func NonZeroC(name string, v complex128) error {
	if v == 0 {
		return Invalid("%s cannot be zero", name)
	}
	return nil
}
