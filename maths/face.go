package maths

import (
	"math"
	"math/cmplx"
)

// Number 是一个约束，允许任何浮点或复数类型
type Number interface {
	~float32 | ~float64 | ~complex64 | ~complex128
}

// Abs 是一个泛型函数，返回任何支持的 Number 类型的绝对值。
func Abs[T Number](v T) float64 {
	// 通过类型断言检查具体类型
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	}
	return 0
}

// ApproxEqual 判断两个值在容差内相等
// 容差同时作为绝对误差和相对误差使用：|a-b| <= tol*max(1,|a|,|b|)
func ApproxEqual[T Number](a, b T, tol float64) bool {
	scale := math.Max(1, math.Max(Abs(a), Abs(b)))
	return Abs(a-b) <= tol*scale
}

// IsFinite 判断数值不是 NaN 或 Inf
func IsFinite[T Number](v T) bool {
	switch x := any(v).(type) {
	case float32:
		return !math.IsNaN(float64(x)) && !math.IsInf(float64(x), 0)
	case float64:
		return !math.IsNaN(x) && !math.IsInf(x, 0)
	case complex64:
		c := complex128(x)
		return !cmplx.IsNaN(c) && !cmplx.IsInf(c)
	case complex128:
		return !cmplx.IsNaN(x) && !cmplx.IsInf(x)
	}
	return false
}
