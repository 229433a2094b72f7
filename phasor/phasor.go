// Package phasor 相量运算与对称分量变换
//
// 相量使用 complex128 表示，角度对外统一使用角度制。
package phasor

import (
	"fmt"
	"math"
	"math/cmplx"
)

// New 由幅值和角度（度）构造相量 m·e^(jθ)
// 幅值可以为负，等价于相位偏移 180°
func New(magnitude, degrees float64) complex128 {
	return cmplx.Rect(magnitude, Rad(degrees))
}

// Rect 由实部和虚部构造相量
func Rect(re, im float64) complex128 { return complex(re, im) }

// Polar 将相量转换为幅值和角度（度）
// 角度取 atan2(Im, Re)，范围 (-180, 180]，
// 虚部为 -0 且实部为负时得到 -180。
func Polar(z complex128) (magnitude, degrees float64) {
	return cmplx.Abs(z), Deg(cmplx.Phase(z))
}

// Deg 弧度转角度
func Deg(rad float64) float64 { return rad * 180 / math.Pi }

// Rad 角度转弧度
func Rad(deg float64) float64 { return deg * math.Pi / 180 }

// String 格式化为 m∠θ°
func String(z complex128) string {
	m, d := Polar(z)
	return fmt.Sprintf("%.6g∠%.4g°", m, d)
}
