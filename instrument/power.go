// Package instrument 测量与仪表计算
//
// 包括功率测量、互感器变比、接地电阻测试和绝缘测试。
package instrument

import (
	"math"

	"phasecalc/phasor"
	"phasecalc/types"
)

// PowerFactorRatio 由有功与视在功率计算功率因数和功率因数角（度）
// 功率因数截断到 [-1, 1]
func PowerFactorRatio(p, s float64) (pf, degrees float64, err error) {
	if err := types.NonZero("apparent power", s); err != nil {
		return 0, 0, err
	}
	pf = math.Max(-1, math.Min(1, p/s))
	return pf, phasor.Deg(math.Acos(pf)), nil
}

// PowerFactorAngle 由功率因数角（度）计算功率因数
func PowerFactorAngle(degrees float64) float64 {
	return math.Cos(phasor.Rad(degrees))
}

// ComplexPowerVI 由电压、电流有效值和功率因数角计算复功率 V·I∠θ
func ComplexPowerVI(v, i, degrees float64) complex128 {
	return phasor.New(v*i, degrees)
}

// ComplexPowerPQ 由有功、无功功率构造复功率
func ComplexPowerPQ(p, q float64) complex128 { return complex(p, q) }

// TwoWattmeter 两瓦特表法
// 返回总有功功率 P = W1+W2，无功功率 Q = √3·(W1-W2)，视在功率 S
// W1 为感性负载下读数较大的功率表，Q 为负表示容性负载
func TwoWattmeter(w1, w2 float64) (p, q, s float64) {
	p = w1 + w2
	q = types.Sqrt3 * (w1 - w2)
	return p, q, math.Hypot(p, q)
}

// TriangleFromPQ 功率三角形：由 P、Q 求 S
func TriangleFromPQ(p, q float64) (s float64) { return math.Hypot(p, q) }

// TriangleFromSQ 功率三角形：由 S、Q 求 P
func TriangleFromSQ(s, q float64) (p float64, err error) {
	if math.Abs(q) > math.Abs(s) {
		return 0, types.Invalid("reactive power %v exceeds apparent power %v", q, s)
	}
	return math.Sqrt(s*s - q*q), nil
}

// TriangleFromSP 功率三角形：由 S、P 求 Q
func TriangleFromSP(s, p float64) (q float64, err error) {
	if math.Abs(p) > math.Abs(s) {
		return 0, types.Invalid("real power %v exceeds apparent power %v", p, s)
	}
	return math.Sqrt(s*s - p*p), nil
}
