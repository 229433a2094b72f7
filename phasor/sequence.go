package phasor

import (
	"fmt"
	"math"
	"math/cmplx"

	"phasecalc/types"

	"gonum.org/v1/gonum/mat"
)

// Phases 三相相量 (A, B, C)
type Phases struct {
	A, B, C complex128
}

// Sequence 对称分量 (零序, 正序, 负序)
type Sequence struct {
	Zero     complex128 // 零序
	Positive complex128 // 正序
	Negative complex128 // 负序
}

// Symmetrical 将不对称三相相量分解为零序、正序、负序分量
//
//	V0 = (Va + Vb + Vc) / 3
//	V1 = (Va + a·Vb + a²·Vc) / 3
//	V2 = (Va + a²·Vb + a·Vc) / 3
func Symmetrical(a, b, c complex128) Sequence {
	return Sequence{
		Zero:     (a + b + c) / 3,
		Positive: (a + types.A*b + types.A2*c) / 3,
		Negative: (a + types.A2*b + types.A*c) / 3,
	}
}

// Unsymmetrical 由零序、正序、负序分量合成三相相量
//
//	Va = V0 + V1 + V2
//	Vb = V0 + a²·V1 + a·V2
//	Vc = V0 + a·V1 + a²·V2
func Unsymmetrical(zero, positive, negative complex128) Phases {
	return Phases{
		A: zero + positive + negative,
		B: zero + types.A2*positive + types.A*negative,
		C: zero + types.A*positive + types.A2*negative,
	}
}

// Sequence 对称分量分解
func (p Phases) Sequence() Sequence { return Symmetrical(p.A, p.B, p.C) }

// Slice 按 A, B, C 顺序返回
func (p Phases) Slice() []complex128 { return []complex128{p.A, p.B, p.C} }

func (p Phases) String() string {
	return fmt.Sprintf("A=%s B=%s C=%s", String(p.A), String(p.B), String(p.C))
}

// Phases 合成三相相量
func (s Sequence) Phases() Phases { return Unsymmetrical(s.Zero, s.Positive, s.Negative) }

// Slice 按 零序, 正序, 负序 顺序返回
func (s Sequence) Slice() []complex128 { return []complex128{s.Zero, s.Positive, s.Negative} }

// negligible 正序幅值不超过三个分量最大幅值的该比例时视为零
const negligible = 1e-12

// positive 正序分量幅值
func (s Sequence) positive() (float64, error) {
	m := cmplx.Abs(s.Positive)
	scale := math.Max(m, math.Max(cmplx.Abs(s.Zero), cmplx.Abs(s.Negative)))
	if m <= negligible*scale {
		return 0, types.Invalid("positive sequence %s is negligible", String(s.Positive))
	}
	return m, nil
}

// Unbalance 负序不平衡度 |V2|/|V1|
func (s Sequence) Unbalance() (float64, error) {
	m, err := s.positive()
	if err != nil {
		return 0, err
	}
	return cmplx.Abs(s.Negative) / m, nil
}

// ZeroUnbalance 零序不平衡度 |V0|/|V1|
func (s Sequence) ZeroUnbalance() (float64, error) {
	m, err := s.positive()
	if err != nil {
		return 0, err
	}
	return cmplx.Abs(s.Zero) / m, nil
}

func (s Sequence) String() string {
	return fmt.Sprintf("0=%s +=%s -=%s", String(s.Zero), String(s.Positive), String(s.Negative))
}

// Fortescue 返回变换矩阵 T，[Va Vb Vc]ᵗ = T·[V0 V1 V2]ᵗ
// 每次调用返回新的副本
func Fortescue() *mat.CDense {
	a, a2 := types.A, types.A2
	return mat.NewCDense(3, 3, []complex128{
		1, 1, 1,
		1, a2, a,
		1, a, a2,
	})
}

// FortescueInverse 返回逆变换矩阵 T⁻¹，[V0 V1 V2]ᵗ = T⁻¹·[Va Vb Vc]ᵗ
func FortescueInverse() *mat.CDense {
	a, a2 := types.A/3, types.A2/3
	return mat.NewCDense(3, 3, []complex128{
		1.0 / 3, 1.0 / 3, 1.0 / 3,
		1.0 / 3, a, a2,
		1.0 / 3, a2, a,
	})
}
