// Package threephase 三相电路计算
package threephase

import (
	"math/cmplx"

	"phasecalc/phasor"
	"phasecalc/types"
)

// Relations 由线电压和相电流得到相电压和线电流
//
//	星形:   V_phase = V_line/√3, I_line = I_phase
//	三角形: V_phase = V_line,    I_line = √3·I_phase
//
// 只换算幅值比例，不包含 ±30° 相位旋转。
func Relations(conn Connection, vLine, iPhase complex128) (vPhase, iLine complex128, err error) {
	switch conn {
	case Wye:
		return vLine / types.Sqrt3, iPhase, nil
	case Delta:
		return vLine, iPhase * types.Sqrt3, nil
	}
	return 0, 0, types.Invalid("unknown connection %d", uint8(conn))
}

// ApparentPower 由相电压与相电流计算三相视在功率 S = 3·V·conj(I)
func ApparentPower(vPhase, iPhase complex128) complex128 {
	return 3 * vPhase * cmplx.Conj(iPhase)
}

// ApparentPowerLine 由线电压与线电流计算三相视在功率 S = √3·V_L·conj(I_L)
func ApparentPowerLine(vLine, iLine complex128) complex128 {
	return types.Sqrt3 * vLine * cmplx.Conj(iLine)
}

// PowerRect 由有功、无功功率构造复功率
func PowerRect(p, q float64) complex128 { return complex(p, q) }

// Source 平衡星形电源（ABC 正相序）
type Source struct {
	Phase    phasor.Phases // 相电压
	Line     phasor.Phases // 线电压 Vab, Vbc, Vca
	Current  phasor.Phases // 相电流（等于线电流）
	Apparent complex128    // 三相总视在功率
}

// WyeSource 由 A 相电压与总视在功率计算平衡星形电源
// 相电流 I = conj(S / (3·Van))
func WyeSource(van, sTotal complex128) (Source, error) {
	if err := types.NonZeroC("line-to-neutral voltage", van); err != nil {
		return Source{}, err
	}
	vb := van * types.A2
	vc := van * types.A
	ia, err := types.FiniteC("phase current", cmplx.Conj(sTotal/(3*van)))
	if err != nil {
		return Source{}, err
	}
	return Source{
		Phase:    phasor.Phases{A: van, B: vb, C: vc},
		Line:     phasor.Phases{A: van - vb, B: vb - vc, C: vc - van},
		Current:  phasor.Phases{A: ia, B: ia * types.A2, C: ia * types.A},
		Apparent: sTotal,
	}, nil
}

// DeltaToWye 三角形阻抗等效为星形阻抗
// za, zb, zc 分别为与 Z1, Z2, Z3 相对的三角形支路
func DeltaToWye(za, zb, zc complex128) (z1, z2, z3 complex128, err error) {
	sum := za + zb + zc
	if err := types.NonZeroC("delta impedance sum", sum); err != nil {
		return 0, 0, 0, err
	}
	return finite3("wye impedance", zb*zc/sum, za*zc/sum, za*zb/sum)
}

// WyeToDelta 星形阻抗等效为三角形阻抗
func WyeToDelta(z1, z2, z3 complex128) (za, zb, zc complex128, err error) {
	for _, z := range []complex128{z1, z2, z3} {
		if err := types.NonZeroC("wye impedance", z); err != nil {
			return 0, 0, 0, err
		}
	}
	n := z1*z2 + z2*z3 + z3*z1
	return finite3("delta impedance", n/z1, n/z2, n/z3)
}

func finite3(name string, x, y, z complex128) (complex128, complex128, complex128, error) {
	for _, v := range []complex128{x, y, z} {
		if _, err := types.FiniteC(name, v); err != nil {
			return 0, 0, 0, err
		}
	}
	return x, y, z, nil
}

// LineVoltages 由相电压求线电压 Vab, Vbc, Vca
// 星形为相电压之差，三角形线电压等于相电压
func LineVoltages(conn Connection, vPhase phasor.Phases) (phasor.Phases, error) {
	switch conn {
	case Wye:
		return phasor.Phases{A: vPhase.A - vPhase.B, B: vPhase.B - vPhase.C, C: vPhase.C - vPhase.A}, nil
	case Delta:
		return vPhase, nil
	}
	return phasor.Phases{}, types.Invalid("unknown connection %d", uint8(conn))
}

// LineCurrents 由相电流求线电流 IA, IB, IC
// 星形线电流等于相电流，三角形为相电流之差 IA = Iab - Ica
func LineCurrents(conn Connection, iPhase phasor.Phases) (phasor.Phases, error) {
	switch conn {
	case Wye:
		return iPhase, nil
	case Delta:
		return phasor.Phases{A: iPhase.A - iPhase.C, B: iPhase.B - iPhase.A, C: iPhase.C - iPhase.B}, nil
	}
	return phasor.Phases{}, types.Invalid("unknown connection %d", uint8(conn))
}
