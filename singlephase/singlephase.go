// Package singlephase 单相交流电路计算
package singlephase

import (
	"math"
	"math/cmplx"

	"phasecalc/phasor"
	"phasecalc/types"

	"gonum.org/v1/gonum/floats"
)

// Instantaneous 正弦电压瞬时值 v(t) = Vmax·sin(2πft + θ)
func Instantaneous(vmax, frequency, t, degrees float64) float64 {
	return vmax * math.Sin(2*math.Pi*frequency*t+phasor.Rad(degrees))
}

// AverageFullWave 全波整流平均值 2·Vmax/π
func AverageFullWave(vmax float64) float64 { return 2 * vmax / math.Pi }

// RMS 周期波形采样的有效值
func RMS(values []float64) (float64, error) {
	if len(values) == 0 {
		return 0, types.Invalid("empty waveform")
	}
	return floats.Norm(values, 2) / math.Sqrt(float64(len(values))), nil
}

// RMSSine 正弦波有效值 Vmax/√2
func RMSSine(vmax float64) float64 { return vmax / types.Sqrt2 }

// RMSHalfWave 半波整流有效值 Vmax/2
func RMSHalfWave(vmax float64) float64 { return vmax / 2 }

// SinCos 角度（度）的正弦、余弦
func SinCos(degrees float64) (sin, cos float64) {
	return math.Sincos(phasor.Rad(degrees))
}

// Phasor 正弦波的相量表示
func Phasor(vmax, degrees float64) complex128 { return phasor.New(vmax, degrees) }

// Resistive 电阻阻抗 R+j0
func Resistive(r float64) complex128 { return complex(r, 0) }

// Capacitive 电容阻抗 -j/(ωC)
func Capacitive(c, frequency float64) (complex128, error) {
	x, err := CapacitiveReactance(c, frequency)
	if err != nil {
		return 0, err
	}
	return complex(0, x), nil
}

// Inductive 电感阻抗 jωL
func Inductive(l, frequency float64) complex128 {
	return complex(0, InductiveReactance(l, frequency))
}

// CapacitiveReactance 容抗 -1/(ωC)
func CapacitiveReactance(c, frequency float64) (float64, error) {
	omega := 2 * math.Pi * frequency
	if err := types.NonZero("ω·C", omega*c); err != nil {
		return 0, err
	}
	return types.Finite("capacitive reactance", -1/(omega*c))
}

// InductiveReactance 感抗 ωL
func InductiveReactance(l, frequency float64) float64 {
	return 2 * math.Pi * frequency * l
}

// RealPower 有功功率 P = V·I·pf
func RealPower(vrms, irms, pf float64) float64 { return vrms * irms * pf }

// ReactivePower 无功功率 Q = V·I·√(1-pf²)
func ReactivePower(vrms, irms, pf float64) (float64, error) {
	if pf < -1 || pf > 1 {
		return 0, types.Invalid("power factor %v out of [-1, 1]", pf)
	}
	return vrms * irms * math.Sqrt(1-pf*pf), nil
}

// PowerFactor 功率因数 P/S
func PowerFactor(p, s float64) (float64, error) {
	if err := types.NonZero("apparent power", s); err != nil {
		return 0, err
	}
	return types.Finite("power factor", p/s)
}

// ComplexPower 复功率 S = V·conj(I)（有效值相量）
func ComplexPower(v, i complex128) complex128 { return v * cmplx.Conj(i) }
