package instrument

import (
	"math"

	"phasecalc/types"
)

// AbsorptionCurrent 吸收电流 I0·e^(-k·t)
func AbsorptionCurrent(i0, t, k float64) float64 {
	return i0 * math.Exp(-k*t)
}

// InsulationResistance 绝缘电阻 V/I
func InsulationResistance(v, i float64) (float64, error) {
	if err := types.NonZero("current", i); err != nil {
		return 0, err
	}
	return types.Finite("insulation resistance", v/i)
}

// TemperatureCorrected 温度修正后的绝缘电阻 R0·e^(-k·(T-T0))
func TemperatureCorrected(r0, t, t0, k float64) float64 {
	return r0 * math.Exp(-k*(t-t0))
}

// KThermosetting 热固性绝缘温度系数
func KThermosetting(t float64) float64 { return 0.5 * t / 100 }

// KThermoplastic 热塑性绝缘温度系数
func KThermoplastic(t float64) float64 { return 0.6 * t / 100 }

// PolarizationIndex 极化指数 R60/R10
func PolarizationIndex(r60, r10 float64) (float64, error) {
	if err := types.NonZero("10 s insulation resistance", r10); err != nil {
		return 0, err
	}
	return types.Finite("polarization index", r60/r10)
}
