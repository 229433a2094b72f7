package instrument

import (
	"math"

	"phasecalc/types"
)

// Wenner 温纳四极法土壤电阻率 2π·a·V/I
func Wenner(v, i, spacing float64) (float64, error) {
	if err := types.NonZero("current", i); err != nil {
		return 0, err
	}
	return types.Finite("resistivity", 2*math.Pi*spacing*v/i)
}

// Schlumberger 施伦伯格法 (V/I)·π·(a²-b²)/(2b)
// a 为电流极间距，b 为电压极间距
func Schlumberger(v, i, a, b float64) (float64, error) {
	if err := types.NonZero("current", i); err != nil {
		return 0, err
	}
	if err := types.NonZero("voltage electrode spacing", b); err != nil {
		return 0, err
	}
	return types.Finite("resistivity", v/i*math.Pi*(a*a-b*b)/(2*b))
}

// DrivenRod 两种埋深的接地棒测量推算接地电阻
// ρ = (R2·L2 - R1·L1)/(L2 - L1)，R = ρ/L1
func DrivenRod(r1, l1, r2, l2 float64) (float64, error) {
	if l1 == l2 {
		return 0, types.Invalid("rod lengths must differ")
	}
	if err := types.NonZero("rod length", l1); err != nil {
		return 0, err
	}
	rho := (r2*l2 - r1*l1) / (l2 - l1)
	return types.Finite("rod resistance", rho/l1)
}
