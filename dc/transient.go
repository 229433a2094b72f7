package dc

import (
	"math"

	"phasecalc/types"
)

// RCCapacitorVoltage RC 放电电容电压 V0·e^(-t/RC)
func RCCapacitorVoltage(v0, r, c, t float64) (float64, error) {
	if err := types.NonZero("R·C", r*c); err != nil {
		return 0, err
	}
	return types.Finite("capacitor voltage", v0*math.Exp(-t/(r*c)))
}

// RCCurrent RC 回路电流 (V0/R)·e^(-t/RC)
func RCCurrent(v0, r, c, t float64) (float64, error) {
	vc, err := RCCapacitorVoltage(v0, r, c, t)
	if err != nil {
		return 0, err
	}
	return types.Finite("RC current", vc/r)
}

// RCResistorVoltage RC 回路电阻电压 V0 - Vc(t)
func RCResistorVoltage(v0, r, c, t float64) (float64, error) {
	vc, err := RCCapacitorVoltage(v0, r, c, t)
	if err != nil {
		return 0, err
	}
	return v0 - vc, nil
}

// RLCurrent RL 充电电流 (V0/R)·(1-e^(-tR/L))
func RLCurrent(v0, r, l, t float64) (float64, error) {
	if err := types.NonZero("resistance", r); err != nil {
		return 0, err
	}
	if err := types.NonZero("inductance", l); err != nil {
		return 0, err
	}
	return types.Finite("RL current", v0/r*(1-math.Exp(-t*r/l)))
}

// RLResistorVoltage RL 回路电阻电压 I(t)·R
func RLResistorVoltage(v0, r, l, t float64) (float64, error) {
	i, err := RLCurrent(v0, r, l, t)
	if err != nil {
		return 0, err
	}
	return i * r, nil
}

// RLInductorVoltage RL 回路电感电压 V0 - Vr(t)
func RLInductorVoltage(v0, r, l, t float64) (float64, error) {
	vr, err := RLResistorVoltage(v0, r, l, t)
	if err != nil {
		return 0, err
	}
	return v0 - vr, nil
}
