// Package perunit 标幺值计算
package perunit

import "phasecalc/types"

// Base 标幺制基准值
type Base struct {
	S float64 `yaml:"s"` // 基准容量 (VA)
	V float64 `yaml:"v"` // 基准电压 (V)
}

// Validate 检查基准值非零
func (b Base) Validate() error {
	if err := types.NonZero("base power", b.S); err != nil {
		return err
	}
	return types.NonZero("base voltage", b.V)
}

// Current1Phase 单相基准电流 S/V
func (b Base) Current1Phase() (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return types.Finite("base current", b.S/b.V)
}

// Current3Phase 三相基准电流 S/(√3·V)
func (b Base) Current3Phase() (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return types.Finite("base current", b.S/(types.Sqrt3*b.V))
}

// Impedance 基准阻抗 V²/S（单相、三相相同）
func (b Base) Impedance() (float64, error) {
	if err := b.Validate(); err != nil {
		return 0, err
	}
	return types.Finite("base impedance", b.V*b.V/b.S)
}

// PerUnit 实际电压与容量的标幺值
func (b Base) PerUnit(v, s float64) (vpu, spu float64, err error) {
	if err := b.Validate(); err != nil {
		return 0, 0, err
	}
	if vpu, err = types.Finite("per-unit voltage", v/b.V); err != nil {
		return 0, 0, err
	}
	if spu, err = types.Finite("per-unit power", s/b.S); err != nil {
		return 0, 0, err
	}
	return vpu, spu, nil
}

// ChangeBase 标幺阻抗换算到新基准
// Z_new = Z_old · (V_old/V_new)² · (S_new/S_old)
func ChangeBase(zpu float64, from, to Base) (float64, error) {
	zo, err := from.Impedance()
	if err != nil {
		return 0, err
	}
	zn, err := to.Impedance()
	if err != nil {
		return 0, err
	}
	return types.Finite("per-unit impedance", zpu*zo/zn)
}
