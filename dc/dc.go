// Package dc 直流电路计算
package dc

import (
	"fmt"

	"phasecalc/types"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// Resistance 欧姆定律 R = V/I
func Resistance(v, i float64) (float64, error) {
	if err := types.NonZero("current", i); err != nil {
		return 0, err
	}
	return types.Finite("resistance", v/i)
}

// Current 欧姆定律 I = V/R
func Current(v, r float64) (float64, error) {
	if err := types.NonZero("resistance", r); err != nil {
		return 0, err
	}
	return types.Finite("current", v/r)
}

// Voltage 欧姆定律 V = I·R
func Voltage(i, r float64) float64 { return i * r }

// Series 串联等效电阻
func Series(rs ...float64) float64 { return floats.Sum(rs) }

// Parallel 并联等效电阻
func Parallel(rs ...float64) (float64, error) {
	if len(rs) == 0 {
		return 0, types.Invalid("no resistors")
	}
	var g float64
	for i, r := range rs {
		if err := types.NonZero(fmt.Sprintf("resistor %d", i), r); err != nil {
			return 0, err
		}
		g += 1 / r
	}
	if err := types.NonZero("total conductance", g); err != nil {
		return 0, err
	}
	return types.Finite("parallel resistance", 1/g)
}

// KCL 节点电流代数和（流入为正），满足 KCL 时接近 0
func KCL(currents ...float64) float64 { return floats.Sum(currents) }

// KVL 回路电压代数和，满足 KVL 时接近 0
func KVL(voltages ...float64) float64 { return floats.Sum(voltages) }

// TheveninToNorton 戴维南等效转诺顿等效
func TheveninToNorton(v, r float64) (i, rn float64, err error) {
	if err := types.NonZero("thevenin resistance", r); err != nil {
		return 0, 0, err
	}
	if i, err = types.Finite("norton current", v/r); err != nil {
		return 0, 0, err
	}
	return i, r, nil
}

// NortonToThevenin 诺顿等效转戴维南等效
func NortonToThevenin(i, r float64) (v, rt float64) { return i * r, r }

// NodeVoltages 节点电压法求解 Y·V = I
// 返回节点名到电压的映射
func NodeVoltages(nodes []string, admittance [][]float64, currents []float64) (map[string]float64, error) {
	n := len(nodes)
	if n == 0 {
		return nil, types.Invalid("no nodes")
	}
	if len(admittance) != n || len(currents) != n {
		return nil, types.Invalid("dimension mismatch: %d nodes, %d rows, %d currents", n, len(admittance), len(currents))
	}
	data := make([]float64, 0, n*n)
	for i, row := range admittance {
		if len(row) != n {
			return nil, types.Invalid("admittance row %d has %d columns, want %d", i, len(row), n)
		}
		data = append(data, row...)
	}
	y := mat.NewDense(n, n, data)
	var v mat.VecDense
	if err := v.SolveVec(y, mat.NewVecDense(n, append([]float64(nil), currents...))); err != nil {
		return nil, fmt.Errorf("%w: admittance matrix: %v", types.ErrInvalidInput, err)
	}
	out := make(map[string]float64, n)
	for i, name := range nodes {
		out[name] = v.AtVec(i)
	}
	return out, nil
}

// Superposition 叠加定理：各独立源单独作用响应之和
func Superposition(responses []func(float64) float64, sources []float64) (float64, error) {
	if len(responses) != len(sources) {
		return 0, types.Invalid("%d responses for %d sources", len(responses), len(sources))
	}
	total := make([]float64, len(sources))
	for i, f := range responses {
		total[i] = f(sources[i])
	}
	return floats.Sum(total), nil
}
