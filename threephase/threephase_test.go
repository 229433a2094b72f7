package threephase

import (
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"phasecalc/maths"
	"phasecalc/phasor"
	"phasecalc/types"
)

const tol = 1e-9

// TestRelations 验证星形、三角形接法的相/线电压电流比值关系
func TestRelations(t *testing.T) {
	vLine := phasor.New(480, 30)
	iPhase := phasor.New(10, -20)

	vp, il, err := Relations(Wye, vLine, iPhase)
	if err != nil {
		t.Fatalf("星形换算失败 %s", err)
	}
	if !maths.ApproxEqual(cmplx.Abs(vp), 480/math.Sqrt(3), tol) || il != iPhase {
		t.Errorf("星形换算不正确: V_phase=%v I_line=%v", vp, il)
	}

	vp, il, err = Relations(Delta, vLine, iPhase)
	if err != nil {
		t.Fatalf("三角形换算失败 %s", err)
	}
	if vp != vLine || !maths.ApproxEqual(cmplx.Abs(il), 10*math.Sqrt(3), tol) {
		t.Errorf("三角形换算不正确: V_phase=%v I_line=%v", vp, il)
	}

	if _, _, err := Relations(Connection(9), vLine, iPhase); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("未知连接方式应返回 ErrInvalidInput, 实际 %v", err)
	}
}

// TestApparentPower 验证相量与线量两种形式的三相视在功率
func TestApparentPower(t *testing.T) {
	// 电流滞后 30°（感性负载）
	s := ApparentPower(phasor.New(277, 0), phasor.New(10, -30))
	want := phasor.New(3*2770, 30)
	if !maths.ApproxEqual(s, want, tol) {
		t.Errorf("视在功率不正确: 期望 %v, 实际 %v", want, s)
	}
	if imag(s) <= 0 {
		t.Errorf("感性负载无功功率应为正, 实际 %v", imag(s))
	}
	// 共轭取在电流上
	if maths.ApproxEqual(s, 3*cmplx.Conj(phasor.New(277, 0))*phasor.New(10, -30), tol) {
		t.Errorf("共轭不应取在电压上")
	}

	// 线量与相量计算一致（星形）
	vLine := phasor.New(480, 0)
	vp, il, _ := Relations(Wye, vLine, phasor.New(5, -10))
	if !maths.ApproxEqual(ApparentPowerLine(vLine, il), ApparentPower(vp, il), tol) {
		t.Errorf("线量视在功率与相量视在功率不一致")
	}
	if PowerRect(3, 4) != 3+4i {
		t.Errorf("PowerRect 不正确")
	}
}

// TestWyeSource 验证由 A 相电压和总功率构造的平衡星形电源
func TestWyeSource(t *testing.T) {
	van := phasor.New(120, 0)
	s := phasor.New(3600, 36.87)
	w, err := WyeSource(van, s)
	if err != nil {
		t.Fatalf("计算失败 %s", err)
	}
	if m, d := phasor.Polar(w.Phase.B); !maths.ApproxEqual(m, 120, tol) || math.Abs(d+120) > 1e-9 {
		t.Errorf("B 相电压不正确: %v", phasor.String(w.Phase.B))
	}
	if m, d := phasor.Polar(w.Line.A); !maths.ApproxEqual(m, 120*math.Sqrt(3), tol) || math.Abs(d-30) > 1e-9 {
		t.Errorf("Vab 应为 √3·Van∠30°, 实际 %v", phasor.String(w.Line.A))
	}
	if m, d := phasor.Polar(w.Current.A); !maths.ApproxEqual(m, 10, tol) || math.Abs(d+36.87) > 1e-9 {
		t.Errorf("A 相电流不正确: %v", phasor.String(w.Current.A))
	}
	// 三相功率之和等于总功率
	total := ApparentPower(w.Phase.A, w.Current.A)
	if !maths.ApproxEqual(total, s, tol) {
		t.Errorf("总功率不一致: 期望 %v, 实际 %v", s, total)
	}
	// 电流为平衡正序
	seq := w.Current.Sequence()
	if !maths.ApproxEqual(seq.Negative, 0, tol) || !maths.ApproxEqual(seq.Zero, 0, tol) {
		t.Errorf("电流应为平衡正序: %v", seq)
	}

	if _, err := WyeSource(0, s); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("Van 为 0 时应返回 ErrInvalidInput, 实际 %v", err)
	}
}

// TestDeltaWye 验证三角形与星形阻抗互换及其往返一致性
func TestDeltaWye(t *testing.T) {
	z1, z2, z3, err := DeltaToWye(1, 2, 3)
	if err != nil {
		t.Fatalf("转换失败 %s", err)
	}
	if !maths.ApproxEqual(z1, 1, tol) || !maths.ApproxEqual(z2, 0.5, tol) || !maths.ApproxEqual(z3, 1.0/3, tol) {
		t.Errorf("Δ→Y 不正确: %v %v %v", z1, z2, z3)
	}
	za, zb, zc, err := WyeToDelta(z1, z2, z3)
	if err != nil {
		t.Fatalf("转换失败 %s", err)
	}
	if !maths.ApproxEqual(za, 1, tol) || !maths.ApproxEqual(zb, 2, tol) || !maths.ApproxEqual(zc, 3, tol) {
		t.Errorf("Y→Δ 往返不正确: %v %v %v", za, zb, zc)
	}

	// 复阻抗往返
	da, db, dc := complex(3, 4), complex(1, -2), complex(5, 1)
	y1, y2, y3, _ := DeltaToWye(da, db, dc)
	ra, rb, rc, _ := WyeToDelta(y1, y2, y3)
	if !maths.ApproxEqual(ra, da, tol) || !maths.ApproxEqual(rb, db, tol) || !maths.ApproxEqual(rc, dc, tol) {
		t.Errorf("复阻抗往返不正确: %v %v %v", ra, rb, rc)
	}

	if _, _, _, err := DeltaToWye(1, -1, 0); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("和为 0 时应返回 ErrInvalidInput, 实际 %v", err)
	}
	if _, _, _, err := WyeToDelta(1, 0, 1); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("阻抗为 0 时应返回 ErrInvalidInput, 实际 %v", err)
	}
	// 阻抗非零但结果溢出
	if za, _, _, err := WyeToDelta(1e-200, 1e200, 1); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("三角形阻抗溢出时应返回 ErrInvalidInput, 实际 %v (%v)", za, err)
	}
	if _, err := WyeSource(1e-310, 1e10); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("相电流溢出时应返回 ErrInvalidInput, 实际 %v", err)
	}
}

// TestConnection 验证接线方式的解析与文本编解码
func TestConnection(t *testing.T) {
	for in, want := range map[string]Connection{"wye": Wye, "Y": Wye, " Delta ": Delta, "D": Delta} {
		c, err := ParseConnection(in)
		if err != nil || c != want {
			t.Errorf("ParseConnection(%q): 期望 %v, 实际 %v (%v)", in, want, c, err)
		}
	}
	if _, err := ParseConnection("zigzag"); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("未知连接方式应返回 ErrInvalidInput")
	}
	var c Connection
	if err := c.UnmarshalText([]byte("delta")); err != nil || c != Delta {
		t.Errorf("UnmarshalText 失败: %v %v", c, err)
	}
	if b, err := Delta.MarshalText(); err != nil || string(b) != "delta" {
		t.Errorf("MarshalText 失败: %s %v", b, err)
	}
}

// TestLineQuantities 验证由相量求线电压、线电流的精确相量差
func TestLineQuantities(t *testing.T) {
	v := phasor.Phases{A: phasor.New(277, 0), B: phasor.New(277, -120), C: phasor.New(277, 120)}
	i := phasor.Phases{A: phasor.New(10, -30), B: phasor.New(10, -150), C: phasor.New(10, 90)}

	// 平衡时幅值比例与 Relations 一致
	vl, err := LineVoltages(Wye, v)
	if err != nil {
		t.Fatalf("计算失败 %s", err)
	}
	vp, _, _ := Relations(Wye, vl.A, 0)
	if !maths.ApproxEqual(cmplx.Abs(vp), 277, tol) {
		t.Errorf("星形线电压幅值应为 √3 倍相电压: %v", phasor.String(vl.A))
	}
	if _, d := phasor.Polar(vl.A); math.Abs(d-30) > 1e-9 {
		t.Errorf("Vab 应超前 Va 30°, 实际 %v", d)
	}

	il, err := LineCurrents(Delta, i)
	if err != nil {
		t.Fatalf("计算失败 %s", err)
	}
	_, want, _ := Relations(Delta, 0, i.A)
	if !maths.ApproxEqual(cmplx.Abs(il.A), cmplx.Abs(want), tol) {
		t.Errorf("三角形线电流幅值应为 √3 倍相电流: %v", phasor.String(il.A))
	}
	if _, d := phasor.Polar(il.A); math.Abs(d+60) > 1e-9 {
		t.Errorf("IA 应滞后 Iab 30°, 实际 %v", d)
	}

	if same, _ := LineVoltages(Delta, v); same != v {
		t.Errorf("三角形线电压应等于相电压")
	}
	if same, _ := LineCurrents(Wye, i); same != i {
		t.Errorf("星形线电流应等于相电流")
	}
	if _, err := LineVoltages(Connection(7), v); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("未知连接方式应返回 ErrInvalidInput")
	}
	if _, err := LineCurrents(Connection(7), i); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("未知连接方式应返回 ErrInvalidInput")
	}
}
