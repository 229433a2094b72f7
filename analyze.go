package phasecalc

import (
	"fmt"
	"io"
	"math/cmplx"
	"strings"

	"phasecalc/diagram"
	"phasecalc/phasor"
	"phasecalc/singlephase"
	"phasecalc/threephase"

	"github.com/dustin/go-humanize"
)

// Report 工况分析结果
type Report struct {
	Name       string
	Connection threephase.Connection

	VPhase phasor.Phases   // 相电压
	VLine  phasor.Phases   // 线电压
	VSeq   phasor.Sequence // 相电压对称分量

	VUnbalance     float64 // 负序电压不平衡度 |V2|/|V1|
	VZeroUnbalance float64 // 零序电压不平衡度 |V0|/|V1|

	HasCurrents bool
	IPhase      phasor.Phases   // 相电流
	ILine       phasor.Phases   // 线电流
	ISeq        phasor.Sequence // 相电流对称分量
	IUnbalance  float64         // 正序电流为零时为 0

	Power         complex128 // 三相总复功率 Σ V·conj(I)
	PositivePower complex128 // 正序复功率 3·V1·conj(I1)

	HasBase bool
	VPU     float64 // 正序线电压标幺值
	SPU     float64 // 总视在功率标幺值
}

// Analyze 执行分析
func (c *Case) Analyze() (*Report, error) {
	r := &Report{
		Name:       c.Name,
		Connection: c.Connection,
		VPhase:     c.Voltages.Phases(),
	}
	var err error
	if r.VLine, err = threephase.LineVoltages(c.Connection, r.VPhase); err != nil {
		return nil, fmt.Errorf("工况 %q: %w", c.Name, err)
	}
	r.VSeq = r.VPhase.Sequence()
	if r.VUnbalance, err = r.VSeq.Unbalance(); err != nil {
		return nil, fmt.Errorf("工况 %q 电压: %w", c.Name, err)
	}
	if r.VZeroUnbalance, err = r.VSeq.ZeroUnbalance(); err != nil {
		return nil, fmt.Errorf("工况 %q 电压: %w", c.Name, err)
	}

	if c.Currents != nil {
		r.HasCurrents = true
		r.IPhase = c.Currents.Phases()
		if r.ILine, err = threephase.LineCurrents(c.Connection, r.IPhase); err != nil {
			return nil, fmt.Errorf("工况 %q: %w", c.Name, err)
		}
		r.ISeq = r.IPhase.Sequence()
		if u, err := r.ISeq.Unbalance(); err == nil {
			r.IUnbalance = u
		}
		v, i := r.VPhase.Slice(), r.IPhase.Slice()
		for k := range v {
			r.Power += singlephase.ComplexPower(v[k], i[k])
		}
		r.PositivePower = threephase.ApparentPower(r.VSeq.Positive, r.ISeq.Positive)
	}

	if base, ok := c.PerUnitBase(); ok {
		vl := r.VLine.Sequence().Positive
		if r.VPU, r.SPU, err = base.PerUnit(cmplx.Abs(vl), cmplx.Abs(r.Power)); err != nil {
			return nil, fmt.Errorf("工况 %q 基准: %w", c.Name, err)
		}
		r.HasBase = true
	}
	return r, nil
}

func si(v float64, unit string) string { return humanize.SIWithDigits(v, 3, unit) }

func polar(z complex128, unit string) string {
	m, d := phasor.Polar(z)
	return fmt.Sprintf("%s∠%.2f°", si(m, unit), d)
}

// WriteTo 输出可读文本
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var b strings.Builder
	fmt.Fprintf(&b, "工况: %s (%s)\n", r.Name, r.Connection)
	writePhases := func(title string, p phasor.Phases, names [3]string, unit string) {
		fmt.Fprintf(&b, "%s:\n", title)
		for i, v := range p.Slice() {
			fmt.Fprintf(&b, "  %-4s %s\n", names[i], polar(v, unit))
		}
	}
	writeSeq := func(title string, s phasor.Sequence, unit string) {
		fmt.Fprintf(&b, "%s:\n", title)
		for i, v := range s.Slice() {
			fmt.Fprintf(&b, "  %-4s %s\n", [3]string{"0", "+", "-"}[i], polar(v, unit))
		}
	}
	writePhases("相电压", r.VPhase, [3]string{"Va", "Vb", "Vc"}, "V")
	writePhases("线电压", r.VLine, [3]string{"Vab", "Vbc", "Vca"}, "V")
	writeSeq("电压对称分量", r.VSeq, "V")
	fmt.Fprintf(&b, "电压不平衡度: 负序 %.3f%%, 零序 %.3f%%\n", r.VUnbalance*100, r.VZeroUnbalance*100)
	if r.HasCurrents {
		writePhases("相电流", r.IPhase, [3]string{"Ia", "Ib", "Ic"}, "A")
		writePhases("线电流", r.ILine, [3]string{"IA", "IB", "IC"}, "A")
		writeSeq("电流对称分量", r.ISeq, "A")
		fmt.Fprintf(&b, "电流不平衡度: %.3f%%\n", r.IUnbalance*100)
		fmt.Fprintf(&b, "总功率: P=%s Q=%s S=%s\n",
			si(real(r.Power), "W"), si(imag(r.Power), "var"), si(cmplx.Abs(r.Power), "VA"))
		fmt.Fprintf(&b, "正序功率: P=%s Q=%s\n", si(real(r.PositivePower), "W"), si(imag(r.PositivePower), "var"))
	}
	if r.HasBase {
		fmt.Fprintf(&b, "标幺值: V=%.4f pu S=%.4f pu\n", r.VPU, r.SPU)
	}
	n, err := io.WriteString(w, b.String())
	return int64(n), err
}

// Vectors 相量图数据：相电压及其对称分量，有电流时附加相电流
func (r *Report) Vectors() []diagram.Vector {
	v := append(diagram.PhaseVectors("V", r.VPhase), diagram.SequenceVectors("V", r.VSeq)...)
	if r.HasCurrents {
		v = append(v, diagram.PhaseVectors("I", r.IPhase)...)
	}
	return v
}

// Charts 网页相量图
func (r *Report) Charts() *diagram.Charts {
	seq := map[string]phasor.Sequence{"V": r.VSeq}
	if r.HasCurrents {
		seq["I"] = r.ISeq
	}
	return &diagram.Charts{Title: r.Name, Vectors: r.Vectors(), Sequence: seq}
}
