// Package diagram 相量图绘制
package diagram

import (
	"io"
	"math"
	"math/cmplx"

	"phasecalc/phasor"
	"phasecalc/types"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Vector 相量图中的一个命名相量
type Vector struct {
	Name  string
	Value complex128
}

// PhaseVectors 三相相量转为 A, B, C 命名相量
func PhaseVectors(prefix string, p phasor.Phases) []Vector {
	return []Vector{
		{Name: prefix + "a", Value: p.A},
		{Name: prefix + "b", Value: p.B},
		{Name: prefix + "c", Value: p.C},
	}
}

// SequenceVectors 对称分量转为命名相量
func SequenceVectors(prefix string, s phasor.Sequence) []Vector {
	return []Vector{
		{Name: prefix + "0", Value: s.Zero},
		{Name: prefix + "1", Value: s.Positive},
		{Name: prefix + "2", Value: s.Negative},
	}
}

// Extent 所有相量的最大幅值
func Extent(vectors []Vector) float64 {
	var m float64
	for _, v := range vectors {
		m = math.Max(m, cmplx.Abs(v.Value))
	}
	return m
}

// arrowHead 箭头两翼端点
func arrowHead(z complex128, size float64) plotter.XYs {
	back := -z / complex(cmplx.Abs(z), 0) * complex(size, 0)
	l := z + back*phasor.New(1, 25)
	r := z + back*phasor.New(1, -25)
	return plotter.XYs{
		{X: real(l), Y: imag(l)},
		{X: real(z), Y: imag(z)},
		{X: real(r), Y: imag(r)},
	}
}

// New 构建相量图，每个相量为一条从原点出发的带箭头线段
func New(title string, vectors []Vector) (*plot.Plot, error) {
	if len(vectors) == 0 {
		return nil, types.Invalid("no vectors to plot")
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Re"
	p.Y.Label.Text = "Im"
	p.Add(plotter.NewGrid())

	extent := Extent(vectors)
	if extent == 0 {
		extent = 1
	}
	for i, v := range vectors {
		line, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: real(v.Value), Y: imag(v.Value)}})
		if err != nil {
			return nil, err
		}
		line.LineStyle.Width = vg.Points(1.5)
		line.LineStyle.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(v.Name, line)
		if v.Value == 0 {
			continue
		}
		head, err := plotter.NewLine(arrowHead(v.Value, extent*0.05))
		if err != nil {
			return nil, err
		}
		head.LineStyle = line.LineStyle
		p.Add(head)
	}
	// 坐标轴等比例，原点居中
	margin := extent * 1.1
	p.X.Min, p.X.Max = -margin, margin
	p.Y.Min, p.Y.Max = -margin, margin
	p.Legend.Top = true
	return p, nil
}

// Plot 绘制相量图并以指定格式（png、svg、pdf 等）写出
func Plot(w io.Writer, title, format string, vectors []Vector) error {
	p, err := New(title, vectors)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(5*vg.Inch, 5*vg.Inch, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
