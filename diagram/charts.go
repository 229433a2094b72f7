package diagram

import (
	"io"
	"log"
	"math/cmplx"
	"net/http"

	"phasecalc/phasor"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/go-echarts/go-echarts/v2/types"
)

// Charts 网页相量图
type Charts struct {
	Title    string
	Vectors  []Vector                   // 相量图内容
	Sequence map[string]phasor.Sequence // 对称分量幅值柱状图，键为量名称
}

// Render 格式化
func (c *Charts) Render(w io.Writer) error {
	page := components.NewPage()
	page.SetPageTitle(c.Title)
	page.AddCharts(c.phasorChart())
	if len(c.Sequence) > 0 {
		page.AddCharts(c.sequenceChart())
	}
	return page.Render(w)
}

func (c *Charts) phasorChart() *charts.Line {
	extent := Extent(c.Vectors) * 1.1
	if extent == 0 {
		extent = 1
	}
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    c.Title,
			Subtitle: "相量图",
		}),
		charts.WithLegendOpts(opts.Legend{
			Type:   "scroll",
			Orient: "vertical",
			Right:  "10",
			Top:    "20",
			Bottom: "20",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{
			Type: "value",
			Name: "Re",
			Min:  -extent,
			Max:  extent,
		}),
		charts.WithYAxisOpts(opts.YAxis{
			Type: "value",
			Name: "Im",
			Min:  -extent,
			Max:  extent,
		}),
	)
	for _, v := range c.Vectors {
		line.AddSeries(v.Name, []opts.LineData{
			{Value: []float64{0, 0}, Symbol: "none"},
			{Value: []float64{real(v.Value), imag(v.Value)}, Name: phasor.String(v.Value), Symbol: "arrow", SymbolSize: 12},
		})
	}
	return line
}

func (c *Charts) sequenceChart() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			Theme: types.ThemeWesteros,
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "对称分量",
			Subtitle: "零序、正序、负序分量幅值",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{
			Scale: opts.Bool(true),
		}),
	)
	bar.SetXAxis([]string{"零序", "正序", "负序"})
	for _, name := range sortedKeys(c.Sequence) {
		s := c.Sequence[name]
		items := make([]opts.BarData, 0, 3)
		for _, v := range s.Slice() {
			items = append(items, opts.BarData{Value: cmplx.Abs(v)})
		}
		bar.AddSeries(name, items)
	}
	return bar
}

// Handler 发布到网页面
func (c *Charts) Handler(w http.ResponseWriter, _ *http.Request) {
	if err := c.Render(w); err != nil {
		c.Error(err)
	}
}

func (c *Charts) Error(err error) { log.Println(err) }
