package diagram

import (
	"bytes"
	"errors"
	"math"
	"net/http/httptest"
	"strings"
	"testing"

	"phasecalc/phasor"
	"phasecalc/types"
)

func testVectors() []Vector {
	p := phasor.Phases{A: phasor.New(1, 0), B: phasor.New(0.8, -115), C: phasor.New(1.1, 125)}
	return append(PhaseVectors("V", p), SequenceVectors("V", p.Sequence())...)
}

// TestVectors 验证三相与对称分量相量的命名和最大幅值
func TestVectors(t *testing.T) {
	v := testVectors()
	if len(v) != 6 || v[0].Name != "Va" || v[4].Name != "V1" {
		t.Errorf("相量命名不正确: %+v", v)
	}
	if e := Extent(v); math.Abs(e-1.1) > 1e-12 {
		t.Errorf("最大幅值应为 1.1, 实际 %v", e)
	}
}

// TestPlot 验证相量图以 PNG、SVG 格式输出以及错误路径
func TestPlot(t *testing.T) {
	var buf bytes.Buffer
	if err := Plot(&buf, "相量图", "png", testVectors()); err != nil {
		t.Fatalf("绘制失败 %s", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Errorf("输出不是 PNG 格式")
	}

	buf.Reset()
	if err := Plot(&buf, "phasors", "svg", []Vector{{Name: "zero", Value: 0}}); err != nil {
		t.Fatalf("零相量绘制失败 %s", err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("输出不是 SVG 格式")
	}

	if err := Plot(&buf, "empty", "png", nil); !errors.Is(err, types.ErrInvalidInput) {
		t.Errorf("空相量应返回 ErrInvalidInput, 实际 %v", err)
	}
	if err := Plot(&buf, "bad", "bmp-unknown", testVectors()); err == nil {
		t.Errorf("未知格式应返回错误")
	}
}

// TestCharts 验证网页相量图的渲染内容和 HTTP 处理函数
func TestCharts(t *testing.T) {
	p := phasor.Phases{A: phasor.New(1, 0), B: phasor.New(0.8, -115), C: phasor.New(1.1, 125)}
	c := &Charts{
		Title:    "feeder-7",
		Vectors:  testVectors(),
		Sequence: map[string]phasor.Sequence{"V": p.Sequence()},
	}
	var buf bytes.Buffer
	if err := c.Render(&buf); err != nil {
		t.Fatalf("渲染失败 %s", err)
	}
	html := buf.String()
	for _, want := range []string{"feeder-7", "Va", "V2", "正序"} {
		if !strings.Contains(html, want) {
			t.Errorf("页面缺少 %q", want)
		}
	}

	rec := httptest.NewRecorder()
	c.Handler(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != 200 || !strings.Contains(rec.Body.String(), "feeder-7") {
		t.Errorf("HTTP 输出不正确: %d", rec.Code)
	}
}
