// Package phasecalc 三相相量分析
//
// 从 YAML 工况文件读取三相电压、电流相量，计算对称分量、不平衡度、
// 相/线换算、复功率和标幺值。
package phasecalc

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"phasecalc/maths"
	"phasecalc/perunit"
	"phasecalc/phasor"
	"phasecalc/threephase"
	"phasecalc/types"

	"github.com/dustin/go-humanize"
	"gopkg.in/yaml.v3"
)

// Quantity 数值，YAML 中可写为数字或带 SI 前缀的字符串（"13.8k"、"100MVA"）
type Quantity float64

func (q *Quantity) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: %w: quantity must be a scalar", value.Line, types.ErrInvalidInput)
	}
	s := strings.TrimSpace(value.Value)
	v, err := strconv.ParseFloat(s, 64)
	if errors.Is(err, strconv.ErrRange) {
		return fmt.Errorf("line %d: %w: quantity %q out of range", value.Line, types.ErrInvalidInput, s)
	}
	if err != nil {
		if v, _, err = humanize.ParseSI(s); err != nil {
			return fmt.Errorf("line %d: %w: quantity %q", value.Line, types.ErrInvalidInput, s)
		}
	}
	if !maths.IsFinite(v) {
		return fmt.Errorf("line %d: %w: quantity %q is not finite", value.Line, types.ErrInvalidInput, s)
	}
	*q = Quantity(v)
	return nil
}

func (q Quantity) MarshalYAML() (any, error) { return float64(q), nil }

// Polar 极坐标相量，角度单位为度
type Polar struct {
	Mag Quantity `yaml:"mag"`
	Ang float64  `yaml:"ang"`
}

// Complex 转为相量
func (p Polar) Complex() complex128 { return phasor.New(float64(p.Mag), p.Ang) }

// PolarOf 由相量构造极坐标值
func PolarOf(z complex128) Polar {
	m, d := phasor.Polar(z)
	return Polar{Mag: Quantity(m), Ang: d}
}

// PhaseSet 三相极坐标相量
type PhaseSet struct {
	A Polar `yaml:"a"`
	B Polar `yaml:"b"`
	C Polar `yaml:"c"`
}

// Phases 转为三相相量
func (s PhaseSet) Phases() phasor.Phases {
	return phasor.Phases{A: s.A.Complex(), B: s.B.Complex(), C: s.C.Complex()}
}

// BaseSet 标幺制基准
type BaseSet struct {
	S Quantity `yaml:"s"` // 三相基准容量 (VA)
	V Quantity `yaml:"v"` // 线电压基准 (V)
}

// Case 三相分析工况
type Case struct {
	Name       string                `yaml:"name"`
	Connection threephase.Connection `yaml:"connection"`
	Base       *BaseSet              `yaml:"base,omitempty"`
	Voltages   PhaseSet              `yaml:"voltages"`           // 相电压（绕组电压）
	Currents   *PhaseSet             `yaml:"currents,omitempty"` // 相电流（绕组电流）
}

// LoadCase 加载 YAML 工况文件
func LoadCase(filename string) (*Case, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ParseCase(data)
}

// ParseCase 解析 YAML 工况数据
func ParseCase(data []byte) (*Case, error) {
	c := &Case{}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("解析工况失败: %w", err)
	}
	return c, nil
}

// Export 导出 YAML 工况文件
func (c *Case) Export(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	enc := yaml.NewEncoder(file)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return err
	}
	return enc.Close()
}

// PerUnitBase 标幺制基准，未配置时返回 false
func (c *Case) PerUnitBase() (perunit.Base, bool) {
	if c.Base == nil {
		return perunit.Base{}, false
	}
	return perunit.Base{S: float64(c.Base.S), V: float64(c.Base.V)}, true
}
