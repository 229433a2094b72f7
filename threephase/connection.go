package threephase

import (
	"strings"

	"phasecalc/types"
)

// Connection 三相连接方式
type Connection uint8

const (
	Wye   Connection = iota // 星形 (Y)
	Delta                   // 三角形 (Δ)
)

var connectionNames = map[string]Connection{
	"wye":   Wye,
	"y":     Wye,
	"star":  Wye,
	"delta": Delta,
	"d":     Delta,
}

// ParseConnection 解析连接方式名称，不区分大小写
func ParseConnection(s string) (Connection, error) {
	if c, ok := connectionNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return c, nil
	}
	return 0, types.Invalid("unknown connection %q", s)
}

func (c Connection) String() string {
	switch c {
	case Wye:
		return "wye"
	case Delta:
		return "delta"
	}
	return "unknown"
}

func (c Connection) MarshalText() ([]byte, error) {
	if c != Wye && c != Delta {
		return nil, types.Invalid("unknown connection %d", uint8(c))
	}
	return []byte(c.String()), nil
}

func (c *Connection) UnmarshalText(text []byte) (err error) {
	*c, err = ParseConnection(string(text))
	return err
}
