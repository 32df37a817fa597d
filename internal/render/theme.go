package render

import (
	"strings"

	"github.com/wcharczuk/go-chart/v2/drawing"

	"lob-dash/internal/service"
)

// theme 是解析后的视觉主题，渲染期间只读
type theme struct {
	bid    drawing.Color
	ask    drawing.Color
	trade  drawing.Color
	smooth drawing.Color
	faint  drawing.Color

	width  int
	height int
}

func newTheme(cfg *service.ThemeConfig) theme {
	return theme{
		bid:    hexColor(cfg.BidColor),
		ask:    hexColor(cfg.AskColor),
		trade:  hexColor(cfg.TradeColor),
		smooth: hexColor(cfg.SmoothColor),
		faint:  hexColor(cfg.FaintColor),
		width:  cfg.PanelWidth,
		height: cfg.PanelHeight,
	}
}

// hexColor 解析 "#rrggbb" 形式的配置颜色
func hexColor(s string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(s, "#"))
}

// withAlpha 返回带透明度的同色（用于填充和淡色叠加）
func withAlpha(c drawing.Color, a uint8) drawing.Color {
	c.A = a
	return c
}
