package transform

import (
	"github.com/markcheno/go-talib"

	"lob-dash/internal/model"
	"lob-dash/internal/service"
)

// TradePolicy 控制成交序列的降采样决策
// 这是性能/可读性取舍而非业务正确性，阈值在配置中可调，
// 测试时两条路径都必须独立可达
type TradePolicy struct {
	SmoothThreshold int // 超过该成交数切换到平滑模式
	WindowDivisor   int // 平滑窗口 = max(n/WindowDivisor, MinWindow)
	MinWindow       int
	SizeScale       float64 // 散点大小 = clamp(qty*SizeScale, SizeMin, SizeMax)
	SizeMin         float64
	SizeMax         float64
}

// PolicyFromConfig 从渲染配置构造降采样策略
func PolicyFromConfig(cfg *service.RenderConfig) TradePolicy {
	return TradePolicy{
		SmoothThreshold: cfg.SmoothThreshold,
		WindowDivisor:   cfg.WindowDivisor,
		MinWindow:       cfg.MinWindow,
		SizeScale:       cfg.Size.Scale,
		SizeMin:         cfg.Size.Min,
		SizeMax:         cfg.Size.Max,
	}
}

// ReduceTrades 将成交行转换为 Raw 或 Smoothed 序列
// 输入为空时返回 nil（“无数据”状态）
// 分支在这里一次性确定，下游只按 Kind 分派
func ReduceTrades(rows []model.TradeRow, p TradePolicy) *model.TradeSeries {
	n := len(rows)
	if n == 0 {
		return nil
	}

	indices := make([]float64, n)
	prices := make([]float64, n)
	for i, r := range rows {
		indices[i] = float64(r.TradeIdx)
		prices[i] = float64(r.PriceCents) / 100.0
	}

	if n <= p.SmoothThreshold {
		sizes := make([]float64, n)
		for i, r := range rows {
			sizes[i] = clamp(float64(r.Qty)*p.SizeScale, p.SizeMin, p.SizeMax)
		}
		return &model.TradeSeries{
			Kind: model.SeriesRaw,
			Raw:  &model.RawTrades{Indices: indices, Prices: prices, Sizes: sizes},
		}
	}

	window := n / p.WindowDivisor
	if window < p.MinWindow {
		window = p.MinWindow
	}
	if window > n {
		window = n
	}

	// talib.Sma 的前 window-1 个输出是补位，切掉后剩下的就是
	// valid 模式卷积：长度 n-window+1，无边缘填充
	smoothed := talib.Sma(prices, window)[window-1:]

	// 按 window/2 偏移 X 轴，使均值居中于其窗口之下而非左对齐
	offset := window / 2
	x := make([]float64, len(smoothed))
	for i := range x {
		x[i] = float64(i + offset)
	}

	return &model.TradeSeries{
		Kind: model.SeriesSmoothed,
		Smoothed: &model.SmoothedTrades{
			X:      x,
			Y:      smoothed,
			Window: window,
			// 原始序列完整保留，用于淡色叠加
			RawIndices: indices,
			RawPrices:  prices,
		},
	}
}

func clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
