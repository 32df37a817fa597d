package render

import (
	"fmt"

	chart "github.com/wcharczuk/go-chart/v2"

	"lob-dash/internal/model"
	"lob-dash/internal/service"
)

// priceFormatter 价格轴固定两位小数（美分精度）
func priceFormatter(v interface{}) string {
	return chart.FloatValueFormatterWithFormat(v, "%.2f")
}

// padSeries go-chart 要求每个序列至少两个点，单点序列补一个近邻点
// （同 x 轴上 0.01 的平段，视觉上仍是一个点）
func padSeries(xs, ys []float64) ([]float64, []float64) {
	if len(xs) != 1 {
		return xs, ys
	}
	return []float64{xs[0], xs[0] + 0.01}, []float64{ys[0], ys[0]}
}

// depthPanel 渲染订单簿深度面板（双侧累计曲线 + 价差缩放窗口）
func depthPanel(view model.DepthView, th theme) chart.Chart {
	var series []chart.Series

	if len(view.Bids.Prices) > 0 {
		xs, ys := padSeries(view.Bids.Prices, view.Bids.CumQty)
		series = append(series, chart.ContinuousSeries{
			Name:    "Bids",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: th.bid,
				StrokeWidth: 1.5,
				FillColor:   withAlpha(th.bid, 100),
			},
		})
	}
	if len(view.Asks.Prices) > 0 {
		xs, ys := padSeries(view.Asks.Prices, view.Asks.CumQty)
		series = append(series, chart.ContinuousSeries{
			Name:    "Asks",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeColor: th.ask,
				StrokeWidth: 1.5,
				FillColor:   withAlpha(th.ask, 100),
			},
		})
	}

	xAxis := chart.XAxis{
		Name:           "Price ($)",
		ValueFormatter: priceFormatter,
	}
	if view.Window != nil {
		xAxis.Range = &chart.ContinuousRange{Min: view.Window.Min, Max: view.Window.Max}
	}

	ch := chart.Chart{
		Title:      "Order Book Depth",
		Width:      th.width,
		Height:     th.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 12}},
		XAxis:      xAxis,
		YAxis:      chart.YAxis{Name: "Cumulative Quantity"},
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// latencyPanel 将显示子集分桶后渲染为直方图
// 分位数标记放在标题里（BarChart 不支持叠加竖线序列）
func latencyPanel(sum *model.LatencySummary, bins int, th theme) chart.BarChart {
	counts, _ := histogram(sum.Display, bins)

	bars := make([]chart.Value, len(counts))
	for i, c := range counts {
		bars[i] = chart.Value{
			Value: float64(c),
			Style: chart.Style{FillColor: withAlpha(th.smooth, 190), StrokeColor: th.smooth, StrokeWidth: 0.3},
		}
	}

	barWidth := (th.width - 2*bins - 80) / bins
	if barWidth < 1 {
		barWidth = 1
	}

	return chart.BarChart{
		Title: fmt.Sprintf("Latency  p50=%dns p90=%dns p99=%dns  (n=%d avg=%dns)",
			int64(sum.P50), int64(sum.P90), int64(sum.P99), sum.Count, int64(sum.Mean)),
		Width:      th.width,
		Height:     th.height,
		BarWidth:   barWidth,
		BarSpacing: 2,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 12}},
		YAxis:      chart.YAxis{Name: "Count"},
		Bars:       bars,
	}
}

// histogram 对样本做等宽分桶，返回每桶计数和桶宽
// 所有样本相同时退化为单桶（裁剪阈值等于每个样本也必须可渲染）
func histogram(samples []float64, bins int) ([]int, float64) {
	if bins < 1 {
		bins = 1
	}
	lo, hi := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < lo {
			lo = s
		}
		if s > hi {
			hi = s
		}
	}
	if hi == lo {
		return []int{len(samples)}, 0
	}

	width := (hi - lo) / float64(bins)
	counts := make([]int, bins)
	for _, s := range samples {
		idx := int((s - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return counts, width
}

// tradesPanel 按序列的 Kind 渲染散点或平滑曲线
func tradesPanel(ts *model.TradeSeries, sizeCfg *service.SizeConfig, th theme) chart.Chart {
	var series []chart.Series
	var title string

	switch ts.Kind {
	case model.SeriesSmoothed:
		s := ts.Smoothed
		title = fmt.Sprintf("Trade Prices Over Time  (%d trades)", len(s.RawPrices))
		rawX, rawY := padSeries(s.RawIndices, s.RawPrices)
		smoothX, smoothY := padSeries(s.X, s.Y)
		// 淡色原始散点垫底，平滑曲线叠加在上
		series = append(series, chart.ContinuousSeries{
			Name:    "Raw",
			XValues: rawX,
			YValues: rawY,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    1,
				DotColor:    withAlpha(th.faint, 30),
			},
		})
		series = append(series, chart.ContinuousSeries{
			Name:    fmt.Sprintf("MA(%d)", s.Window),
			XValues: smoothX,
			YValues: smoothY,
			Style: chart.Style{
				StrokeColor: th.smooth,
				StrokeWidth: 1.0,
			},
		})
	case model.SeriesRaw:
		r := ts.Raw
		title = fmt.Sprintf("Trade Prices Over Time  (%d trades)", len(r.Prices))
		xs, ys := padSeries(r.Indices, r.Prices)
		series = append(series, chart.ContinuousSeries{
			Name:    "Trades",
			XValues: xs,
			YValues: ys,
			Style: chart.Style{
				StrokeWidth: chart.Disabled,
				DotWidth:    dotWidth(r.Sizes, sizeCfg),
				DotColor:    withAlpha(th.trade, 150),
			},
		})
	}

	ch := chart.Chart{
		Title:      title,
		Width:      th.width,
		Height:     th.height,
		Background: chart.Style{Padding: chart.Box{Top: 40, Left: 16, Right: 12, Bottom: 12}},
		XAxis:      chart.XAxis{Name: "Trade Index"},
		YAxis: chart.YAxis{
			Name:           "Price ($)",
			ValueFormatter: priceFormatter,
		},
		Series: series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch
}

// dotWidth 把逐点大小提示折算成序列级的点宽
// go-chart 不支持逐点大小，取均值并压缩到合理的像素范围
func dotWidth(sizes []float64, cfg *service.SizeConfig) float64 {
	var sum float64
	for _, s := range sizes {
		sum += s
	}
	mean := sum / float64(len(sizes))

	scale := (mean - cfg.Min) / (cfg.Max - cfg.Min)
	w := 1.5 + scale*4.5
	if w < 1.5 {
		w = 1.5
	}
	if w > 6 {
		w = 6
	}
	return w
}
