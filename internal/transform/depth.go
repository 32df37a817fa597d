package transform

import (
	"sort"

	"lob-dash/internal/model"
)

// BuildDepthView 将订单簿档位行转换为双侧累计深度曲线和推荐价格窗口
// 纯函数，不修改输入；单侧为空是合法状态（单边簿），产出空曲线而非错误
func BuildDepthView(rows []model.BookLevelRow) model.DepthView {
	var bids, asks []model.BookLevelRow
	for _, r := range rows {
		switch r.Side {
		case model.SideBid:
			bids = append(bids, r)
		case model.SideAsk:
			asks = append(asks, r)
		}
	}

	// 买方按价格降序、卖方按价格升序排序后，累计和才表示
	// “在该价位或更优价位可成交的总量”
	sort.Slice(bids, func(i, j int) bool { return bids[i].PriceCents > bids[j].PriceCents })
	sort.Slice(asks, func(i, j int) bool { return asks[i].PriceCents < asks[j].PriceCents })

	view := model.DepthView{
		Bids: buildCurve(bids),
		Asks: buildCurve(asks),
	}
	view.Window = priceWindow(view.Bids.Prices, view.Asks.Prices)
	return view
}

// buildCurve 在已排序的档位上做累计和，并把美分换算成显示价格
func buildCurve(sorted []model.BookLevelRow) model.DepthCurve {
	curve := model.DepthCurve{
		Prices: make([]float64, 0, len(sorted)),
		CumQty: make([]float64, 0, len(sorted)),
	}
	var cum float64
	for _, r := range sorted {
		cum += float64(r.TotalQty)
		curve.Prices = append(curve.Prices, float64(r.PriceCents)/100.0)
		curve.CumQty = append(curve.CumQty, cum)
	}
	return curve
}

// priceWindow 计算围绕价差区域的缩放窗口
// margin = max(span*0.05, 0.10)，两侧都为空时返回 nil（使用默认坐标轴）
func priceWindow(bidPrices, askPrices []float64) *model.PriceWindow {
	all := make([]float64, 0, len(bidPrices)+len(askPrices))
	all = append(all, bidPrices...)
	all = append(all, askPrices...)
	if len(all) == 0 {
		return nil
	}

	min, max := all[0], all[0]
	for _, p := range all[1:] {
		if p < min {
			min = p
		}
		if p > max {
			max = p
		}
	}

	span := max - min
	margin := span * 0.05
	if margin < 0.10 {
		margin = 0.10
	}
	return &model.PriceWindow{Min: min - margin, Max: max + margin}
}
