package model

// Side 代表订单簿的买卖方向
type Side string

const (
	SideBid Side = "BID" // 买方
	SideAsk Side = "ASK" // 卖方
)

func (s Side) String() string {
	return string(s)
}

// BookLevelRow 代表 book.csv 的一行（某一价位档的聚合挂单量）
// 调用方保证同一方向内价格唯一，这里不做去重
type BookLevelRow struct {
	Side       Side  // BID 或 ASK
	PriceCents int64 // 定点价格，单位为美分
	TotalQty   int64 // 该价位的总挂单量 (>= 0)
}

// LatencySample 是 latency.csv 的一行：一次事件处理延迟，单位纳秒
// 样本集合是无序多重集，顺序没有语义
type LatencySample = int64

// TradeRow 代表 trades.csv 的一行（一笔撮合成交）
// TradeIdx 随输入单调不减
type TradeRow struct {
	TradeIdx   int64 // 成交序号
	PriceCents int64 // 成交价格，美分
	Qty        int64 // 成交数量
}

// DepthCurve 是单侧深度曲线：价格序列 + 对应的累计挂单量
// 买方价格严格递减，卖方价格严格递增；CumQty 单调不减
// 每次渲染重新计算，渲染结束即丢弃
type DepthCurve struct {
	Prices []float64 // 显示价格 (美元)
	CumQty []float64 // 累计数量，与 Prices 等长
}

// PriceWindow 是推荐的价格轴显示区间
type PriceWindow struct {
	Min float64
	Max float64
}

// DepthView 是深度图面板的全部派生数据
// Window 为 nil 表示两侧都为空，渲染层应使用默认坐标轴
type DepthView struct {
	Bids   DepthCurve
	Asks   DepthCurve
	Window *PriceWindow
}

// LatencySummary 是延迟样本集的统计摘要
// 所有标量统计 (分位数/均值/极值) 一律来自完整样本集；
// Display 只做显示裁剪，绝不反过来影响统计值
type LatencySummary struct {
	P50   float64
	P90   float64
	P99   float64
	Mean  float64
	Min   int64
	Max   int64
	Count int

	ClipNs  float64   // 显示裁剪阈值 (默认 p99.5)
	Display []float64 // 所有 <= ClipNs 的样本，仅供直方图使用
}

// SeriesKind 标记成交序列的渲染形态
type SeriesKind string

const (
	SeriesRaw      SeriesKind = "RAW"      // 逐笔散点
	SeriesSmoothed SeriesKind = "SMOOTHED" // 移动平均线 + 淡色原始散点
)

// RawTrades 是逐笔散点模式的序列数据
type RawTrades struct {
	Indices []float64 // 成交序号
	Prices  []float64 // 显示价格 (美元)
	Sizes   []float64 // 散点大小提示，已 clamp 到 [Min, Max]
}

// SmoothedTrades 是大数据量下的平滑模式序列数据
// X/Y 是 valid 模式卷积的结果，长度为 n-Window+1；
// X 已按 Window/2 偏移，使均值居中于其窗口之下
type SmoothedTrades struct {
	X      []float64
	Y      []float64
	Window int

	// 原始序列完整保留，用于淡色叠加，平滑模式下也不丢弃
	RawIndices []float64
	RawPrices  []float64
}

// TradeSeries 是成交面板的派生数据，Kind 决定使用哪个分支
// 分支在转换时一次性确定，下游只按 Kind 分派，不做类型探测
type TradeSeries struct {
	Kind     SeriesKind
	Raw      *RawTrades      // Kind == SeriesRaw 时非空
	Smoothed *SmoothedTrades // Kind == SeriesSmoothed 时非空
}
