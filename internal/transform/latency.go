package transform

import (
	"lob-dash/internal/model"
	"lob-dash/pkg/stats"
)

// SummarizeLatency 计算延迟样本的分位数标记和渲染安全子集
// 样本集为空时返回 nil（“无数据”状态），调用方渲染占位面板，
// 绝不返回零值摘要——零值会被误读成真实统计
//
// Display 只是显示裁剪：所有标量统计永远来自完整样本集，
// 裁剪不允许影响上报的统计值
func SummarizeLatency(samples []model.LatencySample, clipPct float64) *model.LatencySummary {
	if len(samples) == 0 {
		return nil
	}

	sorted := stats.SortedCopy(samples)

	clip := stats.Percentile(sorted, clipPct)
	display := make([]float64, 0, len(sorted))
	for _, s := range sorted {
		if s <= clip {
			display = append(display, s)
		}
	}

	min, max := stats.MinMax(samples)
	return &model.LatencySummary{
		P50:     stats.Percentile(sorted, 50),
		P90:     stats.Percentile(sorted, 90),
		P99:     stats.Percentile(sorted, 99),
		Mean:    stats.Mean(samples),
		Min:     min,
		Max:     max,
		Count:   len(samples),
		ClipNs:  clip,
		Display: display,
	}
}
