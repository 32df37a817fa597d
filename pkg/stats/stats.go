package stats

import (
	"math"
	"sort"
)

// Percentile 对已排序的样本做线性插值分位数计算
// 规则: rank = p/100*(n-1)，在 floor(rank) 和 ceil(rank) 之间插值
// 与 numpy.percentile 的默认定义逐位一致，保证跨实现可复现
// 调用方负责保证 sorted 已升序且非空（排序一次，多次取分位）
func Percentile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return math.NaN()
	}
	if n == 1 {
		return sorted[0]
	}

	rank := p / 100.0 * float64(n-1)
	lo := int(math.Floor(rank))
	hi := int(math.Ceil(rank))
	if lo < 0 {
		return sorted[0]
	}
	if hi >= n {
		return sorted[n-1]
	}
	if lo == hi {
		return sorted[lo]
	}

	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[hi]-sorted[lo])
}

// SortedCopy 将整型样本复制为升序的 float64 切片，不修改输入
func SortedCopy(samples []int64) []float64 {
	out := make([]float64, len(samples))
	for i, s := range samples {
		out[i] = float64(s)
	}
	sort.Float64s(out)
	return out
}

// Mean 计算整型样本的算术平均值
func Mean(samples []int64) float64 {
	if len(samples) == 0 {
		return math.NaN()
	}
	var sum float64
	for _, s := range samples {
		sum += float64(s)
	}
	return sum / float64(len(samples))
}

// MinMax 返回样本的最小值和最大值
func MinMax(samples []int64) (int64, int64) {
	if len(samples) == 0 {
		return 0, 0
	}
	min, max := samples[0], samples[0]
	for _, s := range samples[1:] {
		if s < min {
			min = s
		}
		if s > max {
			max = s
		}
	}
	return min, max
}
