package main

import (
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"lob-dash/internal/loader"
	"lob-dash/internal/model"
	"lob-dash/internal/render"
	"lob-dash/internal/service"
	"lob-dash/internal/transform"
)

func main() {
	service.InitLogger()
	defer service.Logger.Sync()

	// 数据目录来自第一个参数，缺省为 data（与引擎 --dump-data 的约定一致）
	dataDir := "data"
	if len(os.Args) > 1 {
		dataDir = os.Args[1]
	}
	if _, err := os.Stat(dataDir); os.IsNotExist(err) {
		service.Logger.Fatal("Data directory not found. Run: lob_engine --simulate 100000 --dump-data "+dataDir,
			zap.String("dir", dataDir))
	}

	// 配置可选，找不到 config/config.yaml 时使用内置默认值
	cfg := service.LoadConfig("config")

	book, latency, trades, err := loader.LoadAll(dataDir)
	if err != nil {
		service.Logger.Fatal("Failed to load data", zap.Error(err))
	}
	service.Logger.Info("Data loaded",
		zap.Int("book_levels", len(book)),
		zap.Int("latency_samples", len(latency)),
		zap.Int("trades", len(trades)))

	// 三个转换互相独立且无共享状态，可以并行执行
	var (
		wg   sync.WaitGroup
		view model.DepthView
		sum  *model.LatencySummary
		ts   *model.TradeSeries
	)
	wg.Add(3)
	go func() {
		defer wg.Done()
		view = transform.BuildDepthView(book)
	}()
	go func() {
		defer wg.Done()
		sum = transform.SummarizeLatency(latency, cfg.Render.ClipPercentile)
	}()
	go func() {
		defer wg.Done()
		ts = transform.ReduceTrades(trades, transform.PolicyFromConfig(&cfg.Render))
	}()
	wg.Wait()

	if sum != nil {
		service.Logger.Info("Latency report",
			zap.Int("count", sum.Count),
			zap.Int64("min_ns", sum.Min),
			zap.Float64("mean_ns", sum.Mean),
			zap.Float64("p50_ns", sum.P50),
			zap.Float64("p90_ns", sum.P90),
			zap.Float64("p99_ns", sum.P99),
			zap.Int64("max_ns", sum.Max))
	} else {
		service.Logger.Warn("Latency: no samples")
	}

	img, err := render.Compose(view, sum, ts, cfg)
	if err != nil {
		service.Logger.Fatal("Failed to render dashboard", zap.Error(err))
	}

	outPath := filepath.Join(dataDir, cfg.Render.Output)
	if err := render.WritePNG(outPath, img); err != nil {
		service.Logger.Fatal("Failed to write dashboard", zap.Error(err))
	}
	service.Logger.Info("Saved dashboard", zap.String("path", outPath))
}
