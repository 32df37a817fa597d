package transform

import (
	"testing"

	"lob-dash/internal/model"
	"lob-dash/internal/service"
)

func defaultPolicy() TradePolicy {
	cfg := service.DefaultConfig()
	return PolicyFromConfig(&cfg.Render)
}

func makeTrades(n int) []model.TradeRow {
	rows := make([]model.TradeRow, n)
	for i := range rows {
		rows[i] = model.TradeRow{
			TradeIdx:   int64(i),
			PriceCents: int64(10000 + i%100),
			Qty:        int64(1 + i%20),
		}
	}
	return rows
}

func TestReduceTradesRawPath(t *testing.T) {
	rows := []model.TradeRow{
		{TradeIdx: 0, PriceCents: 10050, Qty: 1},   // 0.5 -> clamped up to 2
		{TradeIdx: 1, PriceCents: 10100, Qty: 10},  // 5
		{TradeIdx: 2, PriceCents: 10150, Qty: 100}, // 50 -> clamped down to 30
	}

	ts := ReduceTrades(rows, defaultPolicy())
	if ts == nil || ts.Kind != model.SeriesRaw {
		t.Fatalf("expected raw series, got %+v", ts)
	}
	r := ts.Raw
	if len(r.Indices) != 3 || len(r.Prices) != 3 || len(r.Sizes) != 3 {
		t.Fatalf("raw lengths got %d/%d/%d want 3", len(r.Indices), len(r.Prices), len(r.Sizes))
	}
	if !almostEqual(r.Prices[0], 100.50) {
		t.Fatalf("price[0] got %v want 100.50", r.Prices[0])
	}
	want := []float64{2, 5, 30}
	for i, w := range want {
		if !almostEqual(r.Sizes[i], w) {
			t.Fatalf("size[%d] got %v want %v", i, r.Sizes[i], w)
		}
	}
}

func TestReduceTradesSmoothedPath(t *testing.T) {
	// lowered threshold so the smoothed branch is reachable with a small fixture
	p := defaultPolicy()
	p.SmoothThreshold = 5
	p.WindowDivisor = 5
	p.MinWindow = 4

	rows := make([]model.TradeRow, 20)
	for i := range rows {
		rows[i] = model.TradeRow{TradeIdx: int64(i), PriceCents: int64(100 * (i + 1)), Qty: 1}
	}

	ts := ReduceTrades(rows, p)
	if ts == nil || ts.Kind != model.SeriesSmoothed {
		t.Fatalf("expected smoothed series, got %+v", ts)
	}
	s := ts.Smoothed

	if s.Window != 4 { // max(20/5, 4)
		t.Fatalf("window got %d want 4", s.Window)
	}
	if len(s.Y) != 17 { // n - window + 1
		t.Fatalf("smoothed length got %d want 17", len(s.Y))
	}
	if len(s.X) != len(s.Y) {
		t.Fatalf("x/y length mismatch: %d vs %d", len(s.X), len(s.Y))
	}

	// centered alignment: first x = window/2
	if !almostEqual(s.X[0], 2) {
		t.Fatalf("x[0] got %v want 2", s.X[0])
	}
	// prices are 1..20 dollars; first valid window = mean(1,2,3,4)
	if !almostEqual(s.Y[0], 2.5) {
		t.Fatalf("y[0] got %v want 2.5", s.Y[0])
	}
	if !almostEqual(s.Y[16], 18.5) {
		t.Fatalf("y[16] got %v want 18.5", s.Y[16])
	}

	// faint overlay keeps the full raw series
	if len(s.RawIndices) != 20 || len(s.RawPrices) != 20 {
		t.Fatalf("raw overlay lengths got %d/%d want 20", len(s.RawIndices), len(s.RawPrices))
	}
}

func TestReduceTradesThresholdBoundary(t *testing.T) {
	p := defaultPolicy()

	ts := ReduceTrades(makeTrades(5000), p)
	if ts == nil || ts.Kind != model.SeriesRaw {
		t.Fatalf("n=5000 should stay raw, got %+v", ts)
	}
	if len(ts.Raw.Indices) != 5000 {
		t.Fatalf("raw length got %d want 5000", len(ts.Raw.Indices))
	}

	ts = ReduceTrades(makeTrades(5001), p)
	if ts == nil || ts.Kind != model.SeriesSmoothed {
		t.Fatalf("n=5001 should be smoothed, got %+v", ts)
	}
	s := ts.Smoothed
	if s.Window != 10 { // max(5001/500, 10) = max(10, 10)
		t.Fatalf("window got %d want 10", s.Window)
	}
	if len(s.Y) != 4992 { // 5001 - 10 + 1
		t.Fatalf("smoothed length got %d want 4992", len(s.Y))
	}
	if len(s.RawPrices) != 5001 {
		t.Fatalf("raw overlay length got %d want 5001", len(s.RawPrices))
	}
}

func TestReduceTradesEmpty(t *testing.T) {
	if ts := ReduceTrades(nil, defaultPolicy()); ts != nil {
		t.Fatalf("expected nil for empty input, got %+v", ts)
	}
}
