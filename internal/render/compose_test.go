package render

import (
	"testing"

	"lob-dash/internal/model"
	"lob-dash/internal/service"
	"lob-dash/internal/transform"
)

func testConfig() *service.Config {
	cfg := service.DefaultConfig()
	// smaller panels keep the test fast
	cfg.Render.Theme.PanelWidth = 320
	cfg.Render.Theme.PanelHeight = 240
	return &cfg
}

func TestComposeWithData(t *testing.T) {
	cfg := testConfig()

	view := transform.BuildDepthView([]model.BookLevelRow{
		{Side: model.SideBid, PriceCents: 10050, TotalQty: 100},
		{Side: model.SideBid, PriceCents: 10025, TotalQty: 50},
		{Side: model.SideAsk, PriceCents: 10075, TotalQty: 80},
	})
	sum := transform.SummarizeLatency([]int64{100, 120, 140, 200, 900}, cfg.Render.ClipPercentile)
	ts := transform.ReduceTrades([]model.TradeRow{
		{TradeIdx: 0, PriceCents: 10050, Qty: 5},
		{TradeIdx: 1, PriceCents: 10060, Qty: 8},
		{TradeIdx: 2, PriceCents: 10040, Qty: 3},
	}, transform.PolicyFromConfig(&cfg.Render))

	img, err := Compose(view, sum, ts, cfg)
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	b := img.Bounds()
	if b.Dx() != 3*cfg.Render.Theme.PanelWidth || b.Dy() != cfg.Render.Theme.PanelHeight {
		t.Fatalf("composed size got %dx%d want %dx%d",
			b.Dx(), b.Dy(), 3*cfg.Render.Theme.PanelWidth, cfg.Render.Theme.PanelHeight)
	}
}

func TestComposeSmoothedSeries(t *testing.T) {
	cfg := testConfig()
	p := transform.PolicyFromConfig(&cfg.Render)
	p.SmoothThreshold = 10

	rows := make([]model.TradeRow, 100)
	for i := range rows {
		rows[i] = model.TradeRow{TradeIdx: int64(i), PriceCents: int64(10000 + i), Qty: 1}
	}
	ts := transform.ReduceTrades(rows, p)
	if ts.Kind != model.SeriesSmoothed {
		t.Fatalf("fixture should be smoothed, got %s", ts.Kind)
	}

	if _, err := Compose(model.DepthView{}, nil, ts, cfg); err != nil {
		t.Fatalf("compose failed: %v", err)
	}
}

func TestComposeAllEmptyRendersPlaceholders(t *testing.T) {
	cfg := testConfig()

	img, err := Compose(model.DepthView{}, nil, nil, cfg)
	if err != nil {
		t.Fatalf("compose failed on empty inputs: %v", err)
	}
	if img == nil {
		t.Fatal("expected an image with placeholder panels")
	}
	b := img.Bounds()
	if b.Dx() != 3*cfg.Render.Theme.PanelWidth {
		t.Fatalf("composed width got %d want %d", b.Dx(), 3*cfg.Render.Theme.PanelWidth)
	}
}

func TestHistogramBinning(t *testing.T) {
	counts, width := histogram([]float64{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, 5)
	if len(counts) != 5 {
		t.Fatalf("bins got %d want 5", len(counts))
	}
	total := 0
	for _, c := range counts {
		total += c
	}
	if total != 10 {
		t.Fatalf("bin counts sum to %d want 10", total)
	}
	if width <= 0 {
		t.Fatalf("bin width got %v want > 0", width)
	}
}

func TestHistogramDegenerateAllEqual(t *testing.T) {
	counts, _ := histogram([]float64{5, 5, 5}, 80)
	if len(counts) != 1 || counts[0] != 3 {
		t.Fatalf("degenerate histogram got %v want single bin of 3", counts)
	}
}
