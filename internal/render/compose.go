package render

import (
	"bytes"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"lob-dash/internal/model"
	"lob-dash/internal/service"
)

// renderable 统一 chart.Chart 和 chart.BarChart 的渲染入口
type renderable interface {
	Render(rp chart.RendererProvider, w io.Writer) error
}

// Compose 将三个派生结果排版成一张 1x3 的仪表盘图片
// 任一数据集为空时对应面板降级为占位图，整体渲染绝不中断
func Compose(view model.DepthView, lat *model.LatencySummary, ts *model.TradeSeries, cfg *service.Config) (image.Image, error) {
	th := newTheme(&cfg.Render.Theme)

	panels := make([]image.Image, 0, 3)

	if len(view.Bids.Prices) == 0 && len(view.Asks.Prices) == 0 {
		panels = append(panels, placeholder("No book data", th))
	} else {
		img, err := renderPanel(depthPanel(view, th))
		if err != nil {
			return nil, err
		}
		panels = append(panels, img)
	}

	if lat == nil {
		panels = append(panels, placeholder("No latency data", th))
	} else {
		img, err := renderPanel(latencyPanel(lat, cfg.Render.HistogramBins, th))
		if err != nil {
			return nil, err
		}
		panels = append(panels, img)
	}

	if ts == nil {
		panels = append(panels, placeholder("No trade data", th))
	} else {
		img, err := renderPanel(tradesPanel(ts, &cfg.Render.Size, th))
		if err != nil {
			return nil, err
		}
		panels = append(panels, img)
	}

	return stitch(panels, th), nil
}

// renderPanel 渲染单个面板为内存中的图像
func renderPanel(r renderable) (image.Image, error) {
	var buf bytes.Buffer
	if err := r.Render(chart.PNG, &buf); err != nil {
		return nil, err
	}
	return png.Decode(&buf)
}

// stitch 将面板横向拼接成一张图 (go-chart 没有子图概念)
func stitch(panels []image.Image, th theme) image.Image {
	out := image.NewRGBA(image.Rect(0, 0, th.width*len(panels), th.height))
	draw.Draw(out, out.Bounds(), image.White, image.Point{}, draw.Src)

	for i, p := range panels {
		rect := image.Rect(i*th.width, 0, (i+1)*th.width, th.height)
		draw.Draw(out, rect, p, p.Bounds().Min, draw.Over)
	}
	return out
}

// placeholder 生成带提示文字的空面板，区别于“全零图表”
func placeholder(msg string, th theme) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, th.width, th.height))
	draw.Draw(img, img.Bounds(), image.White, image.Point{}, draw.Src)

	face := basicfont.Face7x13
	textWidth := font.MeasureString(face, msg).Ceil()
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.Gray{Y: 0x60}),
		Face: face,
		Dot: fixed.P(
			(th.width-textWidth)/2,
			th.height/2,
		),
	}
	d.DrawString(msg)
	return img
}

// WritePNG 将合成图持久化到磁盘
func WritePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
