package loader

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"lob-dash/internal/model"
	"lob-dash/internal/service"
)

// 模拟器 --dump-data 输出的三个固定文件名
const (
	BookFile    = "book.csv"
	LatencyFile = "latency.csv"
	TradesFile  = "trades.csv"
)

// header 建立列名到下标的映射，多余的列（如 trades.csv 里的
// taker_id/maker_id）直接忽略
type header map[string]int

func readHeader(r *csv.Reader, path string) (header, error) {
	record, err := r.Read()
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read header: %w", path, err)
	}
	h := make(header, len(record))
	for i, name := range record {
		h[name] = i
	}
	return h, nil
}

// col 查找必需列的下标，缺列视为致命的格式错误
func (h header) col(path, name string) (int, error) {
	idx, ok := h[name]
	if !ok {
		return 0, fmt.Errorf("%s: missing required column %q", path, name)
	}
	return idx, nil
}

// intField 将一个字段解析为整数，失败时报告文件和行号
func intField(record []string, idx int, path string, line int) (int64, error) {
	v, err := service.StringToInt64(record[idx])
	if err != nil {
		return 0, fmt.Errorf("%s:%d: invalid integer %q: %w", path, line, record[idx], err)
	}
	return v, nil
}

// LoadBook 读取订单簿档位数据 (side,price,total_qty)
// 只有表头没有数据行是合法的空输入，返回空切片
func LoadBook(path string) ([]model.BookLevelRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	h, err := readHeader(r, path)
	if err != nil {
		return nil, err
	}
	sideIdx, err := h.col(path, "side")
	if err != nil {
		return nil, err
	}
	priceIdx, err := h.col(path, "price")
	if err != nil {
		return nil, err
	}
	qtyIdx, err := h.col(path, "total_qty")
	if err != nil {
		return nil, err
	}

	var rows []model.BookLevelRow
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}

		side := model.Side(record[sideIdx])
		if side != model.SideBid && side != model.SideAsk {
			return nil, fmt.Errorf("%s:%d: invalid side %q", path, line, record[sideIdx])
		}
		price, err := intField(record, priceIdx, path, line)
		if err != nil {
			return nil, err
		}
		qty, err := intField(record, qtyIdx, path, line)
		if err != nil {
			return nil, err
		}

		rows = append(rows, model.BookLevelRow{Side: side, PriceCents: price, TotalQty: qty})
	}
	return rows, nil
}

// LoadLatency 读取延迟样本 (sample_ns)，样本集合无序
func LoadLatency(path string) ([]model.LatencySample, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	h, err := readHeader(r, path)
	if err != nil {
		return nil, err
	}
	sampleIdx, err := h.col(path, "sample_ns")
	if err != nil {
		return nil, err
	}

	var samples []int64
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		s, err := intField(record, sampleIdx, path, line)
		if err != nil {
			return nil, err
		}
		samples = append(samples, s)
	}
	return samples, nil
}

// LoadTrades 读取成交记录 (trade_idx,price,qty)
// 引擎还会写 taker_id/maker_id 列，这里不需要，按表头定位后忽略
func LoadTrades(path string) ([]model.TradeRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r := csv.NewReader(f)
	h, err := readHeader(r, path)
	if err != nil {
		return nil, err
	}
	idxIdx, err := h.col(path, "trade_idx")
	if err != nil {
		return nil, err
	}
	priceIdx, err := h.col(path, "price")
	if err != nil {
		return nil, err
	}
	qtyIdx, err := h.col(path, "qty")
	if err != nil {
		return nil, err
	}

	var rows []model.TradeRow
	for line := 2; ; line++ {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		tradeIdx, err := intField(record, idxIdx, path, line)
		if err != nil {
			return nil, err
		}
		price, err := intField(record, priceIdx, path, line)
		if err != nil {
			return nil, err
		}
		qty, err := intField(record, qtyIdx, path, line)
		if err != nil {
			return nil, err
		}
		rows = append(rows, model.TradeRow{TradeIdx: tradeIdx, PriceCents: price, Qty: qty})
	}
	return rows, nil
}

// LoadAll 从数据目录加载全部三个数据集
func LoadAll(dir string) ([]model.BookLevelRow, []model.LatencySample, []model.TradeRow, error) {
	book, err := LoadBook(filepath.Join(dir, BookFile))
	if err != nil {
		return nil, nil, nil, err
	}
	latency, err := LoadLatency(filepath.Join(dir, LatencyFile))
	if err != nil {
		return nil, nil, nil, err
	}
	trades, err := LoadTrades(filepath.Join(dir, TradesFile))
	if err != nil {
		return nil, nil, nil, err
	}
	return book, latency, trades, nil
}
