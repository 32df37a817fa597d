// internal/service/config.go
package service

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Render RenderConfig `mapstructure:"Render"`
}

// RenderConfig 定义了图表渲染策略（阈值、裁剪、主题等）
// 这些都是展示层参数，不属于业务逻辑，允许随意调整
type RenderConfig struct {
	SmoothThreshold int     // 成交数超过该值时切换为平滑曲线 (默认 5000)
	WindowDivisor   int     // 平滑窗口 = max(n/WindowDivisor, MinWindow)
	MinWindow       int     // 平滑窗口下限
	ClipPercentile  float64 // 延迟直方图的显示裁剪分位 (默认 99.5)
	HistogramBins   int     // 直方图桶数
	Size            SizeConfig
	Output          string // 输出文件名
	Theme           ThemeConfig
}

// SizeConfig 散点大小启发式: clamp(qty*Scale, Min, Max)
// 纯视觉参数，常数无业务含义
type SizeConfig struct {
	Scale float64
	Min   float64
	Max   float64
}

// ThemeConfig 定义了全局视觉主题（对应原型里的全局绘图风格）
type ThemeConfig struct {
	BidColor    string // 十六进制颜色，例如 "#16a34a"
	AskColor    string
	TradeColor  string
	SmoothColor string
	FaintColor  string
	PanelWidth  int
	PanelHeight int
}

// GlobalConfig 存储加载后的全局配置
var GlobalConfig Config

// DefaultConfig 返回内置默认值，与原型可视化脚本的常数保持一致
func DefaultConfig() Config {
	return Config{
		Render: RenderConfig{
			SmoothThreshold: 5000,
			WindowDivisor:   500,
			MinWindow:       10,
			ClipPercentile:  99.5,
			HistogramBins:   80,
			Size:            SizeConfig{Scale: 0.5, Min: 2, Max: 30},
			Output:          "dashboard.png",
			Theme: ThemeConfig{
				BidColor:    "#16a34a",
				AskColor:    "#dc2626",
				TradeColor:  "#f59e0b",
				SmoothColor: "#6366f1",
				FaintColor:  "#94a3b8",
				PanelWidth:  640,
				PanelHeight: 480,
			},
		},
	}
}

// LoadConfig 读取并解析配置文件，文件缺失时使用默认值
func LoadConfig(configPath string) *Config {
	GlobalConfig = DefaultConfig()

	// 设置配置文件的名称、类型和路径
	viper.SetConfigName("config") // 文件名是 config
	viper.SetConfigType("yaml")   // 文件类型是 yaml
	viper.AddConfigPath(configPath)

	// 查找并读取配置文件
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// 批处理工具必须零配置可用，找不到文件时直接用默认值
			return &GlobalConfig
		}
		log.Fatalf("Error reading config file: %s", err)
	}

	// 将配置绑定到结构体
	if err := viper.Unmarshal(&GlobalConfig); err != nil {
		log.Fatalf("Unable to decode config into struct: %s", err)
	}

	return &GlobalConfig
}
