package danglemark

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/riverfjs/danglemark-go/internal/gradient"
)

// Theme 渐变终点的主题色（浅色/深色背景各一个）
var Theme = struct {
	Text lipgloss.AdaptiveColor
}{
	Text: lipgloss.AdaptiveColor{Light: "#2D3748", Dark: "#A0AEC0"},
}

// Renderer 终端渐变渲染器
//
// 宿主侧"渐变色效果"的终端实现：未闭合跨度内的字符从警示色渐变到
// 主题色。检测本身不依赖渲染器；这里只消费扫描结果。
type Renderer struct {
	config *HighlightConfig
}

// NewRenderer 创建渲染器，config 为 nil 时使用默认配置
func NewRenderer(config *HighlightConfig) *Renderer {
	if config == nil {
		config = DefaultConfig()
	}
	return &Renderer{config: config}
}

// Render 渲染一条消息，未闭合跨度着色，其余部分原样输出
//
// 规则：
//   - 没有未闭合分隔符或 Enabled 为 false：返回原文
//   - PersistentGradient 打开：跨度内逐 rune 渐变
//   - PersistentGradient 关闭：整个跨度统一警示色
//   - UseThemeColors 打开：渐变终点取当前背景对应的主题色
//
// 渐变计算失败时记录日志并返回原文，渲染失败不是检测失败。
func (r *Renderer) Render(text string, unc Unclosed) string {
	if !r.config.Enabled || !unc.HasUnclosed {
		return text
	}

	span := text[unc.StartIndex:]
	runes := []rune(span)

	stops, err := r.stops(len(runes))
	if err != nil {
		Logger.Printf("gradient computation failed: %v", err)
		return text
	}

	var sb strings.Builder
	sb.WriteString(text[:unc.StartIndex])
	for i, ru := range runes {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(stops[i]))
		sb.WriteString(style.Render(string(ru)))
	}
	return sb.String()
}

// stops computes the per-rune color stops for a span of n runes.
func (r *Renderer) stops(n int) ([]string, error) {
	if !r.config.PersistentGradient {
		return gradient.Uniform(r.config.WarningColor, n)
	}
	return gradient.Ramp(r.config.WarningColor, r.endColor(), n)
}

// endColor picks the gradient endpoint.
func (r *Renderer) endColor() string {
	if !r.config.UseThemeColors {
		return r.config.WarningColor
	}
	if lipgloss.HasDarkBackground() {
		return Theme.Text.Dark
	}
	return Theme.Text.Light
}
