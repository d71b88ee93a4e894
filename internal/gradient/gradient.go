// Package gradient 计算高亮跨度的渐变色停靠点
package gradient

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"
)

// Ramp 在两个十六进制颜色之间生成 steps 个渐变停靠点
//
// 在 HCL 空间插值，避免 RGB 直接插值产生的灰暗中间色。
// steps <= 0 时返回空切片；steps == 1 时只返回起点色。
//
// 参数：
//   - from: 起点颜色（警示色），如 "#FC8181"
//   - to: 终点颜色（主题色）
//   - steps: 停靠点数量，通常等于跨度的 rune 数
//
// 返回：
//   - []string: 十六进制颜色列表
//   - error: 颜色解析失败
func Ramp(from, to string, steps int) ([]string, error) {
	if steps <= 0 {
		return []string{}, nil
	}

	start, err := colorful.Hex(from)
	if err != nil {
		return nil, fmt.Errorf("invalid gradient start color %q: %w", from, err)
	}
	end, err := colorful.Hex(to)
	if err != nil {
		return nil, fmt.Errorf("invalid gradient end color %q: %w", to, err)
	}

	stops := make([]string, steps)
	if steps == 1 {
		stops[0] = start.Hex()
		return stops, nil
	}
	stops[0] = start.Hex()
	stops[steps-1] = end.Hex()
	for i := 1; i < steps-1; i++ {
		t := float64(i) / float64(steps-1)
		stops[i] = start.BlendHcl(end, t).Clamped().Hex()
	}
	return stops, nil
}

// Uniform 返回 steps 个相同颜色的停靠点
//
// PersistentGradient 关闭时的退化路径：整个跨度使用统一警示色。
func Uniform(color string, steps int) ([]string, error) {
	if steps <= 0 {
		return []string{}, nil
	}
	c, err := colorful.Hex(color)
	if err != nil {
		return nil, fmt.Errorf("invalid highlight color %q: %w", color, err)
	}
	hex := c.Hex()
	stops := make([]string, steps)
	for i := range stops {
		stops[i] = hex
	}
	return stops, nil
}
