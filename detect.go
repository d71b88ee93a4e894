package danglemark

import (
	"github.com/riverfjs/danglemark-go/internal/scanner"
)

// Scan 扫描消息文本并返回未闭合分隔符结果
//
// 参数:
//   - text: 原始消息文本
//
// 返回:
//   - Unclosed: HasUnclosed 为 true 时携带类型、起始位置和高亮子串
func Scan(text string) Unclosed {
	return scanner.Scan(text)
}

// ScanWithStates 扫描消息文本并返回结果和全部分隔符末态
//
// 类似 Scan()，但还返回扫描结束时三种分隔符各自的开合状态，
// 供宿主做奇偶校验或调试展示。
//
// 参数:
//   - text: 原始消息文本
//
// 返回:
//   - Unclosed: 扫描结果
//   - []DelimiterState: 按优先级顺序排列的末态
func ScanWithStates(text string) (Unclosed, []DelimiterState) {
	return scanner.ScanStates(text)
}
