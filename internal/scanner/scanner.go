// Package scanner 实现未闭合分隔符检测
//
// 对输入文本做一次从左到右的扫描，对每种分隔符维护独立的开合状态：
// 遇到分隔符字符时翻转其状态，打开时记录位置，关闭时清除。
// 扫描结束后按固定优先级（引号、星号、下划线）返回第一个仍然打开的类型。
package scanner

import (
	"github.com/riverfjs/danglemark-go/internal/types"
)

// scanState tracks one delimiter kind during a single pass.
type scanState struct {
	open       bool
	startIndex int
}

// Scan 扫描文本并返回未闭合分隔符结果
//
// 纯函数：无副作用，无保留状态，同一输入总是产生同一结果。
// 对任意字符串都是全函数，包括空串。
//
// 参数：
//   - text: 待扫描的原始消息文本
//
// 返回：
//   - types.Unclosed: HasUnclosed 为 true 时携带类型、起始位置和
//     从该分隔符到文本末尾的子串（含分隔符字符本身）
func Scan(text string) types.Unclosed {
	unc, _ := ScanStates(text)
	return unc
}

// ScanStates 扫描文本并同时返回每种分隔符的末态
//
// 与 Scan 相同的单遍算法，但额外暴露扫描结束时全部三种类型的
// 开合状态，便于调试和宿主侧的奇偶校验。
func ScanStates(text string) (types.Unclosed, []types.DelimiterState) {
	// Fresh state per call; no carry-over between scans.
	states := make([]scanState, len(types.Kinds))
	for i := range states {
		states[i].startIndex = -1
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]
		for k, kind := range types.Kinds {
			if ch != kind.Char() {
				continue
			}
			// Toggle only this kind; the others are untouched.
			if states[k].open {
				states[k].open = false
				states[k].startIndex = -1
			} else {
				states[k].open = true
				states[k].startIndex = i
			}
			break
		}
	}

	out := make([]types.DelimiterState, len(types.Kinds))
	for k, kind := range types.Kinds {
		out[k] = types.DelimiterState{
			Kind:       kind,
			Open:       states[k].open,
			StartIndex: states[k].startIndex,
		}
	}

	// 按优先级取第一个未闭合的类型；同时有多个打开时其余不报告
	for k, kind := range types.Kinds {
		if !states[k].open {
			continue
		}
		start := states[k].startIndex
		return types.Unclosed{
			HasUnclosed: true,
			Kind:        kind,
			StartIndex:  start,
			Text:        text[start:],
		}, out
	}

	return types.Unclosed{HasUnclosed: false}, out
}
