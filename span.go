package danglemark

import (
	"strings"
	"unicode/utf8"
)

// Span 表示原始文本上的一个字节区间 [Start, End)
type Span struct {
	Start int
	End   int
}

// HighlightSpan 返回未闭合结果覆盖的字节区间
//
// 区间从未闭合分隔符字符起到文本末尾。结果为负向时返回零值区间。
func HighlightSpan(textLen int, unc Unclosed) Span {
	if !unc.HasUnclosed {
		return Span{}
	}
	return Span{Start: unc.StartIndex, End: textLen}
}

// HighlightText 返回要接收视觉处理的子串
//
// 即 Unclosed.Text 去掉开头的分隔符字符。
func HighlightText(unc Unclosed) string {
	if !unc.HasUnclosed || unc.Text == "" {
		return ""
	}
	return unc.Text[1:]
}

// TrailingAfter 计算 part 在 full 中最后一次出现之后的尾随长度
//
// 尾随文本先去除首尾空白，再按 rune 计数。part 未出现时返回 -1。
// adapter 的"靠近末尾"判定使用同一度量。
func TrailingAfter(full, part string) int {
	idx := strings.LastIndex(full, part)
	if idx < 0 {
		return -1
	}
	tail := strings.TrimSpace(full[idx+len(part):])
	return utf8.RuneCountInString(tail)
}

// ClipSpan 将高亮区间裁剪到一个分块的边界内
//
// 宿主拆分长消息时，每个分块只保留与其重叠的部分，偏移量换算为
// 分块内坐标。无重叠时返回 (Span{}, false)。
//
// 参数：
//   - span: 全文坐标下的高亮区间
//   - chunkStart, chunkEnd: 分块在全文中的字节区间
//
// 返回：
//   - Span: 分块内坐标的裁剪结果
//   - bool: 是否有重叠
func ClipSpan(span Span, chunkStart, chunkEnd int) (Span, bool) {
	// Check overlap
	if span.End <= chunkStart || span.Start >= chunkEnd {
		return Span{}, false
	}

	clippedStart := max(span.Start, chunkStart)
	clippedEnd := min(span.End, chunkEnd)
	if clippedEnd-clippedStart <= 0 {
		return Span{}, false
	}

	return Span{
		Start: clippedStart - chunkStart,
		End:   clippedEnd - chunkStart,
	}, true
}

// Helper functions
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
