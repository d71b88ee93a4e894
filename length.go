package danglemark

import "unicode/utf8"

// RuneLen 计算文本的 rune 数
//
// 检测按字节索引工作（三种分隔符都是单字节 ASCII 字符），
// 但尾随阈值和渐变停靠点按 rune 计数，避免多字节字符被拆开。
//
// 参数：
//   - text: 要计数的文本
//
// 返回：
//   - int: rune 数量
func RuneLen(text string) int {
	return utf8.RuneCountInString(text)
}
