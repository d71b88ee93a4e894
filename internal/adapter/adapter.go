// Package adapter 将扫描结果映射到渲染树中的高亮目标
//
// 核心启发式：在文档顺序的行内元素中寻找第一个同时满足两个条件的元素：
// 其显示文本是高亮子串的一部分，且它位于消息末尾附近（其后的尾随
// 字符数低于阈值）。找不到时回退到最后一个块级容器的尾部文本节点，
// 但回退路径只处理引号类型。
package adapter

import (
	"strings"
	"unicode/utf8"

	"github.com/riverfjs/danglemark-go/internal/types"
)

// Locate 为未闭合结果选择高亮目标
//
// 前置条件：unc.HasUnclosed 为 true，由调用方保证。
// tailThreshold <= 0 时使用 types.DefaultTailThreshold。
//
// 返回：
//   - types.Target: ElementTarget 或 WrapperTarget
//   - nil: 树中没有可用目标。这是合法的终态，不是错误
func Locate(tree *types.Tree, fullRawText string, unc types.Unclosed, tailThreshold int) types.Target {
	if tree == nil {
		return nil
	}
	if tailThreshold <= 0 {
		tailThreshold = types.DefaultTailThreshold
	}

	// 去掉开头的分隔符字符本身
	highlightText := unc.Text
	if len(highlightText) > 0 {
		highlightText = highlightText[1:]
	}

	// 第一趟：按文档顺序找第一个候选行内元素
	for i, el := range tree.Inlines {
		trimmed := strings.TrimSpace(el.Text)
		if trimmed == "" {
			continue
		}
		if !strings.Contains(highlightText, trimmed) {
			continue
		}
		if !nearEnd(fullRawText, trimmed, tailThreshold) {
			continue
		}
		return &types.ElementTarget{
			Index: i,
			Tag:   el.Tag,
			Sub:   subKindFor(unc.Kind, el.Tag),
		}
	}

	// 回退：最后一个块级容器的尾部文本节点，只处理引号
	return locateFallback(tree, highlightText)
}

// nearEnd reports whether the trailing text after the last occurrence
// of part in full is shorter than threshold runes once trimmed.
func nearEnd(full, part string, threshold int) bool {
	idx := strings.LastIndex(full, part)
	if idx < 0 {
		return false
	}
	tail := strings.TrimSpace(full[idx+len(part):])
	return utf8.RuneCountInString(tail) < threshold
}

// subKindFor maps the unclosed kind and the element's tag semantics
// to a style sub-kind.
func subKindFor(kind types.Kind, tag string) types.SubKind {
	switch kind {
	case types.KindDoubleQuote:
		return types.SubQuote
	case types.KindAsterisk:
		if tag == "strong" || tag == "b" {
			return types.SubStrong
		}
		return types.SubEm
	case types.KindUnderscore:
		return types.SubUnderline
	default:
		return types.SubEm
	}
}

// locateFallback 在最后一个非空块上合成包装目标
//
// 仅当该块自身的引号数为奇数时才合成；包装的文本节点必须以
// highlightText 结尾（后缀匹配）或以它开头（前缀匹配）。
func locateFallback(tree *types.Tree, highlightText string) types.Target {
	var block *types.Block
	for i := len(tree.Blocks) - 1; i >= 0; i-- {
		if strings.TrimSpace(tree.Blocks[i].Text) != "" {
			block = &tree.Blocks[i]
			break
		}
	}
	if block == nil {
		// 没有任何容器：无事可做
		return nil
	}

	if strings.Count(block.Text, `"`)%2 == 0 {
		return nil
	}

	node := block.Trailing
	if strings.TrimSpace(node) == "" {
		return nil
	}
	if !strings.HasSuffix(node, highlightText) && !strings.HasPrefix(node, highlightText) {
		return nil
	}

	// 包装替换的文本节点内容保持原样
	return &types.WrapperTarget{
		Text: node,
		Sub:  types.SubQuote,
	}
}
