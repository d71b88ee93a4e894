// Package inline 从消息文本构建渲染树快照
//
// 宿主把原始消息当作 Markdown 渲染；这里用 goldmark 解析同一份文本，
// 按文档顺序抽取行内元素（em/strong/code/a）和块级容器，供 adapter
// 做目标匹配。抽取是只读的：不修改也不重排原始文本。
package inline

import (
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"github.com/riverfjs/danglemark-go/internal/types"
)

// StandardOptions goldmark 扩展配置，与宿主渲染管线保持一致
//
// 不启用 Typographer：引号字符必须原样保留，否则奇偶校验失效。
var StandardOptions = []goldmark.Option{
	goldmark.WithExtensions(
		extension.Strikethrough,
	),
}

// ExtractTree 解析 Markdown 并抽取渲染树快照
//
// 参数：
//   - raw: 原始消息文本
//
// 返回：
//   - *types.Tree: 文档顺序的行内元素序列 + 块级容器列表
func ExtractTree(raw string) *types.Tree {
	md := goldmark.New(StandardOptions...)
	source := []byte(raw)
	reader := text.NewReader(source)
	node := md.Parser().Parse(reader)

	tree := &types.Tree{
		Inlines: make([]types.Inline, 0),
		Blocks:  make([]types.Block, 0),
	}

	_ = ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Emphasis:
			tag := "em"
			if t.Level == 2 {
				tag = "strong"
			}
			tree.Inlines = append(tree.Inlines, types.Inline{
				Tag:  tag,
				Text: nodeText(t, source),
			})

		case *ast.CodeSpan:
			tree.Inlines = append(tree.Inlines, types.Inline{
				Tag:  "code",
				Text: nodeText(t, source),
			})
			return ast.WalkSkipChildren, nil

		case *ast.Link:
			tree.Inlines = append(tree.Inlines, types.Inline{
				Tag:  "a",
				Text: nodeText(t, source),
			})

		case *ast.Paragraph:
			tree.Blocks = append(tree.Blocks, types.Block{
				Text:     nodeText(t, source),
				Trailing: trailingText(t, source),
			})
		}
		return ast.WalkContinue, nil
	})

	return tree
}

// PlainTree 在宿主不渲染 Markdown 时构建退化快照
//
// 整条消息作为单个 span 行内元素和单个块级容器。
func PlainTree(raw string) *types.Tree {
	tree := &types.Tree{
		Inlines: make([]types.Inline, 0),
		Blocks:  make([]types.Block, 0),
	}
	if strings.TrimSpace(raw) == "" {
		return tree
	}
	tree.Inlines = append(tree.Inlines, types.Inline{Tag: "span", Text: raw})
	tree.Blocks = append(tree.Blocks, types.Block{Text: raw, Trailing: raw})
	return tree
}

// nodeText collects the plain text of a node's subtree.
func nodeText(n ast.Node, source []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := c.(type) {
		case *ast.Text:
			sb.Write(t.Segment.Value(source))
			if t.SoftLineBreak() || t.HardLineBreak() {
				sb.WriteByte('\n')
			}
		case *ast.String:
			sb.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}

// trailingText returns the content of the block's last direct text
// node child, or "" when the block ends in a styled inline element.
func trailingText(n ast.Node, source []byte) string {
	last := n.LastChild()
	if last == nil {
		return ""
	}
	if t, ok := last.(*ast.Text); ok {
		return string(t.Segment.Value(source))
	}
	return ""
}
