// Package danglemark 检测聊天消息中未闭合的 Markdown 分隔符并定位高亮目标
//
// 这个包面向聊天宿主（机器人、TUI 客户端、消息渲染管线）：消息文本里
// 漏掉配对的引号、星号或下划线时，找出未闭合的跨度并决定哪个渲染元素
// 应该接收渐变高亮，全程不修改消息文本本身。
//
// 核心功能：
//   - 单遍扫描检测未闭合分隔符（引号 > 星号 > 下划线优先级）
//   - 在渲染树中为未闭合跨度选择高亮目标（已有元素或合成包装）
//   - 每轮调和先清除旧 class 再重新应用，避免高亮残留
//   - 终端渐变渲染与定时调和扫描（宿主侧便利设施）
//
// 主要 API：
//   - Scan(): 纯扫描，返回 Unclosed
//   - Check(): 完整单遍（扫描 + 建树 + 定位），返回 Report
//   - Reconciler: 多消息的调和循环，管理 class 的清除与应用
//   - Sweeper: 按固定间隔驱动 Reconciler 的定时器
//
// 示例：
//
//	report := danglemark.Check(`He said "hello`)
//	if report.Unclosed.HasUnclosed {
//	    // report.Unclosed.Text == `"hello`
//	    // report.Target 指向要高亮的元素（可能为 nil）
//	    for _, class := range danglemark.Classes(report.Target) {
//	        // 应用 class 到宿主的渲染元素
//	    }
//	}
package danglemark

import (
	"github.com/riverfjs/danglemark-go/internal/adapter"
	"github.com/riverfjs/danglemark-go/internal/inline"
)

// Report 一次完整检查的结果
//
// 每轮调和重新计算；Target 为 nil 表示树中没有可用目标（合法终态）。
type Report struct {
	Unclosed      Unclosed
	Target        Target
	HighlightText string
	Tree          *Tree
}

// Check 对一条消息做完整的检测单遍
//
// 步骤：扫描文本 → 构建渲染树快照 → 定位高亮目标。
// 配置中 Enabled 为 false 时跳过扫描，返回空结果。
//
// 参数：
//   - text: 原始消息文本
//   - opts: 可选配置（WithConfig、WithMarkdown、WithTailThreshold）
//
// 返回：
//   - *Report: 扫描结果、高亮目标和派生的高亮子串
func Check(text string, opts ...Option) *Report {
	options := applyOptions(opts...)
	cfg := options.Config
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if !cfg.Enabled {
		return &Report{}
	}

	unc := Scan(text)
	if !unc.HasUnclosed {
		return &Report{Unclosed: unc}
	}

	var tree *Tree
	if options.Markdown {
		tree = inline.ExtractTree(text)
	} else {
		tree = inline.PlainTree(text)
	}

	target := adapter.Locate(tree, text, unc, cfg.TailThreshold)

	return &Report{
		Unclosed:      unc,
		Target:        target,
		HighlightText: HighlightText(unc),
		Tree:          tree,
	}
}

// Locate 在给定的渲染树快照上定位高亮目标
//
// 宿主已有自己的树快照时使用；Check() 内部走同一条路径。
// 前置条件：unc.HasUnclosed 为 true。
//
// 参数：
//   - tree: 渲染树快照
//   - fullRawText: 完整原始文本
//   - unc: 扫描结果
//   - opts: 可选配置
//
// 返回：
//   - Target: 高亮目标，没有可用目标时为 nil
func Locate(tree *Tree, fullRawText string, unc Unclosed, opts ...Option) Target {
	options := applyOptions(opts...)
	threshold := 0
	if options.Config != nil {
		threshold = options.Config.TailThreshold
	}
	return adapter.Locate(tree, fullRawText, unc, threshold)
}
