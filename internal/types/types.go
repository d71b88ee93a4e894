package types

// Kind 表示 Markdown 分隔符类型
//
// 枚举顺序即优先级顺序：引号 > 星号 > 下划线。
// 扫描结束后按此顺序检查未闭合状态，只报告第一个命中的类型。
type Kind int

const (
	// KindDoubleQuote 双引号 `"`
	KindDoubleQuote Kind = iota
	// KindAsterisk 星号 `*`
	KindAsterisk
	// KindUnderscore 下划线 `_`
	KindUnderscore
)

// Kinds 按优先级顺序列出全部分隔符类型
var Kinds = []Kind{KindDoubleQuote, KindAsterisk, KindUnderscore}

// Char 返回该类型对应的单字节分隔符字符
func (k Kind) Char() byte {
	switch k {
	case KindDoubleQuote:
		return '"'
	case KindAsterisk:
		return '*'
	case KindUnderscore:
		return '_'
	default:
		return 0
	}
}

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDoubleQuote:
		return "double_quote"
	case KindAsterisk:
		return "asterisk"
	case KindUnderscore:
		return "underscore"
	default:
		return "unknown"
	}
}

// Unclosed 表示一次扫描的结果
//
// HasUnclosed 为 false 时其余字段无意义。
// Text 是从未闭合分隔符（含该字符本身）到文本末尾的子串。
type Unclosed struct {
	HasUnclosed bool   `json:"has_unclosed"`
	Kind        Kind   `json:"kind,omitempty"`
	StartIndex  int    `json:"start_index,omitempty"`
	Text        string `json:"text,omitempty"`
}

// DelimiterState 记录单个分隔符类型在扫描结束时的开合状态
type DelimiterState struct {
	Kind       Kind
	Open       bool
	StartIndex int // 打开当前跨度的字符位置，关闭时为 -1
}

// SubKind 表示高亮目标的样式子类
type SubKind string

const (
	SubQuote     SubKind = "q"
	SubEm        SubKind = "em"
	SubStrong    SubKind = "strong"
	SubUnderline SubKind = "u"
)

// Inline 表示渲染树中的一个行内元素快照
type Inline struct {
	Tag  string // "em", "strong", "code", "a", "span"
	Text string // 元素的显示文本
}

// Block 表示一个块级文本容器快照
type Block struct {
	Text     string // 整个容器的纯文本
	Trailing string // 容器最后一个文本节点的内容
}

// Tree 是宿主在每次调和时提供的渲染快照
//
// Inlines 按文档顺序排列。快照是不可变的：adapter 只读，不修改。
type Tree struct {
	Inlines []Inline
	Blocks  []Block
}

// HighlightConfig 高亮配置
//
// 核心检测逻辑只读取 Enabled；其余字段仅影响宿主侧的渲染。
type HighlightConfig struct {
	Enabled            bool
	WarningColor       string // 十六进制颜色，如 "#FC8181"
	UseThemeColors     bool
	PersistentGradient bool
	TailThreshold      int // 候选元素之后允许的尾随字符数（rune）
}

// DefaultTailThreshold 尾随字符阈值默认值
const DefaultTailThreshold = 20

// DefaultHighlightConfig 返回默认高亮配置
func DefaultHighlightConfig() *HighlightConfig {
	return &HighlightConfig{
		Enabled:            true,
		WarningColor:       "#FC8181",
		UseThemeColors:     true,
		PersistentGradient: true,
		TailThreshold:      DefaultTailThreshold,
	}
}
