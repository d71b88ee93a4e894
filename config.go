package danglemark

import (
	"sync"

	"github.com/riverfjs/danglemark-go/internal/types"
)

// 导出类型别名
type Kind = types.Kind
type SubKind = types.SubKind
type Unclosed = types.Unclosed
type DelimiterState = types.DelimiterState
type Inline = types.Inline
type Block = types.Block
type Tree = types.Tree
type HighlightConfig = types.HighlightConfig

const (
	KindDoubleQuote = types.KindDoubleQuote
	KindAsterisk    = types.KindAsterisk
	KindUnderscore  = types.KindUnderscore

	SubQuote     = types.SubQuote
	SubEm        = types.SubEm
	SubStrong    = types.SubStrong
	SubUnderline = types.SubUnderline
)

var (
	defaultConfig     *HighlightConfig
	defaultConfigOnce sync.Once
)

// DefaultConfig returns the default highlight configuration (singleton).
func DefaultConfig() *HighlightConfig {
	defaultConfigOnce.Do(func() {
		defaultConfig = types.DefaultHighlightConfig()
	})
	return defaultConfig
}
