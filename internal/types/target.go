package types

// TargetKind represents the form a highlight target takes.
type TargetKind int

const (
	// TargetKindElement marks an existing inline element.
	TargetKindElement TargetKind = iota
	// TargetKindWrapper marks a synthesized wrapper around a text node.
	TargetKindWrapper
)

// String returns the string representation of TargetKind.
func (tk TargetKind) String() string {
	switch tk {
	case TargetKindElement:
		return "element"
	case TargetKindWrapper:
		return "wrapper"
	default:
		return "unknown"
	}
}

// Target 表示一次调和中要接收高亮的目标
//
// 每次扫描最多产生一个 Target。目标是临时值：每轮调和重新计算，从不持久化。
type Target interface {
	GetTargetKind() TargetKind
	GetSubKind() SubKind
}

// ElementTarget points at an existing inline element by its position
// in the snapshot's document-ordered Inlines sequence.
type ElementTarget struct {
	Index int
	Tag   string
	Sub   SubKind
}

// GetTargetKind returns TargetKindElement.
func (t *ElementTarget) GetTargetKind() TargetKind {
	return TargetKindElement
}

// GetSubKind returns the style sub-kind.
func (t *ElementTarget) GetSubKind() SubKind {
	return t.Sub
}

// WrapperTarget describes a wrapper to synthesize around a trailing
// text node. The wrapper must carry exactly the same text content as
// the node it replaces.
type WrapperTarget struct {
	Text string
	Sub  SubKind
}

// GetTargetKind returns TargetKindWrapper.
func (t *WrapperTarget) GetTargetKind() TargetKind {
	return TargetKindWrapper
}

// GetSubKind returns the style sub-kind.
func (t *WrapperTarget) GetSubKind() SubKind {
	return t.Sub
}
