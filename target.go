package danglemark

import "github.com/riverfjs/danglemark-go/internal/types"

// 导出类型别名
type Target = types.Target
type TargetKind = types.TargetKind
type ElementTarget = types.ElementTarget
type WrapperTarget = types.WrapperTarget

const (
	TargetKindElement = types.TargetKindElement
	TargetKindWrapper = types.TargetKindWrapper
)

const (
	// MarkerClass is added to every highlighted element or wrapper.
	MarkerClass = "dmk-unclosed"
	// classPrefix prefixes the sub-kind class ("dmk-q", "dmk-em", ...).
	classPrefix = "dmk-"
)

// Classes 返回应用到目标上的 class 列表
//
// 恒为两个：标记 class 加一个样式子类 class。宿主在每轮调和开始时
// 必须先移除这两个 class，再重新应用，避免上一轮的高亮残留。
func Classes(target Target) []string {
	if target == nil {
		return nil
	}
	return []string{MarkerClass, classPrefix + string(target.GetSubKind())}
}

// RemovalClasses 返回每轮调和前要清除的全部 class
//
// 包含标记 class 和全部四个子类 class，与当前目标无关：
// 上一轮的子类可能与本轮不同。
func RemovalClasses() []string {
	return []string{
		MarkerClass,
		classPrefix + string(SubQuote),
		classPrefix + string(SubEm),
		classPrefix + string(SubStrong),
		classPrefix + string(SubUnderline),
	}
}
