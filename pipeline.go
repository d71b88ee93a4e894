package danglemark

// Message 是调和循环处理的一条消息快照
type Message struct {
	ID   string
	Text string
}

// Assignment 记录一条消息当前的高亮 class 分配
type Assignment struct {
	MessageID string
	Target    Target
	Classes   []string
}

// Applier 是宿主侧的 class 应用回调
//
// Reconciler 本身不触碰任何渲染状态；真正的样式变更（DOM、终端重绘）
// 由宿主实现。两个方法都在调和所在的单线程上下文中同步调用。
type Applier interface {
	AddClasses(messageID string, target Target, classes []string)
	RemoveClasses(messageID string, classes []string)
}

// Reconciler 管理多条消息的高亮调和
//
// 每轮 Pass 先清除上一轮的全部分配，再对每条消息重新检测并应用，
// 保证不会累积陈旧高亮。同一输入重复调和产生相同的分配（幂等）。
//
// 调用方保证串行调用：宿主的新消息事件和定时器都汇入同一个
// 单线程执行上下文，Reconciler 不加锁。
type Reconciler struct {
	opts    []Option
	applier Applier
	current map[string]Assignment
}

// NewReconciler 创建调和器
//
// applier 可以为 nil，此时只做内部簿记，不产生外部副作用。
func NewReconciler(applier Applier, opts ...Option) *Reconciler {
	return &Reconciler{
		opts:    opts,
		applier: applier,
		current: make(map[string]Assignment),
	}
}

// Pass 执行一轮完整调和
//
// 步骤：
// 1. 清除上一轮的全部 class 分配（通知宿主移除）
// 2. 逐条消息运行 Check()
// 3. 有目标的消息得到新分配并通知宿主应用
//
// 参数：
//   - messages: 本轮的消息快照列表
//
// 返回：
//   - []Assignment: 本轮产生的分配，每条消息至多一个
func (r *Reconciler) Pass(messages []Message) []Assignment {
	// 先清后涂：上一轮的子类可能与本轮不同
	for id := range r.current {
		if r.applier != nil {
			r.applier.RemoveClasses(id, RemovalClasses())
		}
		delete(r.current, id)
	}

	result := make([]Assignment, 0)
	for _, msg := range messages {
		report := Check(msg.Text, r.opts...)
		if report.Target == nil {
			continue
		}
		assignment := Assignment{
			MessageID: msg.ID,
			Target:    report.Target,
			Classes:   Classes(report.Target),
		}
		r.current[msg.ID] = assignment
		if r.applier != nil {
			r.applier.AddClasses(msg.ID, report.Target, assignment.Classes)
		}
		result = append(result, assignment)
	}

	return result
}

// Assignments 返回当前分配的副本
func (r *Reconciler) Assignments() map[string]Assignment {
	out := make(map[string]Assignment, len(r.current))
	for id, a := range r.current {
		out[id] = a
	}
	return out
}

// Clear 移除一条消息的分配（消息被删除时由宿主调用）
func (r *Reconciler) Clear(messageID string) {
	if _, ok := r.current[messageID]; !ok {
		return
	}
	if r.applier != nil {
		r.applier.RemoveClasses(messageID, RemovalClasses())
	}
	delete(r.current, messageID)
}
