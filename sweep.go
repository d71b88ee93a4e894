package danglemark

import (
	"context"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

// MessageSource 提供当前全部消息的快照
//
// 由宿主实现；Snapshot 在每次定时扫描时调用一次。
type MessageSource interface {
	Snapshot() []Message
}

// Sweeper 按固定间隔驱动 Reconciler 的定时调和扫描
//
// 宿主的新消息事件直接调用 Reconciler.Pass；Sweeper 补充一条
// 定时对账路径，捕获事件流漏掉的变更（消息编辑、延迟渲染）。
type Sweeper struct {
	scheduler  gocron.Scheduler
	reconciler *Reconciler
	source     MessageSource
	interval   time.Duration
}

// NewSweeper 创建定时扫描器
//
// interval <= 0 时使用 1 秒默认间隔。
func NewSweeper(source MessageSource, reconciler *Reconciler, interval time.Duration) (*Sweeper, error) {
	if source == nil {
		return nil, fmt.Errorf("sweeper requires a message source")
	}
	if reconciler == nil {
		return nil, fmt.Errorf("sweeper requires a reconciler")
	}
	if interval <= 0 {
		interval = time.Second
	}

	s, err := gocron.NewScheduler()
	if err != nil {
		return nil, fmt.Errorf("failed to create gocron scheduler: %w", err)
	}

	return &Sweeper{
		scheduler:  s,
		reconciler: reconciler,
		source:     source,
		interval:   interval,
	}, nil
}

// Start 启动定时扫描
func (s *Sweeper) Start(ctx context.Context) error {
	_, err := s.scheduler.NewJob(
		gocron.DurationJob(s.interval),
		gocron.NewTask(s.sweep),
		gocron.WithName("danglemark-sweep"),
	)
	if err != nil {
		return fmt.Errorf("failed to create sweep job: %w", err)
	}
	s.scheduler.Start()
	return nil
}

// Stop 优雅停止定时扫描
func (s *Sweeper) Stop(ctx context.Context) error {
	return s.scheduler.Shutdown()
}

// sweep is called by gocron on every tick.
func (s *Sweeper) sweep() {
	messages := s.source.Snapshot()
	assignments := s.reconciler.Pass(messages)
	if len(assignments) > 0 {
		Logger.Printf("sweep: %d message(s) flagged", len(assignments))
	}
}
