package services

import (
	"sync"
	"time"

	"sentiview/internal/logx"

	"github.com/robfig/cron/v3"
)

// cronLogger 把 cron 内部日志转到 zerolog
type cronLogger struct{}

func (cronLogger) Info(msg string, keysAndValues ...interface{}) {
	logx.Debug("cron: "+msg, keysAndValues...)
}

func (cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	logx.Error(err, "cron: "+msg, keysAndValues...)
}

// RefreshScheduler 周期任务调度器，每个视图的评论轮询都注册在这里
// 任务之间不做互斥：同一视图的请求可能重叠，由视图自己的序号丢弃过期响应
type RefreshScheduler struct {
	cron *cron.Cron
	mu   sync.Mutex
}

// NewRefreshScheduler 创建调度器（需要调用 Start 才会开始执行）
func NewRefreshScheduler() *RefreshScheduler {
	logger := cronLogger{}
	return &RefreshScheduler{
		cron: cron.New(
			cron.WithLogger(logger),
			cron.WithChain(cron.Recover(logger)),
		),
	}
}

func (s *RefreshScheduler) Start() {
	s.cron.Start()
	logx.Info("Refresh scheduler started")
}

// Stop 停止调度，并等待正在执行的任务结束
func (s *RefreshScheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logx.Info("Refresh scheduler stopped")
}

// Every 每隔 interval 执行一次 fn，返回的函数用于取消（可重复调用）
// cron 的最小粒度是 1 秒
func (s *RefreshScheduler) Every(interval time.Duration, fn func()) (cancel func()) {
	s.mu.Lock()
	id := s.cron.Schedule(cron.Every(interval), cron.FuncJob(fn))
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.mu.Lock()
			s.cron.Remove(id)
			s.mu.Unlock()
		})
	}
}

// Len 当前注册的周期任务数
func (s *RefreshScheduler) Len() int {
	return len(s.cron.Entries())
}
