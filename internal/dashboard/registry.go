package dashboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"sentiview/internal/logx"
)

// Registry 按视图 ID 保存 Dashboard，容量有限
// 超过 idleTTL 没有被访问的视图（标签页已关闭）和被挤出的视图都会被 Dispose
type Registry struct {
	backend   Backend
	scheduler Scheduler
	opts      Options

	mu    sync.Mutex
	views *expirable.LRU[string, *Dashboard]
}

// NewRegistry 创建注册表，size 为同时保留的视图上限，idleTTL <= 0 表示不按空闲时间回收
func NewRegistry(size int, idleTTL time.Duration, backend Backend, scheduler Scheduler, opts Options) (*Registry, error) {
	if size < 1 {
		return nil, fmt.Errorf("registry size must be positive, got %d", size)
	}
	// 回调在 LRU 内部锁中执行，Dispose 不能再回头访问 Registry
	views := expirable.NewLRU[string, *Dashboard](size, func(id string, d *Dashboard) {
		d.Dispose()
		logx.Debug("View evicted", "view", id)
	}, idleTTL)

	return &Registry{
		backend:   backend,
		scheduler: scheduler,
		opts:      opts,
		views:     views,
	}, nil
}

// Get 返回视图对应的 Dashboard 并刷新它的空闲计时，不存在时创建并完成首次加载
func (r *Registry) Get(ctx context.Context, id string) *Dashboard {
	r.mu.Lock()
	if d, ok := r.views.Get(id); ok {
		r.views.Add(id, d)
		r.mu.Unlock()
		return d
	}
	// 已过期但还没被后台清理的旧视图先移除，保证它被 Dispose
	r.views.Remove(id)
	d := New(id, r.backend, r.opts)
	r.views.Add(id, d)
	r.mu.Unlock()

	logx.Info("View created", "view", id)
	d.Start(ctx, r.scheduler)
	return d
}

// Remove 主动销毁一个视图
func (r *Registry) Remove(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views.Remove(id)
}

// Len 当前保留的视图数量（可能包含已过期、尚未清理的视图）
func (r *Registry) Len() int {
	return r.views.Len()
}

// Close 销毁全部视图（停止它们的周期刷新）
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.views.Purge()
}
