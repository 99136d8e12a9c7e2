// Package dashboard 实现情感分析面板的视图模型：
// 每个浏览器会话一个 Dashboard，持有评论快照、当前筛选条件、提示信息等状态，
// 通过 Backend 读写后端，页面只负责把 View 渲染出来。
package dashboard

import (
	"context"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"sentiview/internal/logx"
	"sentiview/internal/models"
	"sentiview/internal/services"
	"sentiview/internal/utils"
)

// Backend 后端 API，由 services.BackendClient 实现
type Backend interface {
	ListUsers(ctx context.Context) ([]models.User, error)
	CreateUser(ctx context.Context, name, email string) (*models.User, error)
	ListComments(ctx context.Context) ([]models.Comment, error)
	CreateComment(ctx context.Context, userID int, text string) (*models.CommentResult, error)
	Analyze(ctx context.Context, text string) (*models.Analysis, error)
}

// Scheduler 周期任务调度，由 services.RefreshScheduler 实现
type Scheduler interface {
	Every(interval time.Duration, fn func()) (cancel func())
}

type Options struct {
	RefreshInterval time.Duration
	UserAlertTTL    time.Duration
	CommentAlertTTL time.Duration
}

// DefaultOptions 轮询 10 秒，用户提示 4 秒，评论提示 5 秒
var DefaultOptions = Options{
	RefreshInterval: 10 * time.Second,
	UserAlertTTL:    4 * time.Second,
	CommentAlertTTL: 5 * time.Second,
}

const (
	msgUserCreated       = "✅ Usuario registrado exitosamente"
	msgUserFailed        = "❌ Error al registrar usuario"
	msgCommentAnalyzed   = "✅ Comentario analizado:"
	msgCommentFailed     = "❌ Error al crear comentario"
	submitLabelIdle      = "🚀 Analizar y Guardar"
	submitLabelAnalyzing = "Analizando..."
)

// UserOption 用户下拉框的一项
type UserOption struct {
	Value int
	Label string
}

// UserForm 注册表单当前的值（失败时保留用户输入）
type UserForm struct {
	Name  string
	Email string
}

// CommentForm 评论表单当前的值；Busy 期间提交按钮禁用
type CommentForm struct {
	UserID int
	Text   string
	Busy   bool
}

// SubmitLabel 提交按钮上的文字
func (f CommentForm) SubmitLabel() string {
	if f.Busy {
		return submitLabelAnalyzing
	}
	return submitLabelIdle
}

// sequence 请求序号：每次请求领一个号，只有比已应用的号更新的响应才会被采用
type sequence struct {
	issued  atomic.Uint64
	applied uint64 // 受 Dashboard.mu 保护
}

func (s *sequence) next() uint64 {
	return s.issued.Add(1)
}

// accept 调用方需持有 Dashboard.mu
func (s *sequence) accept(token uint64) bool {
	if token <= s.applied {
		return false
	}
	s.applied = token
	return true
}

// Dashboard 单个浏览器会话的视图模型
type Dashboard struct {
	id      string
	backend Backend
	opts    Options
	now     func() time.Time

	mu          sync.RWMutex
	users       []models.User
	comments    []models.Comment
	filter      models.Filter
	quick       QuickOutcome
	alerts      map[AlertSlot]Alert
	userForm    UserForm
	commentForm CommentForm

	usersSeq    sequence
	commentsSeq sequence
	quickSeq    sequence

	ctx         context.Context
	cancel      context.CancelFunc
	stopRefresh func()
	disposed    atomic.Bool
}

// withDefaults 未设置（<=0）的项使用 DefaultOptions
func (o Options) withDefaults() Options {
	if o.RefreshInterval <= 0 {
		o.RefreshInterval = DefaultOptions.RefreshInterval
	}
	if o.UserAlertTTL <= 0 {
		o.UserAlertTTL = DefaultOptions.UserAlertTTL
	}
	if o.CommentAlertTTL <= 0 {
		o.CommentAlertTTL = DefaultOptions.CommentAlertTTL
	}
	return o
}

// New 创建视图模型，尚未加载任何数据
func New(id string, backend Backend, opts Options) *Dashboard {
	opts = opts.withDefaults()
	ctx, cancel := context.WithCancel(context.Background())
	return &Dashboard{
		id:       id,
		backend:  backend,
		opts:     opts,
		now:      time.Now,
		filter:   models.FilterAll,
		quick:    QuickOutcome{State: QuickIdle},
		alerts:   make(map[AlertSlot]Alert),
		comments: []models.Comment{},
		ctx:      ctx,
		cancel:   cancel,
	}
}

// ID 视图（会话）标识
func (d *Dashboard) ID() string {
	return d.id
}

// Start 首次加载用户和评论，然后注册周期性的评论刷新
func (d *Dashboard) Start(ctx context.Context, s Scheduler) {
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		d.LoadUsers(ctx)
	}()
	go func() {
		defer wg.Done()
		d.LoadComments(ctx)
	}()
	wg.Wait()

	if s == nil || d.disposed.Load() {
		return
	}
	cancel := s.Every(d.opts.RefreshInterval, func() {
		d.LoadComments(d.ctx)
	})

	d.mu.Lock()
	d.stopRefresh = cancel
	d.mu.Unlock()

	// Start 与 Dispose 并发时，保证周期任务不会遗留
	if d.disposed.Load() {
		cancel()
	}
}

// Dispose 取消周期刷新和所有仍在进行的请求，可重复调用
func (d *Dashboard) Dispose() {
	if !d.disposed.CompareAndSwap(false, true) {
		return
	}
	d.mu.RLock()
	stop := d.stopRefresh
	d.mu.RUnlock()
	if stop != nil {
		stop()
	}
	d.cancel()
	logx.Debug("Dashboard disposed", "view", d.id)
}

// Context 视图生命周期内有效的 context，Dispose 后被取消
func (d *Dashboard) Context() context.Context {
	return d.ctx
}

// LoadUsers 拉取用户列表并整体替换；失败只记日志，保留原有状态
func (d *Dashboard) LoadUsers(ctx context.Context) error {
	token := d.usersSeq.next()

	users, err := d.backend.ListUsers(ctx)
	if err != nil {
		d.logReadError(ctx, err, "Error loading users")
		return err
	}
	if users == nil {
		users = []models.User{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.usersSeq.accept(token) {
		logx.Debug("Discarding stale users response", "view", d.id, "token", token)
		return nil
	}
	d.users = users
	return nil
}

// LoadComments 拉取全部评论并整体替换快照（不做增量合并）
// 轮询与手动刷新可能重叠，过期的响应直接丢弃
func (d *Dashboard) LoadComments(ctx context.Context) error {
	token := d.commentsSeq.next()

	comments, err := d.backend.ListComments(ctx)
	if err != nil {
		d.logReadError(ctx, err, "Error loading comments")
		return err
	}
	if comments == nil {
		comments = []models.Comment{}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.commentsSeq.accept(token) {
		logx.Debug("Discarding stale comments response", "view", d.id, "token", token)
		return nil
	}
	d.comments = comments
	return nil
}

func (d *Dashboard) logReadError(ctx context.Context, err error, msg string) {
	// 视图已销毁导致的取消不算错误
	if errors.Is(err, context.Canceled) && ctx.Err() != nil {
		logx.Debug(msg+" (canceled)", "view", d.id)
		return
	}
	logx.Error(err, msg, "view", d.id)
}

// Comments 当前评论快照的副本
func (d *Dashboard) Comments() []models.Comment {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.Comment, len(d.comments))
	copy(out, d.comments)
	return out
}

// Users 当前用户列表的副本
func (d *Dashboard) Users() []models.User {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := make([]models.User, len(d.users))
	copy(out, d.users)
	return out
}

// Statistics 基于当前快照的统计
func (d *Dashboard) Statistics() Statistics {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return ComputeStatistics(d.comments)
}

// Filter 当前筛选条件
func (d *Dashboard) Filter() models.Filter {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.filter
}

// SetFilter 修改筛选条件，不触发网络请求
func (d *Dashboard) SetFilter(f models.Filter) {
	d.mu.Lock()
	d.filter = f
	d.mu.Unlock()
}

// VisibleComments 当前筛选条件下要展示的评论
func (d *Dashboard) VisibleComments() []models.Comment {
	d.mu.RLock()
	defer d.mu.RUnlock()
	out := FilterComments(d.comments, d.filter)
	return append([]models.Comment(nil), out...)
}

// QuickAnalysis 快速分析：空文本只提示不请求；结果不会写入评论快照
func (d *Dashboard) QuickAnalysis(ctx context.Context, text string) QuickOutcome {
	text = strings.TrimSpace(text)
	if text == "" {
		out := QuickOutcome{State: QuickWarning, Message: msgQuickEmpty}
		d.mu.Lock()
		d.quick = out
		d.mu.Unlock()
		return out
	}

	token := d.quickSeq.next()
	d.mu.Lock()
	d.quick = QuickOutcome{State: QuickLoading}
	d.mu.Unlock()

	var out QuickOutcome
	analysis, err := d.backend.Analyze(ctx, text)
	if err != nil {
		logx.Warn("Quick analysis failed", "view", d.id, "error", err.Error())
		out = QuickOutcome{State: QuickError, Message: msgQuickError}
	} else {
		out = QuickOutcome{State: QuickResult, Analysis: analysis}
	}

	d.mu.Lock()
	if d.quickSeq.accept(token) {
		d.quick = out
	}
	d.mu.Unlock()
	return out
}

// Quick 快速分析区域当前状态
func (d *Dashboard) Quick() QuickOutcome {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.quick
}

// RegisterUser 提交注册表单；成功后清空表单并刷新用户列表，返回是否成功
func (d *Dashboard) RegisterUser(ctx context.Context, name, email string) bool {
	_, err := d.backend.CreateUser(ctx, name, email)
	if err != nil {
		alert := Alert{Kind: AlertError, Text: msgUserFailed}
		if apiErr, ok := services.AsAPIError(err); ok {
			alert.Text = "❌ " + apiErr.Message
		} else {
			logx.Error(err, "Error registering user", "view", d.id)
		}
		d.mu.Lock()
		d.userForm = UserForm{Name: name, Email: email}
		d.setAlertLocked(AlertUsers, alert, d.opts.UserAlertTTL)
		d.mu.Unlock()
		return false
	}

	d.mu.Lock()
	d.userForm = UserForm{}
	d.setAlertLocked(AlertUsers, Alert{Kind: AlertSuccess, Text: msgUserCreated}, d.opts.UserAlertTTL)
	d.mu.Unlock()

	d.LoadUsers(ctx)
	return true
}

// SubmitComment 提交评论；请求期间表单处于 Busy 状态，无论结果如何都会恢复
// 成功后清空表单并重新拉取一次评论，返回是否成功
func (d *Dashboard) SubmitComment(ctx context.Context, userID int, text string) bool {
	if !d.postComment(ctx, userID, text) {
		return false
	}
	d.LoadComments(ctx)
	return true
}

func (d *Dashboard) postComment(ctx context.Context, userID int, text string) (ok bool) {
	d.mu.Lock()
	d.commentForm = CommentForm{UserID: userID, Text: text, Busy: true}
	d.mu.Unlock()

	defer func() {
		d.mu.Lock()
		d.commentForm.Busy = false
		d.mu.Unlock()
	}()

	res, err := d.backend.CreateComment(ctx, userID, text)
	if err != nil {
		alert := Alert{Kind: AlertError, Text: msgCommentFailed}
		if apiErr, ok := services.AsAPIError(err); ok {
			alert.Text = "❌ " + apiErr.Message
		} else {
			logx.Error(err, "Error creating comment", "view", d.id)
		}
		d.mu.Lock()
		d.setAlertLocked(AlertComments, alert, d.opts.CommentAlertTTL)
		d.mu.Unlock()
		return false
	}

	s := res.Analysis.Sentiment
	d.mu.Lock()
	d.commentForm = CommentForm{Busy: true}
	d.setAlertLocked(AlertComments, Alert{
		Kind:   AlertSuccess,
		Text:   msgCommentAnalyzed,
		Strong: s.Emoji() + " " + s.Label(),
		Suffix: "(Confianza: " + utils.FormatNumber(res.Analysis.Confidence) + "%)",
	}, d.opts.CommentAlertTTL)
	d.mu.Unlock()
	return true
}

func (d *Dashboard) setAlertLocked(slot AlertSlot, a Alert, ttl time.Duration) {
	a.ExpiresAt = d.now().Add(ttl)
	d.alerts[slot] = a
}

// Alert 指定区域当前的提示，过期后视为不存在
func (d *Dashboard) Alert(slot AlertSlot) (Alert, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.alertLocked(slot)
}

func (d *Dashboard) alertLocked(slot AlertSlot) (Alert, bool) {
	a, ok := d.alerts[slot]
	if !ok {
		return Alert{}, false
	}
	if !d.now().Before(a.ExpiresAt) {
		delete(d.alerts, slot)
		return Alert{}, false
	}
	return a, true
}

// View 渲染整页所需的全部数据（一次加锁取出的一致快照）
type View struct {
	ID           string
	Users        []UserOption
	TotalUsers   int
	Stats        Statistics
	Filter       models.Filter
	Comments     []models.Comment
	Quick        QuickOutcome
	UserForm     UserForm
	CommentForm  CommentForm
	UserAlert    *Alert
	CommentAlert *Alert
	Now          time.Time
	// 浏览器重新拉取评论片段的间隔
	RefreshEvery time.Duration
}

// Snapshot 生成当前视图
func (d *Dashboard) Snapshot() View {
	d.mu.Lock()
	defer d.mu.Unlock()

	options := make([]UserOption, 0, len(d.users))
	for _, u := range d.users {
		options = append(options, UserOption{Value: u.ID, Label: u.OptionLabel()})
	}

	v := View{
		ID:           d.id,
		Users:        options,
		TotalUsers:   len(d.users),
		Stats:        ComputeStatistics(d.comments),
		Filter:       d.filter,
		Comments:     append([]models.Comment(nil), FilterComments(d.comments, d.filter)...),
		Quick:        d.quick,
		UserForm:     d.userForm,
		CommentForm:  d.commentForm,
		Now:          d.now(),
		RefreshEvery: d.opts.RefreshInterval,
	}
	if a, ok := d.alertLocked(AlertUsers); ok {
		v.UserAlert = &a
	}
	if a, ok := d.alertLocked(AlertComments); ok {
		v.CommentAlert = &a
	}
	return v
}
