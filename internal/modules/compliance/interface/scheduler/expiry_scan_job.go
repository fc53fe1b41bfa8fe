package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"ComplyLink/internal/modules/compliance/application/dto/respond"
	"ComplyLink/internal/modules/compliance/application/service"
	"ComplyLink/internal/modules/compliance/infrastructure/mq"
	documentRepository "ComplyLink/internal/modules/document/domain/repository"
	orgEntity "ComplyLink/internal/modules/org/domain/entity"
	orgRepository "ComplyLink/internal/modules/org/domain/repository"
	"ComplyLink/pkg/zlog"

	"github.com/robfig/cron/v3"
)

// RunSummary 单次扫描的执行摘要，只通过日志和事件上报，不落库
type RunSummary struct {
	StartedAt              time.Time `json:"startedAt"`
	Duration               string    `json:"duration"`
	OrganizationsTotal     int       `json:"organizationsTotal"`
	OrganizationsProcessed int       `json:"organizationsProcessed"`
	NotificationsSent      int       `json:"notificationsSent"`
	EmailsSent             int       `json:"emailsSent"`
	Errors                 int       `json:"errors"`
}

// Config 任务配置，进程启动时加载，运行期只读
type Config struct {
	Enabled     bool
	Schedule    string
	WarningDays []int
	Timezone    string
	EventTopic  string
}

// ExpiryScanJob 文档到期扫描任务
// 每次执行扫描全部组织、全部预警阈值，按半开单日窗口
// [today+N, today+N+1) 命中文档并触发通知分发
// 不记录"已通知"状态：时钟回拨或任务漏跑时同一文档可能被重复
// 或遗漏通知一次，这是单日窗口方案已知且接受的误差
type ExpiryScanJob struct {
	cfg      Config
	loc      *time.Location
	orgRepo  orgRepository.OrganizationRepository
	docRepo  documentRepository.DocumentRepository
	notifier service.ExpiryNotifierService

	// publisher 可空：未开启 Kafka 时只写日志
	publisher mq.Publisher

	cron    *cron.Cron
	entryID cron.EntryID

	// 全进程同一时刻最多一次扫描在跑，调度触发撞上执行中直接跳过
	running atomic.Bool

	mu          sync.Mutex
	lastSummary *RunSummary
}

// NewExpiryScanJob 构造函数
func NewExpiryScanJob(
	cfg Config,
	orgRepo orgRepository.OrganizationRepository,
	docRepo documentRepository.DocumentRepository,
	notifier service.ExpiryNotifierService,
	publisher mq.Publisher,
) *ExpiryScanJob {
	loc := time.Local
	if cfg.Timezone != "" {
		if l, err := time.LoadLocation(cfg.Timezone); err == nil {
			loc = l
		} else {
			zlog.Warn("invalid timezone, fallback to local: " + cfg.Timezone)
		}
	}
	if len(cfg.WarningDays) == 0 {
		cfg.WarningDays = []int{30, 14, 7, 1}
	}
	return &ExpiryScanJob{
		cfg:      cfg,
		loc:      loc,
		orgRepo:  orgRepo,
		docRepo:  docRepo,
		notifier: notifier,
		// 使用标准5段Cron表达式（不含秒）
		cron:      cron.New(cron.WithLocation(loc)),
		publisher: publisher,
	}
}

// Start 注册定时调度
func (j *ExpiryScanJob) Start() error {
	if !j.cfg.Enabled {
		zlog.Info("Expiry scan job disabled by config")
		return nil
	}
	entryID, err := j.cron.AddFunc(j.cfg.Schedule, func() {
		j.RunOnce()
	})
	if err != nil {
		return err
	}
	j.entryID = entryID
	j.cron.Start()
	zlog.Info(fmt.Sprintf("Expiry scan job started: schedule=%s warningDays=%v", j.cfg.Schedule, j.cfg.WarningDays))
	return nil
}

// Stop 停止调度，执行中的扫描会跑完再释放
func (j *ExpiryScanJob) Stop() {
	ctx := j.cron.Stop()
	<-ctx.Done()
}

// RunOnce 立即执行一次扫描（调度和手动触发共用同一条路径）
// 已有扫描在执行时返回 false，不排队
func (j *ExpiryScanJob) RunOnce() bool {
	return j.RunOnceAt(time.Now())
}

// RunOnceAt 以指定参考时间执行，测试用固定时刻注入
func (j *ExpiryScanJob) RunOnceAt(now time.Time) bool {
	if !j.running.CompareAndSwap(false, true) {
		zlog.Warn("Expiry scan already running, trigger skipped")
		return false
	}
	defer j.running.Store(false)

	summary := j.execute(now)

	j.mu.Lock()
	j.lastSummary = &summary
	j.mu.Unlock()
	return true
}

// TriggerAsync 异步触发（HTTP 手动触发入口），返回是否真正启动
func (j *ExpiryScanJob) TriggerAsync() bool {
	if !j.running.CompareAndSwap(false, true) {
		return false
	}
	go func() {
		defer j.running.Store(false)
		summary := j.execute(time.Now())
		j.mu.Lock()
		j.lastSummary = &summary
		j.mu.Unlock()
	}()
	return true
}

// Status 运维状态
func (j *ExpiryScanJob) Status() respond.JobStatusRespond {
	status := respond.JobStatusRespond{
		Enabled:     j.cfg.Enabled,
		Running:     j.running.Load(),
		Schedule:    j.cfg.Schedule,
		WarningDays: j.cfg.WarningDays,
	}
	if j.cfg.Enabled && j.entryID != 0 {
		next := j.cron.Entry(j.entryID).Next
		if !next.IsZero() {
			status.NextRun = &next
		}
	}
	return status
}

// LastSummary 最近一次扫描摘要，尚未执行过时返回 nil
func (j *ExpiryScanJob) LastSummary() *RunSummary {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.lastSummary
}

// execute 扫描主流程
// 组织级/阈值级错误只计数不中断：能处理的组织和阈值全部处理完
func (j *ExpiryScanJob) execute(now time.Time) RunSummary {
	started := time.Now()
	summary := RunSummary{StartedAt: started}

	orgs, err := j.orgRepo.ListOrganizations()
	if err != nil {
		zlog.Error("expiry scan: list organizations failed: " + err.Error())
		summary.Errors++
		summary.Duration = time.Since(started).String()
		j.report(summary)
		return summary
	}
	summary.OrganizationsTotal = len(orgs)

	for i := range orgs {
		j.scanOrganization(&orgs[i], now, &summary)
		summary.OrganizationsProcessed++
	}

	summary.Duration = time.Since(started).String()
	j.report(summary)
	return summary
}

func (j *ExpiryScanJob) scanOrganization(org *orgEntity.Organization, now time.Time, summary *RunSummary) {
	defer func() {
		if r := recover(); r != nil {
			zlog.Error(fmt.Sprintf("expiry scan panic: org=%s err=%v", org.Uuid, r))
			summary.Errors++
		}
	}()

	dayStart := j.startOfDay(now)
	for _, days := range j.cfg.WarningDays {
		start := dayStart.AddDate(0, 0, days)
		end := start.AddDate(0, 0, 1)

		docs, err := j.docRepo.ListDocumentsExpiringInWindow(org.Uuid, start, end)
		if err != nil {
			zlog.Error(fmt.Sprintf("expiry scan query failed: org=%s days=%d err=%s", org.Uuid, days, err.Error()))
			summary.Errors++
			continue
		}

		for d := range docs {
			result := j.notifier.NotifyExpiringDocument(&docs[d], days, org.Uuid)
			summary.NotificationsSent += result.NotificationsSent
			summary.EmailsSent += result.EmailsSent
			j.publishEvent("document.expiry_warning", map[string]interface{}{
				"organizationId":    org.Uuid,
				"documentId":        docs[d].Uuid,
				"warningDays":       days,
				"expiresAt":         docs[d].ExpiresAt,
				"notificationsSent": result.NotificationsSent,
				"emailsSent":        result.EmailsSent,
			})
		}
	}
}

// startOfDay 参考时区内的当日零点
func (j *ExpiryScanJob) startOfDay(now time.Time) time.Time {
	local := now.In(j.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, j.loc)
}

func (j *ExpiryScanJob) report(summary RunSummary) {
	zlog.Info(fmt.Sprintf("expiry scan done: orgs=%d/%d notifications=%d emails=%d errors=%d duration=%s",
		summary.OrganizationsProcessed, summary.OrganizationsTotal,
		summary.NotificationsSent, summary.EmailsSent, summary.Errors, summary.Duration))
	j.publishEvent("compliance.scan_summary", summary)
}

func (j *ExpiryScanJob) publishEvent(key string, payload interface{}) {
	if j.publisher == nil || j.cfg.EventTopic == "" {
		return
	}
	b, err := json.Marshal(payload)
	if err != nil {
		return
	}
	_, err = j.publisher.Publish(context.Background(), mq.Message{
		Topic: j.cfg.EventTopic,
		Key:   []byte(key),
		Value: b,
	})
	if err != nil {
		zlog.Warn("compliance event publish failed: " + err.Error())
	}
}
