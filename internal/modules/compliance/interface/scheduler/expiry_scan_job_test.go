package scheduler

import (
	"errors"
	"sync"
	"testing"
	"time"

	"ComplyLink/internal/modules/compliance/application/service"
	documentEntity "ComplyLink/internal/modules/document/domain/entity"
	documentRepository "ComplyLink/internal/modules/document/domain/repository"
	orgEntity "ComplyLink/internal/modules/org/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ==================== 测试替身 ====================

type stubOrgRepo struct {
	orgs    []orgEntity.Organization
	listErr error
}

func (s *stubOrgRepo) CreateOrganization(org *orgEntity.Organization) error {
	return errors.New("not implemented")
}

func (s *stubOrgRepo) GetOrganizationByUuid(uuid string) (*orgEntity.Organization, error) {
	return nil, gorm.ErrRecordNotFound
}

func (s *stubOrgRepo) ListOrganizations() ([]orgEntity.Organization, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.orgs, nil
}

type queriedWindow struct {
	OrganizationId string
	Start          time.Time
	End            time.Time
}

type stubDocRepo struct {
	mu      sync.Mutex
	docs    []documentEntity.Document
	windows []queriedWindow
	// failAtDays 命中该窗口起点偏移天数时返回错误
	failAtDays map[int]bool
	dayStart   time.Time
}

func (s *stubDocRepo) CreateDocument(doc *documentEntity.Document) error {
	return errors.New("not implemented")
}
func (s *stubDocRepo) UpdateDocument(doc *documentEntity.Document) error {
	return errors.New("not implemented")
}
func (s *stubDocRepo) DeleteDocument(uuid string, organizationId string) error {
	return errors.New("not implemented")
}
func (s *stubDocRepo) GetDocumentByUuid(uuid string, organizationId string) (*documentEntity.Document, error) {
	return nil, gorm.ErrRecordNotFound
}
func (s *stubDocRepo) ListDocumentsByOrganization(organizationId string, filter documentRepository.DocumentFilter) ([]documentEntity.Document, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDocRepo) ListDocumentsByEmployee(employeeId string) ([]documentEntity.Document, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDocRepo) ListAssignedDocumentsByOrganization(organizationId string) ([]documentEntity.Document, error) {
	return nil, errors.New("not implemented")
}
func (s *stubDocRepo) CountDocumentsByOrganization(organizationId string) (int64, error) {
	return 0, errors.New("not implemented")
}

func (s *stubDocRepo) ListDocumentsExpiringInWindow(organizationId string, startInclusive time.Time, endExclusive time.Time) ([]documentEntity.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.windows = append(s.windows, queriedWindow{OrganizationId: organizationId, Start: startInclusive, End: endExclusive})

	if !s.dayStart.IsZero() {
		offset := int(startInclusive.Sub(s.dayStart).Hours() / 24)
		if s.failAtDays[offset] {
			return nil, errors.New("query timeout")
		}
	}

	var result []documentEntity.Document
	for i := range s.docs {
		d := s.docs[i]
		if d.OrganizationId != organizationId || d.ExpiresAt == nil {
			continue
		}
		if !d.ExpiresAt.Before(startInclusive) && d.ExpiresAt.Before(endExclusive) {
			result = append(result, d)
		}
	}
	return result, nil
}

type notifiedDoc struct {
	DocumentId  string
	WarningDays int
}

type stubNotifier struct {
	mu       sync.Mutex
	calls    []notifiedDoc
	panicFor string // 文档 uuid
}

func (s *stubNotifier) NotifyExpiringDocument(doc *documentEntity.Document, warningDays int, organizationId string) service.FanoutResult {
	if doc.Uuid == s.panicFor {
		panic("notifier exploded")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, notifiedDoc{DocumentId: doc.Uuid, WarningDays: warningDays})
	return service.FanoutResult{NotificationsSent: 1, EmailsSent: 1}
}

// blockingNotifier 第一次调用卡住扫描流程，用于并发触发测试
type blockingNotifier struct {
	once    sync.Once
	entered chan struct{}
	release chan struct{}
}

func (b *blockingNotifier) NotifyExpiringDocument(doc *documentEntity.Document, warningDays int, organizationId string) service.FanoutResult {
	b.once.Do(func() {
		close(b.entered)
		<-b.release
	})
	return service.FanoutResult{}
}

// ==================== 测试数据 ====================

func timePtr(t time.Time) *time.Time {
	return &t
}

func strPtr(s string) *string {
	return &s
}

func testConfig() Config {
	return Config{
		Enabled:     true,
		Schedule:    "0 9 * * *",
		WarningDays: []int{30, 14, 7, 1},
		Timezone:    "UTC",
	}
}

// ==================== 用例 ====================

func TestRunOnceAt_QueriesHalfOpenDayWindows(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	orgRepo := &stubOrgRepo{orgs: []orgEntity.Organization{{Uuid: "org-1", Name: "Acme"}}}
	docRepo := &stubDocRepo{dayStart: dayStart}
	job := NewExpiryScanJob(testConfig(), orgRepo, docRepo, &stubNotifier{}, nil)

	require.True(t, job.RunOnceAt(now))

	require.Len(t, docRepo.windows, 4)
	for i, days := range []int{30, 14, 7, 1} {
		w := docRepo.windows[i]
		assert.Equal(t, "org-1", w.OrganizationId)
		assert.Equal(t, dayStart.AddDate(0, 0, days), w.Start)
		assert.Equal(t, dayStart.AddDate(0, 0, days+1), w.End)
	}
}

func TestRunOnceAt_NotifiesMatchedDocuments(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	orgRepo := &stubOrgRepo{orgs: []orgEntity.Organization{{Uuid: "org-1", Name: "Acme"}}}
	docRepo := &stubDocRepo{docs: []documentEntity.Document{
		// 恰好 7 天窗口起点，命中一次
		{Uuid: "doc-7d", OrganizationId: "org-1", EmployeeId: strPtr("emp-1"),
			ExpiresAt: timePtr(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC))},
		// 1 天窗口内的午后时刻
		{Uuid: "doc-1d", OrganizationId: "org-1", EmployeeId: strPtr("emp-2"),
			ExpiresAt: timePtr(time.Date(2026, 3, 11, 14, 0, 0, 0, time.UTC))},
		// 窗口之间，不命中
		{Uuid: "doc-miss", OrganizationId: "org-1", EmployeeId: strPtr("emp-3"),
			ExpiresAt: timePtr(time.Date(2026, 3, 20, 0, 0, 0, 0, time.UTC))},
		// 其他组织
		{Uuid: "doc-other", OrganizationId: "org-2", EmployeeId: strPtr("emp-4"),
			ExpiresAt: timePtr(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC))},
	}}
	notifier := &stubNotifier{}
	job := NewExpiryScanJob(testConfig(), orgRepo, docRepo, notifier, nil)

	require.True(t, job.RunOnceAt(now))

	require.Len(t, notifier.calls, 2)
	byDoc := make(map[string]int)
	for _, c := range notifier.calls {
		byDoc[c.DocumentId] = c.WarningDays
	}
	assert.Equal(t, 7, byDoc["doc-7d"])
	assert.Equal(t, 1, byDoc["doc-1d"])

	summary := job.LastSummary()
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.OrganizationsTotal)
	assert.Equal(t, 1, summary.OrganizationsProcessed)
	assert.Equal(t, 2, summary.NotificationsSent)
	assert.Equal(t, 2, summary.EmailsSent)
	assert.Equal(t, 0, summary.Errors)
}

func TestRunOnceAt_ConcurrentTriggerIsSkipped(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	orgRepo := &stubOrgRepo{orgs: []orgEntity.Organization{{Uuid: "org-1", Name: "Acme"}}}
	docRepo := &stubDocRepo{docs: []documentEntity.Document{
		{Uuid: "doc-1", OrganizationId: "org-1",
			ExpiresAt: timePtr(time.Date(2026, 4, 9, 0, 0, 0, 0, time.UTC))},
	}}
	notifier := &blockingNotifier{entered: make(chan struct{}), release: make(chan struct{})}
	job := NewExpiryScanJob(testConfig(), orgRepo, docRepo, notifier, nil)

	done := make(chan bool)
	go func() {
		done <- job.RunOnceAt(now)
	}()

	// 等第一次扫描卡在通知分发上，再发起第二次
	<-notifier.entered
	assert.False(t, job.RunOnce())
	assert.True(t, job.Status().Running)

	close(notifier.release)
	assert.True(t, <-done)
	assert.False(t, job.Status().Running)

	// 扫描结束后可以再次触发
	assert.True(t, job.RunOnceAt(now))
}

func TestRunOnceAt_ThresholdFailureDoesNotAbortScan(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)
	dayStart := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	orgRepo := &stubOrgRepo{orgs: []orgEntity.Organization{{Uuid: "org-1", Name: "Acme"}}}
	docRepo := &stubDocRepo{
		dayStart:   dayStart,
		failAtDays: map[int]bool{14: true},
		docs: []documentEntity.Document{
			{Uuid: "doc-7d", OrganizationId: "org-1",
				ExpiresAt: timePtr(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC))},
		},
	}
	notifier := &stubNotifier{}
	job := NewExpiryScanJob(testConfig(), orgRepo, docRepo, notifier, nil)

	require.True(t, job.RunOnceAt(now))

	// 14 天窗口失败，7 天窗口照常通知
	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "doc-7d", notifier.calls[0].DocumentId)

	summary := job.LastSummary()
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 1, summary.OrganizationsProcessed)
}

func TestRunOnceAt_OrganizationPanicIsIsolated(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	orgRepo := &stubOrgRepo{orgs: []orgEntity.Organization{
		{Uuid: "org-1", Name: "Acme"},
		{Uuid: "org-2", Name: "Globex"},
	}}
	docRepo := &stubDocRepo{docs: []documentEntity.Document{
		{Uuid: "doc-bad", OrganizationId: "org-1",
			ExpiresAt: timePtr(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC))},
		{Uuid: "doc-good", OrganizationId: "org-2",
			ExpiresAt: timePtr(time.Date(2026, 3, 17, 0, 0, 0, 0, time.UTC))},
	}}
	notifier := &stubNotifier{panicFor: "doc-bad"}
	job := NewExpiryScanJob(testConfig(), orgRepo, docRepo, notifier, nil)

	require.True(t, job.RunOnceAt(now))

	require.Len(t, notifier.calls, 1)
	assert.Equal(t, "doc-good", notifier.calls[0].DocumentId)

	summary := job.LastSummary()
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 2, summary.OrganizationsProcessed)
}

func TestRunOnceAt_ListOrganizationsFailure(t *testing.T) {
	now := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	orgRepo := &stubOrgRepo{listErr: errors.New("db down")}
	job := NewExpiryScanJob(testConfig(), orgRepo, &stubDocRepo{}, &stubNotifier{}, nil)

	require.True(t, job.RunOnceAt(now))

	summary := job.LastSummary()
	require.NotNil(t, summary)
	assert.Equal(t, 1, summary.Errors)
	assert.Equal(t, 0, summary.OrganizationsTotal)
}

func TestStart_DisabledJobDoesNotSchedule(t *testing.T) {
	cfg := testConfig()
	cfg.Enabled = false
	job := NewExpiryScanJob(cfg, &stubOrgRepo{}, &stubDocRepo{}, &stubNotifier{}, nil)

	require.NoError(t, job.Start())

	status := job.Status()
	assert.False(t, status.Enabled)
	assert.False(t, status.Running)
	assert.Nil(t, status.NextRun)
}

func TestStatus_ReportsSchedule(t *testing.T) {
	job := NewExpiryScanJob(testConfig(), &stubOrgRepo{}, &stubDocRepo{}, &stubNotifier{}, nil)
	require.NoError(t, job.Start())
	defer job.Stop()

	status := job.Status()
	assert.True(t, status.Enabled)
	assert.Equal(t, "0 9 * * *", status.Schedule)
	assert.Equal(t, []int{30, 14, 7, 1}, status.WarningDays)
	require.NotNil(t, status.NextRun)
	assert.True(t, status.NextRun.After(time.Now()))
}

func TestNewExpiryScanJob_DefaultWarningDays(t *testing.T) {
	cfg := testConfig()
	cfg.WarningDays = nil
	job := NewExpiryScanJob(cfg, &stubOrgRepo{}, &stubDocRepo{}, &stubNotifier{}, nil)

	assert.Equal(t, []int{30, 14, 7, 1}, job.Status().WarningDays)
}
