package service

import (
	"errors"
	"math"
	"sort"
	"time"

	"ComplyLink/internal/modules/compliance/application/dto/respond"
	"ComplyLink/internal/modules/compliance/domain/status"
	documentEntity "ComplyLink/internal/modules/document/domain/entity"
	documentRepository "ComplyLink/internal/modules/document/domain/repository"
	orgEntity "ComplyLink/internal/modules/org/domain/entity"
	orgRepository "ComplyLink/internal/modules/org/domain/repository"
	userEntity "ComplyLink/internal/modules/user/domain/entity"
	"ComplyLink/pkg/xerr"
	"ComplyLink/pkg/zlog"

	"gorm.io/gorm"
)

// ComplianceService 接口定义 (Application Service)
// 合规状态永远基于当前时间即时计算，不落库不缓存
// now 由 handler 层显式传入，业务逻辑内部不读系统时钟
type ComplianceService interface {
	EmployeeCompliance(organizationId string, callerRole string, callerUserId string, employeeId string, now time.Time) (*respond.EmployeeComplianceRespond, error)
	OrganizationCompliance(organizationId string, callerRole string, now time.Time) (*respond.OrganizationComplianceRespond, error)
	ComplianceByType(organizationId string, callerRole string, now time.Time) ([]respond.TypeComplianceItem, error)
	CriticalIssues(organizationId string, callerRole string, callerUserId string, now time.Time) ([]respond.CriticalEmployeeItem, error)
	Metrics(organizationId string, callerRole string, callerUserId string, now time.Time) (*respond.ComplianceMetricsRespond, error)
}

type complianceServiceImpl struct {
	employeeRepo      orgRepository.EmployeeRepository
	docRepo           documentRepository.DocumentRepository
	warningWindowDays int
}

// NewComplianceService 构造函数
func NewComplianceService(employeeRepo orgRepository.EmployeeRepository, docRepo documentRepository.DocumentRepository, warningWindowDays int) ComplianceService {
	if warningWindowDays <= 0 {
		warningWindowDays = status.DefaultWarningWindowDays
	}
	return &complianceServiceImpl{
		employeeRepo:      employeeRepo,
		docRepo:           docRepo,
		warningWindowDays: warningWindowDays,
	}
}

func (s *complianceServiceImpl) toDocumentItem(doc *documentEntity.Document, now time.Time) respond.DocumentComplianceItem {
	return respond.DocumentComplianceItem{
		Uuid:            doc.Uuid,
		Title:           doc.Title,
		Status:          status.ForExpiry(doc.ExpiresAt, s.warningWindowDays, now),
		ExpiresAt:       doc.ExpiresAt,
		DaysUntilExpiry: status.DaysUntilExpiry(doc.ExpiresAt, now),
	}
}

// employeeStatus 员工状态 = 名下文档的最差状态，零文档 => GREEN
func (s *complianceServiceImpl) employeeStatus(docs []documentEntity.Document, now time.Time) status.Status {
	statuses := make([]status.Status, 0, len(docs))
	for i := range docs {
		statuses = append(statuses, status.ForExpiry(docs[i].ExpiresAt, s.warningWindowDays, now))
	}
	return status.Worst(statuses)
}

func (s *complianceServiceImpl) EmployeeCompliance(organizationId string, callerRole string, callerUserId string, employeeId string, now time.Time) (*respond.EmployeeComplianceRespond, error) {
	if employeeId == "" {
		return nil, xerr.ErrParam
	}

	employee, err := s.employeeRepo.GetEmployeeByUuid(employeeId, organizationId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.ErrNotFound
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	// 普通用户只能查看自己账号关联的员工记录
	if !userEntity.IsComplianceManager(callerRole) {
		if employee.UserId == nil || *employee.UserId != callerUserId {
			return nil, xerr.ErrForbidden
		}
	}

	docs, err := s.docRepo.ListDocumentsByEmployee(employee.Uuid)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	items := make([]respond.DocumentComplianceItem, 0, len(docs))
	for i := range docs {
		items = append(items, s.toDocumentItem(&docs[i], now))
	}

	return &respond.EmployeeComplianceRespond{
		EmployeeId: employee.Uuid,
		Name:       employee.FullName(),
		Status:     s.employeeStatus(docs, now),
		Documents:  items,
	}, nil
}

// groupDocsByEmployee 单次查询后按员工分组，避免逐员工查库
func groupDocsByEmployee(docs []documentEntity.Document) map[string][]documentEntity.Document {
	grouped := make(map[string][]documentEntity.Document)
	for i := range docs {
		if docs[i].EmployeeId == nil {
			continue
		}
		grouped[*docs[i].EmployeeId] = append(grouped[*docs[i].EmployeeId], docs[i])
	}
	return grouped
}

func (s *complianceServiceImpl) OrganizationCompliance(organizationId string, callerRole string, now time.Time) (*respond.OrganizationComplianceRespond, error) {
	if !userEntity.IsComplianceManager(callerRole) {
		return nil, xerr.ErrForbidden
	}

	employees, err := s.employeeRepo.ListEmployeesByOrganization(organizationId)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	docs, err := s.docRepo.ListAssignedDocumentsByOrganization(organizationId)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	grouped := groupDocsByEmployee(docs)

	var summary status.Summary
	items := make([]respond.EmployeeStatusItem, 0, len(employees))
	for i := range employees {
		st := s.employeeStatus(grouped[employees[i].Uuid], now)
		summary.Add(st)
		items = append(items, respond.EmployeeStatusItem{
			EmployeeId: employees[i].Uuid,
			Name:       employees[i].FullName(),
			Status:     st,
		})
	}

	return &respond.OrganizationComplianceRespond{
		OrganizationId: organizationId,
		Summary:        summary,
		Employees:      items,
	}, nil
}

func (s *complianceServiceImpl) ComplianceByType(organizationId string, callerRole string, now time.Time) ([]respond.TypeComplianceItem, error) {
	if !userEntity.IsComplianceManager(callerRole) {
		return nil, xerr.ErrForbidden
	}

	docs, err := s.docRepo.ListAssignedDocumentsByOrganization(organizationId)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	byType := make(map[string][]documentEntity.Document)
	for i := range docs {
		byType[docs[i].Type] = append(byType[docs[i].Type], docs[i])
	}

	types := make([]string, 0, len(byType))
	for t := range byType {
		types = append(types, t)
	}
	sort.Strings(types)

	result := make([]respond.TypeComplianceItem, 0, len(types))
	for _, t := range types {
		group := byType[t]
		var summary status.Summary
		items := make([]respond.DocumentComplianceItem, 0, len(group))
		for i := range group {
			item := s.toDocumentItem(&group[i], now)
			summary.Add(item.Status)
			items = append(items, item)
		}
		result = append(result, respond.TypeComplianceItem{
			DocumentType: t,
			Summary:      summary,
			Documents:    items,
		})
	}
	return result, nil
}

func (s *complianceServiceImpl) criticalForEmployee(employee *orgEntity.Employee, docs []documentEntity.Document, now time.Time) *respond.CriticalEmployeeItem {
	var expired []respond.ExpiredDocumentItem
	for i := range docs {
		doc := &docs[i]
		if status.ForExpiry(doc.ExpiresAt, s.warningWindowDays, now) != status.Red {
			continue
		}
		expired = append(expired, respond.ExpiredDocumentItem{
			Uuid:        doc.Uuid,
			Title:       doc.Title,
			Type:        doc.Type,
			ExpiresAt:   *doc.ExpiresAt,
			DaysExpired: status.DaysExpired(*doc.ExpiresAt, now),
		})
	}
	if len(expired) == 0 {
		return nil
	}
	return &respond.CriticalEmployeeItem{
		EmployeeId:       employee.Uuid,
		Name:             employee.FullName(),
		ExpiredDocuments: expired,
	}
}

func (s *complianceServiceImpl) CriticalIssues(organizationId string, callerRole string, callerUserId string, now time.Time) ([]respond.CriticalEmployeeItem, error) {
	// 普通用户只看自己：没有员工记录或没有过期文档都返回空列表，不是错误
	if !userEntity.IsComplianceManager(callerRole) {
		employee, err := s.employeeRepo.GetEmployeeByUserId(callerUserId, organizationId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []respond.CriticalEmployeeItem{}, nil
			}
			zlog.Error(err.Error())
			return nil, xerr.ErrServerError
		}
		docs, err := s.docRepo.ListDocumentsByEmployee(employee.Uuid)
		if err != nil {
			zlog.Error(err.Error())
			return nil, xerr.ErrServerError
		}
		if item := s.criticalForEmployee(employee, docs, now); item != nil {
			return []respond.CriticalEmployeeItem{*item}, nil
		}
		return []respond.CriticalEmployeeItem{}, nil
	}

	employees, err := s.employeeRepo.ListEmployeesByOrganization(organizationId)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	docs, err := s.docRepo.ListAssignedDocumentsByOrganization(organizationId)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	grouped := groupDocsByEmployee(docs)

	result := make([]respond.CriticalEmployeeItem, 0)
	for i := range employees {
		if item := s.criticalForEmployee(&employees[i], grouped[employees[i].Uuid], now); item != nil {
			result = append(result, *item)
		}
	}
	return result, nil
}

func (s *complianceServiceImpl) Metrics(organizationId string, callerRole string, callerUserId string, now time.Time) (*respond.ComplianceMetricsRespond, error) {
	totalEmployees, err := s.employeeRepo.CountEmployeesByOrganization(organizationId)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	totalDocuments, err := s.docRepo.CountDocumentsByOrganization(organizationId)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	metrics := &respond.ComplianceMetricsRespond{
		TotalEmployees: totalEmployees,
		TotalDocuments: totalDocuments,
	}

	if userEntity.IsComplianceManager(callerRole) {
		// 管理视角：全组织员工状态 + 全组织文档状态
		employees, err := s.employeeRepo.ListEmployeesByOrganization(organizationId)
		if err != nil {
			zlog.Error(err.Error())
			return nil, xerr.ErrServerError
		}
		assigned, err := s.docRepo.ListAssignedDocumentsByOrganization(organizationId)
		if err != nil {
			zlog.Error(err.Error())
			return nil, xerr.ErrServerError
		}
		grouped := groupDocsByEmployee(assigned)

		var summary status.Summary
		for i := range employees {
			summary.Add(s.employeeStatus(grouped[employees[i].Uuid], now))
		}
		metrics.ComplianceSummary = respond.ComplianceCounts{
			Green:  summary.Green,
			Yellow: summary.Yellow,
			Red:    summary.Red,
		}
		metrics.ComplianceRate = complianceRate(summary.Green, summary.Total)

		allDocs, err := s.docRepo.ListDocumentsByOrganization(organizationId, documentRepository.DocumentFilter{})
		if err != nil {
			zlog.Error(err.Error())
			return nil, xerr.ErrServerError
		}
		metrics.DocumentsExpiringSoon, metrics.ExpiredDocuments = s.countDocStatuses(allDocs, now)
		return metrics, nil
	}

	// 员工视角：组织总人数保留作参照，状态只反映本人
	employee, err := s.employeeRepo.GetEmployeeByUserId(callerUserId, organizationId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			metrics.ComplianceRate = 100
			metrics.ComplianceSummary = respond.ComplianceCounts{Green: 1}
			return metrics, nil
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	docs, err := s.docRepo.ListDocumentsByEmployee(employee.Uuid)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	st := s.employeeStatus(docs, now)
	switch st {
	case status.Red:
		metrics.ComplianceSummary = respond.ComplianceCounts{Red: 1}
	case status.Yellow:
		metrics.ComplianceSummary = respond.ComplianceCounts{Yellow: 1}
	default:
		metrics.ComplianceSummary = respond.ComplianceCounts{Green: 1}
	}
	if st == status.Green {
		metrics.ComplianceRate = 100
	}
	metrics.DocumentsExpiringSoon, metrics.ExpiredDocuments = s.countDocStatuses(docs, now)
	return metrics, nil
}

func (s *complianceServiceImpl) countDocStatuses(docs []documentEntity.Document, now time.Time) (expiringSoon int, expired int) {
	for i := range docs {
		switch status.ForExpiry(docs[i].ExpiresAt, s.warningWindowDays, now) {
		case status.Yellow:
			expiringSoon++
		case status.Red:
			expired++
		}
	}
	return expiringSoon, expired
}

// complianceRate GREEN 员工占比（四舍五入取整），零员工 => 100
func complianceRate(green int, total int) int {
	if total == 0 {
		return 100
	}
	return int(math.Round(float64(green) / float64(total) * 100))
}
