package service

import (
	"errors"
	"time"

	"ComplyLink/internal/modules/document/application/dto/request"
	"ComplyLink/internal/modules/document/application/dto/respond"
	"ComplyLink/internal/modules/document/domain/entity"
	"ComplyLink/internal/modules/document/domain/repository"
	orgRepository "ComplyLink/internal/modules/org/domain/repository"
	userEntity "ComplyLink/internal/modules/user/domain/entity"
	"ComplyLink/pkg/util"
	"ComplyLink/pkg/xerr"
	"ComplyLink/pkg/zlog"

	"gorm.io/gorm"
)

// DocumentService 接口定义 (Application Service)
// 管理文档元数据；文件内容的存取由独立的文件存储服务负责
type DocumentService interface {
	CreateDocument(organizationId string, callerRole string, callerUserId string, req request.CreateDocumentRequest) (*respond.DocumentItem, error)
	UpdateDocument(organizationId string, callerRole string, req request.UpdateDocumentRequest) error
	DeleteDocument(organizationId string, callerRole string, uuid string) error
	GetDocument(organizationId string, uuid string) (*respond.DocumentItem, error)
	ListDocuments(organizationId string, callerRole string, callerUserId string, req request.ListDocumentsRequest) ([]respond.DocumentItem, error)
}

type documentServiceImpl struct {
	repo         repository.DocumentRepository
	employeeRepo orgRepository.EmployeeRepository
}

// NewDocumentService 构造函数
func NewDocumentService(repo repository.DocumentRepository, employeeRepo orgRepository.EmployeeRepository) DocumentService {
	return &documentServiceImpl{repo: repo, employeeRepo: employeeRepo}
}

func toDocumentItem(d *entity.Document) *respond.DocumentItem {
	return &respond.DocumentItem{
		Uuid:       d.Uuid,
		Title:      d.Title,
		Type:       d.Type,
		FileName:   d.FileName,
		ExpiresAt:  d.ExpiresAt,
		EmployeeId: d.EmployeeId,
		UploadedBy: d.UploadedBy,
		CreatedAt:  d.CreatedAt,
	}
}

func (s *documentServiceImpl) CreateDocument(organizationId string, callerRole string, callerUserId string, req request.CreateDocumentRequest) (*respond.DocumentItem, error) {
	if !userEntity.IsComplianceManager(callerRole) {
		return nil, xerr.ErrForbidden
	}
	if req.Title == "" {
		return nil, xerr.ErrParam
	}
	docType := req.Type
	if docType == "" {
		docType = entity.TypeOther
	}
	if !entity.IsValidType(docType) {
		return nil, xerr.New(xerr.BadRequest, "非法的文档类型")
	}

	// 指派员工时校验员工属于本组织
	if req.EmployeeId != nil && *req.EmployeeId != "" {
		if _, err := s.employeeRepo.GetEmployeeByUuid(*req.EmployeeId, organizationId); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, xerr.New(xerr.NotFound, "员工不存在")
			}
			zlog.Error(err.Error())
			return nil, xerr.ErrServerError
		}
	}

	doc := entity.Document{
		Uuid:           util.GenerateUUID(),
		Title:          req.Title,
		Type:           docType,
		FileName:       req.FileName,
		ExpiresAt:      req.ExpiresAt,
		EmployeeId:     req.EmployeeId,
		OrganizationId: organizationId,
		UploadedBy:     callerUserId,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.CreateDocument(&doc); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return toDocumentItem(&doc), nil
}

func (s *documentServiceImpl) UpdateDocument(organizationId string, callerRole string, req request.UpdateDocumentRequest) error {
	if !userEntity.IsComplianceManager(callerRole) {
		return xerr.ErrForbidden
	}
	if req.Uuid == "" || req.Title == "" {
		return xerr.ErrParam
	}
	if req.Type != "" && !entity.IsValidType(req.Type) {
		return xerr.New(xerr.BadRequest, "非法的文档类型")
	}

	existing, err := s.repo.GetDocumentByUuid(req.Uuid, organizationId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerr.ErrNotFound
		}
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}

	existing.Title = req.Title
	if req.Type != "" {
		existing.Type = req.Type
	}
	existing.FileName = req.FileName
	existing.ExpiresAt = req.ExpiresAt
	existing.EmployeeId = req.EmployeeId
	existing.UpdatedAt = time.Now()
	if err := s.repo.UpdateDocument(existing); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	return nil
}

func (s *documentServiceImpl) DeleteDocument(organizationId string, callerRole string, uuid string) error {
	if !userEntity.IsComplianceManager(callerRole) {
		return xerr.ErrForbidden
	}
	if uuid == "" {
		return xerr.ErrParam
	}
	if _, err := s.repo.GetDocumentByUuid(uuid, organizationId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerr.ErrNotFound
		}
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	if err := s.repo.DeleteDocument(uuid, organizationId); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	return nil
}

func (s *documentServiceImpl) GetDocument(organizationId string, uuid string) (*respond.DocumentItem, error) {
	doc, err := s.repo.GetDocumentByUuid(uuid, organizationId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.ErrNotFound
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return toDocumentItem(doc), nil
}

func (s *documentServiceImpl) ListDocuments(organizationId string, callerRole string, callerUserId string, req request.ListDocumentsRequest) ([]respond.DocumentItem, error) {
	filter := repository.DocumentFilter{Type: req.Type, EmployeeId: req.EmployeeId}

	// 普通用户只能查看指派给自己员工记录的文档
	if !userEntity.IsComplianceManager(callerRole) {
		employee, err := s.employeeRepo.GetEmployeeByUserId(callerUserId, organizationId)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return []respond.DocumentItem{}, nil
			}
			zlog.Error(err.Error())
			return nil, xerr.ErrServerError
		}
		filter.EmployeeId = employee.Uuid
	}

	docs, err := s.repo.ListDocumentsByOrganization(organizationId, filter)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	items := make([]respond.DocumentItem, 0, len(docs))
	for i := range docs {
		items = append(items, *toDocumentItem(&docs[i]))
	}
	return items, nil
}
