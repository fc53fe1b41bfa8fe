package repository

import (
	"time"

	"ComplyLink/internal/modules/document/domain/entity"
)

// DocumentFilter 列表查询过滤条件
type DocumentFilter struct {
	Type       string
	EmployeeId string
}

// DocumentRepository 接口定义
// 所有查询自动排除软删除记录（gorm.DeletedAt 约定）
type DocumentRepository interface {
	CreateDocument(doc *entity.Document) error
	UpdateDocument(doc *entity.Document) error
	DeleteDocument(uuid string, organizationId string) error
	GetDocumentByUuid(uuid string, organizationId string) (*entity.Document, error)
	ListDocumentsByOrganization(organizationId string, filter DocumentFilter) ([]entity.Document, error)
	ListDocumentsByEmployee(employeeId string) ([]entity.Document, error)
	// ListAssignedDocumentsByOrganization 仅返回已指派员工的文档（employee_id 非空）
	ListAssignedDocumentsByOrganization(organizationId string) ([]entity.Document, error)
	CountDocumentsByOrganization(organizationId string) (int64, error)
	// ListDocumentsExpiringInWindow 半开单日窗口 [startInclusive, endExclusive)
	// 保证每个文档在一个阈值上最多命中一次
	ListDocumentsExpiringInWindow(organizationId string, startInclusive time.Time, endExclusive time.Time) ([]entity.Document, error)
}
