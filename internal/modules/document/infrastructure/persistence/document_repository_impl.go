package persistence

import (
	"time"

	"ComplyLink/internal/modules/document/domain/entity"
	"ComplyLink/internal/modules/document/domain/repository"

	"gorm.io/gorm"
)

type documentRepositoryImpl struct {
	db *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) repository.DocumentRepository {
	return &documentRepositoryImpl{db: db}
}

func (r *documentRepositoryImpl) CreateDocument(doc *entity.Document) error {
	return r.db.Create(doc).Error
}

func (r *documentRepositoryImpl) UpdateDocument(doc *entity.Document) error {
	return r.db.Model(&entity.Document{}).
		Where("uuid = ? AND organization_id = ?", doc.Uuid, doc.OrganizationId).
		Updates(map[string]interface{}{
			"title":       doc.Title,
			"type":        doc.Type,
			"file_name":   doc.FileName,
			"expires_at":  doc.ExpiresAt,
			"employee_id": doc.EmployeeId,
			"updated_at":  doc.UpdatedAt,
		}).Error
}

func (r *documentRepositoryImpl) DeleteDocument(uuid string, organizationId string) error {
	// 软删除，合规视图与到期扫描均不再可见
	return r.db.Where("uuid = ? AND organization_id = ?", uuid, organizationId).
		Delete(&entity.Document{}).Error
}

func (r *documentRepositoryImpl) GetDocumentByUuid(uuid string, organizationId string) (*entity.Document, error) {
	var doc entity.Document
	err := r.db.Where("uuid = ? AND organization_id = ?", uuid, organizationId).First(&doc).Error
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepositoryImpl) ListDocumentsByOrganization(organizationId string, filter repository.DocumentFilter) ([]entity.Document, error) {
	query := r.db.Where("organization_id = ?", organizationId)
	if filter.Type != "" {
		query = query.Where("type = ?", filter.Type)
	}
	if filter.EmployeeId != "" {
		query = query.Where("employee_id = ?", filter.EmployeeId)
	}
	var docs []entity.Document
	err := query.Order("created_at DESC").Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepositoryImpl) ListDocumentsByEmployee(employeeId string) ([]entity.Document, error) {
	var docs []entity.Document
	err := r.db.Where("employee_id = ?", employeeId).
		Order("created_at DESC").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepositoryImpl) ListAssignedDocumentsByOrganization(organizationId string) ([]entity.Document, error) {
	var docs []entity.Document
	err := r.db.Where("organization_id = ? AND employee_id IS NOT NULL", organizationId).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (r *documentRepositoryImpl) CountDocumentsByOrganization(organizationId string) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Document{}).
		Where("organization_id = ?", organizationId).
		Count(&count).Error
	return count, err
}

func (r *documentRepositoryImpl) ListDocumentsExpiringInWindow(organizationId string, startInclusive time.Time, endExclusive time.Time) ([]entity.Document, error) {
	var docs []entity.Document
	err := r.db.Where("organization_id = ? AND expires_at >= ? AND expires_at < ?",
		organizationId, startInclusive, endExclusive).
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}
