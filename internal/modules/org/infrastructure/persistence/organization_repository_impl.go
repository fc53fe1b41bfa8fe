package persistence

import (
	"ComplyLink/internal/modules/org/domain/entity"
	"ComplyLink/internal/modules/org/domain/repository"

	"gorm.io/gorm"
)

type organizationRepositoryImpl struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) repository.OrganizationRepository {
	return &organizationRepositoryImpl{db: db}
}

func (r *organizationRepositoryImpl) CreateOrganization(org *entity.Organization) error {
	return r.db.Create(org).Error
}

func (r *organizationRepositoryImpl) GetOrganizationByUuid(uuid string) (*entity.Organization, error) {
	var org entity.Organization
	err := r.db.Where("uuid = ?", uuid).First(&org).Error
	if err != nil {
		return nil, err
	}
	return &org, nil
}

func (r *organizationRepositoryImpl) ListOrganizations() ([]entity.Organization, error) {
	var orgs []entity.Organization
	err := r.db.Order("id ASC").Find(&orgs).Error
	if err != nil {
		return nil, err
	}
	return orgs, nil
}
