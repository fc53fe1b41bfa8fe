package repository

import (
	"ComplyLink/internal/modules/org/domain/entity"
)

// OrganizationRepository 接口定义
type OrganizationRepository interface {
	CreateOrganization(org *entity.Organization) error
	GetOrganizationByUuid(uuid string) (*entity.Organization, error)
	// ListOrganizations 枚举全部组织（到期扫描任务逐个处理）
	ListOrganizations() ([]entity.Organization, error)
}
