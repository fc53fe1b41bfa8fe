package repository

import (
	"ComplyLink/internal/modules/org/domain/entity"
)

// EmployeeRepository 接口定义
// 所有查询自动排除软删除记录（gorm.DeletedAt 约定）
type EmployeeRepository interface {
	CreateEmployee(employee *entity.Employee) error
	UpdateEmployee(employee *entity.Employee) error
	DeleteEmployee(uuid string, organizationId string) error
	GetEmployeeByUuid(uuid string, organizationId string) (*entity.Employee, error)
	GetEmployeeByUserId(userId string, organizationId string) (*entity.Employee, error)
	// ListEmployeesByOrganization 按 (last_name, first_name) 升序返回
	ListEmployeesByOrganization(organizationId string) ([]entity.Employee, error)
	CountEmployeesByOrganization(organizationId string) (int64, error)
}
