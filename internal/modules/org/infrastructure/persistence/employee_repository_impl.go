package persistence

import (
	"ComplyLink/internal/modules/org/domain/entity"
	"ComplyLink/internal/modules/org/domain/repository"

	"gorm.io/gorm"
)

type employeeRepositoryImpl struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) repository.EmployeeRepository {
	return &employeeRepositoryImpl{db: db}
}

func (r *employeeRepositoryImpl) CreateEmployee(employee *entity.Employee) error {
	return r.db.Create(employee).Error
}

func (r *employeeRepositoryImpl) UpdateEmployee(employee *entity.Employee) error {
	return r.db.Model(&entity.Employee{}).
		Where("uuid = ? AND organization_id = ?", employee.Uuid, employee.OrganizationId).
		Updates(map[string]interface{}{
			"first_name": employee.FirstName,
			"last_name":  employee.LastName,
			"email":      employee.Email,
			"position":   employee.Position,
			"user_id":    employee.UserId,
			"updated_at": employee.UpdatedAt,
		}).Error
}

func (r *employeeRepositoryImpl) DeleteEmployee(uuid string, organizationId string) error {
	// 软删除，合规视图与到期扫描均不再可见
	return r.db.Where("uuid = ? AND organization_id = ?", uuid, organizationId).
		Delete(&entity.Employee{}).Error
}

func (r *employeeRepositoryImpl) GetEmployeeByUuid(uuid string, organizationId string) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.Where("uuid = ? AND organization_id = ?", uuid, organizationId).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepositoryImpl) GetEmployeeByUserId(userId string, organizationId string) (*entity.Employee, error) {
	var employee entity.Employee
	err := r.db.Where("user_id = ? AND organization_id = ?", userId, organizationId).First(&employee).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepositoryImpl) ListEmployeesByOrganization(organizationId string) ([]entity.Employee, error) {
	var employees []entity.Employee
	err := r.db.Where("organization_id = ?", organizationId).
		Order("last_name ASC, first_name ASC").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *employeeRepositoryImpl) CountEmployeesByOrganization(organizationId string) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Employee{}).
		Where("organization_id = ?", organizationId).
		Count(&count).Error
	return count, err
}
