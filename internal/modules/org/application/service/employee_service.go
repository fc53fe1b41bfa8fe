package service

import (
	"errors"
	"time"

	"ComplyLink/internal/modules/org/application/dto/request"
	"ComplyLink/internal/modules/org/application/dto/respond"
	"ComplyLink/internal/modules/org/domain/entity"
	"ComplyLink/internal/modules/org/domain/repository"
	userEntity "ComplyLink/internal/modules/user/domain/entity"
	"ComplyLink/pkg/util"
	"ComplyLink/pkg/xerr"
	"ComplyLink/pkg/zlog"

	"gorm.io/gorm"
)

// EmployeeService 接口定义 (Application Service)
// 写操作只对合规管理角色开放，普通用户只能查看自己关联的员工记录
type EmployeeService interface {
	CreateEmployee(organizationId string, callerRole string, req request.CreateEmployeeRequest) (*respond.EmployeeItem, error)
	UpdateEmployee(organizationId string, callerRole string, req request.UpdateEmployeeRequest) error
	DeleteEmployee(organizationId string, callerRole string, uuid string) error
	GetEmployee(organizationId string, callerRole string, callerUserId string, uuid string) (*respond.EmployeeItem, error)
	ListEmployees(organizationId string, callerRole string) ([]respond.EmployeeItem, error)
}

type employeeServiceImpl struct {
	repo repository.EmployeeRepository
}

// NewEmployeeService 构造函数
func NewEmployeeService(repo repository.EmployeeRepository) EmployeeService {
	return &employeeServiceImpl{repo: repo}
}

func toEmployeeItem(e *entity.Employee) *respond.EmployeeItem {
	return &respond.EmployeeItem{
		Uuid:      e.Uuid,
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Email:     e.Email,
		Position:  e.Position,
		UserId:    e.UserId,
	}
}

func (s *employeeServiceImpl) CreateEmployee(organizationId string, callerRole string, req request.CreateEmployeeRequest) (*respond.EmployeeItem, error) {
	if !userEntity.IsComplianceManager(callerRole) {
		return nil, xerr.ErrForbidden
	}
	if req.FirstName == "" || req.LastName == "" {
		return nil, xerr.ErrParam
	}
	employee := entity.Employee{
		Uuid:           util.GenerateUUID(),
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		Position:       req.Position,
		OrganizationId: organizationId,
		UserId:         req.UserId,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.CreateEmployee(&employee); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return toEmployeeItem(&employee), nil
}

func (s *employeeServiceImpl) UpdateEmployee(organizationId string, callerRole string, req request.UpdateEmployeeRequest) error {
	if !userEntity.IsComplianceManager(callerRole) {
		return xerr.ErrForbidden
	}
	if req.Uuid == "" {
		return xerr.ErrParam
	}
	existing, err := s.repo.GetEmployeeByUuid(req.Uuid, organizationId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerr.ErrNotFound
		}
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}

	existing.FirstName = req.FirstName
	existing.LastName = req.LastName
	existing.Email = req.Email
	existing.Position = req.Position
	existing.UserId = req.UserId
	existing.UpdatedAt = time.Now()
	if err := s.repo.UpdateEmployee(existing); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	return nil
}

func (s *employeeServiceImpl) DeleteEmployee(organizationId string, callerRole string, uuid string) error {
	if !userEntity.IsComplianceManager(callerRole) {
		return xerr.ErrForbidden
	}
	if uuid == "" {
		return xerr.ErrParam
	}
	if _, err := s.repo.GetEmployeeByUuid(uuid, organizationId); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return xerr.ErrNotFound
		}
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	if err := s.repo.DeleteEmployee(uuid, organizationId); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	return nil
}

func (s *employeeServiceImpl) GetEmployee(organizationId string, callerRole string, callerUserId string, uuid string) (*respond.EmployeeItem, error) {
	employee, err := s.repo.GetEmployeeByUuid(uuid, organizationId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.ErrNotFound
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	if !userEntity.IsComplianceManager(callerRole) {
		if employee.UserId == nil || *employee.UserId != callerUserId {
			return nil, xerr.ErrForbidden
		}
	}
	return toEmployeeItem(employee), nil
}

func (s *employeeServiceImpl) ListEmployees(organizationId string, callerRole string) ([]respond.EmployeeItem, error) {
	if !userEntity.IsComplianceManager(callerRole) {
		return nil, xerr.ErrForbidden
	}
	employees, err := s.repo.ListEmployeesByOrganization(organizationId)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	items := make([]respond.EmployeeItem, 0, len(employees))
	for i := range employees {
		items = append(items, *toEmployeeItem(&employees[i]))
	}
	return items, nil
}
