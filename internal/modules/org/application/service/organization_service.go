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

// OrganizationService 接口定义 (Application Service)
type OrganizationService interface {
	CreateOrganization(req request.CreateOrganizationRequest) (*respond.OrganizationItem, error)
	GetOrganization(uuid string) (*respond.OrganizationItem, error)
	ListOrganizations(callerRole string) ([]respond.OrganizationItem, error)
}

type organizationServiceImpl struct {
	repo repository.OrganizationRepository
}

// NewOrganizationService 构造函数
func NewOrganizationService(repo repository.OrganizationRepository) OrganizationService {
	return &organizationServiceImpl{repo: repo}
}

func (s *organizationServiceImpl) CreateOrganization(req request.CreateOrganizationRequest) (*respond.OrganizationItem, error) {
	if req.Name == "" {
		return nil, xerr.ErrParam
	}
	org := entity.Organization{
		Uuid:      util.GenerateUUID(),
		Name:      req.Name,
		Industry:  req.Industry,
		CreatedAt: time.Now(),
	}
	if err := s.repo.CreateOrganization(&org); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return &respond.OrganizationItem{Uuid: org.Uuid, Name: org.Name, Industry: org.Industry}, nil
}

func (s *organizationServiceImpl) GetOrganization(uuid string) (*respond.OrganizationItem, error) {
	org, err := s.repo.GetOrganizationByUuid(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.ErrNotFound
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return &respond.OrganizationItem{Uuid: org.Uuid, Name: org.Name, Industry: org.Industry}, nil
}

func (s *organizationServiceImpl) ListOrganizations(callerRole string) ([]respond.OrganizationItem, error) {
	// 只有超级管理员可以跨租户枚举组织
	if callerRole != userEntity.RoleSuperAdmin {
		return nil, xerr.ErrForbidden
	}
	orgs, err := s.repo.ListOrganizations()
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	items := make([]respond.OrganizationItem, 0, len(orgs))
	for _, org := range orgs {
		items = append(items, respond.OrganizationItem{Uuid: org.Uuid, Name: org.Name, Industry: org.Industry})
	}
	return items, nil
}
