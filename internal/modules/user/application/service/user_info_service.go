package service

import (
	"errors"
	"time"

	orgRepository "ComplyLink/internal/modules/org/domain/repository"
	"ComplyLink/internal/modules/user/application/dto/request"
	"ComplyLink/internal/modules/user/application/dto/respond"
	"ComplyLink/internal/modules/user/domain/entity"
	"ComplyLink/internal/modules/user/domain/repository"
	"ComplyLink/pkg/util"
	"ComplyLink/pkg/util/myjwt"
	"ComplyLink/pkg/xerr"
	"ComplyLink/pkg/zlog"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserInfoService 接口定义 (Application Service)
type UserInfoService interface {
	Register(registerReq request.RegisterRequest) (*respond.RegisterRespond, error)
	Login(loginReq request.LoginRequest) (*respond.LoginRespond, error)
	GetUserInfo(uuid string) (*respond.UserInfoRespond, error)
}

type userInfoServiceImpl struct {
	repo    repository.UserInfoRepository
	orgRepo orgRepository.OrganizationRepository
}

// NewUserInfoService 构造函数
func NewUserInfoService(repo repository.UserInfoRepository, orgRepo orgRepository.OrganizationRepository) UserInfoService {
	return &userInfoServiceImpl{repo: repo, orgRepo: orgRepo}
}

func (u *userInfoServiceImpl) Register(registerReq request.RegisterRequest) (*respond.RegisterRespond, error) {
	if registerReq.Username == "" || registerReq.Password == "" || registerReq.OrganizationId == "" {
		return nil, xerr.ErrParam
	}
	role := registerReq.Role
	if role == "" {
		role = entity.RoleEmployee
	}
	if !entity.IsValidRole(role) {
		return nil, xerr.New(xerr.BadRequest, "非法的角色")
	}

	// 1. 校验组织存在
	_, err := u.orgRepo.GetOrganizationByUuid(registerReq.OrganizationId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.New(xerr.NotFound, "组织不存在")
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	// 2. 校验用户名唯一
	_, err = u.repo.GetUserInfoByUsername(registerReq.Username)
	if err == nil {
		return nil, xerr.New(xerr.BadRequest, "用户已存在")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	// 3. 密码哈希
	hashed, err := bcrypt.GenerateFromPassword([]byte(registerReq.Password), bcrypt.DefaultCost)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	newUser := entity.UserInfo{
		Uuid:           util.GenerateUUID(),
		Username:       registerReq.Username,
		Password:       string(hashed),
		FirstName:      registerReq.FirstName,
		LastName:       registerReq.LastName,
		Email:          registerReq.Email,
		Role:           role,
		OrganizationId: registerReq.OrganizationId,
		Status:         entity.UserStatusNormal,
		CreatedAt:      time.Now(),
	}
	if err := u.repo.CreateUserInfo(&newUser); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	return &respond.RegisterRespond{
		Uuid:           newUser.Uuid,
		Username:       newUser.Username,
		FirstName:      newUser.FirstName,
		LastName:       newUser.LastName,
		Email:          newUser.Email,
		Role:           newUser.Role,
		OrganizationId: newUser.OrganizationId,
	}, nil
}

func (u *userInfoServiceImpl) Login(loginReq request.LoginRequest) (*respond.LoginRespond, error) {
	if loginReq.Username == "" || loginReq.Password == "" {
		return nil, xerr.ErrParam
	}

	user, err := u.repo.GetUserInfoByUsername(loginReq.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.New(xerr.Unauthorized, "用户名或密码错误")
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	if user.Status != entity.UserStatusNormal {
		return nil, xerr.New(xerr.Forbidden, "账号已被禁用")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(loginReq.Password)); err != nil {
		return nil, xerr.New(xerr.Unauthorized, "用户名或密码错误")
	}

	token, err := myjwt.GenerateToken(user.Uuid, user.Username, user.Role, user.OrganizationId)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	return &respond.LoginRespond{
		Uuid:           user.Uuid,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Role:           user.Role,
		OrganizationId: user.OrganizationId,
		Token:          token,
	}, nil
}

func (u *userInfoServiceImpl) GetUserInfo(uuid string) (*respond.UserInfoRespond, error) {
	user, err := u.repo.GetUserInfoByUuid(uuid)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, xerr.ErrNotFound
		}
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	return &respond.UserInfoRespond{
		Uuid:           user.Uuid,
		Username:       user.Username,
		FirstName:      user.FirstName,
		LastName:       user.LastName,
		Email:          user.Email,
		Role:           user.Role,
		OrganizationId: user.OrganizationId,
		Status:         user.Status,
	}, nil
}
