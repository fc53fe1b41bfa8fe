package repository

import (
	"ComplyLink/internal/modules/user/domain/entity"
)

// UserInfoRepository 接口定义
type UserInfoRepository interface {
	CreateUserInfo(user *entity.UserInfo) error
	GetUserInfoByUsername(username string) (*entity.UserInfo, error)
	GetUserInfoByUuid(uuid string) (*entity.UserInfo, error)
	GetUserBriefByUuids(uuids []string) ([]entity.UserBrief, error)
	// GetActiveManagersByOrganization 查询组织内所有启用状态的合规管理角色用户
	GetActiveManagersByOrganization(organizationId string) ([]entity.UserBrief, error)
}
