package persistence

import (
	"ComplyLink/internal/modules/user/domain/entity"
	"ComplyLink/internal/modules/user/domain/repository"

	"gorm.io/gorm"
)

type userInfoRepositoryImpl struct {
	db *gorm.DB
}

func NewUserInfoRepository(db *gorm.DB) repository.UserInfoRepository {
	return &userInfoRepositoryImpl{db: db}
}

func (r *userInfoRepositoryImpl) CreateUserInfo(user *entity.UserInfo) error {
	return r.db.Create(user).Error
}

func (r *userInfoRepositoryImpl) GetUserInfoByUsername(username string) (*entity.UserInfo, error) {
	var user entity.UserInfo
	err := r.db.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userInfoRepositoryImpl) GetUserInfoByUuid(uuid string) (*entity.UserInfo, error) {
	var user entity.UserInfo
	err := r.db.Where("uuid = ?", uuid).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userInfoRepositoryImpl) GetUserBriefByUuids(uuids []string) ([]entity.UserBrief, error) {
	if len(uuids) == 0 {
		return nil, nil
	}
	var briefs []entity.UserBrief
	err := r.db.Model(&entity.UserInfo{}).
		Select("uuid, username, first_name, email, role, status").
		Where("uuid IN ?", uuids).
		Find(&briefs).Error
	if err != nil {
		return nil, err
	}
	return briefs, nil
}

func (r *userInfoRepositoryImpl) GetActiveManagersByOrganization(organizationId string) ([]entity.UserBrief, error) {
	var briefs []entity.UserBrief
	err := r.db.Model(&entity.UserInfo{}).
		Select("uuid, username, first_name, email, role, status").
		Where("organization_id = ? AND status = ? AND role IN ?",
			organizationId, entity.UserStatusNormal,
			[]string{entity.RoleHR, entity.RoleAdmin, entity.RoleSuperAdmin}).
		Find(&briefs).Error
	if err != nil {
		return nil, err
	}
	return briefs, nil
}
