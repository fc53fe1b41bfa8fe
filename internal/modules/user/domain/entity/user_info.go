package entity

import (
	"time"

	"gorm.io/gorm"
)

// 用户状态
const (
	UserStatusNormal   = 0 // 正常
	UserStatusDisabled = 1 // 禁用
)

// UserInfo 用户账号实体，租户内唯一归属一个组织
type UserInfo struct {
	Id             int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Uuid           string         `gorm:"column:uuid;type:char(36);uniqueIndex;not null"`
	Username       string         `gorm:"column:username;type:varchar(50);uniqueIndex;not null"`
	Password       string         `gorm:"column:password;type:varchar(100);not null"`
	FirstName      string         `gorm:"column:first_name;type:varchar(50)"`
	LastName       string         `gorm:"column:last_name;type:varchar(50)"`
	Email          string         `gorm:"column:email;type:varchar(100);index"`
	Role           string         `gorm:"column:role;type:varchar(20);not null;default:EMPLOYEE"`
	OrganizationId string         `gorm:"column:organization_id;type:char(36);index;not null"`
	Status         int8           `gorm:"column:status;type:tinyint;not null;default:0"`
	CreatedAt      time.Time      `gorm:"column:created_at;type:datetime;not null"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;type:datetime"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (UserInfo) TableName() string {
	return "user_info"
}

// UserBrief 精简用户信息（通知分发使用）
type UserBrief struct {
	Uuid      string `gorm:"column:uuid"`
	Username  string `gorm:"column:username"`
	FirstName string `gorm:"column:first_name"`
	Email     string `gorm:"column:email"`
	Role      string `gorm:"column:role"`
	Status    int8   `gorm:"column:status"`
}
