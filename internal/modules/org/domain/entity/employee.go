package entity

import (
	"time"

	"gorm.io/gorm"
)

// Employee 员工实体，合规主体
// UserId 可空：未开通登录账号的员工同样参与合规统计
type Employee struct {
	Id             int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Uuid           string         `gorm:"column:uuid;type:char(36);uniqueIndex;not null"`
	FirstName      string         `gorm:"column:first_name;type:varchar(50);not null"`
	LastName       string         `gorm:"column:last_name;type:varchar(50);not null"`
	Email          string         `gorm:"column:email;type:varchar(100)"`
	Position       string         `gorm:"column:position;type:varchar(50)"`
	OrganizationId string         `gorm:"column:organization_id;type:char(36);index;not null"`
	UserId         *string        `gorm:"column:user_id;type:char(36);index"`
	CreatedAt      time.Time      `gorm:"column:created_at;type:datetime;not null"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;type:datetime"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Employee) TableName() string {
	return "employee"
}

// FullName 展示用姓名
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}
