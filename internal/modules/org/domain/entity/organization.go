package entity

import (
	"time"

	"gorm.io/gorm"
)

// Organization 租户组织实体
type Organization struct {
	Id        int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Uuid      string         `gorm:"column:uuid;type:char(36);uniqueIndex;not null"`
	Name      string         `gorm:"column:name;type:varchar(100);not null"`
	Industry  string         `gorm:"column:industry;type:varchar(50)"`
	CreatedAt time.Time      `gorm:"column:created_at;type:datetime;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;type:datetime"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Organization) TableName() string {
	return "organization"
}
