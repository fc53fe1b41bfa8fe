package entity

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	// 通知类型
	TypeReminder = "REMINDER" // 到期提醒
	TypeAlert    = "ALERT"    // 紧急告警
	TypeSystem   = "SYSTEM"   // 系统通知

	// 通知状态
	StatusUnread = 0 // 未读
	StatusRead   = 1 // 已读
)

// IsValidType 通知类型校验
func IsValidType(t string) bool {
	switch t {
	case TypeReminder, TypeAlert, TypeSystem:
		return true
	default:
		return false
	}
}

// Notification 站内通知实体
// UserId 可空：为空表示组织内广播通知
type Notification struct {
	Id             int64             `gorm:"column:id;primaryKey;autoIncrement"`
	Uuid           string            `gorm:"column:uuid;type:char(36);uniqueIndex;not null"`
	Title          string            `gorm:"column:title;type:varchar(200);not null"`
	Message        string            `gorm:"column:message;type:text"`
	Type           string            `gorm:"column:type;type:varchar(20);not null"`
	OrganizationId string            `gorm:"column:organization_id;type:char(36);index;not null"`
	UserId         *string           `gorm:"column:user_id;type:char(36);index"`
	Metadata       datatypes.JSONMap `gorm:"column:metadata"`
	Status         int8              `gorm:"column:status;type:tinyint;not null;default:0"`
	ReadAt         *time.Time        `gorm:"column:read_at;type:datetime"`
	CreatedAt      time.Time         `gorm:"column:created_at;type:datetime;not null"`
	DeletedAt      gorm.DeletedAt    `gorm:"column:deleted_at;index"`
}

func (Notification) TableName() string {
	return "notification"
}
