package entity

import (
	"time"

	"gorm.io/gorm"
)

// 文档类型
const (
	TypeContract      = "CONTRACT"
	TypeLicense       = "LICENSE"
	TypeCertification = "CERTIFICATION"
	TypePolicy        = "POLICY"
	TypeOther         = "OTHER"
)

// IsValidType 文档类型校验
func IsValidType(t string) bool {
	switch t {
	case TypeContract, TypeLicense, TypeCertification, TypePolicy, TypeOther:
		return true
	default:
		return false
	}
}

// Document 文档实体
// ExpiresAt 可空：无到期时间的文档永远视为合规（GREEN）
// EmployeeId 可空：未指派员工的文档属于组织级文档
type Document struct {
	Id             int64          `gorm:"column:id;primaryKey;autoIncrement"`
	Uuid           string         `gorm:"column:uuid;type:char(36);uniqueIndex;not null"`
	Title          string         `gorm:"column:title;type:varchar(200);not null"`
	Type           string         `gorm:"column:type;type:varchar(20);not null;default:OTHER"`
	FileName       string         `gorm:"column:file_name;type:varchar(255)"`
	ExpiresAt      *time.Time     `gorm:"column:expires_at;type:datetime;index"`
	EmployeeId     *string        `gorm:"column:employee_id;type:char(36);index"`
	OrganizationId string         `gorm:"column:organization_id;type:char(36);index;not null"`
	UploadedBy     string         `gorm:"column:uploaded_by;type:char(36)"`
	CreatedAt      time.Time      `gorm:"column:created_at;type:datetime;not null"`
	UpdatedAt      time.Time      `gorm:"column:updated_at;type:datetime"`
	DeletedAt      gorm.DeletedAt `gorm:"column:deleted_at;index"`
}

func (Document) TableName() string {
	return "document"
}
