package repository

import (
	"ComplyLink/internal/modules/notification/domain/entity"
)

// NotificationRepository 接口定义
type NotificationRepository interface {
	CreateNotification(notif *entity.Notification) error
	// ListNotificationsForUser 返回定向给该用户的通知 + 组织广播通知，按创建时间倒序
	ListNotificationsForUser(organizationId string, userId string, limit int) ([]entity.Notification, error)
	MarkNotificationRead(uuid string, userId string) error
	CountUnreadForUser(organizationId string, userId string) (int64, error)
}
