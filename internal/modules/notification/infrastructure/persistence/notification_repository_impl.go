package persistence

import (
	"time"

	"ComplyLink/internal/modules/notification/domain/entity"
	"ComplyLink/internal/modules/notification/domain/repository"

	"gorm.io/gorm"
)

type notificationRepositoryImpl struct {
	db *gorm.DB
}

func NewNotificationRepository(db *gorm.DB) repository.NotificationRepository {
	return &notificationRepositoryImpl{db: db}
}

func (r *notificationRepositoryImpl) CreateNotification(notif *entity.Notification) error {
	return r.db.Create(notif).Error
}

func (r *notificationRepositoryImpl) ListNotificationsForUser(organizationId string, userId string, limit int) ([]entity.Notification, error) {
	if limit <= 0 {
		limit = 50
	}
	var notifs []entity.Notification
	err := r.db.Where("organization_id = ? AND (user_id = ? OR user_id IS NULL)", organizationId, userId).
		Order("created_at DESC").
		Limit(limit).
		Find(&notifs).Error
	if err != nil {
		return nil, err
	}
	return notifs, nil
}

func (r *notificationRepositoryImpl) MarkNotificationRead(uuid string, userId string) error {
	now := time.Now()
	return r.db.Model(&entity.Notification{}).
		Where("uuid = ? AND user_id = ?", uuid, userId).
		Updates(map[string]interface{}{
			"status":  entity.StatusRead,
			"read_at": &now,
		}).Error
}

func (r *notificationRepositoryImpl) CountUnreadForUser(organizationId string, userId string) (int64, error) {
	var count int64
	err := r.db.Model(&entity.Notification{}).
		Where("organization_id = ? AND user_id = ? AND status = ?", organizationId, userId, entity.StatusUnread).
		Count(&count).Error
	return count, err
}
