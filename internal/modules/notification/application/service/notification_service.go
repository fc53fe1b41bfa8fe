package service

import (
	"context"
	"fmt"
	"time"

	"ComplyLink/internal/modules/notification/application/dto/request"
	"ComplyLink/internal/modules/notification/application/dto/respond"
	"ComplyLink/internal/modules/notification/domain/entity"
	"ComplyLink/internal/modules/notification/domain/repository"
	userEntity "ComplyLink/internal/modules/user/domain/entity"
	myredis "ComplyLink/pkg/redis"
	"ComplyLink/pkg/util"
	"ComplyLink/pkg/ws"
	"ComplyLink/pkg/xerr"
	"ComplyLink/pkg/zlog"
)

// CreatorSystem 系统内部创建者（到期扫描任务使用）
const CreatorSystem = "SYSTEM"

// NotificationService 接口定义 (Application Service)
// 创建通知时同步推送给在线用户，并维护 Redis 未读计数
type NotificationService interface {
	CreateNotification(organizationId string, creatorRole string, req request.CreateNotificationRequest) (*respond.NotificationItem, error)
	ListMyNotifications(organizationId string, userId string, limit int) ([]respond.NotificationItem, error)
	MarkRead(organizationId string, userId string, uuid string) error
	UnreadCount(organizationId string, userId string) (int64, error)
}

type notificationServiceImpl struct {
	repo repository.NotificationRepository
	hub  *ws.Hub
}

// NewNotificationService 构造函数
func NewNotificationService(repo repository.NotificationRepository, hub *ws.Hub) NotificationService {
	return &notificationServiceImpl{repo: repo, hub: hub}
}

func unreadKey(userId string) string {
	return fmt.Sprintf("notification:unread:%s", userId)
}

func toNotificationItem(n *entity.Notification) *respond.NotificationItem {
	return &respond.NotificationItem{
		Uuid:      n.Uuid,
		Title:     n.Title,
		Message:   n.Message,
		Type:      n.Type,
		UserId:    n.UserId,
		Metadata:  n.Metadata,
		Status:    n.Status,
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}

func (s *notificationServiceImpl) CreateNotification(organizationId string, creatorRole string, req request.CreateNotificationRequest) (*respond.NotificationItem, error) {
	if creatorRole != CreatorSystem && !userEntity.IsComplianceManager(creatorRole) {
		return nil, xerr.ErrForbidden
	}
	if req.Title == "" {
		return nil, xerr.ErrParam
	}
	notifType := req.Type
	if notifType == "" {
		notifType = entity.TypeSystem
	}
	if !entity.IsValidType(notifType) {
		return nil, xerr.New(xerr.BadRequest, "非法的通知类型")
	}

	notif := entity.Notification{
		Uuid:           util.GenerateUUID(),
		Title:          req.Title,
		Message:        req.Message,
		Type:           notifType,
		OrganizationId: organizationId,
		UserId:         req.UserId,
		Metadata:       req.Metadata,
		Status:         entity.StatusUnread,
		CreatedAt:      time.Now(),
	}
	if err := s.repo.CreateNotification(&notif); err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}

	item := toNotificationItem(&notif)

	// 定向通知：推送 + 未读计数；广播通知只落库，由客户端拉取
	if notif.UserId != nil && *notif.UserId != "" {
		if s.hub != nil {
			if err := s.hub.SendJSON(*notif.UserId, item); err != nil {
				zlog.Warn("notification push failed: " + err.Error())
			}
		}
		if myredis.IsConnected() {
			if _, err := myredis.Incr(context.Background(), unreadKey(*notif.UserId)); err != nil {
				zlog.Warn("unread counter incr failed: " + err.Error())
			}
		}
	}

	return item, nil
}

func (s *notificationServiceImpl) ListMyNotifications(organizationId string, userId string, limit int) ([]respond.NotificationItem, error) {
	notifs, err := s.repo.ListNotificationsForUser(organizationId, userId, limit)
	if err != nil {
		zlog.Error(err.Error())
		return nil, xerr.ErrServerError
	}
	items := make([]respond.NotificationItem, 0, len(notifs))
	for i := range notifs {
		items = append(items, *toNotificationItem(&notifs[i]))
	}
	return items, nil
}

func (s *notificationServiceImpl) MarkRead(organizationId string, userId string, uuid string) error {
	if uuid == "" {
		return xerr.ErrParam
	}
	if err := s.repo.MarkNotificationRead(uuid, userId); err != nil {
		zlog.Error(err.Error())
		return xerr.ErrServerError
	}
	// 已读后计数作废，下次查询回源数据库重建
	if myredis.IsConnected() {
		_ = myredis.Del(context.Background(), unreadKey(userId))
	}
	return nil
}

func (s *notificationServiceImpl) UnreadCount(organizationId string, userId string) (int64, error) {
	if myredis.IsConnected() {
		if count, err := myredis.GetInt(context.Background(), unreadKey(userId)); err == nil && count > 0 {
			return count, nil
		}
	}
	count, err := s.repo.CountUnreadForUser(organizationId, userId)
	if err != nil {
		zlog.Error(err.Error())
		return 0, xerr.ErrServerError
	}
	if myredis.IsConnected() && count > 0 {
		_ = myredis.Set(context.Background(), unreadKey(userId), count, 10*time.Minute)
	}
	return count, nil
}
