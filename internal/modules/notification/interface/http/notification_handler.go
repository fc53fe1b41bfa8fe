package handler

import (
	"strconv"

	"ComplyLink/internal/modules/notification/application/dto/request"
	"ComplyLink/internal/modules/notification/application/dto/respond"
	"ComplyLink/internal/modules/notification/application/service"
	"ComplyLink/pkg/back"
	"ComplyLink/pkg/xerr"
	"ComplyLink/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	svc service.NotificationService
}

func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

func (h *NotificationHandler) CreateNotification(c *gin.Context) {
	var req request.CreateNotificationRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.CreateNotification(c.GetString("organizationId"), c.GetString("role"), req)
	back.Result(c, data, err)
}

func (h *NotificationHandler) ListMyNotifications(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
	data, err := h.svc.ListMyNotifications(c.GetString("organizationId"), c.GetString("uuid"), limit)
	back.Result(c, data, err)
}

func (h *NotificationHandler) MarkRead(c *gin.Context) {
	var req request.MarkReadRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	err := h.svc.MarkRead(c.GetString("organizationId"), c.GetString("uuid"), req.Uuid)
	back.Result(c, nil, err)
}

func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	count, err := h.svc.UnreadCount(c.GetString("organizationId"), c.GetString("uuid"))
	back.Result(c, respond.UnreadCountRespond{Count: count}, err)
}
