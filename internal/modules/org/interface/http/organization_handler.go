package handler

import (
	"ComplyLink/internal/modules/org/application/dto/request"
	"ComplyLink/internal/modules/org/application/service"
	"ComplyLink/pkg/back"
	"ComplyLink/pkg/xerr"
	"ComplyLink/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type OrganizationHandler struct {
	svc service.OrganizationService
}

func NewOrganizationHandler(svc service.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{svc: svc}
}

func (h *OrganizationHandler) CreateOrganization(c *gin.Context) {
	var req request.CreateOrganizationRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.CreateOrganization(req)
	back.Result(c, data, err)
}

func (h *OrganizationHandler) GetMyOrganization(c *gin.Context) {
	data, err := h.svc.GetOrganization(c.GetString("organizationId"))
	back.Result(c, data, err)
}

func (h *OrganizationHandler) ListOrganizations(c *gin.Context) {
	data, err := h.svc.ListOrganizations(c.GetString("role"))
	back.Result(c, data, err)
}
