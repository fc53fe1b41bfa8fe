package handler

import (
	"ComplyLink/internal/modules/org/application/dto/request"
	"ComplyLink/internal/modules/org/application/service"
	"ComplyLink/pkg/back"
	"ComplyLink/pkg/xerr"
	"ComplyLink/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type EmployeeHandler struct {
	svc service.EmployeeService
}

func NewEmployeeHandler(svc service.EmployeeService) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

func (h *EmployeeHandler) CreateEmployee(c *gin.Context) {
	var req request.CreateEmployeeRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.CreateEmployee(c.GetString("organizationId"), c.GetString("role"), req)
	back.Result(c, data, err)
}

func (h *EmployeeHandler) UpdateEmployee(c *gin.Context) {
	var req request.UpdateEmployeeRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	err := h.svc.UpdateEmployee(c.GetString("organizationId"), c.GetString("role"), req)
	back.Result(c, nil, err)
}

func (h *EmployeeHandler) DeleteEmployee(c *gin.Context) {
	var req request.DeleteEmployeeRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	err := h.svc.DeleteEmployee(c.GetString("organizationId"), c.GetString("role"), req.Uuid)
	back.Result(c, nil, err)
}

func (h *EmployeeHandler) GetEmployee(c *gin.Context) {
	data, err := h.svc.GetEmployee(
		c.GetString("organizationId"),
		c.GetString("role"),
		c.GetString("uuid"),
		c.Param("employeeId"),
	)
	back.Result(c, data, err)
}

func (h *EmployeeHandler) ListEmployees(c *gin.Context) {
	data, err := h.svc.ListEmployees(c.GetString("organizationId"), c.GetString("role"))
	back.Result(c, data, err)
}
