package handler

import (
	"time"

	"ComplyLink/internal/modules/compliance/application/service"
	"ComplyLink/pkg/back"

	"github.com/gin-gonic/gin"
)

// DashboardHandler 合规看板
// now 在入口处取一次，往下全部显式传递
type DashboardHandler struct {
	svc service.ComplianceService
}

func NewDashboardHandler(svc service.ComplianceService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

func (h *DashboardHandler) GetOrganizationCompliance(c *gin.Context) {
	data, err := h.svc.OrganizationCompliance(c.GetString("organizationId"), c.GetString("role"), time.Now())
	back.Result(c, data, err)
}

func (h *DashboardHandler) GetEmployeeCompliance(c *gin.Context) {
	data, err := h.svc.EmployeeCompliance(
		c.GetString("organizationId"),
		c.GetString("role"),
		c.GetString("uuid"),
		c.Param("employeeId"),
		time.Now(),
	)
	back.Result(c, data, err)
}

func (h *DashboardHandler) GetComplianceByType(c *gin.Context) {
	data, err := h.svc.ComplianceByType(c.GetString("organizationId"), c.GetString("role"), time.Now())
	back.Result(c, data, err)
}

func (h *DashboardHandler) GetCriticalIssues(c *gin.Context) {
	data, err := h.svc.CriticalIssues(
		c.GetString("organizationId"),
		c.GetString("role"),
		c.GetString("uuid"),
		time.Now(),
	)
	back.Result(c, data, err)
}

func (h *DashboardHandler) GetMetrics(c *gin.Context) {
	data, err := h.svc.Metrics(
		c.GetString("organizationId"),
		c.GetString("role"),
		c.GetString("uuid"),
		time.Now(),
	)
	back.Result(c, data, err)
}
