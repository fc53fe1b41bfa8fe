package handler

import (
	"ComplyLink/internal/modules/compliance/application/dto/respond"
	"ComplyLink/internal/modules/compliance/interface/scheduler"
	"ComplyLink/pkg/back"

	"github.com/gin-gonic/gin"
)

// JobHandler 到期扫描任务的运维入口（仅管理员路由组挂载）
type JobHandler struct {
	job *scheduler.ExpiryScanJob
}

func NewJobHandler(job *scheduler.ExpiryScanJob) *JobHandler {
	return &JobHandler{job: job}
}

// RunNow 手动触发一次扫描，已有扫描在执行时直接跳过
func (h *JobHandler) RunNow(c *gin.Context) {
	triggered := h.job.TriggerAsync()
	msg := "expiry scan triggered"
	if !triggered {
		msg = "expiry scan already running, skipped"
	}
	back.Result(c, respond.JobTriggerRespond{Triggered: triggered, Message: msg}, nil)
}

// GetStatus 查询任务状态
func (h *JobHandler) GetStatus(c *gin.Context) {
	back.Result(c, h.job.Status(), nil)
}

// GetLastSummary 查询最近一次扫描摘要
func (h *JobHandler) GetLastSummary(c *gin.Context) {
	back.Result(c, h.job.LastSummary(), nil)
}
