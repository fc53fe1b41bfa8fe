package handler

import (
	"ComplyLink/internal/modules/document/application/dto/request"
	"ComplyLink/internal/modules/document/application/service"
	"ComplyLink/pkg/back"
	"ComplyLink/pkg/xerr"
	"ComplyLink/pkg/zlog"

	"github.com/gin-gonic/gin"
)

type DocumentHandler struct {
	svc service.DocumentService
}

func NewDocumentHandler(svc service.DocumentService) *DocumentHandler {
	return &DocumentHandler{svc: svc}
}

func (h *DocumentHandler) CreateDocument(c *gin.Context) {
	var req request.CreateDocumentRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.CreateDocument(c.GetString("organizationId"), c.GetString("role"), c.GetString("uuid"), req)
	back.Result(c, data, err)
}

func (h *DocumentHandler) UpdateDocument(c *gin.Context) {
	var req request.UpdateDocumentRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	err := h.svc.UpdateDocument(c.GetString("organizationId"), c.GetString("role"), req)
	back.Result(c, nil, err)
}

func (h *DocumentHandler) DeleteDocument(c *gin.Context) {
	var req request.DeleteDocumentRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	err := h.svc.DeleteDocument(c.GetString("organizationId"), c.GetString("role"), req.Uuid)
	back.Result(c, nil, err)
}

func (h *DocumentHandler) GetDocument(c *gin.Context) {
	data, err := h.svc.GetDocument(c.GetString("organizationId"), c.Param("documentId"))
	back.Result(c, data, err)
}

func (h *DocumentHandler) ListDocuments(c *gin.Context) {
	var req request.ListDocumentsRequest
	if err := c.BindJSON(&req); err != nil {
		zlog.Error(err.Error())
		back.Error(c, xerr.BadRequest, xerr.ErrParam.Message)
		return
	}
	data, err := h.svc.ListDocuments(c.GetString("organizationId"), c.GetString("role"), c.GetString("uuid"), req)
	back.Result(c, data, err)
}
