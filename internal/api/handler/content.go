package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/moqawil/moqawil_server/internal/api/middleware"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/service"
)

// ContentHandler is the dashboard CRUD for projects, services, team
// members, works and the gallery.
type ContentHandler struct {
	contentSvc *service.ContentService
}

func NewContentHandler(contentSvc *service.ContentService) *ContentHandler {
	return &ContentHandler{contentSvc: contentSvc}
}

// Projects

func (h *ContentHandler) ListProjects(c *gin.Context) {
	items, err := h.contentSvc.ListProjects(middleware.GetCompany(c).ID)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, items)
}

func (h *ContentHandler) CreateProject(c *gin.Context) {
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	project, err := h.contentSvc.CreateProject(middleware.GetCompany(c), &req)
	if err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, project)
}

func (h *ContentHandler) UpdateProject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	project, err := h.contentSvc.UpdateProject(middleware.GetCompany(c).ID, id, &req)
	if err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, project)
}

func (h *ContentHandler) DeleteProject(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.contentSvc.DeleteProject(middleware.GetCompany(c).ID, id); err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, nil)
}

// Services

func (h *ContentHandler) ListServices(c *gin.Context) {
	items, err := h.contentSvc.ListServices(middleware.GetCompany(c).ID)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, items)
}

func (h *ContentHandler) CreateService(c *gin.Context) {
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	svc, err := h.contentSvc.CreateService(middleware.GetCompany(c), &req)
	if err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, svc)
}

func (h *ContentHandler) UpdateService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	svc, err := h.contentSvc.UpdateService(middleware.GetCompany(c).ID, id, &req)
	if err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, svc)
}

func (h *ContentHandler) DeleteService(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.contentSvc.DeleteService(middleware.GetCompany(c).ID, id); err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, nil)
}

// Team members

func (h *ContentHandler) ListTeamMembers(c *gin.Context) {
	items, err := h.contentSvc.ListTeamMembers(middleware.GetCompany(c).ID)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, items)
}

func (h *ContentHandler) CreateTeamMember(c *gin.Context) {
	var req dto.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	member, err := h.contentSvc.CreateTeamMember(middleware.GetCompany(c), &req)
	if err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, member)
}

func (h *ContentHandler) UpdateTeamMember(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.TeamMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	member, err := h.contentSvc.UpdateTeamMember(middleware.GetCompany(c).ID, id, &req)
	if err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, member)
}

func (h *ContentHandler) DeleteTeamMember(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.contentSvc.DeleteTeamMember(middleware.GetCompany(c).ID, id); err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, nil)
}

// Works

func (h *ContentHandler) ListWorks(c *gin.Context) {
	items, err := h.contentSvc.ListWorks(middleware.GetCompany(c).ID)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, items)
}

func (h *ContentHandler) CreateWork(c *gin.Context) {
	var req dto.WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	work, err := h.contentSvc.CreateWork(middleware.GetCompany(c), &req)
	if err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, work)
}

func (h *ContentHandler) UpdateWork(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	var req dto.WorkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	work, err := h.contentSvc.UpdateWork(middleware.GetCompany(c).ID, id, &req)
	if err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, work)
}

func (h *ContentHandler) DeleteWork(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.contentSvc.DeleteWork(middleware.GetCompany(c).ID, id); err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, nil)
}

// Gallery

func (h *ContentHandler) ListGallery(c *gin.Context) {
	items, err := h.contentSvc.ListGallery(middleware.GetCompany(c).ID)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, items)
}

func (h *ContentHandler) AddGalleryImage(c *gin.Context) {
	var req struct {
		ImageURL string `json:"image_url" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	img, err := h.contentSvc.AddGalleryImage(middleware.GetCompany(c).ID, req.ImageURL)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, img)
}

func (h *ContentHandler) DeleteGalleryImage(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.contentSvc.DeleteGalleryImage(middleware.GetCompany(c).ID, id); err != nil {
		writeContentError(c, err)
		return
	}
	response.Success(c, nil)
}

func writeContentError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrQuotaExceeded):
		response.QuotaError(c, "")
	case errors.Is(err, service.ErrInvalidEnum):
		response.ParamError(c, "")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.NotFoundError(c, "")
	default:
		response.ServerError(c, "")
	}
}

func paramID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.ParamError(c, "")
		return 0, false
	}
	return id, true
}
