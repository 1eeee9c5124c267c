package handler

import (
	"errors"
	"io"

	"github.com/gin-gonic/gin"

	"github.com/moqawil/moqawil_server/internal/api/middleware"
	"github.com/moqawil/moqawil_server/internal/model/dto"
	"github.com/moqawil/moqawil_server/internal/pkg/response"
	"github.com/moqawil/moqawil_server/internal/service"
)

// CompanyHandler covers the tenant-facing profile endpoints.
type CompanyHandler struct {
	companySvc *service.CompanyService
}

func NewCompanyHandler(companySvc *service.CompanyService) *CompanyHandler {
	return &CompanyHandler{companySvc: companySvc}
}

// GetProfile GET /api/v1/company/profile
func (h *CompanyHandler) GetProfile(c *gin.Context) {
	response.Success(c, middleware.GetCompany(c))
}

// UpdateProfile PUT /api/v1/company/profile
func (h *CompanyHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "")
		return
	}

	company, err := h.companySvc.UpdateProfile(middleware.GetCompany(c).ID, &req)
	if err != nil {
		response.ServerError(c, "")
		return
	}
	response.Success(c, company)
}

// UploadLogo POST /api/v1/company/logo
func (h *CompanyHandler) UploadLogo(c *gin.Context) {
	data, contentType, filename, ok := readUpload(c)
	if !ok {
		return
	}

	url, err := h.companySvc.UploadLogo(middleware.GetCompany(c), data, contentType, filename)
	if err != nil {
		if errors.Is(err, service.ErrBadImage) {
			response.ParamError(c, "الصورة غير صالحة أو حجمها كبير")
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{"url": url})
}

// UploadImage POST /api/v1/company/images
// Generic content image upload, ?folder picks the destination.
func (h *CompanyHandler) UploadImage(c *gin.Context) {
	folder := c.DefaultQuery("folder", "gallery")
	switch folder {
	case "projects", "works", "team", "gallery":
	default:
		response.ParamError(c, "")
		return
	}

	data, contentType, filename, ok := readUpload(c)
	if !ok {
		return
	}

	url, err := h.companySvc.UploadImage(middleware.GetCompany(c), folder, data, contentType, filename)
	if err != nil {
		if errors.Is(err, service.ErrBadImage) {
			response.ParamError(c, "الصورة غير صالحة أو حجمها كبير")
			return
		}
		response.ServerError(c, "")
		return
	}

	response.Success(c, gin.H{"url": url})
}

// readUpload pulls the multipart "file" field. Writes the error
// response itself when the form is malformed.
func readUpload(c *gin.Context) ([]byte, string, string, bool) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		response.ParamError(c, "")
		return nil, "", "", false
	}

	file, err := fileHeader.Open()
	if err != nil {
		response.ServerError(c, "")
		return nil, "", "", false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		response.ServerError(c, "")
		return nil, "", "", false
	}

	return data, fileHeader.Header.Get("Content-Type"), fileHeader.Filename, true
}
