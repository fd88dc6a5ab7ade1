package handler

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/dto/request"
	"github.com/nishantgoyal/fashionhub-api/internal/presentation/http/dto/response"
	"github.com/nishantgoyal/fashionhub-api/pkg/imaging"
)

// ImageHandler issues signed upload parameters for direct-to-storage
// image uploads.
type ImageHandler struct {
	imaging *imaging.Service
}

// NewImageHandler creates a new image handler
func NewImageHandler(imagingSvc *imaging.Service) *ImageHandler {
	return &ImageHandler{imaging: imagingSvc}
}

// SignUpload validates the declared content type and returns signed
// upload parameters. The type check happens here, before any signature
// is issued, so an unsupported file never reaches the storage provider.
func (h *ImageHandler) SignUpload(c *gin.Context) {
	var req request.SignUploadRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	if req.ContentType != "" && !imaging.IsAllowedContentType(req.ContentType) {
		response.BadRequest(c, "Unsupported image type: "+req.ContentType)
		return
	}

	if h.imaging == nil {
		response.InternalServerError(c, "Image uploads are not configured")
		return
	}

	signature, err := h.imaging.SignUpload(time.Now())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Upload signature generated", signature)
}
