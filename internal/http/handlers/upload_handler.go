package handlers

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// allowedImageExts lists the accepted upload extensions, lowercase.
var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

// UploadResponse reports where an uploaded image was published.
type UploadResponse struct {
	Filepath string `json:"filepath"`
	Uploaded bool   `json:"uploaded"`
}

// UploadImage godoc
// @ID          uploadImage
// @Summary     Upload a food image
// @Description Accepts a multipart form with an "image" file part (png, jpg or jpeg) and stores it under the static images directory.
// @Tags        Uploads
// @Accept      multipart/form-data
// @Produce     json
//
// @Param       image  formData  file  true  "Image file"
//
// @Success     201  {object} handlers.UploadResponse
// @Failure     400  {object} handlers.ErrorResponse "Missing file or unsupported extension"
// @Failure     413  {object} handlers.ErrorResponse "File too large"
// @Failure     500  {object} handlers.ErrorResponse "Write failed"
// @Router      /uploads [post]
func (h *Handlers) UploadImage(c *gin.Context) {
	fh, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "image file is required")
		return
	}

	if h.maxUploadBytes > 0 && fh.Size > h.maxUploadBytes {
		fail(c, http.StatusRequestEntityTooLarge, ErrCodeUploadFailed, "image exceeds the size limit")
		return
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "only png, jpg and jpeg images are accepted")
		return
	}

	// Server-generated name; the client filename is never trusted as a path.
	name := fmt.Sprintf("image_%d%s", time.Now().UnixNano(), ext)
	dst := filepath.Join(h.uploadDir, name)
	if err := c.SaveUploadedFile(fh, dst); err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeUploadFailed, "could not store image")
		return
	}

	ok(c, http.StatusCreated, UploadResponse{Filepath: "/images/" + name, Uploaded: true})
}
