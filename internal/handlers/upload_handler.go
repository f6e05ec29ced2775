package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vilis-app/carsrent-api/internal/httperr"
	"github.com/vilis-app/carsrent-api/internal/storage"
)

type UploadHandler struct {
	store *storage.ImageStore
}

func NewUploadHandler(store *storage.ImageStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// CarImage receives a multipart "image" file, re-encodes it through the
// image store and returns the public URL to use on a listing.
func (h *UploadHandler) CarImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		httperr.BadRequest(c, "missing_image", "An 'image' file field is required.")
		return
	}

	f, err := file.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_image", "Could not read the uploaded file.")
		return
	}
	defer f.Close()

	url, err := h.store.UploadCarImage(c.Request.Context(), f)
	if err != nil {
		if errors.Is(err, storage.ErrNotConfigured) {
			httperr.Internal(c, "uploads_disabled", "Image uploads are not configured on this server.")
			return
		}
		httperr.Respond(c, err, "failed_to_upload_image", "Could not upload the image.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
