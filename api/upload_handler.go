package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/rpupo63/corporate-site-backend/errs"
	"github.com/rpupo63/corporate-site-backend/services"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// multipart framing on top of the image itself
const uploadOverhead = 1 << 20

type uploadHandler struct {
	responder Responder
	logger    zerolog.Logger
	images    *services.ImageStorage
}

func newUploadHandler(images *services.ImageStorage) uploadHandler {
	logger := log.With().Str("handlerName", "uploadHandler").Logger()

	return uploadHandler{
		responder: NewResponder(logger),
		logger:    logger,
		images:    images,
	}
}

// uploadImage stores an image for use as a featured image
// @Summary Upload image
// @Description Accepts a multipart "file" field holding a JPEG, PNG, GIF or WebP image of at most 5 MiB.
// @Tags Uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image"
// @Success 200 {object} UploadResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 413 {object} ErrorResponse
// @Failure 415 {object} ErrorResponse
// @Router /api/upload [post]
func (h uploadHandler) uploadImage() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, services.MaxImageSize+uploadOverhead)
		if err := r.ParseMultipartForm(services.MaxImageSize + uploadOverhead); err != nil {
			var maxBytesErr *http.MaxBytesError
			if errors.As(err, &maxBytesErr) {
				h.responder.WriteError(w, errs.NewMaxBodySizeExceededError(services.MaxImageSize))
				return
			}
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}
		defer r.MultipartForm.RemoveAll()

		file, header, err := r.FormFile("file")
		if err != nil {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("file"))
			return
		}
		defer file.Close()

		data, err := io.ReadAll(io.LimitReader(file, services.MaxImageSize+1))
		if err != nil {
			h.responder.WriteError(w, errs.NewMalformedPayloadError("multipart", err))
			return
		}

		contentType := header.Header.Get("Content-Type")
		if contentType == "" || contentType == "application/octet-stream" {
			contentType = http.DetectContentType(data)
		}

		stored, err := h.images.Store(r.Context(), header.Filename, contentType, data)
		if err != nil {
			h.responder.WriteError(w, err)
			return
		}

		h.responder.WriteJSON(w, UploadResponse{
			URL:     stored.URL,
			Storage: stored.Storage,
			Message: "Image uploaded successfully",
		})
	}
}
