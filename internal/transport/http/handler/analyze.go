package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"foodsnap/internal/app"
	"foodsnap/internal/transport/http/response"
)

// AnalyzeHandler handles food photo uploads.
type AnalyzeHandler struct {
	service   *app.AnalysisService
	formField string
}

func NewAnalyzeHandler(service *app.AnalysisService, formField string) *AnalyzeHandler {
	if formField == "" {
		formField = "image"
	}
	return &AnalyzeHandler{service: service, formField: formField}
}

// Analyze accepts a multipart form with the image under the configured
// field and responds with the category, recipe, portions and a data URI.
func (h *AnalyzeHandler) Analyze(c *gin.Context) {
	file, err := c.FormFile(h.formField)
	if err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			response.Error(c, http.StatusRequestEntityTooLarge, response.MsgTooLarge)
		case errors.Is(err, http.ErrMissingFile) && h.sentWithoutFilename(c):
			h.reject(c, app.ErrEmptyFilename)
		default:
			h.reject(c, app.ErrMissingUpload)
		}
		return
	}

	f, err := file.Open()
	if err != nil {
		h.reject(c, app.ErrDecodeFailure)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		h.reject(c, app.ErrDecodeFailure)
		return
	}

	result, err := h.service.Analyze(c.Request.Context(), app.AnalysisInput{
		Filename: file.Filename,
		Data:     data,
	})
	if err != nil {
		switch {
		case errors.Is(err, app.ErrEmptyFilename):
			response.Error(c, http.StatusBadRequest, app.ErrEmptyFilename.Error())
		case errors.Is(err, app.ErrUnsupportedFormat):
			response.Error(c, http.StatusBadRequest, app.ErrUnsupportedFormat.Error())
		case errors.Is(err, app.ErrDecodeFailure):
			response.Error(c, http.StatusBadRequest, app.ErrDecodeFailure.Error())
		default:
			zerolog.Ctx(c.Request.Context()).Error().Err(err).Msg("analyze failed")
			response.Error(c, http.StatusInternalServerError, response.MsgInternalServer)
		}
		return
	}

	response.OK(c, result)
}

// sentWithoutFilename reports whether the field arrived as a plain form
// value, which is what browsers send when no file was picked.
func (h *AnalyzeHandler) sentWithoutFilename(c *gin.Context) bool {
	form := c.Request.MultipartForm
	if form == nil {
		return false
	}
	_, ok := form.Value[h.formField]
	return ok
}

func (h *AnalyzeHandler) reject(c *gin.Context, err error) {
	h.service.Reject(err)
	response.Error(c, http.StatusBadRequest, err.Error())
}
