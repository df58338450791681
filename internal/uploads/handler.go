package uploads

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"easyhire-backend/internal/shared/server/respond"
)

// Handler wires the upload endpoint to the ingestion service.
type Handler struct {
	Svc *Service
	// DefaultMode selects sync or async scoring when the form does not say.
	DefaultMode string
}

// NewHandler constructs a Handler.
func NewHandler(svc *Service, defaultMode string) *Handler {
	return &Handler{Svc: svc, DefaultMode: defaultMode}
}

// RegisterRoutes attaches the upload route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/uploads", h.upload)
}

func (h *Handler) upload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, MaxUploadSize+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "file is required")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "unable to read file")
		return
	}
	defer file.Close()

	req := IngestRequest{
		FileName: fileHeader.Filename,
		MimeType: fileHeader.Header.Get("Content-Type"),
		Size:     fileHeader.Size,
		Body:     file,

		Keywords: c.PostForm("keywords"),

		Name:                   c.PostForm("name"),
		Email:                  c.PostForm("email"),
		Phone:                  c.PostForm("phone"),
		WhyJoin:                c.PostForm("why_join"),
		MessageToHiringManager: c.PostForm("message_to_hiring_manager"),
		IsNZCitizen:            parseFlag(c.PostForm("is_nz_citizen")),
		HasCriminalHistory:     parseFlag(c.PostForm("has_criminal_history")),
	}

	mode := strings.ToLower(strings.TrimSpace(c.PostForm("mode")))
	if mode == "" {
		mode = h.DefaultMode
	}

	var result IngestResult
	if mode == "async" {
		result, err = h.Svc.IngestAsync(c.Request.Context(), req)
	} else {
		result, err = h.Svc.Ingest(c.Request.Context(), req)
	}
	if err != nil {
		if errors.Is(err, ErrValidation) {
			respond.Error(c, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to store upload")
		return
	}

	c.Set("uploadFilename", result.Filename)
	c.Set("submissionId", result.SubmissionID)

	if result.Queued {
		respond.JSON(c, http.StatusAccepted, gin.H{
			"ok":            true,
			"filename":      result.Filename,
			"saved_to":      result.SavedTo,
			"submission_id": result.SubmissionID,
			"status":        "queued",
		})
		return
	}

	respond.OK(c, gin.H{
		"ok":        true,
		"filename":  result.Filename,
		"score":     result.Score,
		"saved_to":  result.SavedTo,
		"logged_to": result.LoggedTo,
	})
}

func parseFlag(raw string) bool {
	raw = strings.ToLower(strings.TrimSpace(raw))
	if raw == "" {
		return false
	}
	if val, err := strconv.ParseBool(raw); err == nil {
		return val
	}
	return raw == "yes" || raw == "on"
}
