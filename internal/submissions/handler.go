package submissions

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"easyhire-backend/internal/shared/server/respond"
)

// Handler wires the submissions endpoints to the store.
type Handler struct {
	Store Store
}

// NewHandler constructs a Handler.
func NewHandler(store Store) *Handler {
	return &Handler{Store: store}
}

// RegisterRoutes attaches submission routes to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/submissions", h.list)
	rg.POST("/submissions", h.create)
}

func (h *Handler) list(c *gin.Context) {
	subs, err := h.Store.List(c.Request.Context())
	if err != nil {
		respond.JSON(c, http.StatusInternalServerError, gin.H{"success": false, "error": "failed to list submissions"})
		return
	}
	respond.OK(c, gin.H{"success": true, "data": subs})
}

func (h *Handler) create(c *gin.Context) {
	var sub Submission
	if err := c.ShouldBindJSON(&sub); err != nil {
		respond.JSON(c, http.StatusBadRequest, gin.H{"success": false, "error": "invalid request body"})
		return
	}
	if sub.SubmittedAt == "" {
		sub.SubmittedAt = time.Now().UTC().Format(time.RFC3339)
	}

	if err := h.Store.Add(c.Request.Context(), sub); err != nil {
		if errors.Is(err, ErrInvalidInput) {
			respond.JSON(c, http.StatusBadRequest, gin.H{"success": false, "error": "id is required"})
			return
		}
		respond.JSON(c, http.StatusInternalServerError, gin.H{"success": false, "error": "failed to store submission"})
		return
	}

	c.Set("submissionId", sub.ID)
	respond.OK(c, gin.H{"success": true})
}
