package summary

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"easyhire-backend/internal/scorelog"
	"easyhire-backend/internal/shared/server/respond"
	"easyhire-backend/internal/submissions"
)

// Handler serves the aggregated dashboard summary.
type Handler struct {
	Store submissions.Store
	Log   *scorelog.Log
}

// NewHandler constructs a Handler.
func NewHandler(store submissions.Store, log *scorelog.Log) *Handler {
	return &Handler{Store: store, Log: log}
}

// RegisterRoutes attaches the summary route to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/summary", h.get)
}

// get recomputes the summary from the current submission snapshot and the
// score log. Search/sort/pagination query params shape only the items list;
// counters and top5 always cover the full de-duplicated set.
func (h *Handler) get(c *gin.Context) {
	subs, err := h.Store.List(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to list submissions")
		return
	}
	entries, err := h.Log.Read()
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "storage_error", "failed to read score log")
		return
	}

	result := Compute(subs, entries)

	view := viewFromQuery(c)
	if view != (View{}) {
		result.Items = view.Apply(result.Items)
	}

	respond.OK(c, result)
}

func viewFromQuery(c *gin.Context) View {
	view := View{
		Query: c.Query("q"),
		Sort:  c.Query("sort"),
		Order: c.Query("order"),
	}
	if raw := c.Query("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil {
			view.Page = page
		}
	}
	return view
}
