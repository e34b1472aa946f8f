package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/timegrid/backend/internal/service"
)

// ListboardHandler serves the review queue listing.
type ListboardHandler struct {
	lb service.ListboardService
}

// NewListboardHandler creates a ListboardHandler.
func NewListboardHandler(lb service.ListboardService) *ListboardHandler {
	return &ListboardHandler{lb: lb}
}

// List handles GET /api/timesheets. The caller's role decides which sheets
// appear: employees see their own, supervisors the review statuses, HR the
// approval queue.
func (h *ListboardHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))

	res, err := h.lb.List(r.Context(), roleFromRequest(r), q.Get("employee_id"), q.Get("status"), page, perPage)
	if err != nil {
		if errors.Is(err, service.ErrForbidden) {
			writeError(w, http.StatusForbidden, "forbidden")
			return
		}
		slog.Error("listboard query failed", "error", err)
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	writeJSON(w, http.StatusOK, res)
}
