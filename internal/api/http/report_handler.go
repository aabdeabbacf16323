package http

import (
	"net/http"
	"time"

	"rentman-backend/internal/service"
)

type ReportHandler struct {
	svc service.ReportService

	// now is replaceable in tests.
	now func() time.Time
}

func NewReportHandler(svc service.ReportService) *ReportHandler {
	return &ReportHandler{svc: svc, now: time.Now}
}

func (h *ReportHandler) Active(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.CurrentActive(r.Context(), h.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ReportHandler) Upcoming(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Upcoming(r.Context(), h.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ReportHandler) Overdue(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.Overdue(r.Context(), h.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ReportHandler) TodayPickups(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.PendingPickup(r.Context(), h.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ReportHandler) TodayReturns(w http.ResponseWriter, r *http.Request) {
	list, err := h.svc.PendingReturn(r.Context(), h.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, list)
}

func (h *ReportHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Statistics(r.Context(), h.now())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
