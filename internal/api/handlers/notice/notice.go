package notice

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ol7mi/Hows/internal/api/handlers"
	"github.com/ol7mi/Hows/internal/core/notices"
)

// Handler handles the admin notice board
type Handler struct {
	service notices.Service
}

// NewHandler creates a new notice handler
func NewHandler(service notices.Service) *Handler {
	return &Handler{service: service}
}

type noticeRequest struct {
	Title    string `json:"title"`
	Contents string `json:"contents"`
	MemberID string `json:"member_id"`
}

// HandleCreate creates a notice
// POST /notices
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req noticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	seq, err := h.service.Create(r.Context(), req.Title, req.Contents, req.MemberID)
	if err != nil {
		writeNoticeError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{"noticeSeq": seq})
}

// HandleList returns a page of notices, newest first
// GET /notices?page=1&size=20
func (h *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	list, total, err := h.service.List(r.Context(), page, size)
	if err != nil {
		writeNoticeError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		"notices": list,
		"total":   total,
	})
}

// HandleDetail returns one notice and bumps its view count
// GET /notices/{notice_seq}
func (h *Handler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	seq, ok := noticeSeqParam(w, r)
	if !ok {
		return
	}

	n, err := h.service.Get(r.Context(), seq, true)
	if err != nil {
		writeNoticeError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, n)
}

// HandleUpdate modifies a notice
// PUT /notices/{notice_seq}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	seq, ok := noticeSeqParam(w, r)
	if !ok {
		return
	}
	var req noticeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	if err := h.service.Update(r.Context(), seq, req.Title, req.Contents); err != nil {
		writeNoticeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// HandleDelete removes a notice
// DELETE /notices/{notice_seq}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	seq, ok := noticeSeqParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), seq); err != nil {
		writeNoticeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func noticeSeqParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	seq, err := strconv.ParseInt(chi.URLParam(r, "notice_seq"), 10, 64)
	if err != nil || seq <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "notice_seq must be a positive number")
		return 0, false
	}
	return seq, true
}

func writeNoticeError(w http.ResponseWriter, err error) {
	switch {
	case notices.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case errors.Is(err, notices.ErrNoticeNotFound):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", "Notice not found")
	default:
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to process request")
	}
}
