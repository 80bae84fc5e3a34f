package community

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ol7mi/Hows/internal/api/handlers"
	"github.com/ol7mi/Hows/internal/core/community"
)

// BoardHandler handles board read and delete endpoints
type BoardHandler struct {
	service community.Service
}

// NewBoardHandler creates a new board handler
func NewBoardHandler(service community.Service) *BoardHandler {
	return &BoardHandler{service: service}
}

// HandleList returns a feed page of boards with their image URLs
// GET /community?page=1&size=20
func (h *BoardHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	boards, err := h.service.ListBoards(r.Context(), page, size)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, boards)
}

// HandleDetail returns one board and bumps its view count
// GET /community/{board_seq}
func (h *BoardHandler) HandleDetail(w http.ResponseWriter, r *http.Request) {
	seq, ok := boardSeqParam(w, r)
	if !ok {
		return
	}

	if err := h.service.IncrementViewCount(r.Context(), seq); err != nil {
		writeServiceError(w, err)
		return
	}
	board, err := h.service.GetBoard(r.Context(), seq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, board)
}

// HandleMedia returns a board's images and tags
// GET /community/{board_seq}/images
func (h *BoardHandler) HandleMedia(w http.ResponseWriter, r *http.Request) {
	seq, ok := boardSeqParam(w, r)
	if !ok {
		return
	}

	media, err := h.service.GetBoardMedia(r.Context(), seq)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, media)
}

// HandleDelete removes a board with its images and tags
// DELETE /community/{board_seq}
func (h *BoardHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	seq, ok := boardSeqParam(w, r)
	if !ok {
		return
	}

	if err := h.service.DeleteBoard(r.Context(), seq); err != nil {
		writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func boardSeqParam(w http.ResponseWriter, r *http.Request) (int64, bool) {
	seq, err := strconv.ParseInt(chi.URLParam(r, "board_seq"), 10, 64)
	if err != nil || seq <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "board_seq must be a positive number")
		return 0, false
	}
	return seq, true
}
