package community

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ol7mi/Hows/internal/api/handlers"
	"github.com/ol7mi/Hows/internal/core/reactions"
)

// ReactionHandler handles like and bookmark toggles
type ReactionHandler struct {
	service reactions.Service
}

// NewReactionHandler creates a new reaction handler
func NewReactionHandler(service reactions.Service) *ReactionHandler {
	return &ReactionHandler{service: service}
}

type toggleRequest struct {
	MemberID string `json:"member_id"`
}

// HandleBoardLike toggles the member's like on a board
// POST /community/{board_seq}/like
//
// Response: { "isLiked": bool, "like_count": n }
func (h *ReactionHandler) HandleBoardLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "board_seq", reactions.SubjectBoard, reactions.KindLike, "isLiked", "like_count")
}

// HandleBoardBookmark toggles the member's bookmark on a board
// POST /community/{board_seq}/bookmark
//
// Response: { "isBookmarked": bool, "bookmark_count": n }
func (h *ReactionHandler) HandleBoardBookmark(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "board_seq", reactions.SubjectBoard, reactions.KindBookmark, "isBookmarked", "bookmark_count")
}

// HandleCommentLike toggles the member's like on a comment
// POST /community/comments/{comment_seq}/like
func (h *ReactionHandler) HandleCommentLike(w http.ResponseWriter, r *http.Request) {
	h.toggle(w, r, "comment_seq", reactions.SubjectComment, reactions.KindLike, "isLiked", "like_count")
}

func (h *ReactionHandler) toggle(
	w http.ResponseWriter,
	r *http.Request,
	param string,
	subjectKind reactions.SubjectKind,
	kind reactions.Kind,
	stateField, countField string,
) {
	seq, err := strconv.ParseInt(chi.URLParam(r, param), 10, 64)
	if err != nil || seq <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", param+" must be a positive number")
		return
	}

	var req toggleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}
	if req.MemberID == "" {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "member_id is required")
		return
	}

	result, err := h.service.Toggle(r.Context(), req.MemberID, reactions.Subject{Kind: subjectKind, Seq: seq}, kind)
	if err != nil {
		if reactions.IsValidationError(err) {
			handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
			return
		}
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to process reaction")
		return
	}

	handlers.WriteJSON(w, http.StatusOK, map[string]interface{}{
		stateField: result.Active,
		countField: result.Count,
	})
}
