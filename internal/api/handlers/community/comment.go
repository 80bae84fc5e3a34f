package community

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ol7mi/Hows/internal/api/handlers"
	"github.com/ol7mi/Hows/internal/core/comments"
)

// CommentHandler handles comments, replies and moderation reporting
type CommentHandler struct {
	service comments.Service
}

// NewCommentHandler creates a new comment handler
func NewCommentHandler(service comments.Service) *CommentHandler {
	return &CommentHandler{service: service}
}

type writeCommentRequest struct {
	MemberID string `json:"member_id"`
	Contents string `json:"contents"`
}

type reportRequest struct {
	MemberID   string `json:"member_id"`
	ReportCode string `json:"report_code"`
}

// HandleWriteComment creates a comment on a board
// POST /community/{board_seq}/comments
func (h *CommentHandler) HandleWriteComment(w http.ResponseWriter, r *http.Request) {
	boardSeq, ok := seqParam(w, r, "board_seq")
	if !ok {
		return
	}
	var req writeCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	seq, err := h.service.WriteComment(r.Context(), boardSeq, req.MemberID, req.Contents)
	if err != nil {
		writeCommentError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{"commentSeq": seq})
}

// HandleListComments returns a page of a board's comments with the total
// GET /community/{board_seq}/comments?page=1&size=20
func (h *CommentHandler) HandleListComments(w http.ResponseWriter, r *http.Request) {
	boardSeq, ok := seqParam(w, r, "board_seq")
	if !ok {
		return
	}
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	result, err := h.service.ListComments(r.Context(), boardSeq, page, size)
	if err != nil {
		writeCommentError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}

// HandleDeleteComment removes a comment
// DELETE /community/comments/{comment_seq}
func (h *CommentHandler) HandleDeleteComment(w http.ResponseWriter, r *http.Request) {
	seq, ok := seqParam(w, r, "comment_seq")
	if !ok {
		return
	}
	if err := h.service.DeleteComment(r.Context(), seq); err != nil {
		writeCommentError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleWriteReply creates a reply under a comment
// POST /community/comments/{comment_seq}/replies
func (h *CommentHandler) HandleWriteReply(w http.ResponseWriter, r *http.Request) {
	commentSeq, ok := seqParam(w, r, "comment_seq")
	if !ok {
		return
	}
	var req writeCommentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	seq, err := h.service.WriteReply(r.Context(), commentSeq, req.MemberID, req.Contents)
	if err != nil {
		writeCommentError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{"replySeq": seq})
}

// HandleListReplies returns a comment's replies
// GET /community/comments/{comment_seq}/replies
func (h *CommentHandler) HandleListReplies(w http.ResponseWriter, r *http.Request) {
	commentSeq, ok := seqParam(w, r, "comment_seq")
	if !ok {
		return
	}
	replies, err := h.service.ListReplies(r.Context(), commentSeq)
	if err != nil {
		writeCommentError(w, err)
		return
	}
	handlers.WriteJSON(w, http.StatusOK, replies)
}

// HandleDeleteReply removes a reply
// DELETE /community/replies/{reply_seq}
func (h *CommentHandler) HandleDeleteReply(w http.ResponseWriter, r *http.Request) {
	seq, ok := seqParam(w, r, "reply_seq")
	if !ok {
		return
	}
	if err := h.service.DeleteReply(r.Context(), seq); err != nil {
		writeCommentError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleReportComment reports a comment for moderation
// POST /community/comments/{comment_seq}/report
func (h *CommentHandler) HandleReportComment(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "comment_seq", comments.TargetComment)
}

// HandleReportReply reports a reply for moderation
// POST /community/replies/{reply_seq}/report
func (h *CommentHandler) HandleReportReply(w http.ResponseWriter, r *http.Request) {
	h.report(w, r, "reply_seq", comments.TargetReply)
}

func (h *CommentHandler) report(w http.ResponseWriter, r *http.Request, param string, kind comments.TargetKind) {
	seq, ok := seqParam(w, r, param)
	if !ok {
		return
	}
	var req reportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", "Invalid request body")
		return
	}

	reportSeq, err := h.service.Report(r.Context(), comments.Target{Kind: kind, Seq: seq}, req.ReportCode, req.MemberID)
	if err != nil {
		writeCommentError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusCreated, map[string]interface{}{"reportSeq": reportSeq})
}

func seqParam(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	seq, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || seq <= 0 {
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", name+" must be a positive number")
		return 0, false
	}
	return seq, true
}

func writeCommentError(w http.ResponseWriter, err error) {
	switch {
	case comments.IsValidationError(err):
		handlers.WriteError(w, http.StatusBadRequest, "InvalidRequest", err.Error())
	case comments.IsNotFound(err):
		handlers.WriteError(w, http.StatusNotFound, "NotFound", err.Error())
	default:
		handlers.WriteError(w, http.StatusInternalServerError, "InternalError", "Failed to process request")
	}
}
