package community

import (
	"net/http"
	"strconv"

	"github.com/ol7mi/Hows/internal/api/handlers"
	"github.com/ol7mi/Hows/internal/core/comments"
)

// ModerationHandler handles the admin moderation queue
type ModerationHandler struct {
	service comments.Service
}

// NewModerationHandler creates a new moderation handler
func NewModerationHandler(service comments.Service) *ModerationHandler {
	return &ModerationHandler{service: service}
}

// HandleListReportedComments returns the reported-comment queue, oldest first
// GET /admin/reports/comments?page=1&size=20
func (h *ModerationHandler) HandleListReportedComments(w http.ResponseWriter, r *http.Request) {
	h.listReported(w, r, comments.TargetComment)
}

// HandleListReportedReplies returns the reported-reply queue, oldest first
// GET /admin/reports/replies?page=1&size=20
func (h *ModerationHandler) HandleListReportedReplies(w http.ResponseWriter, r *http.Request) {
	h.listReported(w, r, comments.TargetReply)
}

func (h *ModerationHandler) listReported(w http.ResponseWriter, r *http.Request, kind comments.TargetKind) {
	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	size, _ := strconv.Atoi(r.URL.Query().Get("size"))

	result, err := h.service.ListReported(r.Context(), kind, page, size)
	if err != nil {
		writeCommentError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, result)
}

// HandleCommentReports returns the report history of one comment
// GET /admin/reports/comments/{comment_seq}
func (h *ModerationHandler) HandleCommentReports(w http.ResponseWriter, r *http.Request) {
	h.reportsFor(w, r, "comment_seq", comments.TargetComment)
}

// HandleReplyReports returns the report history of one reply
// GET /admin/reports/replies/{reply_seq}
func (h *ModerationHandler) HandleReplyReports(w http.ResponseWriter, r *http.Request) {
	h.reportsFor(w, r, "reply_seq", comments.TargetReply)
}

func (h *ModerationHandler) reportsFor(w http.ResponseWriter, r *http.Request, param string, kind comments.TargetKind) {
	seq, ok := seqParam(w, r, param)
	if !ok {
		return
	}

	reports, err := h.service.ReportsFor(r.Context(), comments.Target{Kind: kind, Seq: seq})
	if err != nil {
		writeCommentError(w, err)
		return
	}

	handlers.WriteJSON(w, http.StatusOK, reports)
}

// HandleResolveComment clears all reports against a comment. Deleting the
// comment itself is a separate DELETE call; there is no implicit cascade.
// DELETE /admin/reports/comments/{comment_seq}
func (h *ModerationHandler) HandleResolveComment(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "comment_seq", comments.TargetComment)
}

// HandleResolveReply clears all reports against a reply
// DELETE /admin/reports/replies/{reply_seq}
func (h *ModerationHandler) HandleResolveReply(w http.ResponseWriter, r *http.Request) {
	h.resolve(w, r, "reply_seq", comments.TargetReply)
}

func (h *ModerationHandler) resolve(w http.ResponseWriter, r *http.Request, param string, kind comments.TargetKind) {
	seq, ok := seqParam(w, r, param)
	if !ok {
		return
	}

	if err := h.service.Resolve(r.Context(), comments.Target{Kind: kind, Seq: seq}); err != nil {
		writeCommentError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
