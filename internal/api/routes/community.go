package routes

import (
	"github.com/go-chi/chi/v5"

	communityHandlers "github.com/ol7mi/Hows/internal/api/handlers/community"
	"github.com/ol7mi/Hows/internal/core/comments"
	"github.com/ol7mi/Hows/internal/core/community"
	"github.com/ol7mi/Hows/internal/core/reactions"
)

// RegisterCommunityRoutes registers the community board endpoints on the router
func RegisterCommunityRoutes(
	r chi.Router,
	communityService community.Service,
	reactionService reactions.Service,
	commentService comments.Service,
) {
	writeHandler := communityHandlers.NewWriteHandler(communityService)
	boardHandler := communityHandlers.NewBoardHandler(communityService)
	reactionHandler := communityHandlers.NewReactionHandler(reactionService)
	commentHandler := communityHandlers.NewCommentHandler(commentService)

	r.Route("/community", func(r chi.Router) {
		r.Get("/", boardHandler.HandleList)
		r.Post("/write-with-images", writeHandler.HandleWriteWithImages)

		r.Route("/{board_seq}", func(r chi.Router) {
			r.Get("/", boardHandler.HandleDetail)
			r.Delete("/", boardHandler.HandleDelete)
			r.Get("/images", boardHandler.HandleMedia)
			r.Post("/like", reactionHandler.HandleBoardLike)
			r.Post("/bookmark", reactionHandler.HandleBoardBookmark)
			r.Post("/comments", commentHandler.HandleWriteComment)
			r.Get("/comments", commentHandler.HandleListComments)
		})

		r.Route("/comments/{comment_seq}", func(r chi.Router) {
			r.Delete("/", commentHandler.HandleDeleteComment)
			r.Post("/like", reactionHandler.HandleCommentLike)
			r.Post("/replies", commentHandler.HandleWriteReply)
			r.Get("/replies", commentHandler.HandleListReplies)
			r.Post("/report", commentHandler.HandleReportComment)
		})

		r.Route("/replies/{reply_seq}", func(r chi.Router) {
			r.Delete("/", commentHandler.HandleDeleteReply)
			r.Post("/report", commentHandler.HandleReportReply)
		})
	})
}

// RegisterModerationRoutes registers the admin moderation queue endpoints
func RegisterModerationRoutes(r chi.Router, commentService comments.Service) {
	moderationHandler := communityHandlers.NewModerationHandler(commentService)

	r.Route("/admin/reports", func(r chi.Router) {
		r.Get("/comments", moderationHandler.HandleListReportedComments)
		r.Get("/comments/{comment_seq}", moderationHandler.HandleCommentReports)
		r.Delete("/comments/{comment_seq}", moderationHandler.HandleResolveComment)
		r.Get("/replies", moderationHandler.HandleListReportedReplies)
		r.Get("/replies/{reply_seq}", moderationHandler.HandleReplyReports)
		r.Delete("/replies/{reply_seq}", moderationHandler.HandleResolveReply)
	})
}
