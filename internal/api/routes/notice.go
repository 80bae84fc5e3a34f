package routes

import (
	"github.com/go-chi/chi/v5"

	noticeHandlers "github.com/ol7mi/Hows/internal/api/handlers/notice"
	"github.com/ol7mi/Hows/internal/core/notices"
)

// RegisterNoticeRoutes registers the admin notice board endpoints
func RegisterNoticeRoutes(r chi.Router, service notices.Service) {
	handler := noticeHandlers.NewHandler(service)

	r.Route("/notices", func(r chi.Router) {
		r.Get("/", handler.HandleList)
		r.Post("/", handler.HandleCreate)
		r.Get("/{notice_seq}", handler.HandleDetail)
		r.Put("/{notice_seq}", handler.HandleUpdate)
		r.Delete("/{notice_seq}", handler.HandleDelete)
	})
}
