package main

import (
	"database/sql"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"github.com/ol7mi/Hows/internal/api/middleware"
	"github.com/ol7mi/Hows/internal/api/routes"
	"github.com/ol7mi/Hows/internal/config"
	"github.com/ol7mi/Hows/internal/core/comments"
	"github.com/ol7mi/Hows/internal/core/community"
	"github.com/ol7mi/Hows/internal/core/files"
	"github.com/ol7mi/Hows/internal/core/notices"
	"github.com/ol7mi/Hows/internal/core/reactions"
	postgresRepo "github.com/ol7mi/Hows/internal/db/postgres"
)

func main() {
	cfg := config.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database:", err)
	}

	logger.Info("connected to database")

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}
	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	logger.Info("migrations completed")

	// Repositories and services
	communityRepo := postgresRepo.NewCommunityRepository(db)
	reactionRepo := postgresRepo.NewReactionRepository(db)
	commentRepo := postgresRepo.NewCommentRepository(db)
	noticeRepo := postgresRepo.NewNoticeRepository(db)

	attachmentStore := files.NewDiskStore(cfg.UploadDir, cfg.UploadBaseURL, logger)

	communityService := community.NewCommunityService(communityRepo, attachmentStore, logger)
	reactionService := reactions.NewReactionService(reactionRepo, logger)
	commentService := comments.NewCommentService(commentRepo, logger)
	noticeService := notices.NewNoticeService(noticeRepo, logger)

	r := chi.NewRouter()
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)

	if cfg.RateLimitPerMinute > 0 {
		rateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute, 1*time.Minute)
		r.Use(rateLimiter.Middleware)
	}

	routes.RegisterCommunityRoutes(r, communityService, reactionService, commentService)
	routes.RegisterModerationRoutes(r, commentService)
	routes.RegisterNoticeRoutes(r, noticeService)

	// Stored attachment files are served straight off disk
	r.Handle(cfg.UploadBaseURL+"/*",
		http.StripPrefix(cfg.UploadBaseURL+"/", http.FileServer(http.Dir(cfg.UploadDir))))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	logger.Info("hows server starting", "addr", cfg.Addr)
	log.Fatal(http.ListenAndServe(cfg.Addr, r))
}
