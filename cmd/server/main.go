package main

import (
	"context"
	"database/sql"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Peerpulse/internal/api/middleware"
	"Peerpulse/internal/api/routes"
	"Peerpulse/internal/config"
	"Peerpulse/internal/core/collegeFeeds"
	"Peerpulse/internal/core/comments"
	"Peerpulse/internal/core/likes"
	"Peerpulse/internal/core/messages"
	"Peerpulse/internal/core/posts"
	"Peerpulse/internal/core/users"
	"Peerpulse/internal/db/mongodb"
	postgresRepo "Peerpulse/internal/db/postgres"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger := newLogger(cfg)
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

	// Run migrations
	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatal("Failed to set goose dialect:", err)
	}

	if err := goose.Up(db, cfg.MigrationsDir); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	logger.Info("migrations completed", "dir", cfg.MigrationsDir)

	gormDB, err := postgresRepo.OpenGorm(db)
	if err != nil {
		log.Fatal("Failed to initialize gorm:", err)
	}

	// Initialize repositories and services
	userService := users.NewUserService(postgresRepo.NewUserRepository(gormDB))
	postService := posts.NewPostService(postgresRepo.NewPostRepository(db), logger)
	feedService := collegeFeeds.NewCollegeFeedService(postgresRepo.NewCollegeFeedRepository(db))
	likeService := likes.NewLikeService(postgresRepo.NewLikeRepository(db), postService, logger)
	commentService := comments.NewCommentService(postgresRepo.NewCommentRepository(db), postService, logger)

	authMiddleware := middleware.NewAuthMiddleware(cfg.JWTSecret, userService)

	r := chi.NewRouter()

	// Forwarding headers rewrite RemoteAddr only behind a trusted proxy
	if cfg.TrustProxy {
		r.Use(chiMiddleware.RealIP)
	}
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Per-address ceiling for everything, including unauthenticated traffic.
	// The per-user budget is applied inside each group after authentication.
	ipLimiter := middleware.NewRateLimiter(cfg.IPRateLimitRequests, cfg.RateLimitWindow)
	r.Use(ipLimiter.Middleware)

	guard := routes.Guard{
		Auth:        authMiddleware,
		UserLimiter: middleware.NewUserRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow),
	}

	routes.RegisterHealthRoutes(r, db)
	routes.RegisterPostRoutes(r, routes.PostServices{
		Posts:    postService,
		Feed:     feedService,
		Likes:    likeService,
		Comments: commentService,
	}, guard)
	routes.RegisterUserRoutes(r, userService, guard)

	if cfg.MessagesEnabled() {
		mongoClient, err := mongodb.Connect(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			log.Fatal("Failed to connect to MongoDB:", err)
		}
		defer func() {
			if err := mongoClient.Close(context.Background()); err != nil {
				logger.Warn("failed to close MongoDB client", "error", err)
			}
		}()

		messageService := messages.NewMessageService(mongodb.NewMessageRepository(mongoClient.Database), logger)
		routes.RegisterMessageRoutes(r, messageService, guard)
		logger.Info("message routes enabled", "database", cfg.MongoDatabase)
	} else {
		logger.Info("MONGO_URI not set, message routes disabled")
	}

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.Info("Peerpulse server starting", "port", cfg.Port, "env", cfg.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed:", err)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}

// newLogger emits JSON in production and text everywhere else
func newLogger(cfg *config.Config) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.LogLevel}
	if cfg.IsProduction() {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}
