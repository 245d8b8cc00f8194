package main

import (
	"context"
	"fmt"
	"net/http"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/vedran77/feedline/internal/auth"
	"github.com/vedran77/feedline/internal/config"
	"github.com/vedran77/feedline/internal/database"
	"github.com/vedran77/feedline/internal/event"
	postgresrepo "github.com/vedran77/feedline/internal/repository/postgres"
	"github.com/vedran77/feedline/internal/service"
	"github.com/vedran77/feedline/internal/storage"
	"github.com/vedran77/feedline/internal/transport/http/handlers"
	"github.com/vedran77/feedline/internal/transport/http/middleware"
	"github.com/vedran77/feedline/internal/transport/ws"
)

func main() {
	log := logrus.New()
	log.Formatter = &logrus.JSONFormatter{}

	cfg := config.Load()

	// Database
	pool, err := database.Connect(cfg)
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()
	log.Info("Connected to database")

	guard := database.NewGuard("content-store", cfg.StoreTimeout, log)

	// Redis (notification bus)
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisURL})
	bus := event.NewRedisBus(rdb, log)

	// Image storage
	images, err := storage.NewDiskStore(cfg.ImageDir, log)
	if err != nil {
		log.Fatal(err)
	}

	// Repositories
	userRepo := postgresrepo.NewUserRepo(pool, guard)
	postRepo := postgresrepo.NewPostRepo(pool, guard)

	// Auth
	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// Services
	authService := service.NewAuthService(userRepo, issuer)
	postService := service.NewPostService(postRepo, userRepo, bus, images, log)

	// WebSocket hub + bus bridge
	hub := ws.NewHub(log)
	go hub.Run()
	ws.Bridge(context.Background(), hub, bus)

	// Handlers
	authHandler := handlers.NewAuthHandler(authService, log)
	postHandler := handlers.NewPostHandler(postService, log)
	imageHandler := handlers.NewImageHandler(images, log)

	// Auth context resolver - attaches the result, never rejects
	resolve := middleware.Auth(issuer)

	// Routes
	mux := http.NewServeMux()

	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status": "ok"}`))
	})

	// Public
	mux.HandleFunc("POST /api/v1/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/v1/auth/login", authHandler.Login)

	// Owner-checked (auth enforced in the services, not here)
	mux.Handle("GET /api/v1/me", resolve(http.HandlerFunc(authHandler.Me)))
	mux.Handle("PATCH /api/v1/me/status", resolve(http.HandlerFunc(authHandler.UpdateStatus)))

	mux.Handle("POST /api/v1/posts", resolve(http.HandlerFunc(postHandler.Create)))
	mux.Handle("GET /api/v1/posts", resolve(http.HandlerFunc(postHandler.List)))
	mux.Handle("GET /api/v1/posts/{id}", resolve(http.HandlerFunc(postHandler.Get)))
	mux.Handle("PUT /api/v1/posts/{id}", resolve(http.HandlerFunc(postHandler.Update)))
	mux.Handle("DELETE /api/v1/posts/{id}", resolve(http.HandlerFunc(postHandler.Delete)))

	mux.Handle("PUT /api/v1/post-image", resolve(http.HandlerFunc(imageHandler.Upload)))

	// Uploaded images served statically
	mux.Handle("GET /images/", http.StripPrefix("/images/", http.FileServer(http.Dir(cfg.ImageDir))))

	// Real-time feed
	mux.HandleFunc("GET /ws", ws.ServeWS(hub, issuer))

	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	log.Infof("Starting server on %s", addr)
	log.Fatal(http.ListenAndServe(addr, middleware.CORS(mux)))
}
