//	@title			Golden Paws API
//	@version		1.0
//	@description	Backend for the Golden Paws breeder site and its admin back office.
//
//	@host		localhost:8080
//	@BasePath	/api/v1
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT Bearer token. Format: **Bearer {token}**

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/goldenpaws/service/internal/auth"
	"github.com/goldenpaws/service/internal/config"
	"github.com/goldenpaws/service/internal/db"
	"github.com/goldenpaws/service/internal/media"
	appMiddleware "github.com/goldenpaws/service/internal/middleware"
	"github.com/goldenpaws/service/internal/parent"
	"github.com/goldenpaws/service/internal/puppy"
	"github.com/goldenpaws/service/internal/sitecontent"
	"github.com/goldenpaws/service/internal/storage"

	_ "github.com/goldenpaws/service/docs/swagger"
)

func main() {
	cfg := config.Load()

	pool, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}
	defer pool.Close()

	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		log.Fatalf("database migration failed: %v", err)
	}

	// Single storage client for the whole process, injected everywhere.
	store, err := storage.NewMinioStorage(
		cfg.StorageEndpoint,
		cfg.StorageAccessKey,
		cfg.StorageSecretKey,
		cfg.StorageBucket,
		cfg.StorageRegion,
		cfg.StorageUseSSL,
	)
	if err != nil {
		log.Fatalf("object storage init failed: %v", err)
	}

	pipeline := media.NewPipeline(store, media.DefaultTiers())
	resolver := media.NewResolver(store, cfg.SignedURLExpiry, cfg.SignedURLCacheTTL, cfg.SignedURLCacheMax)

	// Wire dependencies: repository → service → handler
	authRepo := auth.NewRepository(pool)
	authSvc := auth.NewService(authRepo, cfg)
	authHandler := auth.NewHandler(authSvc)

	if err := authSvc.EnsureAdmin(context.Background()); err != nil {
		log.Fatalf("admin bootstrap failed: %v", err)
	}

	parentRepo := parent.NewRepository(pool)
	parentSvc := parent.NewService(parentRepo, pipeline, resolver, store)
	parentHandler := parent.NewHandler(parentSvc)

	puppyRepo := puppy.NewRepository(pool)
	puppySvc := puppy.NewService(puppyRepo, pipeline, resolver, store)
	puppyHandler := puppy.NewHandler(puppySvc)

	siteRepo := sitecontent.NewRepository(pool)
	siteSvc := sitecontent.NewService(siteRepo, pipeline, resolver, store)
	siteHandler := sitecontent.NewHandler(siteSvc)

	// Router
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.RealIP)
	r.Use(appMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		MaxAge:         300,
	}))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	// Swagger UI, served at /swagger/
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// API v1
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/auth/login", authHandler.Login)

		// Public site endpoints
		r.Get("/home", siteHandler.Home)
		r.Get("/parents", parentHandler.List)
		r.Get("/parents/{id}", parentHandler.Get)
		r.Get("/puppies", puppyHandler.List)
		r.Get("/puppies/{id}", puppyHandler.Get)

		// Admin back office
		r.Route("/admin", func(r chi.Router) {
			r.Use(appMiddleware.RequireAuth(cfg.JWTSecret))

			r.Post("/parents", parentHandler.Create)
			r.Put("/parents/{id}", parentHandler.Update)
			r.Delete("/parents/{id}", parentHandler.Delete)

			r.Post("/puppies", puppyHandler.Create)
			r.Put("/puppies/{id}", puppyHandler.Update)
			r.Delete("/puppies/{id}", puppyHandler.Delete)

			r.Put("/hero", siteHandler.UpdateHero)
			r.Put("/about", siteHandler.UpdateAbout)
			r.Post("/gallery", siteHandler.AddGalleryImage)
			r.Delete("/gallery/{id}", siteHandler.DeleteGalleryImage)
			r.Get("/reviews", siteHandler.ListReviews)
			r.Post("/reviews", siteHandler.AddReview)
			r.Put("/reviews/{id}", siteHandler.UpdateReview)
			r.Delete("/reviews/{id}", siteHandler.DeleteReview)
			r.Put("/banner", siteHandler.UpdateBanner)
		})
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine; wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Printf("server listening on :%s (env=%s)", cfg.Port, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-quit
	log.Println("shutting down gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}

	log.Println("server stopped")
}
