package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/config"
	"github.com/GoArmGo/PhotoBase/internal/handler"
	"github.com/GoArmGo/PhotoBase/internal/metrics"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
)

// Router собирает все маршруты приложения.
func (a *App) Router() http.Handler {
	searchHandler := handler.NewSearchHandler(a.searchUseCase, a.logger)
	authHandler := handler.NewAuthHandler(a.accountUseCase, a.sessions, a.logger)
	settingsHandler := handler.NewSettingsHandler(a.portfolioUC, a.uploadLimiter, a.Config.MaxUploadSize, a.logger)

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(handler.RequestLogger(a.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(a.Config.RequestTimeout))
	r.Use(a.sessions.LoadUser)

	r.Get("/", searchHandler.Home)
	r.Post("/partial_photos/", searchHandler.PartialPhotos)
	r.Post("/photographers/", searchHandler.Photographers)
	r.Post("/partial_photographers/", searchHandler.PartialPhotographers)
	r.Get("/api/photos/", searchHandler.APIPhotos)

	r.Group(func(r chi.Router) {
		r.Use(httprate.LimitByIP(a.Config.AuthRateLimit, time.Minute))
		r.Post("/register/", authHandler.Register)
		r.Post("/login/", authHandler.Login)
	})
	r.Get("/logout/", authHandler.Logout)

	r.Route("/settings", func(r chi.Router) {
		r.Use(handler.RequireLogin(a.logger))
		r.Get("/personal", settingsHandler.Personal)
		r.Post("/personal", settingsHandler.UpdatePersonal)
		r.Post("/locations", settingsHandler.AddLocation)
		r.Get("/scoreboard", settingsHandler.Scoreboard)
		r.Get("/portfolio", settingsHandler.Portfolio)
		r.Get("/portfolio/category/{id}/{slug}", settingsHandler.CategoryDetail)
		r.Post("/portfolio/upload", settingsHandler.Upload)
		r.Post("/portfolio/edit/{id}", settingsHandler.EditPhoto)
		r.Post("/portfolio/delete/{id}", settingsHandler.DeletePhoto)
	})

	r.Handle("/metrics", metrics.Handler())
	return r
}

// runServer запускает HTTP сервер и останавливает его по отмене ctx
func runServer(ctx context.Context, cfg *config.Config, router http.Handler, logger *slog.Logger) error {
	serverAddr := fmt.Sprintf(":%s", cfg.ServerPort)
	server := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", "addr", serverAddr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutdown signal received, stopping http server")

	ctxServer, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxServer); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}

	logger.Info("http server stopped")
	return nil
}
