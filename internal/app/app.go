package app

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/GoArmGo/PhotoBase/internal/config"
	"github.com/GoArmGo/PhotoBase/internal/core/ports"
	"github.com/GoArmGo/PhotoBase/internal/handler"
	"github.com/GoArmGo/PhotoBase/internal/usecase"
)

// App — собранное приложение: http-сервер или воркер геокодирования.
type App struct {
	Config          *config.Config
	logger          *slog.Logger
	searchUseCase   usecase.SearchUseCase
	accountUseCase  usecase.AccountUseCase
	portfolioUC     usecase.PortfolioUseCase
	geocodeUseCase  usecase.GeocodeUseCase
	geocodeConsumer ports.GeocodeConsumer
	sessions        *handler.SessionManager
	uploadLimiter   chan struct{}
	closers         []func() error
}

func NewApp(
	cfg *config.Config,
	logger *slog.Logger,
	searchUseCase usecase.SearchUseCase,
	accountUseCase usecase.AccountUseCase,
	portfolioUseCase usecase.PortfolioUseCase,
	geocodeUseCase usecase.GeocodeUseCase,
	geocodeConsumer ports.GeocodeConsumer,
	uploadLimiter chan struct{},
	closers ...func() error,
) *App {
	return &App{
		Config:          cfg,
		logger:          logger,
		searchUseCase:   searchUseCase,
		accountUseCase:  accountUseCase,
		portfolioUC:     portfolioUseCase,
		geocodeUseCase:  geocodeUseCase,
		geocodeConsumer: geocodeConsumer,
		sessions:        handler.NewSessionManager(cfg.Session.Secret, cfg.Session.MaxAge, cfg.Session.Secure, logger),
		uploadLimiter:   uploadLimiter,
		closers:         closers,
	}
}

// LoggerIns возвращает основной логгер приложения.
func (a *App) LoggerIns() *slog.Logger {
	return a.logger
}

func (a *App) Run(ctx context.Context, mode string) error {
	// канал для graceful shutdown
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a.logger.Info("starting", "mode", mode)

	var err error
	switch mode {
	case "server":
		err = runServer(ctx, a.Config, a.Router(), a.logger)
	case "worker":
		err = runWorker(ctx, a.geocodeUseCase, a.geocodeConsumer, a.logger)
	default:
		err = fmt.Errorf("unknown mode %q (use 'server' or 'worker')", mode)
	}

	// аккуратно закрываем ресурсы
	if closeErr := a.Shutdown(); closeErr != nil {
		a.logger.Error("shutdown failed", "error", closeErr)
	}
	return err
}

// Shutdown закрывает все ресурсы приложения в обратном порядке
func (a *App) Shutdown() error {
	var firstErr error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	a.closers = nil
	return firstErr
}
