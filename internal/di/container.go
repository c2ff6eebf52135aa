package di

import (
	"context"
	"fmt"

	"github.com/GoArmGo/PhotoBase/internal/adapter/geocoding"
	"github.com/GoArmGo/PhotoBase/internal/adapter/storage/minio"
	"github.com/GoArmGo/PhotoBase/internal/app"
	"github.com/GoArmGo/PhotoBase/internal/config"
	"github.com/GoArmGo/PhotoBase/internal/database/client"
	"github.com/GoArmGo/PhotoBase/internal/database/postgres"
	"github.com/GoArmGo/PhotoBase/internal/database/storage"
	"github.com/GoArmGo/PhotoBase/internal/logger"
	"github.com/GoArmGo/PhotoBase/internal/rabbitmq"
	"github.com/GoArmGo/PhotoBase/internal/usecase"
	"github.com/go-playground/validator/v10"
)

// BuildApp инициализирует все зависимости и возвращает готовый объект App.
func BuildApp(ctx context.Context) (*app.App, error) {
	// 1. Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}

	slogger := logger.NewSlog(logger.SlogConfig{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})
	slogger.Info("logger initialized", "level", cfg.LogLevel, "format", cfg.LogFormat)

	var closers []func() error
	fail := func(err error) (*app.App, error) {
		for i := len(closers) - 1; i >= 0; i-- {
			_ = closers[i]()
		}
		return nil, err
	}

	// 2. Инициализация PostgreSQL клиента (sqlx + gorm поверх одного пула)
	dbClient, err := client.NewClient(cfg, logger.Component(slogger, "database"))
	if err != nil {
		return nil, err
	}
	closers = append(closers, dbClient.Close)

	// 3. Инициализация хранилищ
	storageLogger := logger.Component(slogger, "storage")
	locationStorage := storage.NewLocationStorage(dbClient.DB, storageLogger)
	searchStorage := storage.NewPhotoSearchStorage(dbClient.DB, storageLogger)
	metricStorage := storage.NewMetricStorage(dbClient.DB, storageLogger)
	userStorage := postgres.NewGormUserStorage(dbClient.Gorm, storageLogger)
	photographerStorage := postgres.NewGormPhotographerStorage(dbClient.Gorm, storageLogger)
	photoStorage := postgres.NewGormPhotoStorage(dbClient.Gorm, storageLogger)
	categoryStorage := postgres.NewGormCategoryStorage(dbClient.Gorm, storageLogger)

	// 4. Инициализация клиентов внешних сервисов
	geocoder, err := geocoding.NewGoogleMapsClient(cfg.GoogleMapsKey, logger.Component(slogger, "geocoding"))
	if err != nil {
		return fail(fmt.Errorf("init geocoding client: %w", err))
	}
	fileStorage, err := minio.NewMinioClient(ctx, cfg, logger.Component(slogger, "minio")) // S3 / MinIO адаптер
	if err != nil {
		return fail(fmt.Errorf("init object storage: %w", err))
	}

	// 5. Инициализация RabbitMQ клиента: публикует задачи сервер, потребляет воркер
	broker, err := rabbitmq.NewClient(cfg, logger.Component(slogger, "rabbitmq"))
	if err != nil {
		return fail(err)
	}
	closers = append(closers, func() error { broker.Close(); return nil })

	// 6. Инициализация бизнес-логики (usecases)
	usecaseLogger := logger.Component(slogger, "usecase")
	validate := validator.New()
	recorder := usecase.NewMetricsRecorder(metricStorage, usecaseLogger)
	resolver := usecase.NewLocationResolver(geocoder, broker, cfg.Search.UnknownCoordinate, usecaseLogger)

	searchUseCase := usecase.NewSearchUseCase(locationStorage, searchStorage, photographerStorage, photoStorage,
		categoryStorage, recorder, cfg.Search, usecaseLogger)
	accountUseCase := usecase.NewAccountUseCase(userStorage, categoryStorage, resolver, validate, usecaseLogger)
	portfolioUseCase := usecase.NewPortfolioUseCase(photographerStorage, photoStorage, categoryStorage, userStorage,
		metricStorage, fileStorage, locationStorage, resolver, validate, cfg.Search.TopPhotosCount, usecaseLogger)
	geocodeUseCase := usecase.NewGeocodeUseCase(locationStorage, geocoder, logger.Component(slogger, "worker"))

	// 7. Лимитер параллельных загрузок изображений
	uploadLimiter := make(chan struct{}, cfg.UploadConcurrency)

	// 8. Сборка итогового приложения
	application := app.NewApp(
		cfg,
		slogger,
		searchUseCase,
		accountUseCase,
		portfolioUseCase,
		geocodeUseCase,
		broker,
		uploadLimiter,
		closers...,
	)

	slogger.Info("all dependencies initialized")
	return application, nil
}
