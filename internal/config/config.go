package config

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

// Config хранит все конфигурационные параметры приложения.
type Config struct {
	DatabaseURL    string        `env:"DATABASE_URL,required"`
	MigrationsPath string        `env:"MIGRATIONS_PATH" envDefault:"file://internal/database/postgres/migrations"`
	ServerPort     string        `env:"SERVER_PORT" envDefault:"8080"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"30s"`
	LogLevel       string        `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat      string        `env:"LOG_FORMAT" envDefault:"json"`

	// Геокодер (Google Maps Geocoding API)
	GoogleMapsKey string `env:"GOOGLE_MAPS_KEY,required"`

	// Настройки для MinIO
	MinioEndpoint        string `env:"MINIO_ENDPOINT,required"`
	MinioAccessKeyID     string `env:"MINIO_ACCESS_KEY_ID,required"`
	MinioSecretAccessKey string `env:"MINIO_SECRET_ACCESS_KEY,required"`
	MinioUseSSL          bool   `env:"MINIO_USE_SSL"`
	MinioBucketName      string `env:"MINIO_BUCKET_NAME,required"`
	MinioRegion          string `env:"MINIO_REGION,required"`
	MinioPublicURL       string `env:"MINIO_PUBLIC_URL" envDefault:"http://localhost:9000"`

	RabbitMQ struct {
		RabbitMQURL       string `env:"RABBITMQ_URL,required"`
		RabbitMQQueueName string `env:"RABBITMQ_QUEUE_NAME" envDefault:"geocode_location_queue"`
	}

	Session struct {
		Secret string `env:"SESSION_SECRET,required"`
		MaxAge int    `env:"SESSION_MAX_AGE" envDefault:"2592000"`
		Secure bool   `env:"SESSION_SECURE"`
	}

	// Лимит запросов на вход/регистрацию с одного IP в минуту
	AuthRateLimit int `env:"AUTH_RATE_LIMIT" envDefault:"20"`

	// Загрузка изображений: максимальный размер тела и число параллельных загрузок
	MaxUploadSize     int64 `env:"MAX_UPLOAD_SIZE" envDefault:"10485760"`
	UploadConcurrency int   `env:"UPLOAD_CONCURRENCY" envDefault:"5"`

	Search SearchConfig
}

// SearchConfig — параметры поиска и выдачи фото.
type SearchConfig struct {
	PhotosPerBatch    int     `env:"PHOTOS_PER_BATCH" envDefault:"12"`
	TopPhotosCount    int     `env:"TOP_PHOTOS_COUNT" envDefault:"3"`
	DefaultRange      int     `env:"SEARCH_DEFAULT_RANGE" envDefault:"50"`
	DefaultCategory   string  `env:"SEARCH_DEFAULT_CATEGORY" envDefault:"any"`
	DefaultName       string  `env:"SEARCH_DEFAULT_NAME" envDefault:"Berlin"`
	UnknownCoordinate string  `env:"INCORRECT_LOCATION_PLACEHOLDER" envDefault:"unknown"`
	LocationScale     float64 `env:"LOCATION_SCALE" envDefault:"100"`
}

// LoadConfig загружает конфигурацию из переменных окружения.
// В режиме разработки пытается загрузить .env файл.
func LoadConfig() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("load .env file: %w", err)
		}
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse config from environment: %w", err)
	}

	if cfg.Search.PhotosPerBatch <= 0 {
		return nil, fmt.Errorf("PHOTOS_PER_BATCH must be positive, got %d", cfg.Search.PhotosPerBatch)
	}
	if cfg.Search.TopPhotosCount <= 0 {
		return nil, fmt.Errorf("TOP_PHOTOS_COUNT must be positive, got %d", cfg.Search.TopPhotosCount)
	}

	if cfg.UploadConcurrency <= 0 {
		return nil, fmt.Errorf("UPLOAD_CONCURRENCY must be positive, got %d", cfg.UploadConcurrency)
	}

	return &cfg, nil
}
