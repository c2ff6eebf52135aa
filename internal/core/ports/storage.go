package ports

import (
	"context"
	"io"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/google/uuid"
)

// LocationStorage определяет методы работы с адресами фотографов (PostGIS)
type LocationStorage interface {
	// SaveLocation вставляет или обновляет адрес; точка пишется, только если она задана.
	SaveLocation(ctx context.Context, location *domain.Location) error
	GetLocationByID(ctx context.Context, id uuid.UUID) (*domain.Location, error)
	UpdateLocationPoint(ctx context.Context, id uuid.UUID, point domain.Point) error

	// LocationsWithin возвращает адреса в радиусе radiusKm, по возрастанию расстояния.
	LocationsWithin(ctx context.Context, origin domain.Point, radiusKm float64) ([]domain.Location, error)
	LocationsByPhotographers(ctx context.Context, photographerIDs []uuid.UUID) ([]domain.Location, error)
}

// SearchStorage определяет выборки кандидатов для поиска фото.
// Все выборки возвращают только активные фото в случайном порядке.
type SearchStorage interface {
	ActivePhotosByPhotographers(ctx context.Context, photographerIDs []uuid.UUID, categorySlug string) ([]domain.Photo, error)
	ActivePhotosWithLocatedPhotographer(ctx context.Context, categorySlug string) ([]domain.Photo, error)
	RandomActivePhotos(ctx context.Context, limit int) ([]domain.Photo, error)
}

// MetricStorage — журнал лайков и показов, только добавление.
type MetricStorage interface {
	AppendMetric(ctx context.Context, kind domain.MetricKind, event *domain.MetricEvent) error
	CountPhotographerMetrics(ctx context.Context, kind domain.MetricKind, photographerID uuid.UUID) (int64, error)
}

// PhotographerStorage определяет методы справочника фотографов
type PhotographerStorage interface {
	GetPhotographerByUserID(ctx context.Context, userID uuid.UUID) (*domain.Photographer, error)
	UpdatePhotographer(ctx context.Context, photographer *domain.Photographer) error
	PhotographersByPhotoIDs(ctx context.Context, photoIDs []uuid.UUID) ([]domain.Photographer, error)
	PhotographersByZipPrefix(ctx context.Context, zipPrefix string, photoIDs []uuid.UUID) ([]domain.Photographer, error)

	TopPhotos(ctx context.Context, photographerID uuid.UUID, limit int) ([]domain.RankedPhoto, error)
	CountActivePhotos(ctx context.Context, photographerID uuid.UUID) (int64, error)
	ActiveCategories(ctx context.Context, photographerID uuid.UUID) ([]domain.Category, error)
	CategoryPhotos(ctx context.Context, photographerID, categoryID uuid.UUID) ([]domain.Photo, error)
	RandomCategoryPhoto(ctx context.Context, photographerID, categoryID uuid.UUID) (*domain.Photo, error)
	CurrentSubscription(ctx context.Context, photographerID uuid.UUID, day time.Time) (*domain.Subscription, error)
}

// PhotoStorage определяет методы для работы с фото портфолио
type PhotoStorage interface {
	CreatePhoto(ctx context.Context, photo *domain.Photo) error
	GetActivePhoto(ctx context.Context, photographerID, photoID uuid.UUID) (*domain.Photo, error)
	UpdatePhoto(ctx context.Context, photo *domain.Photo) error
	SetPhotoStatus(ctx context.Context, photoID uuid.UUID, status domain.Status) error
	CountPhotos(ctx context.Context) (int64, error)
	ListPhotos(ctx context.Context, offset, limit int) ([]domain.Photo, error)
}

// CategoryStorage определяет методы для работы с категориями
type CategoryStorage interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
	// ResolveCategories превращает значения формы (id или имя) в категории,
	// создавая отсутствующие по имени.
	ResolveCategories(ctx context.Context, values []string) ([]domain.Category, error)
}

// UserStorage определяет методы для работы с учетными записями
type UserStorage interface {
	// CreateAccount создает пользователя, фотографа и его первый адрес в одной транзакции.
	CreateAccount(ctx context.Context, user *domain.User, photographer *domain.Photographer, location *domain.Location) error
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateUser(ctx context.Context, user *domain.User) error
}

// FileStorage определяет интерфейс для работы с файловым хранилищем (AWS S3, MinIO)
type FileStorage interface {
	// UploadFile загружает файл в хранилище и возвращает его публичный URL.
	UploadFile(ctx context.Context, key string, reader io.Reader, contentType string) (string, error)
	DeleteFile(ctx context.Context, key string) error
}
