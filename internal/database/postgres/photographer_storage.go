package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPhotographerStorage — справочник фотографов и агрегаты по их фото.
type GormPhotographerStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormPhotographerStorage(db *gorm.DB, logger *slog.Logger) *GormPhotographerStorage {
	return &GormPhotographerStorage{db: db, logger: logger}
}

// GetPhotographerByUserID получает профиль фотографа, привязанный к учетной записи
func (s *GormPhotographerStorage) GetPhotographerByUserID(ctx context.Context, userID uuid.UUID) (*domain.Photographer, error) {
	var p domain.Photographer
	err := s.db.WithContext(ctx).
		Preload("User").
		Where("user_id = ? AND status <> ?", userID, domain.StatusDeleted).
		Take(&p).Error
	if err != nil {
		return nil, notFound(err, "get photographer by user id")
	}
	return &p, nil
}

// UpdatePhotographer сохраняет поля профиля, связи не трогает
func (s *GormPhotographerStorage) UpdatePhotographer(ctx context.Context, p *domain.Photographer) error {
	p.UpdatedAt = time.Now()
	if err := s.db.WithContext(ctx).Omit(clause.Associations, "created_at").Save(p).Error; err != nil {
		s.logger.Error("failed to update photographer", "id", p.ID, "error", err)
		return fmt.Errorf("update photographer: %w", err)
	}
	return nil
}

// PhotographersByPhotoIDs — различные активные владельцы указанных фото
func (s *GormPhotographerStorage) PhotographersByPhotoIDs(ctx context.Context, photoIDs []uuid.UUID) ([]domain.Photographer, error) {
	if len(photoIDs) == 0 {
		return []domain.Photographer{}, nil
	}

	start := time.Now()
	db := s.db.WithContext(ctx)
	owners := db.Model(&domain.Photo{}).Select("photographer_id").Where("id IN ?", photoIDs)

	var out []domain.Photographer
	err := db.Preload("User").
		Where("status = ? AND id IN (?)", domain.StatusActive, owners).
		Order("created_at ASC").
		Find(&out).Error
	if err != nil {
		s.logger.Error("failed to select photographers by photos", "count", len(photoIDs), "error", err)
		return nil, fmt.Errorf("select photographers by photos: %w", err)
	}

	s.logger.Info("photographers by photos selected",
		"photos", len(photoIDs),
		"found", len(out),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return out, nil
}

// PhotographersByZipPrefix — фотографы с адресом, чей индекс начинается с префикса.
// Непустой photoIDs сужает выборку до владельцев этих фото.
func (s *GormPhotographerStorage) PhotographersByZipPrefix(ctx context.Context, zipPrefix string, photoIDs []uuid.UUID) ([]domain.Photographer, error) {
	db := s.db.WithContext(ctx)
	located := db.Table("locations").
		Select("photographer_id").
		Where("zip_code LIKE ? AND status = ?", escapeLike(zipPrefix)+"%", domain.StatusActive)

	q := db.Preload("User").Where("status = ? AND id IN (?)", domain.StatusActive, located)
	if len(photoIDs) > 0 {
		q = q.Where("id IN (?)", db.Model(&domain.Photo{}).Select("photographer_id").Where("id IN ?", photoIDs))
	}

	var out []domain.Photographer
	if err := q.Order("created_at ASC").Find(&out).Error; err != nil {
		s.logger.Error("failed to select photographers by zip", "zip", zipPrefix, "error", err)
		return nil, fmt.Errorf("select photographers by zip: %w", err)
	}
	return out, nil
}

// TopPhotos — активные фото фотографа по убыванию лайков
func (s *GormPhotographerStorage) TopPhotos(ctx context.Context, photographerID uuid.UUID, limit int) ([]domain.RankedPhoto, error) {
	var out []domain.RankedPhoto
	err := s.db.WithContext(ctx).
		Table("photos AS p").
		Select("p.*, COUNT(l.id) AS like_count").
		Joins("LEFT JOIN likes l ON l.photo_id = p.id").
		Where("p.photographer_id = ? AND p.status = ?", photographerID, domain.StatusActive).
		Group("p.id").
		Order("like_count DESC, p.created_at ASC, p.updated_at ASC").
		Limit(limit).
		Scan(&out).Error
	if err != nil {
		s.logger.Error("failed to select top photos", "photographer_id", photographerID, "error", err)
		return nil, fmt.Errorf("select top photos: %w", err)
	}
	return out, nil
}

// CountActivePhotos считает активные фото фотографа
func (s *GormPhotographerStorage) CountActivePhotos(ctx context.Context, photographerID uuid.UUID) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Photo{}).
		Where("photographer_id = ? AND status = ?", photographerID, domain.StatusActive).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count active photos: %w", err)
	}
	return count, nil
}

// ActiveCategories — различные категории, в которых у фотографа есть активное фото
func (s *GormPhotographerStorage) ActiveCategories(ctx context.Context, photographerID uuid.UUID) ([]domain.Category, error) {
	db := s.db.WithContext(ctx)
	used := db.Table("photo_categories AS pc").
		Select("pc.category_id").
		Joins("JOIN photos p ON p.id = pc.photo_id").
		Where("p.photographer_id = ? AND p.status = ?", photographerID, domain.StatusActive)

	var out []domain.Category
	if err := db.Where("id IN (?)", used).Order("name ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("select active categories: %w", err)
	}
	return out, nil
}

func (s *GormPhotographerStorage) categoryPhotos(ctx context.Context, photographerID, categoryID uuid.UUID) *gorm.DB {
	return s.db.WithContext(ctx).
		Joins("JOIN photo_categories pc ON pc.photo_id = photos.id").
		Where("photos.photographer_id = ? AND photos.status = ? AND pc.category_id = ?",
			photographerID, domain.StatusActive, categoryID)
}

// CategoryPhotos — активные фото фотографа в категории
func (s *GormPhotographerStorage) CategoryPhotos(ctx context.Context, photographerID, categoryID uuid.UUID) ([]domain.Photo, error) {
	var out []domain.Photo
	err := s.categoryPhotos(ctx, photographerID, categoryID).
		Order("photos.created_at DESC").
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("select category photos: %w", err)
	}
	return out, nil
}

// RandomCategoryPhoto — случайное активное фото фотографа в категории
func (s *GormPhotographerStorage) RandomCategoryPhoto(ctx context.Context, photographerID, categoryID uuid.UUID) (*domain.Photo, error) {
	var photo domain.Photo
	err := s.categoryPhotos(ctx, photographerID, categoryID).
		Order("random()").
		Take(&photo).Error
	if err != nil {
		return nil, notFound(err, "select random category photo")
	}
	return &photo, nil
}

// CurrentSubscription ищет среди неотключенных подписок фотографа ту,
// период которой покрывает day.
func (s *GormPhotographerStorage) CurrentSubscription(ctx context.Context, photographerID uuid.UUID, day time.Time) (*domain.Subscription, error) {
	var subs []domain.PhotographerSubscription
	err := s.db.WithContext(ctx).
		Preload("Subscription").
		Where("photographer_id = ? AND disabled = ?", photographerID, false).
		Order("start DESC").
		Find(&subs).Error
	if err != nil {
		return nil, fmt.Errorf("select subscriptions: %w", err)
	}

	for _, ps := range subs {
		if ps.IsCurrent(day) && ps.Subscription != nil {
			return ps.Subscription, nil
		}
	}
	return nil, domain.ErrNotFound
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
