package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormPhotoStorage хранит фото портфолио и их категории
type GormPhotoStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormPhotoStorage(db *gorm.DB, logger *slog.Logger) *GormPhotoStorage {
	return &GormPhotoStorage{db: db, logger: logger}
}

// CreatePhoto сохраняет фото и его связи с категориями в одной транзакции
func (s *GormPhotoStorage) CreatePhoto(ctx context.Context, photo *domain.Photo) error {
	start := time.Now()
	if photo.ID == uuid.Nil {
		photo.ID = uuid.New()
	}
	if photo.Status == "" {
		photo.Status = domain.StatusActive
	}

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(photo).Error; err != nil {
			return fmt.Errorf("create photo: %w", err)
		}
		return linkCategories(tx, photo)
	})
	if err != nil {
		s.logger.Error("failed to create photo", "photographer_id", photo.PhotographerID, "error", err)
		return err
	}

	s.logger.Info("photo created",
		"id", photo.ID,
		"photographer_id", photo.PhotographerID,
		"categories", len(photo.Categories),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetActivePhoto получает активное фото, только если оно принадлежит фотографу
func (s *GormPhotoStorage) GetActivePhoto(ctx context.Context, photographerID, photoID uuid.UUID) (*domain.Photo, error) {
	var photo domain.Photo
	err := s.db.WithContext(ctx).
		Preload("Categories").
		Where("id = ? AND photographer_id = ? AND status = ?", photoID, photographerID, domain.StatusActive).
		Take(&photo).Error
	if err != nil {
		return nil, notFound(err, "get active photo")
	}
	return &photo, nil
}

// UpdatePhoto обновляет текст фото и заменяет набор категорий
func (s *GormPhotoStorage) UpdatePhoto(ctx context.Context, photo *domain.Photo) error {
	photo.UpdatedAt = time.Now()

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&domain.Photo{}).Where("id = ?", photo.ID).Updates(map[string]any{
			"title":       photo.Title,
			"description": photo.Description,
			"updated_at":  photo.UpdatedAt,
		})
		if res.Error != nil {
			return fmt.Errorf("update photo: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return domain.ErrNotFound
		}

		if err := tx.Where("photo_id = ?", photo.ID).Delete(&domain.PhotoCategory{}).Error; err != nil {
			return fmt.Errorf("unlink photo categories: %w", err)
		}
		return linkCategories(tx, photo)
	})
	if err != nil {
		s.logger.Error("failed to update photo", "id", photo.ID, "error", err)
		return err
	}
	return nil
}

func linkCategories(tx *gorm.DB, photo *domain.Photo) error {
	if len(photo.Categories) == 0 {
		return nil
	}
	links := make([]domain.PhotoCategory, 0, len(photo.Categories))
	for _, c := range photo.Categories {
		links = append(links, domain.PhotoCategory{PhotoID: photo.ID, CategoryID: c.ID})
	}
	if err := tx.Create(&links).Error; err != nil {
		return fmt.Errorf("link photo categories: %w", err)
	}
	return nil
}

// SetPhotoStatus меняет статус фото; удаление — это статус deleted
func (s *GormPhotoStorage) SetPhotoStatus(ctx context.Context, photoID uuid.UUID, status domain.Status) error {
	if !status.Valid() {
		return fmt.Errorf("set photo status: unknown status %q", status)
	}

	res := s.db.WithContext(ctx).Model(&domain.Photo{}).Where("id = ?", photoID).Updates(map[string]any{
		"status":     status,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		s.logger.Error("failed to set photo status", "id", photoID, "status", status, "error", res.Error)
		return fmt.Errorf("set photo status: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}

	s.logger.Info("photo status changed", "id", photoID, "status", status)
	return nil
}

// CountPhotos считает все активные фото
func (s *GormPhotoStorage) CountPhotos(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.WithContext(ctx).Model(&domain.Photo{}).
		Where("status = ?", domain.StatusActive).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("count photos: %w", err)
	}
	return count, nil
}

// ListPhotos отдает страницу активных фото, новые первыми
func (s *GormPhotoStorage) ListPhotos(ctx context.Context, offset, limit int) ([]domain.Photo, error) {
	var out []domain.Photo
	err := s.db.WithContext(ctx).
		Where("status = ?", domain.StatusActive).
		Order("created_at DESC, id ASC").
		Offset(offset).
		Limit(limit).
		Find(&out).Error
	if err != nil {
		return nil, fmt.Errorf("list photos: %w", err)
	}
	return out, nil
}
