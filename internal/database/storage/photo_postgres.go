package storage

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const photoColumns = `p.id, p.photographer_id, p.title, p.description, p.image_key, p.image_url, p.status, p.created_at, p.updated_at`

// categoryFilter сужает выборку до фото фотографов с категорией slug.
const categoryFilter = `
	  AND EXISTS (
		SELECT 1 FROM photographer_categories pc
		JOIN categories c ON c.id = pc.category_id
		WHERE pc.photographer_id = p.photographer_id AND c.slug = $%d
	  )`

// PhotoSearchStorage выбирает кандидатов для поиска фото напрямую через sqlx.
type PhotoSearchStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewPhotoSearchStorage(db *sqlx.DB, logger *slog.Logger) *PhotoSearchStorage {
	return &PhotoSearchStorage{db: db, logger: logger}
}

// ActivePhotosByPhotographers получает активные фото указанных фотографов в случайном порядке
func (s *PhotoSearchStorage) ActivePhotosByPhotographers(ctx context.Context, photographerIDs []uuid.UUID, categorySlug string) ([]domain.Photo, error) {
	if len(photographerIDs) == 0 {
		return []domain.Photo{}, nil
	}

	var b strings.Builder
	b.WriteString(`SELECT ` + photoColumns + ` FROM photos p
	WHERE p.status = 'active'
	  AND p.photographer_id = ANY($1::uuid[])`)
	args := []any{pq.Array(uuidStrings(photographerIDs))}
	if categorySlug != "" {
		args = append(args, categorySlug)
		fmt.Fprintf(&b, categoryFilter, len(args))
	}
	b.WriteString(`
	ORDER BY random()`)

	return s.selectPhotos(ctx, "photos_by_photographers", b.String(), args...)
}

// ActivePhotosWithLocatedPhotographer получает активные фото всех фотографов,
// у которых есть хотя бы один адрес с точкой, независимо от расстояния
func (s *PhotoSearchStorage) ActivePhotosWithLocatedPhotographer(ctx context.Context, categorySlug string) ([]domain.Photo, error) {
	var b strings.Builder
	b.WriteString(`SELECT ` + photoColumns + ` FROM photos p
	WHERE p.status = 'active'
	  AND EXISTS (
		SELECT 1 FROM locations l
		WHERE l.photographer_id = p.photographer_id AND l.point IS NOT NULL
	  )`)
	var args []any
	if categorySlug != "" {
		args = append(args, categorySlug)
		fmt.Fprintf(&b, categoryFilter, len(args))
	}
	b.WriteString(`
	ORDER BY random()`)

	return s.selectPhotos(ctx, "photos_with_located_photographer", b.String(), args...)
}

// RandomActivePhotos получает limit случайных активных фото для стартовой страницы
func (s *PhotoSearchStorage) RandomActivePhotos(ctx context.Context, limit int) ([]domain.Photo, error) {
	q := `SELECT ` + photoColumns + ` FROM photos p
	WHERE p.status = 'active'
	ORDER BY random()
	LIMIT $1`

	return s.selectPhotos(ctx, "random_photos", q, limit)
}

func (s *PhotoSearchStorage) selectPhotos(ctx context.Context, name, q string, args ...any) ([]domain.Photo, error) {
	start := time.Now()

	photos := []domain.Photo{}
	if err := s.db.SelectContext(ctx, &photos, q, args...); err != nil {
		s.logger.Error("failed to select photos", "query", name, "error", err)
		return nil, fmt.Errorf("select photos (%s): %w", name, err)
	}

	s.logger.Info("photos selected",
		"query", name,
		"found", len(photos),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return photos, nil
}
