package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormCategoryStorage хранит категории. Slug пересчитывается
// хуком domain.Category.BeforeSave при каждом сохранении.
type GormCategoryStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewGormCategoryStorage(db *gorm.DB, logger *slog.Logger) *GormCategoryStorage {
	return &GormCategoryStorage{db: db, logger: logger}
}

func (s *GormCategoryStorage) ListCategories(ctx context.Context) ([]domain.Category, error) {
	var out []domain.Category
	if err := s.db.WithContext(ctx).Order("name ASC").Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return out, nil
}

// SaveCategory создает или переименовывает категорию; slug следует за именем.
func (s *GormCategoryStorage) SaveCategory(ctx context.Context, category *domain.Category) error {
	if err := s.db.WithContext(ctx).Save(category).Error; err != nil {
		s.logger.Error("failed to save category", "name", category.Name, "error", err)
		return fmt.Errorf("save category: %w", err)
	}
	return nil
}

// ResolveCategories: значение, похожее на UUID существующей категории,
// берется как есть; иначе это имя, и категория ищется или создается.
func (s *GormCategoryStorage) ResolveCategories(ctx context.Context, values []string) ([]domain.Category, error) {
	out := make([]domain.Category, 0, len(values))
	seen := make(map[uuid.UUID]struct{}, len(values))

	for _, raw := range values {
		value := strings.TrimSpace(raw)
		if value == "" {
			continue
		}

		category, err := s.resolve(ctx, value)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[category.ID]; dup {
			continue
		}
		seen[category.ID] = struct{}{}
		out = append(out, *category)
	}
	return out, nil
}

func (s *GormCategoryStorage) resolve(ctx context.Context, value string) (*domain.Category, error) {
	db := s.db.WithContext(ctx)

	if id, err := uuid.Parse(value); err == nil {
		var c domain.Category
		err := db.Where("id = ?", id).Take(&c).Error
		if err == nil {
			return &c, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("get category by id: %w", err)
		}
	}

	var c domain.Category
	err := db.Where("name = ?", value).Take(&c).Error
	switch {
	case err == nil:
		return &c, nil
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, fmt.Errorf("get category by name: %w", err)
	}

	c = domain.Category{Name: value}
	if err := s.SaveCategory(ctx, &c); err != nil {
		return nil, err
	}
	s.logger.Info("category created", "name", c.Name, "slug", c.Slug)
	return &c, nil
}
