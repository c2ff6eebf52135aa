package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormUserStorage реализует интерфейс ports.UserStorage с использованием GORM
type GormUserStorage struct {
	db     *gorm.DB
	logger *slog.Logger
}

// NewGormUserStorage создает новый экземпляр GormUserStorage
func NewGormUserStorage(db *gorm.DB, logger *slog.Logger) *GormUserStorage {
	return &GormUserStorage{db: db, logger: logger}
}

// CreateAccount создает пользователя, фотографа и первый адрес атомарно.
// Адрес пишется сырым SQL, потому что точка хранится в PostGIS.
func (s *GormUserStorage) CreateAccount(ctx context.Context, user *domain.User, photographer *domain.Photographer, location *domain.Location) error {
	start := time.Now()
	now := time.Now()

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if photographer.ID == uuid.Nil {
		photographer.ID = uuid.New()
	}
	if photographer.Status == "" {
		photographer.Status = domain.StatusActive
	}
	photographer.UserID = user.ID

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var taken int64
		if err := tx.Model(&domain.User{}).Where("username = ?", user.Username).Count(&taken).Error; err != nil {
			return fmt.Errorf("check username: %w", err)
		}
		if taken > 0 {
			return domain.ErrUsernameTaken
		}

		if err := tx.Create(user).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return domain.ErrUsernameTaken
			}
			return fmt.Errorf("create user: %w", err)
		}

		if err := tx.Omit(clause.Associations).Create(photographer).Error; err != nil {
			return fmt.Errorf("create photographer: %w", err)
		}

		if len(photographer.Categories) > 0 {
			links := make([]domain.PhotographerCategory, 0, len(photographer.Categories))
			for _, c := range photographer.Categories {
				links = append(links, domain.PhotographerCategory{PhotographerID: photographer.ID, CategoryID: c.ID})
			}
			if err := tx.Create(&links).Error; err != nil {
				return fmt.Errorf("link photographer categories: %w", err)
			}
		}

		if location == nil {
			return nil
		}
		if location.ID == uuid.Nil {
			location.ID = uuid.New()
		}
		location.PhotographerID = photographer.ID
		location.Status = domain.StatusActive
		location.CreatedAt, location.UpdatedAt = now, now

		var point *string
		if location.Point != nil && location.Point.Valid() {
			ewkt := location.Point.EWKT()
			point = &ewkt
		}

		err := tx.Exec(`INSERT INTO locations (id, photographer_id, zip_code, country, state, city, street, point, status, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ST_GeogFromText(?), ?, ?, ?)`,
			location.ID, location.PhotographerID, location.ZipCode, location.Country, location.State,
			location.City, location.Street, point, location.Status, now, now,
		).Error
		if err != nil {
			return fmt.Errorf("create location: %w", err)
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to create account", "username", user.Username, "error", err)
		return err
	}

	s.logger.Info("account created",
		"user_id", user.ID,
		"photographer_id", photographer.ID,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetUserByUsername получает пользователя по логину
func (s *GormUserStorage) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).Take(&user).Error; err != nil {
		return nil, notFound(err, "get user by username")
	}
	return &user, nil
}

// GetUserByID получает пользователя по ID
func (s *GormUserStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("id = ?", id).Take(&user).Error; err != nil {
		return nil, notFound(err, "get user by id")
	}
	return &user, nil
}

// UpdateUser обновляет имя и почту пользователя
func (s *GormUserStorage) UpdateUser(ctx context.Context, user *domain.User) error {
	res := s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", user.ID).Updates(map[string]any{
		"email":      user.Email,
		"first_name": user.FirstName,
		"last_name":  user.LastName,
		"updated_at": time.Now(),
	})
	if res.Error != nil {
		s.logger.Error("failed to update user", "id", user.ID, "error", res.Error)
		return fmt.Errorf("update user: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// notFound переводит gorm.ErrRecordNotFound в доменную ошибку.
func notFound(err error, op string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
