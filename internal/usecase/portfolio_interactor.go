package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path"
	"strings"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/core/ports"
	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

type portfolioUseCase struct {
	photographers ports.PhotographerStorage
	photos        ports.PhotoStorage
	categories    ports.CategoryStorage
	users         ports.UserStorage
	metrics       ports.MetricStorage
	files         ports.FileStorage
	locations     ports.LocationStorage
	resolver      LocationResolver
	validate      *validator.Validate
	topPhotos     int
	logger        *slog.Logger
}

// NewPortfolioUseCase создает новый экземпляр PortfolioUseCase
func NewPortfolioUseCase(
	photographers ports.PhotographerStorage,
	photos ports.PhotoStorage,
	categories ports.CategoryStorage,
	users ports.UserStorage,
	metrics ports.MetricStorage,
	files ports.FileStorage,
	locations ports.LocationStorage,
	resolver LocationResolver,
	validate *validator.Validate,
	topPhotos int,
	logger *slog.Logger,
) PortfolioUseCase {
	return &portfolioUseCase{
		photographers: photographers,
		photos:        photos,
		categories:    categories,
		users:         users,
		metrics:       metrics,
		files:         files,
		locations:     locations,
		resolver:      resolver,
		validate:      validate,
		topPhotos:     topPhotos,
		logger:        logger,
	}
}

// owner — профиль фотографа текущего пользователя. Учетная запись без
// профиля в панель не допускается.
func (uc *portfolioUseCase) owner(ctx context.Context, userID uuid.UUID) (*domain.Photographer, error) {
	p, err := uc.photographers.GetPhotographerByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrForbidden
		}
		return nil, fmt.Errorf("usecase: get photographer: %w", err)
	}
	return p, nil
}

func (uc *portfolioUseCase) Personal(ctx context.Context, userID uuid.UUID) (*domain.Photographer, error) {
	return uc.owner(ctx, userID)
}

func (uc *portfolioUseCase) UpdatePersonal(ctx context.Context, userID uuid.UUID, in PersonalInput) (*domain.Photographer, error) {
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}

	p, err := uc.owner(ctx, userID)
	if err != nil {
		return nil, err
	}

	p.CompanyName = in.CompanyName
	p.Website = in.Website
	p.PhoneNumber = in.PhoneNumber
	p.MobileNumber = in.MobileNumber
	p.NewsLetter = in.NewsLetter
	if err := uc.photographers.UpdatePhotographer(ctx, p); err != nil {
		return nil, fmt.Errorf("usecase: update photographer: %w", err)
	}

	user := p.User
	if user == nil {
		if user, err = uc.users.GetUserByID(ctx, userID); err != nil {
			return nil, fmt.Errorf("usecase: get user: %w", err)
		}
	}
	user.Email = in.Email
	user.FirstName = in.FirstName
	user.LastName = in.LastName
	if err := uc.users.UpdateUser(ctx, user); err != nil {
		return nil, fmt.Errorf("usecase: update user: %w", err)
	}
	p.User = user

	return p, nil
}

// AddLocation добавляет фотографу еще один адрес. Точка определяется так же,
// как при регистрации; без нее адрес уходит воркеру геокодирования.
func (uc *portfolioUseCase) AddLocation(ctx context.Context, userID uuid.UUID, in AddressInput) (*domain.Location, error) {
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}

	p, err := uc.owner(ctx, userID)
	if err != nil {
		return nil, err
	}

	location := &domain.Location{
		PhotographerID: p.ID,
		ZipCode:        in.ZipCode,
		Country:        in.Country,
		State:          in.State,
		City:           in.City,
		Street:         in.Street,
		Status:         domain.StatusActive,
		Point:          uc.resolver.Resolve(ctx, in),
	}
	if err := uc.locations.SaveLocation(ctx, location); err != nil {
		return nil, fmt.Errorf("usecase: save location: %w", err)
	}
	uc.resolver.AfterSave(ctx, location)

	return location, nil
}

func (uc *portfolioUseCase) Scoreboard(ctx context.Context, userID uuid.UUID, today time.Time) (*Scoreboard, error) {
	p, err := uc.owner(ctx, userID)
	if err != nil {
		return nil, err
	}

	likes, err := uc.metrics.CountPhotographerMetrics(ctx, domain.MetricLike, p.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: count likes: %w", err)
	}
	impressions, err := uc.metrics.CountPhotographerMetrics(ctx, domain.MetricImpression, p.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: count impressions: %w", err)
	}

	sub, err := uc.photographers.CurrentSubscription(ctx, p.ID, today)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("usecase: current subscription: %w", err)
	}

	return &Scoreboard{Photographer: p, Likes: likes, Impressions: impressions, Subscription: sub}, nil
}

func (uc *portfolioUseCase) Portfolio(ctx context.Context, userID uuid.UUID) (*Portfolio, error) {
	p, err := uc.owner(ctx, userID)
	if err != nil {
		return nil, err
	}

	count, err := uc.photographers.CountActivePhotos(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: count photos: %w", err)
	}
	top, err := uc.photographers.TopPhotos(ctx, p.ID, uc.topPhotos)
	if err != nil {
		return nil, fmt.Errorf("usecase: top photos: %w", err)
	}
	categories, err := uc.photographers.ActiveCategories(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: active categories: %w", err)
	}

	counts := make([]domain.CategoryCount, 0, len(categories))
	for _, c := range categories {
		photos, err := uc.photographers.CategoryPhotos(ctx, p.ID, c.ID)
		if err != nil {
			return nil, fmt.Errorf("usecase: category photos: %w", err)
		}
		counts = append(counts, domain.CategoryCount{Category: c, Photos: int64(len(photos))})
	}

	return &Portfolio{Photos: count, TopPhotos: top, Categories: counts}, nil
}

// CategoryDetail доступна только для категорий, где у фотографа есть активные фото.
func (uc *portfolioUseCase) CategoryDetail(ctx context.Context, userID, categoryID uuid.UUID) (*CategoryDetail, error) {
	p, err := uc.owner(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := uc.photographers.ActiveCategories(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("usecase: active categories: %w", err)
	}

	var category *domain.Category
	for i := range categories {
		if categories[i].ID == categoryID {
			category = &categories[i]
			break
		}
	}
	if category == nil {
		return nil, domain.ErrNotFound
	}

	photos, err := uc.photographers.CategoryPhotos(ctx, p.ID, categoryID)
	if err != nil {
		return nil, fmt.Errorf("usecase: category photos: %w", err)
	}
	cover, err := uc.photographers.RandomCategoryPhoto(ctx, p.ID, categoryID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("usecase: random category photo: %w", err)
	}

	return &CategoryDetail{Category: *category, Photos: photos, Cover: cover}, nil
}

func (uc *portfolioUseCase) Categories(ctx context.Context) ([]domain.Category, error) {
	categories, err := uc.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list categories: %w", err)
	}
	return categories, nil
}

// Upload кладет изображение в объектное хранилище и создает фото.
// Если запись в бд не удалась, объект удаляется.
func (uc *portfolioUseCase) Upload(ctx context.Context, userID uuid.UUID, in UploadInput) (*domain.Photo, error) {
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}
	if !strings.HasPrefix(in.ContentType, "image/") {
		verr := domain.NewValidationError()
		verr.Add("image", "Upload a valid image.")
		return nil, verr
	}

	p, err := uc.owner(ctx, userID)
	if err != nil {
		return nil, err
	}

	categories, err := uc.categories.ResolveCategories(ctx, in.Categories)
	if err != nil {
		return nil, fmt.Errorf("usecase: resolve categories: %w", err)
	}

	photo := &domain.Photo{
		ID:             uuid.New(),
		PhotographerID: p.ID,
		Title:          in.Title,
		Description:    in.Description,
		Status:         domain.StatusActive,
		Categories:     categories,
	}
	photo.ImageKey = fmt.Sprintf("gallery/%s/%s%s", p.ID, photo.ID, strings.ToLower(path.Ext(in.FileName)))

	url, err := uc.files.UploadFile(ctx, photo.ImageKey, in.Content, in.ContentType)
	if err != nil {
		return nil, fmt.Errorf("usecase: upload image: %w", err)
	}
	photo.ImageURL = url

	if err := uc.photos.CreatePhoto(ctx, photo); err != nil {
		if delErr := uc.files.DeleteFile(ctx, photo.ImageKey); delErr != nil {
			uc.logger.Error("failed to remove orphaned image", "key", photo.ImageKey, "error", delErr)
		}
		return nil, fmt.Errorf("usecase: create photo: %w", err)
	}

	uc.logger.Info("photo uploaded", "photo_id", photo.ID, "photographer_id", p.ID, "key", photo.ImageKey)
	return photo, nil
}

// UpdatePhoto меняет только активное фото текущего фотографа, иначе ErrNotFound.
func (uc *portfolioUseCase) UpdatePhoto(ctx context.Context, userID, photoID uuid.UUID, in PhotoInput) (*domain.Photo, error) {
	if err := validateStruct(uc.validate, in); err != nil {
		return nil, err
	}

	p, err := uc.owner(ctx, userID)
	if err != nil {
		return nil, err
	}
	photo, err := uc.photos.GetActivePhoto(ctx, p.ID, photoID)
	if err != nil {
		return nil, err
	}

	categories, err := uc.categories.ResolveCategories(ctx, in.Categories)
	if err != nil {
		return nil, fmt.Errorf("usecase: resolve categories: %w", err)
	}

	photo.Title = in.Title
	photo.Description = in.Description
	photo.Categories = categories
	if err := uc.photos.UpdatePhoto(ctx, photo); err != nil {
		return nil, fmt.Errorf("usecase: update photo: %w", err)
	}
	return photo, nil
}

// DeletePhoto — мягкое удаление: статус deleted, изображение остается в хранилище.
func (uc *portfolioUseCase) DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error {
	p, err := uc.owner(ctx, userID)
	if err != nil {
		return err
	}
	if _, err := uc.photos.GetActivePhoto(ctx, p.ID, photoID); err != nil {
		return err
	}
	if err := uc.photos.SetPhotoStatus(ctx, photoID, domain.StatusDeleted); err != nil {
		return fmt.Errorf("usecase: delete photo: %w", err)
	}
	return nil
}
