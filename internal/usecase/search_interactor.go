package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/config"
	"github.com/GoArmGo/PhotoBase/internal/core/ports"
	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/GoArmGo/PhotoBase/internal/metrics"
	"github.com/GoArmGo/PhotoBase/internal/pagination"
	"github.com/google/uuid"
)

// searchUseCase implements SearchUseCase
type searchUseCase struct {
	locations     ports.LocationStorage
	search        ports.SearchStorage
	photographers ports.PhotographerStorage
	photos        ports.PhotoStorage
	categories    ports.CategoryStorage
	recorder      MetricsRecorder
	cfg           config.SearchConfig
	logger        *slog.Logger
}

// NewSearchUseCase создает новый экземпляр SearchUseCase
func NewSearchUseCase(
	locations ports.LocationStorage,
	search ports.SearchStorage,
	photographers ports.PhotographerStorage,
	photos ports.PhotoStorage,
	categories ports.CategoryStorage,
	recorder MetricsRecorder,
	cfg config.SearchConfig,
	logger *slog.Logger,
) SearchUseCase {
	return &searchUseCase{
		locations:     locations,
		search:        search,
		photographers: photographers,
		photos:        photos,
		categories:    categories,
		recorder:      recorder,
		cfg:           cfg,
		logger:        logger,
	}
}

func (uc *searchUseCase) Home(ctx context.Context) (*HomePage, error) {
	photos, err := uc.search.RandomActivePhotos(ctx, uc.cfg.PhotosPerBatch)
	if err != nil {
		return nil, fmt.Errorf("usecase: random photos: %w", err)
	}
	categories, err := uc.categories.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: list categories: %w", err)
	}

	return &HomePage{
		Photos:     photos,
		Categories: categories,
		Defaults: SearchDefaults{
			Range:    uc.cfg.DefaultRange,
			Category: uc.cfg.DefaultCategory,
			Name:     uc.cfg.DefaultName,
		},
	}, nil
}

// SearchPhotos:
//  1. радиус > 0 — фото фотографов с адресом в радиусе;
//  2. радиус <= 0 — фото всех фотографов, у которых есть хоть одна точка;
//  3. категория (кроме "any") сужает по категории фотографа;
//  4. страница i — элементы [i*size, (i+1)*size), по показу на каждое фото.
func (uc *searchUseCase) SearchPhotos(ctx context.Context, req SearchRequest) (*SearchResult, error) {
	start := time.Now()
	result := &SearchResult{Photos: []domain.Photo{}, Geo: req.Geo}

	if strings.TrimSpace(req.Geo.Lat) == "" && strings.TrimSpace(req.Geo.Lng) == "" {
		return result, nil
	}

	origin, ok := parsePoint(req.Geo.Lat, req.Geo.Lng, uc.cfg.UnknownCoordinate)
	if !ok {
		verr := domain.NewValidationError()
		verr.Add("geo", "Invalid coordinates.")
		return nil, verr
	}

	radius := uc.cfg.DefaultRange
	if raw := strings.TrimSpace(req.Geo.Range); raw != "" {
		r, err := strconv.Atoi(raw)
		if err != nil {
			verr := domain.NewValidationError()
			verr.Add("range", "Enter a whole number.")
			return nil, verr
		}
		radius = r
	}

	category := strings.TrimSpace(req.Category)
	if category == uc.cfg.DefaultCategory {
		category = ""
	}

	var candidates []domain.Photo
	if radius > 0 {
		locations, err := uc.locations.LocationsWithin(ctx, origin, float64(radius))
		if err != nil {
			return nil, fmt.Errorf("usecase: locations within %d km: %w", radius, err)
		}
		candidates, err = uc.search.ActivePhotosByPhotographers(ctx, photographerOrder(locations), category)
		if err != nil {
			return nil, fmt.Errorf("usecase: photos near point: %w", err)
		}
	} else {
		var err error
		candidates, err = uc.search.ActivePhotosWithLocatedPhotographer(ctx, category)
		if err != nil {
			return nil, fmt.Errorf("usecase: photos of located photographers: %w", err)
		}
	}
	metrics.SearchResultsTotal.Observe(float64(len(candidates)))

	page := req.Page
	if page < 0 {
		page = 0
	}
	result.Photos = pagination.Batch(candidates, page, uc.cfg.PhotosPerBatch)

	if err := uc.recorder.RecordImpressions(ctx, result.Photos, req.Requester); err != nil {
		return nil, err
	}

	if page == 0 {
		total := len(candidates)
		result.Total = &total
	}

	uc.logger.Info("photo search completed",
		"radius_km", radius,
		"category", category,
		"page", page,
		"candidates", len(candidates),
		"returned", len(result.Photos),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return result, nil
}

// photographerOrder — различные фотографы в порядке первого появления их адреса.
func photographerOrder(locations []domain.Location) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(locations))
	ids := make([]uuid.UUID, 0, len(locations))
	for _, l := range locations {
		if _, ok := seen[l.PhotographerID]; ok {
			continue
		}
		seen[l.PhotographerID] = struct{}{}
		ids = append(ids, l.PhotographerID)
	}
	return ids
}

func (uc *searchUseCase) PhotographersByPhoto(ctx context.Context, req PhotographersByPhotoRequest) (*PhotographersResult, error) {
	if err := uc.recorder.RecordLikes(ctx, req.PhotoIDs, req.Requester); err != nil {
		return nil, err
	}

	photographers, err := uc.photographers.PhotographersByPhotoIDs(ctx, req.PhotoIDs)
	if err != nil {
		return nil, fmt.Errorf("usecase: photographers by photos: %w", err)
	}

	result := &PhotographersResult{
		Photographers: photographers,
		HiddenIDs:     nonNilIDs(req.PhotoIDs),
		Scale:         uc.cfg.LocationScale,
	}
	if p, ok := parsePoint(req.Lat, req.Lng, uc.cfg.UnknownCoordinate); ok {
		result.Point = &p
	}

	if err := uc.attachLocations(ctx, result.Photographers, result.Point); err != nil {
		return nil, err
	}
	return result, nil
}

// attachLocations подгружает адреса фотографов; при заданной точке у каждого
// адреса с координатами проставляется расстояние в км, умноженное на масштаб.
func (uc *searchUseCase) attachLocations(ctx context.Context, photographers []domain.Photographer, origin *domain.Point) error {
	if len(photographers) == 0 {
		return nil
	}

	ids := make([]uuid.UUID, 0, len(photographers))
	for _, p := range photographers {
		ids = append(ids, p.ID)
	}
	locations, err := uc.locations.LocationsByPhotographers(ctx, ids)
	if err != nil {
		return fmt.Errorf("usecase: photographer locations: %w", err)
	}

	byOwner := make(map[uuid.UUID][]domain.Location, len(photographers))
	for _, l := range locations {
		if origin != nil && l.Point != nil {
			d := l.Point.DistanceKm(*origin) * uc.cfg.LocationScale
			l.DistanceKm = &d
		}
		byOwner[l.PhotographerID] = append(byOwner[l.PhotographerID], l)
	}
	for i := range photographers {
		photographers[i].Locations = byOwner[photographers[i].ID]
	}
	return nil
}

func (uc *searchUseCase) PhotographersByZip(ctx context.Context, zipPrefix string, hiddenIDs []uuid.UUID) (*ZipSearchResult, error) {
	photographers, err := uc.photographers.PhotographersByZipPrefix(ctx, strings.TrimSpace(zipPrefix), hiddenIDs)
	if err != nil {
		return nil, fmt.Errorf("usecase: photographers by zip: %w", err)
	}
	if err := uc.attachLocations(ctx, photographers, nil); err != nil {
		return nil, err
	}
	return &ZipSearchResult{Photographers: photographers, HiddenIDs: nonNilIDs(hiddenIDs)}, nil
}

// PhotoPage отдает страницу read API; номер страницы зажимается в допустимый диапазон.
func (uc *searchUseCase) PhotoPage(ctx context.Context, rawPage string) (*PhotoPage, error) {
	total, err := uc.photos.CountPhotos(ctx)
	if err != nil {
		return nil, fmt.Errorf("usecase: count photos: %w", err)
	}

	p := pagination.Paginator{Total: int(total), PerPage: uc.cfg.PhotosPerBatch}
	page := p.Resolve(rawPage)

	photos, err := uc.photos.ListPhotos(ctx, p.Offset(page), p.PerPage)
	if err != nil {
		return nil, fmt.Errorf("usecase: list photos: %w", err)
	}

	items := make([]PhotoItem, 0, len(photos))
	for _, ph := range photos {
		items = append(items, PhotoItem{ID: ph.ID, Title: ph.Title, Description: ph.Description, Image: ph.ImageURL})
	}
	return &PhotoPage{Items: items, Page: page, NumPages: p.NumPages(), Total: int(total)}, nil
}

func nonNilIDs(ids []uuid.UUID) []uuid.UUID {
	if ids == nil {
		return []uuid.UUID{}
	}
	return ids
}
