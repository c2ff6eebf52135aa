package usecase

import (
	"context"
	"io"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/GoArmGo/PhotoBase/internal/messaging/payloads"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type locationStorageMock struct{ mock.Mock }

func (m *locationStorageMock) SaveLocation(ctx context.Context, l *domain.Location) error {
	return m.Called(ctx, l).Error(0)
}

func (m *locationStorageMock) GetLocationByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	args := m.Called(ctx, id)
	l, _ := args.Get(0).(*domain.Location)
	return l, args.Error(1)
}

func (m *locationStorageMock) UpdateLocationPoint(ctx context.Context, id uuid.UUID, p domain.Point) error {
	return m.Called(ctx, id, p).Error(0)
}

func (m *locationStorageMock) LocationsWithin(ctx context.Context, origin domain.Point, radiusKm float64) ([]domain.Location, error) {
	args := m.Called(ctx, origin, radiusKm)
	l, _ := args.Get(0).([]domain.Location)
	return l, args.Error(1)
}

func (m *locationStorageMock) LocationsByPhotographers(ctx context.Context, ids []uuid.UUID) ([]domain.Location, error) {
	args := m.Called(ctx, ids)
	l, _ := args.Get(0).([]domain.Location)
	return l, args.Error(1)
}

type searchStorageMock struct{ mock.Mock }

func (m *searchStorageMock) ActivePhotosByPhotographers(ctx context.Context, ids []uuid.UUID, category string) ([]domain.Photo, error) {
	args := m.Called(ctx, ids, category)
	p, _ := args.Get(0).([]domain.Photo)
	return p, args.Error(1)
}

func (m *searchStorageMock) ActivePhotosWithLocatedPhotographer(ctx context.Context, category string) ([]domain.Photo, error) {
	args := m.Called(ctx, category)
	p, _ := args.Get(0).([]domain.Photo)
	return p, args.Error(1)
}

func (m *searchStorageMock) RandomActivePhotos(ctx context.Context, limit int) ([]domain.Photo, error) {
	args := m.Called(ctx, limit)
	p, _ := args.Get(0).([]domain.Photo)
	return p, args.Error(1)
}

type metricStorageMock struct{ mock.Mock }

func (m *metricStorageMock) AppendMetric(ctx context.Context, kind domain.MetricKind, e *domain.MetricEvent) error {
	return m.Called(ctx, kind, e).Error(0)
}

func (m *metricStorageMock) CountPhotographerMetrics(ctx context.Context, kind domain.MetricKind, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, kind, id)
	return args.Get(0).(int64), args.Error(1)
}

type photographerStorageMock struct{ mock.Mock }

func (m *photographerStorageMock) GetPhotographerByUserID(ctx context.Context, id uuid.UUID) (*domain.Photographer, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*domain.Photographer)
	return p, args.Error(1)
}

func (m *photographerStorageMock) UpdatePhotographer(ctx context.Context, p *domain.Photographer) error {
	return m.Called(ctx, p).Error(0)
}

func (m *photographerStorageMock) PhotographersByPhotoIDs(ctx context.Context, ids []uuid.UUID) ([]domain.Photographer, error) {
	args := m.Called(ctx, ids)
	p, _ := args.Get(0).([]domain.Photographer)
	return p, args.Error(1)
}

func (m *photographerStorageMock) PhotographersByZipPrefix(ctx context.Context, zip string, ids []uuid.UUID) ([]domain.Photographer, error) {
	args := m.Called(ctx, zip, ids)
	p, _ := args.Get(0).([]domain.Photographer)
	return p, args.Error(1)
}

func (m *photographerStorageMock) TopPhotos(ctx context.Context, id uuid.UUID, limit int) ([]domain.RankedPhoto, error) {
	args := m.Called(ctx, id, limit)
	p, _ := args.Get(0).([]domain.RankedPhoto)
	return p, args.Error(1)
}

func (m *photographerStorageMock) CountActivePhotos(ctx context.Context, id uuid.UUID) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *photographerStorageMock) ActiveCategories(ctx context.Context, id uuid.UUID) ([]domain.Category, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).([]domain.Category)
	return c, args.Error(1)
}

func (m *photographerStorageMock) CategoryPhotos(ctx context.Context, photographerID, categoryID uuid.UUID) ([]domain.Photo, error) {
	args := m.Called(ctx, photographerID, categoryID)
	p, _ := args.Get(0).([]domain.Photo)
	return p, args.Error(1)
}

func (m *photographerStorageMock) RandomCategoryPhoto(ctx context.Context, photographerID, categoryID uuid.UUID) (*domain.Photo, error) {
	args := m.Called(ctx, photographerID, categoryID)
	p, _ := args.Get(0).(*domain.Photo)
	return p, args.Error(1)
}

func (m *photographerStorageMock) CurrentSubscription(ctx context.Context, id uuid.UUID, day time.Time) (*domain.Subscription, error) {
	args := m.Called(ctx, id, day)
	s, _ := args.Get(0).(*domain.Subscription)
	return s, args.Error(1)
}

type photoStorageMock struct{ mock.Mock }

func (m *photoStorageMock) CreatePhoto(ctx context.Context, p *domain.Photo) error {
	return m.Called(ctx, p).Error(0)
}

func (m *photoStorageMock) GetActivePhoto(ctx context.Context, photographerID, photoID uuid.UUID) (*domain.Photo, error) {
	args := m.Called(ctx, photographerID, photoID)
	p, _ := args.Get(0).(*domain.Photo)
	return p, args.Error(1)
}

func (m *photoStorageMock) UpdatePhoto(ctx context.Context, p *domain.Photo) error {
	return m.Called(ctx, p).Error(0)
}

func (m *photoStorageMock) SetPhotoStatus(ctx context.Context, id uuid.UUID, status domain.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *photoStorageMock) CountPhotos(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *photoStorageMock) ListPhotos(ctx context.Context, offset, limit int) ([]domain.Photo, error) {
	args := m.Called(ctx, offset, limit)
	p, _ := args.Get(0).([]domain.Photo)
	return p, args.Error(1)
}

type categoryStorageMock struct{ mock.Mock }

func (m *categoryStorageMock) ListCategories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.Category)
	return c, args.Error(1)
}

func (m *categoryStorageMock) ResolveCategories(ctx context.Context, values []string) ([]domain.Category, error) {
	args := m.Called(ctx, values)
	c, _ := args.Get(0).([]domain.Category)
	return c, args.Error(1)
}

type userStorageMock struct{ mock.Mock }

func (m *userStorageMock) CreateAccount(ctx context.Context, u *domain.User, p *domain.Photographer, l *domain.Location) error {
	return m.Called(ctx, u, p, l).Error(0)
}

func (m *userStorageMock) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *userStorageMock) GetUserByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *userStorageMock) UpdateUser(ctx context.Context, u *domain.User) error {
	return m.Called(ctx, u).Error(0)
}

type fileStorageMock struct{ mock.Mock }

func (m *fileStorageMock) UploadFile(ctx context.Context, key string, r io.Reader, contentType string) (string, error) {
	args := m.Called(ctx, key, r, contentType)
	return args.String(0), args.Error(1)
}

func (m *fileStorageMock) DeleteFile(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

type geocoderMock struct{ mock.Mock }

func (m *geocoderMock) Geocode(ctx context.Context, address string) (domain.Point, error) {
	args := m.Called(ctx, address)
	return args.Get(0).(domain.Point), args.Error(1)
}

type publisherMock struct{ mock.Mock }

func (m *publisherMock) PublishGeocodeRequest(ctx context.Context, p payloads.GeocodePayload) error {
	return m.Called(ctx, p).Error(0)
}
