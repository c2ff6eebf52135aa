package handler

import (
	"context"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/GoArmGo/PhotoBase/internal/usecase"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type searchUseCaseMock struct{ mock.Mock }

func (m *searchUseCaseMock) Home(ctx context.Context) (*usecase.HomePage, error) {
	args := m.Called(ctx)
	page, _ := args.Get(0).(*usecase.HomePage)
	return page, args.Error(1)
}

func (m *searchUseCaseMock) SearchPhotos(ctx context.Context, req usecase.SearchRequest) (*usecase.SearchResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*usecase.SearchResult)
	return res, args.Error(1)
}

func (m *searchUseCaseMock) PhotographersByPhoto(ctx context.Context, req usecase.PhotographersByPhotoRequest) (*usecase.PhotographersResult, error) {
	args := m.Called(ctx, req)
	res, _ := args.Get(0).(*usecase.PhotographersResult)
	return res, args.Error(1)
}

func (m *searchUseCaseMock) PhotographersByZip(ctx context.Context, zip string, hidden []uuid.UUID) (*usecase.ZipSearchResult, error) {
	args := m.Called(ctx, zip, hidden)
	res, _ := args.Get(0).(*usecase.ZipSearchResult)
	return res, args.Error(1)
}

func (m *searchUseCaseMock) PhotoPage(ctx context.Context, rawPage string) (*usecase.PhotoPage, error) {
	args := m.Called(ctx, rawPage)
	res, _ := args.Get(0).(*usecase.PhotoPage)
	return res, args.Error(1)
}

type accountUseCaseMock struct{ mock.Mock }

func (m *accountUseCaseMock) Register(ctx context.Context, in usecase.RegisterInput) (*domain.User, error) {
	args := m.Called(ctx, in)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

func (m *accountUseCaseMock) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	args := m.Called(ctx, username, password)
	u, _ := args.Get(0).(*domain.User)
	return u, args.Error(1)
}

type portfolioUseCaseMock struct{ mock.Mock }

func (m *portfolioUseCaseMock) Personal(ctx context.Context, userID uuid.UUID) (*domain.Photographer, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*domain.Photographer)
	return p, args.Error(1)
}

func (m *portfolioUseCaseMock) UpdatePersonal(ctx context.Context, userID uuid.UUID, in usecase.PersonalInput) (*domain.Photographer, error) {
	args := m.Called(ctx, userID, in)
	p, _ := args.Get(0).(*domain.Photographer)
	return p, args.Error(1)
}

func (m *portfolioUseCaseMock) AddLocation(ctx context.Context, userID uuid.UUID, in usecase.AddressInput) (*domain.Location, error) {
	args := m.Called(ctx, userID, in)
	l, _ := args.Get(0).(*domain.Location)
	return l, args.Error(1)
}

func (m *portfolioUseCaseMock) Scoreboard(ctx context.Context, userID uuid.UUID, today time.Time) (*usecase.Scoreboard, error) {
	args := m.Called(ctx, userID, today)
	b, _ := args.Get(0).(*usecase.Scoreboard)
	return b, args.Error(1)
}

func (m *portfolioUseCaseMock) Portfolio(ctx context.Context, userID uuid.UUID) (*usecase.Portfolio, error) {
	args := m.Called(ctx, userID)
	p, _ := args.Get(0).(*usecase.Portfolio)
	return p, args.Error(1)
}

func (m *portfolioUseCaseMock) CategoryDetail(ctx context.Context, userID, categoryID uuid.UUID) (*usecase.CategoryDetail, error) {
	args := m.Called(ctx, userID, categoryID)
	d, _ := args.Get(0).(*usecase.CategoryDetail)
	return d, args.Error(1)
}

func (m *portfolioUseCaseMock) Categories(ctx context.Context) ([]domain.Category, error) {
	args := m.Called(ctx)
	c, _ := args.Get(0).([]domain.Category)
	return c, args.Error(1)
}

func (m *portfolioUseCaseMock) Upload(ctx context.Context, userID uuid.UUID, in usecase.UploadInput) (*domain.Photo, error) {
	args := m.Called(ctx, userID, in)
	p, _ := args.Get(0).(*domain.Photo)
	return p, args.Error(1)
}

func (m *portfolioUseCaseMock) UpdatePhoto(ctx context.Context, userID, photoID uuid.UUID, in usecase.PhotoInput) (*domain.Photo, error) {
	args := m.Called(ctx, userID, photoID, in)
	p, _ := args.Get(0).(*domain.Photo)
	return p, args.Error(1)
}

func (m *portfolioUseCaseMock) DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error {
	return m.Called(ctx, userID, photoID).Error(0)
}
