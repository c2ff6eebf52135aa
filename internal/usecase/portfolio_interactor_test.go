package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/GoArmGo/PhotoBase/internal/logger"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type portfolioDeps struct {
	photographers *photographerStorageMock
	photos        *photoStorageMock
	categories    *categoryStorageMock
	users         *userStorageMock
	metrics       *metricStorageMock
	files         *fileStorageMock
	locations     *locationStorageMock
	geocoder      *geocoderMock
	publisher     *publisherMock
}

func newPortfolioUseCase(t *testing.T) (PortfolioUseCase, *portfolioDeps, *domain.Photographer, uuid.UUID) {
	t.Helper()

	d := &portfolioDeps{
		photographers: &photographerStorageMock{},
		photos:        &photoStorageMock{},
		categories:    &categoryStorageMock{},
		users:         &userStorageMock{},
		metrics:       &metricStorageMock{},
		files:         &fileStorageMock{},
		locations:     &locationStorageMock{},
		geocoder:      &geocoderMock{},
		publisher:     &publisherMock{},
	}
	resolver := NewLocationResolver(d.geocoder, d.publisher, "unknown", logger.Discard())
	uc := NewPortfolioUseCase(d.photographers, d.photos, d.categories, d.users, d.metrics, d.files,
		d.locations, resolver, validator.New(), 3, logger.Discard())

	userID := uuid.New()
	owner := &domain.Photographer{
		ID:     uuid.New(),
		UserID: userID,
		Status: domain.StatusActive,
		User:   &domain.User{ID: userID, Username: "anna"},
	}
	d.photographers.On("GetPhotographerByUserID", mock.Anything, userID).Return(owner, nil)
	return uc, d, owner, userID
}

func TestPortfolioWithoutProfileIsForbidden(t *testing.T) {
	uc, d, _, _ := newPortfolioUseCase(t)
	stranger := uuid.New()
	d.photographers.On("GetPhotographerByUserID", mock.Anything, stranger).Return(nil, domain.ErrNotFound)

	_, err := uc.Portfolio(context.Background(), stranger)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestPortfolioSummary(t *testing.T) {
	uc, d, owner, userID := newPortfolioUseCase(t)
	nature := domain.Category{ID: uuid.New(), Name: "Nature", Slug: "nature"}
	top := []domain.RankedPhoto{
		{Photo: domain.Photo{ID: uuid.New()}, LikeCount: 7},
		{Photo: domain.Photo{ID: uuid.New()}, LikeCount: 3},
		{Photo: domain.Photo{ID: uuid.New()}, LikeCount: 0},
	}

	d.photographers.On("CountActivePhotos", mock.Anything, owner.ID).Return(int64(5), nil)
	d.photographers.On("TopPhotos", mock.Anything, owner.ID, 3).Return(top, nil)
	d.photographers.On("ActiveCategories", mock.Anything, owner.ID).Return([]domain.Category{nature}, nil)
	d.photographers.On("CategoryPhotos", mock.Anything, owner.ID, nature.ID).Return(makePhotos(2, owner.ID), nil)

	p, err := uc.Portfolio(context.Background(), userID)
	require.NoError(t, err)
	assert.Equal(t, int64(5), p.Photos)
	require.Len(t, p.TopPhotos, 3)
	assert.Equal(t, int64(7), p.TopPhotos[0].LikeCount)
	require.Len(t, p.Categories, 1)
	assert.Equal(t, int64(2), p.Categories[0].Photos)
}

func TestScoreboard(t *testing.T) {
	today := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name           string
		subscription   *domain.Subscription
		subscriptionEr error
		expectErr      bool
	}{
		{name: "With plan", subscription: &domain.Subscription{Name: "Pro"}},
		{name: "No current plan", subscriptionEr: domain.ErrNotFound},
		{name: "Storage failure", subscriptionEr: errors.New("db down"), expectErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, d, owner, userID := newPortfolioUseCase(t)
			d.metrics.On("CountPhotographerMetrics", mock.Anything, domain.MetricLike, owner.ID).Return(int64(12), nil)
			d.metrics.On("CountPhotographerMetrics", mock.Anything, domain.MetricImpression, owner.ID).Return(int64(340), nil)
			d.photographers.On("CurrentSubscription", mock.Anything, owner.ID, today).Return(tt.subscription, tt.subscriptionEr)

			board, err := uc.Scoreboard(context.Background(), userID, today)
			if tt.expectErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(12), board.Likes)
			assert.Equal(t, int64(340), board.Impressions)
			assert.Equal(t, tt.subscription, board.Subscription)
		})
	}
}

func TestCategoryDetail(t *testing.T) {
	uc, d, owner, userID := newPortfolioUseCase(t)
	nature := domain.Category{ID: uuid.New(), Slug: "nature"}
	photos := makePhotos(2, owner.ID)

	d.photographers.On("ActiveCategories", mock.Anything, owner.ID).Return([]domain.Category{nature}, nil)
	d.photographers.On("CategoryPhotos", mock.Anything, owner.ID, nature.ID).Return(photos, nil)
	d.photographers.On("RandomCategoryPhoto", mock.Anything, owner.ID, nature.ID).Return(&photos[1], nil)

	detail, err := uc.CategoryDetail(context.Background(), userID, nature.ID)
	require.NoError(t, err)
	assert.Equal(t, "nature", detail.Category.Slug)
	assert.Len(t, detail.Photos, 2)
	assert.Contains(t, photos, *detail.Cover)

	_, err = uc.CategoryDetail(context.Background(), userID, uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestUpload(t *testing.T) {
	t.Run("Stored with categories", func(t *testing.T) {
		uc, d, owner, userID := newPortfolioUseCase(t)
		cats := []domain.Category{{ID: uuid.New(), Name: "Nature", Slug: "nature"}}

		d.categories.On("ResolveCategories", mock.Anything, []string{"Nature"}).Return(cats, nil)
		d.files.On("UploadFile", mock.Anything, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "gallery/"+owner.ID.String()+"/") && strings.HasSuffix(key, ".jpg")
		}), mock.Anything, "image/jpeg").Return("http://localhost:9000/photobase/gallery/x.jpg", nil)
		d.photos.On("CreatePhoto", mock.Anything, mock.MatchedBy(func(p *domain.Photo) bool {
			return p.PhotographerID == owner.ID && p.IsActive() && len(p.Categories) == 1
		})).Return(nil)

		photo, err := uc.Upload(context.Background(), userID, UploadInput{
			Title:       "Forest",
			Categories:  []string{"Nature"},
			FileName:    "Forest.JPG",
			ContentType: "image/jpeg",
			Content:     strings.NewReader("jpeg-bytes"),
		})
		require.NoError(t, err)
		assert.Equal(t, "http://localhost:9000/photobase/gallery/x.jpg", photo.ImageURL)
		d.files.AssertExpectations(t)
		d.photos.AssertExpectations(t)
	})

	t.Run("Orphaned object removed", func(t *testing.T) {
		uc, d, _, userID := newPortfolioUseCase(t)
		d.categories.On("ResolveCategories", mock.Anything, []string(nil)).Return([]domain.Category{}, nil)
		d.files.On("UploadFile", mock.Anything, mock.Anything, mock.Anything, "image/png").Return("http://x", nil)
		d.photos.On("CreatePhoto", mock.Anything, mock.Anything).Return(errors.New("insert failed"))
		d.files.On("DeleteFile", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.Upload(context.Background(), userID, UploadInput{
			FileName:    "a.png",
			ContentType: "image/png",
			Content:     strings.NewReader("png"),
		})
		assert.Error(t, err)
		d.files.AssertCalled(t, "DeleteFile", mock.Anything, mock.Anything)
	})

	t.Run("Not an image", func(t *testing.T) {
		uc, d, _, userID := newPortfolioUseCase(t)

		_, err := uc.Upload(context.Background(), userID, UploadInput{
			FileName:    "notes.txt",
			ContentType: "text/plain",
			Content:     strings.NewReader("hello"),
		})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "image")
		d.files.AssertNotCalled(t, "UploadFile", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestUpdatePhotoOfAnotherPhotographer(t *testing.T) {
	uc, d, owner, userID := newPortfolioUseCase(t)
	foreign := uuid.New()
	d.photos.On("GetActivePhoto", mock.Anything, owner.ID, foreign).Return(nil, domain.ErrNotFound)

	_, err := uc.UpdatePhoto(context.Background(), userID, foreign, PhotoInput{Title: "Mine now"})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	d.photos.AssertNotCalled(t, "UpdatePhoto", mock.Anything, mock.Anything)

	err = uc.DeletePhoto(context.Background(), userID, foreign)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	d.photos.AssertNotCalled(t, "SetPhotoStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestUpdateAndDeleteOwnPhoto(t *testing.T) {
	uc, d, owner, userID := newPortfolioUseCase(t)
	photo := &domain.Photo{ID: uuid.New(), PhotographerID: owner.ID, Title: "Old", Status: domain.StatusActive}
	urban := []domain.Category{{ID: uuid.New(), Name: "Urban", Slug: "urban"}}

	d.photos.On("GetActivePhoto", mock.Anything, owner.ID, photo.ID).Return(photo, nil)
	d.categories.On("ResolveCategories", mock.Anything, []string{"Urban"}).Return(urban, nil)
	d.photos.On("UpdatePhoto", mock.Anything, photo).Return(nil)
	d.photos.On("SetPhotoStatus", mock.Anything, photo.ID, domain.StatusDeleted).Return(nil)

	updated, err := uc.UpdatePhoto(context.Background(), userID, photo.ID, PhotoInput{Title: "New", Categories: []string{"Urban"}})
	require.NoError(t, err)
	assert.Equal(t, "New", updated.Title)
	assert.Equal(t, urban, updated.Categories)

	require.NoError(t, uc.DeletePhoto(context.Background(), userID, photo.ID))
	d.photos.AssertExpectations(t)
}

func TestUpdatePersonal(t *testing.T) {
	uc, d, owner, userID := newPortfolioUseCase(t)
	d.photographers.On("UpdatePhotographer", mock.Anything, owner).Return(nil)
	d.users.On("UpdateUser", mock.Anything, mock.MatchedBy(func(u *domain.User) bool {
		return u.Email == "studio@example.com" && u.FirstName == "Anna"
	})).Return(nil)

	p, err := uc.UpdatePersonal(context.Background(), userID, PersonalInput{
		Email:        "studio@example.com",
		FirstName:    "Anna",
		CompanyName:  "Anna Studio",
		MobileNumber: "+4915112345678",
	})
	require.NoError(t, err)
	assert.Equal(t, "Anna Studio", p.CompanyName)
	d.users.AssertExpectations(t)

	_, err = uc.UpdatePersonal(context.Background(), userID, PersonalInput{Email: "nope"})
	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "email")
	assert.Contains(t, verr.Fields, "company_name")
}

func TestAddLocation(t *testing.T) {
	t.Run("Explicit coordinates", func(t *testing.T) {
		uc, d, owner, userID := newPortfolioUseCase(t)
		d.locations.On("SaveLocation", mock.Anything, mock.MatchedBy(func(l *domain.Location) bool {
			return l.PhotographerID == owner.ID && l.HasPoint() && l.Point.Lat == 53.55
		})).Return(nil)

		location, err := uc.AddLocation(context.Background(), userID, AddressInput{ZipCode: "20095", City: "Hamburg", Lat: "53.55", Lng: "10.0"})
		require.NoError(t, err)
		assert.Equal(t, "Hamburg", location.City)
		d.geocoder.AssertNotCalled(t, "Geocode", mock.Anything, mock.Anything)
		d.publisher.AssertNotCalled(t, "PublishGeocodeRequest", mock.Anything, mock.Anything)
	})

	t.Run("Unresolved address queued for worker", func(t *testing.T) {
		uc, d, _, userID := newPortfolioUseCase(t)
		d.geocoder.On("Geocode", mock.Anything, "Hauptstr. 5, Bonn, 53111").Return(domain.Point{}, errors.New("ZERO_RESULTS"))
		d.locations.On("SaveLocation", mock.Anything, mock.MatchedBy(func(l *domain.Location) bool {
			return !l.HasPoint()
		})).Return(nil)
		d.publisher.On("PublishGeocodeRequest", mock.Anything, mock.Anything).Return(nil)

		_, err := uc.AddLocation(context.Background(), userID, AddressInput{Street: "Hauptstr. 5", City: "Bonn", ZipCode: "53111"})
		require.NoError(t, err)
		d.publisher.AssertNumberOfCalls(t, "PublishGeocodeRequest", 1)
	})

	t.Run("Zip code required", func(t *testing.T) {
		uc, d, _, userID := newPortfolioUseCase(t)

		_, err := uc.AddLocation(context.Background(), userID, AddressInput{City: "Bonn"})
		var verr *domain.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Contains(t, verr.Fields, "zip_code")
		d.locations.AssertNotCalled(t, "SaveLocation", mock.Anything, mock.Anything)
	})
}
