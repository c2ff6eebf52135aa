package storage

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var photoRowColumns = []string{
	"id", "photographer_id", "title", "description", "image_key", "image_url", "status", "created_at", "updated_at",
}

func TestActivePhotosByPhotographers(t *testing.T) {
	photographerID := uuid.New()
	now := time.Now()

	tests := []struct {
		name          string
		ids           []uuid.UUID
		category      string
		mockSetup     func(mock sqlmock.Sqlmock)
		expectedCount int
		expectError   bool
	}{
		{
			name: "Without category",
			ids:  []uuid.UUID{photographerID},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("p.photographer_id = ANY($1::uuid[])")).
					WithArgs(sqlmock.AnyArg()).
					WillReturnRows(sqlmock.NewRows(photoRowColumns).
						AddRow(uuid.New().String(), photographerID.String(), "Spree", "", "k1", "http://img/1", "active", now, now).
						AddRow(uuid.New().String(), photographerID.String(), "Dome", "", "k2", "http://img/2", "active", now, now))
			},
			expectedCount: 2,
		},
		{
			name:     "With category",
			ids:      []uuid.UUID{photographerID},
			category: "urban",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery(regexp.QuoteMeta("c.slug = $2")).
					WithArgs(sqlmock.AnyArg(), "urban").
					WillReturnRows(sqlmock.NewRows(photoRowColumns).
						AddRow(uuid.New().String(), photographerID.String(), "Spree", "", "k1", "http://img/1", "active", now, now))
			},
			expectedCount: 1,
		},
		{
			name:          "No photographers",
			mockSetup:     func(mock sqlmock.Sqlmock) {},
			expectedCount: 0,
		},
		{
			name: "DB Error",
			ids:  []uuid.UUID{photographerID},
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("FROM photos").WillReturnError(errors.New("boom"))
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newMockDB(t)
			tt.mockSetup(mock)

			photos, err := NewPhotoSearchStorage(db, testLogger).
				ActivePhotosByPhotographers(context.Background(), tt.ids, tt.category)
			if tt.expectError {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Len(t, photos, tt.expectedCount)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestActivePhotosWithLocatedPhotographer(t *testing.T) {
	db, mock := newMockDB(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("c.slug = $1")).
		WithArgs("nature").
		WillReturnRows(sqlmock.NewRows(photoRowColumns).
			AddRow(uuid.New().String(), uuid.New().String(), "Forest", "", "k", "http://img/f", "active", now, now))

	photos, err := NewPhotoSearchStorage(db, testLogger).ActivePhotosWithLocatedPhotographer(context.Background(), "nature")
	require.NoError(t, err)
	require.Len(t, photos, 1)
	assert.Equal(t, "Forest", photos[0].Title)
	assert.True(t, photos[0].IsActive())
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRandomActivePhotos(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1")).
		WithArgs(12).
		WillReturnRows(sqlmock.NewRows(photoRowColumns))

	photos, err := NewPhotoSearchStorage(db, testLogger).RandomActivePhotos(context.Background(), 12)
	require.NoError(t, err)
	assert.NotNil(t, photos)
	assert.Empty(t, photos)
	assert.NoError(t, mock.ExpectationsWereMet())
}
