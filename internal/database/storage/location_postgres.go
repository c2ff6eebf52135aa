package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const locationColumns = `id, photographer_id, zip_code, country, state, city, street,
	ST_Y(point::geometry) AS lat, ST_X(point::geometry) AS lng,
	status, created_at, updated_at`

// locationRow — строка таблицы locations; точка читается как lat/lng,
// а пишется в виде EWKT.
type locationRow struct {
	ID             uuid.UUID       `db:"id"`
	PhotographerID uuid.UUID       `db:"photographer_id"`
	ZipCode        string          `db:"zip_code"`
	Country        string          `db:"country"`
	State          string          `db:"state"`
	City           string          `db:"city"`
	Street         string          `db:"street"`
	Point          sql.NullString  `db:"point"`
	Lat            sql.NullFloat64 `db:"lat"`
	Lng            sql.NullFloat64 `db:"lng"`
	Status         string          `db:"status"`
	CreatedAt      time.Time       `db:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at"`
	DistanceKm     sql.NullFloat64 `db:"distance_km"`
}

func newLocationRow(l *domain.Location) locationRow {
	row := locationRow{
		ID:             l.ID,
		PhotographerID: l.PhotographerID,
		ZipCode:        l.ZipCode,
		Country:        l.Country,
		State:          l.State,
		City:           l.City,
		Street:         l.Street,
		Status:         string(l.Status),
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
	if l.Point != nil && l.Point.Valid() {
		row.Point = sql.NullString{String: l.Point.EWKT(), Valid: true}
	}
	return row
}

func (r locationRow) toDomain() domain.Location {
	l := domain.Location{
		ID:             r.ID,
		PhotographerID: r.PhotographerID,
		ZipCode:        r.ZipCode,
		Country:        r.Country,
		State:          r.State,
		City:           r.City,
		Street:         r.Street,
		Status:         domain.Status(r.Status),
		CreatedAt:      r.CreatedAt,
		UpdatedAt:      r.UpdatedAt,
	}
	if r.Lat.Valid && r.Lng.Valid {
		l.Point = &domain.Point{Lat: r.Lat.Float64, Lng: r.Lng.Float64}
	}
	if r.DistanceKm.Valid {
		d := r.DistanceKm.Float64
		l.DistanceKm = &d
	}
	return l
}

type LocationStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewLocationStorage(db *sqlx.DB, logger *slog.Logger) *LocationStorage {
	return &LocationStorage{db: db, logger: logger}
}

// SaveLocation вставляет адрес или обновляет существующий.
// Пустая точка не затирает уже сохраненную.
func (s *LocationStorage) SaveLocation(ctx context.Context, location *domain.Location) error {
	start := time.Now()

	now := time.Now()
	if location.ID == uuid.Nil {
		location.ID = uuid.New()
	}
	if location.CreatedAt.IsZero() {
		location.CreatedAt = now
	}
	if location.Status == "" {
		location.Status = domain.StatusActive
	}
	location.UpdatedAt = now

	query := `
	INSERT INTO locations (id, photographer_id, zip_code, country, state, city, street, point, status, created_at, updated_at)
	VALUES (:id, :photographer_id, :zip_code, :country, :state, :city, :street, ST_GeogFromText(:point), :status, :created_at, :updated_at)
	ON CONFLICT (id) DO UPDATE SET
		zip_code = EXCLUDED.zip_code,
		country = EXCLUDED.country,
		state = EXCLUDED.state,
		city = EXCLUDED.city,
		street = EXCLUDED.street,
		point = COALESCE(EXCLUDED.point, locations.point),
		status = EXCLUDED.status,
		updated_at = EXCLUDED.updated_at
	`

	if _, err := s.db.NamedExecContext(ctx, query, newLocationRow(location)); err != nil {
		s.logger.Error("failed to save location", "id", location.ID, "error", err)
		return fmt.Errorf("save location: %w", err)
	}

	s.logger.Info("location saved",
		"id", location.ID,
		"photographer_id", location.PhotographerID,
		"has_point", location.HasPoint(),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return nil
}

// GetLocationByID получает адрес по ID
func (s *LocationStorage) GetLocationByID(ctx context.Context, id uuid.UUID) (*domain.Location, error) {
	var row locationRow
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1 LIMIT 1`

	if err := s.db.GetContext(ctx, &row, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			s.logger.Warn("location not found by id", "id", id)
			return nil, domain.ErrNotFound
		}
		s.logger.Error("failed to get location by id", "id", id, "error", err)
		return nil, fmt.Errorf("get location by id: %w", err)
	}

	l := row.toDomain()
	return &l, nil
}

// UpdateLocationPoint записывает определенную воркером точку.
func (s *LocationStorage) UpdateLocationPoint(ctx context.Context, id uuid.UUID, point domain.Point) error {
	if !point.Valid() {
		return fmt.Errorf("update location point: invalid point %v", point)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE locations SET point = ST_GeogFromText($1), updated_at = now() WHERE id = $2`,
		point.EWKT(), id,
	)
	if err != nil {
		s.logger.Error("failed to update location point", "id", id, "error", err)
		return fmt.Errorf("update location point: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// LocationsWithin выбирает адреса с точкой в радиусе radiusKm от origin,
// ближайшие первыми; при равном расстоянии — в порядке создания.
func (s *LocationStorage) LocationsWithin(ctx context.Context, origin domain.Point, radiusKm float64) ([]domain.Location, error) {
	start := time.Now()

	q := `
	SELECT ` + locationColumns + `,
		ST_Distance(point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography) / 1000.0 AS distance_km
	FROM locations
	WHERE point IS NOT NULL
	  AND status = 'active'
	  AND ST_DWithin(point, ST_SetSRID(ST_MakePoint($1, $2), 4326)::geography, $3)
	ORDER BY distance_km ASC, created_at ASC
	`

	var rows []locationRow
	if err := s.db.SelectContext(ctx, &rows, q, origin.Lng, origin.Lat, radiusKm*1000); err != nil {
		s.logger.Error("failed to select locations within radius",
			"lat", origin.Lat,
			"lng", origin.Lng,
			"radius_km", radiusKm,
			"error", err,
		)
		return nil, fmt.Errorf("select locations within radius: %w", err)
	}

	locations := make([]domain.Location, 0, len(rows))
	for _, r := range rows {
		locations = append(locations, r.toDomain())
	}

	s.logger.Info("locations within radius selected",
		"radius_km", radiusKm,
		"found", len(locations),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return locations, nil
}

// LocationsByPhotographers получает все адреса указанных фотографов
func (s *LocationStorage) LocationsByPhotographers(ctx context.Context, photographerIDs []uuid.UUID) ([]domain.Location, error) {
	if len(photographerIDs) == 0 {
		return []domain.Location{}, nil
	}

	q := `SELECT ` + locationColumns + ` FROM locations
	WHERE photographer_id = ANY($1::uuid[]) AND status = 'active'
	ORDER BY created_at ASC`

	var rows []locationRow
	if err := s.db.SelectContext(ctx, &rows, q, pq.Array(uuidStrings(photographerIDs))); err != nil {
		s.logger.Error("failed to select photographer locations", "count", len(photographerIDs), "error", err)
		return nil, fmt.Errorf("select photographer locations: %w", err)
	}

	locations := make([]domain.Location, 0, len(rows))
	for _, r := range rows {
		locations = append(locations, r.toDomain())
	}
	return locations, nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
