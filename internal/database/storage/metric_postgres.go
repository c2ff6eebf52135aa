package storage

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

// MetricStorage пишет лайки и показы. Каждая вставка — отдельная
// атомарная операция, общей транзакции на запрос нет.
type MetricStorage struct {
	db     *sqlx.DB
	logger *slog.Logger
}

func NewMetricStorage(db *sqlx.DB, logger *slog.Logger) *MetricStorage {
	return &MetricStorage{db: db, logger: logger}
}

func metricTable(kind domain.MetricKind) (string, error) {
	table := kind.Table()
	if table == "" {
		return "", fmt.Errorf("unknown metric kind %q", kind)
	}
	return table, nil
}

// AppendMetric добавляет событие в журнал
func (s *MetricStorage) AppendMetric(ctx context.Context, kind domain.MetricKind, event *domain.MetricEvent) error {
	table, err := metricTable(kind)
	if err != nil {
		return err
	}
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, photo_id, user_id, ip, created_at)
	VALUES (:id, :photo_id, :user_id, :ip, :created_at)`, table)

	if _, err := s.db.NamedExecContext(ctx, query, event); err != nil {
		s.logger.Error("failed to append metric", "kind", kind, "photo_id", event.PhotoID, "error", err)
		return fmt.Errorf("append %s: %w", kind, err)
	}

	s.logger.Debug("metric appended", "kind", kind, "photo_id", event.PhotoID, "ip", event.IP)
	return nil
}

// CountPhotographerMetrics считает события по всем фото фотографа
func (s *MetricStorage) CountPhotographerMetrics(ctx context.Context, kind domain.MetricKind, photographerID uuid.UUID) (int64, error) {
	table, err := metricTable(kind)
	if err != nil {
		return 0, err
	}

	var count int64
	q := fmt.Sprintf(`SELECT COUNT(*) FROM %s m
	JOIN photos p ON p.id = m.photo_id
	WHERE p.photographer_id = $1`, table)
	if err := s.db.GetContext(ctx, &count, q, photographerID); err != nil {
		s.logger.Error("failed to count photographer metrics", "kind", kind, "photographer_id", photographerID, "error", err)
		return 0, fmt.Errorf("count %s for photographer: %w", kind, err)
	}
	return count, nil
}
