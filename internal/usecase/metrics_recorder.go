package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/GoArmGo/PhotoBase/internal/core/ports"
	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/GoArmGo/PhotoBase/internal/metrics"
	"github.com/google/uuid"
)

// metricsRecorder — только вставки, без дедупликации: каждый вызов
// добавляет по событию на фото.
type metricsRecorder struct {
	storage ports.MetricStorage
	logger  *slog.Logger
}

func NewMetricsRecorder(storage ports.MetricStorage, logger *slog.Logger) MetricsRecorder {
	return &metricsRecorder{storage: storage, logger: logger}
}

func (r *metricsRecorder) RecordLikes(ctx context.Context, photoIDs []uuid.UUID, requester domain.Requester) error {
	for _, id := range photoIDs {
		if err := r.record(ctx, domain.MetricLike, id, requester); err != nil {
			return err
		}
	}
	return nil
}

func (r *metricsRecorder) RecordImpressions(ctx context.Context, photos []domain.Photo, requester domain.Requester) error {
	for _, p := range photos {
		if err := r.record(ctx, domain.MetricImpression, p.ID, requester); err != nil {
			return err
		}
	}
	return nil
}

func (r *metricsRecorder) record(ctx context.Context, kind domain.MetricKind, photoID uuid.UUID, requester domain.Requester) error {
	if err := r.storage.AppendMetric(ctx, kind, domain.NewMetricEvent(photoID, requester)); err != nil {
		return fmt.Errorf("usecase: record %s for photo %s: %w", kind, photoID, err)
	}
	metrics.PhotoEventsTotal.WithLabelValues(string(kind)).Inc()
	return nil
}
