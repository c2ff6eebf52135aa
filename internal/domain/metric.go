package domain

import (
	"time"

	"github.com/google/uuid"
)

// MetricKind различает виды событий по фото.
type MetricKind string

const (
	MetricLike       MetricKind = "like"
	MetricImpression MetricKind = "impression"
)

// Table возвращает таблицу, в которую пишутся события данного вида.
func (k MetricKind) Table() string {
	switch k {
	case MetricLike:
		return "likes"
	case MetricImpression:
		return "impressions"
	}
	return ""
}

// MetricEvent — запись о лайке или показе фото. Только добавляется,
// никогда не обновляется.
type MetricEvent struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	PhotoID   uuid.UUID  `json:"photo_id" db:"photo_id"`
	UserID    *uuid.UUID `json:"user_id,omitempty" db:"user_id"`
	IP        string     `json:"ip" db:"ip"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`
}

// NewMetricEvent создает событие по фото от имени запросившего.
func NewMetricEvent(photoID uuid.UUID, requester Requester) *MetricEvent {
	return &MetricEvent{
		ID:        uuid.New(),
		PhotoID:   photoID,
		UserID:    requester.UserID,
		IP:        requester.IP,
		CreatedAt: time.Now(),
	}
}
