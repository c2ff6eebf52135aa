package domain

import (
	"time"

	"github.com/google/uuid"
)

// Subscription — тарифный план с лимитами на фото и лайки.
type Subscription struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Likes       int       `json:"likes"`
	Photos      int       `json:"photos"`
	Price       int       `json:"price"`
	IsPremium   bool      `json:"is_premium"`
	Disabled    bool      `json:"-"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// PhotographerSubscription привязывает план к фотографу на период.
type PhotographerSubscription struct {
	ID             uuid.UUID     `json:"id" gorm:"type:uuid;primaryKey"`
	Program        string        `json:"program"`
	Start          time.Time     `json:"start" gorm:"type:date"`
	End            time.Time     `json:"end" gorm:"type:date"`
	Disabled       bool          `json:"-"`
	PhotographerID uuid.UUID     `json:"photographer_id" gorm:"type:uuid"`
	SubscriptionID uuid.UUID     `json:"subscription_id" gorm:"type:uuid"`
	Subscription   *Subscription `json:"subscription,omitempty" gorm:"foreignKey:SubscriptionID"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

func (PhotographerSubscription) TableName() string {
	return "photographer_subscriptions"
}

// IsCurrent: подписка действует, если start <= day <= end и она не отключена.
func (s PhotographerSubscription) IsCurrent(day time.Time) bool {
	if s.Disabled {
		return false
	}
	d := truncateDay(day)
	return !truncateDay(s.Start).After(d) && !truncateDay(s.End).Before(d)
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
