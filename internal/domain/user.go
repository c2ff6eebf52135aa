package domain

import (
	"time"

	"github.com/google/uuid"
)

// User представляет учетную запись пользователя.
// Соответствует таблице 'users' в базе данных.
type User struct {
	ID           uuid.UUID `json:"id" db:"id" gorm:"type:uuid;primaryKey"`
	Username     string    `json:"username" db:"username"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

func (User) TableName() string {
	return "users"
}

// Requester описывает того, кто выполняет запрос: пользователь (если
// авторизован) и IP-адрес источника.
type Requester struct {
	UserID *uuid.UUID
	IP     string
}
