package domain

// Status — явный тег видимости записи (фото, фотограф).
// Каждый запрос, выбирающий "активные" наборы, обязан проверять его сам.
type Status string

const (
	StatusActive   Status = "active"
	StatusDisabled Status = "disabled"
	StatusDeleted  Status = "deleted"
)

// IsActive сообщает, видна ли запись в активных выборках.
func (s Status) IsActive() bool {
	return s == StatusActive
}

// Valid проверяет, что значение входит в допустимый набор.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusDisabled, StatusDeleted:
		return true
	}
	return false
}
