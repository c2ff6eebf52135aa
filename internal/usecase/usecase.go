package usecase

import (
	"context"
	"io"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/GoArmGo/PhotoBase/internal/messaging/payloads"
	"github.com/google/uuid"
)

// GeoQuery — сырые параметры геопоиска из формы; возвращаются клиенту как есть.
type GeoQuery struct {
	Lat   string `json:"lat"`
	Lng   string `json:"lng"`
	Name  string `json:"name"`
	Range string `json:"range"`
}

// SearchRequest — запрос пакета фото рядом с точкой.
type SearchRequest struct {
	Geo       GeoQuery
	Category  string
	Page      int
	Requester domain.Requester
}

// SearchResult — пакет фото; Total заполняется только для нулевой страницы.
type SearchResult struct {
	Photos []domain.Photo `json:"photos"`
	Geo    GeoQuery       `json:"geo"`
	Total  *int           `json:"total,omitempty"`
}

// PhotographersByPhotoRequest — запрос фотографов по понравившимся фото.
type PhotographersByPhotoRequest struct {
	PhotoIDs  []uuid.UUID
	Lat       string
	Lng       string
	Requester domain.Requester
}

// PhotographersResult — фотографы с расстоянием до точки запроса у каждого адреса.
type PhotographersResult struct {
	Photographers []domain.Photographer `json:"photographers"`
	HiddenIDs     []uuid.UUID           `json:"hidden_ids"`
	Scale         float64               `json:"scale"`
	Point         *domain.Point         `json:"point,omitempty"`
}

// ZipSearchResult — фотографы по префиксу почтового индекса.
type ZipSearchResult struct {
	Photographers []domain.Photographer `json:"photographers"`
	HiddenIDs     []uuid.UUID           `json:"hidden_ids"`
}

// SearchDefaults — значения формы поиска по умолчанию.
type SearchDefaults struct {
	Range    int    `json:"range"`
	Category string `json:"category"`
	Name     string `json:"name"`
}

// HomePage — стартовая страница: случайные фото и все категории.
type HomePage struct {
	Photos     []domain.Photo    `json:"photos"`
	Categories []domain.Category `json:"categories"`
	Defaults   SearchDefaults    `json:"search_defaults"`
}

// PhotoItem — элемент read API.
type PhotoItem struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Image       string    `json:"image"`
}

// PhotoPage — страница read API.
type PhotoPage struct {
	Items    []PhotoItem `json:"results"`
	Page     int         `json:"page"`
	NumPages int         `json:"num_pages"`
	Total    int         `json:"count"`
}

// SearchUseCase определяет поиск фото и фотографов
type SearchUseCase interface {
	Home(ctx context.Context) (*HomePage, error)

	// SearchPhotos — поиск по близости; без координат возвращает пустой
	// результат, не обращаясь к хранилищу.
	SearchPhotos(ctx context.Context, req SearchRequest) (*SearchResult, error)

	// PhotographersByPhoto записывает лайк на каждое фото и возвращает их владельцев.
	PhotographersByPhoto(ctx context.Context, req PhotographersByPhotoRequest) (*PhotographersResult, error)
	PhotographersByZip(ctx context.Context, zipPrefix string, hiddenIDs []uuid.UUID) (*ZipSearchResult, error)
	PhotoPage(ctx context.Context, rawPage string) (*PhotoPage, error)
}

// MetricsRecorder пишет лайки и показы.
type MetricsRecorder interface {
	RecordLikes(ctx context.Context, photoIDs []uuid.UUID, requester domain.Requester) error
	RecordImpressions(ctx context.Context, photos []domain.Photo, requester domain.Requester) error
}

// AddressInput — адрес из формы вместе с необязательными координатами.
type AddressInput struct {
	Street  string `json:"street" validate:"max=255"`
	City    string `json:"city" validate:"max=255"`
	State   string `json:"state" validate:"max=255"`
	ZipCode string `json:"zip_code" validate:"required,max=10"`
	Country string `json:"country" validate:"max=255"`
	Lat     string `json:"lat"`
	Lng     string `json:"lng"`
}

// LocationResolver определяет точку адреса: из явных координат или через геокодер.
type LocationResolver interface {
	// Resolve никогда не возвращает ошибку геокодирования: при неудаче точка nil.
	Resolve(ctx context.Context, in AddressInput) *domain.Point

	// AfterSave ставит задачу воркеру, если адрес сохранен без точки.
	AfterSave(ctx context.Context, location *domain.Location)
}

// RegisterInput — форма регистрации фотографа.
type RegisterInput struct {
	Username     string   `validate:"required,min=3,max=150"`
	Email        string   `validate:"required,email"`
	Password     string   `validate:"required,min=8"`
	FirstName    string   `validate:"max=30"`
	LastName     string   `validate:"max=30"`
	CompanyName  string   `validate:"required,max=255"`
	Website      string   `validate:"omitempty,max=100"`
	PhoneNumber  string   `validate:"omitempty,e164"`
	MobileNumber string   `validate:"required,e164"`
	VATNumber    string   `validate:"max=100"`
	BirthDate    string   `validate:"required,datetime=2006-01-02"`
	NewsLetter   bool     `validate:"-"`
	Categories   []string `validate:"-"`
	Address      AddressInput
}

// PersonalInput — форма персональных настроек.
type PersonalInput struct {
	Email        string `validate:"required,email"`
	FirstName    string `validate:"max=30"`
	LastName     string `validate:"max=30"`
	CompanyName  string `validate:"required,max=255"`
	Website      string `validate:"omitempty,max=100"`
	PhoneNumber  string `validate:"omitempty,e164"`
	MobileNumber string `validate:"required,e164"`
	NewsLetter   bool   `validate:"-"`
}

// AccountUseCase определяет регистрацию и вход
type AccountUseCase interface {
	Register(ctx context.Context, in RegisterInput) (*domain.User, error)

	// Authenticate проверяет логин и пароль; неверная пара дает ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}

// Scoreboard — статистика фотографа в панели.
type Scoreboard struct {
	Photographer *domain.Photographer `json:"photographer"`
	Likes        int64                `json:"likes"`
	Impressions  int64                `json:"impressions"`
	Subscription *domain.Subscription `json:"subscription,omitempty"`
}

// Portfolio — сводка портфолио.
type Portfolio struct {
	Photos     int64                  `json:"photos"`
	TopPhotos  []domain.RankedPhoto   `json:"top_photos"`
	Categories []domain.CategoryCount `json:"categories"`
}

// CategoryDetail — категория фотографа и его фото в ней.
type CategoryDetail struct {
	Category domain.Category `json:"category"`
	Photos   []domain.Photo  `json:"photos"`
	Cover    *domain.Photo   `json:"cover,omitempty"`
}

// UploadInput — загружаемое изображение и его описание.
type UploadInput struct {
	Title       string    `validate:"max=100"`
	Description string    `validate:"max=255"`
	Categories  []string  `validate:"-"`
	FileName    string    `validate:"required"`
	ContentType string    `validate:"required"`
	Content     io.Reader `validate:"-"`
}

// PhotoInput — редактируемые поля фото.
type PhotoInput struct {
	Title       string   `validate:"max=100"`
	Description string   `validate:"max=255"`
	Categories  []string `validate:"-"`
}

// PortfolioUseCase определяет панель фотографа; все методы работают
// от имени владельца учетной записи userID.
type PortfolioUseCase interface {
	Personal(ctx context.Context, userID uuid.UUID) (*domain.Photographer, error)
	UpdatePersonal(ctx context.Context, userID uuid.UUID, in PersonalInput) (*domain.Photographer, error)
	AddLocation(ctx context.Context, userID uuid.UUID, in AddressInput) (*domain.Location, error)
	Scoreboard(ctx context.Context, userID uuid.UUID, today time.Time) (*Scoreboard, error)
	Portfolio(ctx context.Context, userID uuid.UUID) (*Portfolio, error)
	CategoryDetail(ctx context.Context, userID, categoryID uuid.UUID) (*CategoryDetail, error)
	Categories(ctx context.Context) ([]domain.Category, error)
	Upload(ctx context.Context, userID uuid.UUID, in UploadInput) (*domain.Photo, error)
	UpdatePhoto(ctx context.Context, userID, photoID uuid.UUID, in PhotoInput) (*domain.Photo, error)
	DeletePhoto(ctx context.Context, userID, photoID uuid.UUID) error
}

// GeocodeUseCase обрабатывает задачи воркера
type GeocodeUseCase interface {
	HandleGeocodeRequest(ctx context.Context, payload payloads.GeocodePayload) error
}
