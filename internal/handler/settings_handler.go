package handler

import (
	"log/slog"
	"mime"
	"net/http"
	"path"
	"time"

	"github.com/GoArmGo/PhotoBase/internal/usecase"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// SettingsHandler — панель фотографа. Все маршруты за RequireLogin.
type SettingsHandler struct {
	portfolio     usecase.PortfolioUseCase
	uploadLimiter chan struct{}
	maxUpload     int64
	now           func() time.Time
	logger        *slog.Logger
}

// NewSettingsHandler создаёт обработчик панели; limiter ограничивает
// число одновременных загрузок изображений.
func NewSettingsHandler(portfolio usecase.PortfolioUseCase, limiter chan struct{}, maxUpload int64, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		portfolio:     portfolio,
		uploadLimiter: limiter,
		maxUpload:     maxUpload,
		now:           time.Now,
		logger:        logger,
	}
}

// userID вызывается только за RequireLogin.
func userID(r *http.Request) uuid.UUID {
	id, _ := UserIDFromContext(r.Context())
	return id
}

func (h *SettingsHandler) Personal(w http.ResponseWriter, r *http.Request) {
	p, err := h.portfolio.Personal(r.Context(), userID(r))
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, p, h.logger)
}

func (h *SettingsHandler) UpdatePersonal(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed form", h.logger)
		return
	}
	f := r.PostForm

	p, err := h.portfolio.UpdatePersonal(r.Context(), userID(r), usecase.PersonalInput{
		Email:        f.Get("email"),
		FirstName:    f.Get("first_name"),
		LastName:     f.Get("last_name"),
		CompanyName:  f.Get("company_name"),
		Website:      f.Get("website"),
		PhoneNumber:  f.Get("phone_number"),
		MobileNumber: f.Get("mobile_number"),
		NewsLetter:   f.Get("news_letter") != "",
	})
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, p, h.logger)
}

// AddLocation — новый адрес фотографа; lat/lng необязательны.
func (h *SettingsHandler) AddLocation(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed form", h.logger)
		return
	}
	f := r.PostForm

	location, err := h.portfolio.AddLocation(r.Context(), userID(r), usecase.AddressInput{
		Street:  f.Get("street"),
		City:    f.Get("city"),
		State:   f.Get("state"),
		ZipCode: f.Get("zip_code"),
		Country: f.Get("country"),
		Lat:     f.Get("lat"),
		Lng:     f.Get("lng"),
	})
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, location, h.logger)
}

func (h *SettingsHandler) Scoreboard(w http.ResponseWriter, r *http.Request) {
	board, err := h.portfolio.Scoreboard(r.Context(), userID(r), h.now())
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, board, h.logger)
}

func (h *SettingsHandler) Portfolio(w http.ResponseWriter, r *http.Request) {
	p, err := h.portfolio.Portfolio(r.Context(), userID(r))
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, p, h.logger)
}

// CategoryDetail — /settings/portfolio/category/{id}/{slug}; slug в url только для читаемости.
func (h *SettingsHandler) CategoryDetail(w http.ResponseWriter, r *http.Request) {
	categoryID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "not found", h.logger)
		return
	}

	detail, err := h.portfolio.CategoryDetail(r.Context(), userID(r), categoryID)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, detail, h.logger)
}

// Upload принимает multipart-форму с полем image.
func (h *SettingsHandler) Upload(w http.ResponseWriter, r *http.Request) {
	select {
	case h.uploadLimiter <- struct{}{}:
		defer func() { <-h.uploadLimiter }()
	case <-r.Context().Done():
		respondWithError(w, http.StatusServiceUnavailable, "upload queue is full", h.logger)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxUpload)
	if err := r.ParseMultipartForm(h.maxUpload); err != nil {
		respondWithFieldError(w, "image", "Upload a valid image.", h.logger)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		respondWithFieldError(w, "image", "This field is required.", h.logger)
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if contentType == "" || contentType == "application/octet-stream" {
		contentType = mime.TypeByExtension(path.Ext(header.Filename))
	}

	photo, err := h.portfolio.Upload(r.Context(), userID(r), usecase.UploadInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Categories:  formList(r, "categories"),
		FileName:    header.Filename,
		ContentType: contentType,
		Content:     file,
	})
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusCreated, photo, h.logger)
}

func (h *SettingsHandler) EditPhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "not found", h.logger)
		return
	}
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed form", h.logger)
		return
	}

	photo, err := h.portfolio.UpdatePhoto(r.Context(), userID(r), photoID, usecase.PhotoInput{
		Title:       r.PostForm.Get("title"),
		Description: r.PostForm.Get("description"),
		Categories:  formList(r, "categories"),
	})
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, photo, h.logger)
}

func (h *SettingsHandler) DeletePhoto(w http.ResponseWriter, r *http.Request) {
	photoID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		respondWithError(w, http.StatusNotFound, "not found", h.logger)
		return
	}

	if err := h.portfolio.DeletePhoto(r.Context(), userID(r), photoID); err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "photo deleted"}, h.logger)
}
