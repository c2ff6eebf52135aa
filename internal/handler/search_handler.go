package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/PhotoBase/internal/pagination"
	"github.com/GoArmGo/PhotoBase/internal/usecase"
)

// SearchHandler — публичные страницы: поиск фото и фотографов, read API.
type SearchHandler struct {
	search usecase.SearchUseCase
	logger *slog.Logger
}

func NewSearchHandler(search usecase.SearchUseCase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{search: search, logger: logger}
}

// Home — стартовая страница со случайными фото и категориями.
func (h *SearchHandler) Home(w http.ResponseWriter, r *http.Request) {
	page, err := h.search.Home(r.Context())
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, page, h.logger)
}

// PartialPhotos — пакет фото рядом с точкой из формы geo[...].
func (h *SearchHandler) PartialPhotos(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed form", h.logger)
		return
	}

	req := usecase.SearchRequest{
		Geo: usecase.GeoQuery{
			Lat:   r.PostForm.Get("geo[lat]"),
			Lng:   r.PostForm.Get("geo[lng]"),
			Name:  r.PostForm.Get("geo[name]"),
			Range: r.PostForm.Get("geo[range]"),
		},
		Category:  r.PostForm.Get("category"),
		Page:      pagination.ParseBatchIndex(r.PostForm.Get("page")),
		Requester: requesterFrom(r),
	}

	h.logger.Debug("searching photos", "lat", req.Geo.Lat, "lng", req.Geo.Lng, "range", req.Geo.Range, "category", req.Category, "page", req.Page)

	result, err := h.search.SearchPhotos(r.Context(), req)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, result, h.logger)
}

// Photographers — владельцы понравившихся фото; каждое фото получает лайк.
func (h *SearchHandler) Photographers(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed form", h.logger)
		return
	}

	ids, err := parseUUIDs(r.PostForm["ids"])
	if err != nil {
		respondWithFieldError(w, "ids", "Enter a comma-separated list of photo ids.", h.logger)
		return
	}

	result, err := h.search.PhotographersByPhoto(r.Context(), usecase.PhotographersByPhotoRequest{
		PhotoIDs:  ids,
		Lat:       r.PostForm.Get("lat"),
		Lng:       r.PostForm.Get("lng"),
		Requester: requesterFrom(r),
	})
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, result, h.logger)
}

// PartialPhotographers — поиск фотографов по началу почтового индекса.
func (h *SearchHandler) PartialPhotographers(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed form", h.logger)
		return
	}

	hidden, err := parseUUIDs(r.PostForm["hidden_ids[]"])
	if err != nil {
		respondWithFieldError(w, "hidden_ids", "Enter valid photo ids.", h.logger)
		return
	}

	result, err := h.search.PhotographersByZip(r.Context(), r.PostForm.Get("query_string"), hidden)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, result, h.logger)
}

// APIPhotos — постраничный список активных фото.
func (h *SearchHandler) APIPhotos(w http.ResponseWriter, r *http.Request) {
	page, err := h.search.PhotoPage(r.Context(), r.URL.Query().Get("page"))
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, page, h.logger)
}
