package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/google/uuid"
)

// respondWithJSON — отправляет JSON-ответ клиенту.
func respondWithJSON(w http.ResponseWriter, code int, payload interface{}, logger *slog.Logger) {
	response, err := json.Marshal(payload)
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		logger.Error("failed to marshal JSON response", "error", err)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err = w.Write(response); err != nil {
		logger.Error("failed to write HTTP response", "error", err)
	}
}

// respondWithError — отправляет JSON-ответ с ошибкой.
func respondWithError(w http.ResponseWriter, code int, message string, logger *slog.Logger) {
	respondWithJSON(w, code, map[string]string{"error": message}, logger)
}

// respondWithUseCaseError переводит ошибку бизнес-логики в HTTP-статус.
// Инфраструктурные ошибки логируются и отдаются клиенту без подробностей.
func respondWithUseCaseError(w http.ResponseWriter, err error, logger *slog.Logger) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		respondWithJSON(w, http.StatusUnprocessableEntity, map[string]any{"errors": verr.Fields}, logger)
	case errors.Is(err, domain.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not found", logger)
	case errors.Is(err, domain.ErrForbidden):
		respondWithError(w, http.StatusUnauthorized, "permission denied", logger)
	case errors.Is(err, domain.ErrInvalidCredentials):
		respondWithError(w, http.StatusUnauthorized, err.Error(), logger)
	default:
		logger.Error("request failed", "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error", logger)
	}
}

func respondWithFieldError(w http.ResponseWriter, field, message string, logger *slog.Logger) {
	verr := domain.NewValidationError()
	verr.Add(field, message)
	respondWithUseCaseError(w, verr, logger)
}

// parseUUIDs принимает как повторяющиеся значения, так и список через запятую.
func parseUUIDs(values []string) ([]uuid.UUID, error) {
	ids := make([]uuid.UUID, 0, len(values))
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}
			id, err := uuid.Parse(part)
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
	}
	return ids, nil
}

// formList — значения поля формы; поле categories допускает и список через запятую.
func formList(r *http.Request, key string) []string {
	var out []string
	for _, v := range r.Form[key] {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}
