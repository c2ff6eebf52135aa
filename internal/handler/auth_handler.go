package handler

import (
	"log/slog"
	"net/http"

	"github.com/GoArmGo/PhotoBase/internal/usecase"
)

// AuthHandler — регистрация, вход и выход.
type AuthHandler struct {
	accounts usecase.AccountUseCase
	sessions *SessionManager
	logger   *slog.Logger
}

func NewAuthHandler(accounts usecase.AccountUseCase, sessions *SessionManager, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{accounts: accounts, sessions: sessions, logger: logger}
}

// Register создает пользователя, профиль фотографа и первый адрес,
// после чего сразу авторизует пользователя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed form", h.logger)
		return
	}
	f := r.PostForm

	in := usecase.RegisterInput{
		Username:     f.Get("username"),
		Email:        f.Get("email"),
		Password:     f.Get("password"),
		FirstName:    f.Get("first_name"),
		LastName:     f.Get("last_name"),
		CompanyName:  f.Get("company_name"),
		Website:      f.Get("website"),
		PhoneNumber:  f.Get("phone_number"),
		MobileNumber: f.Get("mobile_number"),
		VATNumber:    f.Get("vat_number"),
		BirthDate:    f.Get("birth_date"),
		NewsLetter:   f.Get("news_letter") != "",
		Categories:   formList(r, "categories"),
		Address: usecase.AddressInput{
			Street:  f.Get("street"),
			City:    f.Get("city"),
			State:   f.Get("state"),
			ZipCode: f.Get("zip_code"),
			Country: f.Get("country"),
			Lat:     f.Get("lat"),
			Lng:     f.Get("lng"),
		},
	}

	user, err := h.accounts.Register(r.Context(), in)
	if err != nil {
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	if err := h.sessions.Login(w, r, user.ID); err != nil {
		h.logger.Error("failed to save session", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error", h.logger)
		return
	}

	h.logger.Info("photographer registered", "user_id", user.ID, "username", user.Username)
	respondWithJSON(w, http.StatusCreated, user, h.logger)
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondWithError(w, http.StatusBadRequest, "malformed form", h.logger)
		return
	}

	user, err := h.accounts.Authenticate(r.Context(), r.PostForm.Get("username"), r.PostForm.Get("password"))
	if err != nil {
		h.logger.Warn("login failed", "username", r.PostForm.Get("username"), "error", err)
		respondWithUseCaseError(w, err, h.logger)
		return
	}

	if err := h.sessions.Login(w, r, user.ID); err != nil {
		h.logger.Error("failed to save session", "user_id", user.ID, "error", err)
		respondWithError(w, http.StatusInternalServerError, "internal server error", h.logger)
		return
	}
	respondWithJSON(w, http.StatusOK, user, h.logger)
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(w, r); err != nil {
		h.logger.Error("failed to clear session", "error", err)
	}
	respondWithJSON(w, http.StatusOK, map[string]string{"message": "logged out"}, h.logger)
}
