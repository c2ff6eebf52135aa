package handler

import (
	"context"
	"log/slog"
	"net"
	"net/http"

	"github.com/GoArmGo/PhotoBase/internal/domain"
	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

const (
	sessionName   = "photobase_session"
	sessionUserID = "user_id"
)

type ctxKey int

const userIDKey ctxKey = iota

// SessionManager хранит идентификатор пользователя в подписанной cookie.
type SessionManager struct {
	store  sessions.Store
	logger *slog.Logger
}

func NewSessionManager(secret string, maxAge int, secure bool, logger *slog.Logger) *SessionManager {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return &SessionManager{store: store, logger: logger}
}

// Login сохраняет пользователя в сессии.
func (m *SessionManager) Login(w http.ResponseWriter, r *http.Request, userID uuid.UUID) error {
	session, _ := m.store.Get(r, sessionName)
	session.Values[sessionUserID] = userID.String()
	return session.Save(r, w)
}

// Logout удаляет cookie сессии.
func (m *SessionManager) Logout(w http.ResponseWriter, r *http.Request) error {
	session, _ := m.store.Get(r, sessionName)
	delete(session.Values, sessionUserID)
	session.Options.MaxAge = -1
	return session.Save(r, w)
}

// LoadUser кладет id пользователя из сессии в контекст запроса.
// Поврежденная или чужая cookie просто игнорируется.
func (m *SessionManager) LoadUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, err := m.store.Get(r, sessionName)
		if err != nil {
			m.logger.Debug("ignoring invalid session cookie", "error", err)
			next.ServeHTTP(w, r)
			return
		}

		raw, _ := session.Values[sessionUserID].(string)
		if id, err := uuid.Parse(raw); err == nil {
			r = r.WithContext(context.WithValue(r.Context(), userIDKey, id))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireLogin отвечает 401 анонимным пользователям.
func RequireLogin(logger *slog.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := UserIDFromContext(r.Context()); !ok {
				respondWithError(w, http.StatusUnauthorized, "login required", logger)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	id, ok := ctx.Value(userIDKey).(uuid.UUID)
	return id, ok
}

// requesterFrom собирает автора запроса для метрик. RemoteAddr уже
// переписан middleware.RealIP, если прокси передал заголовок.
func requesterFrom(r *http.Request) domain.Requester {
	ip := r.RemoteAddr
	if host, _, err := net.SplitHostPort(ip); err == nil {
		ip = host
	}

	req := domain.Requester{IP: ip}
	if id, ok := UserIDFromContext(r.Context()); ok {
		req.UserID = &id
	}
	return req
}
