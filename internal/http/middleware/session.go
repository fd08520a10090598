package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/manoj8056887579/careerhq-sub001/internal/common"
	"github.com/manoj8056887579/careerhq-sub001/internal/http/response"
	"github.com/manoj8056887579/careerhq-sub001/internal/security"
)

type contextKey string

const ContextAccountIDKey contextKey = "account_id"

// SessionCookie is the name of the admin session cookie.
const SessionCookie = "chq_session"

type SessionMiddleware struct {
	sessions *security.SessionProvider
	secure   bool
}

func NewSessionMiddleware(sessions *security.SessionProvider, secure bool) *SessionMiddleware {
	return &SessionMiddleware{sessions: sessions, secure: secure}
}

// Authenticate requires a valid session cookie. A missing, expired or
// tampered cookie all produce the same unauthorized response; the
// verification error is never exposed.
func (m *SessionMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(SessionCookie)
		if err != nil || cookie.Value == "" {
			response.Error(w, common.NewError(common.CodeUnauthorized, "authentication required", nil))
			return
		}
		claims, err := m.sessions.Parse(cookie.Value)
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "authentication required", nil))
			return
		}
		accountID, err := common.ParseUUID(claims.AccountID)
		if err != nil {
			response.Error(w, common.NewError(common.CodeUnauthorized, "authentication required", nil))
			return
		}
		ctx := context.WithValue(r.Context(), ContextAccountIDKey, accountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *SessionMiddleware) SetCookie(w http.ResponseWriter, token string, expiresAt time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    token,
		Path:     "/",
		Expires:  expiresAt,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func (m *SessionMiddleware) ClearCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     SessionCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   m.secure,
		SameSite: http.SameSiteLaxMode,
	})
}

func AccountIDFromContext(ctx context.Context) (common.UUID, bool) {
	id, ok := ctx.Value(ContextAccountIDKey).(common.UUID)
	return id, ok
}
