package auth

import (
	"context"
	"net/http"
	"strings"

	"github.com/rs/zerolog"
	"github.com/securebi/securebi-backend/pkg/service"
)

const (
	// UserIDHeader carries the identity of the caller.
	UserIDHeader = "x-user-id"
	// DefaultUserID is used when the caller does not identify itself.
	DefaultUserID = "user-1"
)

type MiddlewareHandler func(http.Handler) http.Handler

type contextKey int

const ContextUserKey contextKey = 1

func GetUser(ctx context.Context) *service.User {
	user := ctx.Value(ContextUserKey)
	if user == nil {
		return nil
	}

	return user.(*service.User)
}

func SetUser(ctx context.Context, user *service.User) context.Context {
	return context.WithValue(ctx, ContextUserKey, user)
}

type Middleware struct {
	defaultUserID string
	log           zerolog.Logger
}

func (m *Middleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(UserIDHeader))
		if id == "" {
			id = m.defaultUserID
		}

		m.log.Debug().Str("user_id", id).Str("path", r.URL.Path).Msg("identified caller")

		next.ServeHTTP(w, r.WithContext(SetUser(r.Context(), &service.User{ID: id})))
	})
}

func NewMiddleware(defaultUserID string, log zerolog.Logger) *Middleware {
	if defaultUserID == "" {
		defaultUserID = DefaultUserID
	}

	return &Middleware{
		defaultUserID: defaultUserID,
		log:           log,
	}
}
