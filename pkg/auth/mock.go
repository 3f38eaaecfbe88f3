package auth

import (
	"net/http"

	"github.com/securebi/securebi-backend/pkg/service"
)

var MockUser = service.User{
	ID: "mock-user",
}

// MockMiddleware injects MockUser regardless of the request headers.
func MockMiddleware() MiddlewareHandler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := MockUser

			next.ServeHTTP(w, r.WithContext(SetUser(r.Context(), &user)))
		})
	}
}
