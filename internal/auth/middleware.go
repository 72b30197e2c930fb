package auth

import (
	"net/http"
	"strings"

	"github.com/taskhive/taskhive/internal/platform/httpx"
)

const bearerPrefix = "Bearer "

// Middleware resolves the bearer credential on every request and stores the
// live user record in the request context. Missing header, wrong scheme,
// invalid token and vanished user all collapse to the same 401.
func Middleware(service *Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if len(header) < len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				httpx.RespondError(w, httpx.ErrUnauthenticated)
				return
			}
			user, err := service.Resolve(r.Context(), header[len(bearerPrefix):])
			if err != nil {
				httpx.RespondError(w, err)
				return
			}
			next.ServeHTTP(w, r.WithContext(ContextWithUser(r.Context(), user)))
		})
	}
}
