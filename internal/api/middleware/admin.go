package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/avtodetail/carshop-booking/internal/api/handlers"
)

const adminTokenHeader = "X-Admin-Token"

// AdminAuth проверяет админский токен в заголовке X-Admin-Token.
// Пустой настроенный токен закрывает админские маршруты полностью.
func AdminAuth(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(adminTokenHeader)
			if token == "" || got == "" ||
				subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondError(w, http.StatusUnauthorized, "недействительный админский токен")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
