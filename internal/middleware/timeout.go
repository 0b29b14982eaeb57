package middleware

import (
	"context"
	"net/http"
	"time"
)

// Timeout limita a duração de cada request: o context é cancelado no prazo e
// a ida ao banco falha, virando 500 no handler. timeoutSec <= 0 desliga.
func Timeout(timeoutSec int) func(http.Handler) http.Handler {
	if timeoutSec <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	d := time.Duration(timeoutSec) * time.Second
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), d)
			defer cancel()
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
