package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/DanielPopoola/payment-gateway/internal/application"
	"github.com/DanielPopoola/payment-gateway/internal/interfaces/rest"
)

// Timeout bounds the whole request. Handlers see the deadline on the request context;
// if they overrun it the client gets a TIMEOUT envelope instead.
func Timeout(timeout time.Duration) func(http.Handler) http.Handler {
	body := timeoutBody()

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if timeout <= 0 {
				next.ServeHTTP(w, r)
				return
			}

			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			r = r.WithContext(ctx)

			w.Header().Set("Content-Type", "application/json")
			http.TimeoutHandler(next, timeout, body).ServeHTTP(w, r)
		})
	}
}

func timeoutBody() string {
	svcErr := application.NewTimeoutError()

	b, err := json.Marshal(rest.ErrorResponse{
		Success: false,
		Error: rest.ErrorDetail{
			Code:    svcErr.Code,
			Message: svcErr.Message,
		},
	})
	if err != nil {
		return `{"success":false,"error":{"code":"TIMEOUT","message":"Request timeout"}}`
	}
	return string(b)
}
