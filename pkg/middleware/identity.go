package middleware

import (
	"net/http"

	"hotel-booking/pkg/utils"

	"go.uber.org/zap"
)

// Identity extracts the caller's user id from the trusted X-User-ID header.
// Authentication itself happens upstream; this service only needs the
// surrogate id for booking ownership checks.
func Identity(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("X-User-ID")
			if header == "" {
				utils.ResponseUnauthorized(w, "Missing X-User-ID header")
				return
			}

			userID, err := utils.ParseID(header)
			if err != nil {
				logger.Warn("Invalid X-User-ID header",
					zap.String("value", header),
					zap.String("path", r.URL.Path),
				)
				utils.ResponseUnauthorized(w, "Invalid X-User-ID header")
				return
			}

			ctx := utils.SetUserContext(r.Context(), userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
