package middlewares

import (
	"context"
	"net/http"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

// Authenticate verifies the bearer token and stores its claims in the
// request context under CONTEXT_AUTH_CLAIMS_KEY.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.RequestIDFromContext(r.Context())

		token, ok := utils.ExtractBearerToken(r.Header.Get(constvars.HeaderAuthorization))
		if !ok {
			m.Log.Info("Middlewares.Authenticate bearer token missing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
		defer cancel()

		claims, err := m.TokenVerifier.VerifyToken(ctx, token)
		if err != nil {
			m.Log.Info("Middlewares.Authenticate token rejected",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		if subject, ok := claims["sub"].(string); ok {
			m.Log.Info("Middlewares.Authenticate succeeded",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSubjectKey, subject),
			)
		}

		ctx = context.WithValue(r.Context(), constvars.CONTEXT_AUTH_CLAIMS_KEY, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
