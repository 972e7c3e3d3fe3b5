package controllers

import (
	"net/http"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type AuthController struct {
	Log *zap.Logger
}

func NewAuthController(logger *zap.Logger) *AuthController {
	return &AuthController{
		Log: logger,
	}
}

// Profile echoes the verified token claims. It must sit behind
// Middlewares.Authenticate.
func (ctrl *AuthController) Profile(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	claims, ok := r.Context().Value(constvars.CONTEXT_AUTH_CLAIMS_KEY).(map[string]interface{})
	if !ok {
		ctrl.Log.Error("AuthController.Profile claims not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID),
		)
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Profile{User: claims})
}
