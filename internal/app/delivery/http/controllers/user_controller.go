package controllers

import (
	"net/http"
	"telemed-service/internal/app/contracts"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/requests"
	"telemed-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type UserController struct {
	Log            *zap.Logger
	UserUsecase    contracts.UserUsecase
	RequestTimeout time.Duration
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, requestTimeout time.Duration) *UserController {
	return &UserController{
		Log:            logger,
		UserUsecase:    userUsecase,
		RequestTimeout: requestTimeout,
	}
}

func (ctrl *UserController) ListUsers(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("UserController.ListUsers called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	users, err := ctrl.UserUsecase.ListUsers(ctx)
	if err != nil {
		ctrl.Log.Error("UserController.ListUsers error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("UserController.ListUsers succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(users)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetUsersSuccessMessage, users)
}

func (ctrl *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.RequestIDFromContext(r.Context())
	ctrl.Log.Info("UserController.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	var document requests.UserDocument
	if err := decodeJSON(r, &document); err != nil {
		ctrl.Log.Error("UserController.CreateUser error decoding request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := requestContext(r, ctrl.RequestTimeout)
	defer cancel()

	created, err := ctrl.UserUsecase.CreateUser(ctx, document)
	if err != nil {
		ctrl.Log.Error("UserController.CreateUser error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		buildUsecaseErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("UserController.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, created.ID),
	)
	utils.BuildJSONResponse(w, constvars.StatusCreated, created)
}
