package controllers

import (
	"net/http"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/dto/responses"
	"telemed-service/internal/pkg/utils"
)

func Home(w http.ResponseWriter, r *http.Request) {
	utils.BuildJSONResponse(w, constvars.StatusOK, responses.Message{Message: constvars.HomeRunningMessage})
}
