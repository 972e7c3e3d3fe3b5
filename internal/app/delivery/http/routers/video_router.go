package routers

import (
	"telemed-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachVideoRoutes(router chi.Router, videoController *controllers.VideoController) {
	router.Post("/start", videoController.StartCall)
}
