package routers

import (
	"net/http"
	"strings"
	"telemed-service/internal/app/config"
	"telemed-service/internal/app/delivery/http/controllers"
	"telemed-service/internal/app/delivery/http/middlewares"
	"telemed-service/internal/pkg/constvars"
	"telemed-service/internal/pkg/exceptions"
	"telemed-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	userController *controllers.UserController,
	doctorController *controllers.DoctorController,
	videoController *controllers.VideoController,
	authController *controllers.AuthController,
	chatController *controllers.ChatController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   ParseAllowedOrigins(internalConfig.App.AllowedOrigins),
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", constvars.HeaderXRequestID},
		ExposedHeaders:   []string{"Link", constvars.HeaderXRequestID},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	if internalConfig.App.MaxRequests > 0 {
		router.Use(httprate.Limit(
			internalConfig.App.MaxRequests,
			time.Second,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
				utils.BuildErrorResponse(middlewares.Log, w, exceptions.ErrTooManyRequests(nil))
			}),
		))
	}

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging)
	router.Use(middlewares.ErrorHandler)
	router.Use(middlewares.BodyLimit)

	routes := func(r chi.Router) {
		r.Get("/", controllers.Home)

		r.Route("/"+constvars.ResourceAppointments, func(r chi.Router) {
			attachAppointmentRoutes(r, appointmentController)
		})

		r.Route("/"+constvars.ResourceUsers, func(r chi.Router) {
			attachUserRoutes(r, userController)
		})

		r.Route("/"+constvars.ResourceDoctors, func(r chi.Router) {
			attachDoctorRoutes(r, doctorController)
		})

		r.Route("/"+constvars.ResourceVideo, func(r chi.Router) {
			attachVideoRoutes(r, videoController)
		})

		r.Route("/"+constvars.ResourceAuth, func(r chi.Router) {
			attachAuthRoutes(r, middlewares, authController)
		})

		r.Route("/"+constvars.ResourceChat, func(r chi.Router) {
			attachChatRoutes(r, chatController)
		})
	}

	endpointPrefix := strings.Trim(internalConfig.App.EndpointPrefix, "/")
	if endpointPrefix == "" {
		routes(router)
		return
	}
	router.Route("/"+endpointPrefix, routes)
}

func ParseAllowedOrigins(value string) []string {
	origins := make([]string, 0)
	for _, origin := range strings.Split(value, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		origins = append(origins, "*")
	}
	return origins
}
