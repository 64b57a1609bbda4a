package routes

import (
	"net/http"

	"HomoCure/cache"
	"HomoCure/config"
	"HomoCure/controllers"
	"HomoCure/handlers"
	"HomoCure/middlewares"
	"HomoCure/repositories"
	"HomoCure/services"
	"HomoCure/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Dependencies are the long-lived collaborators shared by every route.
type Dependencies struct {
	Cache      cache.Cache
	Locker     cache.Locker
	Tokens     *utils.SessionTokens
	Dispatcher *services.Dispatcher
	Random     *utils.RandomSource
	Logger     *zap.SugaredLogger
}

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(config *config.AppConfig, deps Dependencies) (http.Handler, error) {
	if config.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middlewares.LoggingMiddleware(deps.Logger))
	router.Use(middlewares.SecurityHeaders())

	router.Use(middlewares.CorsMiddleware(&middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	rateLimiter, err := middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: config.RateLimitRPS,
		Burst:             config.RateLimitBurst,
	})
	if err != nil {
		return nil, err
	}
	router.Use(rateLimiter)

	sessionAuth := middlewares.SessionAuthMiddleware(deps.Tokens)

	// Initialize repositories, services, and handlers
	sessionRepo := repositories.NewSessionRepository(deps.Cache, deps.Locker, config.SessionTTL, config.NotificationTTL)
	portalRepo := repositories.NewPortalRepository()

	renderService := services.NewRenderService(portalRepo)
	authService := services.NewAuthService(services.NewMockAuthenticator(config.BcryptCost), deps.Dispatcher, deps.Logger)
	patientService := services.NewPatientService(deps.Dispatcher, deps.Random)
	remedyService := services.NewRemedyService(deps.Dispatcher, deps.Random)
	portalService := services.NewPortalService(sessionRepo, portalRepo, deps.Dispatcher, config.LookupDelay, deps.Logger)
	registrationService := services.NewRegistrationService(deps.Dispatcher, deps.Logger)

	sessionHandler := handlers.NewSessionHandler(sessionRepo, renderService, deps.Tokens, deps.Logger)
	authHandler := handlers.NewAuthHandler(sessionRepo, renderService, authService, deps.Logger)
	patientHandler := handlers.NewPatientHandler(sessionRepo, renderService, patientService, deps.Logger)
	remedyHandler := handlers.NewRemedyHandler(sessionRepo, renderService, remedyService, deps.Logger)
	portalHandler := handlers.NewPortalHandler(sessionRepo, renderService, portalService, deps.Logger)
	registrationHandler := handlers.NewRegistrationHandler(sessionRepo, renderService, registrationService, deps.Logger)

	// Register routes
	controllers.SetupRootRoute(router)
	controllers.NewSessionController(sessionHandler).RegisterRoutes(router, sessionAuth)
	controllers.NewAuthController(authHandler).RegisterRoutes(router, sessionAuth)
	controllers.SetupPatientRoutes(router, sessionAuth, patientHandler, remedyHandler, portalHandler, registrationHandler)

	return router, nil
}
