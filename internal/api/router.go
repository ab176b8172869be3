package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/saberviver/mentorship-api/docs"
	"github.com/saberviver/mentorship-api/internal/api/handler"
	"github.com/saberviver/mentorship-api/internal/api/middleware"
	"github.com/saberviver/mentorship-api/internal/core/domain"
	"github.com/saberviver/mentorship-api/internal/core/ports"
	"github.com/saberviver/mentorship-api/internal/core/service"
	"github.com/saberviver/mentorship-api/internal/infrastructure/config"
)

// Dependencies carries everything the router needs; the stores are chosen by
// main (memory by default, Redis/Mongo when configured).
type Dependencies struct {
	Config      *config.Config
	Logger      zerolog.Logger
	Sessions    ports.SessionStore
	Credentials ports.CredentialRepository
	Mentors     ports.MentorRepository
	Bookings    ports.BookingRepository

	// Optional backends, only used by the readiness probe.
	Redis *redis.Client
	Mongo *mongo.Database
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("saberviver"))

	// --- Services ---
	authService := service.NewAuthService(deps.Credentials, deps.Sessions, deps.Config.JWTSecret, deps.Config.SessionTTL, deps.Logger)
	directoryService := service.NewDirectoryService(deps.Mentors, deps.Logger)
	bookingService := service.NewBookingService(deps.Mentors, deps.Bookings, deps.Config.BookingDelay, deps.Logger)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	mentorHandler := handler.NewMentorHandler(directoryService)
	bookingHandler := handler.NewBookingHandler(bookingService)

	guard := middleware.Auth(authService)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.GET("/auth/me", authHandler.Me)

	// --- Directory routes (public) ---
	e.GET("/v1/skills", mentorHandler.Skills)
	e.GET("/v1/mentors", mentorHandler.List)
	e.GET("/v1/mentors/me/classes", mentorHandler.MyClasses, guard, middleware.RequireRole(domain.RoleMentor))
	e.GET("/v1/mentors/:id", mentorHandler.Get)
	e.GET("/v1/mentors/:id/classes/:class_id", mentorHandler.GetClass)

	// --- Booking routes (guarded) ---
	e.POST("/v1/bookings", bookingHandler.Create, guard)
	e.GET("/v1/bookings", bookingHandler.List, guard)
	e.POST("/v1/bookings/:id/cancel", bookingHandler.Cancel, guard)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(deps.Mongo, deps.Redis)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational surfaces ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
