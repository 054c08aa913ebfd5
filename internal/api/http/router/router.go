package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/avelichko/reminder-server/internal/api/http/handler"
	"github.com/avelichko/reminder-server/internal/api/http/middleware"
	"github.com/avelichko/reminder-server/internal/logger"
	"github.com/avelichko/reminder-server/internal/model"
	"github.com/avelichko/reminder-server/internal/service"
)

// Router wires services into the HTTP route table.
type Router struct {
	authService     *service.Auth
	reminderService *service.Reminder
	tokenService    *service.TokenService
	contextManager  model.ContextManager
	secureCookies   bool
	refreshTTL      time.Duration
	logger          *logger.Logger
}

// New creates a new HTTP Router instance.
func New(
	authService *service.Auth,
	reminderService *service.Reminder,
	tokenService *service.TokenService,
	contextManager model.ContextManager,
	secureCookies bool,
	refreshTTL time.Duration,
	logger *logger.Logger,
) *Router {
	return &Router{
		authService:     authService,
		reminderService: reminderService,
		tokenService:    tokenService,
		contextManager:  contextManager,
		secureCookies:   secureCookies,
		refreshTTL:      refreshTTL,
		logger:          logger,
	}
}

// Register builds the echo instance with middleware and all routes.
// Auth routes are public; reminder routes sit behind the authorization
// gate.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	logging := middleware.NewLogging(r.logger)
	authenticate := middleware.NewAuthenticate(r.tokenService, r.contextManager, r.logger)

	e.Use(logging.Handle)
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(echomw.CORS())

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
	})

	api := e.Group("/api/v1")

	authHandler := handler.NewAuth(r.authService, r.secureCookies, r.refreshTTL, r.logger)
	auth := api.Group("/auth")
	auth.POST("/register", authHandler.Register)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/refresh-token", authHandler.RefreshToken)

	reminderHandler := handler.NewReminder(r.reminderService, r.contextManager, r.logger)
	reminders := api.Group("/reminders", authenticate.Handle)
	reminders.POST("/create", reminderHandler.Create)
	reminders.PUT("/edit/:id", reminderHandler.Edit)
	reminders.PATCH("/emergent/:id", reminderHandler.ToggleEmergent)
	reminders.PATCH("/favorite/:id", reminderHandler.ToggleFavorite)
	reminders.DELETE("/delete/:id", reminderHandler.Delete)
	reminders.GET("/", reminderHandler.List)
	reminders.GET("/by-id/:id", reminderHandler.Get)
	reminders.GET("/filter-sort", reminderHandler.FilterSort)

	return e
}
