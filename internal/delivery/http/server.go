package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/incident-intake/internal/config"
	"github.com/incident-intake/internal/delivery/http/handler"
	"github.com/incident-intake/internal/delivery/http/middleware"
	"github.com/incident-intake/internal/pkg/errors"
	"github.com/incident-intake/internal/pkg/utils"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"
)

// Server - HTTP сервер на основе Fiber
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	userHandler         *handler.UserHandler
	areaHandler         *handler.AreaHandler
	incidentHandler     *handler.IncidentHandler
	notificationHandler *handler.NotificationHandler
	uploadHandler       *handler.UploadHandler
	healthHandler       *handler.HealthHandler
}

// multipartOverhead - запас сверх MAX_FILE_SIZE на заголовки multipart-формы
const multipartOverhead = 64 * 1024

// NewServer - создание нового HTTP сервера
func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	userHandler *handler.UserHandler,
	areaHandler *handler.AreaHandler,
	incidentHandler *handler.IncidentHandler,
	notificationHandler *handler.NotificationHandler,
	uploadHandler *handler.UploadHandler,
	healthHandler *handler.HealthHandler,
) *Server {
	bodyLimit := fiber.DefaultBodyLimit
	if limit := int(cfg.Upload.MaxFileSize) + multipartOverhead; limit > bodyLimit {
		bodyLimit = limit
	}

	app := fiber.New(fiber.Config{
		AppName:      "Incident Intake",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    bodyLimit,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                 app,
		config:              cfg,
		logger:              logger,
		userHandler:         userHandler,
		areaHandler:         areaHandler,
		incidentHandler:     incidentHandler,
		notificationHandler: notificationHandler,
		uploadHandler:       uploadHandler,
		healthHandler:       healthHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

// setupMiddlewares - настройка middleware
func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.Recovery(s.logger))
	s.app.Use(middleware.CORS(s.config.Server.CORSOrigins))
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

// setupRoutes - настройка маршрутов. Эндпоинты приёма доступны в корне (как у исходных клиентов) и под /api/v1
func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	s.app.Get("/health", s.healthHandler.Health)

	// Загруженные изображения; ссылки строятся как UPLOAD_BASE_URL + /uploads/<имя>
	if s.config.Upload.Dir != "" {
		s.app.Static("/uploads", s.config.Upload.Dir)
	}

	s.registerIntake(s.app)

	api := s.app.Group("/api/v1")
	api.Get("/health", s.healthHandler.Health)
	s.registerIntake(api)
}

func (s *Server) registerIntake(r fiber.Router) {
	// Users
	r.Post("/users", s.userHandler.CreateUser)
	r.Post("/user-areas", s.userHandler.AssignUserToArea)

	// Reference data
	r.Post("/areas", s.areaHandler.CreateArea)
	r.Post("/incident-types", s.areaHandler.CreateIncidentType)

	// Incidents
	r.Post("/incidents", s.incidentHandler.CreateIncident)
	r.Post("/incident-history", s.incidentHandler.CreateHistory)
	r.Post("/incident-media", s.incidentHandler.CreateMedia)
	r.Post("/incident-assignments", s.incidentHandler.CreateAssignment)
	r.Post("/incident-votes", s.incidentHandler.CreateVote)

	// Notifications
	r.Post("/alerts", s.notificationHandler.CreateAlert)
	r.Post("/support-contacts", s.notificationHandler.CreateSupportContact)

	// Uploads
	r.Post("/uploads/images", s.uploadHandler.UploadImage)
	r.Post("/incidents/upload-image", s.uploadHandler.UploadImage)
	r.Post("/alerts/upload-image", s.uploadHandler.UploadImage)
}

// App - Fiber приложение, используется в тестах через app.Test
func (s *Server) App() *fiber.App {
	return s.app
}

// Start - запуск HTTP сервера
func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

// Shutdown - graceful shutdown HTTP сервера
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// customErrorHandler - ошибки Fiber (404 маршрута, 405, паника после recover) в общем формате
func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		if appErr, ok := errors.As(err); ok {
			return utils.SendError(c, appErr)
		}

		code := fiber.StatusInternalServerError
		errCode := errors.ErrInternalServer.Code
		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
			if code == fiber.StatusNotFound {
				errCode = errors.ErrNotFound.Code
			}
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		message := err.Error()
		if code >= fiber.StatusInternalServerError {
			message = errors.ErrInternalServer.Message
		}

		return c.Status(code).JSON(utils.ErrorResponse{
			Error: errors.New(errCode, message, code),
		})
	}
}
