package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/dayplan-app/planner-api/internal/api/handler"
	"github.com/dayplan-app/planner-api/internal/api/middleware"
	"github.com/dayplan-app/planner-api/internal/core/service"
	"github.com/dayplan-app/planner-api/internal/core/token"
	mongodb "github.com/dayplan-app/planner-api/internal/infrastructure/db/mongo"
	redisdb "github.com/dayplan-app/planner-api/internal/infrastructure/db/redis"
	"github.com/dayplan-app/planner-api/internal/infrastructure/queue"
)

// NewRouter builds the Echo instance with all routes registered and returns it
// together with the activity dispatcher, whose lifecycle the caller owns.
// A nil rdb disables the login limiter; everything else keeps working.
func NewRouter(db *mongo.Database, rdb *redis.Client, codec *token.Codec, activityWorkers int, log zerolog.Logger) (*echo.Echo, *queue.Dispatcher) {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("planner"))

	// --- Repositories ---
	counters := mongodb.NewCounters(db)
	userRepo := mongodb.NewUserRepository(db, counters)
	calendarRepo := mongodb.NewCalendarRepository(db, counters)
	eventRepo := mongodb.NewEventRepository(db, counters)
	taskRepo := mongodb.NewTaskRepository(db, counters)
	taskGroupRepo := mongodb.NewTaskGroupRepository(db, counters)
	activityRepo := mongodb.NewActivityRepository(db)

	var limiter service.LoginLimiter
	if rdb != nil {
		limiter = redisdb.NewLoginLimiter(rdb)
	}

	// --- Services ---
	authService := service.NewAuthService(userRepo, codec, limiter, log)
	eventService := service.NewEventService(eventRepo, calendarRepo, log)
	calendarService := service.NewCalendarService(calendarRepo, eventRepo, log)
	taskService := service.NewTaskService(taskRepo, taskGroupRepo, log)
	taskGroupService := service.NewTaskGroupService(taskGroupRepo, taskRepo, log)
	activityService := service.NewActivityService(activityRepo, userRepo, log)

	dispatcher := queue.NewDispatcher(activityWorkers, activityService, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, dispatcher)
	eventHandler := handler.NewEventHandler(eventService)
	calendarHandler := handler.NewCalendarHandler(calendarService)
	taskHandler := handler.NewTaskHandler(taskService)
	taskGroupHandler := handler.NewTaskGroupHandler(taskGroupService)

	// --- Public routes ---
	e.POST("/signup", authHandler.Signup)
	e.POST("/login", authHandler.Login)

	// --- Authenticated routes ---
	auth := e.Group("", middleware.Auth(codec))

	auth.GET("/profile", authHandler.Profile)
	auth.GET("/config", authHandler.GetConfig)
	auth.PUT("/config", authHandler.UpdateConfig)

	auth.GET("/events", eventHandler.List)
	auth.POST("/events", eventHandler.Create)
	auth.GET("/events/:id", eventHandler.Get)
	auth.PUT("/events/:id", eventHandler.Update)
	auth.DELETE("/events/:id", eventHandler.Delete)

	auth.GET("/calendars", calendarHandler.List)
	auth.POST("/calendars", calendarHandler.Create)
	auth.GET("/calendars/:id", calendarHandler.Get)
	auth.PUT("/calendars/:id", calendarHandler.Update)
	auth.DELETE("/calendars/:id", calendarHandler.Delete)

	auth.GET("/tasks", taskHandler.List)
	auth.POST("/tasks", taskHandler.Create)
	auth.PUT("/tasks/:id", taskHandler.Update)
	auth.DELETE("/tasks/:id", taskHandler.Delete)

	auth.GET("/task-groups", taskGroupHandler.List)
	auth.POST("/task-groups", taskGroupHandler.Create)
	auth.PUT("/task-groups/:id", taskGroupHandler.Update)
	auth.DELETE("/task-groups/:id", taskGroupHandler.Delete)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?

	// --- Observability and docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e, dispatcher
}
