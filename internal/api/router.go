package api

import (
	"net/http"

	apicontrollers "github.com/drujensen/taskcase/internal/api/controllers"
	"github.com/drujensen/taskcase/internal/api/docs"
	"github.com/drujensen/taskcase/internal/domain/interfaces"
	"github.com/drujensen/taskcase/internal/domain/services"
	tasksusecase "github.com/drujensen/taskcase/internal/impl/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/swaggest/usecase"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.uber.org/zap"
)

const apiVersion = "1.0"

// TaskStore is a task repository that can also list its content.
type TaskStore interface {
	interfaces.TaskRepository
	tasksusecase.TaskLister
}

// NewRouter wires the task use cases to an echo instance serving them under /api.
func NewRouter(logger *zap.Logger, taskStore TaskStore, createTask services.CreateTaskUseCase) *echo.Echo {
	logUseCase := tasksusecase.LogMiddleware(logger)

	createTaskUseCase := usecase.Wrap(tasksusecase.CreateTask(createTask), logUseCase)
	findTaskUseCase := usecase.Wrap(tasksusecase.FindTask(taskStore), logUseCase)
	findTasksUseCase := usecase.Wrap(tasksusecase.FindTasks(taskStore), logUseCase)

	taskController := apicontrollers.NewTaskController(logger, createTaskUseCase, findTaskUseCase, findTasksUseCase)

	apiDoc := docs.Build("taskcase API", apiVersion, "/api", []docs.Route{
		{Method: http.MethodGet, Path: "/tasks", Interactor: findTasksUseCase},
		{Method: http.MethodGet, Path: "/tasks/{id}", Interactor: findTaskUseCase},
		{Method: http.MethodPost, Path: "/tasks", SuccessStatus: http.StatusCreated, Interactor: createTaskUseCase},
	})
	if err := docs.Register(apiDoc); err != nil {
		logger.Error("Failed to register API docs", zap.Error(err))
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			logger.Info("Request",
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.String("request_id", v.RequestID))
			return nil
		},
	}))

	api := e.Group("/api")
	taskController.RegisterRoutes(api)
	api.GET("/swagger.json", func(c echo.Context) error {
		return c.JSON(http.StatusOK, apiDoc)
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
