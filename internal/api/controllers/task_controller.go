package apicontrollers

import (
	"errors"
	"net/http"
	"strconv"

	tasksusecase "github.com/drujensen/taskcase/internal/impl/usecase"

	"github.com/labstack/echo/v4"
	"github.com/swaggest/usecase"
	"github.com/swaggest/usecase/status"
	"go.uber.org/zap"
)

type TaskController struct {
	logger     *zap.Logger
	createTask usecase.Interactor
	findTask   usecase.Interactor
	findTasks  usecase.Interactor
}

func NewTaskController(logger *zap.Logger, createTask, findTask, findTasks usecase.Interactor) *TaskController {
	return &TaskController{
		logger:     logger,
		createTask: createTask,
		findTask:   findTask,
		findTasks:  findTasks,
	}
}

// RegisterRoutes registers all task-related routes with Echo
func (c *TaskController) RegisterRoutes(e *echo.Group) {
	e.GET("/tasks", c.ListTasks)
	e.GET("/tasks/:id", c.GetTask)
	e.POST("/tasks", c.CreateTask)
}

// ListTasks handles the GET request to list all tasks
func (c *TaskController) ListTasks(ctx echo.Context) error {
	var out []tasksusecase.TaskView
	if err := c.findTasks.Interact(ctx.Request().Context(), nil, &out); err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, out)
}

// GetTask handles the GET request to retrieve a specific task
func (c *TaskController) GetTask(ctx echo.Context) error {
	id, err := strconv.ParseInt(ctx.Param("id"), 10, 64)
	if err != nil {
		return c.handleError(ctx, status.Wrap(errors.New("task id must be an integer"), status.InvalidArgument))
	}

	var out tasksusecase.TaskView
	if err := c.findTask.Interact(ctx.Request().Context(), &tasksusecase.FindTaskInput{ID: id}, &out); err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(http.StatusOK, out)
}

// CreateTask handles the POST request to create a new task
func (c *TaskController) CreateTask(ctx echo.Context) error {
	var in tasksusecase.CreateTaskInput
	if err := ctx.Bind(&in); err != nil {
		return c.handleError(ctx, status.Wrap(errors.New("invalid request body"), status.InvalidArgument))
	}

	var out tasksusecase.CreateTaskOutput
	if err := c.createTask.Interact(ctx.Request().Context(), &in, &out); err != nil {
		return c.handleError(ctx, err)
	}
	return ctx.JSON(http.StatusCreated, out)
}

// handleError handles errors and returns them in a consistent format
func (c *TaskController) handleError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError
	body := map[string]interface{}{
		"error": err.Error(),
	}

	var withStatus interface{ Status() status.Code }
	if errors.As(err, &withStatus) {
		code = HTTPStatus(withStatus.Status())
		body["status"] = withStatus.Status().String()
	}

	if code >= http.StatusInternalServerError {
		c.logger.Error("Error occurred", zap.Error(err))
	}
	return ctx.JSON(code, body)
}

// HTTPStatus maps a canonical use case status to the HTTP status served for it.
func HTTPStatus(c status.Code) int {
	switch c {
	case status.OK:
		return http.StatusOK
	case status.InvalidArgument:
		return http.StatusBadRequest
	case status.NotFound:
		return http.StatusNotFound
	case status.AlreadyExists:
		return http.StatusConflict
	case status.Unimplemented:
		return http.StatusNotImplemented
	default:
		return http.StatusInternalServerError
	}
}
