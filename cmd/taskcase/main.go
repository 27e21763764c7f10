package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/drujensen/taskcase/internal/api"
	"github.com/drujensen/taskcase/internal/domain/entities"
	"github.com/drujensen/taskcase/internal/domain/events"
	"github.com/drujensen/taskcase/internal/domain/services"
	"github.com/drujensen/taskcase/internal/impl/config"
	repositoriesMemory "github.com/drujensen/taskcase/internal/impl/repositories/memory"

	"go.uber.org/zap"
)

var (
	version = "unknown" // This should be set during build with -ldflags="-X main.version=1.0.0"
)

func main() {
	// Check version flag first
	if len(os.Args) > 1 && (os.Args[1] == "--version" || os.Args[1] == "-v") {
		fmt.Println(version)
		os.Exit(0)
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: taskcase serve\n       taskcase create -id N -name NAME\n")
		flag.PrintDefaults()
	}

	if len(os.Args) < 2 {
		flag.Usage()
		os.Exit(2)
	}
	mode := os.Args[1]

	cfg, err := config.InitConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logConfig := zap.NewDevelopmentConfig()
	logConfig.Level = zap.NewAtomicLevelAt(cfg.LogLevel)
	logger, err := logConfig.Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	taskRepo := repositoriesMemory.NewMemoryTaskRepository(logger)
	if err := seedRepository(context.Background(), cfg, taskRepo); err != nil {
		logger.Fatal("Failed to seed task repository", zap.Error(err))
	}

	createTask := services.NewCreateTaskInteractor(taskRepo, logger)

	switch mode {
	case "serve":
		if err := serve(cfg, logger, taskRepo, createTask); err != nil {
			logger.Fatal("Server failed", zap.Error(err))
		}
	case "create":
		if err := create(os.Args[2:], taskRepo, createTask); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", mode)
		flag.Usage()
		os.Exit(2)
	}
}

func seedRepository(ctx context.Context, cfg *config.Config, taskRepo *repositoriesMemory.MemoryTaskRepository) error {
	task, ok := cfg.SeedTaskFixture(time.Now())
	if !ok {
		return nil
	}
	return taskRepo.Store(ctx, task)
}

func serve(cfg *config.Config, logger *zap.Logger, taskRepo *repositoriesMemory.MemoryTaskRepository, createTask services.CreateTaskUseCase) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cancelCreated := events.SubscribeToTaskCreatedEvents(func(data events.TaskCreatedEventData) {
		logger.Info("Task created", zap.Stringer("id", data.ID), zap.String("name", data.Name))
	})
	defer cancelCreated()

	cancelPostponed := events.SubscribeToTaskPostponedEvents(func(data events.TaskPostponedEventData) {
		logger.Info("Task postponed", zap.Stringer("id", data.ID), zap.Time("due_date", data.DueDate))
	})
	defer cancelPostponed()

	e := api.NewRouter(logger, taskRepo, createTask)

	errCh := make(chan error, 1)
	go func() {
		logger.Info("Starting HTTP server", zap.String("addr", cfg.HTTPAddr))
		if err := e.Start(cfg.HTTPAddr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("Shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return e.Shutdown(shutdownCtx)
}

func create(args []string, taskRepo *repositoriesMemory.MemoryTaskRepository, createTask services.CreateTaskUseCase) error {
	fs := flag.NewFlagSet("create", flag.ContinueOnError)
	id := fs.Int64("id", 1, "Task ID")
	name := fs.String("name", "", "Task name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	taskName, err := entities.NewTaskName(*name)
	if err != nil {
		return err
	}

	ctx := context.Background()
	result, err := createTask.Execute(ctx, services.CreateTaskCommand{
		ID:   entities.TaskID(*id),
		Name: taskName,
	})
	if err != nil {
		return err
	}
	fmt.Printf("Created task %s\n", result.ID)

	tasks, err := taskRepo.List(ctx)
	if err != nil {
		return err
	}
	return printTasks(os.Stdout, tasks, time.Now())
}
