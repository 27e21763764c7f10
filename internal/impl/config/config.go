package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/drujensen/taskcase/internal/domain/entities"
	"github.com/drujensen/taskcase/internal/domain/errs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	DefaultHTTPAddr = ":8080"
	DefaultLogLevel = "warn"
)

type Config struct {
	HTTPAddr string
	LogLevel zapcore.Level
	SeedTask *SeedTask
	logger   *zap.Logger
}

// SeedTask is the task fixture configured by TASKCASE_SEED_TASK.
type SeedTask struct {
	Kind string
	ID   entities.TaskID
	Name entities.TaskName
}

var (
	configInstance *Config
	once           sync.Once
)

func InitConfig() (*Config, error) {
	var initErr error

	once.Do(func() {
		config := zap.NewDevelopmentConfig()
		config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
		logger, err := config.Build()
		if err != nil {
			logger = zap.NewNop()
		}
		defer logger.Sync()

		// Load .env file
		if err := godotenv.Load(); err != nil {
			if os.IsNotExist(err) {
				logger.Debug("No .env file found; falling back to system environment variables")
			} else {
				initErr = fmt.Errorf("failed to load .env file: %w", err)
				logger.Error("Config file load error", zap.Error(err))
				return
			}
		}

		configInstance, initErr = Load(logger)
	})

	if initErr != nil {
		return nil, initErr
	}
	if configInstance == nil {
		return nil, fmt.Errorf("configuration initialization failed unexpectedly")
	}

	return configInstance, nil
}

// Load reads the configuration from the environment without caching it.
func Load(logger *zap.Logger) (*Config, error) {
	cfg := &Config{
		HTTPAddr: getenv("TASKCASE_HTTP_ADDR", DefaultHTTPAddr),
		logger:   logger,
	}

	level, err := zapcore.ParseLevel(getenv("TASKCASE_LOG_LEVEL", DefaultLogLevel))
	if err != nil {
		return nil, fmt.Errorf("invalid TASKCASE_LOG_LEVEL: %w", err)
	}
	cfg.LogLevel = level

	if seed := os.Getenv("TASKCASE_SEED_TASK"); seed != "" {
		cfg.SeedTask, err = ParseSeedTask(seed)
		if err != nil {
			return nil, fmt.Errorf("invalid TASKCASE_SEED_TASK: %w", err)
		}
	}

	logger.Debug("Loaded config",
		zap.String("http_addr", cfg.HTTPAddr),
		zap.Stringer("log_level", cfg.LogLevel),
		zap.Bool("seed_task", cfg.SeedTask != nil))
	return cfg, nil
}

// ParseSeedTask parses a "kind:id:name" fixture such as "postponeable:1:Water plants".
func ParseSeedTask(value string) (*SeedTask, error) {
	parts := strings.SplitN(value, ":", 3)
	if len(parts) != 3 {
		return nil, errs.ValidationErrorf("seed task must look like kind:id:name, got %q", value)
	}

	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return nil, errs.ValidationErrorf("seed task id %q is not an integer", parts[1])
	}

	name, err := entities.NewTaskName(parts[2])
	if err != nil {
		return nil, err
	}

	switch parts[0] {
	case "undone", "postponeable":
		return &SeedTask{Kind: parts[0], ID: entities.TaskID(id), Name: name}, nil
	default:
		return nil, errs.ValidationErrorf("unknown seed task kind %q", parts[0])
	}
}

// Task builds the fixture. Postponeable fixtures are due the day after now.
func (s SeedTask) Task(now time.Time) entities.Task {
	if s.Kind == "postponeable" {
		return entities.NewPostponeableUndoneTask(s.ID, s.Name, entities.Tomorrow(now))
	}
	return entities.NewUndoneTask(s.ID, s.Name)
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

// SeedTaskFixture returns the task configured by TASKCASE_SEED_TASK, if any.
func (c *Config) SeedTaskFixture(now time.Time) (entities.Task, bool) {
	if c.SeedTask == nil {
		return nil, false
	}

	task := c.SeedTask.Task(now)
	c.logger.Debug("Seeding task", zap.Stringer("id", task.ID()), zap.String("kind", string(task.Kind())))
	return task, true
}
