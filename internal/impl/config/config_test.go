package config

import (
	"testing"
	"time"

	"github.com/drujensen/taskcase/internal/domain/entities"
	"github.com/drujensen/taskcase/internal/domain/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TASKCASE_HTTP_ADDR", "")
	t.Setenv("TASKCASE_LOG_LEVEL", "")
	t.Setenv("TASKCASE_SEED_TASK", "")

	cfg, err := Load(zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddr, cfg.HTTPAddr)
	assert.Equal(t, zapcore.WarnLevel, cfg.LogLevel)
	assert.Nil(t, cfg.SeedTask)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TASKCASE_HTTP_ADDR", "127.0.0.1:9000")
	t.Setenv("TASKCASE_LOG_LEVEL", "debug")
	t.Setenv("TASKCASE_SEED_TASK", "postponeable:1:Water plants")

	cfg, err := Load(zap.NewNop())

	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.HTTPAddr)
	assert.Equal(t, zapcore.DebugLevel, cfg.LogLevel)
	assert.Equal(t, &SeedTask{Kind: "postponeable", ID: 1, Name: entities.MustTaskName("Water plants")}, cfg.SeedTask)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("log level", func(t *testing.T) {
		t.Setenv("TASKCASE_LOG_LEVEL", "loud")
		t.Setenv("TASKCASE_SEED_TASK", "")

		_, err := Load(zap.NewNop())

		assert.Error(t, err)
	})

	t.Run("seed task", func(t *testing.T) {
		t.Setenv("TASKCASE_LOG_LEVEL", "")
		t.Setenv("TASKCASE_SEED_TASK", "postponeable:one:Water plants")

		_, err := Load(zap.NewNop())

		assert.Error(t, err)
	})
}

func TestParseSeedTask(t *testing.T) {
	t.Run("postponeable", func(t *testing.T) {
		seed, err := ParseSeedTask("postponeable:1:Water plants: twice")

		require.NoError(t, err)
		assert.Equal(t, "postponeable", seed.Kind)
		assert.Equal(t, entities.TaskID(1), seed.ID)
		assert.Equal(t, "Water plants: twice", seed.Name.String())
	})

	t.Run("undone", func(t *testing.T) {
		seed, err := ParseSeedTask("undone:1:Call mom")

		require.NoError(t, err)
		assert.Equal(t, "undone", seed.Kind)
	})

	for _, value := range []string{"undone", "undone:1", "later:1:x", "undone:x:y", "undone:1:"} {
		t.Run("invalid "+value, func(t *testing.T) {
			_, err := ParseSeedTask(value)

			assert.IsType(t, &errs.ValidationError{}, err)
		})
	}
}

func TestSeedTask_Task(t *testing.T) {
	now := time.Date(2024, time.May, 17, 9, 0, 0, 0, time.Local)

	t.Run("postponeable is due tomorrow", func(t *testing.T) {
		seed := SeedTask{Kind: "postponeable", ID: 1, Name: entities.MustTaskName("Water plants")}

		p, ok := seed.Task(now).(*entities.PostponeableUndoneTask)

		require.True(t, ok)
		assert.Equal(t, entities.TaskID(1), p.ID())
		assert.Equal(t, entities.Tomorrow(now), p.DueDate())
	})

	t.Run("undone", func(t *testing.T) {
		seed := SeedTask{Kind: "undone", ID: 2, Name: entities.MustTaskName("Call mom")}

		assert.IsType(t, &entities.UndoneTask{}, seed.Task(now))
	})
}

func TestConfig_SeedTaskFixture(t *testing.T) {
	now := time.Date(2024, time.May, 17, 9, 0, 0, 0, time.Local)

	t.Run("not configured", func(t *testing.T) {
		cfg := &Config{logger: zap.NewNop()}

		task, ok := cfg.SeedTaskFixture(now)

		assert.False(t, ok)
		assert.Nil(t, task)
	})

	t.Run("parsed once at load", func(t *testing.T) {
		t.Setenv("TASKCASE_LOG_LEVEL", "")
		t.Setenv("TASKCASE_SEED_TASK", "postponeable:4:Water plants")

		cfg, err := Load(zap.NewNop())
		require.NoError(t, err)

		t.Setenv("TASKCASE_SEED_TASK", "not a fixture")

		task, ok := cfg.SeedTaskFixture(now)
		require.True(t, ok)
		assert.Equal(t, entities.TaskID(4), task.ID())
		assert.Equal(t, entities.Tomorrow(now), task.(entities.Postponable).DueDate())

		later, ok := cfg.SeedTaskFixture(now.AddDate(0, 0, 3))
		require.True(t, ok)
		assert.Equal(t, entities.Tomorrow(now).AddDate(0, 0, 3), later.(entities.Postponable).DueDate())
	})
}
