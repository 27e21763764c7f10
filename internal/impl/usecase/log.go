package usecase

import (
	"context"

	"github.com/swaggest/usecase"
	"go.uber.org/zap"
)

// LogMiddleware creates logging use case middleware.
func LogMiddleware(logger *zap.Logger) usecase.Middleware {
	return usecase.MiddlewareFunc(func(next usecase.Interactor) usecase.Interactor {
		var (
			hasName usecase.HasName
			name    = "unknown"
		)

		if usecase.As(next, &hasName) {
			name = hasName.Name()
		}

		return usecase.Interact(func(ctx context.Context, input, output interface{}) error {
			err := next.Interact(ctx, input, output)
			if err != nil {
				logger.Warn("Use case failed", zap.String("usecase", name), zap.Any("input", input), zap.Error(err))
			}

			return err
		})
	})
}
