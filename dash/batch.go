package dash

import (
	"context"
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// RenderAll renders the dashboards defined in files concurrently, each with
// its own registry. It stops at the first failure.
func RenderAll(ctx context.Context, files []string, options ...Option) error {
	var (
		group, sub = errgroup.WithContext(ctx)
		logger     = dashLogger(options)
	)
	group.SetLimit(runtime.NumCPU())
	for _, file := range files {
		file := file
		group.Go(func() error {
			if err := sub.Err(); err != nil {
				return err
			}
			cfg, err := Load(file)
			if err != nil {
				return err
			}
			if err := New(cfg, options...).Render(); err != nil {
				return err
			}
			logger.Info("dashboard rendered",
				zap.String("file", file),
				zap.String("output", cfg.OutputDir()),
				zap.Int("charts", len(cfg.Charts)))
			return nil
		})
	}
	return group.Wait()
}

// CheckAll validates the dashboards defined in files and their datasets.
func CheckAll(ctx context.Context, files []string) error {
	group, sub := errgroup.WithContext(ctx)
	group.SetLimit(runtime.NumCPU())
	for _, file := range files {
		file := file
		group.Go(func() error {
			if err := sub.Err(); err != nil {
				return err
			}
			cfg, err := Load(file)
			if err != nil {
				return err
			}
			return Check(cfg)
		})
	}
	return group.Wait()
}

func dashLogger(options []Option) *zap.Logger {
	var d Dashboard
	d.logger = zap.NewNop()
	for _, o := range options {
		o(&d)
	}
	return d.logger
}
