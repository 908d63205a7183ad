package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"succeed.ai/succeed-web/internal/httpserver"
)

func runServe(ctx context.Context, opts *rootOptions) error {
	a, err := loadApp(opts, nil)
	if err != nil {
		return err
	}
	defer func() { _ = a.logger.Sync() }()

	s := a.settings
	srv, err := httpserver.New(httpserver.Config{
		Address:      s.Server.Address(),
		Site:         a.site,
		Content:      a.content,
		PublicDir:    s.Site.PublicDir,
		BaseURL:      s.Site.BaseURL,
		Logger:       a.logger,
		ReadTimeout:  s.Server.ReadTimeout,
		WriteTimeout: s.Server.WriteTimeout,
		IdleTimeout:  s.Server.IdleTimeout,
	})
	if err != nil {
		a.logger.Error("server setup failed", zap.Error(err))
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		defer close(errCh)
		a.logger.Info("web listening",
			zap.String("addr", srv.Addr),
			zap.Bool("dev", s.Log.Development),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		if err != nil {
			a.logger.Error("listen failed", zap.Error(err))
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.logger.Info("shutting down", zap.Duration("timeout", s.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.logger.Info("server stopped")
	return nil
}
