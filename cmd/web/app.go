package main

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"succeed.ai/succeed-web/internal/config"
	"succeed.ai/succeed-web/internal/content"
	"succeed.ai/succeed-web/internal/metrics"
	"succeed.ai/succeed-web/internal/observability"
	"succeed.ai/succeed-web/internal/site"
)

// app is everything loaded once at startup. Nothing in it changes afterwards.
type app struct {
	settings config.Config
	logger   *zap.Logger
	site     *site.Config
	content  *content.Store
}

func (o *rootOptions) configOptions(extra map[string]string) []config.Option {
	overrides := map[string]string{}
	if o.siteConfig != "" {
		overrides["SUCCEED_WEB_SITE_CONFIG"] = o.siteConfig
	}
	if o.contentDir != "" {
		overrides["SUCCEED_WEB_CONTENT_DIR"] = o.contentDir
	}
	if o.addr != "" {
		overrides["SUCCEED_WEB_ADDR"] = o.addr
	}
	for k, v := range extra {
		overrides[k] = v
	}
	return []config.Option{config.WithEnvFile(o.envFile), config.WithEnvMap(overrides)}
}

func loadApp(opts *rootOptions, extra map[string]string) (*app, error) {
	settings, err := config.Load(opts.configOptions(extra)...)
	if err != nil {
		return nil, err
	}
	logger, err := observability.NewLogger(settings.Log.Level, settings.Log.Development)
	if err != nil {
		return nil, err
	}

	cfg, err := loadSite(settings.Site.ConfigPath)
	if err != nil {
		logger.Error("site config rejected",
			zap.String("path", settings.Site.ConfigPath),
			zap.Strings("problems", problemsOf(err)),
			zap.Error(err),
		)
		return nil, err
	}

	store, err := content.LoadDir(settings.Site.ContentDir)
	if err != nil {
		logger.Error("content load failed", zap.String("dir", settings.Site.ContentDir), zap.Error(err))
		return nil, err
	}
	metrics.RecordSite(len(cfg.Variants()), len(store.Pages()))

	logger.Info("site loaded",
		zap.String("name", cfg.Name()),
		zap.Int("variants", len(cfg.Variants())),
		zap.Int("content_pages", len(store.Pages())),
	)
	return &app{settings: settings, logger: logger, site: cfg, content: store}, nil
}

func loadSite(path string) (*site.Config, error) {
	var (
		cfg *site.Config
		err error
	)
	if path == "" {
		cfg, err = site.Default()
	} else {
		cfg, err = site.LoadFile(path)
	}
	metrics.RecordConfigLoad(len(problemsOf(err)), err)
	if err != nil {
		return nil, fmt.Errorf("load site config: %w", err)
	}
	return cfg, nil
}

func problemsOf(err error) []string {
	var vErr *site.ValidationError
	if errors.As(err, &vErr) {
		return vErr.Problems()
	}
	return nil
}
