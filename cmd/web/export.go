package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"succeed.ai/succeed-web/internal/export"
)

func exportCmd(opts *rootOptions) *cobra.Command {
	var (
		outDir  string
		baseURL string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render every page to static HTML files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			extra := map[string]string{}
			if baseURL != "" {
				extra["SUCCEED_WEB_BASE_URL"] = baseURL
			}
			a, err := loadApp(opts, extra)
			if err != nil {
				return err
			}
			defer func() { _ = a.logger.Sync() }()

			res, err := export.Export(cmd.Context(), a.site, a.content, export.Options{
				OutDir:    outDir,
				PublicDir: a.settings.Site.PublicDir,
				BaseURL:   a.settings.Site.BaseURL,
				Logger:    a.logger,
			})
			if err != nil {
				a.logger.Error("export failed", zap.Error(err))
				return err
			}
			for _, f := range res.Files {
				fmt.Fprintln(cmd.OutOrStdout(), f)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "public origin for canonical URLs (overrides SUCCEED_WEB_BASE_URL)")
	return cmd
}
