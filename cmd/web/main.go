package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "succeed-web: %v\n", err)
		cancel()
		os.Exit(1)
	}
}

type rootOptions struct {
	envFile    string
	siteConfig string
	contentDir string
	addr       string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	root := &cobra.Command{
		Use:           "succeed-web",
		Short:         "Serve, check and export the Succeed marketing site",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	root.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file with SUCCEED_WEB_* settings (empty disables)")
	root.PersistentFlags().StringVar(&opts.siteConfig, "site-config", "", "site definition YAML (default embedded)")
	root.PersistentFlags().StringVar(&opts.contentDir, "content-dir", "", "markdown content directory (default embedded)")
	root.Flags().StringVar(&opts.addr, "addr", "", "HTTP listen address (overrides SUCCEED_WEB_ADDR)")

	root.AddCommand(serveCmd(opts), validateCmd(opts), exportCmd(opts))
	return root
}

func serveCmd(opts *rootOptions) *cobra.Command {
	serve := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts)
		},
	}
	serve.Flags().StringVar(&opts.addr, "addr", "", "HTTP listen address (overrides SUCCEED_WEB_ADDR)")
	return serve
}
