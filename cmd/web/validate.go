package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"succeed.ai/succeed-web/internal/page"
)

func validateCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Load the site config and content, compose every page and print a summary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(opts, nil)
			if err != nil {
				for _, p := range problemsOf(err) {
					fmt.Fprintf(cmd.ErrOrStderr(), "  - %s\n", p)
				}
				return err
			}
			defer func() { _ = a.logger.Sync() }()
			return summarize(cmd.OutOrStdout(), a)
		},
	}
}

func summarize(w io.Writer, a *app) error {
	routes, err := page.Routes(a.site, a.content)
	if err != nil {
		return err
	}
	composer := page.New(a.site, page.Options{BaseURL: a.settings.Site.BaseURL})

	keys := a.site.LinkKeys()
	names := make([]string, 0, len(keys))
	for _, k := range keys {
		names = append(names, string(k))
	}

	fmt.Fprintf(w, "site:  %s\n", a.site.Name())
	fmt.Fprintf(w, "links: %d (%s)\n", len(keys), strings.Join(names, ", "))
	fmt.Fprintf(w, "nav:   %d primary, %d menu\n", len(a.site.NavItems()), len(a.site.NavMenuItems()))
	fmt.Fprintln(w, "routes:")

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, rt := range routes {
		switch rt.Kind {
		case page.KindLanding:
			doc, err := composer.Landing(rt.VariantID)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "  %s\tvariant %s\t%s -> %s\n", rt.Path, rt.VariantID, doc.Hero.CTA.Label, doc.Hero.CTA.Href)
		case page.KindContent:
			p, err := a.content.Get(rt.Slug)
			if err != nil {
				return err
			}
			fmt.Fprintf(tw, "  %s\tcontent %s\t%s\n", rt.Path, rt.Slug, composer.Content(p).Meta.Title)
		}
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w, "ok")
	return nil
}
