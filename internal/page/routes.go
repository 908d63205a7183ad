package page

import (
	"errors"
	"fmt"

	"succeed.ai/succeed-web/internal/content"
	"succeed.ai/succeed-web/internal/site"
)

// ErrRouteConflict is returned when two pages claim the same path.
var ErrRouteConflict = errors.New("page: route conflict")

// Route is one servable page.
type Route struct {
	Path      string
	Kind      Kind
	VariantID string // set for KindLanding
	Slug      string // set for KindContent
}

// Routes lists every landing variant followed by every content page. A
// content page may not shadow a variant or a reserved server path.
func Routes(cfg *site.Config, store *content.Store) ([]Route, error) {
	var routes []Route
	for _, v := range cfg.Variants() {
		routes = append(routes, Route{Path: v.Route, Kind: KindLanding, VariantID: v.ID})
	}
	if store == nil {
		return routes, nil
	}
	for _, p := range store.Pages() {
		if site.IsReservedRoute(p.Path) {
			return nil, fmt.Errorf("%w: content page %q uses reserved path %s", ErrRouteConflict, p.Slug, p.Path)
		}
		if v, ok := cfg.VariantByRoute(p.Path); ok {
			return nil, fmt.Errorf("%w: content page %q and variant %s both serve %s", ErrRouteConflict, p.Slug, v.ID, p.Path)
		}
		routes = append(routes, Route{Path: p.Path, Kind: KindContent, Slug: p.Slug})
	}
	return routes, nil
}
