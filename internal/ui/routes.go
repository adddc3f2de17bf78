package ui

import (
	"context"

	"reposearch/internal/config"
	"reposearch/internal/eventbus"
	"reposearch/internal/router"
	"reposearch/internal/search"
	"reposearch/internal/ui/input"
	"reposearch/internal/ui/pages"
)

// Dependencies are the services the pages are built from
type Dependencies struct {
	Ctx          context.Context
	Fetcher      search.Fetcher
	Bus          eventbus.EventBus
	Config       *config.Config
	Keys         input.KeyMap
	ForceLoading bool
}

// RegisterRoutes binds the home and search pages to r
func RegisterRoutes(r *router.Router, deps Dependencies) {
	ctx := deps.Ctx
	if ctx == nil {
		ctx = context.Background()
	}
	cfg := deps.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	r.Register(pages.ReturnPath, func() router.Page {
		return pages.NewHomePage(r, deps.Keys)
	})

	r.Register(pages.SearchPath, func() router.Page {
		opts := []search.Option{
			search.WithTimeout(cfg.GitHub.Timeout()),
			search.WithEventBus(deps.Bus),
		}
		if deps.ForceLoading {
			opts = append(opts, search.WithLoadingOverride(true))
		}
		controller := search.NewController(deps.Fetcher, opts...)
		return pages.NewSearchPage(ctx, controller, r, pages.SearchPageOptions{
			Keys:             deps.Keys,
			ShowDescriptions: cfg.UISettings.ShowDescriptions,
		})
	})
}
