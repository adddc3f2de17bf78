package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	flag "github.com/spf13/pflag"

	"reposearch/internal/config"
	"reposearch/internal/eventbus"
	"reposearch/internal/github"
	"reposearch/internal/router"
	"reposearch/internal/ui"
	"reposearch/internal/ui/input"
)

type options struct {
	configPath   string
	apiURL       string
	token        string
	route        string
	forceLoading bool
	logFile      string
}

func parseFlags(args []string) (*options, error) {
	opts := &options{}
	fs := flag.NewFlagSet("reposearch", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "Path to the config file (default: user config dir)")
	fs.StringVar(&opts.apiURL, "api-url", "", "GitHub API base URL")
	fs.StringVar(&opts.token, "token", "", "GitHub token (default: $GITHUB_TOKEN)")
	fs.StringVarP(&opts.route, "route", "r", "", "Route to open at start (/ or /search)")
	fs.BoolVar(&opts.forceLoading, "force-loading", false, "Always show the loading state on the search page")
	fs.StringVar(&opts.logFile, "log-file", "reposearch.log", "Log file path")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return opts, nil
}

// applyOverrides layers flags and the environment over the file config
func applyOverrides(cfg *config.Config, opts *options) error {
	if opts.apiURL != "" {
		cfg.GitHub.APIURL = opts.apiURL
	}
	switch {
	case opts.token != "":
		cfg.GitHub.Token = opts.token
	case cfg.GitHub.Token == "":
		cfg.GitHub.Token = os.Getenv("GITHUB_TOKEN")
	}
	if opts.route != "" {
		cfg.UISettings.StartRoute = opts.route
	}
	return cfg.Validate()
}

func main() {
	opts, err := parseFlags(os.Args[1:])
	if err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Set up logging
	if opts.logFile != "" {
		logFile, err := tea.LogToFile(opts.logFile, "reposearch")
		if err != nil {
			fmt.Fprintf(os.Stderr, "Could not open log file: %v\n", err)
			os.Exit(1)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	// Create context for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	bus := eventbus.New()
	defer bus.Close()
	subscribeLogging(bus)

	configSvc := config.NewConfigService(opts.configPath, bus)
	cfg, err := configSvc.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := applyOverrides(cfg, opts); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration: %v\n", err)
		os.Exit(1)
	}

	client := github.NewClient(cfg.GitHub)
	keys := input.DefaultKeyMap()

	r := router.New(bus)
	ui.RegisterRoutes(r, ui.Dependencies{
		Ctx:          ctx,
		Fetcher:      client,
		Bus:          bus,
		Config:       cfg,
		Keys:         keys,
		ForceLoading: opts.forceLoading,
	})

	model, err := ui.NewModel(r, keys, cfg.UISettings.StartRoute)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	programOpts := []tea.ProgramOption{tea.WithContext(ctx)}
	if cfg.UISettings.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)
	model.SetProgram(p)

	log.Printf("Starting UI at %s (api %s)", cfg.UISettings.StartRoute, cfg.GitHub.APIURL)
	if _, err := p.Run(); err != nil && ctx.Err() == nil {
		log.Printf("Error running program: %v", err)
		fmt.Fprintf(os.Stderr, "Error running program: %v\n", err)
		os.Exit(1)
	}
	log.Printf("UI exited normally")
}

// subscribeLogging writes domain events to the log
func subscribeLogging(bus eventbus.EventBus) {
	bus.Subscribe(eventbus.EventSearchStarted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchStartedEvent); ok {
			log.Printf("Search %s started for %q", event.RequestID, event.Query)
		}
	})
	bus.Subscribe(eventbus.EventSearchCompleted, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.SearchCompletedEvent); ok {
			log.Printf("Search %s for %q completed: %d repositories, not found=%t", event.RequestID, event.Query, event.Count, event.NotFound)
		}
	})
	bus.Subscribe(eventbus.EventRouteChanged, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RouteChangedEvent); ok {
			log.Printf("Route changed %q -> %q", event.From, event.To)
		}
	})
	bus.Subscribe(eventbus.EventRoutePrefetched, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.RoutePrefetchedEvent); ok {
			log.Printf("Route %s prefetched (cached=%t)", event.Path, event.Cached)
		}
	})
	bus.Subscribe(eventbus.EventConfigLoaded, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ConfigLoadedEvent); ok {
			log.Printf("Config loaded from %s", event.Path)
		}
	})
	bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
		if event, ok := e.(eventbus.ErrorEvent); ok {
			log.Printf("Error: %s: %v", event.Message, event.Err)
		}
	})
}
