package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gobwas/glob"
	"github.com/spf13/cobra"

	"findbar/internal/config"
	"findbar/internal/eventbus"
	"findbar/internal/findbar"
	"findbar/internal/hostmsg"
	"findbar/internal/l10n"
	"findbar/internal/logging"
	"findbar/internal/ui"
	"findbar/internal/viewer"
)

type rootOptions struct {
	configPath   string
	listen       string
	keywordsFile string
	catalog      string
	logLevel     string
}

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	return newRootCmd(&rootOptions{})
}

func newRootCmd(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "findbar [document]",
		Short:   "Terminal document viewer with a host-driven keyword find bar",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, opts)
			if err != nil {
				return err
			}
			document := ""
			if len(args) == 1 {
				document = args[0]
			}
			return run(cmd.Context(), cfg, document)
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default is ./"+config.FileName+" or the user config dir)")

	flags := cmd.Flags()
	flags.StringVar(&opts.listen, "listen", "", "address for the host message endpoint, e.g. 127.0.0.1:7300")
	flags.StringVar(&opts.keywordsFile, "keywords-file", "", "JSON keywords payload to watch")
	flags.StringVar(&opts.catalog, "catalog", "", "YAML localization catalog")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newInitCmd(opts))
	return cmd
}

// loadConfig reads the config file and applies flags set on the command line
func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	svc := config.NewConfigService(opts.configPath)
	var cfg *config.Config
	var err error
	if opts.configPath != "" {
		cfg, err = svc.LoadFromPath(opts.configPath)
	} else {
		cfg, err = svc.Load()
	}
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("listen") {
		cfg.Host.Listen = opts.listen
	}
	if flags.Changed("keywords-file") {
		cfg.Host.KeywordsFile = opts.keywordsFile
	}
	if flags.Changed("catalog") {
		cfg.L10n.Catalog = opts.catalog
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	return cfg, nil
}

func run(ctx context.Context, cfg *config.Config, document string) error {
	closeLog, err := logging.Init(logging.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Sink:       cfg.Log.Sink,
		File:       cfg.Log.File,
		MaxSizeMB:  cfg.Log.MaxSizeMB,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAgeDays: cfg.Log.MaxAgeDays,
	}, "findbar")
	if err != nil {
		return err
	}
	defer closeLog()

	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bus := eventbus.New()

	localizer, err := newLocalizer(cfg.L10n)
	if err != nil {
		return err
	}

	allowed := append([]string(nil), cfg.Host.AllowedOrigins...)
	if cfg.Host.KeywordsFile != "" {
		allowed = append(allowed, glob.QuoteMeta(strings.ToLower(hostmsg.FileOrigin(cfg.Host.KeywordsFile))))
	}
	policy, err := hostmsg.NewOriginPolicy(cfg.Host.Origin, allowed)
	if err != nil {
		return err
	}
	hub := hostmsg.NewHub(policy)

	var sinks hostmsg.Sinks
	if cfg.Host.CallbackURL != "" {
		httpSink, err := hostmsg.NewHTTPSink(cfg.Host.CallbackURL, cfg.Host.Origin, nil)
		if err != nil {
			return err
		}
		defer httpSink.Close()
		sinks = append(sinks, httpSink)
	}
	if cfg.Host.OutboxFile != "" {
		outbox, err := hostmsg.NewOutboxSink(cfg.Host.OutboxFile)
		if err != nil {
			return err
		}
		sinks = append(sinks, outbox)
	}

	engine := viewer.NewEngine(bus)
	defer engine.Close()
	if document != "" {
		if err := engine.Load(document); err != nil {
			return err
		}
	}

	// Create event channel for UI
	eventChan := make(chan tea.Msg, 100)
	forward := func(msg tea.Msg) {
		select {
		case eventChan <- msg:
		default:
			slog.Warn("ui: event channel full, dropping message", "type", fmt.Sprintf("%T", msg))
		}
	}

	finder := findbar.New(findbar.Options{
		Bus:            bus,
		Host:           hub,
		Sink:           sinks,
		L10n:           localizer,
		Post:           forward,
		HighlightAll:   cfg.UISettings.HighlightAll,
		CaseSensitive:  cfg.UISettings.CaseSensitive,
		EntireWord:     cfg.UISettings.EntireWord,
		MatchesLimit:   cfg.UISettings.MatchesLimit,
		NoResultsCount: !cfg.UISettings.ShowResultsCount,
	})
	defer finder.Dispose()

	// Search engine output reaches the find bar through the program loop
	for _, t := range []eventbus.EventType{eventbus.EventFindStatus, eventbus.EventFindMatchesCount} {
		unsub := bus.Subscribe(t, func(e eventbus.DomainEvent) {
			forward(ui.EventMsg{Event: e})
		})
		defer unsub()
	}

	model := ui.NewModel(bus, finder, engine)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	model.SetProgram(p)

	forwarderDone := make(chan struct{})
	go func() {
		defer close(forwarderDone)
		for msg := range eventChan {
			p.Send(msg)
		}
	}()

	// Host sources start after the coordinator subscribed to the hub
	var server *hostmsg.Server
	if cfg.Host.Listen != "" {
		server, err = hostmsg.Listen(cfg.Host.Listen, hub)
		if err != nil {
			return err
		}
	}
	var fileSource *hostmsg.FileSource
	if cfg.Host.KeywordsFile != "" {
		fileSource, err = hostmsg.WatchFile(cfg.Host.KeywordsFile, hub)
		if err != nil {
			if server != nil {
				_ = server.Shutdown(context.Background())
			}
			return err
		}
	}

	slog.Info("starting UI", "document", document, "listen", cfg.Host.Listen, "keywords_file", cfg.Host.KeywordsFile)
	_, runErr := p.Run()
	if errors.Is(runErr, tea.ErrProgramKilled) && ctx.Err() != nil {
		runErr = nil
	}

	// Stop every producer before closing the channel they send on
	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Warn("hostmsg: shutdown", "error", err)
		}
		cancel()
	}
	if fileSource != nil {
		_ = fileSource.Close()
	}
	finder.Dispose()
	close(eventChan)
	<-forwarderDone

	if runErr != nil {
		slog.Error("UI exited with error", "error", runErr)
		return runErr
	}
	slog.Info("UI exited normally")
	return nil
}

func newLocalizer(cfg config.L10n) (l10n.Localizer, error) {
	if cfg.Catalog == "" {
		return l10n.Null{}, nil
	}
	if _, err := os.Stat(cfg.Catalog); err != nil {
		return nil, fmt.Errorf("localization catalog: %w", err)
	}
	catalog, err := l10n.LoadCatalog(cfg.Catalog, cfg.Locale)
	if err != nil {
		return nil, err
	}
	if !catalog.Covers() {
		slog.Warn("l10n: locale not in catalog, using built-in text", "locale", cfg.Locale, "available", catalog.Locales())
	}
	return catalog, nil
}
