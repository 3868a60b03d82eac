package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"cmdwiki/internal/catalog"
	"cmdwiki/internal/clipboard"
	"cmdwiki/internal/config"
	"cmdwiki/internal/eventbus"
	"cmdwiki/internal/logging"
	"cmdwiki/internal/ui"
)

// E2EEnv makes the TUI print a readiness marker for the pty tests
const E2EEnv = "CMDWIKI_E2E_TEST"

type App struct {
	ConfigPath  string
	CatalogPath string
	LogFile     string
	Query       string
	Category    string

	cfg       *config.Config
	hadConfig bool
	logger    *zap.Logger
	bus       eventbus.EventBus
	store     *catalog.Store
	unsubs    []func()

	// clipboard writer for the copy command
	writeClipboard func(string) error
}

// Execute runs the root command against os.Args
func Execute() error {
	app := &App{}
	return app.execute(newRootCmd(app))
}

// execute runs cmd and releases the app afterwards, also when setup or the
// command itself failed
func (app *App) execute(cmd *cobra.Command) error {
	defer app.close()
	return cmd.Execute()
}

func newRootCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "cmdwiki",
		Short:        "Searchable command reference in the terminal",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Browse the built-in catalog
  cmdwiki

  # Start with a search and a category
  cmdwiki --query "port-forward" --category "🔌 Services & Networking"

  # Scriptable commands
  cmdwiki list --query logs
  cmdwiki copy --query "get pods" --index 2
`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), app)
		},
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		return app.setup()
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("CMDWIKI_CONFIG", ""), "Path to config file (default: user config dir)")
	cmd.PersistentFlags().StringVar(&app.CatalogPath, "catalog", envOr("CMDWIKI_CATALOG", ""), "Path to a YAML catalog (default: built-in catalog)")
	cmd.PersistentFlags().StringVar(&app.LogFile, "log-file", "", "Path to log file (default: user cache dir)")
	cmd.Flags().StringVar(&app.Query, "query", "", "Initial search text")
	cmd.Flags().StringVar(&app.Category, "category", "", "Initially selected category")

	cmd.AddCommand(newListCmd(app))
	cmd.AddCommand(newCategoriesCmd(app))
	cmd.AddCommand(newCopyCmd(app))

	return cmd
}

// setup loads config, logging, the event bus and the catalog
func (app *App) setup() error {
	configSvc := config.NewConfigService(app.ConfigPath)
	_, statErr := os.Stat(configSvc.Path())
	app.hadConfig = statErr == nil

	cfg, err := configSvc.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	app.cfg = cfg

	logFile := app.LogFile
	if logFile == "" {
		logFile = cfg.Log.File
	}
	logger, err := logging.New(logFile, cfg.Log.Level)
	if err != nil {
		return err
	}
	app.logger = logger
	app.logger.Info("config loaded", zap.String("path", configSvc.Path()), zap.Bool("existing", app.hadConfig))

	app.bus = eventbus.New(logger)
	app.subscribe()

	// write the defaults on first run
	if !app.hadConfig {
		if err := config.NewConfigServiceWithBus(configSvc.Path(), app.bus).Save(cfg); err != nil {
			app.logger.Warn("failed to write default config", zap.Error(err))
		}
	}

	catalogPath := app.CatalogPath
	if catalogPath == "" {
		catalogPath = cfg.CatalogPath
	}
	app.store = catalog.NewStore(app.bus)
	if err := app.store.Load(catalog.ForPath(catalogPath)); err != nil {
		app.bus.Publish(eventbus.ErrorEvent{Message: "catalog load failed", Err: err})
		return err
	}

	if app.writeClipboard == nil {
		app.writeClipboard = clipboard.New(logger).WriteSync
	}
	return nil
}

func (app *App) subscribe() {
	app.unsubs = append(app.unsubs,
		app.bus.Subscribe(eventbus.EventCatalogLoaded, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.CatalogLoadedEvent)
			app.logger.Info("catalog loaded",
				zap.Int("categories", ev.Categories),
				zap.Int("entries", ev.Entries),
				zap.Uint64("version", ev.Version))
		}),
		app.bus.Subscribe(eventbus.EventConfigSaved, func(e eventbus.DomainEvent) {
			app.logger.Info("config saved", zap.String("path", e.(eventbus.ConfigSavedEvent).Path))
		}),
		app.bus.Subscribe(eventbus.EventEntryCopied, func(e eventbus.DomainEvent) {
			app.logger.Info("entry copied", zap.Stringer("key", e.(eventbus.EntryCopiedEvent).Key))
		}),
		app.bus.Subscribe(eventbus.EventAppReady, func(e eventbus.DomainEvent) {
			app.logger.Info("app ready", zap.Bool("existing_config", e.(eventbus.AppReadyEvent).HasExistingConfig))
		}),
		app.bus.Subscribe(eventbus.EventError, func(e eventbus.DomainEvent) {
			ev := e.(eventbus.ErrorEvent)
			app.logger.Error(ev.Message, zap.Error(ev.Err))
		}),
	)
}

// close flushes queued events to the log before the subscriptions go away
func (app *App) close() {
	if app.bus != nil {
		app.bus.Close()
	}
	for _, unsub := range app.unsubs {
		unsub()
	}
	app.unsubs = nil
	if app.logger != nil {
		_ = app.logger.Sync()
	}
}

func runTUI(ctx context.Context, app *App) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	model := ui.NewModel(app.store, app.cfg, clipboard.New(app.logger), app.bus, app.logger, ui.Options{
		Query:    app.Query,
		Category: app.Category,
	})

	opts := []tea.ProgramOption{tea.WithContext(ctx)}
	if app.cfg.UISettings.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, opts...)
	model.SetProgram(p)

	app.bus.Publish(eventbus.AppReadyEvent{HasExistingConfig: app.hadConfig})
	if os.Getenv(E2EEnv) == "1" {
		fmt.Fprintln(os.Stdout, "__READY__")
	}

	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			app.logger.Info("terminated by signal")
			return nil
		}
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}
