package command

import (
	"context"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/huynhanx03/waitlist/pkg/logger"
	"github.com/huynhanx03/waitlist/pkg/settings"
)

// App holds what every subcommand needs once flags are parsed.
type App struct {
	ConfigPath string
	Config     *settings.Config
	Logger     *zap.Logger
}

// load reads the configuration and builds the logger.
func (a *App) load() error {
	cfg, err := settings.Load(a.ConfigPath)
	if err != nil {
		return err
	}
	log, err := logger.New(cfg.Logger)
	if err != nil {
		return err
	}
	a.Config, a.Logger = cfg, log
	return nil
}

func (a *App) sync() {
	if a.Logger != nil {
		_ = a.Logger.Sync()
	}
}

// NewRoot returns the waitlist command tree. Running it without a
// subcommand starts the interactive shell.
func NewRoot(ctx context.Context) *cobra.Command {
	const description = "Restaurant waitlist manager"
	app := &App{}
	shell := Shell{App: app}

	root := &cobra.Command{
		Use:           "waitlist",
		Short:         description,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return app.load()
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			app.sync()
		},
		RunE: func(c *cobra.Command, _ []string) error {
			return shell.run(ctx, c)
		},
	}
	root.PersistentFlags().StringVarP(&app.ConfigPath, "config", "c", "", "path to a YAML config file")

	root.AddCommand(
		shell.Command(ctx),
		Serve{App: app}.Command(ctx),
	)
	return root
}
