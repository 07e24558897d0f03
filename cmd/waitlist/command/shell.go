package command

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/huynhanx03/waitlist/internal/service"
	"github.com/huynhanx03/waitlist/internal/shell"
)

type Shell struct {
	App *App
}

func (cmd Shell) Command(ctx context.Context) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "run the interactive waitlist menu",
		RunE: func(c *cobra.Command, _ []string) error {
			return cmd.run(ctx, c)
		},
	}
}

func (cmd Shell) run(ctx context.Context, c *cobra.Command) error {
	svc := service.New(cmd.App.Logger, nil)
	defer svc.Close()

	sh := shell.New(svc, c.InOrStdin(), c.OutOrStdout(), cmd.App.Config.Shell, cmd.App.Logger)
	return sh.Run(ctx)
}
