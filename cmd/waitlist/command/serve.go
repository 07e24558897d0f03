package command

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	"github.com/huynhanx03/waitlist/internal/metrics"
	"github.com/huynhanx03/waitlist/internal/server"
	"github.com/huynhanx03/waitlist/internal/service"
)

type Serve struct {
	App *App
}

func (cmd Serve) Command(ctx context.Context) *cobra.Command {
	var port int
	c := &cobra.Command{
		Use:   "serve",
		Short: "serve the waitlist over HTTP",
		RunE: func(c *cobra.Command, _ []string) error {
			if c.Flags().Changed("port") {
				cmd.App.Config.Server.Port = port
				if err := cmd.App.Config.Validate(); err != nil {
					return err
				}
			}
			return cmd.main(ctx)
		},
	}
	c.Flags().IntVarP(&port, "port", "p", 0, "override server.port")
	return c
}

func (cmd Serve) main(ctx context.Context) error {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc := service.New(cmd.App.Logger, metrics.New(reg))
	defer svc.Close()

	srv := server.New(cmd.App.Config.Server, svc, reg, cmd.App.Logger)
	return srv.Run(ctx)
}
