package cli

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"classmerge/internal/core"
	"classmerge/internal/server"
)

type serveOptions struct {
	Listen    string
	CacheSize int
}

func newServeCommand() *cobra.Command {
	opts := serveOptions{}
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve merge and explain over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Listen, "listen", ":8080", "Listen address")
	cmd.Flags().IntVar(&opts.CacheSize, "cache-size", core.DefaultCacheSize, "Merge result cache size (0 disables)")
	_ = viper.BindPFlag("listen", cmd.Flags().Lookup("listen"))
	return cmd
}

func runServe(ctx context.Context, cmd *cobra.Command, opts serveOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := newAppService()
	merger, err := service.NewMerger(ctx, taxonomyRequest(), resolveInt(cmd, opts.CacheSize, "cache_size", "cache-size"))
	if err != nil {
		return err
	}
	srv := server.New(merger, log.Logger)
	return srv.Run(ctx, resolveString(cmd, opts.Listen, "listen", "listen"))
}
