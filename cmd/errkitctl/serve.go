package main

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"errkit/internal/app"
	"errkit/internal/app/errorhandler"
	"errkit/internal/domain"
	"errkit/internal/ui/console"
)

func newServeCmd(opts *cliOptions) *cobra.Command {
	var (
		watch              bool
		somethingWentWrong bool
	)
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Report JSON error values from stdin as they arrive",
		Long: "Runs the handler until stdin closes or the process is interrupted. " +
			"Settings are hot-reloaded with --watch and metrics are served when " +
			"metrics.listenAddress is configured.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			out := cmd.OutOrStdout()
			application, err := app.InitializeApplication(app.Config{
				ConfigPath: opts.configPath,
				Watch:      watch,
				Presenters: app.Presenters{
					Toaster: console.NewToaster(out),
					Modal:   console.NewModal(out, nil),
				},
				Logger: opts.logger,
			})
			if err != nil {
				return err
			}
			defer errorhandler.SetDefault(nil)

			runCtx, cancelRun := context.WithCancel(ctx)
			defer cancelRun()
			runErr := make(chan error, 1)
			go func() { runErr <- application.Run(runCtx) }()

			report := func(value any) {
				if somethingWentWrong {
					application.Handler().SomethingWentWrong(ctx, value, domain.Options{})
					return
				}
				application.Handler().HandleError(ctx, value, domain.Options{})
			}
			readErr := make(chan error, 1)
			go func() { readErr <- readValues(cmd.InOrStdin(), report) }()

			var inputErr error
			select {
			case <-ctx.Done():
			case inputErr = <-readErr:
			}
			if err := application.Dispatcher().Wait(ctx); err != nil && !errors.Is(err, context.Canceled) {
				opts.logger.Warn("presentations did not drain", zap.Error(err))
			}
			cancelRun()
			if err := <-runErr; err != nil {
				return err
			}
			if inputErr != nil {
				return exitUsage("invalid JSON input: %v", inputErr)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&watch, "watch", true, "reload the --config file when it changes")
	cmd.Flags().BoolVar(&somethingWentWrong, "something-went-wrong", false, "report through somethingWentWrong")
	return cmd
}

func readValues(r io.Reader, fn func(any)) error {
	dec := json.NewDecoder(r)
	for {
		var value any
		err := dec.Decode(&value)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		fn(value)
	}
}
