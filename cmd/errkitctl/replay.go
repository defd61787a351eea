package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"errkit/internal/app"
	"errkit/internal/app/errorhandler"
	"errkit/internal/domain"
	"errkit/internal/infra/telemetry"
	"errkit/internal/ui/console"
)

type replayOptions struct {
	input              string
	channel            string
	host               string
	disableDebounce    bool
	somethingWentWrong bool
	metrics            bool
}

func newReplayCmd(opts *cliOptions) *cobra.Command {
	var ro replayOptions
	cmd := &cobra.Command{
		Use:   "replay [json]",
		Short: "Feed a stream of JSON error values through the handler",
		Long: "Reads concatenated or newline-delimited JSON values and reports each one " +
			"through the error handler, rendering toasts and modals as text.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, ro.input)
			if err != nil {
				return err
			}
			return runReplay(cmd.Context(), cmd.OutOrStdout(), data, opts, ro)
		},
	}
	cmd.Flags().StringVar(&ro.input, "input", "", "read values from a file (- for stdin)")
	cmd.Flags().StringVar(&ro.channel, "type", "", "force the channel: toast or modal")
	cmd.Flags().StringVar(&ro.host, "host", "", "host element name")
	cmd.Flags().BoolVar(&ro.disableDebounce, "disable-debounce", false, "present every value")
	cmd.Flags().BoolVar(&ro.somethingWentWrong, "something-went-wrong", false, "report through somethingWentWrong")
	cmd.Flags().BoolVar(&ro.metrics, "metrics", false, "print errkit metrics after the replay")
	return cmd
}

func runReplay(ctx context.Context, out io.Writer, data []byte, opts *cliOptions, ro replayOptions) error {
	if ctx == nil {
		ctx = context.Background()
	}
	channel, err := domain.ParseChannel(ro.channel)
	if err != nil {
		return exitUsage("invalid --type: %v", err)
	}
	values, err := decodeStream(data)
	if err != nil {
		return exitUsage("invalid JSON input: %v", err)
	}

	application, err := app.InitializeApplication(app.Config{
		ConfigPath: opts.configPath,
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

	callOpts := domain.Options{Type: channel}
	if ro.host != "" {
		callOpts.Element = domain.HostName(ro.host)
	}
	if ro.disableDebounce {
		callOpts.DisableDebounce = domain.Bool(true)
	}

	handler := application.Handler()
	for _, value := range values {
		if ro.somethingWentWrong {
			handler.SomethingWentWrong(ctx, value, callOpts)
		} else {
			handler.HandleError(ctx, value, callOpts)
		}
	}
	if err := application.Dispatcher().Wait(ctx); err != nil {
		return fmt.Errorf("wait for presentations: %w", err)
	}
	opts.logger.Debug("replay finished", zap.Int("values", len(values)))

	if ro.metrics {
		return telemetry.WriteText(out, application.Registry(), telemetry.MetricPrefix)
	}
	return nil
}

func decodeStream(data []byte) ([]any, error) {
	var values []any
	if err := readValues(bytes.NewReader(data), func(value any) {
		values = append(values, value)
	}); err != nil {
		return nil, err
	}
	if len(values) == 0 {
		return nil, domain.ErrEmptyInput
	}
	return values, nil
}
