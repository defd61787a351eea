package main

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"errkit/internal/domain"
	"errkit/internal/infra/telemetry"
)

type cliOptions struct {
	configPath string
	logLevel   string
	output     string
	logger     *zap.Logger
}

func newRootCommand() *cobra.Command {
	opts := cliOptions{
		logLevel: "warn",
		output:   domain.DefaultOutputFormat,
		logger:   zap.NewNop(),
	}

	root := &cobra.Command{
		Use:           "errkitctl",
		Short:         "Classify, format and replay UI errors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			applyRootFlagBindings(cmd, &opts)
			if err := validateOutput(opts.output); err != nil {
				return err
			}
			logger, err := newCLILogger(cmd.ErrOrStderr(), opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			_ = opts.logger.Sync()
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "settings file (yaml, json or toml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", opts.logLevel, "log level for stderr output")
	root.PersistentFlags().StringVarP(&opts.output, "output", "o", opts.output, "output format: json or yaml")

	root.AddCommand(
		newClassifyCmd(&opts),
		newFormatCmd(&opts),
		newReplayCmd(&opts),
		newServeCmd(&opts),
		newVersionCmd(&opts),
	)
	return root
}

func applyRootFlagBindings(cmd *cobra.Command, opts *cliOptions) {
	flags := cmd.Flags()
	flags.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "config":
			opts.configPath, _ = flags.GetString("config")
		case "log-level":
			opts.logLevel, _ = flags.GetString("log-level")
		case "output":
			opts.output, _ = flags.GetString("output")
		}
	})
	opts.output = strings.ToLower(strings.TrimSpace(opts.output))
}

func validateOutput(output string) error {
	switch output {
	case "json", "yaml":
		return nil
	default:
		return exitUsage("--output must be json or yaml, got %q", output)
	}
}

func newCLILogger(w io.Writer, level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.Set(level); err != nil {
		return nil, exitUsage("invalid --log-level %q", level)
	}
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig()),
		zapcore.AddSync(w),
		lvl,
	)
	return zap.New(core).With(zap.String(telemetry.FieldLogSource, telemetry.LogSourceCLI)), nil
}
