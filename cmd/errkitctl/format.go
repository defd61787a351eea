package main

import (
	"errors"

	"github.com/spf13/cobra"

	"errkit/internal/domain"
	"errkit/internal/infra/errorformat"
)

func newFormatCmd(opts *cliOptions) *cobra.Command {
	var (
		input              string
		somethingWentWrong bool
		message            string
		host               string
	)
	cmd := &cobra.Command{
		Use:   "format [json]",
		Short: "Format a JSON error value as the UI would show it",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readInput(cmd, args, input)
			if err != nil {
				return err
			}
			raw, err := errorformat.ParseJSON(data)
			if err != nil {
				if errors.Is(err, domain.ErrEmptyInput) {
					return exitUsage("no input")
				}
				return exitUsage("invalid JSON input: %v", err)
			}
			method := domain.MethodHandleError
			if somethingWentWrong {
				method = domain.MethodSomethingWentWrong
			}
			ui := errorformat.Format(raw, errorformat.Request{
				Method:         method,
				GenericMessage: message,
				HostName:       host,
			})
			return writeOutput(cmd.OutOrStdout(), opts.output, ui)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "read the value from a file (- for stdin)")
	cmd.Flags().BoolVar(&somethingWentWrong, "something-went-wrong", false, "format in somethingWentWrong mode")
	cmd.Flags().StringVar(&message, "message", domain.DefaultSomethingWentWrongMessage, "generic message")
	cmd.Flags().StringVar(&host, "host", "", "host element name")
	return cmd
}
