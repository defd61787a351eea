package main

import (
	"errors"

	"github.com/spf13/cobra"

	"errkit/internal/domain"
	"errkit/internal/infra/errorformat"
)

type classifyResult struct {
	Shape   domain.Shape `json:"shape"`
	Message string       `json:"message,omitempty"`
	Stack   string       `json:"stack,omitempty"`
}

func newClassifyCmd(opts *cliOptions) *cobra.Command {
	var input string
	cmd := &cobra.Command{
		Use:   "classify [json]",
		Short: "Report the shape of a JSON error value",
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
			result := classifyResult{Shape: raw.Shape()}
			switch v := raw.(type) {
			case domain.StringError:
				result.Message = v.Text
			case domain.ExceptionError:
				result.Message = v.Message
				result.Stack = v.Stack
			}
			return writeOutput(cmd.OutOrStdout(), opts.output, result)
		},
	}
	cmd.Flags().StringVar(&input, "input", "", "read the value from a file (- for stdin)")
	return cmd
}
