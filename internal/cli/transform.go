package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/concordlabs/concord/internal/negotiate"
)

// NewTransformCommand creates the transform command.
func NewTransformCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "transform <source-schema> <target-schema> <record.json>",
		Short: "Negotiate an alignment and convert a record through it",
		Long: `Transform negotiates the schema pair and applies the generated
transformation rules to a source record, printing the converted record.
Values a rule cannot convert pass through unchanged with a warning.`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := LoadSchema(args[0])
			if err != nil {
				return err
			}
			target, err := LoadSchema(args[1])
			if err != nil {
				return err
			}
			record, err := LoadRecord(args[2])
			if err != nil {
				return err
			}

			result, err := negotiate.New().Negotiate(cmd.Context(), source, target)
			if err != nil {
				return WrapExitError(ExitCommandError, "negotiate", err)
			}

			out, warnings := negotiate.Transform(result, record)
			for _, warn := range warnings {
				slog.Warn("transformation warning", "field", warn.Field, "message", warn.Message)
			}

			formatter := &Formatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if opts.Format == "json" {
				payload := struct {
					Record   map[string]any      `json:"record"`
					Warnings []negotiate.Warning `json:"warnings,omitempty"`
					Decision negotiate.Decision  `json:"decision"`
				}{Record: out, Warnings: warnings, Decision: result.Decision}
				if err := formatter.JSON(payload); err != nil {
					return WrapExitError(ExitCommandError, "write output", err)
				}
				return nil
			}

			if err := formatter.JSON(out); err != nil {
				return WrapExitError(ExitCommandError, "write output", err)
			}
			w := cmd.OutOrStdout()
			for _, warn := range warnings {
				fmt.Fprintf(w, "warning: %s: %s\n", warn.Field, warn.Message)
			}
			return nil
		},
	}

	return cmd
}
