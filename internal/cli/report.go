package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/concordlabs/concord/internal/store"
)

// NewReportCommand creates the report command.
func NewReportCommand(opts *RootOptions) *cobra.Command {
	var (
		dbPath string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "report [request-id]",
		Short: "Show recorded negotiations from the audit store",
		Long: `Report lists recent negotiations from the SQLite audit store, or with
a request ID prints that negotiation's full report.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dbPath == "" {
				return NewExitError(ExitCommandError, "--db is required")
			}

			s, err := store.Open(dbPath)
			if err != nil {
				return WrapExitError(ExitCommandError, "open store", err)
			}
			defer s.Close()

			formatter := &Formatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

			if len(args) == 1 {
				result, err := s.GetResult(cmd.Context(), args[0])
				if errors.Is(err, store.ErrNotFound) {
					return WrapExitError(ExitFailure, "report", err)
				}
				if err != nil {
					return WrapExitError(ExitCommandError, "report", err)
				}

				report := result.Report()
				if err := formatter.Emit(report, func(w io.Writer) { writeReportText(w, report) }); err != nil {
					return WrapExitError(ExitCommandError, "write output", err)
				}
				return nil
			}

			summaries, err := s.ListSummaries(cmd.Context(), limit)
			if err != nil {
				return WrapExitError(ExitCommandError, "report", err)
			}

			err = formatter.Emit(summaries, func(w io.Writer) {
				if len(summaries) == 0 {
					fmt.Fprintln(w, "no negotiations recorded")
					return
				}
				for _, sum := range summaries {
					fmt.Fprintf(w, "%s  %s -> %s  %.2f  %s  %d alignment(s)  %s\n",
						sum.ID, sum.SourceSchema, sum.TargetSchema,
						sum.OverallConfidence, sum.Decision, sum.Alignments,
						sum.CreatedAt.Format("2006-01-02 15:04:05"))
				}
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "write output", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to read negotiations from")
	cmd.Flags().IntVar(&limit, "limit", 20, "maximum number of negotiations to list")

	return cmd
}
