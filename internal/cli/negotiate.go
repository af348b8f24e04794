package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/concordlabs/concord/internal/align"
	"github.com/concordlabs/concord/internal/negotiate"
	"github.com/concordlabs/concord/internal/store"
)

// progressObserver logs each field evaluation as it completes.
type progressObserver struct{}

func (progressObserver) FieldEvaluated(o negotiate.FieldOutcome) {
	if o.Alignment == nil {
		slog.Debug("field unmatched", "source", o.Source.Name)
		return
	}
	slog.Debug("field aligned",
		"source", o.Source.Name,
		"target", o.Alignment.Target.Name,
		"confidence", o.Alignment.Confidence,
		"rule", o.Alignment.Rule.Kind)
}

// NewNegotiateCommand creates the negotiate command.
func NewNegotiateCommand(opts *RootOptions) *cobra.Command {
	var (
		threshold float64
		floor     float64
		dbPath    string
	)

	cmd := &cobra.Command{
		Use:   "negotiate <source-schema> <target-schema>",
		Short: "Align two schemas and report the negotiation outcome",
		Long: `Negotiate aligns every field of the source schema against the target
schema, generates a transformation rule per alignment, and prints the
negotiation report. Exits 1 when the outcome needs manual review.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			source, err := LoadSchema(args[0])
			if err != nil {
				return err
			}
			target, err := LoadSchema(args[1])
			if err != nil {
				return err
			}

			n := negotiate.New(
				negotiate.WithConfidenceThreshold(threshold),
				negotiate.WithMinFloor(floor),
				negotiate.WithObserver(progressObserver{}),
			)
			result, err := n.Negotiate(ctx, source, target)
			if err != nil {
				return WrapExitError(ExitCommandError, "negotiate", err)
			}

			if dbPath != "" {
				s, err := store.Open(dbPath)
				if err != nil {
					return WrapExitError(ExitCommandError, "open store", err)
				}
				defer s.Close()
				if err := s.SaveResult(ctx, result); err != nil {
					return WrapExitError(ExitCommandError, "save result", err)
				}
				slog.Info("negotiation saved", "id", result.ID, "db", dbPath)
			}

			report := result.Report()
			formatter := &Formatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			if err := formatter.Emit(report, func(w io.Writer) { writeReportText(w, report) }); err != nil {
				return WrapExitError(ExitCommandError, "write output", err)
			}

			if result.Decision == negotiate.DecisionNeedsReview {
				return NewExitError(ExitFailure,
					fmt.Sprintf("negotiation needs review (confidence %.2f below threshold %.2f)",
						result.OverallConfidence, threshold))
			}
			return nil
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", negotiate.DefaultConfidenceThreshold,
		"overall confidence required for approval")
	cmd.Flags().Float64Var(&floor, "floor", align.DefaultMinFloor,
		"minimum candidate score below which a field is unmatched")
	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database to record the negotiation in")

	return cmd
}

// writeReportText renders the negotiation report for humans.
func writeReportText(w io.Writer, r negotiate.Report) {
	fmt.Fprintf(w, "Negotiation %s: %s -> %s\n", r.RequestID, r.SourceSchema, r.TargetSchema)
	fmt.Fprintf(w, "Decision: %s (confidence %.2f)\n", r.Decision, r.OverallConfidence)
	fmt.Fprintf(w, "Alignments: %d (high %d, medium %d, low %d)\n",
		r.TotalAlignments, r.HighConfidence, r.MediumConfidence, r.LowConfidence)

	for _, a := range r.Alignments {
		fmt.Fprintf(w, "  %-20s -> %-22s %.2f  %s\n",
			a.Source.Name, a.Target.Name, a.Confidence, a.Rule.Kind)
	}
	if len(r.Unmatched) > 0 {
		fmt.Fprintf(w, "Unmatched: %v\n", r.Unmatched)
	}
}
