package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/concordlabs/concord/internal/schema"
)

// fileValidation is the per-file outcome of the validate command.
type fileValidation struct {
	Path   string                   `json:"path"`
	Valid  bool                     `json:"valid"`
	Errors []schema.ValidationError `json:"errors,omitempty"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate <schema>...",
		Short: "Check schema files for structural errors",
		Long: `Validate loads each schema file and reports every structural error it
finds. All files are checked even when an earlier one fails. Exits 1 if
any schema is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var results []fileValidation
			invalid := 0

			for _, path := range args {
				s, err := LoadSchema(path)
				if err != nil {
					return err
				}

				errs := s.Validate()
				results = append(results, fileValidation{
					Path:   path,
					Valid:  len(errs) == 0,
					Errors: errs,
				})
				if len(errs) > 0 {
					invalid++
				}
			}

			formatter := &Formatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
			err := formatter.Emit(results, func(w io.Writer) {
				for _, r := range results {
					if r.Valid {
						fmt.Fprintf(w, "%s: ok\n", r.Path)
						continue
					}
					fmt.Fprintf(w, "%s: %d error(s)\n", r.Path, len(r.Errors))
					for _, e := range r.Errors {
						fmt.Fprintf(w, "  %s\n", e.Error())
					}
				}
			})
			if err != nil {
				return WrapExitError(ExitCommandError, "write output", err)
			}

			if invalid > 0 {
				return NewExitError(ExitFailure,
					fmt.Sprintf("%d of %d schema(s) invalid", invalid, len(args)))
			}
			return nil
		},
	}

	return cmd
}
