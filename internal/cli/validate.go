package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tin-keeper/models"
)

func newValidateCommand(opts *options) *cobra.Command {
	var (
		country string
		showTIN bool
	)

	cmd := &cobra.Command{
		Use:   "validate --country CODE TIN...",
		Short: "Validate TINs of one country",
		Long: `The validate command checks every argument against the scheme of the given
country and prints one line per TIN. It exits with status 1 when any TIN is invalid.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := opts.logger.WithContext(cmd.Context())
			svc := opts.tinService()
			out := cmd.OutOrStdout()

			invalid := 0
			for _, tin := range args {
				res, err := svc.Validate(ctx, models.ValidationRequest{TIN: tin, Country: country})
				if err != nil {
					return fmt.Errorf("%s: %w", country, err)
				}
				if !res.Valid {
					invalid++
				}

				shown := res.TIN
				if showTIN {
					shown = tin
				}
				fmt.Fprintf(out, "%s\t%s\t%s\n", res.Country, shown, verdictWord(res.Valid))
			}

			if invalid > 0 {
				return fmt.Errorf("%w: %d of %d", ErrInvalidTINs, invalid, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&country, "country", "c", "", "two-letter country code (e.g. DE, UK)")
	cmd.Flags().BoolVar(&showTIN, "show-tin", false, "print TINs unmasked")
	_ = cmd.MarkFlagRequired("country")

	return cmd
}

func verdictWord(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}
