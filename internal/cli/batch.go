package cli

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tin-keeper/models"
)

const (
	formatCSV  = "csv"
	formatJSON = "json"
)

func newBatchCommand(opts *options) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "batch FILE",
		Short: "Validate a CSV file of country,tin records",
		Long: `The batch command reads "country,tin" records from FILE ("-" for stdin) and
validates them in parallel. A leading "country,tin" header is skipped. Results are
printed in input order; the command exits with status 1 when any record is invalid
or names an unknown country.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatCSV && format != formatJSON {
				return fmt.Errorf("%w: %q", ErrUnsupportedFormat, format)
			}

			in, closeFn, err := openInput(cmd, args[0])
			if err != nil {
				return err
			}
			defer closeFn()

			reqs, err := readRecords(in)
			if err != nil {
				return err
			}

			ctx := opts.logger.WithContext(cmd.Context())
			results, err := opts.tinService().ValidateBatch(ctx, reqs)
			if err != nil {
				return err
			}

			resp := models.NewBatchResponse(results)
			if err = writeResults(cmd.OutOrStdout(), format, resp); err != nil {
				return err
			}

			opts.logger.Info().Int("valid", resp.Valid).Int("invalid", resp.Invalid).Int("failed", resp.Failed).Msg("batch finished")
			if resp.Invalid+resp.Failed > 0 {
				return fmt.Errorf("%w: %d invalid, %d failed", ErrInvalidTINs, resp.Invalid, resp.Failed)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatCSV, "output format: csv or json")

	return cmd
}

func openInput(cmd *cobra.Command, path string) (io.Reader, func(), error) {
	if path == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("opening batch file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}

// readRecords parses country,tin records. Blank lines are skipped by the csv
// reader; every other line must have exactly two fields.
func readRecords(r io.Reader) ([]models.ValidationRequest, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2
	reader.TrimLeadingSpace = true
	reader.Comment = '#'

	var reqs []models.ValidationRequest
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedRecord, err)
		}

		if len(reqs) == 0 && isHeader(record) {
			continue
		}
		reqs = append(reqs, models.ValidationRequest{Country: strings.TrimSpace(record[0]), TIN: strings.TrimSpace(record[1])})
	}

	return reqs, nil
}

func isHeader(record []string) bool {
	return strings.EqualFold(strings.TrimSpace(record[0]), "country") && strings.EqualFold(strings.TrimSpace(record[1]), "tin")
}

func writeResults(w io.Writer, format string, resp models.BatchResponse) error {
	if format == formatJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(resp)
	}

	cw := csv.NewWriter(w)
	_ = cw.Write([]string{"country", "tin", "valid", "error"})
	for _, r := range resp.Results {
		_ = cw.Write([]string{r.Country, r.TIN, strconv.FormatBool(r.Valid), r.Error})
	}
	cw.Flush()
	return cw.Error()
}
