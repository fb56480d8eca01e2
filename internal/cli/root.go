package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MKhiriev/go-tin-keeper/internal/config"
	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/service"
	"github.com/MKhiriev/go-tin-keeper/internal/validators"
	"github.com/MKhiriev/go-tin-keeper/models"
)

const defaultLogLevel = "warn"

type options struct {
	localeCodesFile string
	logLevel        string
	workers         int

	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

// NewRootCommand builds the tinctl command tree.
func NewRootCommand(buildInfo models.AppBuildInfo) *cobra.Command {
	opts := &options{buildInfo: buildInfo, logger: logger.Nop()}

	root := &cobra.Command{
		Use:           "tinctl",
		Short:         "Validate tax identification numbers offline",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.localeCodesFile, "locale-codes", "", "YAML file replacing the bundled Italian locale codes")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", defaultLogLevel, "log level written to stderr")
	root.PersistentFlags().IntVar(&opts.workers, "workers", 0, "parallel validations in batch mode (0 = number of CPUs)")

	root.AddCommand(
		newValidateCommand(opts),
		newBatchCommand(opts),
		newCountriesCommand(opts),
		newHashPasswordCommand(opts),
		newVersionCommand(opts),
	)

	return root
}

func (o *options) setup(cmd *cobra.Command) error {
	o.logger = logger.NewConsoleLogger(cmd.ErrOrStderr(), "tinctl")
	if err := logger.SetLevel(o.logLevel); err != nil {
		return err
	}

	if o.localeCodesFile == "" {
		return nil
	}

	codes, err := service.LoadLocaleCodesFile(o.localeCodesFile)
	if err != nil {
		return fmt.Errorf("loading locale codes: %w", err)
	}
	validators.ReplaceLocaleCodes(codes)
	o.logger.Info().Int("count", codes.Len()).Str("file", o.localeCodesFile).Msg("locale codes replaced")

	return nil
}

func (o *options) tinService() service.TINService {
	return service.NewTINService(config.App{BatchWorkers: o.workers}, nil, o.logger)
}
