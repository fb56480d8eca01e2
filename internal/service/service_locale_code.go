package service

import (
	"context"
	"errors"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/internal/metrics"
	"github.com/MKhiriev/go-tin-keeper/internal/store"
	"github.com/MKhiriev/go-tin-keeper/internal/validators"
	"github.com/MKhiriev/go-tin-keeper/models"
)

var localeCodePattern = regexp.MustCompile(`^[A-Z]\d{3}$`)

// localeCodeService keeps the locale-code set of the process-wide registry
// in line with the repository. Without a repository the set lives in memory
// only.
type localeCodeService struct {
	repository store.LocaleCodeRepository

	metrics *metrics.Metrics
	logger  *logger.Logger
}

// NewLocaleCodeService constructs a [LocaleCodeService]. repository may be
// nil.
func NewLocaleCodeService(repository store.LocaleCodeRepository, m *metrics.Metrics, logger *logger.Logger) LocaleCodeService {
	logger.Debug().Bool("persistent", repository != nil).Msg("creating locale code service")
	return &localeCodeService{
		repository: repository,
		metrics:    m,
		logger:     logger,
	}
}

// List returns the stored set, or the in-memory set without a repository.
func (s *localeCodeService) List(ctx context.Context) ([]models.LocaleCode, error) {
	if s.repository == nil {
		return fromRegistry(validators.Default().LocaleCodes()), nil
	}

	codes, err := s.repository.ListLocaleCodes(ctx)
	if err != nil {
		logger.FromContext(ctx).Err(err).Msg("listing locale codes failed")
		return nil, fmt.Errorf("listing locale codes failed: %w", err)
	}

	return codes, nil
}

// Replace normalizes and checks codes, persists them and then swaps the
// registry.
func (s *localeCodeService) Replace(ctx context.Context, codes []models.LocaleCode) (int, error) {
	log := logger.FromContext(ctx)

	normalized, err := normalizeLocaleCodes(codes)
	if err != nil {
		log.Debug().Err(err).Int("count", len(codes)).Msg("locale codes rejected")
		return 0, err
	}

	if s.repository != nil {
		if _, err = s.repository.ReplaceLocaleCodes(ctx, normalized); err != nil {
			if errors.Is(err, store.ErrDuplicateLocaleCode) {
				return 0, ErrDuplicateLocaleCode
			}
			log.Err(err).Msg("persisting locale codes failed")
			return 0, fmt.Errorf("persisting locale codes failed: %w", err)
		}
	}

	s.apply(normalized)
	log.Info().Int("count", len(normalized)).Msg("locale codes replaced")

	return len(normalized), nil
}

// Reload copies the stored set into the registry. An empty store leaves the
// registry untouched.
func (s *localeCodeService) Reload(ctx context.Context) error {
	if s.repository == nil {
		return nil
	}

	codes, err := s.repository.ListLocaleCodes(ctx)
	if err != nil {
		return fmt.Errorf("reloading locale codes failed: %w", err)
	}
	if len(codes) == 0 {
		logger.FromContext(ctx).Debug().Msg("no stored locale codes, keeping current set")
		return nil
	}

	s.apply(codes)
	return nil
}

func (s *localeCodeService) apply(codes []models.LocaleCode) {
	entries := make([]validators.LocaleCode, 0, len(codes))
	for _, c := range codes {
		entries = append(entries, validators.LocaleCode{Code: c.Code, Name: c.Name})
	}

	set := validators.NewLocaleCodesFromEntries(entries)
	validators.ReplaceLocaleCodes(set)
	s.metrics.SetLocaleCodes(set.Len())
}

// BootstrapLocaleCodes installs initial into the registry. With a
// repository, an empty store is seeded with initial and a non-empty one
// overrides it.
func BootstrapLocaleCodes(ctx context.Context, svc LocaleCodeService, repository store.LocaleCodeRepository, initial validators.LocaleCodes) error {
	codes := fromRegistry(initial)

	if repository == nil {
		_, err := svc.Replace(ctx, codes)
		return err
	}

	count, err := repository.CountLocaleCodes(ctx)
	if err != nil {
		return fmt.Errorf("counting stored locale codes failed: %w", err)
	}
	if count == 0 {
		_, err = svc.Replace(ctx, codes)
		return err
	}

	return svc.Reload(ctx)
}

// LoadLocaleCodesFile reads a YAML locale-code document, or returns the
// bundled set when path is empty.
func LoadLocaleCodesFile(path string) (validators.LocaleCodes, error) {
	if path == "" {
		return validators.DefaultLocaleCodes(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return validators.LocaleCodes{}, fmt.Errorf("opening locale codes file: %w", err)
	}
	defer f.Close()

	return validators.LoadLocaleCodes(f)
}

func normalizeLocaleCodes(codes []models.LocaleCode) ([]models.LocaleCode, error) {
	if len(codes) == 0 {
		return nil, fmt.Errorf("%w: empty set", ErrInvalidLocaleCodes)
	}

	seen := make(map[string]struct{}, len(codes))
	normalized := make([]models.LocaleCode, 0, len(codes))
	for _, c := range codes {
		code := strings.ToUpper(strings.TrimSpace(c.Code))
		if !localeCodePattern.MatchString(code) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidLocaleCodes, c.Code)
		}
		if _, dup := seen[code]; dup {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateLocaleCode, code)
		}
		seen[code] = struct{}{}

		normalized = append(normalized, models.LocaleCode{Code: code, Name: strings.TrimSpace(c.Name)})
	}

	return normalized, nil
}

func fromRegistry(set validators.LocaleCodes) []models.LocaleCode {
	entries := set.Entries()
	codes := make([]models.LocaleCode, 0, len(entries))
	for _, e := range entries {
		codes = append(codes, models.LocaleCode{Code: e.Code, Name: e.Name})
	}
	return codes
}
