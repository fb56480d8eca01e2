package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-tin-keeper/internal/logger"
	"github.com/MKhiriev/go-tin-keeper/models"
)

const (
	replaceAttempts   = 3
	replaceRetryDelay = 50 * time.Millisecond
)

// localeCodeRepository is the database/sql implementation of
// [LocaleCodeRepository] for both PostgreSQL and SQLite.
type localeCodeRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocaleCodeRepository constructs a [LocaleCodeRepository] backed by db.
func NewLocaleCodeRepository(db *DB, logger *logger.Logger) LocaleCodeRepository {
	logger.Debug().Str("driver", db.driver).Msg("creating locale code repository")
	return &localeCodeRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localeCodeRepository) ListLocaleCodes(ctx context.Context) ([]models.LocaleCode, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListLocaleCodesQuery(r.placeholder())
	if err != nil {
		log.Err(err).Str("func", "localeCodeRepository.ListLocaleCodes").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localeCodeRepository.ListLocaleCodes").Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	codes := make([]models.LocaleCode, 0, 128)
	for rows.Next() {
		var code models.LocaleCode
		if err = rows.Scan(&code.Code, &code.Name, &code.CreatedAt); err != nil {
			log.Err(err).Str("func", "localeCodeRepository.ListLocaleCodes").Msg("failed to scan locale code row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		codes = append(codes, code)
	}

	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "localeCodeRepository.ListLocaleCodes").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return codes, nil
}

func (r *localeCodeRepository) CountLocaleCodes(ctx context.Context) (int, error) {
	query, args, err := buildCountLocaleCodesQuery(r.placeholder())
	if err != nil {
		return 0, err
	}

	var count int
	if err = r.DB.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localeCodeRepository.CountLocaleCodes").Msg("failed to count locale codes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// ReplaceLocaleCodes deletes the stored set and inserts codes in one
// transaction. Transient failures (see [ErrorClassificator]) are retried.
func (r *localeCodeRepository) ReplaceLocaleCodes(ctx context.Context, codes []models.LocaleCode) (int, error) {
	log := logger.FromContext(ctx)

	var err error
	for attempt := 1; attempt <= replaceAttempts; attempt++ {
		var written int
		written, err = r.replaceOnce(ctx, codes)
		if err == nil {
			log.Info().Int("count", written).Msg("locale codes replaced")
			return written, nil
		}

		if r.classify(err) != Retryable || attempt == replaceAttempts {
			break
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("retrying locale code replacement")
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-time.After(replaceRetryDelay * time.Duration(attempt)):
		}
	}

	return 0, err
}

func (r *localeCodeRepository) replaceOnce(ctx context.Context, codes []models.LocaleCode) (int, error) {
	log := logger.FromContext(ctx)

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "localeCodeRepository.ReplaceLocaleCodes").Msg("failed to begin transaction")
		return 0, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() {
		if rbErr := tx.Rollback(); rbErr != nil && !errors.Is(rbErr, sql.ErrTxDone) {
			log.Err(rbErr).Str("func", "localeCodeRepository.ReplaceLocaleCodes").Msg("failed to roll back")
		}
	}()

	query, args, err := buildDeleteLocaleCodesQuery(r.placeholder())
	if err != nil {
		return 0, err
	}
	if _, err = tx.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "localeCodeRepository.ReplaceLocaleCodes").Msg("failed to delete locale codes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	written := 0
	for _, chunk := range chunkLocaleCodes(codes, insertChunkSize) {
		query, args, err = buildInsertLocaleCodesQuery(r.placeholder(), chunk)
		if err != nil {
			return 0, err
		}

		result, execErr := tx.ExecContext(ctx, query, args...)
		if execErr != nil {
			if isUniqueViolation(execErr) {
				return 0, ErrDuplicateLocaleCode
			}
			log.Err(execErr).Str("func", "localeCodeRepository.ReplaceLocaleCodes").Msg("failed to insert locale codes")
			return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, execErr)
		}

		affected, affErr := result.RowsAffected()
		if affErr != nil {
			affected = int64(len(chunk))
		}
		written += int(affected)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "localeCodeRepository.ReplaceLocaleCodes").Msg("failed to commit transaction")
		return 0, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return written, nil
}
