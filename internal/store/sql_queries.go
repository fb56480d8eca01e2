package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-tin-keeper/models"
)

const localeCodesTable = "locale_codes"

// insertChunkSize keeps a single INSERT under sqlite's bound-variable limit
// (two variables per row).
const insertChunkSize = 400

func buildListLocaleCodesQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select("code", "name", "created_at").
		From(localeCodesTable).
		OrderBy("code").
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildCountLocaleCodesQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Select("COUNT(*)").
		From(localeCodesTable).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func buildDeleteLocaleCodesQuery(ph sq.PlaceholderFormat) (string, []any, error) {
	query, args, err := sq.Delete(localeCodesTable).
		PlaceholderFormat(ph).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

// buildInsertLocaleCodesQuery builds one multi-row INSERT for codes, which
// must not be empty.
func buildInsertLocaleCodesQuery(ph sq.PlaceholderFormat, codes []models.LocaleCode) (string, []any, error) {
	builder := sq.Insert(localeCodesTable).
		Columns("code", "name").
		PlaceholderFormat(ph)

	for _, c := range codes {
		builder = builder.Values(c.Code, c.Name)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func chunkLocaleCodes(codes []models.LocaleCode, size int) [][]models.LocaleCode {
	chunks := make([][]models.LocaleCode, 0, len(codes)/size+1)
	for start := 0; start < len(codes); start += size {
		end := min(start+size, len(codes))
		chunks = append(chunks, codes[start:end])
	}
	return chunks
}
