package repository

import (
	"database/sql"
	"fmt"
	"strings"

	"quotesearch/internal/quote/model"
	"quotesearch/pkg/logger"
)

// Search modes supported by the query builder.
const (
	ModeSubstring = "substring"
	ModeRanked    = "ranked"
)

func ValidMode(mode string) bool {
	return mode == ModeSubstring || mode == ModeRanked
}

// RankedOptions tunes the weighted tsvector search path. Weights are
// Postgres setweight labels (A highest through D lowest).
type RankedOptions struct {
	MinRank     float64
	NameWeight  string
	QuoteWeight string
}

func ValidWeight(label string) bool {
	switch label {
	case "A", "B", "C", "D":
		return true
	}
	return false
}

type QuoteRepository struct {
	DB *sql.DB
}

func NewQuoteRepository(db *sql.DB) *QuoteRepository {
	return &QuoteRepository{DB: db}
}

func (r *QuoteRepository) Create(name, quote string) (model.Quote, error) {
	q := model.Quote{Name: name, Quote: quote}
	err := r.DB.QueryRow(`INSERT INTO quotes (name, quote) VALUES ($1, $2) RETURNING id`,
		name, quote).Scan(&q.ID)
	if err != nil {
		logger.Sugar.Errorf("Failed to create quote: %v", err)
	}
	return q, err
}

// List returns a page of the full collection in insertion order.
func (r *QuoteRepository) List(limit, offset int) ([]model.Quote, error) {
	rows, err := r.DB.Query(`SELECT id, name, quote FROM quotes ORDER BY id ASC LIMIT $1 OFFSET $2`,
		limit, offset)
	if err != nil {
		logger.Sugar.Errorf("Failed to list quotes: %v", err)
		return nil, err
	}
	return scanQuotes(rows)
}

func (r *QuoteRepository) Count() (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM quotes`).Scan(&count)
	if err != nil {
		logger.Sugar.Errorf("Failed to count quotes: %v", err)
	}
	return count, err
}

// SearchSubstring returns quotes where query occurs as a case-insensitive
// substring of name or of the quote body, in insertion order.
func (r *QuoteRepository) SearchSubstring(query string, limit, offset int) ([]model.Quote, error) {
	rows, err := r.DB.Query(`SELECT id, name, quote FROM quotes
		WHERE name ILIKE '%' || $1 || '%' OR quote ILIKE '%' || $1 || '%'
		ORDER BY id ASC LIMIT $2 OFFSET $3`,
		escapeLike(query), limit, offset)
	if err != nil {
		logger.Sugar.Errorf("Failed to search quotes for %q: %v", query, err)
		return nil, err
	}
	return scanQuotes(rows)
}

func (r *QuoteRepository) CountSubstring(query string) (int, error) {
	var count int
	err := r.DB.QueryRow(`SELECT COUNT(*) FROM quotes
		WHERE name ILIKE '%' || $1 || '%' OR quote ILIKE '%' || $1 || '%'`,
		escapeLike(query)).Scan(&count)
	if err != nil {
		logger.Sugar.Errorf("Failed to count search results for %q: %v", query, err)
	}
	return count, err
}

// SearchRanked matches query against a weighted tsvector over both fields,
// keeps rows at or above MinRank and orders them by descending rank.
func (r *QuoteRepository) SearchRanked(query string, opts RankedOptions, limit, offset int) ([]model.Quote, error) {
	stmt := fmt.Sprintf(`SELECT id, name, quote FROM (%s) AS matches
		WHERE rank >= $2 ORDER BY rank DESC, id ASC LIMIT $3 OFFSET $4`,
		rankedSubquery(opts))
	rows, err := r.DB.Query(stmt, query, opts.MinRank, limit, offset)
	if err != nil {
		logger.Sugar.Errorf("Failed to run ranked search for %q: %v", query, err)
		return nil, err
	}
	return scanQuotes(rows)
}

func (r *QuoteRepository) CountRanked(query string, opts RankedOptions) (int, error) {
	stmt := fmt.Sprintf(`SELECT COUNT(*) FROM (%s) AS matches WHERE rank >= $2`,
		rankedSubquery(opts))
	var count int
	err := r.DB.QueryRow(stmt, query, opts.MinRank).Scan(&count)
	if err != nil {
		logger.Sugar.Errorf("Failed to count ranked results for %q: %v", query, err)
	}
	return count, err
}

// rankedSubquery builds the weighted rank projection. Weight labels are
// validated before reaching SQL; invalid labels degrade to the defaults
// rather than risking injection through Sprintf.
func rankedSubquery(opts RankedOptions) string {
	nameWeight := opts.NameWeight
	if !ValidWeight(nameWeight) {
		nameWeight = "B"
	}
	quoteWeight := opts.QuoteWeight
	if !ValidWeight(quoteWeight) {
		quoteWeight = "A"
	}
	return fmt.Sprintf(`SELECT id, name, quote,
		ts_rank(setweight(to_tsvector('english', name), '%s') || setweight(to_tsvector('english', quote), '%s'),
			plainto_tsquery('english', $1)) AS rank
		FROM quotes`, nameWeight, quoteWeight)
}

// escapeLike neutralizes LIKE metacharacters so the query string is matched
// literally, the same contract as a case-insensitive substring test.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}

func scanQuotes(rows *sql.Rows) ([]model.Quote, error) {
	defer rows.Close()

	var quotes []model.Quote
	for rows.Next() {
		var q model.Quote
		if err := rows.Scan(&q.ID, &q.Name, &q.Quote); err != nil {
			logger.Sugar.Errorf("Failed to scan quote row: %v", err)
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}
