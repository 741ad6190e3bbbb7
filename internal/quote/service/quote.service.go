package service

import (
	"errors"
	"fmt"

	"quotesearch/internal/quote/model"
	"quotesearch/internal/quote/repository"
	"quotesearch/pkg/pagination"
)

var (
	ErrInvalidSearchMode = errors.New("invalid search mode")
	ErrFieldTooLong      = errors.New("field exceeds maximum length")
)

// Settings carries the startup search configuration. Mode can still be
// overridden per request through the handler.
type Settings struct {
	Mode        string
	MinRank     float64
	NameWeight  string
	QuoteWeight string
	PageSize    int
}

type QuoteService struct {
	Repo     *repository.QuoteRepository
	Settings Settings
}

func NewQuoteService(repo *repository.QuoteRepository, settings Settings) *QuoteService {
	if settings.PageSize < 1 {
		settings.PageSize = pagination.DefaultPageSize
	}
	if settings.Mode == "" {
		settings.Mode = repository.ModeSubstring
	}
	return &QuoteService{Repo: repo, Settings: settings}
}

// ListResult is a page of quotes plus its pagination envelope.
type ListResult struct {
	Quotes []model.Quote       `json:"quotes"`
	Meta   pagination.Metadata `json:"pagination"`
}

// List returns one page of the full collection in insertion order.
func (s *QuoteService) List(page int) (*ListResult, error) {
	params := pagination.NewParams(page, s.Settings.PageSize)

	total, err := s.Repo.Count()
	if err != nil {
		return nil, err
	}
	quotes, err := s.Repo.List(params.Limit(), params.Offset())
	if err != nil {
		return nil, err
	}
	return newListResult(quotes, total, params), nil
}

// Search filters the collection by query. An empty query is not an error:
// it degrades to the unfiltered listing. An empty result set is a valid
// page, also not an error.
func (s *QuoteService) Search(query, mode string, page int) (*ListResult, error) {
	if query == "" {
		return s.List(page)
	}

	if mode == "" {
		mode = s.Settings.Mode
	}
	if !repository.ValidMode(mode) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidSearchMode, mode)
	}

	params := pagination.NewParams(page, s.Settings.PageSize)

	if mode == repository.ModeRanked {
		opts := repository.RankedOptions{
			MinRank:     s.Settings.MinRank,
			NameWeight:  s.Settings.NameWeight,
			QuoteWeight: s.Settings.QuoteWeight,
		}
		total, err := s.Repo.CountRanked(query, opts)
		if err != nil {
			return nil, err
		}
		quotes, err := s.Repo.SearchRanked(query, opts, params.Limit(), params.Offset())
		if err != nil {
			return nil, err
		}
		return newListResult(quotes, total, params), nil
	}

	total, err := s.Repo.CountSubstring(query)
	if err != nil {
		return nil, err
	}
	quotes, err := s.Repo.SearchSubstring(query, params.Limit(), params.Offset())
	if err != nil {
		return nil, err
	}
	return newListResult(quotes, total, params), nil
}

// Create validates the field bounds the schema enforces and inserts one quote.
func (s *QuoteService) Create(name, quote string) (model.Quote, error) {
	if len(name) > model.MaxNameLength {
		return model.Quote{}, fmt.Errorf("%w: name over %d characters", ErrFieldTooLong, model.MaxNameLength)
	}
	if len(quote) > model.MaxQuoteLength {
		return model.Quote{}, fmt.Errorf("%w: quote over %d characters", ErrFieldTooLong, model.MaxQuoteLength)
	}
	return s.Repo.Create(name, quote)
}

func newListResult(quotes []model.Quote, total int, params pagination.Params) *ListResult {
	if quotes == nil {
		quotes = []model.Quote{}
	}
	return &ListResult{
		Quotes: quotes,
		Meta:   pagination.NewMetadata(total, params),
	}
}
