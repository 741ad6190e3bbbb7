package service

import (
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"quotesearch/internal/quote/repository"
)

func newTestService(t *testing.T, settings Settings) (*QuoteService, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewQuoteService(repository.NewQuoteRepository(db), settings), mock
}

func adaRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "quote"}).
		AddRow(int64(1), "Ada Lovelace", "The engine weaves algebra")
}

func countRows(n int) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"count"}).AddRow(n)
}

func TestSearchFindsSubstringMatch(t *testing.T) {
	svc, mock := newTestService(t, Settings{})

	mock.ExpectQuery("SELECT COUNT").WithArgs("algebra").WillReturnRows(countRows(1))
	mock.ExpectQuery("ILIKE").WithArgs("algebra", 10, 0).WillReturnRows(adaRows())

	result, err := svc.Search("algebra", "", 1)
	require.NoError(t, err)
	require.Len(t, result.Quotes, 1)
	assert.Equal(t, "Ada Lovelace", result.Quotes[0].Name)
	assert.Equal(t, 1, result.Meta.TotalCount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchNoMatchesIsEmptyNotError(t *testing.T) {
	svc, mock := newTestService(t, Settings{})

	mock.ExpectQuery("SELECT COUNT").WithArgs("xyz").WillReturnRows(countRows(0))
	mock.ExpectQuery("ILIKE").WithArgs("xyz", 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "quote"}))

	result, err := svc.Search("xyz", "", 1)
	require.NoError(t, err)
	assert.NotNil(t, result.Quotes)
	assert.Empty(t, result.Quotes)
	assert.Equal(t, 0, result.Meta.TotalCount)
	assert.False(t, result.Meta.HasNext)
}

func TestSearchEmptyQueryReturnsUnfilteredListing(t *testing.T) {
	svc, mock := newTestService(t, Settings{})

	// No filter clauses at all: the plain count and the plain ordered list.
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM quotes")).WillReturnRows(countRows(1))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, quote FROM quotes ORDER BY id ASC")).
		WithArgs(10, 0).
		WillReturnRows(adaRows())

	result, err := svc.Search("", "", 1)
	require.NoError(t, err)
	require.Len(t, result.Quotes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchRankedMode(t *testing.T) {
	svc, mock := newTestService(t, Settings{
		Mode:        repository.ModeRanked,
		MinRank:     0.3,
		NameWeight:  "B",
		QuoteWeight: "A",
	})

	mock.ExpectQuery("ts_rank").WithArgs("algebra", 0.3).WillReturnRows(countRows(1))
	mock.ExpectQuery("ts_rank").WithArgs("algebra", 0.3, 10, 0).WillReturnRows(adaRows())

	result, err := svc.Search("algebra", "", 1)
	require.NoError(t, err)
	require.Len(t, result.Quotes, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchModeOverridePerRequest(t *testing.T) {
	// Configured for substring, asked for ranked on this request.
	svc, mock := newTestService(t, Settings{Mode: repository.ModeSubstring, MinRank: 0.3})

	mock.ExpectQuery("ts_rank").WithArgs("algebra", 0.3).WillReturnRows(countRows(0))
	mock.ExpectQuery("ts_rank").WithArgs("algebra", 0.3, 10, 0).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "quote"}))

	_, err := svc.Search("algebra", repository.ModeRanked, 1)
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchInvalidMode(t *testing.T) {
	svc, _ := newTestService(t, Settings{})

	_, err := svc.Search("algebra", "semantic", 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidSearchMode)
}

func TestListPaginationMetadata(t *testing.T) {
	svc, mock := newTestService(t, Settings{})

	rows := sqlmock.NewRows([]string{"id", "name", "quote"})
	for i := 1; i <= 10; i++ {
		rows.AddRow(int64(i), "Name", "Quote")
	}
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(countRows(25))
	mock.ExpectQuery("SELECT id, name, quote FROM quotes ORDER BY id ASC").
		WithArgs(10, 0).
		WillReturnRows(rows)

	result, err := svc.List(1)
	require.NoError(t, err)
	assert.Len(t, result.Quotes, 10)
	assert.Equal(t, 25, result.Meta.TotalCount)
	assert.Equal(t, 3, result.Meta.TotalPages)
	assert.True(t, result.Meta.HasNext)
	assert.False(t, result.Meta.HasPrevious)
}

func TestListLastPageRemainder(t *testing.T) {
	svc, mock := newTestService(t, Settings{})

	rows := sqlmock.NewRows([]string{"id", "name", "quote"})
	for i := 21; i <= 25; i++ {
		rows.AddRow(int64(i), "Name", "Quote")
	}
	mock.ExpectQuery("SELECT COUNT").WillReturnRows(countRows(25))
	mock.ExpectQuery("SELECT id, name, quote FROM quotes ORDER BY id ASC").
		WithArgs(10, 20).
		WillReturnRows(rows)

	result, err := svc.List(3)
	require.NoError(t, err)
	assert.Len(t, result.Quotes, 5)
	assert.False(t, result.Meta.HasNext)
	assert.True(t, result.Meta.HasPrevious)
}

func TestCreateEnforcesFieldBounds(t *testing.T) {
	svc, mock := newTestService(t, Settings{})

	_, err := svc.Create(strings.Repeat("a", 251), "ok")
	require.Error(t, err)

	_, err = svc.Create("ok", strings.Repeat("a", 1001))
	require.Error(t, err)

	mock.ExpectQuery("INSERT INTO quotes").
		WithArgs("Ada Lovelace", "The engine weaves algebra").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	q, err := svc.Create("Ada Lovelace", "The engine weaves algebra")
	require.NoError(t, err)
	assert.Equal(t, int64(1), q.ID)
}
