package repository

import (
	"context"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/farellandr/fyyur/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContainsPattern(t *testing.T) {
	tests := []struct {
		term string
		want string
	}{
		{term: "Hop", want: "%Hop%"},
		{term: "50%", want: `%50\%%`},
		{term: "a_b", want: `%a\_b%`},
		{term: `back\slash`, want: `%back\\slash%`},
	}

	for _, tt := range tests {
		t.Run(tt.term, func(t *testing.T) {
			assert.Equal(t, tt.want, containsPattern(tt.term))
		})
	}
}

func TestSearchEmptyTermIssuesNoQuery(t *testing.T) {
	db, mock := newMockDB(t)

	result, err := NewVenueRepository(db).Search(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptySearchTerm)
	assert.NotNil(t, result.Data)
	assert.Empty(t, result.Data)
	assert.Equal(t, 0, result.Count)
	assert.Equal(t, "", result.Term)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchMatchesCaseInsensitively(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "artist" WHERE LOWER(name) LIKE LOWER($1)`)).
		WithArgs("%A%").
		WillReturnRows(sqlmock.NewRows(artistColumns).
			AddRow(1, "Guns N Petals", "San Francisco", "CA", "", `{"Rock n Roll"}`, "", "", "", true, "").
			AddRow(3, "The Wild Sax Band", "San Francisco", "CA", "", "{Jazz}", "", "", "", false, ""))

	result, err := NewArtistRepository(db).Search(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, 2, result.Count)
	assert.Equal(t, "A", result.Term)
	assert.Equal(t, "Guns N Petals", result.Data[0].Name)
	assert.Equal(t, []string{"Rock n Roll"}, []string(result.Data[0].Genres))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSearchEscapesWildcards(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "venue" WHERE LOWER(name) LIKE LOWER($1)`)).
		WithArgs(`%100\%\_club%`).
		WillReturnRows(sqlmock.NewRows(venueColumns))

	result, err := NewVenueRepository(db).Search(context.Background(), "100%_club")
	require.NoError(t, err)
	assert.Equal(t, 0, result.Count)
	assert.NotNil(t, result.Data)
	assert.Equal(t, []models.Venue{}, result.Data)

	assert.NoError(t, mock.ExpectationsWereMet())
}
