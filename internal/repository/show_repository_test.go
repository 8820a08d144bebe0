package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func TestShowCreateCommits(t *testing.T) {
	db, mock := newMockDB(t)
	start := time.Date(2035, 4, 1, 20, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "shows" ("start_time","venue_id","artist_id")`)).
		WithArgs(start, 1, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))
	mock.ExpectCommit()

	show, err := NewShowRepository(db).Create(context.Background(), ShowInput{StartTime: start, VenueID: 1, ArtistID: 4})
	require.NoError(t, err)
	assert.Equal(t, uint(10), show.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowCreateMissingReferenceRollsBack(t *testing.T) {
	db, mock := newMockDB(t)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "shows"`)).
		WillReturnError(&pgconn.PgError{Code: "23503", Message: "insert or update on table \"shows\" violates foreign key constraint"})
	mock.ExpectRollback()

	show, err := NewShowRepository(db).Create(context.Background(), ShowInput{StartTime: time.Now(), VenueID: 999, ArtistID: 4})
	assert.Nil(t, show)
	assert.ErrorIs(t, err, ErrReferencedRowMissing)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowCreateMissingReferenceWithTranslatedErrors(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "shows"`)).
		WillReturnError(&pgconn.PgError{Code: "23503"})
	mock.ExpectRollback()

	_, err = NewShowRepository(db).Create(context.Background(), ShowInput{StartTime: time.Now(), VenueID: 1, ArtistID: 999})
	assert.ErrorIs(t, err, ErrReferencedRowMissing)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowListWithDetailsUsesInnerJoins(t *testing.T) {
	db, mock := newMockDB(t)
	start := time.Date(2019, 5, 21, 21, 30, 0, 0, time.UTC)

	mock.ExpectQuery(`FROM "shows" INNER JOIN "venue" "Venue" ON .+ INNER JOIN "artist" "Artist" ON`).
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "start_time", "venue_id", "artist_id",
			"Venue__id", "Venue__name",
			"Artist__id", "Artist__name", "Artist__image_link",
		}).AddRow(1, start, 1, 4, 1, "The Musical Hop", 4, "Guns N Petals", "https://example.com/gnp.jpg"))

	shows, err := NewShowRepository(db).ListWithDetails(context.Background())
	require.NoError(t, err)
	require.Len(t, shows, 1)
	require.NotNil(t, shows[0].Venue)
	require.NotNil(t, shows[0].Artist)
	assert.Equal(t, "The Musical Hop", shows[0].Venue.Name)
	assert.Equal(t, "Guns N Petals", shows[0].Artist.Name)
	assert.Equal(t, "https://example.com/gnp.jpg", shows[0].Artist.ImageLink)
	assert.True(t, start.Equal(shows[0].StartTime))

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShowCreateStoresUTC(t *testing.T) {
	db, mock := newMockDB(t)
	berlin := time.FixedZone("CEST", 2*60*60)

	mock.ExpectBegin()
	mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO "shows"`)).
		WithArgs(time.Date(2035, 4, 1, 18, 0, 0, 0, time.UTC), 1, 4).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))
	mock.ExpectCommit()

	show, err := NewShowRepository(db).Create(context.Background(), ShowInput{
		StartTime: time.Date(2035, 4, 1, 20, 0, 0, 0, berlin),
		VenueID:   1,
		ArtistID:  4,
	})
	require.NoError(t, err)
	assert.Equal(t, time.UTC, show.StartTime.Location())
	assert.Equal(t, 18, show.StartTime.Hour())

	assert.NoError(t, mock.ExpectationsWereMet())
}
