package models

import (
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
)

func TestSeekingFlag(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  bool
	}{
		{name: "literal y", value: "y", want: true},
		{name: "upper case Y", value: "Y", want: false},
		{name: "yes", value: "yes", want: false},
		{name: "true", value: "true", want: false},
		{name: "absent", value: "", want: false},
		{name: "n", value: "n", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SeekingFlag(tt.value))
		})
	}
}

func TestParseGenres(t *testing.T) {
	tests := []struct {
		name   string
		values []string
		want   pq.StringArray
	}{
		{name: "nil input", values: nil, want: pq.StringArray{}},
		{name: "multi select", values: []string{"Jazz", "Reggae"}, want: pq.StringArray{"Jazz", "Reggae"}},
		{name: "comma separated", values: []string{"Jazz, Reggae ,Swing"}, want: pq.StringArray{"Jazz", "Reggae", "Swing"}},
		{name: "blanks dropped", values: []string{"", " , Folk,,"}, want: pq.StringArray{"Folk"}},
		{name: "duplicates kept", values: []string{"Jazz", "Jazz"}, want: pq.StringArray{"Jazz", "Jazz"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseGenres(tt.values)
			assert.NotNil(t, got)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestBeforeSaveNormalisesNilGenres(t *testing.T) {
	venue := &Venue{Name: "The Musical Hop"}
	assert.NoError(t, venue.BeforeSave(nil))
	assert.NotNil(t, venue.Genres)
	assert.Empty(t, venue.Genres)

	artist := &Artist{Name: "Guns N Petals", Genres: pq.StringArray{"Rock n Roll"}}
	assert.NoError(t, artist.BeforeSave(nil))
	assert.Equal(t, pq.StringArray{"Rock n Roll"}, artist.Genres)
}
