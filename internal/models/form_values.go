package models

import (
	"strings"

	"github.com/lib/pq"
)

// SeekingFlag maps the single-character checkbox value posted by the
// listing forms. Only the literal "y" means true.
func SeekingFlag(value string) bool {
	return value == "y"
}

// ParseGenres flattens the posted genre values. Each value may hold a
// comma-separated list; entries are trimmed and blanks dropped, order is kept.
// The result is never nil.
func ParseGenres(values []string) pq.StringArray {
	genres := pq.StringArray{}
	for _, value := range values {
		for _, genre := range strings.Split(value, ",") {
			genre = strings.TrimSpace(genre)
			if genre == "" {
				continue
			}
			genres = append(genres, genre)
		}
	}
	return genres
}
