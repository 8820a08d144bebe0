package repository

import (
	"context"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// SearchResult is what a name search hands back to the page layer. Data is
// never nil and Count always equals len(Data).
type SearchResult[T any] struct {
	Term  string `json:"search_term"`
	Count int    `json:"count"`
	Data  []T    `json:"data"`
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern turns a raw term into a LIKE pattern matching it anywhere.
// Wildcards typed by the user are matched literally.
func containsPattern(term string) string {
	return "%" + likeEscaper.Replace(term) + "%"
}

func searchByName[T any](ctx context.Context, db *gorm.DB, term string) (SearchResult[T], error) {
	result := SearchResult[T]{Term: term, Data: []T{}}
	if term == "" {
		return result, ErrEmptySearchTerm
	}

	if err := db.WithContext(ctx).
		Where("LOWER(name) LIKE LOWER(?)", containsPattern(term)).
		Find(&result.Data).Error; err != nil {
		return SearchResult[T]{Term: term, Data: []T{}}, fmt.Errorf("failed to search by name: %w", err)
	}

	result.Count = len(result.Data)
	return result, nil
}
