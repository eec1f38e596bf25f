package app

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const maxTracedQueryLength = 512

var (
	sqlLiteralRegex    = regexp.MustCompile(`'(?:[^']|'')*'`)
	sqlWhitespaceRegex = regexp.MustCompile(`\s+`)
)

// formatDBQueryForTrace renders the statement stored on otelsql spans as one
// line with quoted literals masked. Repository queries bind values as $N, so
// masking only affects hand-written statements.
func formatDBQueryForTrace(query string) string {
	query = sqlLiteralRegex.ReplaceAllString(query, "'?'")
	query = sqlWhitespaceRegex.ReplaceAllString(strings.TrimSpace(query), " ")
	query = strings.TrimSuffix(query, ";")

	if utf8.RuneCountInString(query) <= maxTracedQueryLength {
		return query
	}
	runes := []rune(query)
	return string(runes[:maxTracedQueryLength]) + "..."
}
