// Package pgsql holds SQL fragments shared by the GORM repositories.
package pgsql

import (
	"strings"

	"ordering/internal/pkg/paging"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ContainsPattern returns a LIKE pattern matching s as a lowercase substring.
func ContainsPattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(strings.TrimSpace(s))) + "%"
}

// OrderBy renders "column DIR, id DIR". The id tie-breaker keeps pages disjoint.
func OrderBy(column string, direction paging.Direction) string {
	dir := "DESC"
	if direction == paging.Ascending {
		dir = "ASC"
	}
	return column + " " + dir + ", id " + dir
}
