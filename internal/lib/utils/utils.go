// Package utils contains small helpers that don't belong to a specific domain.
package utils

import "strings"

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// EscapeLike escapes the LIKE wildcards in s so it matches literally.
// Queries using it must declare ESCAPE '\'.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// ContainsPattern returns a LIKE pattern matching s anywhere in a value.
// s is used as given; callers trim it.
func ContainsPattern(s string) string {
	return "%" + EscapeLike(s) + "%"
}
