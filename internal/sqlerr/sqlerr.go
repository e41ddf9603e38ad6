// Package sqlerr turns PostgreSQL driver errors into HTTP errors.
//
// SQLSTATE codes for foreign key, unique, not-null and check violations
// become 400s with a readable message; a missing row becomes a 404.
package sqlerr
