package sqlerr

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/deppfellow/portfolio-backend/internal/errs"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	// Key (profile_id)=(42) is not present in table "profile".
	detailKeyRe = regexp.MustCompile(`Key \(([a-z0-9_]+)\)=`)

	// <table>_<column>_key, <table>_<column>_fkey, <table>_<column>_check
	constraintRe = regexp.MustCompile(`^(.+)_(key|ukey|fkey|check)$`)
)

// ErrCode reports the Code of err, or Other when err is not a database error.
func ErrCode(err error) Code {
	var sqlErr *Error
	if errors.As(err, &sqlErr) {
		return sqlErr.Code
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return MapCode(pgErr.Code)
	}
	return Other
}

// ConvertPgError converts a raw Postgres error into an Error.
// ColumnName is recovered from the detail or constraint name when
// Postgres leaves it empty, which it does for FK and CHECK failures.
func ConvertPgError(src *pgconn.PgError) *Error {
	e := &Error{
		Code:           MapCode(src.Code),
		Severity:       MapSeverity(src.Severity),
		DatabaseCode:   src.Code,
		Message:        src.Message,
		SchemaName:     src.SchemaName,
		TableName:      src.TableName,
		ColumnName:     src.ColumnName,
		DataTypeName:   src.DataTypeName,
		ConstraintName: src.ConstraintName,
		driverErr:      src,
	}

	if e.ColumnName == "" {
		e.ColumnName = columnFromDetail(src.Detail)
	}
	if e.ColumnName == "" {
		e.ColumnName = columnFromConstraint(src.TableName, src.ConstraintName)
	}

	return e
}

func columnFromDetail(detail string) string {
	if m := detailKeyRe.FindStringSubmatch(detail); len(m) > 1 {
		return m[1]
	}
	return ""
}

func columnFromConstraint(table, constraint string) string {
	m := constraintRe.FindStringSubmatch(constraint)
	if len(m) < 2 {
		return ""
	}
	column := m[1]
	if table != "" {
		column = strings.TrimPrefix(column, table+"_")
	}
	return column
}

// singular turns a table name into its entity name: hobbies -> hobby, skills -> skill.
func singular(name string) string {
	name = strings.ToLower(name)
	switch {
	case strings.HasSuffix(name, "ies") && len(name) > 3:
		return name[:len(name)-3] + "y"
	case strings.HasSuffix(name, "s") && len(name) > 1:
		return name[:len(name)-1]
	default:
		return name
	}
}

// entityName prefers the referenced entity of a *_id column over the table itself.
func entityName(tableName, columnName string) string {
	if strings.HasSuffix(strings.ToLower(columnName), "_id") {
		return strings.TrimSuffix(strings.ToLower(columnName), "_id")
	}
	if tableName != "" {
		return singular(tableName)
	}
	return "record"
}

// generateErrorCode builds <ENTITY>_<ACTION>, e.g. PROFILE_NOT_FOUND or SKILL_INVALID.
func generateErrorCode(sqlErr *Error) string {
	var entity string
	if sqlErr.Code == ForeignKeyViolation {
		entity = entityName(sqlErr.TableName, sqlErr.ColumnName)
	} else {
		entity = entityName(sqlErr.TableName, "")
	}

	action := "ERROR"
	switch sqlErr.Code {
	case ForeignKeyViolation:
		action = "NOT_FOUND"
	case UniqueViolation:
		action = "ALREADY_EXISTS"
	case NotNullViolation:
		action = "REQUIRED"
	case CheckViolation, InvalidText, NumericOutOfRange:
		action = "INVALID"
	}

	return fmt.Sprintf("%s_%s", strings.ToUpper(entity), action)
}

func userMessage(sqlErr *Error) string {
	field := humanizeText(sqlErr.ColumnName)

	switch sqlErr.Code {
	case ForeignKeyViolation:
		return fmt.Sprintf("The referenced %s does not exist", entityName(sqlErr.TableName, sqlErr.ColumnName))
	case UniqueViolation:
		if field == "" {
			field = "identifier"
		}
		return fmt.Sprintf("A %s with this %s already exists", entityName(sqlErr.TableName, ""), field)
	case NotNullViolation:
		if field == "" {
			field = "field"
		}
		return fmt.Sprintf("The %s is required", field)
	case CheckViolation:
		if field != "" {
			return fmt.Sprintf("The %s value does not meet required conditions", field)
		}
		return "One or more values do not meet required conditions"
	case InvalidText, NumericOutOfRange:
		return "One or more values have an invalid format"
	default:
		return "An error occurred while processing your request"
	}
}

// humanizeText converts snake_case into Title Case: "end_year" -> "End Year".
func humanizeText(text string) string {
	if text == "" {
		return ""
	}
	return cases.Title(language.English).String(strings.ReplaceAll(text, "_", " "))
}

// HandleError converts a database error into an *errs.HTTPError.
//
// Errors that already are HTTP errors pass through untouched. Constraint
// failures become 400s with a generated code, missing rows become 404s and
// anything else is a 500 that leaks nothing about the database.
func HandleError(err error) error {
	var httpErr *errs.HTTPError
	if errors.As(err, &httpErr) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		sqlErr := ConvertPgError(pgErr)
		code := generateErrorCode(sqlErr)
		message := userMessage(sqlErr)

		switch sqlErr.Code {
		case ForeignKeyViolation, UniqueViolation, CheckViolation, InvalidText, NumericOutOfRange:
			return errs.NewBadRequestError(message, true, &code, nil)
		case NotNullViolation:
			fieldErrors := []errs.FieldError{{
				Field: strings.ToLower(sqlErr.ColumnName),
				Error: "is required",
			}}
			return errs.NewBadRequestError(message, true, &code, fieldErrors)
		default:
			return errs.NewInternalServerError()
		}
	}

	if errors.Is(err, pgx.ErrNoRows) || errors.Is(err, sql.ErrNoRows) {
		return errs.NewNotFoundError("Resource not found", false, nil)
	}

	return errs.NewInternalServerError()
}
