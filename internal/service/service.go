// Package service contains the business logic.
//
// It sits between the handler and repository layers. It receives
// validated payloads from the handler, applies the rules that tags
// cannot express and calls the repositories. Repository errors leave
// this package as *errs.HTTPError.
package service

import (
	"errors"

	"github.com/deppfellow/portfolio-backend/internal/errs"
	"github.com/deppfellow/portfolio-backend/internal/middleware"
	"github.com/deppfellow/portfolio-backend/internal/sqlerr"
	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

// repoError converts a repository failure. A missing row becomes a 404
// carrying notFound; everything else is logged with its cause and then
// mapped by sqlerr, since the client only ever sees the mapped error.
func repoError(c echo.Context, err error, notFound, operation string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return errs.NewNotFoundError(notFound, true, nil)
	}

	middleware.GetLogger(c).Error().
		Err(err).
		Str("operation", operation).
		Msg("repository call failed")

	return sqlerr.HandleError(err)
}
