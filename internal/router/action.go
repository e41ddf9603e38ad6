package router

import (
	"github.com/deppfellow/portfolio-backend/internal/handler"
	"github.com/labstack/echo/v4"
)

// registerActionRoutes serves the ?action= API, e.g. /api/skills_api.php?action=read.
// Method checks happen per action in the dispatcher.
func registerActionRoutes(api *echo.Group, h *handler.Handlers) {
	api.Any("/:resource", h.Action.Dispatch)
}
