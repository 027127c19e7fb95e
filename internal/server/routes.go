package server

import (
	"github.com/OFFIS-RIT/npdirectory/backend/internal/server/routes"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo) {
	// Health check route
	e.GET("/health", func(c echo.Context) error {
		return c.String(200, "OK")
	})

	apiRoutes := e.Group("/api")

	// Relation routes
	apiRoutes.POST("/relations", routes.CreateRelationHandler)
	apiRoutes.DELETE("/relations/:id", routes.DeleteRelationHandler)
	apiRoutes.DELETE("/relations/:from_id/:to_id", routes.DeleteRelationByPairHandler)
	apiRoutes.GET("/persons/:id/relations", routes.GetPersonRelationsHandler)

	// Report routes
	apiRoutes.GET("/reports/relations", routes.GetRelationReportHandler)
	apiRoutes.POST("/reports/relations/export", routes.ExportRelationReportHandler)
}
