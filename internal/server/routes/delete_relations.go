package routes

import (
	"net/http"

	"github.com/OFFIS-RIT/npdirectory/backend/internal/server/middleware"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"
	storepgx "github.com/OFFIS-RIT/npdirectory/backend/pkg/store/pgx"

	"github.com/labstack/echo/v4"
)

func DeleteRelationHandler(c echo.Context) error {
	type deleteRelationParams struct {
		ID int64 `param:"id" validate:"required,gt=0"`
	}

	data := new(deleteRelationParams)
	if err := c.Bind(data); err != nil {
		return invalidParams(c)
	}
	if err := c.Validate(data); err != nil {
		return invalidParams(c)
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	tx, err := conn.Begin(ctx)
	if err != nil {
		return internalError(c, "Delete", err)
	}
	defer tx.Rollback(ctx)

	deleted, err := storepgx.NewEdgeStore(tx).DeleteByID(ctx, data.ID)
	if err != nil {
		return relationError(c, "Delete", err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, messageResponse{Message: "Relation not found"})
	}

	if err := tx.Commit(ctx); err != nil {
		return internalError(c, "Delete", err)
	}

	logger.Info("[Relation][Delete] Relation deleted", "id", data.ID)

	return c.JSON(http.StatusOK, messageResponse{Message: "Relation deleted"})
}

func DeleteRelationByPairHandler(c echo.Context) error {
	type deleteRelationByPairParams struct {
		FromID int64 `param:"from_id" validate:"required,gt=0"`
		ToID   int64 `param:"to_id" validate:"required,gt=0"`
	}

	data := new(deleteRelationByPairParams)
	if err := c.Bind(data); err != nil {
		return invalidParams(c)
	}
	if err := c.Validate(data); err != nil {
		return invalidParams(c)
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	tx, err := conn.Begin(ctx)
	if err != nil {
		return internalError(c, "Delete", err)
	}
	defer tx.Rollback(ctx)

	if err := storepgx.NewEdgeStore(tx).DeleteByPair(ctx, data.FromID, data.ToID); err != nil {
		return relationError(c, "Delete", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return internalError(c, "Delete", err)
	}

	logger.Info("[Relation][Delete] Relation deleted", "from_id", data.FromID, "to_id", data.ToID)

	return c.JSON(http.StatusOK, messageResponse{Message: "Relation deleted"})
}
