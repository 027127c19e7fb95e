package routes

import (
	"fmt"
	"net/http"

	"github.com/OFFIS-RIT/npdirectory/backend/internal/server/middleware"
	pgdb "github.com/OFFIS-RIT/npdirectory/backend/pkg/db/pgx"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/relation"
	storepgx "github.com/OFFIS-RIT/npdirectory/backend/pkg/store/pgx"

	"github.com/labstack/echo/v4"
)

func CreateRelationHandler(c echo.Context) error {
	type createRelationBody struct {
		FromID       int64  `json:"from_id" validate:"required,gt=0"`
		ToID         int64  `json:"to_id" validate:"required,gt=0"`
		RelationType string `json:"relation_type" validate:"required"`
	}

	type createRelationResponse struct {
		Message string `json:"message"`
		ID      int64  `json:"id,omitempty"`
	}

	data := new(createRelationBody)
	if err := c.Bind(data); err != nil {
		return invalidParams(c)
	}
	if err := c.Validate(data); err != nil {
		return invalidParams(c)
	}

	relType, err := relation.ParseRelationType(data.RelationType)
	if err != nil {
		return relationError(c, "Create", err)
	}
	if data.FromID == data.ToID {
		return c.JSON(http.StatusBadRequest, createRelationResponse{
			Message: "A person cannot be related to itself",
		})
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	tx, err := conn.Begin(ctx)
	if err != nil {
		return internalError(c, "Create", err)
	}
	defer tx.Rollback(ctx)

	qtx := pgdb.New(tx)
	for _, personID := range []int64{data.FromID, data.ToID} {
		exists, err := qtx.PersonExists(ctx, personID)
		if err != nil {
			return internalError(c, "Create", err)
		}
		if !exists {
			return c.JSON(http.StatusNotFound, createRelationResponse{
				Message: fmt.Sprintf("Person %d not found", personID),
			})
		}
	}

	store := storepgx.NewEdgeStore(tx)
	id, err := store.Create(ctx, data.FromID, data.ToID, relType)
	if err != nil {
		return relationError(c, "Create", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return relationError(c, "Create", storepgx.TranslateError(err))
	}

	logger.Info("[Relation][Create] Relation created", "id", id, "from_id", data.FromID, "to_id", data.ToID, "type", relType)

	return c.JSON(http.StatusCreated, createRelationResponse{
		Message: "Relation created",
		ID:      id,
	})
}
