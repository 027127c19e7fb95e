package routes

import (
	"fmt"
	"net/http"

	"github.com/OFFIS-RIT/npdirectory/backend/internal/server/middleware"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/relation"
	storepgx "github.com/OFFIS-RIT/npdirectory/backend/pkg/store/pgx"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
)

func GetPersonRelationsHandler(c echo.Context) error {
	type getPersonRelationsParams struct {
		ID     int64 `param:"id" validate:"required,gt=0"`
		Sorted bool  `query:"sorted"`
	}

	type relatedPerson struct {
		RelationID   int64                 `json:"relation_id"`
		RelationType relation.RelationType `json:"relation_type"`
		Person       relation.Person       `json:"person"`
	}

	type getPersonRelationsResponse struct {
		PersonID  int64           `json:"person_id"`
		Relations []relatedPerson `json:"relations"`
	}

	data := new(getPersonRelationsParams)
	if err := c.Bind(data); err != nil {
		return invalidParams(c)
	}
	if err := c.Validate(data); err != nil {
		return invalidParams(c)
	}

	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	tx, err := conn.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return internalError(c, "Neighbors", err)
	}
	defer tx.Rollback(ctx)
	roster := storepgx.NewRoster(tx)

	exists, err := roster.Exists(ctx, data.ID)
	if err != nil {
		return internalError(c, "Neighbors", err)
	}
	if !exists {
		return c.JSON(http.StatusNotFound, messageResponse{
			Message: fmt.Sprintf("Person %d not found", data.ID),
		})
	}

	var opts []relation.NeighborOption
	if data.Sorted {
		opts = append(opts, relation.WithSortedNeighbors())
	}
	neighbors, err := relation.NeighborsOf(ctx, storepgx.NewEdgeStore(tx), data.ID, opts...)
	if err != nil {
		return relationError(c, "Neighbors", err)
	}

	ids := make([]int64, len(neighbors))
	for i, n := range neighbors {
		ids[i] = n.PersonID
	}
	persons, err := roster.PersonsByID(ctx, ids)
	if err != nil {
		return internalError(c, "Neighbors", err)
	}

	related := make([]relatedPerson, len(neighbors))
	for i, n := range neighbors {
		person, ok := persons[n.PersonID]
		if !ok {
			person = relation.Person{ID: n.PersonID}
		}
		related[i] = relatedPerson{
			RelationID:   n.RelationID,
			RelationType: n.Type,
			Person:       person,
		}
	}

	return c.JSON(http.StatusOK, getPersonRelationsResponse{
		PersonID:  data.ID,
		Relations: related,
	})
}
