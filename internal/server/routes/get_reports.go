package routes

import (
	"net/http"

	"github.com/OFFIS-RIT/npdirectory/backend/internal/queue"
	"github.com/OFFIS-RIT/npdirectory/backend/internal/server/middleware"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/relation"
	storepgx "github.com/OFFIS-RIT/npdirectory/backend/pkg/store/pgx"

	"github.com/jackc/pgx/v5"
	"github.com/labstack/echo/v4"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

// GetRelationReportHandler returns the per person relation counts. The roster
// and the relations are read from one snapshot so both sides of every edge are
// counted against the same data.
func GetRelationReportHandler(c echo.Context) error {
	ctx := c.Request().Context()
	conn := c.(*middleware.AppContext).App.DBConn
	tx, err := conn.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return internalError(c, "Report", err)
	}
	defer tx.Rollback(ctx)

	report, err := relation.GenerateRosterReport(ctx, storepgx.NewEdgeStore(tx), storepgx.NewRoster(tx))
	if err != nil {
		return relationError(c, "Report", err)
	}

	return c.JSON(http.StatusOK, report)
}

func ExportRelationReportHandler(c echo.Context) error {
	type exportReportResponse struct {
		Message string `json:"message"`
		JobID   string `json:"job_id,omitempty"`
	}

	jobID, err := gonanoid.New()
	if err != nil {
		return internalError(c, "Export", err)
	}

	body, err := queue.NewReportExportMessage(jobID).Encode()
	if err != nil {
		return internalError(c, "Export", err)
	}

	ch := c.(*middleware.AppContext).App.Queue
	if err := queue.PublishFIFO(ch, queue.ReportQueue, body); err != nil {
		return internalError(c, "Export", err)
	}

	logger.Info("[Relation][Export] Report export queued", "job_id", jobID)

	return c.JSON(http.StatusAccepted, exportReportResponse{
		Message: "Report export queued",
		JobID:   jobID,
	})
}
