package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/OFFIS-RIT/npdirectory/backend/internal/util"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/relation"
	storepgx "github.com/OFFIS-RIT/npdirectory/backend/pkg/store/pgx"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrInvalidMessage = errors.New("invalid queue message")

type ReportExportMessage struct {
	JobID       string    `json:"job_id"`
	RequestedAt time.Time `json:"requested_at"`
}

func NewReportExportMessage(jobID string) ReportExportMessage {
	return ReportExportMessage{
		JobID:       jobID,
		RequestedAt: time.Now().UTC(),
	}
}

func (m ReportExportMessage) Encode() ([]byte, error) {
	return json.Marshal(m)
}

func DecodeReportExportMessage(body []byte) (ReportExportMessage, error) {
	var msg ReportExportMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return msg, fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if strings.TrimSpace(msg.JobID) == "" || strings.ContainsAny(msg.JobID, "/\\") {
		return msg, fmt.Errorf("%w: bad job id %q", ErrInvalidMessage, msg.JobID)
	}
	return msg, nil
}

// ReportExport is the document written for one export job.
type ReportExport struct {
	JobID       string           `json:"job_id"`
	RequestedAt time.Time        `json:"requested_at"`
	GeneratedAt time.Time        `json:"generated_at"`
	Report      *relation.Report `json:"report"`
}

// ReportObjectKey is the object key an export job is stored under.
func ReportObjectKey(prefix, jobID string) string {
	prefix = strings.Trim(prefix, "/")
	if prefix == "" {
		return jobID + ".json"
	}
	return prefix + "/" + jobID + ".json"
}

// ReportUploader stores an encoded export under key.
type ReportUploader func(ctx context.Context, key string, data []byte) error

// BuildReportExport generates the report for msg and encodes it.
func BuildReportExport(ctx context.Context, msg ReportExportMessage, store relation.EdgeStore, roster relation.Roster) ([]byte, error) {
	report, err := relation.GenerateRosterReport(ctx, store, roster)
	if err != nil {
		return nil, err
	}
	return json.Marshal(ReportExport{
		JobID:       msg.JobID,
		RequestedAt: msg.RequestedAt,
		GeneratedAt: time.Now().UTC(),
		Report:      report,
	})
}

// ProcessReportExport handles one report_queue delivery. The report is read
// from a single read-only snapshot; the upload is retried before the message
// itself is handed back for redelivery.
func ProcessReportExport(ctx context.Context, conn *pgxpool.Pool, upload ReportUploader, body []byte) error {
	msg, err := DecodeReportExportMessage(body)
	if err != nil {
		return err
	}

	logger.Info("[Queue][Export] Building report", "job_id", msg.JobID)

	tx, err := conn.BeginTx(ctx, pgx.TxOptions{
		IsoLevel:   pgx.RepeatableRead,
		AccessMode: pgx.ReadOnly,
	})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	data, err := BuildReportExport(ctx, msg, storepgx.NewEdgeStore(tx), storepgx.NewRoster(tx))
	if err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}

	key := ReportObjectKey(util.GetEnvString("REPORT_EXPORT_PREFIX", "reports"), msg.JobID)
	retries := util.GetEnvInt("REPORT_EXPORT_RETRIES", 3)
	delay := util.GetEnvDuration("REPORT_EXPORT_RETRY_DELAY", 2*time.Second)
	err = util.RetryErrWithContext(ctx, retries, delay, func(ctx context.Context) error {
		err := upload(ctx, key, data)
		if err != nil {
			logger.Warn("[Queue][Export] Upload failed", "job_id", msg.JobID, "key", key, "err", err)
		}
		return err
	})
	if err != nil {
		return fmt.Errorf("upload %s: %w", key, err)
	}

	logger.Info("[Queue][Export] Report exported", "job_id", msg.JobID, "key", key, "bytes", len(data))
	return nil
}
