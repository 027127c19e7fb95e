package relation

import (
	"context"

	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"
)

// ReportRow holds one person's relation counts. Counts always has an entry
// for every known RelationType, zero when unused.
type ReportRow struct {
	Person Person               `json:"person"`
	Counts map[RelationType]int `json:"counts"`
}

// Violation records an edge contribution that was dropped from a report.
type Violation struct {
	RelationID int64  `json:"relation_id"`
	PersonID   int64  `json:"person_id"`
	Reason     string `json:"reason"`
}

type Report struct {
	Rows       []ReportRow `json:"rows"`
	Violations []Violation `json:"violations,omitempty"`
}

// Total is the sum of every count in the report. Without violations it is
// twice the number of edges.
func (r *Report) Total() int {
	total := 0
	for _, row := range r.Rows {
		for _, n := range row.Counts {
			total += n
		}
	}
	return total
}

const (
	reasonSelfRelation  = "self relation"
	reasonUnknownType   = "unknown relation type"
	reasonMissingPerson = "person not in roster"
)

// GenerateReport counts, for every roster person, their relations per type.
// Each edge adds one to both endpoints. Rows follow roster order; a person
// listed twice is reported once.
//
// Integrity problems do not fail the report: the offending contribution is
// dropped, logged and recorded in Report.Violations.
func GenerateReport(ctx context.Context, store EdgeStore, roster []Person) (*Report, error) {
	report := &Report{Rows: make([]ReportRow, 0, len(roster))}
	if len(roster) == 0 {
		return report, nil
	}

	index := make(map[int64]int, len(roster))
	for _, p := range roster {
		if _, ok := index[p.ID]; ok {
			continue
		}
		counts := make(map[RelationType]int, len(relationTypes))
		for _, t := range relationTypes {
			counts[t] = 0
		}
		index[p.ID] = len(report.Rows)
		report.Rows = append(report.Rows, ReportRow{Person: p, Counts: counts})
	}

	edges, err := store.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	drop := func(edge Edge, personID int64, reason string) {
		logger.Warn(
			"[Relation][Report] Dropping relation contribution",
			"relation_id", edge.ID,
			"person_id", personID,
			"reason", reason,
		)
		report.Violations = append(report.Violations, Violation{
			RelationID: edge.ID,
			PersonID:   personID,
			Reason:     reason,
		})
	}

	for _, edge := range edges {
		if edge.Pair().Degenerate() {
			drop(edge, edge.PersonA, reasonSelfRelation)
			continue
		}
		if !edge.Type.Valid() {
			drop(edge, edge.PersonA, reasonUnknownType)
			drop(edge, edge.PersonB, reasonUnknownType)
			continue
		}
		for _, personID := range [2]int64{edge.PersonA, edge.PersonB} {
			idx, ok := index[personID]
			if !ok {
				drop(edge, personID, reasonMissingPerson)
				continue
			}
			report.Rows[idx].Counts[edge.Type]++
		}
	}

	logger.Debug(
		"[Relation][Report] Report generated",
		"persons", len(report.Rows),
		"relations", len(edges),
		"violations", len(report.Violations),
	)

	return report, nil
}

// GenerateRosterReport loads the full roster and reports against it.
func GenerateRosterReport(ctx context.Context, store EdgeStore, roster Roster) (*Report, error) {
	persons, err := roster.ListPersons(ctx)
	if err != nil {
		return nil, err
	}
	return GenerateReport(ctx, store, persons)
}
