package pgx

import (
	"context"

	pgdb "github.com/OFFIS-RIT/npdirectory/backend/pkg/db/pgx"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/relation"
)

// Roster reads person summaries from natural_persons. It never writes: person
// lifecycle belongs to the directory's person component.
type Roster struct {
	q *pgdb.Queries
}

func NewRoster(conn pgdb.DBTX) *Roster {
	return &Roster{q: pgdb.New(conn)}
}

// ListPersons returns every person ordered by id.
func (r *Roster) ListPersons(ctx context.Context) ([]relation.Person, error) {
	rows, err := r.q.GetPersonSummaries(ctx)
	if err != nil {
		return nil, err
	}
	persons := make([]relation.Person, len(rows))
	for i, row := range rows {
		persons[i] = relation.Person{
			ID:             row.ID,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			PersonalNumber: row.PersonalNumber,
		}
	}
	return persons, nil
}

// PersonsByID loads the summaries for ids. Unknown ids are absent from the map.
func (r *Roster) PersonsByID(ctx context.Context, ids []int64) (map[int64]relation.Person, error) {
	out := make(map[int64]relation.Person, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	rows, err := r.q.GetPersonSummariesByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = relation.Person{
			ID:             row.ID,
			FirstName:      row.FirstName,
			LastName:       row.LastName,
			PersonalNumber: row.PersonalNumber,
		}
	}
	return out, nil
}

func (r *Roster) Exists(ctx context.Context, id int64) (bool, error) {
	return r.q.PersonExists(ctx, id)
}
