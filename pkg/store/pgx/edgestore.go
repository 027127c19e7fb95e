package pgx

import (
	"context"
	"errors"
	"fmt"

	pgdb "github.com/OFFIS-RIT/npdirectory/backend/pkg/db/pgx"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"
	"github.com/OFFIS-RIT/npdirectory/backend/pkg/relation"

	pgxv5 "github.com/jackc/pgx/v5"
)

// EdgeStore implements relation.EdgeStore on PostgreSQL. It runs on whatever
// connection it is given; bound to a transaction it only stages changes and
// the caller decides whether to commit. Reads issued on the same transaction
// see its own writes.
//
// The relations_pair_uidx unique index on (LEAST, GREATEST) of the endpoints
// is what keeps two concurrent creates for one pair from both succeeding.
type EdgeStore struct {
	q *pgdb.Queries
}

// NewEdgeStore binds a store to a caller-owned transaction.
func NewEdgeStore(tx pgxv5.Tx) *EdgeStore {
	return &EdgeStore{q: pgdb.New(tx)}
}

func (s *EdgeStore) Create(ctx context.Context, personA, personB int64, t relation.RelationType) (int64, error) {
	if err := relation.CheckCreate(personA, personB, t); err != nil {
		return 0, err
	}

	existing, err := s.FindByPair(ctx, personA, personB)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, fmt.Errorf("%w: relation %d already joins %s", relation.ErrDuplicateEdge, existing.ID, existing.Pair())
	}

	id, err := s.q.CreateRelation(ctx, pgdb.CreateRelationParams{
		PersonAID:    personA,
		PersonBID:    personB,
		RelationType: string(t),
	})
	if err != nil {
		// ON CONFLICT DO NOTHING returns no row when another transaction
		// committed the same pair after our lookup.
		if errors.Is(err, pgxv5.ErrNoRows) {
			return 0, fmt.Errorf("%w: %s", relation.ErrDuplicateEdge, relation.Normalize(personA, personB))
		}
		return 0, TranslateError(err)
	}

	logger.Debug("[Relation][Create] Relation staged", "id", id, "person_a", personA, "person_b", personB, "type", t)
	return id, nil
}

func (s *EdgeStore) FindByPair(ctx context.Context, x, y int64) (*relation.Edge, error) {
	pair := relation.Normalize(x, y)
	row, err := s.q.GetRelationByPair(ctx, pgdb.GetRelationByPairParams{
		Low:  pair.Low,
		High: pair.High,
	})
	if err != nil {
		if errors.Is(err, pgxv5.ErrNoRows) {
			return nil, nil
		}
		return nil, TranslateError(err)
	}
	edge := toEdge(row)
	return &edge, nil
}

func (s *EdgeStore) DeleteByID(ctx context.Context, id int64) (bool, error) {
	affected, err := s.q.DeleteRelation(ctx, id)
	if err != nil {
		return false, TranslateError(err)
	}
	if affected == 0 {
		logger.Debug("[Relation][Delete] Nothing to delete", "id", id)
		return false, nil
	}
	return true, nil
}

func (s *EdgeStore) DeleteByPair(ctx context.Context, x, y int64) error {
	return relation.DeleteByPair(ctx, s, x, y)
}

func (s *EdgeStore) ListAll(ctx context.Context) ([]relation.Edge, error) {
	rows, err := s.q.GetRelations(ctx)
	if err != nil {
		return nil, TranslateError(err)
	}
	return toEdges(rows), nil
}

func (s *EdgeStore) ListForPerson(ctx context.Context, personID int64) ([]relation.Edge, error) {
	rows, err := s.q.GetPersonRelations(ctx, personID)
	if err != nil {
		return nil, TranslateError(err)
	}
	return toEdges(rows), nil
}

func toEdge(row pgdb.Relation) relation.Edge {
	return relation.Edge{
		ID:      row.ID,
		PersonA: row.PersonAID,
		PersonB: row.PersonBID,
		Type:    relation.RelationType(row.RelationType),
	}
}

func toEdges(rows []pgdb.Relation) []relation.Edge {
	edges := make([]relation.Edge, len(rows))
	for i := range rows {
		edges[i] = toEdge(rows[i])
	}
	return edges
}
