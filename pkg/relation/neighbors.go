package relation

import (
	"cmp"
	"context"
	"slices"

	"github.com/OFFIS-RIT/npdirectory/backend/pkg/logger"
)

type neighborOptions struct {
	sorted bool
}

type NeighborOption func(*neighborOptions)

// WithSortedNeighbors orders the result by neighbor id, then relation id.
// Without it the result follows storage order.
func WithSortedNeighbors() NeighborOption {
	return func(o *neighborOptions) {
		o.sorted = true
	}
}

// NeighborsOf returns every person related to personID together with the
// relation type, whichever endpoint personID was stored in.
//
// Rows are never collapsed: if the store holds two edges to the same neighbor
// both are returned so the upstream integrity problem stays visible. A
// malformed edge (self relation, or one not touching personID) fails the call.
func NeighborsOf(ctx context.Context, store EdgeStore, personID int64, opts ...NeighborOption) ([]Neighbor, error) {
	o := neighborOptions{}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&o)
	}

	edges, err := store.ListForPerson(ctx, personID)
	if err != nil {
		return nil, err
	}

	neighbors := make([]Neighbor, 0, len(edges))
	seen := make(map[int64]int64, len(edges))
	for _, edge := range edges {
		other, err := edge.Other(personID)
		if err != nil {
			logger.Error("[Relation][Neighbors] Malformed relation", "person_id", personID, "relation_id", edge.ID, "err", err)
			return nil, err
		}
		if prev, ok := seen[other]; ok {
			logger.Warn(
				"[Relation][Neighbors] Multiple relations to the same person",
				"person_id", personID,
				"neighbor_id", other,
				"relation_ids", []int64{prev, edge.ID},
			)
		} else {
			seen[other] = edge.ID
		}
		neighbors = append(neighbors, Neighbor{
			PersonID:   other,
			RelationID: edge.ID,
			Type:       edge.Type,
		})
	}

	if o.sorted {
		slices.SortStableFunc(neighbors, func(a, b Neighbor) int {
			if c := cmp.Compare(a.PersonID, b.PersonID); c != 0 {
				return c
			}
			return cmp.Compare(a.RelationID, b.RelationID)
		})
	}

	return neighbors, nil
}
